package sandbox

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSConfinement(t *testing.T) {
	fs := NewLocalFS(t.TempDir())
	ctx := context.Background()

	t.Run("rejects traversal out of root", func(t *testing.T) {
		_, err := fs.ReadFile(ctx, "../../../etc/passwd")
		assert.Error(t, err)

		err = fs.WriteFile(ctx, "a/../../outside.txt", []byte("x"))
		assert.Error(t, err)
	})

	t.Run("round-trips files inside root", func(t *testing.T) {
		require.NoError(t, fs.EnsureDir(ctx, "sessions/u/s/input"))
		require.NoError(t, fs.WriteFile(ctx, "sessions/u/s/input/a.png", []byte("data")))

		data, err := fs.ReadFile(ctx, "sessions/u/s/input/a.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("data"), data)

		entries, err := fs.ListDir(ctx, "sessions/u/s/input")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.png", entries[0].Name)
		assert.Equal(t, int64(4), entries[0].Size)
		assert.False(t, entries[0].IsDir)
	})

	t.Run("symlink replaces existing link", func(t *testing.T) {
		require.NoError(t, fs.EnsureDir(ctx, "sessions/u/s1"))
		require.NoError(t, fs.EnsureDir(ctx, "sessions/u/s2"))

		require.NoError(t, fs.Symlink(ctx, "sessions/u/s1", "current-session"))
		require.NoError(t, fs.Symlink(ctx, "sessions/u/s2", "current-session"))

		resolved, err := filepath.EvalSymlinks(filepath.Join(fs.Root, "current-session"))
		require.NoError(t, err)
		expected, err := filepath.EvalSymlinks(filepath.Join(fs.Root, "sessions/u/s2"))
		require.NoError(t, err)
		assert.Equal(t, expected, resolved)
	})
}
