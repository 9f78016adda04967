package chat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMediaPaths(t *testing.T) {
	t.Run("marker variants", func(t *testing.T) {
		text := "MEDIA: /tmp/a.png\nimage saved: /tmp/b.jpg\nMedia: /tmp/c.webp"
		assert.Equal(t, []string{"/tmp/a.png", "/tmp/b.jpg", "/tmp/c.webp"}, ExtractMediaPaths(text))
	})

	t.Run("deduplicates and preserves order", func(t *testing.T) {
		text := "MEDIA: /tmp/a.png\nMEDIA: /tmp/b.png\nMEDIA: /tmp/a.png"
		assert.Equal(t, []string{"/tmp/a.png", "/tmp/b.png"}, ExtractMediaPaths(text))
	})

	t.Run("deduplicates across marker forms", func(t *testing.T) {
		text := "Done.\nMEDIA: /tmp/out.png\nImage saved: /tmp/out.png"
		assert.Equal(t, []string{"/tmp/out.png"}, ExtractMediaPaths(text))
	})

	t.Run("non-image extensions are dropped", func(t *testing.T) {
		assert.Nil(t, ExtractMediaPaths("MEDIA: /tmp/report.pdf\nMEDIA: /tmp/data.csv"))
	})

	t.Run("surrounding quotes are trimmed", func(t *testing.T) {
		assert.Equal(t, []string{"/tmp/a.png"}, ExtractMediaPaths(`MEDIA: "/tmp/a.png"`))
	})
}

func TestExtractFileProtocolPaths(t *testing.T) {
	t.Run("plain markdown and quoted forms", func(t *testing.T) {
		text := `See file:///tmp/chart.png and ![img](file:///tmp/plot.jpeg) plus "file:///tmp/chart.png"`
		assert.Equal(t, []string{"/tmp/chart.png", "/tmp/plot.jpeg"}, ExtractFileProtocolPaths(text))
	})

	t.Run("paths are cleaned", func(t *testing.T) {
		assert.Equal(t, []string{"/tmp/x.png"}, ExtractFileProtocolPaths("file:///tmp/./x.png"))
	})

	t.Run("non-image references ignored", func(t *testing.T) {
		assert.Nil(t, ExtractFileProtocolPaths("file:///etc/passwd file:///tmp/notes.txt"))
	})
}

func TestMediaResolverAllowed(t *testing.T) {
	r := NewMediaResolver()

	tests := []struct {
		path string
		want bool
	}{
		{"/tmp/shot.png", true},
		{"/home/agent/out/shot.png", true},
		{"/etc/passwd", false},
		{"/tmpfoo/shot.png", false},
		{"/tmp", false},
		{"/tmp/a/../../etc/passwd", false},
		{"relative/shot.png", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Allowed(tt.path), "path %q", tt.path)
	}
}

func TestMediaResolverSymlinkEscape(t *testing.T) {
	rootDir := t.TempDir()
	outsideDir := t.TempDir()

	secret := filepath.Join(outsideDir, "secret.png")
	require.NoError(t, os.WriteFile(secret, []byte("secret-bytes"), 0o600))
	link := filepath.Join(rootDir, "link.png")
	require.NoError(t, os.Symlink(secret, link))
	inside := filepath.Join(rootDir, "ok.png")
	require.NoError(t, os.WriteFile(inside, []byte("ok-bytes"), 0o600))

	r := NewMediaResolver()
	r.AllowedRoots = []string{rootDir}

	assert.False(t, r.Allowed(link), "symlink resolving outside the root is rejected")
	_, ok := r.ReadDataURL(link)
	assert.False(t, ok)

	assert.True(t, r.Allowed(inside))
	url, ok := r.ReadDataURL(inside)
	assert.True(t, ok)
	assert.NotEmpty(t, url)
}

func TestMediaResolverReadDataURL(t *testing.T) {
	t.Run("reads allowed image as data url", func(t *testing.T) {
		r := NewMediaResolver()
		r.readFile = func(path string) ([]byte, error) {
			assert.Equal(t, "/tmp/shot.png", path)
			return []byte("png-bytes"), nil
		}
		url, ok := r.ReadDataURL("/tmp/shot.png")
		assert.True(t, ok)
		assert.Equal(t, "data:image/png;base64,cG5nLWJ5dGVz", url)
	})

	t.Run("fails closed", func(t *testing.T) {
		r := NewMediaResolver()
		r.readFile = func(string) ([]byte, error) { return nil, errors.New("boom") }

		_, ok := r.ReadDataURL("/tmp/shot.png")
		assert.False(t, ok, "read error")

		r.readFile = func(string) ([]byte, error) { return []byte("data"), nil }
		_, ok = r.ReadDataURL("/var/shot.png")
		assert.False(t, ok, "disallowed root")

		r.MaxBytes = 2
		_, ok = r.ReadDataURL("/tmp/shot.png")
		assert.False(t, ok, "oversized payload")
	})
}
