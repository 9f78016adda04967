package chat

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/pkg/sandbox"
)

type fakeFS struct {
	mu       sync.Mutex
	files    map[string][]byte
	entries  map[string][]sandbox.FileInfo
	dirs     []string
	symlinks map[string]string
	listErr  error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:    make(map[string][]byte),
		entries:  make(map[string][]sandbox.FileInfo),
		symlinks: make(map[string]string),
	}
}

func (f *fakeFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (f *fakeFS) WriteFile(ctx context.Context, path string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = data
	return nil
}

func (f *fakeFS) ListDir(ctx context.Context, path string) ([]sandbox.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries[path], nil
}

func (f *fakeFS) EnsureDir(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs = append(f.dirs, path)
	return nil
}

func (f *fakeFS) Symlink(ctx context.Context, target, link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.symlinks[link] = target
	return nil
}

func (f *fakeFS) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	return "", nil
}

func TestAssembleNilWorkspace(t *testing.T) {
	a := NewAttachmentAssembler(nil)
	explicit := []Attachment{{Name: "a.png", MimeType: "image/png", Content: "YQ=="}}

	got := a.Assemble(context.Background(), "user", "sess-1", explicit)
	assert.Equal(t, explicit, got)
}

func TestAssembleMergesWorkspaceImages(t *testing.T) {
	fs := newFakeFS()
	fs.entries["sessions/user/sess-1/input"] = []sandbox.FileInfo{
		{Name: "chart.png", Size: 3},
		{Name: "notes.txt", Size: 10},
		{Name: "sub", IsDir: true},
		{Name: "huge.png", Size: 20 << 20},
	}
	fs.files["sessions/user/sess-1/input/chart.png"] = []byte("png")

	a := NewAttachmentAssembler(fs)
	explicit := []Attachment{{Name: "first.jpg", MimeType: "image/jpeg", Content: "Zg=="}}

	got := a.Assemble(context.Background(), "user", "sess-1", explicit)
	require.Len(t, got, 2)
	assert.Equal(t, "first.jpg", got[0].Name, "explicit attachments come first")
	assert.Equal(t, Attachment{Name: "chart.png", MimeType: "image/png", Content: "cG5n"}, got[1])

	// The session workspace layout was prepared.
	assert.Contains(t, fs.dirs, "sessions/user/sess-1/input")
	assert.Contains(t, fs.dirs, "sessions/user/sess-1/output")
	assert.Equal(t, "sessions/user/sess-1", fs.symlinks["current-session"])
}

func TestAssembleWorkspaceFailuresDegrade(t *testing.T) {
	fs := newFakeFS()
	fs.listErr = errors.New("container gone")

	a := NewAttachmentAssembler(fs)
	got := a.Assemble(context.Background(), "user", "sess-1", nil)
	assert.Empty(t, got, "workspace failure yields no discovered attachments, not an error")
}

func TestAssembleUnreadableFileSkipped(t *testing.T) {
	fs := newFakeFS()
	fs.entries["sessions/user/sess-1/input"] = []sandbox.FileInfo{
		{Name: "gone.png", Size: 3},
		{Name: "ok.gif", Size: 2},
	}
	fs.files["sessions/user/sess-1/input/ok.gif"] = []byte("gi")

	a := NewAttachmentAssembler(fs)
	got := a.Assemble(context.Background(), "user", "sess-1", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "ok.gif", got[0].Name)
	assert.Equal(t, "image/gif", got[0].MimeType)
}
