package sandbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LocalFS implements FileAccess directly against the host filesystem,
// confined to Root. Used when the dashboard and the agent share a
// host, and by tests.
type LocalFS struct {
	Root string
}

// NewLocalFS creates a FileAccess rooted at root.
func NewLocalFS(root string) *LocalFS {
	return &LocalFS{Root: filepath.Clean(root)}
}

// resolve joins path onto Root and rejects escapes.
func (l *LocalFS) resolve(path string) (string, error) {
	joined := filepath.Clean(filepath.Join(l.Root, path))
	if joined != l.Root && !strings.HasPrefix(joined, l.Root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes sandbox root", path)
	}
	return joined, nil
}

// ReadFile implements FileAccess.
func (l *LocalFS) ReadFile(_ context.Context, path string) ([]byte, error) {
	p, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// WriteFile implements FileAccess.
func (l *LocalFS) WriteFile(_ context.Context, path string, data []byte) error {
	p, err := l.resolve(path)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

// ListDir implements FileAccess.
func (l *LocalFS) ListDir(_ context.Context, path string) ([]FileInfo, error) {
	p, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, err
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		info := FileInfo{Name: e.Name(), IsDir: e.IsDir()}
		if fi, err := e.Info(); err == nil {
			info.Size = fi.Size()
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// EnsureDir implements FileAccess.
func (l *LocalFS) EnsureDir(_ context.Context, path string) error {
	p, err := l.resolve(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(p, 0o755)
}

// Symlink implements FileAccess. An existing link is replaced.
func (l *LocalFS) Symlink(_ context.Context, target, link string) error {
	linkPath, err := l.resolve(link)
	if err != nil {
		return err
	}
	targetPath, err := l.resolve(target)
	if err != nil {
		return err
	}
	if err := os.Remove(linkPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Symlink(targetPath, linkPath)
}

// RunCommand implements FileAccess.
func (l *LocalFS) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = l.Root
	out, err := cmd.Output()
	if err != nil {
		return string(out), fmt.Errorf("run %s: %w", name, err)
	}
	return string(out), nil
}
