// Package sandbox abstracts file access inside an agent's container
// workspace. The production implementation talks gRPC to the
// container file-access service; LocalFS serves single-node
// deployments and tests.
package sandbox

import "context"

// FileInfo describes one directory entry.
type FileInfo struct {
	Name  string
	Size  int64
	IsDir bool
}

// FileAccess is the workspace file surface consumed by the attachment
// assembler. All paths are scoped to the sandbox root of the calling
// agent session.
type FileAccess interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	ListDir(ctx context.Context, path string) ([]FileInfo, error)
	EnsureDir(ctx context.Context, path string) error
	// Symlink points link at target, replacing an existing link.
	Symlink(ctx context.Context, target, link string) error
	RunCommand(ctx context.Context, name string, args ...string) (string, error)
}
