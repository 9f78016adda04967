package sandbox

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	sandboxv1 "github.com/clawdeck/clawdeck/proto"
)

// defaultCommandTimeout bounds RunCommand calls without an explicit
// deadline on ctx.
const defaultCommandTimeout = 30 * time.Second

// GRPCClient implements FileAccess by calling the container
// file-access service over gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client sandboxv1.SandboxServiceClient
}

// NewGRPCClient creates a client for the sandbox service at addr.
// grpc.NewClient dials lazily; the first RPC establishes the
// connection.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("create sandbox client for %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: sandboxv1.NewSandboxServiceClient(conn),
	}, nil
}

// Close releases the underlying connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// ReadFile implements FileAccess.
func (c *GRPCClient) ReadFile(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.client.ReadFile(ctx, &sandboxv1.ReadFileRequest{Path: path})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return resp.Data, nil
}

// WriteFile implements FileAccess.
func (c *GRPCClient) WriteFile(ctx context.Context, path string, data []byte) error {
	if _, err := c.client.WriteFile(ctx, &sandboxv1.WriteFileRequest{Path: path, Data: data}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ListDir implements FileAccess.
func (c *GRPCClient) ListDir(ctx context.Context, path string) ([]FileInfo, error) {
	resp, err := c.client.ListDir(ctx, &sandboxv1.ListDirRequest{Path: path})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	entries := make([]FileInfo, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, FileInfo{Name: e.Name, Size: e.Size, IsDir: e.IsDir})
	}
	return entries, nil
}

// EnsureDir implements FileAccess.
func (c *GRPCClient) EnsureDir(ctx context.Context, path string) error {
	if _, err := c.client.EnsureDir(ctx, &sandboxv1.EnsureDirRequest{Path: path}); err != nil {
		return fmt.Errorf("ensure dir %s: %w", path, err)
	}
	return nil
}

// Symlink implements FileAccess.
func (c *GRPCClient) Symlink(ctx context.Context, target, link string) error {
	if _, err := c.client.Symlink(ctx, &sandboxv1.SymlinkRequest{Target: target, Link: link, Replace: true}); err != nil {
		return fmt.Errorf("symlink %s -> %s: %w", link, target, err)
	}
	return nil
}

// RunCommand implements FileAccess.
func (c *GRPCClient) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	timeout := defaultCommandTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	resp, err := c.client.RunCommand(ctx, &sandboxv1.RunCommandRequest{
		Name:      name,
		Args:      args,
		TimeoutMs: timeout.Milliseconds(),
	})
	if err != nil {
		return "", fmt.Errorf("run %s: %w", name, err)
	}
	if resp.ExitCode != 0 {
		return resp.Stdout, fmt.Errorf("run %s: exit code %d: %s", name, resp.ExitCode, resp.Stderr)
	}
	return resp.Stdout, nil
}
