package chat

import (
	"context"
	"encoding/base64"
	"log/slog"
	"path"

	"github.com/clawdeck/clawdeck/pkg/sandbox"
)

// maxAttachmentBytes caps each workspace-discovered file; larger files
// are skipped rather than bloating the send.
const maxAttachmentBytes = 5 << 20 // 5 MiB

// AttachmentAssembler merges explicit user attachments with images
// dropped into the agent's per-session workspace input directory. All
// workspace interaction is best-effort: a missing container, missing
// directory, or unreadable file degrades to "no discovered
// attachments", never to a failed send.
type AttachmentAssembler struct {
	fs sandbox.FileAccess
}

// NewAttachmentAssembler creates an assembler over the agent
// workspace file-access service. fs may be nil when no workspace is
// provisioned; Assemble then returns the explicit attachments only.
func NewAttachmentAssembler(fs sandbox.FileAccess) *AttachmentAssembler {
	return &AttachmentAssembler{fs: fs}
}

// sessionDir returns the workspace-relative session directory.
func sessionDir(userID, sessionID string) string {
	return path.Join("sessions", userID, sessionID)
}

// Assemble prepares the session workspace and returns the explicit
// attachments followed by any images discovered in the session's
// input directory.
func (a *AttachmentAssembler) Assemble(ctx context.Context, userID, sessionID string, explicit []Attachment) []Attachment {
	attachments := make([]Attachment, 0, len(explicit))
	attachments = append(attachments, explicit...)
	if a.fs == nil {
		return attachments
	}

	dir := sessionDir(userID, sessionID)
	a.ensureLayout(ctx, dir)

	inputDir := path.Join(dir, "input")
	entries, err := a.fs.ListDir(ctx, inputDir)
	if err != nil {
		slog.Debug("No workspace input directory", "dir", inputDir, "error", err)
		return attachments
	}

	for _, entry := range entries {
		if entry.IsDir || !hasImageExtension(entry.Name) {
			continue
		}
		if entry.Size > maxAttachmentBytes {
			slog.Warn("Skipping oversized workspace attachment",
				"name", entry.Name, "size", entry.Size)
			continue
		}
		data, err := a.fs.ReadFile(ctx, path.Join(inputDir, entry.Name))
		if err != nil {
			slog.Warn("Failed to read workspace attachment",
				"name", entry.Name, "error", err)
			continue
		}
		attachments = append(attachments, Attachment{
			Name:     entry.Name,
			MimeType: mimeForPath(entry.Name),
			Content:  base64.StdEncoding.EncodeToString(data),
		})
	}
	return attachments
}

// ensureLayout creates the session's input/output directories and
// points the workspace-root current-session symlink at the session
// directory, so the agent can read and write session-scoped files
// without any path appearing in the prompt. Best-effort.
func (a *AttachmentAssembler) ensureLayout(ctx context.Context, dir string) {
	for _, sub := range []string{"input", "output"} {
		if err := a.fs.EnsureDir(ctx, path.Join(dir, sub)); err != nil {
			slog.Warn("Failed to ensure workspace directory",
				"dir", path.Join(dir, sub), "error", err)
		}
	}
	if err := a.fs.Symlink(ctx, dir, "current-session"); err != nil {
		slog.Warn("Failed to update current-session symlink",
			"target", dir, "error", err)
	}
}
