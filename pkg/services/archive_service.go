package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clawdeck/clawdeck/ent"
	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/ent/chatsession"
	"github.com/clawdeck/clawdeck/pkg/chat"
	"github.com/clawdeck/clawdeck/pkg/gateway"
	"github.com/clawdeck/clawdeck/pkg/models"
)

const (
	// archiveHistoryLimit caps how much gateway history one snapshot
	// batch captures.
	archiveHistoryLimit = 200

	// titleMaxRunes is how much of the first user message becomes the
	// session title.
	titleMaxRunes = 50
)

// ArchiveService snapshots the live gateway conversation into the
// database when the user switches sessions, then flips the active flag.
// Snapshot failures are logged but never block the switch: the user
// asked for the target session and gets it regardless.
type ArchiveService struct {
	client *ent.Client
}

func NewArchiveService(client *ent.Client) *ArchiveService {
	return &ArchiveService{client: client}
}

// ArchiveAndActivate archives the currently active session for
// (user, instance, agent) and activates targetID. If targetID is
// already the active session this is a no-op.
func (s *ArchiveService) ArchiveAndActivate(ctx context.Context, gw gateway.Conn, userID, instanceID, agentID, targetID string) error {
	active, err := s.client.ChatSession.Query().
		Where(
			chatsession.UserID(userID),
			chatsession.InstanceID(instanceID),
			chatsession.AgentID(agentID),
			chatsession.IsActive(true),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		// Nothing to archive; just make the target active.
		return s.activate(ctx, targetID)
	case err != nil:
		slog.Warn("Failed to query active session before switch, activating target anyway",
			slog.String("user_id", userID),
			slog.String("target_session_id", targetID),
			slog.String("error", err.Error()))
		return s.activate(ctx, targetID)
	}

	if active.ID == targetID {
		return nil
	}

	// Ask the gateway to drop its live context so the reactivated
	// session starts clean, but only once the history is safely
	// snapshotted (or there was nothing to keep). On snapshot failure
	// the remote history survives for the next switch to archive.
	if s.snapshotSession(ctx, gw, active) && gw != nil {
		if err := gw.DeleteSession(ctx, active.SessionKey); err != nil {
			slog.Warn("Failed to delete gateway session during switch",
				slog.String("session_key", active.SessionKey),
				slog.String("error", err.Error()))
		}
	}

	// Deactivate first: the partial unique index forbids two active
	// rows for the same (user, instance, agent).
	if _, err := s.client.ChatSession.UpdateOneID(active.ID).SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("failed to deactivate session %s: %w", active.ID, err)
	}
	return s.activate(ctx, targetID)
}

func (s *ArchiveService) activate(ctx context.Context, sessionID string) error {
	if _, err := s.client.ChatSession.UpdateOneID(sessionID).SetIsActive(true).Save(ctx); err != nil {
		return fmt.Errorf("failed to activate session %s: %w", sessionID, err)
	}
	return nil
}

// snapshotSession pulls the gateway history for sess and persists it as
// one batch of snapshot rows. All failures are non-fatal. Reports
// whether the history is safely persisted (or empty), so the caller
// knows the remote copy may be dropped.
func (s *ArchiveService) snapshotSession(ctx context.Context, gw gateway.Conn, sess *ent.ChatSession) bool {
	if gw == nil {
		return false
	}

	history, err := gw.History(ctx, sess.SessionKey, archiveHistoryLimit)
	if err != nil {
		slog.Warn("Failed to fetch gateway history for archival",
			slog.String("session_id", sess.ID),
			slog.String("session_key", sess.SessionKey),
			slog.String("error", err.Error()))
		return false
	}

	rows, firstUserText := buildSnapshotBatch(history.Messages)
	if len(rows) == 0 {
		return true
	}

	batchID := uuid.New().String()
	now := time.Now()
	creates := make([]*ent.ChatMessageSnapshotCreate, 0, len(rows))
	for i, row := range rows {
		create := s.client.ChatMessageSnapshot.Create().
			SetID(uuid.New().String()).
			SetChatSessionID(sess.ID).
			SetBatchID(batchID).
			SetOrderIndex(i).
			SetRole(chatmessagesnapshot.Role(row.Role)).
			SetContent(row.Content).
			SetCreatedAt(now)
		if row.Thinking != "" {
			create.SetThinking(row.Thinking)
		}
		if len(row.ContentBlocks) > 0 {
			create.SetContentBlocks(imageRefMaps(row.ContentBlocks))
		}
		if len(row.ToolCalls) > 0 {
			create.SetToolCalls(toolCallMaps(row.ToolCalls))
		}
		creates = append(creates, create)
	}

	if _, err := s.client.ChatMessageSnapshot.CreateBulk(creates...).Save(ctx); err != nil {
		slog.Warn("Failed to persist snapshot batch",
			slog.String("session_id", sess.ID),
			slog.String("batch_id", batchID),
			slog.String("error", err.Error()))
		return false
	}

	if sess.Title == nil && firstUserText != "" {
		if _, err := s.client.ChatSession.UpdateOneID(sess.ID).SetTitle(truncateRunes(firstUserText, titleMaxRunes)).Save(ctx); err != nil {
			slog.Warn("Failed to set session title",
				slog.String("session_id", sess.ID),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("Archived session history",
		slog.String("session_id", sess.ID),
		slog.String("batch_id", batchID),
		slog.Int("messages", len(rows)))
	return true
}

// buildSnapshotBatch reconstructs persistable rows from raw gateway
// history. It also returns the first user message's text, the title
// candidate for untitled sessions.
func buildSnapshotBatch(messages []gateway.HistoryMessage) ([]models.SnapshotRow, string) {
	var rows []models.SnapshotRow
	var firstUserText string

	for _, msg := range messages {
		blocks := chat.NormalizeContent(msg.Content)

		switch msg.Role {
		case "user":
			text := chat.StripUserMetadataPrefix(chat.Text(blocks))
			if text == "" {
				continue
			}
			if firstUserText == "" {
				firstUserText = text
			}
			rows = append(rows, models.SnapshotRow{Role: "user", Content: text})

		case "assistant":
			text := chat.StripFinalTags(chat.Text(blocks))
			thinking := chat.Thinking(blocks)
			if text == "" && thinking != "" {
				// Some agents emit everything as a single thinking
				// block; recover the visible answer from it.
				thinking, text = chat.SplitThinkingFallback(thinking)
			}
			images := chat.Images(blocks)
			if text == "" && thinking == "" && len(images) == 0 {
				continue
			}
			rows = append(rows, models.SnapshotRow{
				Role:          "assistant",
				Content:       text,
				Thinking:      thinking,
				ContentBlocks: images,
			})

		case "toolResult":
			// Tool results belong to the assistant turn that invoked
			// the tool; without one they have no home.
			if len(rows) == 0 || rows[len(rows)-1].Role != "assistant" {
				continue
			}
			last := &rows[len(rows)-1]
			last.ToolCalls = append(last.ToolCalls, chat.ToolCall{
				ToolName:   msg.ToolName,
				ToolOutput: chat.Text(blocks),
			})
		}
	}
	return rows, firstUserText
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func imageRefMaps(refs []chat.ImageRef) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(refs))
	for _, ref := range refs {
		m := map[string]interface{}{
			"type": "image",
			"url":  ref.URL,
		}
		if ref.MimeType != "" {
			m["mimeType"] = ref.MimeType
		}
		if ref.Alt != "" {
			m["alt"] = ref.Alt
		}
		out = append(out, m)
	}
	return out
}

func toolCallMaps(calls []chat.ToolCall) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(calls))
	for _, call := range calls {
		m := map[string]interface{}{
			"toolName": call.ToolName,
		}
		if len(call.ToolInput) > 0 {
			m["toolInput"] = string(call.ToolInput)
		}
		if call.ToolOutput != "" {
			m["toolOutput"] = call.ToolOutput
		}
		out = append(out, m)
	}
	return out
}
