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
	"github.com/clawdeck/clawdeck/pkg/gateway"
	"github.com/clawdeck/clawdeck/pkg/models"
)

// SessionKey derives the gateway session key for a (agent, user) pair.
// Every dashboard user gets an isolated conversation per agent.
func SessionKey(agentID, userID string) string {
	return "agent:" + agentID + ":tc:" + userID
}

// ChatSessionService resolves which persistent session a chat send
// targets and exposes the archived session history.
type ChatSessionService struct {
	client   *ent.Client
	archiver *ArchiveService
}

func NewChatSessionService(client *ent.Client, archiver *ArchiveService) *ChatSessionService {
	return &ChatSessionService{client: client, archiver: archiver}
}

// ResolveRequest identifies the conversation a send belongs to.
// TargetSessionID is empty for "continue or start the active session".
type ResolveRequest struct {
	UserID          string
	InstanceID      string
	AgentID         string
	TargetSessionID string
}

// ResolveForSend returns the session row the send should be attributed
// to, creating or switching sessions as needed. When TargetSessionID
// names an archived session, the current active session is snapshotted
// and the target is reactivated before the send proceeds.
func (s *ChatSessionService) ResolveForSend(ctx context.Context, gw gateway.Conn, req ResolveRequest) (*ent.ChatSession, error) {
	key := SessionKey(req.AgentID, req.UserID)

	if req.TargetSessionID != "" {
		target, err := s.client.ChatSession.Get(ctx, req.TargetSessionID)
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", req.TargetSessionID, ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load session %s: %w", req.TargetSessionID, err)
		}
		// A session id from another user or another instance/agent pair
		// is indistinguishable from a missing one.
		if target.UserID != req.UserID || target.InstanceID != req.InstanceID || target.AgentID != req.AgentID {
			return nil, fmt.Errorf("session %s: %w", req.TargetSessionID, ErrNotFound)
		}

		if !target.IsActive {
			if err := s.archiver.ArchiveAndActivate(ctx, gw, req.UserID, req.InstanceID, req.AgentID, target.ID); err != nil {
				return nil, fmt.Errorf("failed to switch to session %s: %w", target.ID, err)
			}
		}
		return s.touch(ctx, target.ID, key)
	}

	active, err := s.activeSession(ctx, req.UserID, req.InstanceID, req.AgentID)
	if err == nil {
		return s.touch(ctx, active.ID, key)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}

	created, err := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetSessionKey(key).
		SetInstanceID(req.InstanceID).
		SetAgentID(req.AgentID).
		SetUserID(req.UserID).
		SetLastMessageAt(time.Now()).
		Save(ctx)
	if err != nil {
		// A concurrent send can win the partial unique index race on
		// (user, instance, agent) WHERE is_active. Fall back to the row
		// that won.
		if ent.IsConstraintError(err) {
			slog.Debug("Active session already created concurrently",
				slog.String("user_id", req.UserID),
				slog.String("agent_id", req.AgentID))
			active, qerr := s.activeSession(ctx, req.UserID, req.InstanceID, req.AgentID)
			if qerr != nil {
				return nil, fmt.Errorf("failed to recover active session after conflict: %w", qerr)
			}
			return s.touch(ctx, active.ID, key)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

func (s *ChatSessionService) activeSession(ctx context.Context, userID, instanceID, agentID string) (*ent.ChatSession, error) {
	return s.client.ChatSession.Query().
		Where(
			chatsession.UserID(userID),
			chatsession.InstanceID(instanceID),
			chatsession.AgentID(agentID),
			chatsession.IsActive(true),
		).
		Only(ctx)
}

// touch bumps the activity counters and re-syncs the stored session
// key, which tracks the current key derivation should it ever change.
func (s *ChatSessionService) touch(ctx context.Context, id, key string) (*ent.ChatSession, error) {
	updated, err := s.client.ChatSession.UpdateOneID(id).
		SetSessionKey(key).
		SetLastMessageAt(time.Now()).
		AddMessageCount(1).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session %s: %w", id, err)
	}
	return updated, nil
}

// ListSessions returns the user's sessions for one instance/agent pair,
// most recently used first.
func (s *ChatSessionService) ListSessions(ctx context.Context, userID, instanceID, agentID string) ([]models.SessionSummary, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "user_id is required")
	}
	if instanceID == "" {
		return nil, NewValidationError("instance_id", "instance_id is required")
	}
	if agentID == "" {
		return nil, NewValidationError("agent_id", "agent_id is required")
	}

	rows, err := s.client.ChatSession.Query().
		Where(
			chatsession.UserID(userID),
			chatsession.InstanceID(instanceID),
			chatsession.AgentID(agentID),
		).
		Order(ent.Desc(chatsession.FieldLastMessageAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]models.SessionSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.SessionSummary{
			ID:            row.ID,
			InstanceID:    row.InstanceID,
			AgentID:       row.AgentID,
			Title:         row.Title,
			LastMessageAt: row.LastMessageAt,
			MessageCount:  row.MessageCount,
			IsActive:      row.IsActive,
		})
	}
	return summaries, nil
}

// GetSessionMessages returns the archived snapshot rows of one session
// in playback order. Only the owning user can read them.
func (s *ChatSessionService) GetSessionMessages(ctx context.Context, userID, sessionID string) ([]models.SessionMessage, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "session_id is required")
	}

	sess, err := s.client.ChatSession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if sess.UserID != userID {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}

	rows, err := s.client.ChatMessageSnapshot.Query().
		Where(chatmessagesnapshot.ChatSessionID(sessionID)).
		Order(
			ent.Asc(chatmessagesnapshot.FieldCreatedAt),
			ent.Asc(chatmessagesnapshot.FieldBatchID),
			ent.Asc(chatmessagesnapshot.FieldOrderIndex),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for session %s: %w", sessionID, err)
	}

	messages := make([]models.SessionMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, models.SessionMessage{
			ID:            row.ID,
			BatchID:       row.BatchID,
			OrderIndex:    row.OrderIndex,
			Role:          string(row.Role),
			Content:       row.Content,
			ContentBlocks: row.ContentBlocks,
			Thinking:      row.Thinking,
			ToolCalls:     row.ToolCalls,
			CreatedAt:     row.CreatedAt,
		})
	}
	return messages, nil
}
