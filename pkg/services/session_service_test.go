package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/pkg/gateway"
	testdb "github.com/clawdeck/clawdeck/test/database"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "agent:ops:tc:alice@example.com", SessionKey("ops", "alice@example.com"))
}

func TestChatSessionService_ResolveForSend(t *testing.T) {
	client := testdb.NewTestClient(t)
	archiver := NewArchiveService(client.Client)
	svc := NewChatSessionService(client.Client, archiver)
	ctx := context.Background()

	t.Run("creates session on first send and reuses it after", func(t *testing.T) {
		gw := newFakeGateway()
		req := ResolveRequest{UserID: "alice", InstanceID: "prod", AgentID: "ops"}

		first, err := svc.ResolveForSend(ctx, gw, req)
		require.NoError(t, err)
		assert.True(t, first.IsActive)
		assert.Equal(t, SessionKey("ops", "alice"), first.SessionKey)
		assert.Equal(t, 1, first.MessageCount)

		second, err := svc.ResolveForSend(ctx, gw, req)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2, second.MessageCount)
		assert.True(t, second.LastMessageAt.After(first.LastMessageAt) ||
			second.LastMessageAt.Equal(first.LastMessageAt))
	})

	t.Run("separate agents get separate sessions", func(t *testing.T) {
		gw := newFakeGateway()
		opsSess, err := svc.ResolveForSend(ctx, gw, ResolveRequest{UserID: "bob", InstanceID: "prod", AgentID: "ops"})
		require.NoError(t, err)
		dbaSess, err := svc.ResolveForSend(ctx, gw, ResolveRequest{UserID: "bob", InstanceID: "prod", AgentID: "dba"})
		require.NoError(t, err)
		assert.NotEqual(t, opsSess.ID, dbaSess.ID)
	})

	t.Run("unknown target session is not found", func(t *testing.T) {
		_, err := svc.ResolveForSend(ctx, newFakeGateway(), ResolveRequest{
			UserID: "alice", InstanceID: "prod", AgentID: "ops", TargetSessionID: "nope",
		})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("another user's session id is indistinguishable from missing", func(t *testing.T) {
		sess := createSession(t, client.Client, "carol", "prod", "ops", true)

		_, err := svc.ResolveForSend(ctx, newFakeGateway(), ResolveRequest{
			UserID: "mallory", InstanceID: "prod", AgentID: "ops", TargetSessionID: sess.ID,
		})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("targeting an archived session switches to it", func(t *testing.T) {
		active := createSession(t, client.Client, "dana", "prod", "ops", true)
		archived := createSession(t, client.Client, "dana", "prod", "ops", false)

		gw := newFakeGateway()
		gw.history[active.SessionKey] = nil

		resolved, err := svc.ResolveForSend(ctx, gw, ResolveRequest{
			UserID: "dana", InstanceID: "prod", AgentID: "ops", TargetSessionID: archived.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, archived.ID, resolved.ID)
		assert.True(t, resolved.IsActive)
		assert.False(t, client.ChatSession.GetX(ctx, active.ID).IsActive)
		assert.Contains(t, gw.deletedSessions, active.SessionKey)
	})

	t.Run("targeting the active session is a plain continue", func(t *testing.T) {
		gw := newFakeGateway()
		sess, err := svc.ResolveForSend(ctx, gw, ResolveRequest{UserID: "eve", InstanceID: "prod", AgentID: "ops"})
		require.NoError(t, err)

		again, err := svc.ResolveForSend(ctx, gw, ResolveRequest{
			UserID: "eve", InstanceID: "prod", AgentID: "ops", TargetSessionID: sess.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, sess.ID, again.ID)
		assert.Empty(t, gw.deletedSessions)
	})
}

func TestChatSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewChatSessionService(client.Client, NewArchiveService(client.Client))
	ctx := context.Background()

	older := createSession(t, client.Client, "alice", "prod", "ops", false)
	newer := createSession(t, client.Client, "alice", "prod", "ops", true)
	createSession(t, client.Client, "alice", "prod", "dba", true)
	createSession(t, client.Client, "someone-else", "prod", "ops", true)

	t.Run("returns own sessions for the pair, newest first", func(t *testing.T) {
		sessions, err := svc.ListSessions(ctx, "alice", "prod", "ops")
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, newer.ID, sessions[0].ID)
		assert.Equal(t, older.ID, sessions[1].ID)
		assert.True(t, sessions[0].IsActive)
	})

	t.Run("validates required parameters", func(t *testing.T) {
		_, err := svc.ListSessions(ctx, "alice", "", "ops")
		assert.True(t, IsValidationError(err))
		_, err = svc.ListSessions(ctx, "alice", "prod", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestChatSessionService_GetSessionMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	archiver := NewArchiveService(client.Client)
	svc := NewChatSessionService(client.Client, archiver)
	ctx := context.Background()

	sess := createSession(t, client.Client, "alice", "prod", "ops", true)
	target := createSession(t, client.Client, "alice", "prod", "ops", false)

	gw := newFakeGateway()
	gw.history[sess.SessionKey] = []gateway.HistoryMessage{
		textMessage("user", "hello"),
		textMessage("assistant", "hi there"),
	}
	require.NoError(t, archiver.ArchiveAndActivate(ctx, gw, "alice", "prod", "ops", target.ID))

	t.Run("returns rows in playback order", func(t *testing.T) {
		messages, err := svc.GetSessionMessages(ctx, "alice", sess.ID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "user", messages[0].Role)
		assert.Equal(t, "hello", messages[0].Content)
		assert.Equal(t, "assistant", messages[1].Role)
		assert.Equal(t, messages[0].BatchID, messages[1].BatchID)
	})

	t.Run("other users cannot read the session", func(t *testing.T) {
		_, err := svc.GetSessionMessages(ctx, "mallory", sess.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("missing session id is a validation error", func(t *testing.T) {
		_, err := svc.GetSessionMessages(ctx, "alice", "")
		assert.True(t, IsValidationError(err))
	})
}
