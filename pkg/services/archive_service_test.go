package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/ent"
	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/pkg/gateway"
	testdb "github.com/clawdeck/clawdeck/test/database"
)

func TestBuildSnapshotBatch(t *testing.T) {
	t.Run("reconstructs roles in order", func(t *testing.T) {
		rows, firstUser := buildSnapshotBatch([]gateway.HistoryMessage{
			textMessage("user", "[2024-06-01 09:00:00 UTC] what is the load?"),
			textMessage("assistant", "<final>Load is nominal.</final>"),
			textMessage("user", "thanks"),
		})
		require.Len(t, rows, 3)
		assert.Equal(t, "user", rows[0].Role)
		assert.Equal(t, "what is the load?", rows[0].Content, "delivery metadata prefix is stripped")
		assert.Equal(t, "what is the load?", firstUser)
		assert.Equal(t, "assistant", rows[1].Role)
		assert.Equal(t, "Load is nominal.", rows[1].Content, "final tags are stripped")
	})

	t.Run("recovers text from thinking-only assistant message", func(t *testing.T) {
		raw, _ := json.Marshal([]map[string]string{
			{"type": "thinking", "thinking": "<think>checking metrics</think>\nAll systems go."},
		})
		rows, _ := buildSnapshotBatch([]gateway.HistoryMessage{
			{Role: "assistant", Content: raw},
		})
		require.Len(t, rows, 1)
		assert.Equal(t, "All systems go.", rows[0].Content)
		assert.Equal(t, "checking metrics", rows[0].Thinking)
	})

	t.Run("tool results attach to preceding assistant row", func(t *testing.T) {
		rows, _ := buildSnapshotBatch([]gateway.HistoryMessage{
			textMessage("user", "check disk"),
			textMessage("assistant", "running df"),
			{Role: "toolResult", Content: json.RawMessage(`"93% used"`), ToolName: "df"},
			{Role: "toolResult", Content: json.RawMessage(`"clean"`), ToolName: "fsck"},
		})
		require.Len(t, rows, 2)
		require.Len(t, rows[1].ToolCalls, 2)
		assert.Equal(t, "df", rows[1].ToolCalls[0].ToolName)
		assert.Equal(t, "93% used", rows[1].ToolCalls[0].ToolOutput)
	})

	t.Run("orphan tool results and empty messages are dropped", func(t *testing.T) {
		rows, firstUser := buildSnapshotBatch([]gateway.HistoryMessage{
			{Role: "toolResult", Content: json.RawMessage(`"no home"`), ToolName: "x"},
			textMessage("user", ""),
			{Role: "system", Content: json.RawMessage(`"ignored"`)},
		})
		assert.Empty(t, rows)
		assert.Empty(t, firstUser)
	})
}

func TestArchiveService_ArchiveAndActivate(t *testing.T) {
	client := testdb.NewTestClient(t)
	archiver := NewArchiveService(client.Client)
	ctx := context.Background()

	t.Run("archives active session and flips flags", func(t *testing.T) {
		active := createSession(t, client.Client, "alice", "prod", "ops", true)
		target := createSession(t, client.Client, "alice", "prod", "ops", false)

		gw := newFakeGateway()
		gw.history[active.SessionKey] = []gateway.HistoryMessage{
			textMessage("user", "first question about the cluster"),
			textMessage("assistant", "an answer"),
		}

		err := archiver.ArchiveAndActivate(ctx, gw, "alice", "prod", "ops", target.ID)
		require.NoError(t, err)

		// Snapshot rows exist, grouped under one batch, ordered.
		snaps, err := client.ChatMessageSnapshot.Query().
			Where(chatmessagesnapshot.ChatSessionID(active.ID)).
			Order(ent.Asc(chatmessagesnapshot.FieldOrderIndex)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, snaps, 2)
		assert.Equal(t, snaps[0].BatchID, snaps[1].BatchID)
		assert.Equal(t, 0, snaps[0].OrderIndex)
		assert.Equal(t, 1, snaps[1].OrderIndex)

		// Title is the first user message, gateway session was dropped.
		reloaded := client.ChatSession.GetX(ctx, active.ID)
		require.NotNil(t, reloaded.Title)
		assert.Equal(t, "first question about the cluster", *reloaded.Title)
		assert.False(t, reloaded.IsActive)
		assert.Contains(t, gw.deletedSessions, active.SessionKey)

		assert.True(t, client.ChatSession.GetX(ctx, target.ID).IsActive)

		// A second switch to the now-active target is a no-op: no new
		// snapshots, no further gateway deletes.
		require.NoError(t, archiver.ArchiveAndActivate(ctx, gw, "alice", "prod", "ops", target.ID))
		count := client.ChatMessageSnapshot.Query().
			Where(chatmessagesnapshot.ChatSessionID(active.ID)).
			CountX(ctx)
		assert.Equal(t, 2, count)
		assert.Len(t, gw.deletedSessions, 1)
	})

	t.Run("history failure still completes the switch", func(t *testing.T) {
		active := createSession(t, client.Client, "bob", "prod", "ops", true)
		target := createSession(t, client.Client, "bob", "prod", "ops", false)

		gw := newFakeGateway()
		gw.historyErr = assert.AnError

		err := archiver.ArchiveAndActivate(ctx, gw, "bob", "prod", "ops", target.ID)
		require.NoError(t, err)

		count := client.ChatMessageSnapshot.Query().
			Where(chatmessagesnapshot.ChatSessionID(active.ID)).
			CountX(ctx)
		assert.Equal(t, 0, count, "no snapshots on history failure")
		assert.Empty(t, gw.deletedSessions, "remote history is kept when it could not be archived")
		assert.False(t, client.ChatSession.GetX(ctx, active.ID).IsActive)
		assert.True(t, client.ChatSession.GetX(ctx, target.ID).IsActive)
	})

	t.Run("no-op when target is already active", func(t *testing.T) {
		active := createSession(t, client.Client, "carol", "prod", "ops", true)

		gw := newFakeGateway()
		err := archiver.ArchiveAndActivate(ctx, gw, "carol", "prod", "ops", active.ID)
		require.NoError(t, err)
		assert.Empty(t, gw.deletedSessions)
		assert.True(t, client.ChatSession.GetX(ctx, active.ID).IsActive)
	})

	t.Run("no active session just activates target", func(t *testing.T) {
		target := createSession(t, client.Client, "dave", "prod", "ops", false)

		err := archiver.ArchiveAndActivate(ctx, newFakeGateway(), "dave", "prod", "ops", target.ID)
		require.NoError(t, err)
		assert.True(t, client.ChatSession.GetX(ctx, target.ID).IsActive)
	})

	t.Run("repeated archival produces distinct batches", func(t *testing.T) {
		a := createSession(t, client.Client, "erin", "prod", "ops", true)
		b := createSession(t, client.Client, "erin", "prod", "ops", false)

		gw := newFakeGateway()
		gw.history[a.SessionKey] = []gateway.HistoryMessage{textMessage("user", "round one")}

		require.NoError(t, archiver.ArchiveAndActivate(ctx, gw, "erin", "prod", "ops", b.ID))

		// Switch back: archive b's (reused) key into a.
		gw.history[b.SessionKey] = []gateway.HistoryMessage{textMessage("user", "round two")}
		require.NoError(t, archiver.ArchiveAndActivate(ctx, gw, "erin", "prod", "ops", a.ID))

		batchIDs := make(map[string]bool)
		for _, s := range client.ChatMessageSnapshot.Query().AllX(ctx) {
			if s.ChatSessionID == a.ID || s.ChatSessionID == b.ID {
				batchIDs[s.BatchID] = true
			}
		}
		assert.Len(t, batchIDs, 2)
	})
}
