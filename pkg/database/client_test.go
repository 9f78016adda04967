package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/ent"
	testdb "github.com/clawdeck/clawdeck/test/database"
)

func createSession(t *testing.T, client *ent.Client, userID, instanceID, agentID string, active bool) *ent.ChatSession {
	t.Helper()
	sess, err := client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetSessionKey("agent:" + agentID + ":tc:" + userID).
		SetInstanceID(instanceID).
		SetAgentID(agentID).
		SetUserID(userID).
		SetLastMessageAt(time.Now()).
		SetIsActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func TestActiveSessionPartialUniqueIndex(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createSession(t, client.Client, "alice", "prod", "ops", true)

	t.Run("second active row for the same triple is rejected", func(t *testing.T) {
		_, err := client.ChatSession.Create().
			SetID(uuid.New().String()).
			SetSessionKey("agent:ops:tc:alice").
			SetInstanceID("prod").
			SetAgentID("ops").
			SetUserID("alice").
			SetLastMessageAt(time.Now()).
			SetIsActive(true).
			Save(ctx)
		require.Error(t, err)
		assert.True(t, ent.IsConstraintError(err))
	})

	t.Run("archived duplicates are allowed", func(t *testing.T) {
		createSession(t, client.Client, "alice", "prod", "ops", false)
		createSession(t, client.Client, "alice", "prod", "ops", false)
	})

	t.Run("same user on a different agent may be active", func(t *testing.T) {
		createSession(t, client.Client, "alice", "prod", "dba", true)
	})
}
