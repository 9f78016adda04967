package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/ent"
	"github.com/clawdeck/clawdeck/pkg/gateway"
)

// fakeGateway is an in-memory gateway.Conn for service tests.
type fakeGateway struct {
	mu              sync.Mutex
	history         map[string][]gateway.HistoryMessage
	historyErr      error
	deletedSessions []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{history: make(map[string][]gateway.HistoryMessage)}
}

func (f *fakeGateway) Request(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error) {
	return nil, nil
}

func (f *fakeGateway) SendMessage(ctx context.Context, sessionKey, text, idempotencyKey string, opts gateway.SendOptions) error {
	return nil
}

func (f *fakeGateway) History(ctx context.Context, sessionKey string, limit int) (*gateway.HistoryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	msgs := f.history[sessionKey]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return &gateway.HistoryResponse{Messages: msgs}, nil
}

func (f *fakeGateway) DeleteSession(ctx context.Context, sessionKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedSessions = append(f.deletedSessions, sessionKey)
	return nil
}

func (f *fakeGateway) Subscribe(channel string) (<-chan gateway.Event, func()) {
	ch := make(chan gateway.Event)
	return ch, func() {}
}

func textMessage(role, text string) gateway.HistoryMessage {
	raw, _ := json.Marshal(text)
	return gateway.HistoryMessage{Role: role, Content: raw}
}

// createSession inserts a session row directly for test setup.
func createSession(t *testing.T, client *ent.Client, userID, instanceID, agentID string, active bool) *ent.ChatSession {
	t.Helper()
	sess, err := client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetSessionKey(SessionKey(agentID, userID)).
		SetInstanceID(instanceID).
		SetAgentID(agentID).
		SetUserID(userID).
		SetLastMessageAt(time.Now()).
		SetIsActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}
