package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return &Client{
		instanceID: "test",
		pending:    make(map[string]chan frame),
		subs:       make(map[string]map[int]chan Event),
		closed:     make(chan struct{}),
	}
}

func TestSubscribeAndDispatch(t *testing.T) {
	c := newTestClient()

	chatCh, unsubChat := c.Subscribe(ChannelChat)
	agentCh, unsubAgent := c.Subscribe(ChannelAgent)
	defer unsubAgent()

	c.dispatchEvent(Event{Channel: ChannelChat, RunID: "r1", State: StateDelta})
	c.dispatchEvent(Event{Channel: ChannelAgent, RunID: "r1", Stream: StreamTool})

	ev := <-chatCh
	assert.Equal(t, StateDelta, ev.State)
	ev = <-agentCh
	assert.Equal(t, StreamTool, ev.Stream)

	select {
	case <-chatCh:
		t.Fatal("chat subscriber must not receive agent events")
	default:
	}

	unsubChat()
	_, open := <-chatCh
	assert.False(t, open, "unsubscribe closes the channel")

	// Idempotent: second call must not panic or double-close.
	unsubChat()

	// Events after unsubscribe only reach remaining subscribers.
	c.dispatchEvent(Event{Channel: ChannelChat, RunID: "r2"})
}

func TestDispatchDropsWhenSubscriberFull(t *testing.T) {
	c := newTestClient()
	ch, unsub := c.Subscribe(ChannelChat)
	defer unsub()

	// Fill the buffer and then some; dispatch must never block.
	for i := 0; i < subscriberBuffer+10; i++ {
		c.dispatchEvent(Event{Channel: ChannelChat, RunID: "r"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}

func TestResolvePending(t *testing.T) {
	c := newTestClient()

	respCh := make(chan frame, 1)
	c.pending["req-1"] = respCh

	c.resolvePending(frame{Type: "res", ID: "req-1", Result: json.RawMessage(`{"ok":true}`)})

	resp, open := <-respCh
	require.True(t, open)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Result))
	assert.Empty(t, c.pending, "resolved request is deregistered")

	// Unknown ids are ignored.
	c.resolvePending(frame{Type: "res", ID: "req-unknown"})
}

func TestEventResultText(t *testing.T) {
	ev := &Event{Result: json.RawMessage(`"plain text"`)}
	assert.Equal(t, "plain text", ev.ResultText())

	ev = &Event{Result: json.RawMessage(`{"structured":1}`)}
	assert.Equal(t, `{"structured":1}`, ev.ResultText())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())

	_, ok := r.Get("prod")
	assert.False(t, ok)

	c := newTestClient()
	r.Put("prod", c)
	got, ok := r.Get("prod")
	assert.True(t, ok)
	assert.Same(t, c, got.(*Client))
	assert.Equal(t, []string{"prod"}, r.InstanceIDs())

	removed, ok := r.Remove("prod")
	assert.True(t, ok)
	assert.Same(t, c, removed.(*Client))
	assert.Equal(t, 0, r.Len())

	_, ok = r.Remove("prod")
	assert.False(t, ok)
}
