package chat

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/pkg/gateway"
)

type fakeConn struct {
	chatCh  chan gateway.Event
	agentCh chan gateway.Event

	mu      sync.Mutex
	sent    []string
	history *gateway.HistoryResponse
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		chatCh:  make(chan gateway.Event, 32),
		agentCh: make(chan gateway.Event, 32),
		history: &gateway.HistoryResponse{},
	}
}

func (f *fakeConn) Subscribe(channel string) (<-chan gateway.Event, func()) {
	if channel == gateway.ChannelChat {
		return f.chatCh, func() {}
	}
	return f.agentCh, func() {}
}

func (f *fakeConn) Request(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error) {
	return nil, nil
}

func (f *fakeConn) SendMessage(ctx context.Context, sessionKey, text, idempotencyKey string, opts gateway.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeConn) History(ctx context.Context, sessionKey string, limit int) (*gateway.HistoryResponse, error) {
	return f.history, nil
}

func (f *fakeConn) DeleteSession(ctx context.Context, sessionKey string) error {
	return nil
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []StreamEvent
}

func (r *recordingEmitter) Emit(ev StreamEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingEmitter) all() []StreamEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StreamEvent(nil), r.events...)
}

func (r *recordingEmitter) ofType(eventType string) []StreamEvent {
	var out []StreamEvent
	for _, ev := range r.all() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func chatEvent(runID, state, content string) gateway.Event {
	return gateway.Event{
		Channel: gateway.ChannelChat,
		RunID:   runID,
		State:   state,
		Message: json.RawMessage(content),
	}
}

func runStreamer(t *testing.T, conn *fakeConn, emitter *recordingEmitter) error {
	t.Helper()
	resolver := NewMediaResolver()
	resolver.readFile = func(string) ([]byte, error) { return []byte("img"), nil }
	s := NewStreamer(conn, resolver, emitter, "run-1", "agent:a1:tc:user")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Run(ctx, func(ctx context.Context) error {
		return conn.SendMessage(ctx, "agent:a1:tc:user", "hi", "run-1", gateway.SendOptions{})
	})
}

func TestStreamerDeltaDiffing(t *testing.T) {
	conn := newFakeConn()
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta, `"Hello"`)
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta, `"Hello world"`)
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"Hello world!"`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	texts := emitter.ofType(EventText)
	require.Len(t, texts, 3)
	assert.Equal(t, "Hello", texts[0].Text)
	assert.Equal(t, " world", texts[1].Text)
	assert.Equal(t, "!", texts[2].Text)

	events := emitter.all()
	assert.Equal(t, EventDone, events[len(events)-1].Type, "stream terminates with done")
}

func TestStreamerIgnoresOtherRuns(t *testing.T) {
	conn := newFakeConn()
	conn.chatCh <- chatEvent("run-other", gateway.StateDelta, `"intruder"`)
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta, `"mine"`)
	conn.chatCh <- chatEvent("run-other", gateway.StateError, `""`)
	conn.agentCh <- gateway.Event{
		Channel:  gateway.ChannelAgent,
		RunID:    "run-other",
		Stream:   gateway.StreamTool,
		Phase:    gateway.PhaseStart,
		ToolName: "exec",
	}
	conn.agentCh <- gateway.Event{
		Channel:  gateway.ChannelAgent,
		RunID:    "run-other",
		Stream:   gateway.StreamTool,
		Phase:    gateway.PhaseResult,
		ToolName: "exec",
		Result:   json.RawMessage(`"MEDIA: /tmp/other.png"`),
	}
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"mine"`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	texts := emitter.ofType(EventText)
	require.Len(t, texts, 1)
	assert.Equal(t, "mine", texts[0].Text)
	assert.Empty(t, emitter.ofType(EventError), "other run's error must not terminate this stream")
	assert.Empty(t, emitter.ofType(EventToolCall), "other run's tool activity is filtered")
	assert.Empty(t, emitter.ofType(EventToolResult))
	assert.Empty(t, emitter.ofType(EventImage))
}

func TestStreamerIgnoresNonMonotonicRevisions(t *testing.T) {
	conn := newFakeConn()
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta, `"Hello world"`)
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta, `"Hello brave"`)
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"Hello world again"`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	texts := emitter.ofType(EventText)
	require.Len(t, texts, 2)
	assert.Equal(t, "Hello world", texts[0].Text)
	assert.Equal(t, " again", texts[1].Text, "diff resumes from last emitted state")
}

func TestStreamerThinkingAndImages(t *testing.T) {
	conn := newFakeConn()
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta,
		`[{"type":"thinking","thinking":"pondering"},{"type":"text","text":"done"}]`)
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal,
		`[{"type":"thinking","thinking":"pondering"},{"type":"text","text":"done"},{"type":"image","url":"https://example.com/i.png"}]`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	require.Len(t, emitter.ofType(EventThinking), 1)
	assert.Equal(t, "pondering", emitter.ofType(EventThinking)[0].Text)

	images := emitter.ofType(EventImage)
	require.Len(t, images, 1)
	assert.Equal(t, "https://example.com/i.png", images[0].URL)
}

func TestStreamerToolEvents(t *testing.T) {
	conn := newFakeConn()
	conn.agentCh <- gateway.Event{
		Channel:   gateway.ChannelAgent,
		RunID:     "run-1",
		Stream:    gateway.StreamTool,
		Phase:     gateway.PhaseStart,
		ToolName:  "screenshot",
		ToolInput: json.RawMessage(`{"target":"dashboard"}`),
	}
	conn.agentCh <- gateway.Event{
		Channel:  gateway.ChannelAgent,
		RunID:    "run-1",
		Stream:   gateway.StreamTool,
		Phase:    gateway.PhaseResult,
		ToolName: "screenshot",
		Result:   json.RawMessage(`"MEDIA: /tmp/shot.png"`),
	}
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"captured"`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	calls := emitter.ofType(EventToolCall)
	require.Len(t, calls, 1)
	assert.Equal(t, "screenshot", calls[0].ToolName)

	results := emitter.ofType(EventToolResult)
	require.Len(t, results, 1)
	assert.Equal(t, "MEDIA: /tmp/shot.png", results[0].Result)

	// The tool-result media marker resolves to an inlined image, joined
	// before the stream completes.
	images := emitter.ofType(EventImage)
	require.Len(t, images, 1)
	assert.Equal(t, "data:image/png;base64,aW1n", images[0].URL)

	events := emitter.all()
	assert.Equal(t, EventDone, events[len(events)-1].Type)
}

// Tool events that are already buffered when a terminal chat event
// arrives must still be relayed. The select between the two channels
// is otherwise free to pick the final first and discard them, so the
// scenario is repeated enough times to make any regression show up.
func TestStreamerBufferedToolEventsSurviveFinal(t *testing.T) {
	for i := 0; i < 100; i++ {
		conn := newFakeConn()
		conn.agentCh <- gateway.Event{
			Channel:   gateway.ChannelAgent,
			RunID:     "run-1",
			Stream:    gateway.StreamTool,
			Phase:     gateway.PhaseStart,
			ToolName:  "exec",
			ToolInput: json.RawMessage(`{"cmd":"uptime"}`),
		}
		conn.agentCh <- gateway.Event{
			Channel:  gateway.ChannelAgent,
			RunID:    "run-1",
			Stream:   gateway.StreamTool,
			Phase:    gateway.PhaseResult,
			ToolName: "exec",
			Result:   json.RawMessage(`"MEDIA: /tmp/up.png"`),
		}
		conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"done"`)

		emitter := &recordingEmitter{}
		require.NoError(t, runStreamer(t, conn, emitter))

		require.Len(t, emitter.ofType(EventToolCall), 1, "iteration %d", i)
		require.Len(t, emitter.ofType(EventToolResult), 1, "iteration %d", i)
		require.Len(t, emitter.ofType(EventImage), 1, "iteration %d", i)

		events := emitter.all()
		require.Equal(t, EventDone, events[len(events)-1].Type, "iteration %d: done comes last", i)
	}
}

// Buffered tool events also precede an error terminal, not just final.
func TestStreamerBufferedToolEventsSurviveError(t *testing.T) {
	conn := newFakeConn()
	conn.agentCh <- gateway.Event{
		Channel:  gateway.ChannelAgent,
		RunID:    "run-1",
		Stream:   gateway.StreamTool,
		Phase:    gateway.PhaseStart,
		ToolName: "exec",
	}
	conn.chatCh <- gateway.Event{
		Channel:      gateway.ChannelChat,
		RunID:        "run-1",
		State:        gateway.StateError,
		ErrorMessage: "tool crashed",
	}

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	events := emitter.all()
	require.Len(t, events, 2)
	assert.Equal(t, EventToolCall, events[0].Type)
	assert.Equal(t, EventError, events[1].Type)
}

func TestStreamerClosedAgentChannel(t *testing.T) {
	conn := newFakeConn()
	close(conn.agentCh)
	conn.chatCh <- chatEvent("run-1", gateway.StateDelta, `"still"`)
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"still here"`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	texts := emitter.ofType(EventText)
	require.Len(t, texts, 2)
	events := emitter.all()
	assert.Equal(t, EventDone, events[len(events)-1].Type, "chat events still complete the stream")
}

func TestStreamerErrorStates(t *testing.T) {
	t.Run("error event carries upstream message", func(t *testing.T) {
		conn := newFakeConn()
		conn.chatCh <- gateway.Event{
			Channel:      gateway.ChannelChat,
			RunID:        "run-1",
			State:        gateway.StateError,
			ErrorMessage: "model overloaded",
		}
		emitter := &recordingEmitter{}
		require.NoError(t, runStreamer(t, conn, emitter))

		errs := emitter.ofType(EventError)
		require.Len(t, errs, 1)
		assert.Equal(t, "model overloaded", errs[0].Message)
		assert.Empty(t, emitter.ofType(EventDone))
	})

	t.Run("aborted without message gets a synthetic one", func(t *testing.T) {
		conn := newFakeConn()
		conn.chatCh <- gateway.Event{
			Channel: gateway.ChannelChat,
			RunID:   "run-1",
			State:   gateway.StateAborted,
		}
		emitter := &recordingEmitter{}
		require.NoError(t, runStreamer(t, conn, emitter))

		errs := emitter.ofType(EventError)
		require.Len(t, errs, 1)
		assert.Equal(t, "agent run aborted", errs[0].Message)
	})
}

func TestStreamerFinalMediaScan(t *testing.T) {
	conn := newFakeConn()
	conn.history = &gateway.HistoryResponse{Messages: []gateway.HistoryMessage{
		{Role: "toolResult", Content: json.RawMessage(`"Image saved: /tmp/hist.png"`)},
		{Role: "user", Content: json.RawMessage(`"MEDIA: /tmp/user.png"`)},
	}}
	conn.chatCh <- chatEvent("run-1", gateway.StateFinal, `"see file:///tmp/final.jpg"`)

	emitter := &recordingEmitter{}
	require.NoError(t, runStreamer(t, conn, emitter))

	images := emitter.ofType(EventImage)
	require.Len(t, images, 2, "final text ref plus history tool result; user rows are not scanned")
	for _, img := range images {
		assert.NotEmpty(t, img.URL)
	}
}
