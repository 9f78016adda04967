package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/clawdeck/clawdeck/pkg/gateway"
)

// mediaScanHistoryLimit bounds the post-hoc history fetch on final:
// the gateway emits no dedicated event for images embedded in tool
// output, so the tail of the remote history is re-scanned instead.
const mediaScanHistoryLimit = 10

// Emitter receives stream events in emission order. Implementations
// must be safe for concurrent use: tool-result image reads emit from
// background goroutines.
type Emitter interface {
	Emit(ev StreamEvent)
}

// Streamer correlates gateway events for one send-message request and
// relays them as stream events. It subscribes to the chat and agent
// channels of a shared gateway connection, filters by runId, and
// incrementally diffs streamed text/thinking so the client only ever
// receives non-overlapping appended chunks.
type Streamer struct {
	conn       gateway.Conn
	media      *MediaResolver
	emitter    Emitter
	runID      string
	sessionKey string

	lastText     string
	lastThinking string
	imageCount   int

	// pending tracks in-flight tool-result image reads so teardown can
	// wait for them instead of closing the stream underneath them.
	pending sync.WaitGroup
}

// NewStreamer creates a correlator for one request. runID must match
// the idempotency key passed to SendMessage.
func NewStreamer(conn gateway.Conn, media *MediaResolver, emitter Emitter, runID, sessionKey string) *Streamer {
	return &Streamer{
		conn:       conn,
		media:      media,
		emitter:    emitter,
		runID:      runID,
		sessionKey: sessionKey,
	}
}

// Run subscribes to the gateway event channels, invokes send, and
// relays correlated events until a terminal chat event arrives or ctx
// is cancelled. Subscriptions are registered before send fires so no
// early event can be missed, and are always released on return. The
// stream always terminates with a done or error event unless the
// client went away first.
func (s *Streamer) Run(ctx context.Context, send func(ctx context.Context) error) error {
	chatCh, unsubChat := s.conn.Subscribe(gateway.ChannelChat)
	defer unsubChat()
	agentCh, unsubAgent := s.conn.Subscribe(gateway.ChannelAgent)
	defer unsubAgent()
	defer s.pending.Wait()

	if err := send(ctx); err != nil {
		s.emitter.Emit(StreamEvent{Type: EventError, Message: err.Error()})
		return err
	}

	for {
		select {
		case <-ctx.Done():
			// Client disconnected. In-flight work runs to completion;
			// its writes are discarded by the closed emitter.
			return ctx.Err()

		case ev, ok := <-chatCh:
			if !ok {
				s.emitter.Emit(StreamEvent{Type: EventError, Message: "gateway connection lost"})
				return nil
			}
			// Relay tool events that were already received before this
			// chat event: a terminal state must not discard buffered
			// tool_call/tool_result frames the select raced past.
			agentCh = s.drainAgentEvents(agentCh)
			if done := s.handleChatEvent(ctx, ev); done {
				return nil
			}

		case ev, ok := <-agentCh:
			if !ok {
				// A closed channel is always ready; stop selecting on
				// it so the loop doesn't spin. Chat events still flow.
				agentCh = nil
				continue
			}
			s.handleAgentEvent(ev)
		}
	}
}

// drainAgentEvents relays every agent event already buffered on the
// channel without blocking. Returns nil once the channel is closed so
// the caller stops selecting on it.
func (s *Streamer) drainAgentEvents(agentCh <-chan gateway.Event) <-chan gateway.Event {
	if agentCh == nil {
		return nil
	}
	for {
		select {
		case ev, ok := <-agentCh:
			if !ok {
				return nil
			}
			s.handleAgentEvent(ev)
		default:
			return agentCh
		}
	}
}

// handleChatEvent processes one chat-channel event. Returns true when
// the stream reached a terminal state.
func (s *Streamer) handleChatEvent(ctx context.Context, ev gateway.Event) bool {
	if ev.RunID != s.runID {
		return false
	}

	switch ev.State {
	case gateway.StateDelta:
		s.emitContentDeltas(ev.Message)
		return false

	case gateway.StateFinal:
		s.emitContentDeltas(ev.Message)
		s.finalMediaScan(ctx)
		s.pending.Wait()
		s.emitter.Emit(StreamEvent{Type: EventDone})
		return true

	case gateway.StateError, gateway.StateAborted:
		msg := ev.ErrorMessage
		if msg == "" {
			msg = "agent run " + ev.State
		}
		s.emitter.Emit(StreamEvent{Type: EventError, Message: msg})
		return true
	}
	return false
}

// emitContentDeltas diffs the evolving message content against what
// has already been emitted and streams only the suffix. When the new
// content is not a superset of the old (the model revised earlier
// text), the revision is ignored: emitting nothing keeps the client
// view consistent, at the cost of dropping the correction.
func (s *Streamer) emitContentDeltas(raw []byte) {
	blocks := NormalizeContent(raw)

	if text := Text(blocks); text != s.lastText {
		if delta, ok := monotonicSuffix(s.lastText, text); ok && delta != "" {
			s.emitter.Emit(StreamEvent{Type: EventText, Text: delta})
			s.lastText = text
		}
	}
	if thinking := Thinking(blocks); thinking != s.lastThinking {
		if delta, ok := monotonicSuffix(s.lastThinking, thinking); ok && delta != "" {
			s.emitter.Emit(StreamEvent{Type: EventThinking, Text: delta})
			s.lastThinking = thinking
		}
	}

	images := Images(blocks)
	for ; s.imageCount < len(images); s.imageCount++ {
		img := images[s.imageCount]
		s.emitter.Emit(StreamEvent{
			Type:     EventImage,
			URL:      img.URL,
			MimeType: img.MimeType,
			Alt:      img.Alt,
		})
	}
}

// monotonicSuffix returns the appended suffix when current extends
// previous, and ok=false when the upstream rewrote already-emitted
// text.
func monotonicSuffix(previous, current string) (string, bool) {
	if !strings.HasPrefix(current, previous) {
		return "", false
	}
	return current[len(previous):], true
}

// handleAgentEvent relays tool activity. Tool results are additionally
// scanned for media markers; any resolved image is read off the event
// loop and emitted as its own image event.
func (s *Streamer) handleAgentEvent(ev gateway.Event) {
	if ev.RunID != s.runID || ev.Stream != gateway.StreamTool {
		return
	}

	switch ev.Phase {
	case gateway.PhaseStart:
		s.emitter.Emit(StreamEvent{
			Type:      EventToolCall,
			ToolName:  ev.ToolName,
			ToolInput: ev.ToolInput,
		})

	case gateway.PhaseResult:
		result := ev.ResultText()
		s.emitter.Emit(StreamEvent{
			Type:     EventToolResult,
			ToolName: ev.ToolName,
			Result:   result,
		})
		for _, path := range ExtractMediaPaths(result) {
			s.emitImageAsync(path)
		}
	}
}

// emitImageAsync reads an image in the background, tracked so
// teardown can join it before the stream closes.
func (s *Streamer) emitImageAsync(path string) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.emitImagePath(path)
	}()
}

func (s *Streamer) emitImagePath(path string) {
	dataURL, ok := s.media.ReadDataURL(path)
	if !ok {
		slog.Debug("Skipping unreadable or disallowed media path", "path", path)
		return
	}
	s.emitter.Emit(StreamEvent{
		Type:     EventImage,
		URL:      dataURL,
		MimeType: mimeForPath(path),
	})
}

// finalMediaScan runs after the final delta: it resolves file://
// references in the final text and re-fetches the tail of the remote
// history to catch images that only appear inside tool output. All
// failures are swallowed; a missing image never blocks stream
// completion.
func (s *Streamer) finalMediaScan(ctx context.Context) {
	for _, path := range ExtractFileProtocolPaths(s.lastText) {
		s.emitImagePath(path)
	}

	history, err := s.conn.History(ctx, s.sessionKey, mediaScanHistoryLimit)
	if err != nil {
		slog.Warn("Post-hoc media scan history fetch failed",
			"session_key", s.sessionKey, "error", err)
		return
	}

	seen := make(map[string]bool)
	for _, msg := range history.Messages {
		if msg.Role != "assistant" && msg.Role != "toolResult" {
			continue
		}
		text := Text(NormalizeContent(msg.Content))
		for _, path := range append(ExtractMediaPaths(text), ExtractFileProtocolPaths(text)...) {
			if seen[path] {
				continue
			}
			seen[path] = true
			s.emitImagePath(path)
		}
	}
}
