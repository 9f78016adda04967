package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/clawdeck/clawdeck/pkg/chat"
)

// sseWriter serializes stream events as server-sent-event frames. It is
// safe for concurrent use: background media reads emit from their own
// goroutines. After the first write error the writer goes silent: the
// client is gone, and the in-flight producers just drain.
type sseWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	closed  bool
}

func newSSEWriter(w http.ResponseWriter) *sseWriter {
	flusher, _ := w.(http.Flusher)
	return &sseWriter{w: w, flusher: flusher}
}

// Emit implements chat.Emitter.
func (s *sseWriter) Emit(ev chat.StreamEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to marshal stream event", "type", ev.Type, "error", err)
		return
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		s.closed = true
		return
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
