package api

import (
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clawdeck/clawdeck/pkg/chat"
)

func TestSSEWriterFramesEvents(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newSSEWriter(rec)

	w.Emit(chat.StreamEvent{Type: chat.EventText, Text: "hello"})
	w.Emit(chat.StreamEvent{Type: chat.EventDone})

	body := rec.Body.String()
	assert.Equal(t,
		"data: {\"type\":\"text\",\"text\":\"hello\"}\n\n"+
			"data: {\"type\":\"done\"}\n\n",
		body)
	assert.True(t, rec.Flushed)
}

type failingWriter struct {
	*httptest.ResponseRecorder
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("client gone")
}

func TestSSEWriterGoesSilentAfterWriteError(t *testing.T) {
	fw := &failingWriter{ResponseRecorder: httptest.NewRecorder()}
	w := newSSEWriter(fw)

	w.Emit(chat.StreamEvent{Type: chat.EventText, Text: "a"})
	w.Emit(chat.StreamEvent{Type: chat.EventText, Text: "b"})
	w.Emit(chat.StreamEvent{Type: chat.EventDone})

	assert.Equal(t, 1, fw.writes, "no writes are attempted after the first failure")
}

func TestSSEWriterConcurrentEmit(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newSSEWriter(rec)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Emit(chat.StreamEvent{Type: chat.EventText, Text: "chunk"})
		}()
	}
	wg.Wait()

	// Every frame is intact: no interleaved writes.
	const frame = "data: {\"type\":\"text\",\"text\":\"chunk\"}\n\n"
	body := rec.Body.String()
	assert.Equal(t, 20, strings.Count(body, frame))
	assert.Len(t, body, 20*len(frame))
}
