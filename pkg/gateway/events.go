// Package gateway implements the client side of the gateway protocol:
// one persistent WebSocket per connected instance carrying
// request/response RPC frames and pushed events on logical channels.
package gateway

import "encoding/json"

// Logical event channels pushed by a gateway instance.
const (
	ChannelChat  = "chat"
	ChannelAgent = "agent"
)

// Chat event states.
const (
	StateDelta   = "delta"
	StateFinal   = "final"
	StateError   = "error"
	StateAborted = "aborted"
)

// Agent tool event phases.
const (
	PhaseStart  = "start"
	PhaseResult = "result"
)

// StreamTool identifies tool activity on the agent channel.
const StreamTool = "tool"

// Event is one pushed gateway event. Every event carries the runId of
// the send that produced it; consumers filter on it to ignore
// cross-talk from concurrent sends on the same connection.
type Event struct {
	Channel string `json:"channel"`
	RunID   string `json:"runId"`

	// chat channel
	State        string          `json:"state,omitempty"`
	Message      json.RawMessage `json:"message,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`

	// agent channel
	Stream    string          `json:"stream,omitempty"`
	Phase     string          `json:"phase,omitempty"`
	ToolName  string          `json:"toolName,omitempty"`
	ToolInput json.RawMessage `json:"toolInput,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
}

// ResultText returns the tool result as plain text: a JSON string is
// unquoted, anything else is passed through raw.
func (e *Event) ResultText() string {
	var s string
	if err := json.Unmarshal(e.Result, &s); err == nil {
		return s
	}
	return string(e.Result)
}

// HistoryMessage is one entry returned by the chat.history RPC.
type HistoryMessage struct {
	Role     string          `json:"role"`
	Content  json.RawMessage `json:"content"`
	ToolName string          `json:"toolName,omitempty"`
}

// HistoryResponse is the chat.history RPC result.
type HistoryResponse struct {
	Messages []HistoryMessage `json:"messages"`
}

// SendOptions carries optional parameters for SendMessage.
type SendOptions struct {
	Attachments []SendAttachment `json:"attachments,omitempty"`
}

// SendAttachment is one inline attachment forwarded to the agent.
type SendAttachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"` // base64
}
