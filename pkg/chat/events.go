package chat

import "encoding/json"

// StreamEvent type values, mirrored on the SSE wire.
const (
	EventText       = "text"
	EventThinking   = "thinking"
	EventImage      = "image"
	EventToolCall   = "tool_call"
	EventToolResult = "tool_result"
	EventError      = "error"
	EventDone       = "done"
)

// StreamEvent is one frame on the outbound SSE stream. It is a tagged
// union: Type selects which of the optional fields are meaningful.
// Ephemeral: exists only for the duration of one connection.
type StreamEvent struct {
	Type string `json:"type"`

	// text / thinking deltas
	Text string `json:"text,omitempty"`

	// image
	URL      string `json:"url,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Alt      string `json:"alt,omitempty"`

	// tool_call / tool_result
	ToolName  string          `json:"toolName,omitempty"`
	ToolInput json.RawMessage `json:"toolInput,omitempty"`
	Result    string          `json:"result,omitempty"`

	// error
	Message string `json:"message,omitempty"`
}

// ToolCall is one persisted tool invocation record on an archived
// assistant message.
type ToolCall struct {
	ToolName   string          `json:"toolName"`
	ToolInput  json.RawMessage `json:"toolInput,omitempty"`
	ToolOutput string          `json:"toolOutput,omitempty"`
}

// Attachment is one user-supplied or workspace-discovered file,
// base64-encoded for inline delivery.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}
