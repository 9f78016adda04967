// Package models contains the shared request/response and snapshot
// shapes exchanged between the API layer and the services.
package models

import (
	"time"

	"github.com/clawdeck/clawdeck/pkg/chat"
)

// SendChatRequest is the body of POST /api/v1/chat.
type SendChatRequest struct {
	InstanceID  string            `json:"instance_id"`
	AgentID     string            `json:"agent_id"`
	Message     string            `json:"message"`
	SessionID   string            `json:"session_id,omitempty"`
	Attachments []chat.Attachment `json:"attachments,omitempty"`
}

// SnapshotRow is one reconstructed message in an archive batch, in
// batch order. toolResult protocol rows never become their own
// SnapshotRow; they attach to the preceding assistant row's ToolCalls.
type SnapshotRow struct {
	Role          string
	Content       string
	Thinking      string
	ContentBlocks []chat.ImageRef
	ToolCalls     []chat.ToolCall
}

// SessionSummary is one entry in the session list response.
type SessionSummary struct {
	ID            string    `json:"id"`
	InstanceID    string    `json:"instance_id"`
	AgentID       string    `json:"agent_id"`
	Title         *string   `json:"title"`
	LastMessageAt time.Time `json:"last_message_at"`
	MessageCount  int       `json:"message_count"`
	IsActive      bool      `json:"is_active"`
}

// SessionMessage is one archived snapshot row in the session history
// response. Consecutive rows with different BatchID mark a context
// reset boundary.
type SessionMessage struct {
	ID            string                   `json:"id"`
	BatchID       string                   `json:"batch_id"`
	OrderIndex    int                      `json:"order_index"`
	Role          string                   `json:"role"`
	Content       string                   `json:"content"`
	ContentBlocks []map[string]interface{} `json:"content_blocks,omitempty"`
	Thinking      *string                  `json:"thinking,omitempty"`
	ToolCalls     []map[string]interface{} `json:"tool_calls,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}
