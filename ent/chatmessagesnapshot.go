// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/ent/chatsession"
)

// ChatMessageSnapshot is the model entity for the ChatMessageSnapshot schema.
type ChatMessageSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatSessionID holds the value of the "chat_session_id" field.
	ChatSessionID string `json:"chat_session_id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// Monotonic within a batch
	OrderIndex int `json:"order_index,omitempty"`
	// Role holds the value of the "role" field.
	Role chatmessagesnapshot.Role `json:"role,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Structured extras, e.g. image refs
	ContentBlocks []map[string]interface{} `json:"content_blocks,omitempty"`
	// Thinking holds the value of the "thinking" field.
	Thinking *string `json:"thinking,omitempty"`
	// Ordered [{toolName, toolInput, toolOutput}]
	ToolCalls []map[string]interface{} `json:"tool_calls,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatMessageSnapshotQuery when eager-loading is set.
	Edges        ChatMessageSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatMessageSnapshotEdges holds the relations/edges for other nodes in the graph.
type ChatMessageSnapshotEdges struct {
	// Session holds the value of the session edge.
	Session *ChatSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatMessageSnapshotEdges) SessionOrErr() (*ChatSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatMessageSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatmessagesnapshot.FieldContentBlocks, chatmessagesnapshot.FieldToolCalls:
			values[i] = new([]byte)
		case chatmessagesnapshot.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case chatmessagesnapshot.FieldID, chatmessagesnapshot.FieldChatSessionID, chatmessagesnapshot.FieldBatchID, chatmessagesnapshot.FieldRole, chatmessagesnapshot.FieldContent, chatmessagesnapshot.FieldThinking:
			values[i] = new(sql.NullString)
		case chatmessagesnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatMessageSnapshot fields.
func (_m *ChatMessageSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatmessagesnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatmessagesnapshot.FieldChatSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_session_id", values[i])
			} else if value.Valid {
				_m.ChatSessionID = value.String
			}
		case chatmessagesnapshot.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case chatmessagesnapshot.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case chatmessagesnapshot.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = chatmessagesnapshot.Role(value.String)
			}
		case chatmessagesnapshot.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case chatmessagesnapshot.FieldContentBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentBlocks); err != nil {
					return fmt.Errorf("unmarshal field content_blocks: %w", err)
				}
			}
		case chatmessagesnapshot.FieldThinking:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thinking", values[i])
			} else if value.Valid {
				_m.Thinking = new(string)
				*_m.Thinking = value.String
			}
		case chatmessagesnapshot.FieldToolCalls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCalls); err != nil {
					return fmt.Errorf("unmarshal field tool_calls: %w", err)
				}
			}
		case chatmessagesnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatMessageSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ChatMessageSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ChatMessageSnapshot entity.
func (_m *ChatMessageSnapshot) QuerySession() *ChatSessionQuery {
	return NewChatMessageSnapshotClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ChatMessageSnapshot.
// Note that you need to call ChatMessageSnapshot.Unwrap() before calling this method if this ChatMessageSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatMessageSnapshot) Update() *ChatMessageSnapshotUpdateOne {
	return NewChatMessageSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatMessageSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatMessageSnapshot) Unwrap() *ChatMessageSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatMessageSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatMessageSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ChatMessageSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_session_id=")
	builder.WriteString(_m.ChatSessionID)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("content_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentBlocks))
	builder.WriteString(", ")
	if v := _m.Thinking; v != nil {
		builder.WriteString("thinking=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCalls))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatMessageSnapshots is a parsable slice of ChatMessageSnapshot.
type ChatMessageSnapshots []*ChatMessageSnapshot
