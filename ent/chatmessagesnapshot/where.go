// Code generated by ent, DO NOT EDIT.

package chatmessagesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clawdeck/clawdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContainsFold(FieldID, id))
}

// ChatSessionID applies equality check predicate on the "chat_session_id" field. It's identical to ChatSessionIDEQ.
func ChatSessionID(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldChatSessionID, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldBatchID, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldOrderIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldContent, v))
}

// Thinking applies equality check predicate on the "thinking" field. It's identical to ThinkingEQ.
func Thinking(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldThinking, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// ChatSessionIDEQ applies the EQ predicate on the "chat_session_id" field.
func ChatSessionIDEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldChatSessionID, v))
}

// ChatSessionIDNEQ applies the NEQ predicate on the "chat_session_id" field.
func ChatSessionIDNEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldChatSessionID, v))
}

// ChatSessionIDIn applies the In predicate on the "chat_session_id" field.
func ChatSessionIDIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldChatSessionID, vs...))
}

// ChatSessionIDNotIn applies the NotIn predicate on the "chat_session_id" field.
func ChatSessionIDNotIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldChatSessionID, vs...))
}

// ChatSessionIDGT applies the GT predicate on the "chat_session_id" field.
func ChatSessionIDGT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldChatSessionID, v))
}

// ChatSessionIDGTE applies the GTE predicate on the "chat_session_id" field.
func ChatSessionIDGTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldChatSessionID, v))
}

// ChatSessionIDLT applies the LT predicate on the "chat_session_id" field.
func ChatSessionIDLT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldChatSessionID, v))
}

// ChatSessionIDLTE applies the LTE predicate on the "chat_session_id" field.
func ChatSessionIDLTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldChatSessionID, v))
}

// ChatSessionIDContains applies the Contains predicate on the "chat_session_id" field.
func ChatSessionIDContains(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContains(FieldChatSessionID, v))
}

// ChatSessionIDHasPrefix applies the HasPrefix predicate on the "chat_session_id" field.
func ChatSessionIDHasPrefix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasPrefix(FieldChatSessionID, v))
}

// ChatSessionIDHasSuffix applies the HasSuffix predicate on the "chat_session_id" field.
func ChatSessionIDHasSuffix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasSuffix(FieldChatSessionID, v))
}

// ChatSessionIDEqualFold applies the EqualFold predicate on the "chat_session_id" field.
func ChatSessionIDEqualFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEqualFold(FieldChatSessionID, v))
}

// ChatSessionIDContainsFold applies the ContainsFold predicate on the "chat_session_id" field.
func ChatSessionIDContainsFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContainsFold(FieldChatSessionID, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContainsFold(FieldBatchID, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldOrderIndex, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldRole, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContainsFold(FieldContent, v))
}

// ContentBlocksIsNil applies the IsNil predicate on the "content_blocks" field.
func ContentBlocksIsNil() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIsNull(FieldContentBlocks))
}

// ContentBlocksNotNil applies the NotNil predicate on the "content_blocks" field.
func ContentBlocksNotNil() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotNull(FieldContentBlocks))
}

// ThinkingEQ applies the EQ predicate on the "thinking" field.
func ThinkingEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldThinking, v))
}

// ThinkingNEQ applies the NEQ predicate on the "thinking" field.
func ThinkingNEQ(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldThinking, v))
}

// ThinkingIn applies the In predicate on the "thinking" field.
func ThinkingIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldThinking, vs...))
}

// ThinkingNotIn applies the NotIn predicate on the "thinking" field.
func ThinkingNotIn(vs ...string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldThinking, vs...))
}

// ThinkingGT applies the GT predicate on the "thinking" field.
func ThinkingGT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldThinking, v))
}

// ThinkingGTE applies the GTE predicate on the "thinking" field.
func ThinkingGTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldThinking, v))
}

// ThinkingLT applies the LT predicate on the "thinking" field.
func ThinkingLT(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldThinking, v))
}

// ThinkingLTE applies the LTE predicate on the "thinking" field.
func ThinkingLTE(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldThinking, v))
}

// ThinkingContains applies the Contains predicate on the "thinking" field.
func ThinkingContains(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContains(FieldThinking, v))
}

// ThinkingHasPrefix applies the HasPrefix predicate on the "thinking" field.
func ThinkingHasPrefix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasPrefix(FieldThinking, v))
}

// ThinkingHasSuffix applies the HasSuffix predicate on the "thinking" field.
func ThinkingHasSuffix(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldHasSuffix(FieldThinking, v))
}

// ThinkingIsNil applies the IsNil predicate on the "thinking" field.
func ThinkingIsNil() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIsNull(FieldThinking))
}

// ThinkingNotNil applies the NotNil predicate on the "thinking" field.
func ThinkingNotNil() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotNull(FieldThinking))
}

// ThinkingEqualFold applies the EqualFold predicate on the "thinking" field.
func ThinkingEqualFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEqualFold(FieldThinking, v))
}

// ThinkingContainsFold applies the ContainsFold predicate on the "thinking" field.
func ThinkingContainsFold(v string) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldContainsFold(FieldThinking, v))
}

// ToolCallsIsNil applies the IsNil predicate on the "tool_calls" field.
func ToolCallsIsNil() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIsNull(FieldToolCalls))
}

// ToolCallsNotNil applies the NotNil predicate on the "tool_calls" field.
func ToolCallsNotNil() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotNull(FieldToolCalls))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ChatSession) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatMessageSnapshot) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatMessageSnapshot) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatMessageSnapshot) predicate.ChatMessageSnapshot {
	return predicate.ChatMessageSnapshot(sql.NotPredicates(p))
}
