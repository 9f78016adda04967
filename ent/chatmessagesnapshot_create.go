// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/ent/chatsession"
)

// ChatMessageSnapshotCreate is the builder for creating a ChatMessageSnapshot entity.
type ChatMessageSnapshotCreate struct {
	config
	mutation *ChatMessageSnapshotMutation
	hooks    []Hook
}

// SetChatSessionID sets the "chat_session_id" field.
func (_c *ChatMessageSnapshotCreate) SetChatSessionID(v string) *ChatMessageSnapshotCreate {
	_c.mutation.SetChatSessionID(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ChatMessageSnapshotCreate) SetBatchID(v string) *ChatMessageSnapshotCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ChatMessageSnapshotCreate) SetOrderIndex(v int) *ChatMessageSnapshotCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ChatMessageSnapshotCreate) SetRole(v chatmessagesnapshot.Role) *ChatMessageSnapshotCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChatMessageSnapshotCreate) SetContent(v string) *ChatMessageSnapshotCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContentBlocks sets the "content_blocks" field.
func (_c *ChatMessageSnapshotCreate) SetContentBlocks(v []map[string]interface{}) *ChatMessageSnapshotCreate {
	_c.mutation.SetContentBlocks(v)
	return _c
}

// SetThinking sets the "thinking" field.
func (_c *ChatMessageSnapshotCreate) SetThinking(v string) *ChatMessageSnapshotCreate {
	_c.mutation.SetThinking(v)
	return _c
}

// SetNillableThinking sets the "thinking" field if the given value is not nil.
func (_c *ChatMessageSnapshotCreate) SetNillableThinking(v *string) *ChatMessageSnapshotCreate {
	if v != nil {
		_c.SetThinking(*v)
	}
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *ChatMessageSnapshotCreate) SetToolCalls(v []map[string]interface{}) *ChatMessageSnapshotCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatMessageSnapshotCreate) SetCreatedAt(v time.Time) *ChatMessageSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatMessageSnapshotCreate) SetNillableCreatedAt(v *time.Time) *ChatMessageSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatMessageSnapshotCreate) SetID(v string) *ChatMessageSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSessionID sets the "session" edge to the ChatSession entity by ID.
func (_c *ChatMessageSnapshotCreate) SetSessionID(id string) *ChatMessageSnapshotCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *ChatMessageSnapshotCreate) SetSession(v *ChatSession) *ChatMessageSnapshotCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ChatMessageSnapshotMutation object of the builder.
func (_c *ChatMessageSnapshotCreate) Mutation() *ChatMessageSnapshotMutation {
	return _c.mutation
}

// Save creates the ChatMessageSnapshot in the database.
func (_c *ChatMessageSnapshotCreate) Save(ctx context.Context) (*ChatMessageSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatMessageSnapshotCreate) SaveX(ctx context.Context) *ChatMessageSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatMessageSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatmessagesnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatMessageSnapshotCreate) check() error {
	if _, ok := _c.mutation.ChatSessionID(); !ok {
		return &ValidationError{Name: "chat_session_id", err: errors.New(`ent: missing required field "ChatMessageSnapshot.chat_session_id"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "ChatMessageSnapshot.batch_id"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ChatMessageSnapshot.order_index"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ChatMessageSnapshot.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := chatmessagesnapshot.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatMessageSnapshot.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ChatMessageSnapshot.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatMessageSnapshot.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ChatMessageSnapshot.session"`)}
	}
	return nil
}

func (_c *ChatMessageSnapshotCreate) sqlSave(ctx context.Context) (*ChatMessageSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChatMessageSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatMessageSnapshotCreate) createSpec() (*ChatMessageSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatMessageSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatmessagesnapshot.Table, sqlgraph.NewFieldSpec(chatmessagesnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(chatmessagesnapshot.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(chatmessagesnapshot.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(chatmessagesnapshot.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chatmessagesnapshot.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ContentBlocks(); ok {
		_spec.SetField(chatmessagesnapshot.FieldContentBlocks, field.TypeJSON, value)
		_node.ContentBlocks = value
	}
	if value, ok := _c.mutation.Thinking(); ok {
		_spec.SetField(chatmessagesnapshot.FieldThinking, field.TypeString, value)
		_node.Thinking = &value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(chatmessagesnapshot.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatmessagesnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessagesnapshot.SessionTable,
			Columns: []string{chatmessagesnapshot.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatSessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChatMessageSnapshotCreateBulk is the builder for creating many ChatMessageSnapshot entities in bulk.
type ChatMessageSnapshotCreateBulk struct {
	config
	err      error
	builders []*ChatMessageSnapshotCreate
}

// Save creates the ChatMessageSnapshot entities in the database.
func (_c *ChatMessageSnapshotCreateBulk) Save(ctx context.Context) ([]*ChatMessageSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatMessageSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatMessageSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChatMessageSnapshotCreateBulk) SaveX(ctx context.Context) []*ChatMessageSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatMessageSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatMessageSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
