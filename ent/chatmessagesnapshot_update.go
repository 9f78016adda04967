// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/ent/predicate"
)

// ChatMessageSnapshotUpdate is the builder for updating ChatMessageSnapshot entities.
type ChatMessageSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageSnapshotMutation
}

// Where appends a list predicates to the ChatMessageSnapshotUpdate builder.
func (_u *ChatMessageSnapshotUpdate) Where(ps ...predicate.ChatMessageSnapshot) *ChatMessageSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ChatMessageSnapshotMutation object of the builder.
func (_u *ChatMessageSnapshotUpdate) Mutation() *ChatMessageSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageSnapshotUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessageSnapshot.session"`)
	}
	return nil
}

func (_u *ChatMessageSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessagesnapshot.Table, chatmessagesnapshot.Columns, sqlgraph.NewFieldSpec(chatmessagesnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ContentBlocksCleared() {
		_spec.ClearField(chatmessagesnapshot.FieldContentBlocks, field.TypeJSON)
	}
	if _u.mutation.ThinkingCleared() {
		_spec.ClearField(chatmessagesnapshot.FieldThinking, field.TypeString)
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(chatmessagesnapshot.FieldToolCalls, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessagesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageSnapshotUpdateOne is the builder for updating a single ChatMessageSnapshot entity.
type ChatMessageSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageSnapshotMutation
}

// Mutation returns the ChatMessageSnapshotMutation object of the builder.
func (_u *ChatMessageSnapshotUpdateOne) Mutation() *ChatMessageSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageSnapshotUpdate builder.
func (_u *ChatMessageSnapshotUpdateOne) Where(ps ...predicate.ChatMessageSnapshot) *ChatMessageSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageSnapshotUpdateOne) Select(field string, fields ...string) *ChatMessageSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessageSnapshot entity.
func (_u *ChatMessageSnapshotUpdateOne) Save(ctx context.Context) (*ChatMessageSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageSnapshotUpdateOne) SaveX(ctx context.Context) *ChatMessageSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageSnapshotUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessageSnapshot.session"`)
	}
	return nil
}

func (_u *ChatMessageSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessageSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessagesnapshot.Table, chatmessagesnapshot.Columns, sqlgraph.NewFieldSpec(chatmessagesnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessageSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessagesnapshot.FieldID)
		for _, f := range fields {
			if !chatmessagesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessagesnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ContentBlocksCleared() {
		_spec.ClearField(chatmessagesnapshot.FieldContentBlocks, field.TypeJSON)
	}
	if _u.mutation.ThinkingCleared() {
		_spec.ClearField(chatmessagesnapshot.FieldThinking, field.TypeString)
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(chatmessagesnapshot.FieldToolCalls, field.TypeJSON)
	}
	_node = &ChatMessageSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessagesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
