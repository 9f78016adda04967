// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/ent/predicate"
)

// ChatMessageSnapshotDelete is the builder for deleting a ChatMessageSnapshot entity.
type ChatMessageSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ChatMessageSnapshotMutation
}

// Where appends a list predicates to the ChatMessageSnapshotDelete builder.
func (_d *ChatMessageSnapshotDelete) Where(ps ...predicate.ChatMessageSnapshot) *ChatMessageSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChatMessageSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatMessageSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChatMessageSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chatmessagesnapshot.Table, sqlgraph.NewFieldSpec(chatmessagesnapshot.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChatMessageSnapshotDeleteOne is the builder for deleting a single ChatMessageSnapshot entity.
type ChatMessageSnapshotDeleteOne struct {
	_d *ChatMessageSnapshotDelete
}

// Where appends a list predicates to the ChatMessageSnapshotDelete builder.
func (_d *ChatMessageSnapshotDeleteOne) Where(ps ...predicate.ChatMessageSnapshot) *ChatMessageSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChatMessageSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chatmessagesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatMessageSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
