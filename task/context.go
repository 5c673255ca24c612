package task

import (
	"errors"
	"fmt"
)

// ErrIncompatibleContext is returned when two context ids cannot be combined.
var ErrIncompatibleContext = errors.New("task: incompatible context ids")

// ContextID names the context a task must run on. The zero value is [Any].
type ContextID struct {
	id uint64
}

// Any is the id of tasks that may run on any context.
var Any = ContextID{}

// ID returns the context id for a connection id. Id 0 is [Any].
func ID(id uint64) ContextID {
	return ContextID{id: id}
}

// IsAny reports whether c accepts any context.
func (c ContextID) IsAny() bool { return c.id == 0 }

// Value returns the concrete context id, or false for [Any].
func (c ContextID) Value() (uint64, bool) {
	return c.id, c.id != 0
}

// Accepts reports whether a task with id c may run on connection id.
func (c ContextID) Accepts(id uint64) bool {
	return c.id == 0 || c.id == id
}

// String returns "any" or "context(N)".
func (c ContextID) String() string {
	if c.id == 0 {
		return "any"
	}
	return fmt.Sprintf("context(%d)", c.id)
}

// Combine returns the id of a task composed of tasks with ids c and other.
// Any combines with everything; two concrete ids combine only if equal.
func (c ContextID) Combine(other ContextID) (ContextID, error) {
	switch {
	case c.id == 0:
		return other, nil
	case other.id == 0 || other.id == c.id:
		return c, nil
	default:
		return Any, &IncompatibleContextError{A: c, B: other}
	}
}

// IncompatibleContextError reports two tasks bound to different contexts.
type IncompatibleContextError struct {
	A, B ContextID
}

func (e *IncompatibleContextError) Error() string {
	return fmt.Sprintf("task: cannot combine tasks for %v and %v", e.A, e.B)
}

// Is reports whether target is ErrIncompatibleContext.
func (e *IncompatibleContextError) Is(target error) bool {
	return target == ErrIncompatibleContext
}

// mustCombine folds ids with Combine and panics on a mismatch.
func mustCombine(ids ...ContextID) ContextID {
	id := Any
	for _, other := range ids {
		var err error
		if id, err = id.Combine(other); err != nil {
			panic(err)
		}
	}
	return id
}
