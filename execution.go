package glitz

import (
	"context"
	"fmt"
	"runtime"

	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

// Execution is the pending result of a submitted task.
type Execution[T any] struct {
	done  chan struct{}
	value T
}

func newExecution[T any]() *Execution[T] {
	return &Execution[T]{done: make(chan struct{})}
}

func (e *Execution[T]) resolve(v T) {
	e.value = v
	close(e.done)
}

// Ready reports whether the task has finished.
func (e *Execution[T]) Ready() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// Value returns the task's output, or false if it has not finished.
func (e *Execution[T]) Value() (T, bool) {
	if !e.Ready() {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Done returns a channel closed when the task finishes.
func (e *Execution[T]) Done() <-chan struct{} { return e.done }

// Wait blocks until the task finishes or ctx is done. A fenced task only
// finishes once [Context.Poll] is called after its fence signals.
func (e *Execution[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-e.done:
		return e.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Submit runs t on c. The task is progressed immediately; if it waits on
// the GPU it is resumed by later calls to [Context.Poll].
//
// Submit fails if t is bound to another context.
func Submit[T any](c *Context, t task.Task[T]) (*Execution[T], error) {
	id := t.ContextID()
	if !id.Accepts(c.ID()) {
		return nil, &task.IncompatibleContextError{A: id, B: task.ID(c.ID())}
	}

	exec := newExecution[T]()
	step := func(conn *state.Connection) bool {
		v, ok := t.Progress(conn).Value()
		if ok {
			exec.resolve(v)
		}
		return ok
	}

	err := c.do(func(conn *state.Connection) error {
		if step(conn) {
			return nil
		}
		// The queue keeps the job when the fence fails; Poll retries it.
		if err := c.queue.Push(conn, step); err != nil {
			c.log().Warn("glitz: fence deferred", "context", conn.ID(), "err", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glitz: submit: %w", err)
	}
	return exec, nil
}

// Run submits t and returns its output if it finishes without waiting on
// the GPU. Otherwise it polls c until the task finishes or ctx is done.
func Run[T any](ctx context.Context, c *Context, t task.Task[T]) (T, error) {
	exec, err := Submit(c, t)
	if err != nil {
		var zero T
		return zero, err
	}
	for !exec.Ready() {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if _, err := c.Poll(); err != nil {
			var zero T
			return zero, err
		}
		runtime.Gosched()
	}
	v, _ := exec.Value()
	return v, nil
}
