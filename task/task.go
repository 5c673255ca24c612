package task

import "github.com/gogpu/glitz/state"

// Progress is the outcome of progressing a task once.
type Progress[T any] struct {
	value    T
	finished bool
}

// Finished reports a task that completed with v.
func Finished[T any](v T) Progress[T] {
	return Progress[T]{value: v, finished: true}
}

// ContinueFenced reports a task that must be progressed again after a fence
// inserted now has signaled.
func ContinueFenced[T any]() Progress[T] {
	return Progress[T]{}
}

// IsFinished reports whether the task finished.
func (p Progress[T]) IsFinished() bool { return p.finished }

// Value returns the output and whether the task finished.
func (p Progress[T]) Value() (T, bool) { return p.value, p.finished }

// Task is a unit of deferred GPU work producing a T.
type Task[T any] interface {
	// ContextID returns the context the task must run on.
	ContextID() ContextID

	// Progress advances the task. Once it returns a finished progress the
	// task must not be progressed again.
	Progress(conn *state.Connection) Progress[T]
}

type leaf[T any] struct {
	id       ContextID
	fn       func(conn *state.Connection) Progress[T]
	finished bool
}

// New returns a leaf task that calls fn each time it is progressed, until fn
// reports that it finished.
func New[T any](id ContextID, fn func(conn *state.Connection) Progress[T]) Task[T] {
	return &leaf[T]{id: id, fn: fn}
}

// Func returns a leaf task that runs fn once and finishes with its result.
func Func[T any](id ContextID, fn func(conn *state.Connection) T) Task[T] {
	return New(id, func(conn *state.Connection) Progress[T] {
		return Finished(fn(conn))
	})
}

// Ready returns a leaf task that finishes immediately with v.
func Ready[T any](v T) Task[T] {
	return New(Any, func(*state.Connection) Progress[T] { return Finished(v) })
}

// Empty returns a leaf task that does nothing.
func Empty() Task[struct{}] {
	return Ready(struct{}{})
}

func (t *leaf[T]) ContextID() ContextID { return t.id }

func (t *leaf[T]) Progress(conn *state.Connection) Progress[T] {
	if t.finished {
		panic("task: leaf task progressed after it finished")
	}
	p := t.fn(conn)
	if p.finished {
		t.finished = true
		t.fn = nil
	}
	return p
}

// maybeDone holds a sub-task until it finishes and then its output.
type maybeDone[T any] struct {
	task  Task[T]
	value T
	done  bool
	taken bool
}

func (m *maybeDone[T]) progress(conn *state.Connection) bool {
	if m.taken {
		panic("task: composite task progressed after it finished")
	}
	if m.done {
		return true
	}
	p := m.task.Progress(conn)
	if !p.finished {
		return false
	}
	m.value = p.value
	m.done = true
	m.task = nil
	return true
}

func (m *maybeDone[T]) take() T {
	v := m.value
	var zero T
	m.value = zero
	m.taken = true
	return v
}
