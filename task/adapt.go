package task

import "github.com/gogpu/glitz/state"

type mapped[T, U any] struct {
	task Task[T]
	fn   func(T) U
}

// Map returns a task that finishes with fn applied to t's output.
func Map[T, U any](t Task[T], fn func(T) U) Task[U] {
	return &mapped[T, U]{task: t, fn: fn}
}

func (m *mapped[T, U]) ContextID() ContextID { return m.task.ContextID() }

func (m *mapped[T, U]) Progress(conn *state.Connection) Progress[U] {
	v, ok := m.task.Progress(conn).Value()
	if !ok {
		return ContinueFenced[U]()
	}
	return Finished(m.fn(v))
}

type then[T, U any] struct {
	first Task[T]
	fn    func(T) Task[U]
	next  Task[U]
}

// Then returns a task that progresses t, passes its output to fn and then
// progresses the task fn returns. The second task is progressed in the same
// step t finishes in.
func Then[T, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return &then[T, U]{first: t, fn: fn}
}

func (t *then[T, U]) ContextID() ContextID {
	if t.next != nil {
		return t.next.ContextID()
	}
	return t.first.ContextID()
}

func (t *then[T, U]) Progress(conn *state.Connection) Progress[U] {
	if t.next == nil {
		v, ok := t.first.Progress(conn).Value()
		if !ok {
			return ContinueFenced[U]()
		}
		next := t.fn(v)
		mustCombine(t.first.ContextID(), next.ContextID())
		t.next = next
		t.first = nil
		t.fn = nil
	}
	return t.next.Progress(conn)
}

// Option is the output of an [Optional] task.
type Option[T any] struct {
	Value T
	Valid bool
}

type optional[T any] struct {
	task Task[T]
	done bool
}

// Optional returns a task that progresses t if it is not nil. A nil task
// finishes immediately with an invalid Option.
func Optional[T any](t Task[T]) Task[Option[T]] {
	return &optional[T]{task: t}
}

func (o *optional[T]) ContextID() ContextID {
	if o.task == nil {
		return Any
	}
	return o.task.ContextID()
}

func (o *optional[T]) Progress(conn *state.Connection) Progress[Option[T]] {
	if o.task == nil {
		if o.done {
			panic("task: leaf task progressed after it finished")
		}
		o.done = true
		return Finished(Option[T]{})
	}
	v, ok := o.task.Progress(conn).Value()
	if !ok {
		return ContinueFenced[Option[T]]()
	}
	return Finished(Option[T]{Value: v, Valid: true})
}
