package task

import "github.com/gogpu/glitz/state"

// Result is the output of a fallible task.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Err returns a failed Result.
func Err[T any](err error) Result[T] { return Result[T]{Err: err} }

// Unwrap returns the value and error.
func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err }

// MapOk returns a task that applies fn to the value of a successful result
// and passes failures through.
func MapOk[T, U any](t Task[Result[T]], fn func(T) U) Task[Result[U]] {
	return Map(t, func(r Result[T]) Result[U] {
		if r.Err != nil {
			return Err[U](r.Err)
		}
		return Ok(fn(r.Value))
	})
}

// MapErr returns a task that applies fn to the error of a failed result.
func MapErr[T any](t Task[Result[T]], fn func(error) error) Task[Result[T]] {
	return Map(t, func(r Result[T]) Result[T] {
		if r.Err != nil {
			r.Err = fn(r.Err)
		}
		return r
	})
}

// AndThen returns a task that continues with the task fn returns when t
// succeeds. A failure of t finishes the task with that failure.
func AndThen[T, U any](t Task[Result[T]], fn func(T) Task[Result[U]]) Task[Result[U]] {
	return Then(t, func(r Result[T]) Task[Result[U]] {
		if r.Err != nil {
			return Ready(Err[U](r.Err))
		}
		return fn(r.Value)
	})
}

// OrElse returns a task that continues with the task fn returns when t
// fails. A success of t finishes the task with that value.
func OrElse[T any](t Task[Result[T]], fn func(error) Task[Result[T]]) Task[Result[T]] {
	return Then(t, func(r Result[T]) Task[Result[T]] {
		if r.Err != nil {
			return fn(r.Err)
		}
		return Ready(r)
	})
}

type trySequence[T any] struct {
	id    ContextID
	tasks []maybeDone[Result[T]]
	next  int
	out   []T
}

// TrySequenceAll returns a task that progresses tasks one after another and
// stops at the first failure. Tasks after a failed one are never progressed.
func TrySequenceAll[T any](tasks ...Task[Result[T]]) Task[Result[[]T]] {
	s := &trySequence[T]{tasks: make([]maybeDone[Result[T]], len(tasks))}
	ids := make([]ContextID, len(tasks))
	for i, t := range tasks {
		s.tasks[i].task = t
		ids[i] = t.ContextID()
	}
	s.id = mustCombine(ids...)
	return s
}

func (s *trySequence[T]) ContextID() ContextID { return s.id }

func (s *trySequence[T]) Progress(conn *state.Connection) Progress[Result[[]T]] {
	for ; s.next < len(s.tasks); s.next++ {
		m := &s.tasks[s.next]
		if !m.progress(conn) {
			return ContinueFenced[Result[[]T]]()
		}
		r := m.take()
		if r.Err != nil {
			s.next = len(s.tasks)
			return Finished(Err[[]T](r.Err))
		}
		s.out = append(s.out, r.Value)
	}
	out := s.out
	s.out = nil
	return Finished(Ok(out))
}

type tryJoin[T any] struct {
	id    ContextID
	tasks []maybeDone[Result[T]]
}

// TryJoinAll returns a task that progresses every task on each step. It
// finishes with the first failure in declaration order once every task has
// finished, or with all values in declaration order.
func TryJoinAll[T any](tasks ...Task[Result[T]]) Task[Result[[]T]] {
	j := &tryJoin[T]{tasks: make([]maybeDone[Result[T]], len(tasks))}
	ids := make([]ContextID, len(tasks))
	for i, t := range tasks {
		j.tasks[i].task = t
		ids[i] = t.ContextID()
	}
	j.id = mustCombine(ids...)
	return j
}

func (j *tryJoin[T]) ContextID() ContextID { return j.id }

func (j *tryJoin[T]) Progress(conn *state.Connection) Progress[Result[[]T]] {
	done := true
	for i := range j.tasks {
		done = j.tasks[i].progress(conn) && done
	}
	if !done {
		return ContinueFenced[Result[[]T]]()
	}
	out := make([]T, len(j.tasks))
	var first error
	for i := range j.tasks {
		r := j.tasks[i].take()
		if r.Err != nil && first == nil {
			first = r.Err
		}
		out[i] = r.Value
	}
	if first != nil {
		return Finished(Err[[]T](first))
	}
	return Finished(Ok(out))
}
