package task

import "github.com/gogpu/glitz/state"

// Pair is the output of two composed tasks, in declaration order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the output of three composed tasks, in declaration order.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type sequence2[A, B any] struct {
	id ContextID
	a  maybeDone[A]
	b  maybeDone[B]
}

// Sequence returns a task that progresses a to completion before b is
// progressed for the first time. It panics if a and b are bound to different
// contexts.
func Sequence[A, B any](a Task[A], b Task[B]) Task[Pair[A, B]] {
	return &sequence2[A, B]{
		id: mustCombine(a.ContextID(), b.ContextID()),
		a:  maybeDone[A]{task: a},
		b:  maybeDone[B]{task: b},
	}
}

func (s *sequence2[A, B]) ContextID() ContextID { return s.id }

func (s *sequence2[A, B]) Progress(conn *state.Connection) Progress[Pair[A, B]] {
	if !s.a.progress(conn) || !s.b.progress(conn) {
		return ContinueFenced[Pair[A, B]]()
	}
	return Finished(Pair[A, B]{s.a.take(), s.b.take()})
}

type sequence3[A, B, C any] struct {
	id ContextID
	a  maybeDone[A]
	b  maybeDone[B]
	c  maybeDone[C]
}

// Sequence3 is [Sequence] for three tasks.
func Sequence3[A, B, C any](a Task[A], b Task[B], c Task[C]) Task[Triple[A, B, C]] {
	return &sequence3[A, B, C]{
		id: mustCombine(a.ContextID(), b.ContextID(), c.ContextID()),
		a:  maybeDone[A]{task: a},
		b:  maybeDone[B]{task: b},
		c:  maybeDone[C]{task: c},
	}
}

func (s *sequence3[A, B, C]) ContextID() ContextID { return s.id }

func (s *sequence3[A, B, C]) Progress(conn *state.Connection) Progress[Triple[A, B, C]] {
	if !s.a.progress(conn) || !s.b.progress(conn) || !s.c.progress(conn) {
		return ContinueFenced[Triple[A, B, C]]()
	}
	return Finished(Triple[A, B, C]{s.a.take(), s.b.take(), s.c.take()})
}

type sequenceAll[T any] struct {
	id       ContextID
	tasks    []maybeDone[T]
	next     int
	finished bool
}

// SequenceAll returns a task that progresses tasks one after another and
// finishes with their outputs in order.
func SequenceAll[T any](tasks ...Task[T]) Task[[]T] {
	s := &sequenceAll[T]{tasks: make([]maybeDone[T], len(tasks))}
	ids := make([]ContextID, len(tasks))
	for i, t := range tasks {
		s.tasks[i].task = t
		ids[i] = t.ContextID()
	}
	s.id = mustCombine(ids...)
	return s
}

func (s *sequenceAll[T]) ContextID() ContextID { return s.id }

func (s *sequenceAll[T]) Progress(conn *state.Connection) Progress[[]T] {
	if s.finished {
		panic("task: composite task progressed after it finished")
	}
	for ; s.next < len(s.tasks); s.next++ {
		if !s.tasks[s.next].progress(conn) {
			return ContinueFenced[[]T]()
		}
	}
	out := make([]T, len(s.tasks))
	for i := range s.tasks {
		out[i] = s.tasks[i].take()
	}
	s.finished = true
	return Finished(out)
}

type join2[A, B any] struct {
	id ContextID
	a  maybeDone[A]
	b  maybeDone[B]
}

// Join returns a task that progresses a and b with no ordering guarantee
// between them and finishes once both have finished. It panics if a and b
// are bound to different contexts.
func Join[A, B any](a Task[A], b Task[B]) Task[Pair[A, B]] {
	return &join2[A, B]{
		id: mustCombine(a.ContextID(), b.ContextID()),
		a:  maybeDone[A]{task: a},
		b:  maybeDone[B]{task: b},
	}
}

func (j *join2[A, B]) ContextID() ContextID { return j.id }

func (j *join2[A, B]) Progress(conn *state.Connection) Progress[Pair[A, B]] {
	done := j.a.progress(conn)
	done = j.b.progress(conn) && done
	if !done {
		return ContinueFenced[Pair[A, B]]()
	}
	return Finished(Pair[A, B]{j.a.take(), j.b.take()})
}

type join3[A, B, C any] struct {
	id ContextID
	a  maybeDone[A]
	b  maybeDone[B]
	c  maybeDone[C]
}

// Join3 is [Join] for three tasks.
func Join3[A, B, C any](a Task[A], b Task[B], c Task[C]) Task[Triple[A, B, C]] {
	return &join3[A, B, C]{
		id: mustCombine(a.ContextID(), b.ContextID(), c.ContextID()),
		a:  maybeDone[A]{task: a},
		b:  maybeDone[B]{task: b},
		c:  maybeDone[C]{task: c},
	}
}

func (j *join3[A, B, C]) ContextID() ContextID { return j.id }

func (j *join3[A, B, C]) Progress(conn *state.Connection) Progress[Triple[A, B, C]] {
	done := j.a.progress(conn)
	done = j.b.progress(conn) && done
	done = j.c.progress(conn) && done
	if !done {
		return ContinueFenced[Triple[A, B, C]]()
	}
	return Finished(Triple[A, B, C]{j.a.take(), j.b.take(), j.c.take()})
}

type joinAll[T any] struct {
	id       ContextID
	tasks    []maybeDone[T]
	finished bool
}

// JoinAll returns a task that progresses every task on each step and
// finishes with their outputs in declaration order once all have finished.
func JoinAll[T any](tasks ...Task[T]) Task[[]T] {
	j := &joinAll[T]{tasks: make([]maybeDone[T], len(tasks))}
	ids := make([]ContextID, len(tasks))
	for i, t := range tasks {
		j.tasks[i].task = t
		ids[i] = t.ContextID()
	}
	j.id = mustCombine(ids...)
	return j
}

func (j *joinAll[T]) ContextID() ContextID { return j.id }

func (j *joinAll[T]) Progress(conn *state.Connection) Progress[[]T] {
	if j.finished {
		panic("task: composite task progressed after it finished")
	}
	done := true
	for i := range j.tasks {
		done = j.tasks[i].progress(conn) && done
	}
	if !done {
		return ContinueFenced[[]T]()
	}
	out := make([]T, len(j.tasks))
	for i := range j.tasks {
		out[i] = j.tasks[i].take()
	}
	j.finished = true
	return Finished(out)
}
