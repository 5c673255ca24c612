// Package task models deferred GPU work.
//
// A [Task] is a value that is progressed against a [state.Connection]. Each
// call to Progress either finishes with an output or reports that it issued
// commands whose effects are not yet visible; the executor then inserts a
// fence and progresses the task again once the fence has signaled. This is
// the only suspension point.
//
// Tasks compose: [Sequence] runs its parts strictly in order, [Join] runs
// them with no ordering guarantee and finishes when all have finished.
// [Map], [Then] and the [Result] adapters change a task's output without
// changing how it suspends.
//
// Every task carries a [ContextID]. Tasks that touch context-scoped objects
// are bound to that context; composing tasks bound to different contexts is
// a programming error.
//
// Leaf tasks are single use. Progressing a leaf task after it has finished
// panics.
package task
