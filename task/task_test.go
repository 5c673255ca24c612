package task

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/driver/headless"
	"github.com/gogpu/glitz/state"
)

func newConn(opts ...headless.Option) (*state.Connection, *headless.Device) {
	dev := headless.New(opts...)
	return state.NewConnection(dev), dev
}

// fencedAfter returns a task that reports ContinueFenced n times before
// finishing with v, appending name to log on every step.
func fencedAfter[T any](id ContextID, n int, v T, name string, log *[]string) Task[T] {
	return New(id, func(*state.Connection) Progress[T] {
		*log = append(*log, name)
		if n > 0 {
			n--
			return ContinueFenced[T]()
		}
		return Finished(v)
	})
}

// drive progresses t until it finishes and returns the output and the
// number of steps taken.
func drive[T any](t *testing.T, conn *state.Connection, tk Task[T]) (T, int) {
	t.Helper()
	for steps := 1; steps <= 100; steps++ {
		if v, ok := tk.Progress(conn).Value(); ok {
			return v, steps
		}
	}
	t.Fatal("task did not finish")
	panic("unreachable")
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}

// =============================================================================
// Context ids
// =============================================================================

func TestContextIDCombine(t *testing.T) {
	tests := []struct {
		a, b    ContextID
		want    ContextID
		wantErr bool
	}{
		{Any, Any, Any, false},
		{Any, ID(3), ID(3), false},
		{ID(3), Any, ID(3), false},
		{ID(3), ID(3), ID(3), false},
		{ID(3), ID(4), Any, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v+%v", tt.a, tt.b), func(t *testing.T) {
			got, err := tt.a.Combine(tt.b)
			if tt.wantErr {
				if !errors.Is(err, ErrIncompatibleContext) {
					t.Errorf("expected ErrIncompatibleContext, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Combine = %v, %v, want %v", got, err, tt.want)
			}
		})
	}
}

func TestContextIDAccepts(t *testing.T) {
	if !Any.Accepts(7) {
		t.Error("Any must accept every context")
	}
	if !ID(7).Accepts(7) || ID(7).Accepts(8) {
		t.Error("concrete id must accept only itself")
	}
	if _, ok := Any.Value(); ok {
		t.Error("Any has no concrete value")
	}
}

func TestComposingForeignTasksPanics(t *testing.T) {
	a := Ready(1)
	b := Func(ID(1), func(*state.Connection) int { return 2 })
	c := Func(ID(2), func(*state.Connection) int { return 3 })

	expectPanic(t, func() { Join(b, c) })
	expectPanic(t, func() { Sequence3(a, b, c) })
	expectPanic(t, func() { JoinAll(a, b, c) })

	if id := Join(a, b).ContextID(); id != ID(1) {
		t.Errorf("Join(any, 1).ContextID() = %v, want context(1)", id)
	}
}

// =============================================================================
// Leaf tasks
// =============================================================================

func TestLeafIsSingleUse(t *testing.T) {
	conn, _ := newConn()
	tk := Func(Any, func(*state.Connection) int { return 42 })
	if v, ok := tk.Progress(conn).Value(); !ok || v != 42 {
		t.Fatalf("first progress = %v, %v", v, ok)
	}
	expectPanic(t, func() { tk.Progress(conn) })
}

func TestEmptyCollectionsAreSingleUse(t *testing.T) {
	tests := []struct {
		name string
		task Task[[]int]
	}{
		{"SequenceAll", SequenceAll[int]()},
		{"JoinAll", JoinAll[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _ := newConn()
			if v, ok := tt.task.Progress(conn).Value(); !ok || len(v) != 0 {
				t.Fatalf("first progress = %v, %v, want [], true", v, ok)
			}
			expectPanic(t, func() { tt.task.Progress(conn) })
		})
	}
}

func TestLeafProgressesUntilFinished(t *testing.T) {
	conn, _ := newConn()
	var log []string
	v, steps := drive(t, conn, fencedAfter(Any, 2, "done", "leaf", &log))
	if v != "done" || steps != 3 {
		t.Errorf("got %q after %d steps, want \"done\" after 3", v, steps)
	}
}

func TestEmptyAndReady(t *testing.T) {
	conn, _ := newConn()
	if _, ok := Empty().Progress(conn).Value(); !ok {
		t.Error("Empty must finish immediately")
	}
	if v, _ := Ready("x").Progress(conn).Value(); v != "x" {
		t.Errorf("Ready = %q", v)
	}
}

// =============================================================================
// Combinators
// =============================================================================

func TestSequenceIsStrictlyOrdered(t *testing.T) {
	conn, _ := newConn()
	var log []string
	tk := Sequence(
		fencedAfter(Any, 2, 1, "a", &log),
		fencedAfter(Any, 1, "b", "b", &log),
	)
	out, steps := drive(t, conn, tk)

	want := []string{"a", "a", "a", "b", "b"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("progress order = %v, want %v", log, want)
	}
	if out.First != 1 || out.Second != "b" || steps != 4 {
		t.Errorf("Sequence = %+v after %d steps", out, steps)
	}
	expectPanic(t, func() { tk.Progress(conn) })
}

func TestSequenceAll(t *testing.T) {
	conn, _ := newConn()
	var log []string
	tk := SequenceAll(
		fencedAfter(Any, 1, 1, "a", &log),
		fencedAfter(Any, 0, 2, "b", &log),
		fencedAfter(Any, 1, 3, "c", &log),
	)
	out, _ := drive(t, conn, tk)
	if !reflect.DeepEqual(out, []int{1, 2, 3}) {
		t.Errorf("SequenceAll = %v", out)
	}
	want := []string{"a", "a", "b", "c", "c"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("progress order = %v, want %v", log, want)
	}
}

func TestJoinOutputOrderIgnoresCompletionOrder(t *testing.T) {
	conn, _ := newConn()
	var log []string
	tk := Join3(
		fencedAfter(Any, 2, "slow", "a", &log),
		fencedAfter(Any, 0, 2, "b", &log),
		fencedAfter(Any, 1, true, "c", &log),
	)
	out, steps := drive(t, conn, tk)
	if out.First != "slow" || out.Second != 2 || !out.Third {
		t.Errorf("Join3 = %+v", out)
	}
	if steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
	// Finished sub-tasks are not progressed again.
	want := []string{"a", "b", "c", "a", "c", "a"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("progress order = %v, want %v", log, want)
	}
}

func TestJoinAll(t *testing.T) {
	conn, _ := newConn()
	var log []string
	tk := JoinAll(
		fencedAfter(Any, 1, "x", "x", &log),
		fencedAfter(Any, 0, "y", "y", &log),
	)
	out, steps := drive(t, conn, tk)
	if !reflect.DeepEqual(out, []string{"x", "y"}) || steps != 2 {
		t.Errorf("JoinAll = %v after %d steps", out, steps)
	}
}

func TestMapAndThen(t *testing.T) {
	conn, _ := newConn()
	var log []string

	m := Map(fencedAfter(Any, 1, 20, "m", &log), func(v int) string { return fmt.Sprint(v + 1) })
	if v, steps := drive(t, conn, m); v != "21" || steps != 2 {
		t.Errorf("Map = %q after %d steps", v, steps)
	}

	log = nil
	th := Then(fencedAfter(Any, 0, 2, "first", &log), func(n int) Task[int] {
		return fencedAfter(Any, n, n*10, "second", &log)
	})
	v, steps := drive(t, conn, th)
	if v != 20 || steps != 3 {
		t.Errorf("Then = %d after %d steps, want 20 after 3", v, steps)
	}
	want := []string{"first", "second", "second", "second"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("progress order = %v, want %v", log, want)
	}
}

func TestThenRejectsForeignContinuation(t *testing.T) {
	conn, _ := newConn()
	th := Then(Func(ID(1), func(*state.Connection) int { return 1 }), func(int) Task[int] {
		return Func(ID(2), func(*state.Connection) int { return 2 })
	})
	expectPanic(t, func() { th.Progress(conn) })
}

func TestOptional(t *testing.T) {
	conn, _ := newConn()
	got, _ := drive(t, conn, Optional[int](nil))
	if got.Valid {
		t.Error("nil task must produce an invalid option")
	}
	got, _ = drive(t, conn, Optional(Ready(5)))
	if !got.Valid || got.Value != 5 {
		t.Errorf("Optional = %+v", got)
	}
	if id := Optional(Func(ID(9), func(*state.Connection) int { return 0 })).ContextID(); id != ID(9) {
		t.Errorf("Optional.ContextID() = %v", id)
	}
}

// =============================================================================
// Result adapters
// =============================================================================

var errBoom = errors.New("boom")

func TestResultAdapters(t *testing.T) {
	conn, _ := newConn()

	ok := MapOk(Ready(Ok(2)), func(v int) int { return v * 3 })
	if r, _ := drive(t, conn, ok); r.Err != nil || r.Value != 6 {
		t.Errorf("MapOk = %+v", r)
	}

	wrapped := MapErr(Ready(Err[int](errBoom)), func(err error) error {
		return fmt.Errorf("wrapped: %w", err)
	})
	if r, _ := drive(t, conn, wrapped); !errors.Is(r.Err, errBoom) || r.Err.Error() != "wrapped: boom" {
		t.Errorf("MapErr = %+v", r)
	}

	called := false
	chained := AndThen(Ready(Err[int](errBoom)), func(int) Task[Result[string]] {
		called = true
		return Ready(Ok("unreachable"))
	})
	if r, _ := drive(t, conn, chained); !errors.Is(r.Err, errBoom) || called {
		t.Errorf("AndThen after failure = %+v, continuation called %v", r, called)
	}

	chained = AndThen(Ready(Ok(4)), func(v int) Task[Result[string]] {
		return Ready(Ok(fmt.Sprint(v)))
	})
	if r, _ := drive(t, conn, chained); r.Err != nil || r.Value != "4" {
		t.Errorf("AndThen = %+v", r)
	}

	recovered := OrElse(Ready(Err[int](errBoom)), func(error) Task[Result[int]] {
		return Ready(Ok(-1))
	})
	if r, _ := drive(t, conn, recovered); r.Err != nil || r.Value != -1 {
		t.Errorf("OrElse = %+v", r)
	}
}

func TestTrySequenceStopsAtFirstFailure(t *testing.T) {
	conn, _ := newConn()
	var log []string
	tk := TrySequenceAll(
		fencedAfter(Any, 0, Ok(1), "a", &log),
		fencedAfter(Any, 1, Err[int](errBoom), "b", &log),
		fencedAfter(Any, 0, Ok(3), "c", &log),
	)
	r, _ := drive(t, conn, tk)
	if !errors.Is(r.Err, errBoom) {
		t.Errorf("expected errBoom, got %v", r.Err)
	}
	if want := []string{"a", "b", "b"}; !reflect.DeepEqual(log, want) {
		t.Errorf("progress order = %v, want %v", log, want)
	}
}

func TestTryJoinAll(t *testing.T) {
	conn, _ := newConn()
	var log []string
	tk := TryJoinAll(
		fencedAfter(Any, 1, Ok(1), "a", &log),
		fencedAfter(Any, 0, Err[int](errBoom), "b", &log),
	)
	r, _ := drive(t, conn, tk)
	if !errors.Is(r.Err, errBoom) {
		t.Errorf("expected errBoom, got %v", r.Err)
	}

	r, _ = drive(t, conn, TryJoinAll(Ready(Ok(1)), Ready(Ok(2))))
	if r.Err != nil || !reflect.DeepEqual(r.Value, []int{1, 2}) {
		t.Errorf("TryJoinAll = %+v", r)
	}
}

// =============================================================================
// Fenced queue
// =============================================================================

func fenceIDs(dev *headless.Device) []driver.FenceID {
	var ids []driver.FenceID
	for _, c := range dev.Calls() {
		if c.Name == "FenceSync" {
			ids = append(ids, c.Args[0].(driver.FenceID))
		}
	}
	return ids
}

func TestFencedQueueRespectsInsertionOrder(t *testing.T) {
	signaled := make(map[driver.FenceID]bool)
	conn, dev := newConn(headless.WithFenceStatus(func(f driver.FenceID) bool { return signaled[f] }))

	var order []string
	var q FencedQueue
	for _, name := range []string{"T1", "T2", "T3"} {
		if err := q.Push(conn, func(*state.Connection) bool {
			order = append(order, name)
			return true
		}); err != nil {
			t.Fatal(err)
		}
	}
	fences := fenceIDs(dev)
	if len(fences) != 3 {
		t.Fatalf("expected 3 fences, got %d", len(fences))
	}

	// T2 reports signaled before T1: nothing may run.
	signaled[fences[1]] = true
	if n, err := q.Run(conn); err != nil || n != 0 {
		t.Fatalf("Run = %d, %v, want 0", n, err)
	}
	if len(order) != 0 {
		t.Fatalf("progressed %v before T1 signaled", order)
	}

	signaled[fences[0]] = true
	if n, _ := q.Run(conn); n != 2 {
		t.Errorf("Run = %d, want 2", n)
	}
	if want := []string{"T1", "T2"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}

	signaled[fences[2]] = true
	q.Run(conn)
	if want := []string{"T1", "T2", "T3"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if dev.PendingFences() != 0 {
		t.Errorf("%d fences leaked", dev.PendingFences())
	}
}

func TestFencedQueueRefencesUnfinishedJobs(t *testing.T) {
	conn, dev := newConn(headless.WithFenceLatency(1))

	steps := 0
	var q FencedQueue
	if err := q.Push(conn, func(*state.Connection) bool {
		steps++
		return steps == 2
	}); err != nil {
		t.Fatal(err)
	}

	if n, _ := q.Run(conn); n != 0 {
		t.Fatalf("Run before the fence signaled = %d", n)
	}
	dev.Advance(1)
	if n, _ := q.Run(conn); n != 1 || q.Len() != 1 {
		t.Fatalf("Run = %d, Len = %d, want 1, 1", n, q.Len())
	}
	// The re-inserted fence has not signaled yet.
	if n, _ := q.Run(conn); n != 0 {
		t.Fatalf("Run = %d, want 0", n)
	}
	dev.Advance(1)
	q.Run(conn)
	if steps != 2 || q.Len() != 0 {
		t.Errorf("steps = %d, Len = %d, want 2, 0", steps, q.Len())
	}
}

func TestFencedQueueKeepsJobWhenFenceFails(t *testing.T) {
	errNoFence := errors.New("no fence")
	failing := true
	conn, _ := newConn(headless.WithFenceSyncError(func() error {
		if failing {
			return errNoFence
		}
		return nil
	}))

	ran := false
	var q FencedQueue
	err := q.Push(conn, func(*state.Connection) bool {
		ran = true
		return true
	})
	if !errors.Is(err, errNoFence) {
		t.Fatalf("Push error = %v, want %v", err, errNoFence)
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want the job kept", q.Len())
	}

	// The fence still cannot be inserted.
	if n, err := q.Run(conn); n != 0 || !errors.Is(err, errNoFence) {
		t.Fatalf("Run = %d, %v, want 0, %v", n, err, errNoFence)
	}

	failing = false
	if n, err := q.Run(conn); n != 0 || err != nil {
		t.Fatalf("Run inserting the fence = %d, %v, want 0, nil", n, err)
	}
	if n, err := q.Run(conn); n != 1 || err != nil {
		t.Fatalf("Run = %d, %v, want 1, nil", n, err)
	}
	if !ran || q.Len() != 0 {
		t.Errorf("ran = %v, Len = %d, want true, 0", ran, q.Len())
	}
}
