package glitz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/driver/headless"
	"github.com/gogpu/glitz/pipeline"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

// fencedOnce returns a task that waits for one fence and then yields v.
func fencedOnce(c *Context, v int) task.Task[int] {
	waited := false
	return task.New(task.ID(c.ID()), func(*state.Connection) task.Progress[int] {
		if !waited {
			waited = true
			return task.ContinueFenced[int]()
		}
		return task.Finished(v)
	})
}

// =============================================================================
// Context lifecycle
// =============================================================================

func TestNewContextDefaults(t *testing.T) {
	c, _ := newTestContext(t, nil)
	if got, want := c.Options(), DefaultContextOptions(); got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
	if c.ID() == 0 {
		t.Error("context id must not be 0")
	}
	if c.Limits() != driver.DefaultLimits() {
		t.Errorf("Limits() = %+v, want the device limits", c.Limits())
	}
}

func TestContextIDsAreDistinct(t *testing.T) {
	a, _ := newTestContext(t, nil)
	b, _ := newTestContext(t, nil)
	if a.ID() == b.ID() {
		t.Errorf("two contexts share id %d", a.ID())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewContext(headless.New())
	c.Close()
	c.Close()

	if _, err := c.CreateVertexShader(triangleVertex); !errors.Is(err, ErrClosed) {
		t.Errorf("CreateVertexShader after Close: error = %v, want ErrClosed", err)
	}
	if _, err := c.Poll(); !errors.Is(err, ErrClosed) {
		t.Errorf("Poll after Close: error = %v, want ErrClosed", err)
	}
	if _, err := Submit(c, task.Ready(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit after Close: error = %v, want ErrClosed", err)
	}
}

func TestCloseReleasesCachedPipelines(t *testing.T) {
	dev := headless.New()
	c := NewContext(dev)
	p, err := c.CreateGraphicsPipeline(quadDescriptor(t, c))
	if err != nil {
		t.Fatal(err)
	}
	p.Release()
	if got := dev.Live(driver.ObjectProgram); got != 1 {
		t.Fatalf("live programs = %d, want 1 while cached", got)
	}
	c.Close()
	if got := dev.Live(driver.ObjectProgram); got != 0 {
		t.Errorf("live programs after Close = %d, want 0", got)
	}
}

// =============================================================================
// Submit / Poll
// =============================================================================

func TestSubmitRunsImmediately(t *testing.T) {
	c, _ := newTestContext(t, nil)
	exec, err := Submit(c, task.Func(task.ID(c.ID()), func(*state.Connection) string { return "done" }))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := exec.Value()
	if !ok || v != "done" {
		t.Errorf("Value() = %q, %v, want \"done\", true", v, ok)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", c.Pending())
	}
}

func TestSubmitAcceptsUnboundTasks(t *testing.T) {
	c, _ := newTestContext(t, nil)
	exec, err := Submit(c, task.Ready(7))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := exec.Value(); v != 7 {
		t.Errorf("Value() = %d, want 7", v)
	}
}

func TestSubmitRejectsForeignTask(t *testing.T) {
	a, _ := newTestContext(t, nil)
	b, _ := newTestContext(t, nil)

	_, err := Submit(a, task.Func(task.ID(b.ID()), func(*state.Connection) int { return 0 }))
	var ice *task.IncompatibleContextError
	if !errors.As(err, &ice) {
		t.Fatalf("expected *task.IncompatibleContextError, got %v", err)
	}
}

func TestSubmitFencedTaskResumesOnPoll(t *testing.T) {
	c, dev := newTestContext(t, []headless.Option{headless.WithFenceLatency(1)})

	exec, err := Submit(c, fencedOnce(c, 42))
	if err != nil {
		t.Fatal(err)
	}
	if exec.Ready() {
		t.Fatal("fenced task finished before its fence signaled")
	}
	if c.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", c.Pending())
	}

	n, err := c.Poll()
	if err != nil || n != 0 {
		t.Fatalf("Poll() = %d, %v, want 0, nil before the fence signals", n, err)
	}

	dev.Advance(1)
	n, err = c.Poll()
	if err != nil || n != 1 {
		t.Fatalf("Poll() = %d, %v, want 1, nil", n, err)
	}
	if v, ok := exec.Value(); !ok || v != 42 {
		t.Errorf("Value() = %d, %v, want 42, true", v, ok)
	}
	if dev.PendingFences() != 0 {
		t.Errorf("PendingFences() = %d, want 0", dev.PendingFences())
	}
}

func TestSubmitKeepsTaskWhenFenceFails(t *testing.T) {
	errNoFence := errors.New("no fence")
	failing := true
	c, _ := newTestContext(t, []headless.Option{headless.WithFenceSyncError(func() error {
		if failing {
			return errNoFence
		}
		return nil
	})})

	exec, err := Submit(c, fencedOnce(c, 7))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", c.Pending())
	}
	if _, err := c.Poll(); !errors.Is(err, errNoFence) {
		t.Fatalf("Poll error = %v, want %v", err, errNoFence)
	}

	failing = false
	for i := 0; i < 2 && !exec.Ready(); i++ {
		if _, err := c.Poll(); err != nil {
			t.Fatal(err)
		}
	}
	if v, ok := exec.Value(); !ok || v != 7 {
		t.Errorf("Value() = %d, %v, want 7, true", v, ok)
	}
}

func TestFencedTasksResumeInSubmissionOrder(t *testing.T) {
	c, dev := newTestContext(t, []headless.Option{headless.WithFenceLatency(1)})

	var order []int
	track := func(v int) task.Task[int] {
		return task.Map(fencedOnce(c, v), func(v int) int {
			order = append(order, v)
			return v
		})
	}
	for i := range 3 {
		if _, err := Submit(c, track(i)); err != nil {
			t.Fatal(err)
		}
	}
	dev.Advance(1)
	if _, err := c.Poll(); err != nil {
		t.Fatal(err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("resume order = %v, want [0 1 2]", order)
	}
}

func TestRunPollsUntilFinished(t *testing.T) {
	c, _ := newTestContext(t, nil)
	v, err := Run(context.Background(), c, fencedOnce(c, 5))
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("Run() = %d, want 5", v)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	c, _ := newTestContext(t, []headless.Option{headless.WithFenceStatus(func(driver.FenceID) bool { return false })})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := Run(ctx, c, fencedOnce(c, 1)); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestExecutionWait(t *testing.T) {
	c, dev := newTestContext(t, []headless.Option{headless.WithFenceLatency(1)})
	exec, err := Submit(c, fencedOnce(c, 3))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := exec.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() on a cancelled context: error = %v, want context.Canceled", err)
	}

	dev.Advance(1)
	if _, err := c.Poll(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-exec.Done():
	default:
		t.Fatal("Done() not closed after the task finished")
	}
	if v, err := exec.Wait(context.Background()); err != nil || v != 3 {
		t.Errorf("Wait() = %d, %v, want 3, nil", v, err)
	}
}

func TestPollDeletesReleasedObjects(t *testing.T) {
	c, dev := newTestContext(t, nil)
	b, err := NewArrayBuffer(c, quad, StaticDraw)
	if err != nil {
		t.Fatal(err)
	}
	b.Release()
	b.Release()
	if got := dev.Live(driver.ObjectBuffer); got != 1 {
		t.Fatalf("live buffers before Poll = %d, want 1", got)
	}
	if _, err := c.Poll(); err != nil {
		t.Fatal(err)
	}
	if got := dev.Live(driver.ObjectBuffer); got != 0 {
		t.Errorf("live buffers after Poll = %d, want 0", got)
	}
}

// =============================================================================
// Graphics
// =============================================================================

func TestCreateGraphicsPipelineUsesCache(t *testing.T) {
	c, _ := newTestContext(t, nil)
	desc := quadDescriptor(t, c)

	a, err := c.CreateGraphicsPipeline(desc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.CreateGraphicsPipeline(desc)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("equal descriptors built two pipelines with the cache enabled")
	}
	if hits, misses := c.PipelineCacheStats(); hits != 1 || misses != 1 {
		t.Errorf("PipelineCacheStats() = %d, %d, want 1, 1", hits, misses)
	}
}

func TestCreateGraphicsPipelineWithoutCache(t *testing.T) {
	c, dev := newTestContext(t, nil, WithPipelineCacheSize(0))
	desc := quadDescriptor(t, c)

	a, err := c.CreateGraphicsPipeline(desc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.CreateGraphicsPipeline(desc)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("pipelines shared with the cache disabled")
	}
	if got := dev.Live(driver.ObjectProgram); got != 2 {
		t.Errorf("live programs = %d, want 2", got)
	}
}

func TestCreateGraphicsPipelineReportsBuildError(t *testing.T) {
	c, _ := newTestContext(t, nil)
	vs, err := c.CreateVertexShader(triangleVertex)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := c.CreateFragmentShader(triangleFragment)
	if err != nil {
		t.Fatal(err)
	}
	desc, err := pipeline.NewDescriptorBuilder().
		VertexShader(vs).
		FragmentShader(fs).
		PrimitiveAssembly(pipeline.Triangles()).
		Finish()
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.CreateGraphicsPipeline(desc)
	var be *pipeline.BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected *pipeline.BuildError, got %v", err)
	}
}

func TestDrawQuad(t *testing.T) {
	c, dev := newTestContext(t, nil)
	p, err := c.CreateGraphicsPipeline(quadDescriptor(t, c))
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	bindings, err := c.BindResources(p, sceneResources(t, c))
	if err != nil {
		t.Fatalf("BindResources: %v", err)
	}
	vb, err := NewArrayBuffer(c, quad, StaticDraw)
	if err != nil {
		t.Fatal(err)
	}
	ib, err := NewIndexBuffer(c, []uint16{0, 1, 2, 0, 2, 3}, StaticDraw)
	if err != nil {
		t.Fatal(err)
	}

	dev.ResetCalls()
	if err := c.Draw(p, []pipeline.VertexBuffer{vb.VertexBuffer(0)}, bindings, ib.DrawIndexed(0, 6, 0)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := dev.Err(); err != nil {
		t.Fatalf("device error: %v", err)
	}
	if got := dev.CallCount("DrawElements"); got != 1 {
		t.Errorf("DrawElements calls = %d, want 1", got)
	}
	if got := dev.CallCount("BindBufferRange"); got != 1 {
		t.Errorf("BindBufferRange calls = %d, want 1", got)
	}
}

func TestBindGroupSharedAcrossDraws(t *testing.T) {
	c, dev := newTestContext(t, nil)
	p, err := c.CreateGraphicsPipeline(quadDescriptor(t, c))
	if err != nil {
		t.Fatal(err)
	}
	bg, err := c.CreateBindGroup(sceneResources(t, c))
	if err != nil {
		t.Fatal(err)
	}
	bindings, err := p.BindGroup(bg)
	if err != nil {
		t.Fatal(err)
	}
	vb, err := NewArrayBuffer(c, quad, StaticDraw)
	if err != nil {
		t.Fatal(err)
	}

	dev.ResetCalls()
	call := pipeline.DrawCall{Count: int32(vb.Len())}
	for range 2 {
		if err := c.Draw(p, []pipeline.VertexBuffer{vb.VertexBuffer(0)}, bindings, call); err != nil {
			t.Fatal(err)
		}
	}
	if got := dev.CallCount("DrawArrays"); got != 2 {
		t.Errorf("DrawArrays calls = %d, want 2", got)
	}
	// The second draw finds every binding already in place.
	if got := dev.CallCount("BindBufferRange"); got != 1 {
		t.Errorf("BindBufferRange calls = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	tests := []struct {
		name  string
		depth bool
		want  driver.ClearMask
	}{
		{"color only", false, driver.ClearColor},
		{"with depth", true, driver.ClearColor | driver.ClearDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, dev := newTestContext(t, nil, WithDepth(tt.depth))
			if err := c.Clear([4]float32{0, 0, 0, 1}); err != nil {
				t.Fatal(err)
			}
			calls := dev.Calls()
			last := calls[len(calls)-1]
			if last.Name != "Clear" || last.Args[0] != tt.want {
				t.Errorf("last call = %v, want Clear(%v)", last, tt.want)
			}
		})
	}
}
