package glitz

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/pipeline"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

// Context owns one connection to a WebGL2 device and executes tasks on it.
//
// All access to the connection is serialized by the context, so a Context
// may be shared between goroutines. Work that waits on the GPU is parked in
// a fenced queue and resumed by [Context.Poll].
type Context struct {
	mu     sync.Mutex
	conn   *state.Connection
	queue  task.FencedQueue
	cache  *pipeline.Cache
	opts   ContextOptions
	logger *slog.Logger
	closed bool
}

// NewContext creates a context over device.
//
// Example:
//
//	c := glitz.NewContext(headless.New(), glitz.WithDepth(true))
//	defer c.Close()
func NewContext(device driver.Device, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{
		conn:   state.NewConnection(device),
		opts:   o.attrs,
		logger: o.logger,
	}
	if o.attrs.PipelineCacheSize > 0 {
		c.cache = pipeline.NewCache(o.attrs.PipelineCacheSize)
	}
	c.log().Info("glitz: context created",
		"context", c.conn.ID(),
		"antialias", o.attrs.Antialias,
		"depth", o.attrs.Depth,
		"power", o.attrs.PowerPreference)
	return c
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// ID returns the context id. Tasks bound to another id are rejected by
// [Submit].
func (c *Context) ID() uint64 { return c.conn.ID() }

// Options returns the attributes the context was created with.
func (c *Context) Options() ContextOptions { return c.opts }

// Limits returns the device limits.
func (c *Context) Limits() driver.Limits { return c.conn.Limits() }

// do runs fn with exclusive access to the connection.
func (c *Context) do(fn func(conn *state.Connection) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return fn(c.conn)
}

// Poll resumes the fenced tasks whose fences have signaled and deletes
// released objects. It returns the number of tasks resumed.
func (c *Context) Poll() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	n, err := c.queue.Run(c.conn)
	c.conn.DrainDropQueue()
	if err != nil {
		return n, fmt.Errorf("glitz: poll: %w", err)
	}
	return n, nil
}

// Pending returns the number of tasks waiting on a fence.
func (c *Context) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

// PipelineCacheStats returns the pipeline cache hit and miss counts.
func (c *Context) PipelineCacheStats() (hits, misses uint64) {
	if c.cache == nil {
		return 0, 0
	}
	return c.cache.Stats()
}

// Close releases the pipeline cache and deletes every released object.
// Tasks still waiting on fences are abandoned. Close is idempotent.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.cache != nil {
		c.cache.ReleaseAll()
	}
	if n := c.queue.Len(); n > 0 {
		c.log().Warn("glitz: context closed with pending tasks", "context", c.conn.ID(), "pending", n)
	}
	c.conn.DrainDropQueue()
	c.closed = true
	c.log().Info("glitz: context closed", "context", c.conn.ID())
}
