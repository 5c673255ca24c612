// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/driver/headless"
)

func newTestConnection(t *testing.T) (*Connection, *headless.Device) {
	t.Helper()
	dev := headless.New(headless.WithLimits(driver.Limits{
		MaxCombinedTextureUnits:  4,
		MaxUniformBufferBindings: 4,
		MaxVertexAttribs:         8,
		MaxDrawBuffers:           1,
	}))
	return NewConnection(dev), dev
}

func TestContextIDsAreUniqueAndNonZero(t *testing.T) {
	seen := make(map[uint64]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := NextContextID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 800 {
		t.Errorf("expected 800 unique ids, got %d", len(seen))
	}
	if seen[0] {
		t.Error("context id 0 must never be issued")
	}

	a, _ := newTestConnection(t)
	b, _ := newTestConnection(t)
	if a.ID() == b.ID() {
		t.Error("connections must have distinct ids")
	}
}

func TestSettersElideRedundantCalls(t *testing.T) {
	tests := []struct {
		name string
		call string
		set  func(c *Connection)
	}{
		{"SetCapability", "Enable", func(c *Connection) { c.SetCapability(driver.CapBlend, true) }},
		{"SetCullFace", "CullFace", func(c *Connection) { c.SetCullFace(driver.FaceFront) }},
		{"SetFrontFace", "FrontFace", func(c *Connection) { c.SetFrontFace(driver.WindingCW) }},
		{"SetDepthFunc", "DepthFunc", func(c *Connection) { c.SetDepthFunc(driver.CompareLessEqual) }},
		{"SetDepthMask", "DepthMask", func(c *Connection) { c.SetDepthMask(false) }},
		{"SetDepthRange", "DepthRange", func(c *Connection) { c.SetDepthRange(0.1, 0.9) }},
		{"SetBlendFunc", "BlendFuncSeparate", func(c *Connection) {
			c.SetBlendFunc(BlendFunc{driver.BlendSrcAlpha, driver.BlendOneMinusSrcAlpha, driver.BlendOne, driver.BlendZero})
		}},
		{"SetBlendEquation", "BlendEquationSeparate", func(c *Connection) {
			c.SetBlendEquation(BlendEquation{driver.EquationSubtract, driver.EquationAdd})
		}},
		{"SetBlendColor", "BlendColor", func(c *Connection) { c.SetBlendColor([4]float32{1, 0, 0, 1}) }},
		{"SetColorMask", "ColorMask", func(c *Connection) { c.SetColorMask([4]bool{true, false, true, false}) }},
		{"SetViewport", "Viewport", func(c *Connection) { c.SetViewport(Rect{0, 0, 320, 240}) }},
		{"SetLineWidth", "LineWidth", func(c *Connection) { c.SetLineWidth(2) }},
		{"SetClearColor", "ClearColor", func(c *Connection) { c.SetClearColor([4]float32{0.5, 0.5, 0.5, 1}) }},
		{"SetActiveTexture", "ActiveTexture", func(c *Connection) { c.SetActiveTexture(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, dev := newTestConnection(t)
			tt.set(c)
			tt.set(c)
			tt.set(c)
			if n := dev.CallCount(tt.call); n != 1 {
				t.Errorf("%s issued %d times, want 1", tt.call, n)
			}
		})
	}
}

func TestInitialStateIsAssumed(t *testing.T) {
	c, dev := newTestConnection(t)
	c.SetCapability(driver.CapDither, true)
	c.SetCullFace(driver.FaceBack)
	c.SetFrontFace(driver.WindingCCW)
	c.SetDepthFunc(driver.CompareLess)
	c.SetDepthMask(true)
	c.SetDepthRange(0, 1)
	c.SetColorMask([4]bool{true, true, true, true})
	c.SetLineWidth(1)

	if calls := dev.Calls(); len(calls) != 0 {
		t.Errorf("expected no calls for initial values, got %v", calls)
	}
}

func TestBufferBindings(t *testing.T) {
	c, dev := newTestConnection(t)
	b1, _ := dev.CreateBuffer()
	b2, _ := dev.CreateBuffer()

	c.BindArrayBuffer(b1)
	c.BindArrayBuffer(b1)
	c.BindArrayBuffer(b2)
	if n := dev.CallCount("BindBuffer"); n != 2 {
		t.Errorf("BindBuffer issued %d times, want 2", n)
	}

	c.BindUniformBufferRange(1, b1, 0, 64)
	c.BindUniformBufferRange(1, b1, 0, 64)
	c.BindUniformBufferRange(1, b1, 64, 64)
	c.BindUniformBufferRange(2, b1, 64, 64)
	if n := dev.CallCount("BindBufferRange"); n != 3 {
		t.Errorf("BindBufferRange issued %d times, want 3", n)
	}
}

func TestVertexArrayResetsElementBinding(t *testing.T) {
	c, dev := newTestConnection(t)
	b, _ := dev.CreateBuffer()
	va, _ := dev.CreateVertexArray()

	c.BindElementArrayBuffer(b)
	c.BindElementArrayBuffer(b)
	c.BindVertexArray(va)
	c.BindElementArrayBuffer(b)

	var elementBinds int
	for _, call := range dev.Calls() {
		if call.Name == "BindBuffer" && call.Args[0] == driver.TargetElementArrayBuffer {
			elementBinds++
		}
	}
	if elementBinds != 2 {
		t.Errorf("element buffer bound %d times, want 2", elementBinds)
	}
}

func TestTextureAndSamplerBindings(t *testing.T) {
	c, dev := newTestConnection(t)
	tex, _ := dev.CreateTexture()
	s, _ := dev.CreateSampler()

	c.BindTextureUnit(1, driver.Texture2D, tex)
	c.BindTextureUnit(1, driver.Texture2D, tex)
	c.BindTextureUnit(2, driver.Texture2D, tex)
	c.BindSampler(1, s)
	c.BindSampler(1, s)

	if n := dev.CallCount("BindTexture"); n != 2 {
		t.Errorf("BindTexture issued %d times, want 2", n)
	}
	if n := dev.CallCount("ActiveTexture"); n != 2 {
		t.Errorf("ActiveTexture issued %d times, want 2", n)
	}
	if n := dev.CallCount("BindSampler"); n != 1 {
		t.Errorf("BindSampler issued %d times, want 1", n)
	}
	if err := dev.Err(); err != nil {
		t.Errorf("unexpected device error %v", err)
	}
}

func TestVertexAttributes(t *testing.T) {
	c, dev := newTestConnection(t)
	b, _ := dev.CreateBuffer()

	p := AttribPointer{Buffer: b, Size: 2, Type: driver.ComponentFloat, Stride: 8}
	c.SetVertexAttribute(0, p)
	c.SetVertexAttribute(0, p)
	if n := dev.CallCount("VertexAttribPointer"); n != 1 {
		t.Errorf("VertexAttribPointer issued %d times, want 1", n)
	}
	if n := dev.CallCount("EnableVertexAttribArray"); n != 1 {
		t.Errorf("EnableVertexAttribArray issued %d times, want 1", n)
	}

	p.Divisor = 1
	c.SetVertexAttribute(0, p)
	if n := dev.CallCount("VertexAttribDivisor"); n != 2 {
		t.Errorf("VertexAttribDivisor issued %d times, want 2", n)
	}

	c.SetVertexAttribute(3, AttribPointer{Buffer: b, Size: 1, Type: driver.ComponentUnsignedInt, Integer: true, Stride: 4})
	if n := dev.CallCount("VertexAttribIPointer"); n != 1 {
		t.Errorf("VertexAttribIPointer issued %d times, want 1", n)
	}

	c.DisableVertexAttributesExcept(map[uint32]struct{}{0: {}})
	c.DisableVertexAttributesExcept(map[uint32]struct{}{0: {}})
	if n := dev.CallCount("DisableVertexAttribArray"); n != 1 {
		t.Errorf("DisableVertexAttribArray issued %d times, want 1", n)
	}
	if err := dev.Err(); err != nil {
		t.Errorf("unexpected device error %v", err)
	}
}

func TestOutOfRangeIndicesAreNotCached(t *testing.T) {
	c, dev := newTestConnection(t)
	s, _ := dev.CreateSampler()
	c.BindSampler(9, s)
	c.BindSampler(9, s)
	if n := dev.CallCount("BindSampler"); n != 2 {
		t.Errorf("BindSampler issued %d times, want 2", n)
	}
}

func TestDropQueue(t *testing.T) {
	c, dev := newTestConnection(t)
	b, _ := dev.CreateBuffer()
	h := c.Track(driver.ObjectBuffer, uint64(b))

	c.BindArrayBuffer(b)
	c.Release(h)
	c.Release(h)
	if n := c.PendingDrops(); n != 1 {
		t.Fatalf("PendingDrops = %d, want 1", n)
	}
	if _, _, err := c.Lookup(h); err != nil {
		t.Errorf("queued object must stay valid until drained, got %v", err)
	}
	if dev.Live(driver.ObjectBuffer) != 1 {
		t.Error("Release must not delete immediately")
	}

	if n := c.DrainDropQueue(); n != 1 {
		t.Errorf("DrainDropQueue = %d, want 1", n)
	}
	if dev.Live(driver.ObjectBuffer) != 0 {
		t.Error("buffer not deleted")
	}
	if _, _, err := c.Lookup(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("expected ErrStaleHandle, got %v", err)
	}

	// A driver may recycle the id; the cache must not elide the bind.
	dev.ResetCalls()
	c.BindArrayBuffer(b)
	if n := dev.CallCount("BindBuffer"); n != 1 {
		t.Errorf("BindBuffer issued %d times, want 1", n)
	}
}

func TestDeleteInvalidatesCachedBinding(t *testing.T) {
	c, dev := newTestConnection(t)
	tex, _ := dev.CreateTexture()
	c.BindTextureUnit(0, driver.Texture2D, tex)
	c.DeleteObject(driver.ObjectTexture, uint64(tex))
	if dev.Live(driver.ObjectTexture) != 0 {
		t.Fatal("texture not deleted")
	}

	dev.ResetCalls()
	c.BindTextureUnit(0, driver.Texture2D, tex)
	if n := dev.CallCount("BindTexture"); n != 1 {
		t.Errorf("BindTexture after delete issued %d times, want 1", n)
	}
}

func TestHandlesAreGenerational(t *testing.T) {
	c, _ := newTestConnection(t)
	h1 := c.Track(driver.ObjectSampler, 7)
	c.Release(h1)
	c.DrainDropQueue()

	h2 := c.Track(driver.ObjectSampler, 8)
	if h1 == h2 {
		t.Fatal("recycled slot must get a new generation")
	}
	if _, _, err := c.Lookup(h1); err == nil {
		t.Error("stale handle resolved")
	}
	kind, id, err := c.Lookup(h2)
	if err != nil || kind != driver.ObjectSampler || id != 8 {
		t.Errorf("Lookup(h2) = %v, %d, %v", kind, id, err)
	}

	var zero Handle
	if !zero.IsZero() {
		t.Error("zero handle must report IsZero")
	}
	c.Release(zero)
	if c.PendingDrops() != 0 {
		t.Error("releasing the zero handle must be a no-op")
	}
}

func TestConcurrentRelease(t *testing.T) {
	c, _ := newTestConnection(t)
	handles := make([]Handle, 64)
	for i := range handles {
		handles[i] = c.Track(driver.ObjectBuffer, uint64(1000+i))
	}
	var wg sync.WaitGroup
	for _, h := range handles {
		wg.Add(1)
		go func(h Handle) {
			defer wg.Done()
			c.Release(h)
		}(h)
	}
	wg.Wait()
	if n := c.PendingDrops(); n != 64 {
		t.Errorf("PendingDrops = %d, want 64", n)
	}
}

func TestLeastRecentTextureUnit(t *testing.T) {
	c, _ := newTestConnection(t)

	// Units 0..3 start in LRU order.
	if u := c.LeastRecentTextureUnit(); u != 0 {
		t.Errorf("first LRU unit = %d, want 0", u)
	}
	c.SetActiveTexture(1)
	if u := c.LeastRecentTextureUnit(); u != 2 {
		t.Errorf("LRU unit = %d, want 2", u)
	}
	if u := c.SetActiveTextureLRU(); u != 3 || c.ActiveTexture() != 3 {
		t.Errorf("SetActiveTextureLRU = %d (active %d), want 3", u, c.ActiveTexture())
	}
	if u := c.LeastRecentTextureUnit(); u != 0 {
		t.Errorf("LRU unit = %d, want 0", u)
	}
}
