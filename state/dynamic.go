// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import "github.com/gogpu/glitz/driver"

// BlendFunc is the separate RGB and alpha blend factor state.
type BlendFunc struct {
	SrcRGB, DstRGB     driver.BlendFactor
	SrcAlpha, DstAlpha driver.BlendFactor
}

// BlendEquation is the separate RGB and alpha blend equation state.
type BlendEquation struct {
	RGB, Alpha driver.BlendEquation
}

// Rect is a viewport rectangle in pixels.
type Rect struct {
	X, Y, Width, Height int32
}

// AttribPointer is the full state of one vertex attribute location.
type AttribPointer struct {
	Buffer     driver.BufferID
	Size       int
	Type       driver.ComponentType
	Normalized bool
	Integer    bool
	Stride     int
	Offset     int
	Divisor    uint32
}

type bufferRange struct {
	buffer       driver.BufferID
	offset, size int
}

type attribState struct {
	enabled bool
	pointer AttribPointer
	known   bool
}

// Texture targets tracked per unit, in bind-slot order.
var textureTargets = [...]driver.TextureTarget{
	driver.Texture2D,
	driver.Texture2DArray,
	driver.Texture3D,
	driver.TextureCubeMap,
}

func targetSlot(t driver.TextureTarget) int {
	for i, tt := range textureTargets {
		if tt == t {
			return i
		}
	}
	return -1
}

type dynamicState struct {
	program driver.ProgramID

	arrayBuffer   driver.BufferID
	elementBuffer driver.BufferID
	elementKnown  bool
	vertexArray   driver.VertexArrayID

	uniformRanges []bufferRange

	activeUnit uint32
	textures   [][len(textureTargets)]driver.TextureID
	samplers   []driver.SamplerID

	attribs []attribState

	capabilities map[driver.Capability]bool
	cullFace     driver.Face
	frontFace    driver.Winding
	depthFunc    driver.CompareFunc
	depthMask    bool
	depthRange   [2]float32
	blendFunc    BlendFunc
	blendEq      BlendEquation
	blendColor   [4]float32
	colorMask    [4]bool
	viewport     Rect
	viewportSet  bool
	lineWidth    float32
	clearColor   [4]float32
}

// newDynamicState returns the initial WebGL2 state.
func newDynamicState(l driver.Limits) dynamicState {
	return dynamicState{
		elementKnown:  true,
		uniformRanges: make([]bufferRange, l.MaxUniformBufferBindings),
		textures:      make([][len(textureTargets)]driver.TextureID, l.MaxCombinedTextureUnits),
		samplers:      make([]driver.SamplerID, l.MaxCombinedTextureUnits),
		attribs:       make([]attribState, l.MaxVertexAttribs),
		capabilities:  map[driver.Capability]bool{driver.CapDither: true},
		cullFace:      driver.FaceBack,
		frontFace:     driver.WindingCCW,
		depthFunc:     driver.CompareLess,
		depthMask:     true,
		depthRange:    [2]float32{0, 1},
		blendFunc:     BlendFunc{driver.BlendOne, driver.BlendZero, driver.BlendOne, driver.BlendZero},
		blendEq:       BlendEquation{driver.EquationAdd, driver.EquationAdd},
		colorMask:     [4]bool{true, true, true, true},
		lineWidth:     1,
	}
}

// UseProgram makes p the current program.
func (c *Connection) UseProgram(p driver.ProgramID) {
	if c.dyn.program == p {
		return
	}
	c.dyn.program = p
	c.device.UseProgram(p)
}

// CurrentProgram returns the program in use.
func (c *Connection) CurrentProgram() driver.ProgramID { return c.dyn.program }

// BindArrayBuffer binds b to the array buffer target.
func (c *Connection) BindArrayBuffer(b driver.BufferID) {
	if c.dyn.arrayBuffer == b {
		return
	}
	c.dyn.arrayBuffer = b
	c.device.BindBuffer(driver.TargetArrayBuffer, b)
}

// BindElementArrayBuffer binds b to the element array buffer target of the
// current vertex array.
func (c *Connection) BindElementArrayBuffer(b driver.BufferID) {
	if c.dyn.elementKnown && c.dyn.elementBuffer == b {
		return
	}
	c.dyn.elementBuffer = b
	c.dyn.elementKnown = true
	c.device.BindBuffer(driver.TargetElementArrayBuffer, b)
}

// BindVertexArray binds a vertex array object. Attribute and element buffer
// state belongs to the vertex array, so the cache of both is reset when the
// binding changes.
func (c *Connection) BindVertexArray(v driver.VertexArrayID) {
	if c.dyn.vertexArray == v {
		return
	}
	c.dyn.vertexArray = v
	c.dyn.elementKnown = false
	for i := range c.dyn.attribs {
		c.dyn.attribs[i] = attribState{}
	}
	c.device.BindVertexArray(v)
}

// BindUniformBufferRange binds a range of b to a uniform buffer binding
// index.
func (c *Connection) BindUniformBufferRange(index uint32, b driver.BufferID, offset, size int) {
	r := bufferRange{buffer: b, offset: offset, size: size}
	if int(index) < len(c.dyn.uniformRanges) {
		c.uniformBindings.Use(int(index))
		if c.dyn.uniformRanges[index] == r {
			return
		}
		c.dyn.uniformRanges[index] = r
	}
	// Binding a range also binds the generic uniform buffer target.
	c.device.BindBufferRange(driver.TargetUniformBuffer, index, b, offset, size)
}

// SetActiveTexture selects the active texture unit.
func (c *Connection) SetActiveTexture(unit uint32) {
	if int(unit) < c.textureUnits.Len() {
		c.textureUnits.Use(int(unit))
	}
	c.setActiveTexture(unit)
}

func (c *Connection) setActiveTexture(unit uint32) {
	if c.dyn.activeUnit == unit {
		return
	}
	c.dyn.activeUnit = unit
	c.device.ActiveTexture(unit)
}

// ActiveTexture returns the active texture unit.
func (c *Connection) ActiveTexture() uint32 { return c.dyn.activeUnit }

// BindTexture binds t to target on the active texture unit.
func (c *Connection) BindTexture(target driver.TextureTarget, t driver.TextureID) {
	unit := c.dyn.activeUnit
	slot := targetSlot(target)
	if slot >= 0 && int(unit) < len(c.dyn.textures) {
		if c.dyn.textures[unit][slot] == t {
			return
		}
		c.dyn.textures[unit][slot] = t
	}
	c.device.BindTexture(target, t)
}

// BindTextureUnit makes unit active and binds t to target on it.
func (c *Connection) BindTextureUnit(unit uint32, target driver.TextureTarget, t driver.TextureID) {
	c.SetActiveTexture(unit)
	c.BindTexture(target, t)
}

// BindSampler binds s to a texture unit.
func (c *Connection) BindSampler(unit uint32, s driver.SamplerID) {
	if int(unit) < len(c.dyn.samplers) {
		if c.dyn.samplers[unit] == s {
			return
		}
		c.dyn.samplers[unit] = s
	}
	c.device.BindSampler(unit, s)
}

// SetCapability enables or disables a server-side capability.
func (c *Connection) SetCapability(capability driver.Capability, enabled bool) {
	if c.dyn.capabilities[capability] == enabled {
		return
	}
	c.dyn.capabilities[capability] = enabled
	if enabled {
		c.device.Enable(capability)
	} else {
		c.device.Disable(capability)
	}
}

// Capability reports whether a capability is enabled.
func (c *Connection) Capability(capability driver.Capability) bool {
	return c.dyn.capabilities[capability]
}

// SetCullFace selects the faces culled when culling is enabled.
func (c *Connection) SetCullFace(f driver.Face) {
	if c.dyn.cullFace == f {
		return
	}
	c.dyn.cullFace = f
	c.device.CullFace(f)
}

// SetFrontFace selects the winding of front faces.
func (c *Connection) SetFrontFace(w driver.Winding) {
	if c.dyn.frontFace == w {
		return
	}
	c.dyn.frontFace = w
	c.device.FrontFace(w)
}

// SetDepthFunc sets the depth comparison function.
func (c *Connection) SetDepthFunc(f driver.CompareFunc) {
	if c.dyn.depthFunc == f {
		return
	}
	c.dyn.depthFunc = f
	c.device.DepthFunc(f)
}

// SetDepthMask enables or disables depth writes.
func (c *Connection) SetDepthMask(write bool) {
	if c.dyn.depthMask == write {
		return
	}
	c.dyn.depthMask = write
	c.device.DepthMask(write)
}

// SetDepthRange sets the depth range mapping.
func (c *Connection) SetDepthRange(near, far float32) {
	r := [2]float32{near, far}
	if c.dyn.depthRange == r {
		return
	}
	c.dyn.depthRange = r
	c.device.DepthRange(near, far)
}

// SetBlendFunc sets the blend factors.
func (c *Connection) SetBlendFunc(f BlendFunc) {
	if c.dyn.blendFunc == f {
		return
	}
	c.dyn.blendFunc = f
	c.device.BlendFuncSeparate(f.SrcRGB, f.DstRGB, f.SrcAlpha, f.DstAlpha)
}

// SetBlendEquation sets the blend equations.
func (c *Connection) SetBlendEquation(e BlendEquation) {
	if c.dyn.blendEq == e {
		return
	}
	c.dyn.blendEq = e
	c.device.BlendEquationSeparate(e.RGB, e.Alpha)
}

// SetBlendColor sets the constant blend color.
func (c *Connection) SetBlendColor(color [4]float32) {
	if c.dyn.blendColor == color {
		return
	}
	c.dyn.blendColor = color
	c.device.BlendColor(color[0], color[1], color[2], color[3])
}

// SetColorMask sets which color channels are written.
func (c *Connection) SetColorMask(mask [4]bool) {
	if c.dyn.colorMask == mask {
		return
	}
	c.dyn.colorMask = mask
	c.device.ColorMask(mask[0], mask[1], mask[2], mask[3])
}

// SetViewport sets the viewport rectangle.
func (c *Connection) SetViewport(r Rect) {
	if c.dyn.viewportSet && c.dyn.viewport == r {
		return
	}
	c.dyn.viewport = r
	c.dyn.viewportSet = true
	c.device.Viewport(r.X, r.Y, r.Width, r.Height)
}

// SetLineWidth sets the rasterized line width.
func (c *Connection) SetLineWidth(w float32) {
	if c.dyn.lineWidth == w {
		return
	}
	c.dyn.lineWidth = w
	c.device.LineWidth(w)
}

// SetClearColor sets the color used by color clears.
func (c *Connection) SetClearColor(color [4]float32) {
	if c.dyn.clearColor == color {
		return
	}
	c.dyn.clearColor = color
	c.device.ClearColor(color[0], color[1], color[2], color[3])
}

// SetVertexAttribute points location at a range of a buffer and enables it.
// The buffer is bound to the array buffer target if the pointer changes.
func (c *Connection) SetVertexAttribute(location uint32, p AttribPointer) {
	var st *attribState
	if int(location) < len(c.dyn.attribs) {
		st = &c.dyn.attribs[location]
	}

	if st == nil || !st.known || st.pointer != p {
		c.BindArrayBuffer(p.Buffer)
		if p.Integer {
			c.device.VertexAttribIPointer(location, p.Size, p.Type, p.Stride, p.Offset)
		} else {
			c.device.VertexAttribPointer(location, p.Size, p.Type, p.Normalized, p.Stride, p.Offset)
		}
		if st == nil || !st.known || st.pointer.Divisor != p.Divisor {
			c.device.VertexAttribDivisor(location, p.Divisor)
		}
		if st != nil {
			st.pointer = p
			st.known = true
		}
	}

	if st == nil || !st.enabled {
		c.device.EnableVertexAttribArray(location)
		if st != nil {
			st.enabled = true
		}
	}
}

// DisableVertexAttributesExcept disables every enabled attribute location
// not in used.
func (c *Connection) DisableVertexAttributesExcept(used map[uint32]struct{}) {
	for i := range c.dyn.attribs {
		st := &c.dyn.attribs[i]
		if !st.enabled {
			continue
		}
		if _, ok := used[uint32(i)]; ok {
			continue
		}
		st.enabled = false
		c.device.DisableVertexAttribArray(uint32(i))
	}
}

// forget drops every cached binding of the object so that the next bind of
// a recycled id is not elided.
func (d *dynamicState) forget(kind driver.ObjectKind, id uint64) {
	switch kind {
	case driver.ObjectProgram:
		if uint64(d.program) == id {
			d.program = driver.InvalidID
		}
	case driver.ObjectBuffer:
		b := driver.BufferID(id)
		if d.arrayBuffer == b {
			d.arrayBuffer = driver.InvalidID
		}
		if d.elementBuffer == b {
			d.elementKnown = false
		}
		for i := range d.uniformRanges {
			if d.uniformRanges[i].buffer == b {
				d.uniformRanges[i] = bufferRange{}
			}
		}
		for i := range d.attribs {
			if d.attribs[i].pointer.Buffer == b {
				d.attribs[i].known = false
			}
		}
	case driver.ObjectTexture:
		t := driver.TextureID(id)
		for u := range d.textures {
			for s := range d.textures[u] {
				if d.textures[u][s] == t {
					d.textures[u][s] = driver.InvalidID
				}
			}
		}
	case driver.ObjectSampler:
		s := driver.SamplerID(id)
		for u := range d.samplers {
			if d.samplers[u] == s {
				d.samplers[u] = driver.InvalidID
			}
		}
	case driver.ObjectVertexArray:
		if uint64(d.vertexArray) == id {
			d.vertexArray = driver.InvalidID
			d.elementKnown = false
			for i := range d.attribs {
				d.attribs[i] = attribState{}
			}
		}
	}
}
