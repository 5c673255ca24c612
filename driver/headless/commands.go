// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/driver"
)

// UseProgram makes p current. Using an unlinked program is an error.
func (d *Device) UseProgram(p driver.ProgramID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("UseProgram", p)
	if p != driver.InvalidID {
		prog, ok := d.programs[p]
		if !ok || !prog.linked {
			d.fail(ErrInvalidOperation, "use of unlinked program %d", p)
			return
		}
	}
	d.current = p
}

// UniformBlockBinding assigns a uniform buffer binding to a block.
func (d *Device) UniformBlockBinding(p driver.ProgramID, blockIndex, binding uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("UniformBlockBinding", p, blockIndex, binding)
	prog, err := d.linkedProgram(p)
	if err != nil {
		d.fail(ErrInvalidOperation, "%v", err)
		return
	}
	if int(blockIndex) >= len(prog.blocks) {
		d.fail(ErrInvalidValue, "block index %d out of range", blockIndex)
		return
	}
	if int(binding) >= d.opts.limits.MaxUniformBufferBindings {
		d.fail(ErrInvalidValue, "uniform buffer binding %d out of range", binding)
		return
	}
	prog.blockBindings[blockIndex] = binding
}

// Uniform1i sets a sampler uniform of the current program.
func (d *Device) Uniform1i(loc driver.UniformLocation, v int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("Uniform1i", loc, v)
	if loc == driver.NoLocation {
		return
	}
	prog, ok := d.programs[d.current]
	if !ok {
		d.fail(ErrInvalidOperation, "no current program")
		return
	}
	if int(loc) >= len(prog.locations) {
		d.fail(ErrInvalidOperation, "location %d is not a uniform of program %d", loc, d.current)
		return
	}
	prog.samplerUnits[loc] = v
}

// BindBuffer binds b to target.
func (d *Device) BindBuffer(target driver.BufferTarget, b driver.BufferID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BindBuffer", target, b)
	d.bindBuffer(target, b)
}

func (d *Device) bindBuffer(target driver.BufferTarget, b driver.BufferID) {
	if b == driver.InvalidID {
		delete(d.bound, target)
		return
	}
	if _, ok := d.buffers[b]; !ok {
		d.fail(ErrInvalidOperation, "bind of unknown buffer %d", b)
		return
	}
	d.bound[target] = b
}

// BindBufferRange binds a range of b to an indexed target.
func (d *Device) BindBufferRange(target driver.BufferTarget, index uint32, b driver.BufferID, offset, size int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BindBufferRange", target, index, b, offset, size)
	if offset < 0 || size <= 0 {
		d.fail(ErrInvalidValue, "range [%d, %d)", offset, offset+size)
		return
	}
	d.bindBuffer(target, b)
}

// BufferData replaces the data store of the buffer bound to target.
func (d *Device) BufferData(target driver.BufferTarget, data []byte, usage driver.BufferUsage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BufferData", target, len(data), usage)
	buf := d.boundBuffer(target)
	if buf == nil {
		return
	}
	buf.data = append([]byte(nil), data...)
	buf.usage = usage
}

// BufferSubData writes into the data store of the buffer bound to target.
func (d *Device) BufferSubData(target driver.BufferTarget, offset int, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BufferSubData", target, offset, len(data))
	buf := d.boundBuffer(target)
	if buf == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(buf.data) {
		d.fail(ErrInvalidValue, "write [%d, %d) past buffer size %d", offset, offset+len(data), len(buf.data))
		return
	}
	copy(buf.data[offset:], data)
}

func (d *Device) boundBuffer(target driver.BufferTarget) *buffer {
	b, ok := d.bound[target]
	if !ok {
		d.fail(ErrInvalidOperation, "no buffer bound to %#x", uint32(target))
		return nil
	}
	return d.buffers[b]
}

// ActiveTexture selects the active texture unit.
func (d *Device) ActiveTexture(unit uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("ActiveTexture", unit)
	if int(unit) >= d.opts.limits.MaxCombinedTextureUnits {
		d.fail(ErrInvalidEnum, "texture unit %d out of range", unit)
		return
	}
	d.activeUnit = unit
}

// BindTexture binds t to target on the active unit. A texture keeps the
// target it is first bound to.
func (d *Device) BindTexture(target driver.TextureTarget, t driver.TextureID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BindTexture", target, t)
	targets := d.unitTex[d.activeUnit]
	if targets == nil {
		targets = make(map[driver.TextureTarget]driver.TextureID)
		d.unitTex[d.activeUnit] = targets
	}
	if t == driver.InvalidID {
		delete(targets, target)
		return
	}
	info, ok := d.textures[t]
	if !ok {
		d.fail(ErrInvalidOperation, "bind of unknown texture %d", t)
		return
	}
	if info.Target == 0 {
		info.Target = target
	} else if info.Target != target {
		d.fail(ErrInvalidOperation, "texture %d is a %s, not a %s", t, info.Target, target)
		return
	}
	targets[target] = t
}

func (d *Device) boundTexture(target driver.TextureTarget) *TextureInfo {
	t, ok := d.unitTex[d.activeUnit][target]
	if !ok {
		d.fail(ErrInvalidOperation, "no texture bound to %s on unit %d", target, d.activeUnit)
		return nil
	}
	return d.textures[t]
}

// TexStorage allocates immutable storage for the bound texture.
func (d *Device) TexStorage(target driver.TextureTarget, levels int, format gputypes.TextureFormat, width, height, depth int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("TexStorage", target, levels, format, width, height, depth)
	info := d.boundTexture(target)
	if info == nil {
		return
	}
	if info.Levels != 0 {
		d.fail(ErrInvalidOperation, "texture storage is immutable")
		return
	}
	if _, ok := driver.LookupFormat(format); !ok {
		d.fail(ErrInvalidEnum, "format %v", format)
		return
	}
	if levels < 1 || width < 1 || height < 1 || depth < 1 {
		d.fail(ErrInvalidValue, "storage %dx%dx%d with %d levels", width, height, depth, levels)
		return
	}
	info.Format = format
	info.Levels = levels
	info.Width, info.Height, info.Depth = width, height, depth
}

// TexSubImage uploads texels into the bound texture.
func (d *Device) TexSubImage(target driver.TextureTarget, level, x, y, z, width, height, depth int, format gputypes.TextureFormat, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("TexSubImage", target, level, x, y, z, width, height, depth, format, len(data))
	info := d.boundTexture(target)
	if info == nil {
		return
	}
	if info.Levels == 0 || level >= info.Levels {
		d.fail(ErrInvalidOperation, "upload to level %d of a texture with %d levels", level, info.Levels)
		return
	}
	if format != info.Format {
		d.fail(ErrInvalidOperation, "upload format %v does not match storage format %v", format, info.Format)
		return
	}
	w, h, dd := max(info.Width>>level, 1), max(info.Height>>level, 1), info.Depth
	if target != driver.Texture2DArray && target != driver.TextureCubeMap {
		dd = max(info.Depth>>level, 1)
	}
	if x < 0 || y < 0 || z < 0 || x+width > w || y+height > h || z+depth > dd {
		d.fail(ErrInvalidValue, "region exceeds level %d bounds", level)
		return
	}
	fi, _ := driver.LookupFormat(format)
	if len(data) < width*height*depth*fi.BytesPerTexel {
		d.fail(ErrInvalidOperation, "%d bytes for a %dx%dx%d region", len(data), width, height, depth)
		return
	}
	info.Uploads++
}

// GenerateMipmap generates the mip chain of the bound texture.
func (d *Device) GenerateMipmap(target driver.TextureTarget) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("GenerateMipmap", target)
	if info := d.boundTexture(target); info != nil && info.Levels == 0 {
		d.fail(ErrInvalidOperation, "mipmap generation without storage")
	}
}

// BindSampler binds s to a texture unit.
func (d *Device) BindSampler(unit uint32, s driver.SamplerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BindSampler", unit, s)
	if s != driver.InvalidID {
		if _, ok := d.samplers[s]; !ok {
			d.fail(ErrInvalidOperation, "bind of unknown sampler %d", s)
		}
	}
}

// SetSamplerParameters replaces the parameters of a sampler.
func (d *Device) SetSamplerParameters(s driver.SamplerID, params driver.SamplerParameters) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("SetSamplerParameters", s)
	p, ok := d.samplers[s]
	if !ok {
		d.fail(ErrInvalidOperation, "unknown sampler %d", s)
		return
	}
	*p = params
}

// BindVertexArray binds a vertex array object.
func (d *Device) BindVertexArray(v driver.VertexArrayID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BindVertexArray", v)
	if v != driver.InvalidID {
		if _, ok := d.arrays[v]; !ok {
			d.fail(ErrInvalidOperation, "bind of unknown vertex array %d", v)
		}
	}
}

func (d *Device) checkAttrib(location uint32) bool {
	if int(location) >= d.opts.limits.MaxVertexAttribs {
		d.fail(ErrInvalidValue, "attribute location %d out of range", location)
		return false
	}
	return true
}

// EnableVertexAttribArray enables an attribute location.
func (d *Device) EnableVertexAttribArray(location uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("EnableVertexAttribArray", location)
	d.checkAttrib(location)
}

// DisableVertexAttribArray disables an attribute location.
func (d *Device) DisableVertexAttribArray(location uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DisableVertexAttribArray", location)
	d.checkAttrib(location)
}

// VertexAttribPointer points a float attribute at the bound array buffer.
func (d *Device) VertexAttribPointer(location uint32, size int, typ driver.ComponentType, normalized bool, stride, offset int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("VertexAttribPointer", location, size, typ, normalized, stride, offset)
	d.attribPointer(location, size)
}

// VertexAttribIPointer points an integer attribute at the bound array
// buffer.
func (d *Device) VertexAttribIPointer(location uint32, size int, typ driver.ComponentType, stride, offset int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("VertexAttribIPointer", location, size, typ, stride, offset)
	d.attribPointer(location, size)
}

func (d *Device) attribPointer(location uint32, size int) {
	if !d.checkAttrib(location) {
		return
	}
	if size < 1 || size > 4 {
		d.fail(ErrInvalidValue, "attribute size %d", size)
		return
	}
	if _, ok := d.bound[driver.TargetArrayBuffer]; !ok {
		d.fail(ErrInvalidOperation, "attribute pointer without an array buffer")
	}
}

// VertexAttribDivisor sets the instancing divisor of an attribute.
func (d *Device) VertexAttribDivisor(location, divisor uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("VertexAttribDivisor", location, divisor)
	d.checkAttrib(location)
}

// Enable enables a capability.
func (d *Device) Enable(c driver.Capability) { d.recordLocked("Enable", c) }

// Disable disables a capability.
func (d *Device) Disable(c driver.Capability) { d.recordLocked("Disable", c) }

// CullFace selects the culled faces.
func (d *Device) CullFace(f driver.Face) { d.recordLocked("CullFace", f) }

// FrontFace selects the front face winding.
func (d *Device) FrontFace(w driver.Winding) { d.recordLocked("FrontFace", w) }

// DepthFunc sets the depth comparison.
func (d *Device) DepthFunc(f driver.CompareFunc) { d.recordLocked("DepthFunc", f) }

// DepthMask enables or disables depth writes.
func (d *Device) DepthMask(write bool) { d.recordLocked("DepthMask", write) }

// DepthRange sets the depth range.
func (d *Device) DepthRange(near, far float32) { d.recordLocked("DepthRange", near, far) }

// BlendFuncSeparate sets the blend factors.
func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha driver.BlendFactor) {
	d.recordLocked("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

// BlendEquationSeparate sets the blend equations.
func (d *Device) BlendEquationSeparate(rgb, alpha driver.BlendEquation) {
	d.recordLocked("BlendEquationSeparate", rgb, alpha)
}

// BlendColor sets the constant blend color.
func (d *Device) BlendColor(r, g, b, a float32) { d.recordLocked("BlendColor", r, g, b, a) }

// ColorMask sets the color write mask.
func (d *Device) ColorMask(r, g, b, a bool) { d.recordLocked("ColorMask", r, g, b, a) }

// Viewport sets the viewport.
func (d *Device) Viewport(x, y, width, height int32) {
	d.recordLocked("Viewport", x, y, width, height)
}

// LineWidth sets the line width.
func (d *Device) LineWidth(w float32) { d.recordLocked("LineWidth", w) }

// ClearColor sets the clear color.
func (d *Device) ClearColor(r, g, b, a float32) { d.recordLocked("ClearColor", r, g, b, a) }

// Clear clears the selected buffers.
func (d *Device) Clear(mask driver.ClearMask) { d.recordLocked("Clear", mask) }

func (d *Device) recordLocked(name string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(name, args...)
}

// DrawArrays draws count vertices.
func (d *Device) DrawArrays(mode driver.PrimitiveMode, first, count int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DrawArrays", mode, first, count)
	d.checkDraw(false)
}

// DrawArraysInstanced draws count vertices for each instance.
func (d *Device) DrawArraysInstanced(mode driver.PrimitiveMode, first, count, instances int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DrawArraysInstanced", mode, first, count, instances)
	d.checkDraw(false)
}

// DrawElements draws indexed primitives.
func (d *Device) DrawElements(mode driver.PrimitiveMode, count int32, typ driver.ComponentType, offset int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DrawElements", mode, count, typ, offset)
	d.checkDraw(true)
}

// DrawElementsInstanced draws indexed primitives for each instance.
func (d *Device) DrawElementsInstanced(mode driver.PrimitiveMode, count int32, typ driver.ComponentType, offset int, instances int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DrawElementsInstanced", mode, count, typ, offset, instances)
	d.checkDraw(true)
}

func (d *Device) checkDraw(indexed bool) {
	if d.current == driver.InvalidID {
		d.fail(ErrInvalidOperation, "draw without a program")
		return
	}
	if _, ok := d.bound[driver.TargetElementArrayBuffer]; indexed && !ok {
		d.fail(ErrInvalidOperation, "indexed draw without an element array buffer")
	}
}
