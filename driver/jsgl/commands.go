// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package jsgl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz"
	"github.com/gogpu/glitz/driver"
)

// UseProgram makes p the current program.
func (d *Device) UseProgram(p driver.ProgramID) {
	d.gl.Call("useProgram", d.obj(uint64(p)))
}

// UniformBlockBinding assigns a uniform block to a binding index.
func (d *Device) UniformBlockBinding(p driver.ProgramID, blockIndex, binding uint32) {
	d.gl.Call("uniformBlockBinding", d.obj(uint64(p)), blockIndex, binding)
}

// Uniform1i sets an integer uniform of the current program.
func (d *Device) Uniform1i(loc driver.UniformLocation, v int32) {
	l, ok := d.locations[loc]
	if !ok {
		return
	}
	d.gl.Call("uniform1i", l.value, v)
}

// BindBuffer binds b to target.
func (d *Device) BindBuffer(target driver.BufferTarget, b driver.BufferID) {
	d.gl.Call("bindBuffer", uint32(target), d.obj(uint64(b)))
}

// BindBufferRange binds a range of b to an indexed binding point.
func (d *Device) BindBufferRange(target driver.BufferTarget, index uint32, b driver.BufferID, offset, size int) {
	d.gl.Call("bindBufferRange", uint32(target), index, d.obj(uint64(b)), offset, size)
}

// BufferData allocates the bound buffer's store and fills it with data.
func (d *Device) BufferData(target driver.BufferTarget, data []byte, usage driver.BufferUsage) {
	if len(data) == 0 {
		d.gl.Call("bufferData", uint32(target), 0, uint32(usage))
		return
	}
	d.gl.Call("bufferData", uint32(target), d.bytesOf(data, "Uint8Array", 1), uint32(usage))
}

// BufferSubData writes data into the bound buffer at offset.
func (d *Device) BufferSubData(target driver.BufferTarget, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	d.gl.Call("bufferSubData", uint32(target), offset, d.bytesOf(data, "Uint8Array", 1))
}

// ActiveTexture selects the texture unit for BindTexture.
func (d *Device) ActiveTexture(unit uint32) {
	d.gl.Call("activeTexture", glTexture0+int(unit))
}

// BindTexture binds t to target on the active unit.
func (d *Device) BindTexture(target driver.TextureTarget, t driver.TextureID) {
	d.gl.Call("bindTexture", uint32(target), d.obj(uint64(t)))
}

// TexStorage allocates immutable storage for the bound texture.
func (d *Device) TexStorage(target driver.TextureTarget, levels int, format gputypes.TextureFormat, width, height, depth int) {
	info, ok := driver.LookupFormat(format)
	if !ok {
		glitz.Logger().Warn("jsgl: unsupported texture format", "format", format)
		return
	}
	switch target {
	case driver.Texture3D, driver.Texture2DArray:
		d.gl.Call("texStorage3D", uint32(target), levels, info.Internal, width, height, depth)
	default:
		d.gl.Call("texStorage2D", uint32(target), levels, info.Internal, width, height)
	}
}

// texelView returns the typed array constructor texSubImage expects for a
// client component type.
func texelView(typ uint32) (string, int) {
	switch driver.ComponentType(typ) {
	case driver.ComponentFloat:
		return "Float32Array", 4
	case driver.ComponentUnsignedInt:
		return "Uint32Array", 4
	case driver.ComponentInt:
		return "Int32Array", 4
	case driver.ComponentByte:
		return "Int8Array", 1
	case driver.ComponentUnsignedByte:
		return "Uint8Array", 1
	default:
		return "Uint32Array", 4
	}
}

// TexSubImage uploads a region of the bound texture. Cube map faces are
// addressed by z.
func (d *Device) TexSubImage(target driver.TextureTarget, level, x, y, z, width, height, depth int, format gputypes.TextureFormat, data []byte) {
	info, ok := driver.LookupFormat(format)
	if !ok {
		glitz.Logger().Warn("jsgl: unsupported texture format", "format", format)
		return
	}
	view, size := texelView(info.Type)
	switch target {
	case driver.Texture3D, driver.Texture2DArray:
		d.gl.Call("texSubImage3D", uint32(target), level, x, y, z, width, height, depth,
			info.Format, info.Type, d.bytesOf(data, view, size))
	case driver.TextureCubeMap:
		face := width * height * info.BytesPerTexel
		for i := range depth {
			d.gl.Call("texSubImage2D", glTextureCubeMapPositiveX+z+i, level, x, y, width, height,
				info.Format, info.Type, d.bytesOf(data[i*face:(i+1)*face], view, size))
		}
	default:
		d.gl.Call("texSubImage2D", uint32(target), level, x, y, width, height,
			info.Format, info.Type, d.bytesOf(data, view, size))
	}
}

// GenerateMipmap fills the mip chain of the bound texture.
func (d *Device) GenerateMipmap(target driver.TextureTarget) {
	d.gl.Call("generateMipmap", uint32(target))
}

// BindSampler binds s to a texture unit.
func (d *Device) BindSampler(unit uint32, s driver.SamplerID) {
	d.gl.Call("bindSampler", unit, d.obj(uint64(s)))
}

// SetSamplerParameters writes every sampling parameter of s.
func (d *Device) SetSamplerParameters(s driver.SamplerID, p driver.SamplerParameters) {
	smp := d.obj(uint64(s))
	if smp.IsNull() {
		return
	}
	d.gl.Call("samplerParameteri", smp, glTextureMinFilter, uint32(p.MinFilter))
	d.gl.Call("samplerParameteri", smp, glTextureMagFilter, uint32(p.MagFilter))
	d.gl.Call("samplerParameteri", smp, glTextureWrapS, uint32(p.WrapS))
	d.gl.Call("samplerParameteri", smp, glTextureWrapT, uint32(p.WrapT))
	d.gl.Call("samplerParameteri", smp, glTextureWrapR, uint32(p.WrapR))
	d.gl.Call("samplerParameterf", smp, glTextureMinLOD, p.MinLOD)
	d.gl.Call("samplerParameterf", smp, glTextureMaxLOD, p.MaxLOD)
	if p.Compare {
		d.gl.Call("samplerParameteri", smp, glTextureCompareMode, glCompareRefToTexture)
		d.gl.Call("samplerParameteri", smp, glTextureCompareFunc, uint32(p.CompareFunc))
	} else {
		d.gl.Call("samplerParameteri", smp, glTextureCompareMode, glNone)
	}
}

// BindVertexArray binds v.
func (d *Device) BindVertexArray(v driver.VertexArrayID) {
	d.gl.Call("bindVertexArray", d.obj(uint64(v)))
}

// EnableVertexAttribArray enables an attribute array.
func (d *Device) EnableVertexAttribArray(location uint32) {
	d.gl.Call("enableVertexAttribArray", location)
}

// DisableVertexAttribArray disables an attribute array.
func (d *Device) DisableVertexAttribArray(location uint32) {
	d.gl.Call("disableVertexAttribArray", location)
}

// VertexAttribPointer sources a float attribute from the bound array buffer.
func (d *Device) VertexAttribPointer(location uint32, size int, typ driver.ComponentType, normalized bool, stride, offset int) {
	d.gl.Call("vertexAttribPointer", location, size, uint32(typ), normalized, stride, offset)
}

// VertexAttribIPointer sources an integer attribute from the bound array
// buffer.
func (d *Device) VertexAttribIPointer(location uint32, size int, typ driver.ComponentType, stride, offset int) {
	d.gl.Call("vertexAttribIPointer", location, size, uint32(typ), stride, offset)
}

// VertexAttribDivisor sets the instance divisor of an attribute.
func (d *Device) VertexAttribDivisor(location, divisor uint32) {
	d.gl.Call("vertexAttribDivisor", location, divisor)
}

// Enable enables a capability.
func (d *Device) Enable(c driver.Capability) { d.gl.Call("enable", uint32(c)) }

// Disable disables a capability.
func (d *Device) Disable(c driver.Capability) { d.gl.Call("disable", uint32(c)) }

// CullFace selects the culled faces.
func (d *Device) CullFace(f driver.Face) { d.gl.Call("cullFace", uint32(f)) }

// FrontFace sets the front-facing winding.
func (d *Device) FrontFace(w driver.Winding) { d.gl.Call("frontFace", uint32(w)) }

// DepthFunc sets the depth comparison.
func (d *Device) DepthFunc(f driver.CompareFunc) { d.gl.Call("depthFunc", uint32(f)) }

// DepthMask enables or disables depth writes.
func (d *Device) DepthMask(write bool) { d.gl.Call("depthMask", write) }

// DepthRange sets the depth range mapping.
func (d *Device) DepthRange(near, far float32) { d.gl.Call("depthRange", near, far) }

// BlendFuncSeparate sets the blend factors.
func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha driver.BlendFactor) {
	d.gl.Call("blendFuncSeparate", uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

// BlendEquationSeparate sets the blend equations.
func (d *Device) BlendEquationSeparate(rgb, alpha driver.BlendEquation) {
	d.gl.Call("blendEquationSeparate", uint32(rgb), uint32(alpha))
}

// BlendColor sets the constant blend color.
func (d *Device) BlendColor(r, g, b, a float32) { d.gl.Call("blendColor", r, g, b, a) }

// ColorMask sets the color write mask.
func (d *Device) ColorMask(r, g, b, a bool) { d.gl.Call("colorMask", r, g, b, a) }

// Viewport sets the viewport rectangle.
func (d *Device) Viewport(x, y, width, height int32) { d.gl.Call("viewport", x, y, width, height) }

// LineWidth sets the rasterized line width.
func (d *Device) LineWidth(w float32) { d.gl.Call("lineWidth", w) }

// ClearColor sets the clear color.
func (d *Device) ClearColor(r, g, b, a float32) { d.gl.Call("clearColor", r, g, b, a) }

// Clear clears the buffers selected by mask.
func (d *Device) Clear(mask driver.ClearMask) { d.gl.Call("clear", uint32(mask)) }

// DrawArrays draws count vertices starting at first.
func (d *Device) DrawArrays(mode driver.PrimitiveMode, first, count int32) {
	d.gl.Call("drawArrays", uint32(mode), first, count)
}

// DrawArraysInstanced draws instances copies of a vertex range.
func (d *Device) DrawArraysInstanced(mode driver.PrimitiveMode, first, count, instances int32) {
	d.gl.Call("drawArraysInstanced", uint32(mode), first, count, instances)
}

// DrawElements draws count indices from the bound element array buffer.
func (d *Device) DrawElements(mode driver.PrimitiveMode, count int32, typ driver.ComponentType, offset int) {
	d.gl.Call("drawElements", uint32(mode), count, uint32(typ), offset)
}

// DrawElementsInstanced draws instances copies of an index range.
func (d *Device) DrawElementsInstanced(mode driver.PrimitiveMode, count int32, typ driver.ComponentType, offset int, instances int32) {
	d.gl.Call("drawElementsInstanced", uint32(mode), count, uint32(typ), offset, instances)
}
