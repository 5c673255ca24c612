// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// Driver errors.
var (
	// ErrCompileFailed is returned when a shader object fails to compile.
	ErrCompileFailed = errors.New("driver: shader compilation failed")

	// ErrLinkFailed is returned when a program fails to link.
	ErrLinkFailed = errors.New("driver: program link failed")

	// ErrUnknownObject is returned when a handle does not name a live object.
	ErrUnknownObject = errors.New("driver: unknown object")

	// ErrContextLost is returned when the underlying context is no longer usable.
	ErrContextLost = errors.New("driver: context lost")
)

// AttributeInfo describes one active vertex attribute of a linked program.
type AttributeInfo struct {
	Name     string
	Type     TypeID
	Size     int
	Location int32
}

// UniformInfo describes one active uniform of a linked program, including
// uniforms that are members of a uniform block.
type UniformInfo struct {
	Name string
	Type TypeID

	// Size is the array length; 1 for non-array uniforms.
	Size int

	// BlockIndex is the index of the owning uniform block, or -1 for a
	// standalone uniform.
	BlockIndex int32

	// Offset, ArrayStride and MatrixStride are byte quantities within the
	// owning block; they are -1 for standalone uniforms.
	Offset       int32
	ArrayStride  int32
	MatrixStride int32

	RowMajor bool
}

// UniformBlockInfo describes one active uniform block.
type UniformBlockInfo struct {
	Name     string
	Index    uint32
	DataSize int32

	// ActiveUniforms lists indices into the program's active uniform list.
	ActiveUniforms []uint32
}

// Reflector queries the reflection data of a linked program.
type Reflector interface {
	// ActiveAttributes returns the program's active vertex attributes.
	ActiveAttributes(p ProgramID) ([]AttributeInfo, error)

	// ActiveUniforms returns every active uniform, block members included.
	ActiveUniforms(p ProgramID) ([]UniformInfo, error)

	// ActiveUniformBlocks returns the program's active uniform blocks.
	ActiveUniformBlocks(p ProgramID) ([]UniformBlockInfo, error)

	// UniformLocation returns the location of a standalone uniform, or
	// NoLocation if it is not active.
	UniformLocation(p ProgramID, name string) UniformLocation
}

// Lifecycle creates and deletes driver objects.
type Lifecycle interface {
	// CreateShader creates and compiles a shader object. The returned error
	// wraps ErrCompileFailed and carries the driver's info log.
	CreateShader(stage ShaderStage, source string) (ShaderID, error)
	CreateProgram() (ProgramID, error)
	AttachShader(p ProgramID, s ShaderID)

	// LinkProgram links a program. The returned error wraps ErrLinkFailed
	// and carries the driver's info log.
	LinkProgram(p ProgramID) error

	CreateBuffer() (BufferID, error)
	CreateTexture() (TextureID, error)
	CreateSampler() (SamplerID, error)
	CreateVertexArray() (VertexArrayID, error)

	// Delete releases an object. Deleting an unknown or zero handle is a no-op.
	Delete(kind ObjectKind, id uint64)
}

// SamplerParameters is the full sampling state of a sampler object.
type SamplerParameters struct {
	MinFilter Filter
	MagFilter Filter
	WrapS     Wrap
	WrapT     Wrap
	WrapR     Wrap
	MinLOD    float32
	MaxLOD    float32

	// Compare enables depth comparison (shadow samplers).
	Compare     bool
	CompareFunc CompareFunc
}

// Commands issues state changes, uploads and draws against the context.
type Commands interface {
	UseProgram(p ProgramID)
	UniformBlockBinding(p ProgramID, blockIndex, binding uint32)
	Uniform1i(loc UniformLocation, v int32)

	BindBuffer(target BufferTarget, b BufferID)
	BindBufferRange(target BufferTarget, index uint32, b BufferID, offset, size int)
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	BufferSubData(target BufferTarget, offset int, data []byte)

	ActiveTexture(unit uint32)
	BindTexture(target TextureTarget, t TextureID)
	TexStorage(target TextureTarget, levels int, format gputypes.TextureFormat, width, height, depth int)
	TexSubImage(target TextureTarget, level, x, y, z, width, height, depth int, format gputypes.TextureFormat, data []byte)
	GenerateMipmap(target TextureTarget)

	BindSampler(unit uint32, s SamplerID)
	SetSamplerParameters(s SamplerID, params SamplerParameters)

	BindVertexArray(v VertexArrayID)
	EnableVertexAttribArray(location uint32)
	DisableVertexAttribArray(location uint32)
	VertexAttribPointer(location uint32, size int, typ ComponentType, normalized bool, stride, offset int)
	VertexAttribIPointer(location uint32, size int, typ ComponentType, stride, offset int)
	VertexAttribDivisor(location, divisor uint32)

	Enable(c Capability)
	Disable(c Capability)
	CullFace(f Face)
	FrontFace(w Winding)
	DepthFunc(f CompareFunc)
	DepthMask(write bool)
	DepthRange(near, far float32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor)
	BlendEquationSeparate(rgb, alpha BlendEquation)
	BlendColor(r, g, b, a float32)
	ColorMask(r, g, b, a bool)
	Viewport(x, y, width, height int32)
	LineWidth(w float32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)

	DrawArrays(mode PrimitiveMode, first, count int32)
	DrawArraysInstanced(mode PrimitiveMode, first, count, instances int32)
	DrawElements(mode PrimitiveMode, count int32, typ ComponentType, offset int)
	DrawElementsInstanced(mode PrimitiveMode, count int32, typ ComponentType, offset int, instances int32)
}

// Fencer inserts and polls GPU fences.
//
// Fences signal strictly in insertion order.
type Fencer interface {
	// FenceSync inserts a fence after all previously issued commands.
	FenceSync() (FenceID, error)

	// IsSignaled reports whether the fence has been reached by the GPU.
	IsSignaled(f FenceID) bool

	DeleteSync(f FenceID)
}

// Limits are the implementation limits a connection sizes its caches by.
type Limits struct {
	MaxCombinedTextureUnits  int
	MaxUniformBufferBindings int
	MaxVertexAttribs         int
	MaxDrawBuffers           int
}

// DefaultLimits returns the minimum limits guaranteed by WebGL2.
func DefaultLimits() Limits {
	return Limits{
		MaxCombinedTextureUnits:  32,
		MaxUniformBufferBindings: 24,
		MaxVertexAttribs:         16,
		MaxDrawBuffers:           4,
	}
}

// Device is the complete driver capability the core consumes: reflection,
// object lifecycle, command submission and fences.
type Device interface {
	Reflector
	Lifecycle
	Commands
	Fencer

	Limits() Limits
}
