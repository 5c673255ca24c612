// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

// Object handles
//
// These opaque IDs represent driver objects. Each Device implementation
// maintains the mapping between IDs and the actual backend objects
// (WebGLProgram, WebGLBuffer ... in the browser, in-memory records in the
// headless driver). IDs are uint64 to accommodate any backend handle scheme.

// ShaderID is an opaque handle to a compiled shader object.
type ShaderID uint64

// ProgramID is an opaque handle to a program object.
type ProgramID uint64

// BufferID is an opaque handle to a buffer object.
type BufferID uint64

// TextureID is an opaque handle to a texture object.
type TextureID uint64

// SamplerID is an opaque handle to a sampler object.
type SamplerID uint64

// FramebufferID is an opaque handle to a framebuffer object.
type FramebufferID uint64

// VertexArrayID is an opaque handle to a vertex array object.
type VertexArrayID uint64

// FenceID is an opaque handle to a fence (sync) object.
type FenceID uint64

// InvalidID is the zero value, representing an invalid/null object.
// A zero handle passed to a bind call unbinds the target.
const InvalidID = 0

// UniformLocation identifies a standalone uniform within a linked program.
// Negative values mean the uniform is not active.
type UniformLocation int32

// NoLocation is returned for uniforms that are inactive or belong to a block.
const NoLocation UniformLocation = -1

// ObjectKind identifies the type of a driver object for deferred deletion.
type ObjectKind uint8

// Object kinds.
const (
	ObjectBuffer ObjectKind = iota + 1
	ObjectFramebuffer
	ObjectProgram
	ObjectRenderbuffer
	ObjectSampler
	ObjectShader
	ObjectTexture
	ObjectVertexArray
)

// String returns the object kind name.
func (k ObjectKind) String() string {
	switch k {
	case ObjectBuffer:
		return "buffer"
	case ObjectFramebuffer:
		return "framebuffer"
	case ObjectProgram:
		return "program"
	case ObjectRenderbuffer:
		return "renderbuffer"
	case ObjectSampler:
		return "sampler"
	case ObjectShader:
		return "shader"
	case ObjectTexture:
		return "texture"
	case ObjectVertexArray:
		return "vertex-array"
	default:
		return "unknown"
	}
}
