// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import "fmt"

// TypeID is the type enumeration a driver reports for active attributes and
// uniforms (the GLenum returned by getActiveAttrib / getActiveUniform).
type TypeID uint32

// Type ids reported by WebGL2 program reflection.
const (
	TypeInt             TypeID = 0x1404
	TypeUnsignedInt     TypeID = 0x1405
	TypeFloat           TypeID = 0x1406
	TypeFloatVec2       TypeID = 0x8B50
	TypeFloatVec3       TypeID = 0x8B51
	TypeFloatVec4       TypeID = 0x8B52
	TypeIntVec2         TypeID = 0x8B53
	TypeIntVec3         TypeID = 0x8B54
	TypeIntVec4         TypeID = 0x8B55
	TypeBool            TypeID = 0x8B56
	TypeBoolVec2        TypeID = 0x8B57
	TypeBoolVec3        TypeID = 0x8B58
	TypeBoolVec4        TypeID = 0x8B59
	TypeFloatMat2       TypeID = 0x8B5A
	TypeFloatMat3       TypeID = 0x8B5B
	TypeFloatMat4       TypeID = 0x8B5C
	TypeSampler2D       TypeID = 0x8B5E
	TypeSampler3D       TypeID = 0x8B5F
	TypeSamplerCube     TypeID = 0x8B60
	TypeSampler2DShadow TypeID = 0x8B62
	TypeFloatMat2x3     TypeID = 0x8B65
	TypeFloatMat2x4     TypeID = 0x8B66
	TypeFloatMat3x2     TypeID = 0x8B67
	TypeFloatMat3x4     TypeID = 0x8B68
	TypeFloatMat4x2     TypeID = 0x8B69
	TypeFloatMat4x3     TypeID = 0x8B6A

	TypeSampler2DArray            TypeID = 0x8DC1
	TypeSampler2DArrayShadow      TypeID = 0x8DC4
	TypeSamplerCubeShadow         TypeID = 0x8DC5
	TypeUnsignedIntVec2           TypeID = 0x8DC6
	TypeUnsignedIntVec3           TypeID = 0x8DC7
	TypeUnsignedIntVec4           TypeID = 0x8DC8
	TypeIntSampler2D              TypeID = 0x8DCA
	TypeIntSampler3D              TypeID = 0x8DCB
	TypeIntSamplerCube            TypeID = 0x8DCC
	TypeIntSampler2DArray         TypeID = 0x8DCF
	TypeUnsignedIntSampler2D      TypeID = 0x8DD2
	TypeUnsignedIntSampler3D      TypeID = 0x8DD3
	TypeUnsignedIntSamplerCube    TypeID = 0x8DD4
	TypeUnsignedIntSampler2DArray TypeID = 0x8DD7
)

// String returns the GLSL spelling of the type.
func (t TypeID) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TypeID(%#x)", uint32(t))
}

var typeNames = map[TypeID]string{
	TypeInt:                       "int",
	TypeUnsignedInt:               "uint",
	TypeFloat:                     "float",
	TypeFloatVec2:                 "vec2",
	TypeFloatVec3:                 "vec3",
	TypeFloatVec4:                 "vec4",
	TypeIntVec2:                   "ivec2",
	TypeIntVec3:                   "ivec3",
	TypeIntVec4:                   "ivec4",
	TypeBool:                      "bool",
	TypeBoolVec2:                  "bvec2",
	TypeBoolVec3:                  "bvec3",
	TypeBoolVec4:                  "bvec4",
	TypeFloatMat2:                 "mat2",
	TypeFloatMat3:                 "mat3",
	TypeFloatMat4:                 "mat4",
	TypeSampler2D:                 "sampler2D",
	TypeSampler3D:                 "sampler3D",
	TypeSamplerCube:               "samplerCube",
	TypeSampler2DShadow:           "sampler2DShadow",
	TypeFloatMat2x3:               "mat2x3",
	TypeFloatMat2x4:               "mat2x4",
	TypeFloatMat3x2:               "mat3x2",
	TypeFloatMat3x4:               "mat3x4",
	TypeFloatMat4x2:               "mat4x2",
	TypeFloatMat4x3:               "mat4x3",
	TypeSampler2DArray:            "sampler2DArray",
	TypeSampler2DArrayShadow:      "sampler2DArrayShadow",
	TypeSamplerCubeShadow:         "samplerCubeShadow",
	TypeUnsignedIntVec2:           "uvec2",
	TypeUnsignedIntVec3:           "uvec3",
	TypeUnsignedIntVec4:           "uvec4",
	TypeIntSampler2D:              "isampler2D",
	TypeIntSampler3D:              "isampler3D",
	TypeIntSamplerCube:            "isamplerCube",
	TypeIntSampler2DArray:         "isampler2DArray",
	TypeUnsignedIntSampler2D:      "usampler2D",
	TypeUnsignedIntSampler3D:      "usampler3D",
	TypeUnsignedIntSamplerCube:    "usamplerCube",
	TypeUnsignedIntSampler2DArray: "usampler2DArray",
}

// ShaderStage identifies the programmable stage a shader object belongs to.
type ShaderStage uint8

// Shader stages available in WebGL2.
const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Capability is a server-side capability toggled with enable/disable.
type Capability uint32

// Capabilities.
const (
	CapCullFace              Capability = 0x0B44
	CapDepthTest             Capability = 0x0B71
	CapStencilTest           Capability = 0x0B90
	CapDither                Capability = 0x0BD0
	CapBlend                 Capability = 0x0BE2
	CapScissorTest           Capability = 0x0C11
	CapPolygonOffsetFill     Capability = 0x8037
	CapSampleAlphaToCoverage Capability = 0x809E
	CapSampleCoverage        Capability = 0x80A0
	CapRasterizerDiscard     Capability = 0x8C89
)

// Face selects front and/or back facing polygons.
type Face uint32

// Faces.
const (
	FaceFront        Face = 0x0404
	FaceBack         Face = 0x0405
	FaceFrontAndBack Face = 0x0408
)

// Winding is the vertex winding order that defines a front face.
type Winding uint32

// Windings.
const (
	WindingCW  Winding = 0x0900
	WindingCCW Winding = 0x0901
)

// CompareFunc is a depth, stencil or sampler comparison function.
type CompareFunc uint32

// Comparison functions.
const (
	CompareNever        CompareFunc = 0x0200
	CompareLess         CompareFunc = 0x0201
	CompareEqual        CompareFunc = 0x0202
	CompareLessEqual    CompareFunc = 0x0203
	CompareGreater      CompareFunc = 0x0204
	CompareNotEqual     CompareFunc = 0x0205
	CompareGreaterEqual CompareFunc = 0x0206
	CompareAlways       CompareFunc = 0x0207
)

// BlendFactor is a source or destination blend factor.
type BlendFactor uint32

// Blend factors.
const (
	BlendZero                  BlendFactor = 0
	BlendOne                   BlendFactor = 1
	BlendSrcColor              BlendFactor = 0x0300
	BlendOneMinusSrcColor      BlendFactor = 0x0301
	BlendSrcAlpha              BlendFactor = 0x0302
	BlendOneMinusSrcAlpha      BlendFactor = 0x0303
	BlendDstAlpha              BlendFactor = 0x0304
	BlendOneMinusDstAlpha      BlendFactor = 0x0305
	BlendDstColor              BlendFactor = 0x0306
	BlendOneMinusDstColor      BlendFactor = 0x0307
	BlendSrcAlphaSaturate      BlendFactor = 0x0308
	BlendConstantColor         BlendFactor = 0x8001
	BlendOneMinusConstantColor BlendFactor = 0x8002
)

// BlendEquation combines source and destination blend terms.
type BlendEquation uint32

// Blend equations.
const (
	EquationAdd             BlendEquation = 0x8006
	EquationMin             BlendEquation = 0x8007
	EquationMax             BlendEquation = 0x8008
	EquationSubtract        BlendEquation = 0x800A
	EquationReverseSubtract BlendEquation = 0x800B
)

// PrimitiveMode is the primitive assembly mode of a draw call.
type PrimitiveMode uint32

// Primitive modes.
const (
	ModePoints        PrimitiveMode = 0
	ModeLines         PrimitiveMode = 1
	ModeLineLoop      PrimitiveMode = 2
	ModeLineStrip     PrimitiveMode = 3
	ModeTriangles     PrimitiveMode = 4
	ModeTriangleStrip PrimitiveMode = 5
	ModeTriangleFan   PrimitiveMode = 6
)

// BufferTarget is a buffer binding point.
type BufferTarget uint32

// Buffer targets.
const (
	TargetArrayBuffer        BufferTarget = 0x8892
	TargetElementArrayBuffer BufferTarget = 0x8893
	TargetUniformBuffer      BufferTarget = 0x8A11
	TargetCopyReadBuffer     BufferTarget = 0x8F36
	TargetCopyWriteBuffer    BufferTarget = 0x8F37
)

// BufferUsage is the usage hint of a buffer's data store.
type BufferUsage uint32

// Buffer usage hints.
const (
	UsageStreamDraw  BufferUsage = 0x88E0
	UsageStaticDraw  BufferUsage = 0x88E4
	UsageDynamicDraw BufferUsage = 0x88E8
)

// TextureTarget is a texture binding point.
type TextureTarget uint32

// Texture targets.
const (
	Texture2D      TextureTarget = 0x0DE1
	Texture3D      TextureTarget = 0x806F
	TextureCubeMap TextureTarget = 0x8513
	Texture2DArray TextureTarget = 0x8C1A
)

// String returns the target name.
func (t TextureTarget) String() string {
	switch t {
	case Texture2D:
		return "texture-2d"
	case Texture3D:
		return "texture-3d"
	case TextureCubeMap:
		return "texture-cube"
	case Texture2DArray:
		return "texture-2d-array"
	default:
		return fmt.Sprintf("TextureTarget(%#x)", uint32(t))
	}
}

// ComponentType is the data type of vertex attribute components and indices.
type ComponentType uint32

// Component types.
const (
	ComponentByte          ComponentType = 0x1400
	ComponentUnsignedByte  ComponentType = 0x1401
	ComponentShort         ComponentType = 0x1402
	ComponentUnsignedShort ComponentType = 0x1403
	ComponentInt           ComponentType = 0x1404
	ComponentUnsignedInt   ComponentType = 0x1405
	ComponentFloat         ComponentType = 0x1406
)

// Filter is a texture minification or magnification filter.
type Filter uint32

// Filters.
const (
	FilterNearest              Filter = 0x2600
	FilterLinear               Filter = 0x2601
	FilterNearestMipmapNearest Filter = 0x2700
	FilterLinearMipmapNearest  Filter = 0x2701
	FilterNearestMipmapLinear  Filter = 0x2702
	FilterLinearMipmapLinear   Filter = 0x2703
)

// Wrap is a texture coordinate wrapping mode.
type Wrap uint32

// Wrap modes.
const (
	WrapRepeat         Wrap = 0x2901
	WrapClampToEdge    Wrap = 0x812F
	WrapMirroredRepeat Wrap = 0x8370
)

// ClearMask selects the buffers cleared by Clear.
type ClearMask uint32

// Clear mask bits.
const (
	ClearDepth   ClearMask = 0x00000100
	ClearStencil ClearMask = 0x00000400
	ClearColor   ClearMask = 0x00004000
)
