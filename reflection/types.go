package reflection

import (
	"fmt"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/memlayout"
)

// SamplerKind is the type of a sampler uniform.
type SamplerKind uint8

// Sampler kinds.
const (
	FloatSampler2D SamplerKind = iota + 1
	FloatSampler2DArray
	FloatSampler3D
	FloatSamplerCube
	IntegerSampler2D
	IntegerSampler2DArray
	IntegerSampler3D
	IntegerSamplerCube
	UnsignedIntegerSampler2D
	UnsignedIntegerSampler2DArray
	UnsignedIntegerSampler3D
	UnsignedIntegerSamplerCube
	Sampler2DShadow
	Sampler2DArrayShadow
	SamplerCubeShadow
)

type samplerInfo struct {
	name   string
	target driver.TextureTarget
	class  driver.SampleClass
}

var samplerKinds = [...]samplerInfo{
	FloatSampler2D:                {"sampler2D", driver.Texture2D, driver.SampleFloat},
	FloatSampler2DArray:           {"sampler2DArray", driver.Texture2DArray, driver.SampleFloat},
	FloatSampler3D:                {"sampler3D", driver.Texture3D, driver.SampleFloat},
	FloatSamplerCube:              {"samplerCube", driver.TextureCubeMap, driver.SampleFloat},
	IntegerSampler2D:              {"isampler2D", driver.Texture2D, driver.SampleSint},
	IntegerSampler2DArray:         {"isampler2DArray", driver.Texture2DArray, driver.SampleSint},
	IntegerSampler3D:              {"isampler3D", driver.Texture3D, driver.SampleSint},
	IntegerSamplerCube:            {"isamplerCube", driver.TextureCubeMap, driver.SampleSint},
	UnsignedIntegerSampler2D:      {"usampler2D", driver.Texture2D, driver.SampleUint},
	UnsignedIntegerSampler2DArray: {"usampler2DArray", driver.Texture2DArray, driver.SampleUint},
	UnsignedIntegerSampler3D:      {"usampler3D", driver.Texture3D, driver.SampleUint},
	UnsignedIntegerSamplerCube:    {"usamplerCube", driver.TextureCubeMap, driver.SampleUint},
	Sampler2DShadow:               {"sampler2DShadow", driver.Texture2D, driver.SampleDepth},
	Sampler2DArrayShadow:          {"sampler2DArrayShadow", driver.Texture2DArray, driver.SampleDepth},
	SamplerCubeShadow:             {"samplerCubeShadow", driver.TextureCubeMap, driver.SampleDepth},
}

func (k SamplerKind) info() samplerInfo {
	if k == 0 || int(k) >= len(samplerKinds) {
		return samplerInfo{}
	}
	return samplerKinds[k]
}

// String returns the GLSL spelling of the sampler type.
func (k SamplerKind) String() string {
	if n := k.info().name; n != "" {
		return n
	}
	return fmt.Sprintf("SamplerKind(%d)", uint8(k))
}

// Target returns the texture target a texture must have to be sampled by k.
func (k SamplerKind) Target() driver.TextureTarget { return k.info().target }

// SampleClass returns the sample class a texture's format must have.
func (k SamplerKind) SampleClass() driver.SampleClass { return k.info().class }

// IsShadow reports whether k is a depth-comparison sampler.
func (k SamplerKind) IsShadow() bool { return k.info().class == driver.SampleDepth }

// AttributeType is the type of a vertex attribute slot.
type AttributeType uint8

// Attribute types.
const (
	AttributeFloat AttributeType = iota + 1
	AttributeFloatVector2
	AttributeFloatVector3
	AttributeFloatVector4
	AttributeFloatMatrix2x2
	AttributeFloatMatrix2x3
	AttributeFloatMatrix2x4
	AttributeFloatMatrix3x2
	AttributeFloatMatrix3x3
	AttributeFloatMatrix3x4
	AttributeFloatMatrix4x2
	AttributeFloatMatrix4x3
	AttributeFloatMatrix4x4
	AttributeInteger
	AttributeIntegerVector2
	AttributeIntegerVector3
	AttributeIntegerVector4
	AttributeUnsignedInteger
	AttributeUnsignedIntegerVector2
	AttributeUnsignedIntegerVector3
	AttributeUnsignedIntegerVector4
)

var attributeKinds = [...]memlayout.Kind{
	AttributeFloat:                  memlayout.Float,
	AttributeFloatVector2:           memlayout.FloatVector2,
	AttributeFloatVector3:           memlayout.FloatVector3,
	AttributeFloatVector4:           memlayout.FloatVector4,
	AttributeFloatMatrix2x2:         memlayout.Matrix2x2,
	AttributeFloatMatrix2x3:         memlayout.Matrix2x3,
	AttributeFloatMatrix2x4:         memlayout.Matrix2x4,
	AttributeFloatMatrix3x2:         memlayout.Matrix3x2,
	AttributeFloatMatrix3x3:         memlayout.Matrix3x3,
	AttributeFloatMatrix3x4:         memlayout.Matrix3x4,
	AttributeFloatMatrix4x2:         memlayout.Matrix4x2,
	AttributeFloatMatrix4x3:         memlayout.Matrix4x3,
	AttributeFloatMatrix4x4:         memlayout.Matrix4x4,
	AttributeInteger:                memlayout.Integer,
	AttributeIntegerVector2:         memlayout.IntegerVector2,
	AttributeIntegerVector3:         memlayout.IntegerVector3,
	AttributeIntegerVector4:         memlayout.IntegerVector4,
	AttributeUnsignedInteger:        memlayout.UnsignedInteger,
	AttributeUnsignedIntegerVector2: memlayout.UnsignedIntegerVector2,
	AttributeUnsignedIntegerVector3: memlayout.UnsignedIntegerVector3,
	AttributeUnsignedIntegerVector4: memlayout.UnsignedIntegerVector4,
}

// Kind returns the shape of the attribute as a memory unit kind.
func (t AttributeType) Kind() memlayout.Kind {
	if t == 0 || int(t) >= len(attributeKinds) {
		return 0
	}
	return attributeKinds[t]
}

// String returns the GLSL spelling of the attribute type.
func (t AttributeType) String() string {
	if k := t.Kind(); k != 0 {
		return k.String()
	}
	return fmt.Sprintf("AttributeType(%d)", uint8(t))
}

// Locations returns the number of consecutive locations the attribute
// occupies: one per column for matrices, one otherwise.
func (t AttributeType) Locations() int {
	return int(t.Kind().Columns())
}

// Driver type tables.
var (
	unitKinds = map[driver.TypeID]memlayout.Kind{
		driver.TypeFloat:           memlayout.Float,
		driver.TypeFloatVec2:       memlayout.FloatVector2,
		driver.TypeFloatVec3:       memlayout.FloatVector3,
		driver.TypeFloatVec4:       memlayout.FloatVector4,
		driver.TypeInt:             memlayout.Integer,
		driver.TypeIntVec2:         memlayout.IntegerVector2,
		driver.TypeIntVec3:         memlayout.IntegerVector3,
		driver.TypeIntVec4:         memlayout.IntegerVector4,
		driver.TypeUnsignedInt:     memlayout.UnsignedInteger,
		driver.TypeUnsignedIntVec2: memlayout.UnsignedIntegerVector2,
		driver.TypeUnsignedIntVec3: memlayout.UnsignedIntegerVector3,
		driver.TypeUnsignedIntVec4: memlayout.UnsignedIntegerVector4,
		driver.TypeBool:            memlayout.Bool,
		driver.TypeBoolVec2:        memlayout.BoolVector2,
		driver.TypeBoolVec3:        memlayout.BoolVector3,
		driver.TypeBoolVec4:        memlayout.BoolVector4,
		driver.TypeFloatMat2:       memlayout.Matrix2x2,
		driver.TypeFloatMat2x3:     memlayout.Matrix2x3,
		driver.TypeFloatMat2x4:     memlayout.Matrix2x4,
		driver.TypeFloatMat3x2:     memlayout.Matrix3x2,
		driver.TypeFloatMat3:       memlayout.Matrix3x3,
		driver.TypeFloatMat3x4:     memlayout.Matrix3x4,
		driver.TypeFloatMat4x2:     memlayout.Matrix4x2,
		driver.TypeFloatMat4x3:     memlayout.Matrix4x3,
		driver.TypeFloatMat4:       memlayout.Matrix4x4,
	}

	samplerTypes = map[driver.TypeID]SamplerKind{
		driver.TypeSampler2D:                 FloatSampler2D,
		driver.TypeSampler2DArray:            FloatSampler2DArray,
		driver.TypeSampler3D:                 FloatSampler3D,
		driver.TypeSamplerCube:               FloatSamplerCube,
		driver.TypeIntSampler2D:              IntegerSampler2D,
		driver.TypeIntSampler2DArray:         IntegerSampler2DArray,
		driver.TypeIntSampler3D:              IntegerSampler3D,
		driver.TypeIntSamplerCube:            IntegerSamplerCube,
		driver.TypeUnsignedIntSampler2D:      UnsignedIntegerSampler2D,
		driver.TypeUnsignedIntSampler2DArray: UnsignedIntegerSampler2DArray,
		driver.TypeUnsignedIntSampler3D:      UnsignedIntegerSampler3D,
		driver.TypeUnsignedIntSamplerCube:    UnsignedIntegerSamplerCube,
		driver.TypeSampler2DShadow:           Sampler2DShadow,
		driver.TypeSampler2DArrayShadow:      Sampler2DArrayShadow,
		driver.TypeSamplerCubeShadow:         SamplerCubeShadow,
	}

	attributeTypes = map[driver.TypeID]AttributeType{
		driver.TypeFloat:           AttributeFloat,
		driver.TypeFloatVec2:       AttributeFloatVector2,
		driver.TypeFloatVec3:       AttributeFloatVector3,
		driver.TypeFloatVec4:       AttributeFloatVector4,
		driver.TypeFloatMat2:       AttributeFloatMatrix2x2,
		driver.TypeFloatMat2x3:     AttributeFloatMatrix2x3,
		driver.TypeFloatMat2x4:     AttributeFloatMatrix2x4,
		driver.TypeFloatMat3x2:     AttributeFloatMatrix3x2,
		driver.TypeFloatMat3:       AttributeFloatMatrix3x3,
		driver.TypeFloatMat3x4:     AttributeFloatMatrix3x4,
		driver.TypeFloatMat4x2:     AttributeFloatMatrix4x2,
		driver.TypeFloatMat4x3:     AttributeFloatMatrix4x3,
		driver.TypeFloatMat4:       AttributeFloatMatrix4x4,
		driver.TypeInt:             AttributeInteger,
		driver.TypeIntVec2:         AttributeIntegerVector2,
		driver.TypeIntVec3:         AttributeIntegerVector3,
		driver.TypeIntVec4:         AttributeIntegerVector4,
		driver.TypeUnsignedInt:     AttributeUnsignedInteger,
		driver.TypeUnsignedIntVec2: AttributeUnsignedIntegerVector2,
		driver.TypeUnsignedIntVec3: AttributeUnsignedIntegerVector3,
		driver.TypeUnsignedIntVec4: AttributeUnsignedIntegerVector4,
	}
)

// UnitKind returns the memory unit kind of a driver type.
func UnitKind(t driver.TypeID) (memlayout.Kind, bool) {
	k, ok := unitKinds[t]
	return k, ok
}

// SamplerKindOf returns the sampler kind of a driver type.
func SamplerKindOf(t driver.TypeID) (SamplerKind, bool) {
	k, ok := samplerTypes[t]
	return k, ok
}

// AttributeTypeOf returns the attribute type of a driver type.
func AttributeTypeOf(t driver.TypeID) (AttributeType, bool) {
	a, ok := attributeTypes[t]
	return a, ok
}
