package memlayout

import "fmt"

// Kind is the shape of a single memory unit: a scalar, a vector or a matrix.
type Kind uint8

// Unit kinds. Matrix kinds are named by columns then rows, as in GLSL
// (Matrix2x3 is mat2x3: two columns of three rows).
const (
	Float Kind = iota + 1
	FloatVector2
	FloatVector3
	FloatVector4
	Integer
	IntegerVector2
	IntegerVector3
	IntegerVector4
	UnsignedInteger
	UnsignedIntegerVector2
	UnsignedIntegerVector3
	UnsignedIntegerVector4
	Bool
	BoolVector2
	BoolVector3
	BoolVector4
	Matrix2x2
	Matrix2x3
	Matrix2x4
	Matrix3x2
	Matrix3x3
	Matrix3x4
	Matrix4x2
	Matrix4x3
	Matrix4x4
)

// ComponentKind is the scalar type of the components of a unit.
type ComponentKind uint8

// Component kinds.
const (
	ComponentFloat ComponentKind = iota + 1
	ComponentInt
	ComponentUint
	ComponentBool
)

type kindInfo struct {
	name      string
	component ComponentKind
	columns   uint32
	rows      uint32
}

// Non-matrix kinds have a single column; rows is the vector width.
var kinds = [...]kindInfo{
	Float:                  {"float", ComponentFloat, 1, 1},
	FloatVector2:           {"vec2", ComponentFloat, 1, 2},
	FloatVector3:           {"vec3", ComponentFloat, 1, 3},
	FloatVector4:           {"vec4", ComponentFloat, 1, 4},
	Integer:                {"int", ComponentInt, 1, 1},
	IntegerVector2:         {"ivec2", ComponentInt, 1, 2},
	IntegerVector3:         {"ivec3", ComponentInt, 1, 3},
	IntegerVector4:         {"ivec4", ComponentInt, 1, 4},
	UnsignedInteger:        {"uint", ComponentUint, 1, 1},
	UnsignedIntegerVector2: {"uvec2", ComponentUint, 1, 2},
	UnsignedIntegerVector3: {"uvec3", ComponentUint, 1, 3},
	UnsignedIntegerVector4: {"uvec4", ComponentUint, 1, 4},
	Bool:                   {"bool", ComponentBool, 1, 1},
	BoolVector2:            {"bvec2", ComponentBool, 1, 2},
	BoolVector3:            {"bvec3", ComponentBool, 1, 3},
	BoolVector4:            {"bvec4", ComponentBool, 1, 4},
	Matrix2x2:              {"mat2", ComponentFloat, 2, 2},
	Matrix2x3:              {"mat2x3", ComponentFloat, 2, 3},
	Matrix2x4:              {"mat2x4", ComponentFloat, 2, 4},
	Matrix3x2:              {"mat3x2", ComponentFloat, 3, 2},
	Matrix3x3:              {"mat3", ComponentFloat, 3, 3},
	Matrix3x4:              {"mat3x4", ComponentFloat, 3, 4},
	Matrix4x2:              {"mat4x2", ComponentFloat, 4, 2},
	Matrix4x3:              {"mat4x3", ComponentFloat, 4, 3},
	Matrix4x4:              {"mat4", ComponentFloat, 4, 4},
}

func (k Kind) info() kindInfo {
	if k == 0 || int(k) >= len(kinds) {
		return kindInfo{}
	}
	return kinds[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k.info().component != 0
}

// String returns the GLSL spelling of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return k.info().name
}

// IsMatrix reports whether k is a matrix kind.
func (k Kind) IsMatrix() bool {
	return k.info().columns > 1
}

// Columns returns the number of matrix columns, 1 for scalars and vectors.
func (k Kind) Columns() uint32 {
	return k.info().columns
}

// Rows returns the number of matrix rows, or the vector width.
func (k Kind) Rows() uint32 {
	return k.info().rows
}

// Components returns the total number of scalar components.
func (k Kind) Components() uint32 {
	i := k.info()
	return i.columns * i.rows
}

// Component returns the scalar type of the kind's components.
func (k Kind) Component() ComponentKind {
	return k.info().component
}

// Vector returns the scalar or vector kind with the given component type and
// width (1 to 4). It returns 0 for invalid combinations.
func Vector(c ComponentKind, width uint32) Kind {
	if width < 1 || width > 4 {
		return 0
	}
	var base Kind
	switch c {
	case ComponentFloat:
		base = Float
	case ComponentInt:
		base = Integer
	case ComponentUint:
		base = UnsignedInteger
	case ComponentBool:
		base = Bool
	default:
		return 0
	}
	return base + Kind(width-1)
}

// MatrixKind returns the matrix kind with the given columns and rows (2 to 4).
// It returns 0 for invalid dimensions.
func MatrixKind(columns, rows uint32) Kind {
	if columns < 2 || columns > 4 || rows < 2 || rows > 4 {
		return 0
	}
	return Matrix2x2 + Kind((columns-2)*3+(rows-2))
}
