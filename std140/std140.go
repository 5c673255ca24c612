// Package std140 defines fixed-layout host types for uniform block fields.
//
// Each type has a known GLSL counterpart, and interfaceblock places fields of
// these types by std140 rules regardless of how Go lays out the struct.
// Matrices are stored as arrays of columns: Mat2x3 is two columns of three
// rows, matching GLSL mat2x3.
package std140

// Bool is a GLSL bool, stored as a 32-bit integer.
type Bool uint32

// Boolean values.
const (
	False Bool = 0
	True  Bool = 1
)

// B converts a Go bool.
func B(v bool) Bool {
	if v {
		return True
	}
	return False
}

// Vector types.
type (
	Vec2 [2]float32
	Vec3 [3]float32
	Vec4 [4]float32

	IVec2 [2]int32
	IVec3 [3]int32
	IVec4 [4]int32

	UVec2 [2]uint32
	UVec3 [3]uint32
	UVec4 [4]uint32

	BVec2 [2]Bool
	BVec3 [3]Bool
	BVec4 [4]Bool
)

// Matrix types, column-major.
type (
	Mat2   [2]Vec2
	Mat2x3 [2]Vec3
	Mat2x4 [2]Vec4
	Mat3x2 [3]Vec2
	Mat3   [3]Vec3
	Mat3x4 [3]Vec4
	Mat4x2 [4]Vec2
	Mat4x3 [4]Vec3
	Mat4   [4]Vec4
)

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}
