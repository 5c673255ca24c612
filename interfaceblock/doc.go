// Package interfaceblock derives uniform block layouts from host types.
//
// A host struct backing a uniform block is described as a sequence of
// [memlayout.MemoryUnit] values placed by std140 rules:
//
//	type Light struct {
//		Position  std140.Vec3
//		Intensity float32
//		Transform std140.Mat4
//	}
//
//	units, err := interfaceblock.DeriveOf[Light]()
//	// 0: vec3, 12: float, 16: mat4 column-major stride=16
//
// [CheckCompatibility] compares derived units against those reflected from a
// linked program, and [Encode] produces the byte image uploaded to a uniform
// buffer.
package interfaceblock
