// Package vertex describes how vertex buffers feed a program's attributes.
//
// A [Layout] lists, per buffer slot, the stride, the input rate and the
// attributes (location, offset, [Format]) read from it. Layouts are built
// with a [LayoutBuilder] or derived from tagged structs with [LayoutOf]:
//
//	type Vertex struct {
//		Position [2]float32 `vertex:"0"`
//		Color    [3]uint8   `vertex:"1,float3_u8_norm"`
//	}
//
//	layout, err := vertex.LayoutOf(vertex.PerVertexOf[Vertex]())
//
// [Layout.CheckCompatibility] verifies a layout against the attribute slots
// reflected from a linked program.
package vertex
