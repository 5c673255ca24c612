// Package resources declares the buffers and textures a pipeline consumes and
// encodes concrete resource values into binding descriptors.
//
// A [Layout] is built once from declarations:
//
//	layout, err := resources.NewLayout(
//		resources.BufferOf[Camera]("Camera"),
//		resources.Texture("albedo", reflection.FloatSampler2D),
//	)
//
// [ConfirmSlotBindings] checks a layout against the resource slots reflected
// from a linked program. It runs once, when a pipeline is built. Encoding a
// [Group] afterwards is a pure data transform that does not validate
// against the program again.
package resources
