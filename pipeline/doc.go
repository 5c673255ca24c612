// Package pipeline builds and validates graphics pipelines and encodes draws
// against them.
//
// A [Descriptor] is assembled with a [DescriptorBuilder]; vertex shader,
// fragment shader and primitive assembly are required. A [Machine] turns a
// descriptor into a [Pipeline] by walking the stages
//
//	Unbuilt -> ShadersAttached -> Linked -> ReflectionComplete -> Validated
//
// in order. Any failure moves the machine to [StageFailed], deletes the
// program it created and is reported as a [*BuildError]. Validation checks
// the vertex input layout against the program's attributes and the resource
// layout against its uniform blocks and samplers; once a pipeline exists,
// binding resources to it only checks that the group was built for the
// same resource layout.
package pipeline
