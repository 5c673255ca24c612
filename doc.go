// Package glitz provides a validated pipeline and resource-binding layer over
// WebGL2.
//
// # Overview
//
// glitz turns the loosely typed WebGL2 object model into typed Go values.
// Host structs describe uniform blocks and vertex inputs; their memory
// layouts are derived once and checked against what the linked program
// reports, so a mismatch is a build error instead of garbage on screen.
// All GPU work is expressed as tasks executed on a [Context]; work that must
// wait for the GPU parks behind a fence and resumes on [Context.Poll].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glitz"
//	    "github.com/gogpu/glitz/driver/headless"
//	)
//
//	c := glitz.NewContext(headless.New(), glitz.WithDepth(true))
//	defer c.Close()
//
//	vs, _ := c.CreateVertexShader(vertexSource)
//	fs, _ := c.CreateFragmentShader(fragmentSource)
//	desc, _ := pipeline.NewDescriptorBuilder().
//	    VertexShader(vs).
//	    FragmentShader(fs).
//	    PrimitiveAssembly(pipeline.Triangles()).
//	    VertexInputLayout(layout).
//	    ResourceLayout(resourceLayout).
//	    Finish()
//	p, err := c.CreateGraphicsPipeline(desc)
//
// # Architecture
//
// The library is organized into:
//   - Memory layouts: memlayout, std140, interfaceblock
//   - Reflection and inputs: reflection, vertex, resources
//   - Pipelines: pipeline (descriptor, build state machine, cache, draws)
//   - Execution: task (deferred GPU work), state (connection and state cache)
//   - Drivers: driver (boundary), driver/headless, driver/jsgl
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog]
// logger for this package and every sub-package that logs.
package glitz

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
