// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the boundary between glitz and a WebGL2 implementation.
//
// The core never talks to a graphics API directly. It consumes a [Device],
// which bundles four capabilities:
//   - [Reflector]: active attributes, uniforms and uniform blocks of a linked program
//   - [Lifecycle]: creation and deletion of shader, program, buffer, texture,
//     sampler and vertex array objects
//   - [Commands]: state changes, uploads and draw calls
//   - [Fencer]: GPU fences used to suspend and resume deferred work
//
// Objects are referred to by opaque IDs ([ProgramID], [BufferID] ...). Each
// implementation maps IDs to its backend objects.
//
// # Implementations
//
//   - driver/headless: in-memory device for tests and tooling. Shader sources
//     are WGSL, compiled with naga and reflected from its IR.
//   - driver/jsgl: WebGL2RenderingContext through syscall/js (js/wasm only).
//
// Enumerations in this package carry their WebGL2 numeric values so that the
// browser driver can pass them through unchanged.
package driver
