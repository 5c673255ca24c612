// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides an in-memory driver.Device.
//
// Shader sources are WGSL. CreateShader parses, lowers and validates them
// with naga; LinkProgram pairs the vertex and fragment entry points and
// derives the reflection data a WebGL2 implementation would report: vertex
// inputs become active attributes, uniform address space globals become
// uniform blocks laid out with std140 rules, and texture globals become
// sampler uniforms.
//
// Every command is recorded and can be inspected with [Device.Calls], which
// makes the device a test double for code that diffs state. Errors that
// WebGL2 reports through getError are kept and returned by [Device.Err].
// Fences signal after a configurable number of [Device.Advance] ticks, or
// as a user supplied function decides.
package headless
