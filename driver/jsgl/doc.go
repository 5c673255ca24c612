// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package jsgl implements driver.Device over a browser WebGL2RenderingContext.
//
// Shader sources starting with a #version directive are passed to WebGL
// unchanged. Any other source is treated as WGSL and translated to GLSL ES
// 3.00 with naga before compilation. Names reported by program reflection are
// those of the GLSL program, so resource layouts must use the GLSL names.
//
// The package logs through glitz.Logger.
package jsgl
