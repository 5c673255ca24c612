// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import "github.com/gogpu/gputypes"

// SampleClass is the kind of value a shader receives when sampling a texture
// of a given format.
type SampleClass uint8

// Sample classes.
const (
	SampleFloat SampleClass = iota
	SampleSint
	SampleUint
	SampleDepth
)

// FormatInfo describes how a texture format maps onto WebGL2 storage.
type FormatInfo struct {
	// Internal is the sized internal format passed to texStorage*.
	Internal uint32

	// Format is the client pixel format passed to texSubImage*.
	Format uint32

	// Type is the client component type passed to texSubImage*.
	Type uint32

	// BytesPerTexel is the size of one client texel.
	BytesPerTexel int

	// Class is the sample class a shader observes.
	Class SampleClass

	// Renderable reports whether the format can be a color or depth attachment.
	Renderable bool
}

// GL pixel formats and types used by the format table.
const (
	glRed            = 0x1903
	glRGBA           = 0x1908
	glRG             = 0x8227
	glRedInteger     = 0x8D94
	glRGBAInteger    = 0x8D99
	glDepthComponent = 0x1902
	glDepthStencil   = 0x84F9

	glUnsignedInt248 = 0x84FA
)

var formatTable = map[gputypes.TextureFormat]FormatInfo{
	gputypes.TextureFormatR8Unorm:             {Internal: 0x8229, Format: glRed, Type: uint32(ComponentUnsignedByte), BytesPerTexel: 1, Class: SampleFloat, Renderable: true},
	gputypes.TextureFormatRGBA8Unorm:          {Internal: 0x8058, Format: glRGBA, Type: uint32(ComponentUnsignedByte), BytesPerTexel: 4, Class: SampleFloat, Renderable: true},
	gputypes.TextureFormatRGBA8UnormSrgb:      {Internal: 0x8C43, Format: glRGBA, Type: uint32(ComponentUnsignedByte), BytesPerTexel: 4, Class: SampleFloat, Renderable: true},
	gputypes.TextureFormatR32Float:            {Internal: 0x822E, Format: glRed, Type: uint32(ComponentFloat), BytesPerTexel: 4, Class: SampleFloat},
	gputypes.TextureFormatRG32Float:           {Internal: 0x8230, Format: glRG, Type: uint32(ComponentFloat), BytesPerTexel: 8, Class: SampleFloat},
	gputypes.TextureFormatRGBA32Float:         {Internal: 0x8814, Format: glRGBA, Type: uint32(ComponentFloat), BytesPerTexel: 16, Class: SampleFloat},
	gputypes.TextureFormatRGBA8Uint:           {Internal: 0x8D7C, Format: glRGBAInteger, Type: uint32(ComponentUnsignedByte), BytesPerTexel: 4, Class: SampleUint, Renderable: true},
	gputypes.TextureFormatRGBA8Sint:           {Internal: 0x8D8E, Format: glRGBAInteger, Type: uint32(ComponentByte), BytesPerTexel: 4, Class: SampleSint, Renderable: true},
	gputypes.TextureFormatR32Uint:             {Internal: 0x8236, Format: glRedInteger, Type: uint32(ComponentUnsignedInt), BytesPerTexel: 4, Class: SampleUint, Renderable: true},
	gputypes.TextureFormatR32Sint:             {Internal: 0x8235, Format: glRedInteger, Type: uint32(ComponentInt), BytesPerTexel: 4, Class: SampleSint, Renderable: true},
	gputypes.TextureFormatDepth32Float:        {Internal: 0x8CAC, Format: glDepthComponent, Type: uint32(ComponentFloat), BytesPerTexel: 4, Class: SampleDepth, Renderable: true},
	gputypes.TextureFormatDepth24Plus:         {Internal: 0x81A6, Format: glDepthComponent, Type: uint32(ComponentUnsignedInt), BytesPerTexel: 4, Class: SampleDepth, Renderable: true},
	gputypes.TextureFormatDepth24PlusStencil8: {Internal: 0x88F0, Format: glDepthStencil, Type: glUnsignedInt248, BytesPerTexel: 4, Class: SampleDepth, Renderable: true},
}

// LookupFormat returns the WebGL2 storage description of a texture format.
// Formats WebGL2 cannot store return false.
func LookupFormat(f gputypes.TextureFormat) (FormatInfo, bool) {
	info, ok := formatTable[f]
	return info, ok
}
