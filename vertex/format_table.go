package vertex

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/memlayout"
)

// Attribute formats.
//
// Float formats are read as floating point by the shader. The Fixed
// variants convert integer data to float unchanged; the Norm variants map
// it to [0, 1] (unsigned) or [-1, 1] (signed). Matrix formats occupy one
// location per column, columns packed back to back. Integer formats are
// read as integers.
const (
	FormatFloatF32 Format = iota + 1
	FormatFloatI8Fixed
	FormatFloatI8Norm
	FormatFloatI16Fixed
	FormatFloatI16Norm
	FormatFloatU8Fixed
	FormatFloatU8Norm
	FormatFloatU16Fixed
	FormatFloatU16Norm
	FormatFloat2F32
	FormatFloat2I8Fixed
	FormatFloat2I8Norm
	FormatFloat2I16Fixed
	FormatFloat2I16Norm
	FormatFloat2U8Fixed
	FormatFloat2U8Norm
	FormatFloat2U16Fixed
	FormatFloat2U16Norm
	FormatFloat3F32
	FormatFloat3I8Fixed
	FormatFloat3I8Norm
	FormatFloat3I16Fixed
	FormatFloat3I16Norm
	FormatFloat3U8Fixed
	FormatFloat3U8Norm
	FormatFloat3U16Fixed
	FormatFloat3U16Norm
	FormatFloat4F32
	FormatFloat4I8Fixed
	FormatFloat4I8Norm
	FormatFloat4I16Fixed
	FormatFloat4I16Norm
	FormatFloat4U8Fixed
	FormatFloat4U8Norm
	FormatFloat4U16Fixed
	FormatFloat4U16Norm
	FormatFloat2x2F32
	FormatFloat2x2I8Fixed
	FormatFloat2x2I8Norm
	FormatFloat2x2I16Fixed
	FormatFloat2x2I16Norm
	FormatFloat2x2U8Fixed
	FormatFloat2x2U8Norm
	FormatFloat2x2U16Fixed
	FormatFloat2x2U16Norm
	FormatFloat2x3F32
	FormatFloat2x3I8Fixed
	FormatFloat2x3I8Norm
	FormatFloat2x3I16Fixed
	FormatFloat2x3I16Norm
	FormatFloat2x3U8Fixed
	FormatFloat2x3U8Norm
	FormatFloat2x3U16Fixed
	FormatFloat2x3U16Norm
	FormatFloat2x4F32
	FormatFloat2x4I8Fixed
	FormatFloat2x4I8Norm
	FormatFloat2x4I16Fixed
	FormatFloat2x4I16Norm
	FormatFloat2x4U8Fixed
	FormatFloat2x4U8Norm
	FormatFloat2x4U16Fixed
	FormatFloat2x4U16Norm
	FormatFloat3x2F32
	FormatFloat3x2I8Fixed
	FormatFloat3x2I8Norm
	FormatFloat3x2I16Fixed
	FormatFloat3x2I16Norm
	FormatFloat3x2U8Fixed
	FormatFloat3x2U8Norm
	FormatFloat3x2U16Fixed
	FormatFloat3x2U16Norm
	FormatFloat3x3F32
	FormatFloat3x3I8Fixed
	FormatFloat3x3I8Norm
	FormatFloat3x3I16Fixed
	FormatFloat3x3I16Norm
	FormatFloat3x3U8Fixed
	FormatFloat3x3U8Norm
	FormatFloat3x3U16Fixed
	FormatFloat3x3U16Norm
	FormatFloat3x4F32
	FormatFloat3x4I8Fixed
	FormatFloat3x4I8Norm
	FormatFloat3x4I16Fixed
	FormatFloat3x4I16Norm
	FormatFloat3x4U8Fixed
	FormatFloat3x4U8Norm
	FormatFloat3x4U16Fixed
	FormatFloat3x4U16Norm
	FormatFloat4x2F32
	FormatFloat4x2I8Fixed
	FormatFloat4x2I8Norm
	FormatFloat4x2I16Fixed
	FormatFloat4x2I16Norm
	FormatFloat4x2U8Fixed
	FormatFloat4x2U8Norm
	FormatFloat4x2U16Fixed
	FormatFloat4x2U16Norm
	FormatFloat4x3F32
	FormatFloat4x3I8Fixed
	FormatFloat4x3I8Norm
	FormatFloat4x3I16Fixed
	FormatFloat4x3I16Norm
	FormatFloat4x3U8Fixed
	FormatFloat4x3U8Norm
	FormatFloat4x3U16Fixed
	FormatFloat4x3U16Norm
	FormatFloat4x4F32
	FormatFloat4x4I8Fixed
	FormatFloat4x4I8Norm
	FormatFloat4x4I16Fixed
	FormatFloat4x4I16Norm
	FormatFloat4x4U8Fixed
	FormatFloat4x4U8Norm
	FormatFloat4x4U16Fixed
	FormatFloat4x4U16Norm
	FormatIntegerI8
	FormatIntegerU8
	FormatIntegerI16
	FormatIntegerU16
	FormatIntegerI32
	FormatIntegerU32
	FormatInteger2I8
	FormatInteger2U8
	FormatInteger2I16
	FormatInteger2U16
	FormatInteger2I32
	FormatInteger2U32
	FormatInteger3I8
	FormatInteger3U8
	FormatInteger3I16
	FormatInteger3U16
	FormatInteger3I32
	FormatInteger3U32
	FormatInteger4I8
	FormatInteger4U8
	FormatInteger4I16
	FormatInteger4U16
	FormatInteger4I32
	FormatInteger4U32
)

var formats = [...]formatInfo{
	FormatFloatF32:         {"float_f32", memlayout.Float, driver.ComponentFloat, 4, false, false},
	FormatFloatI8Fixed:     {"float_i8_fixed", memlayout.Float, driver.ComponentByte, 1, false, false},
	FormatFloatI8Norm:      {"float_i8_norm", memlayout.Float, driver.ComponentByte, 1, true, false},
	FormatFloatI16Fixed:    {"float_i16_fixed", memlayout.Float, driver.ComponentShort, 2, false, false},
	FormatFloatI16Norm:     {"float_i16_norm", memlayout.Float, driver.ComponentShort, 2, true, false},
	FormatFloatU8Fixed:     {"float_u8_fixed", memlayout.Float, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloatU8Norm:      {"float_u8_norm", memlayout.Float, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloatU16Fixed:    {"float_u16_fixed", memlayout.Float, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloatU16Norm:     {"float_u16_norm", memlayout.Float, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat2F32:        {"float2_f32", memlayout.FloatVector2, driver.ComponentFloat, 4, false, false},
	FormatFloat2I8Fixed:    {"float2_i8_fixed", memlayout.FloatVector2, driver.ComponentByte, 1, false, false},
	FormatFloat2I8Norm:     {"float2_i8_norm", memlayout.FloatVector2, driver.ComponentByte, 1, true, false},
	FormatFloat2I16Fixed:   {"float2_i16_fixed", memlayout.FloatVector2, driver.ComponentShort, 2, false, false},
	FormatFloat2I16Norm:    {"float2_i16_norm", memlayout.FloatVector2, driver.ComponentShort, 2, true, false},
	FormatFloat2U8Fixed:    {"float2_u8_fixed", memlayout.FloatVector2, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat2U8Norm:     {"float2_u8_norm", memlayout.FloatVector2, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat2U16Fixed:   {"float2_u16_fixed", memlayout.FloatVector2, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat2U16Norm:    {"float2_u16_norm", memlayout.FloatVector2, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat3F32:        {"float3_f32", memlayout.FloatVector3, driver.ComponentFloat, 4, false, false},
	FormatFloat3I8Fixed:    {"float3_i8_fixed", memlayout.FloatVector3, driver.ComponentByte, 1, false, false},
	FormatFloat3I8Norm:     {"float3_i8_norm", memlayout.FloatVector3, driver.ComponentByte, 1, true, false},
	FormatFloat3I16Fixed:   {"float3_i16_fixed", memlayout.FloatVector3, driver.ComponentShort, 2, false, false},
	FormatFloat3I16Norm:    {"float3_i16_norm", memlayout.FloatVector3, driver.ComponentShort, 2, true, false},
	FormatFloat3U8Fixed:    {"float3_u8_fixed", memlayout.FloatVector3, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat3U8Norm:     {"float3_u8_norm", memlayout.FloatVector3, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat3U16Fixed:   {"float3_u16_fixed", memlayout.FloatVector3, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat3U16Norm:    {"float3_u16_norm", memlayout.FloatVector3, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat4F32:        {"float4_f32", memlayout.FloatVector4, driver.ComponentFloat, 4, false, false},
	FormatFloat4I8Fixed:    {"float4_i8_fixed", memlayout.FloatVector4, driver.ComponentByte, 1, false, false},
	FormatFloat4I8Norm:     {"float4_i8_norm", memlayout.FloatVector4, driver.ComponentByte, 1, true, false},
	FormatFloat4I16Fixed:   {"float4_i16_fixed", memlayout.FloatVector4, driver.ComponentShort, 2, false, false},
	FormatFloat4I16Norm:    {"float4_i16_norm", memlayout.FloatVector4, driver.ComponentShort, 2, true, false},
	FormatFloat4U8Fixed:    {"float4_u8_fixed", memlayout.FloatVector4, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat4U8Norm:     {"float4_u8_norm", memlayout.FloatVector4, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat4U16Fixed:   {"float4_u16_fixed", memlayout.FloatVector4, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat4U16Norm:    {"float4_u16_norm", memlayout.FloatVector4, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat2x2F32:      {"float2x2_f32", memlayout.Matrix2x2, driver.ComponentFloat, 4, false, false},
	FormatFloat2x2I8Fixed:  {"float2x2_i8_fixed", memlayout.Matrix2x2, driver.ComponentByte, 1, false, false},
	FormatFloat2x2I8Norm:   {"float2x2_i8_norm", memlayout.Matrix2x2, driver.ComponentByte, 1, true, false},
	FormatFloat2x2I16Fixed: {"float2x2_i16_fixed", memlayout.Matrix2x2, driver.ComponentShort, 2, false, false},
	FormatFloat2x2I16Norm:  {"float2x2_i16_norm", memlayout.Matrix2x2, driver.ComponentShort, 2, true, false},
	FormatFloat2x2U8Fixed:  {"float2x2_u8_fixed", memlayout.Matrix2x2, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat2x2U8Norm:   {"float2x2_u8_norm", memlayout.Matrix2x2, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat2x2U16Fixed: {"float2x2_u16_fixed", memlayout.Matrix2x2, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat2x2U16Norm:  {"float2x2_u16_norm", memlayout.Matrix2x2, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat2x3F32:      {"float2x3_f32", memlayout.Matrix2x3, driver.ComponentFloat, 4, false, false},
	FormatFloat2x3I8Fixed:  {"float2x3_i8_fixed", memlayout.Matrix2x3, driver.ComponentByte, 1, false, false},
	FormatFloat2x3I8Norm:   {"float2x3_i8_norm", memlayout.Matrix2x3, driver.ComponentByte, 1, true, false},
	FormatFloat2x3I16Fixed: {"float2x3_i16_fixed", memlayout.Matrix2x3, driver.ComponentShort, 2, false, false},
	FormatFloat2x3I16Norm:  {"float2x3_i16_norm", memlayout.Matrix2x3, driver.ComponentShort, 2, true, false},
	FormatFloat2x3U8Fixed:  {"float2x3_u8_fixed", memlayout.Matrix2x3, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat2x3U8Norm:   {"float2x3_u8_norm", memlayout.Matrix2x3, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat2x3U16Fixed: {"float2x3_u16_fixed", memlayout.Matrix2x3, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat2x3U16Norm:  {"float2x3_u16_norm", memlayout.Matrix2x3, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat2x4F32:      {"float2x4_f32", memlayout.Matrix2x4, driver.ComponentFloat, 4, false, false},
	FormatFloat2x4I8Fixed:  {"float2x4_i8_fixed", memlayout.Matrix2x4, driver.ComponentByte, 1, false, false},
	FormatFloat2x4I8Norm:   {"float2x4_i8_norm", memlayout.Matrix2x4, driver.ComponentByte, 1, true, false},
	FormatFloat2x4I16Fixed: {"float2x4_i16_fixed", memlayout.Matrix2x4, driver.ComponentShort, 2, false, false},
	FormatFloat2x4I16Norm:  {"float2x4_i16_norm", memlayout.Matrix2x4, driver.ComponentShort, 2, true, false},
	FormatFloat2x4U8Fixed:  {"float2x4_u8_fixed", memlayout.Matrix2x4, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat2x4U8Norm:   {"float2x4_u8_norm", memlayout.Matrix2x4, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat2x4U16Fixed: {"float2x4_u16_fixed", memlayout.Matrix2x4, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat2x4U16Norm:  {"float2x4_u16_norm", memlayout.Matrix2x4, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat3x2F32:      {"float3x2_f32", memlayout.Matrix3x2, driver.ComponentFloat, 4, false, false},
	FormatFloat3x2I8Fixed:  {"float3x2_i8_fixed", memlayout.Matrix3x2, driver.ComponentByte, 1, false, false},
	FormatFloat3x2I8Norm:   {"float3x2_i8_norm", memlayout.Matrix3x2, driver.ComponentByte, 1, true, false},
	FormatFloat3x2I16Fixed: {"float3x2_i16_fixed", memlayout.Matrix3x2, driver.ComponentShort, 2, false, false},
	FormatFloat3x2I16Norm:  {"float3x2_i16_norm", memlayout.Matrix3x2, driver.ComponentShort, 2, true, false},
	FormatFloat3x2U8Fixed:  {"float3x2_u8_fixed", memlayout.Matrix3x2, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat3x2U8Norm:   {"float3x2_u8_norm", memlayout.Matrix3x2, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat3x2U16Fixed: {"float3x2_u16_fixed", memlayout.Matrix3x2, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat3x2U16Norm:  {"float3x2_u16_norm", memlayout.Matrix3x2, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat3x3F32:      {"float3x3_f32", memlayout.Matrix3x3, driver.ComponentFloat, 4, false, false},
	FormatFloat3x3I8Fixed:  {"float3x3_i8_fixed", memlayout.Matrix3x3, driver.ComponentByte, 1, false, false},
	FormatFloat3x3I8Norm:   {"float3x3_i8_norm", memlayout.Matrix3x3, driver.ComponentByte, 1, true, false},
	FormatFloat3x3I16Fixed: {"float3x3_i16_fixed", memlayout.Matrix3x3, driver.ComponentShort, 2, false, false},
	FormatFloat3x3I16Norm:  {"float3x3_i16_norm", memlayout.Matrix3x3, driver.ComponentShort, 2, true, false},
	FormatFloat3x3U8Fixed:  {"float3x3_u8_fixed", memlayout.Matrix3x3, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat3x3U8Norm:   {"float3x3_u8_norm", memlayout.Matrix3x3, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat3x3U16Fixed: {"float3x3_u16_fixed", memlayout.Matrix3x3, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat3x3U16Norm:  {"float3x3_u16_norm", memlayout.Matrix3x3, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat3x4F32:      {"float3x4_f32", memlayout.Matrix3x4, driver.ComponentFloat, 4, false, false},
	FormatFloat3x4I8Fixed:  {"float3x4_i8_fixed", memlayout.Matrix3x4, driver.ComponentByte, 1, false, false},
	FormatFloat3x4I8Norm:   {"float3x4_i8_norm", memlayout.Matrix3x4, driver.ComponentByte, 1, true, false},
	FormatFloat3x4I16Fixed: {"float3x4_i16_fixed", memlayout.Matrix3x4, driver.ComponentShort, 2, false, false},
	FormatFloat3x4I16Norm:  {"float3x4_i16_norm", memlayout.Matrix3x4, driver.ComponentShort, 2, true, false},
	FormatFloat3x4U8Fixed:  {"float3x4_u8_fixed", memlayout.Matrix3x4, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat3x4U8Norm:   {"float3x4_u8_norm", memlayout.Matrix3x4, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat3x4U16Fixed: {"float3x4_u16_fixed", memlayout.Matrix3x4, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat3x4U16Norm:  {"float3x4_u16_norm", memlayout.Matrix3x4, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat4x2F32:      {"float4x2_f32", memlayout.Matrix4x2, driver.ComponentFloat, 4, false, false},
	FormatFloat4x2I8Fixed:  {"float4x2_i8_fixed", memlayout.Matrix4x2, driver.ComponentByte, 1, false, false},
	FormatFloat4x2I8Norm:   {"float4x2_i8_norm", memlayout.Matrix4x2, driver.ComponentByte, 1, true, false},
	FormatFloat4x2I16Fixed: {"float4x2_i16_fixed", memlayout.Matrix4x2, driver.ComponentShort, 2, false, false},
	FormatFloat4x2I16Norm:  {"float4x2_i16_norm", memlayout.Matrix4x2, driver.ComponentShort, 2, true, false},
	FormatFloat4x2U8Fixed:  {"float4x2_u8_fixed", memlayout.Matrix4x2, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat4x2U8Norm:   {"float4x2_u8_norm", memlayout.Matrix4x2, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat4x2U16Fixed: {"float4x2_u16_fixed", memlayout.Matrix4x2, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat4x2U16Norm:  {"float4x2_u16_norm", memlayout.Matrix4x2, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat4x3F32:      {"float4x3_f32", memlayout.Matrix4x3, driver.ComponentFloat, 4, false, false},
	FormatFloat4x3I8Fixed:  {"float4x3_i8_fixed", memlayout.Matrix4x3, driver.ComponentByte, 1, false, false},
	FormatFloat4x3I8Norm:   {"float4x3_i8_norm", memlayout.Matrix4x3, driver.ComponentByte, 1, true, false},
	FormatFloat4x3I16Fixed: {"float4x3_i16_fixed", memlayout.Matrix4x3, driver.ComponentShort, 2, false, false},
	FormatFloat4x3I16Norm:  {"float4x3_i16_norm", memlayout.Matrix4x3, driver.ComponentShort, 2, true, false},
	FormatFloat4x3U8Fixed:  {"float4x3_u8_fixed", memlayout.Matrix4x3, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat4x3U8Norm:   {"float4x3_u8_norm", memlayout.Matrix4x3, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat4x3U16Fixed: {"float4x3_u16_fixed", memlayout.Matrix4x3, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat4x3U16Norm:  {"float4x3_u16_norm", memlayout.Matrix4x3, driver.ComponentUnsignedShort, 2, true, false},
	FormatFloat4x4F32:      {"float4x4_f32", memlayout.Matrix4x4, driver.ComponentFloat, 4, false, false},
	FormatFloat4x4I8Fixed:  {"float4x4_i8_fixed", memlayout.Matrix4x4, driver.ComponentByte, 1, false, false},
	FormatFloat4x4I8Norm:   {"float4x4_i8_norm", memlayout.Matrix4x4, driver.ComponentByte, 1, true, false},
	FormatFloat4x4I16Fixed: {"float4x4_i16_fixed", memlayout.Matrix4x4, driver.ComponentShort, 2, false, false},
	FormatFloat4x4I16Norm:  {"float4x4_i16_norm", memlayout.Matrix4x4, driver.ComponentShort, 2, true, false},
	FormatFloat4x4U8Fixed:  {"float4x4_u8_fixed", memlayout.Matrix4x4, driver.ComponentUnsignedByte, 1, false, false},
	FormatFloat4x4U8Norm:   {"float4x4_u8_norm", memlayout.Matrix4x4, driver.ComponentUnsignedByte, 1, true, false},
	FormatFloat4x4U16Fixed: {"float4x4_u16_fixed", memlayout.Matrix4x4, driver.ComponentUnsignedShort, 2, false, false},
	FormatFloat4x4U16Norm:  {"float4x4_u16_norm", memlayout.Matrix4x4, driver.ComponentUnsignedShort, 2, true, false},
	FormatIntegerI8:        {"integer_i8", memlayout.Integer, driver.ComponentByte, 1, false, true},
	FormatIntegerU8:        {"integer_u8", memlayout.UnsignedInteger, driver.ComponentUnsignedByte, 1, false, true},
	FormatIntegerI16:       {"integer_i16", memlayout.Integer, driver.ComponentShort, 2, false, true},
	FormatIntegerU16:       {"integer_u16", memlayout.UnsignedInteger, driver.ComponentUnsignedShort, 2, false, true},
	FormatIntegerI32:       {"integer_i32", memlayout.Integer, driver.ComponentInt, 4, false, true},
	FormatIntegerU32:       {"integer_u32", memlayout.UnsignedInteger, driver.ComponentUnsignedInt, 4, false, true},
	FormatInteger2I8:       {"integer2_i8", memlayout.IntegerVector2, driver.ComponentByte, 1, false, true},
	FormatInteger2U8:       {"integer2_u8", memlayout.UnsignedIntegerVector2, driver.ComponentUnsignedByte, 1, false, true},
	FormatInteger2I16:      {"integer2_i16", memlayout.IntegerVector2, driver.ComponentShort, 2, false, true},
	FormatInteger2U16:      {"integer2_u16", memlayout.UnsignedIntegerVector2, driver.ComponentUnsignedShort, 2, false, true},
	FormatInteger2I32:      {"integer2_i32", memlayout.IntegerVector2, driver.ComponentInt, 4, false, true},
	FormatInteger2U32:      {"integer2_u32", memlayout.UnsignedIntegerVector2, driver.ComponentUnsignedInt, 4, false, true},
	FormatInteger3I8:       {"integer3_i8", memlayout.IntegerVector3, driver.ComponentByte, 1, false, true},
	FormatInteger3U8:       {"integer3_u8", memlayout.UnsignedIntegerVector3, driver.ComponentUnsignedByte, 1, false, true},
	FormatInteger3I16:      {"integer3_i16", memlayout.IntegerVector3, driver.ComponentShort, 2, false, true},
	FormatInteger3U16:      {"integer3_u16", memlayout.UnsignedIntegerVector3, driver.ComponentUnsignedShort, 2, false, true},
	FormatInteger3I32:      {"integer3_i32", memlayout.IntegerVector3, driver.ComponentInt, 4, false, true},
	FormatInteger3U32:      {"integer3_u32", memlayout.UnsignedIntegerVector3, driver.ComponentUnsignedInt, 4, false, true},
	FormatInteger4I8:       {"integer4_i8", memlayout.IntegerVector4, driver.ComponentByte, 1, false, true},
	FormatInteger4U8:       {"integer4_u8", memlayout.UnsignedIntegerVector4, driver.ComponentUnsignedByte, 1, false, true},
	FormatInteger4I16:      {"integer4_i16", memlayout.IntegerVector4, driver.ComponentShort, 2, false, true},
	FormatInteger4U16:      {"integer4_u16", memlayout.UnsignedIntegerVector4, driver.ComponentUnsignedShort, 2, false, true},
	FormatInteger4I32:      {"integer4_i32", memlayout.IntegerVector4, driver.ComponentInt, 4, false, true},
	FormatInteger4U32:      {"integer4_u32", memlayout.UnsignedIntegerVector4, driver.ComponentUnsignedInt, 4, false, true},
}

var gpuFormats = map[Format]gputypes.VertexFormat{
	FormatFloatF32:      gputypes.VertexFormatFloat32,
	FormatFloat2F32:     gputypes.VertexFormatFloat32x2,
	FormatFloat2I8Norm:  gputypes.VertexFormatSnorm8x2,
	FormatFloat2I16Norm: gputypes.VertexFormatSnorm16x2,
	FormatFloat2U8Norm:  gputypes.VertexFormatUnorm8x2,
	FormatFloat2U16Norm: gputypes.VertexFormatUnorm16x2,
	FormatFloat3F32:     gputypes.VertexFormatFloat32x3,
	FormatFloat4F32:     gputypes.VertexFormatFloat32x4,
	FormatFloat4I8Norm:  gputypes.VertexFormatSnorm8x4,
	FormatFloat4I16Norm: gputypes.VertexFormatSnorm16x4,
	FormatFloat4U8Norm:  gputypes.VertexFormatUnorm8x4,
	FormatFloat4U16Norm: gputypes.VertexFormatUnorm16x4,
	FormatIntegerI32:    gputypes.VertexFormatSint32,
	FormatIntegerU32:    gputypes.VertexFormatUint32,
	FormatInteger2I8:    gputypes.VertexFormatSint8x2,
	FormatInteger2U8:    gputypes.VertexFormatUint8x2,
	FormatInteger2I16:   gputypes.VertexFormatSint16x2,
	FormatInteger2U16:   gputypes.VertexFormatUint16x2,
	FormatInteger2I32:   gputypes.VertexFormatSint32x2,
	FormatInteger2U32:   gputypes.VertexFormatUint32x2,
	FormatInteger3I32:   gputypes.VertexFormatSint32x3,
	FormatInteger3U32:   gputypes.VertexFormatUint32x3,
	FormatInteger4I8:    gputypes.VertexFormatSint8x4,
	FormatInteger4U8:    gputypes.VertexFormatUint8x4,
	FormatInteger4I16:   gputypes.VertexFormatSint16x4,
	FormatInteger4U16:   gputypes.VertexFormatUint16x4,
	FormatInteger4I32:   gputypes.VertexFormatSint32x4,
	FormatInteger4U32:   gputypes.VertexFormatUint32x4,
}
