package vertex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/gogpu/glitz/internal/lru"
	"github.com/gogpu/glitz/std140"
)

// SlotType is a host vertex type bound to one buffer slot.
type SlotType struct {
	Type reflect.Type
	Rate InputRate
}

// PerVertexOf returns a per-vertex slot of type T.
func PerVertexOf[T any]() SlotType {
	return SlotType{Type: reflect.TypeFor[T](), Rate: PerVertex}
}

// PerInstanceOf returns a per-instance slot of type T.
func PerInstanceOf[T any]() SlotType {
	return SlotType{Type: reflect.TypeFor[T](), Rate: PerInstance}
}

// inferred maps field types to the format used when a tag names only a
// location.
var inferred = map[reflect.Type]Format{
	reflect.TypeFor[float32]():        FormatFloatF32,
	reflect.TypeFor[[2]float32]():     FormatFloat2F32,
	reflect.TypeFor[[3]float32]():     FormatFloat3F32,
	reflect.TypeFor[[4]float32]():     FormatFloat4F32,
	reflect.TypeFor[std140.Vec2]():    FormatFloat2F32,
	reflect.TypeFor[std140.Vec3]():    FormatFloat3F32,
	reflect.TypeFor[std140.Vec4]():    FormatFloat4F32,
	reflect.TypeFor[std140.Mat2]():    FormatFloat2x2F32,
	reflect.TypeFor[std140.Mat3]():    FormatFloat3x3F32,
	reflect.TypeFor[std140.Mat4]():    FormatFloat4x4F32,
	reflect.TypeFor[math32.Vector2](): FormatFloat2F32,
	reflect.TypeFor[math32.Vector3](): FormatFloat3F32,
	reflect.TypeFor[math32.Vector4](): FormatFloat4F32,
	reflect.TypeFor[math32.Matrix3](): FormatFloat3x3F32,
	reflect.TypeFor[math32.Matrix4](): FormatFloat4x4F32,
	reflect.TypeFor[int32]():          FormatIntegerI32,
	reflect.TypeFor[uint32]():         FormatIntegerU32,
	reflect.TypeFor[[2]int32]():       FormatInteger2I32,
	reflect.TypeFor[[3]int32]():       FormatInteger3I32,
	reflect.TypeFor[[4]int32]():       FormatInteger4I32,
	reflect.TypeFor[[2]uint32]():      FormatInteger2U32,
	reflect.TypeFor[[3]uint32]():      FormatInteger3U32,
	reflect.TypeFor[[4]uint32]():      FormatInteger4U32,
	reflect.TypeFor[std140.IVec2]():   FormatInteger2I32,
	reflect.TypeFor[std140.IVec3]():   FormatInteger3I32,
	reflect.TypeFor[std140.IVec4]():   FormatInteger4I32,
	reflect.TypeFor[std140.UVec2]():   FormatInteger2U32,
	reflect.TypeFor[std140.UVec3]():   FormatInteger3U32,
	reflect.TypeFor[std140.UVec4]():   FormatInteger4U32,
}

type slotResult struct {
	stride int
	attrs  []AttributeDescriptor
	err    error
}

var slotCache = lru.New[reflect.Type, slotResult](256)

// LayoutOf derives a layout from host vertex types, one buffer slot per type.
//
// Vertex types are fixed-size structs stored packed, as encoding/binary
// writes them: each field starts where the previous one ends and the stride
// is the struct's binary size. A field becomes an attribute when tagged
//
//	Position [3]float32 `vertex:"0"`
//	Color    [4]uint8   `vertex:"1,float4_u8_norm"`
//
// The format may be omitted for float32, int32 and uint32 based fields.
// An explicit format must have the field's size.
func LayoutOf(slots ...SlotType) (Layout, error) {
	b := NewLayoutBuilder()
	for _, st := range slots {
		r := slotCache.GetOrCreate(st.Type, func() slotResult { return deriveSlot(st.Type) })
		if r.err != nil {
			return Layout{}, r.err
		}
		sb := b.AddBufferSlot(r.stride, st.Rate)
		for _, a := range r.attrs {
			sb.AddAttribute(a)
		}
	}
	return b.Finish()
}

func deriveSlot(t reflect.Type) slotResult {
	if t == nil || t.Kind() != reflect.Struct {
		return slotResult{err: fmt.Errorf("%w: vertex type %v is not a struct", ErrUnsupportedField, t)}
	}
	stride := binary.Size(reflect.Zero(t).Interface())
	if stride < 0 {
		return slotResult{err: fmt.Errorf("%w: %s is not fixed-size", ErrUnsupportedField, t)}
	}

	var attrs []AttributeDescriptor
	offset := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		size := binary.Size(reflect.Zero(f.Type).Interface())
		if size < 0 {
			return slotResult{err: fmt.Errorf("%w: %s.%s is not fixed-size", ErrUnsupportedField, t.Name(), f.Name)}
		}

		if tag, ok := f.Tag.Lookup("vertex"); ok {
			a, err := parseTag(tag, f.Type, size)
			if err != nil {
				return slotResult{err: fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)}
			}
			a.Offset = offset
			attrs = append(attrs, a)
		}
		offset += size
	}
	return slotResult{stride: stride, attrs: attrs}
}

func parseTag(tag string, ft reflect.Type, size int) (AttributeDescriptor, error) {
	locStr, formatName, hasFormat := strings.Cut(tag, ",")
	loc, err := strconv.ParseUint(strings.TrimSpace(locStr), 10, 32)
	if err != nil {
		return AttributeDescriptor{}, fmt.Errorf("%w: bad location %q", ErrUnsupportedField, locStr)
	}

	var f Format
	if hasFormat {
		f, err = ParseFormat(strings.TrimSpace(formatName))
		if err != nil {
			return AttributeDescriptor{}, err
		}
	} else {
		var ok bool
		if f, ok = inferred[ft]; !ok {
			return AttributeDescriptor{}, fmt.Errorf("%w: no default format for %s", ErrUnsupportedField, ft)
		}
	}

	if f.Size() != size {
		return AttributeDescriptor{}, fmt.Errorf("%w: format %s is %d bytes but the field is %d",
			ErrUnsupportedField, f, f.Size(), size)
	}
	return AttributeDescriptor{Location: uint32(loc), Format: f}, nil
}

// Encode returns the packed little-endian image of a vertex slice, laid out
// as LayoutOf describes it.
func Encode[T any](vertices []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, vertices); err != nil {
		return nil, fmt.Errorf("vertex: encode %T: %w", vertices, err)
	}
	return buf.Bytes(), nil
}
