package interfaceblock

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/gogpu/glitz/memlayout"
)

// Encode returns the std140 byte image of v. v may be a value or a pointer
// to one; its type must be accepted by Describe.
func Encode(v any) ([]byte, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil value", ErrUnsupportedField)
	}
	d, err := Describe(rv.Type())
	if err != nil {
		return nil, err
	}
	buf := make([]byte, d.size)
	d.encode(buf, rv)
	return buf, nil
}

// EncodeInto writes the std140 byte image of v into buf, which must be at
// least Size() bytes. v must have the described type.
func (d *Descriptor) EncodeInto(buf []byte, v any) error {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Type() != d.typ {
		return fmt.Errorf("interfaceblock: cannot encode %T as %s", v, d.typ)
	}
	if uint32(len(buf)) < d.size {
		return fmt.Errorf("interfaceblock: buffer of %d bytes is smaller than block size %d", len(buf), d.size)
	}
	clear(buf[:d.size])
	d.encode(buf, rv)
	return nil
}

func (d *Descriptor) encode(buf []byte, rv reflect.Value) {
	// The walk cannot fail here: it already succeeded for this type.
	_, _ = placeRoot(d.typ, rv, func(offset uint32, l memlayout.UnitLayout, v reflect.Value) {
		writeUnit(buf, offset, l, v)
	})
}

func writeUnit(buf []byte, off uint32, l memlayout.UnitLayout, v reflect.Value) {
	if !l.Array {
		writeElement(buf, off, l, v)
		return
	}
	for i := 0; i < int(l.Len); i++ {
		writeElement(buf, off+uint32(i)*l.ArrayStride, l, v.Index(i))
	}
}

func writeElement(buf []byte, off uint32, l memlayout.UnitLayout, v reflect.Value) {
	var scratch [16]uint32
	comps := flatten(scratch[:0], v)

	if !l.Kind.IsMatrix() {
		for i, c := range comps {
			binary.LittleEndian.PutUint32(buf[off+uint32(i)*4:], c)
		}
		return
	}

	// Host matrices are column-major.
	cols, rows := l.Kind.Columns(), l.Kind.Rows()
	for c := uint32(0); c < cols; c++ {
		for r := uint32(0); r < rows; r++ {
			pos := off + c*l.MatrixStride + r*4
			if l.Order == memlayout.RowMajor {
				pos = off + r*l.MatrixStride + c*4
			}
			binary.LittleEndian.PutUint32(buf[pos:], comps[c*rows+r])
		}
	}
}

// flatten appends the 32-bit components of a leaf value in memory order.
func flatten(dst []uint32, v reflect.Value) []uint32 {
	switch v.Kind() {
	case reflect.Float32:
		return append(dst, math.Float32bits(float32(v.Float())))
	case reflect.Int32:
		return append(dst, uint32(int32(v.Int())))
	case reflect.Uint32:
		return append(dst, uint32(v.Uint()))
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			dst = flatten(dst, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			dst = flatten(dst, v.Field(i))
		}
	}
	return dst
}
