package interfaceblock

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/core/math32"

	"github.com/gogpu/glitz/internal/lru"
	"github.com/gogpu/glitz/memlayout"
	"github.com/gogpu/glitz/std140"
)

// leafKinds maps fixed-layout host types to the unit kind they occupy.
var leafKinds = map[reflect.Type]memlayout.Kind{
	reflect.TypeFor[float32](): memlayout.Float,
	reflect.TypeFor[int32]():   memlayout.Integer,
	reflect.TypeFor[uint32]():  memlayout.UnsignedInteger,
	reflect.TypeFor[bool]():    memlayout.Bool,

	reflect.TypeFor[std140.Bool]():  memlayout.Bool,
	reflect.TypeFor[std140.Vec2]():  memlayout.FloatVector2,
	reflect.TypeFor[std140.Vec3]():  memlayout.FloatVector3,
	reflect.TypeFor[std140.Vec4]():  memlayout.FloatVector4,
	reflect.TypeFor[std140.IVec2](): memlayout.IntegerVector2,
	reflect.TypeFor[std140.IVec3](): memlayout.IntegerVector3,
	reflect.TypeFor[std140.IVec4](): memlayout.IntegerVector4,
	reflect.TypeFor[std140.UVec2](): memlayout.UnsignedIntegerVector2,
	reflect.TypeFor[std140.UVec3](): memlayout.UnsignedIntegerVector3,
	reflect.TypeFor[std140.UVec4](): memlayout.UnsignedIntegerVector4,
	reflect.TypeFor[std140.BVec2](): memlayout.BoolVector2,
	reflect.TypeFor[std140.BVec3](): memlayout.BoolVector3,
	reflect.TypeFor[std140.BVec4](): memlayout.BoolVector4,

	reflect.TypeFor[std140.Mat2]():   memlayout.Matrix2x2,
	reflect.TypeFor[std140.Mat2x3](): memlayout.Matrix2x3,
	reflect.TypeFor[std140.Mat2x4](): memlayout.Matrix2x4,
	reflect.TypeFor[std140.Mat3x2](): memlayout.Matrix3x2,
	reflect.TypeFor[std140.Mat3]():   memlayout.Matrix3x3,
	reflect.TypeFor[std140.Mat3x4](): memlayout.Matrix3x4,
	reflect.TypeFor[std140.Mat4x2](): memlayout.Matrix4x2,
	reflect.TypeFor[std140.Mat4x3](): memlayout.Matrix4x3,
	reflect.TypeFor[std140.Mat4]():   memlayout.Matrix4x4,

	reflect.TypeFor[math32.Vector2](): memlayout.FloatVector2,
	reflect.TypeFor[math32.Vector3](): memlayout.FloatVector3,
	reflect.TypeFor[math32.Vector4](): memlayout.FloatVector4,
	reflect.TypeFor[math32.Matrix3](): memlayout.Matrix3x3,
	reflect.TypeFor[math32.Matrix4](): memlayout.Matrix4x4,
}

// LeafKind returns the unit kind of a fixed-layout host type, or false if t
// is not a scalar, vector or matrix type.
func LeafKind(t reflect.Type) (memlayout.Kind, bool) {
	k, ok := leafKinds[t]
	return k, ok
}

// Descriptor is the derived std140 layout of a host type.
type Descriptor struct {
	typ   reflect.Type
	units []memlayout.MemoryUnit
	size  uint32
}

// Type returns the described host type.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Units returns the memory units in ascending offset order. The slice must
// not be modified.
func (d *Descriptor) Units() []memlayout.MemoryUnit { return d.units }

// Size returns the std140 size of the block in bytes.
func (d *Descriptor) Size() uint32 { return d.size }

// CheckCompatibility checks d against the units a shader reports.
func (d *Descriptor) CheckCompatibility(reflected []memlayout.MemoryUnit) error {
	return CheckCompatibility(d.units, reflected)
}

type describeResult struct {
	desc *Descriptor
	err  error
}

var descriptors = lru.New[reflect.Type, describeResult](512)

// Describe derives the std140 layout of a host type.
//
// Fields are placed in declaration order by std140 rules; Go's own struct
// layout is never consulted, so the result depends only on the field types.
// Accepted field types are float32, int32, uint32, bool, the std140 package
// types, math32 vectors and matrices, fixed-size arrays of those, nested
// structs and fixed-size arrays of structs. The struct tag std140:"-" skips a
// field and std140:"row_major" stores a matrix field row by row.
//
// Results are cached per type.
func Describe(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupportedField)
	}
	r := descriptors.GetOrCreate(t, func() describeResult {
		d, err := describe(t)
		return describeResult{desc: d, err: err}
	})
	return r.desc, r.err
}

// DescribeOf is the generic form of Describe.
func DescribeOf[T any]() (*Descriptor, error) {
	return Describe(reflect.TypeFor[T]())
}

// Derive returns the memory units of a host type in ascending offset order.
// Deriving the same type twice yields identical units.
func Derive(t reflect.Type) ([]memlayout.MemoryUnit, error) {
	d, err := Describe(t)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.units), nil
}

// DeriveOf is the generic form of Derive.
func DeriveOf[T any]() ([]memlayout.MemoryUnit, error) {
	return Derive(reflect.TypeFor[T]())
}

// Size returns the std140 size of a host type in bytes.
func Size(t reflect.Type) (uint32, error) {
	d, err := Describe(t)
	if err != nil {
		return 0, err
	}
	return d.size, nil
}

func describe(t reflect.Type) (*Descriptor, error) {
	d := &Descriptor{typ: t}
	visit := func(offset uint32, l memlayout.UnitLayout, _ reflect.Value) {
		d.units = append(d.units, memlayout.MemoryUnit{Offset: offset, Layout: l})
	}
	end, err := placeRoot(t, reflect.Value{}, visit)
	if err != nil {
		return nil, err
	}
	d.size = memlayout.RoundUp(end, memlayout.Std140VectorAlign)
	return d, nil
}

// visitor receives every unit placed by the layout walk. v is the invalid
// Value during derivation and the unit's host value during encoding.
type visitor func(offset uint32, l memlayout.UnitLayout, v reflect.Value)

func placeRoot(t reflect.Type, v reflect.Value, visit visitor) (uint32, error) {
	if _, leaf := leafKinds[t]; !leaf && t.Kind() == reflect.Struct {
		return placeStruct(t, v, 0, memlayout.ColumnMajor, t.Name(), visit)
	}
	return placeField(t, v, 0, memlayout.ColumnMajor, t.String(), visit)
}

func placeStruct(t reflect.Type, v reflect.Value, base uint32, order memlayout.MatrixOrder, path string, visit visitor) (uint32, error) {
	start := memlayout.RoundUp(base, memlayout.Std140VectorAlign)
	off := start
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		fieldOrder := order
		switch tag := f.Tag.Get("std140"); tag {
		case "":
		case "-":
			continue
		case "row_major":
			fieldOrder = memlayout.RowMajor
		case "column_major":
			fieldOrder = memlayout.ColumnMajor
		default:
			return 0, fmt.Errorf("interfaceblock: %s.%s: unknown std140 tag %q", path, f.Name, tag)
		}

		var fv reflect.Value
		if v.IsValid() {
			fv = v.Field(i)
		}
		var err error
		off, err = placeField(f.Type, fv, off, fieldOrder, path+"."+f.Name, visit)
		if err != nil {
			return 0, err
		}
	}
	return start + memlayout.RoundUp(off-start, memlayout.Std140VectorAlign), nil
}

func placeField(t reflect.Type, v reflect.Value, off uint32, order memlayout.MatrixOrder, path string, visit visitor) (uint32, error) {
	if k, ok := leafKinds[t]; ok {
		l := memlayout.Std140(k, order)
		off = memlayout.RoundUp(off, l.Alignment())
		visit(off, l, v)
		return off + l.Size(), nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return placeStruct(t, v, off, order, path, visit)

	case reflect.Array:
		n := t.Len()
		if n == 0 {
			return 0, fmt.Errorf("%w: %s is a zero-length array", ErrUnsupportedField, path)
		}
		elem := t.Elem()
		if k, ok := leafKinds[elem]; ok {
			l := memlayout.Std140Array(k, order, uint32(n))
			off = memlayout.RoundUp(off, l.Alignment())
			visit(off, l, v)
			return off + l.Size(), nil
		}
		if elem.Kind() != reflect.Struct {
			return 0, fmt.Errorf("%w: %s has element type %s", ErrUnsupportedField, path, elem)
		}
		for i := 0; i < n; i++ {
			var ev reflect.Value
			if v.IsValid() {
				ev = v.Index(i)
			}
			var err error
			off, err = placeStruct(elem, ev, off, order, fmt.Sprintf("%s[%d]", path, i), visit)
			if err != nil {
				return 0, err
			}
		}
		return off, nil
	}

	return 0, fmt.Errorf("%w: %s has type %s", ErrUnsupportedField, path, t)
}
