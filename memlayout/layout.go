package memlayout

import (
	"fmt"
	"slices"
	"strings"
)

// MatrixOrder is the storage order of a matrix unit.
type MatrixOrder uint8

// Matrix orders.
const (
	ColumnMajor MatrixOrder = iota
	RowMajor
)

// String returns the order name.
func (o MatrixOrder) String() string {
	if o == RowMajor {
		return "row-major"
	}
	return "column-major"
}

// UnitLayout is the memory layout of one unit of an interface block.
//
// It is a closed set of four variants, selected by Kind and Array:
//   - scalar or vector: Kind only
//   - scalar or vector array: Kind, Len and ArrayStride
//   - matrix: Kind, Order and MatrixStride
//   - matrix array: all of the above
//
// Use the constructors to build values; unused fields are always zero, so
// two layouts are equal iff they compare equal with ==.
type UnitLayout struct {
	Kind         Kind
	Array        bool
	Len          uint32
	ArrayStride  uint32
	Order        MatrixOrder
	MatrixStride uint32
}

// Scalar returns the layout of a single scalar or vector unit.
func Scalar(k Kind) UnitLayout {
	return UnitLayout{Kind: k}
}

// ScalarArray returns the layout of an array of scalars or vectors.
func ScalarArray(k Kind, arrayStride, length uint32) UnitLayout {
	return UnitLayout{Kind: k, Array: true, Len: length, ArrayStride: arrayStride}
}

// Matrix returns the layout of a single matrix unit.
func Matrix(k Kind, order MatrixOrder, matrixStride uint32) UnitLayout {
	return UnitLayout{Kind: k, Order: order, MatrixStride: matrixStride}
}

// MatrixArray returns the layout of an array of matrices.
func MatrixArray(k Kind, order MatrixOrder, matrixStride, arrayStride, length uint32) UnitLayout {
	return UnitLayout{
		Kind:         k,
		Array:        true,
		Len:          length,
		ArrayStride:  arrayStride,
		Order:        order,
		MatrixStride: matrixStride,
	}
}

// Size returns the number of bytes the unit spans.
func (l UnitLayout) Size() uint32 {
	if l.Array {
		return l.ArrayStride * l.Len
	}
	return l.elementSize()
}

func (l UnitLayout) elementSize() uint32 {
	if !l.Kind.IsMatrix() {
		return l.Kind.Rows() * 4
	}
	if l.Order == RowMajor {
		return l.MatrixStride * l.Kind.Rows()
	}
	return l.MatrixStride * l.Kind.Columns()
}

// String returns a compact description such as "mat4[2] column-major stride=16 array-stride=64".
func (l UnitLayout) String() string {
	var b strings.Builder
	b.WriteString(l.Kind.String())
	if l.Array {
		fmt.Fprintf(&b, "[%d]", l.Len)
	}
	if l.Kind.IsMatrix() {
		fmt.Fprintf(&b, " %s stride=%d", l.Order, l.MatrixStride)
	}
	if l.Array {
		fmt.Fprintf(&b, " array-stride=%d", l.ArrayStride)
	}
	return b.String()
}

// MemoryUnit is a unit of an interface block at a byte offset.
type MemoryUnit struct {
	Offset uint32
	Layout UnitLayout
}

// String returns "offset: layout".
func (u MemoryUnit) String() string {
	return fmt.Sprintf("%d: %s", u.Offset, u.Layout)
}

// SortByOffset sorts units by ascending offset, keeping the relative order of
// units that share an offset.
func SortByOffset(units []MemoryUnit) {
	slices.SortStableFunc(units, func(a, b MemoryUnit) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		default:
			return 0
		}
	})
}
