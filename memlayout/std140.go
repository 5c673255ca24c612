package memlayout

// std140 layout rules.
//
// Scalars are 4 bytes aligned to 4. Two-component vectors align to 8, three
// and four component vectors align to 16. Arrays and matrices round their
// element (or column) stride up to 16, and structs align to 16 with their size
// rounded up to 16. Booleans are stored as 32-bit integers.

// Std140VectorAlign is the alignment of arrays, matrices and structs.
const Std140VectorAlign = 16

// RoundUp rounds v up to a multiple of align. align must be a power of two.
func RoundUp(v, align uint32) uint32 {
	return (v + align - 1) &^ (align - 1)
}

// BaseAlignment returns the std140 base alignment of a single, non-array unit
// of kind k.
func BaseAlignment(k Kind) uint32 {
	if k.IsMatrix() {
		return Std140VectorAlign
	}
	switch k.Rows() {
	case 1:
		return 4
	case 2:
		return 8
	default:
		return 16
	}
}

// Std140 returns the std140 layout of a single unit of kind k. Matrices are
// column-major unless order says otherwise.
func Std140(k Kind, order MatrixOrder) UnitLayout {
	if k.IsMatrix() {
		return Matrix(k, order, Std140VectorAlign)
	}
	return Scalar(k)
}

// Std140Array returns the std140 layout of an array of n units of kind k.
func Std140Array(k Kind, order MatrixOrder, n uint32) UnitLayout {
	elem := Std140(k, order)
	stride := RoundUp(elem.Size(), Std140VectorAlign)
	if k.IsMatrix() {
		return MatrixArray(k, order, Std140VectorAlign, stride, n)
	}
	return ScalarArray(k, stride, n)
}

// Alignment returns the std140 alignment of the layout.
func (l UnitLayout) Alignment() uint32 {
	if l.Array {
		return Std140VectorAlign
	}
	return BaseAlignment(l.Kind)
}
