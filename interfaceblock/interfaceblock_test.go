package interfaceblock

import (
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/gogpu/glitz/memlayout"
	"github.com/gogpu/glitz/std140"
)

type light struct {
	Position  std140.Vec3
	Intensity float32
	Transform std140.Mat4
}

type inner struct {
	A float32
	B std140.Vec2
}

type outer struct {
	X   float32
	In  inner
	Y   float32
	Arr [2]inner
	M   [2]std140.Mat3 `std140:"row_major"`
}

func u(offset uint32, l memlayout.UnitLayout) memlayout.MemoryUnit {
	return memlayout.MemoryUnit{Offset: offset, Layout: l}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want []memlayout.MemoryUnit
		size uint32
	}{
		{
			name: "light",
			typ:  reflect.TypeFor[light](),
			want: []memlayout.MemoryUnit{
				u(0, memlayout.Scalar(memlayout.FloatVector3)),
				u(12, memlayout.Scalar(memlayout.Float)),
				u(16, memlayout.Matrix(memlayout.Matrix4x4, memlayout.ColumnMajor, 16)),
			},
			size: 80,
		},
		{
			name: "nested",
			typ:  reflect.TypeFor[outer](),
			want: []memlayout.MemoryUnit{
				u(0, memlayout.Scalar(memlayout.Float)),
				u(16, memlayout.Scalar(memlayout.Float)),
				u(24, memlayout.Scalar(memlayout.FloatVector2)),
				u(32, memlayout.Scalar(memlayout.Float)),
				u(48, memlayout.Scalar(memlayout.Float)),
				u(56, memlayout.Scalar(memlayout.FloatVector2)),
				u(64, memlayout.Scalar(memlayout.Float)),
				u(72, memlayout.Scalar(memlayout.FloatVector2)),
				u(80, memlayout.MatrixArray(memlayout.Matrix3x3, memlayout.RowMajor, 16, 48, 2)),
			},
			size: 176,
		},
		{
			name: "math32",
			typ: reflect.TypeFor[struct {
				Color math32.Vector4
				Model math32.Matrix4
				UV    math32.Vector2
			}](),
			want: []memlayout.MemoryUnit{
				u(0, memlayout.Scalar(memlayout.FloatVector4)),
				u(16, memlayout.Matrix(memlayout.Matrix4x4, memlayout.ColumnMajor, 16)),
				u(80, memlayout.Scalar(memlayout.FloatVector2)),
			},
			size: 96,
		},
		{
			name: "scalar arrays and skipped fields",
			typ: reflect.TypeFor[struct {
				Weights [3]float32
				Debug   string `std140:"-"`
				_       [12]byte
				Flags   std140.BVec2
			}](),
			want: []memlayout.MemoryUnit{
				u(0, memlayout.ScalarArray(memlayout.Float, 16, 3)),
				u(48, memlayout.Scalar(memlayout.BoolVector2)),
			},
			size: 64,
		},
		{
			name: "bare leaf",
			typ:  reflect.TypeFor[std140.Mat2x3](),
			want: []memlayout.MemoryUnit{
				u(0, memlayout.Matrix(memlayout.Matrix2x3, memlayout.ColumnMajor, 16)),
			},
			size: 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.typ)
			if err != nil {
				t.Fatalf("Derive: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Derive =\n%v\nwant\n%v", got, tt.want)
			}
			size, err := Size(tt.typ)
			if err != nil {
				t.Fatalf("Size: %v", err)
			}
			if size != tt.size {
				t.Errorf("Size = %d, want %d", size, tt.size)
			}
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	first, err := DeriveOf[outer]()
	if err != nil {
		t.Fatal(err)
	}
	// Mutating a returned slice must not leak into later derivations.
	first[0].Offset = 999

	descriptors.Clear()
	second, err := DeriveOf[outer]()
	if err != nil {
		t.Fatal(err)
	}
	third, err := DeriveOf[outer]()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(second, third) {
		t.Errorf("derivations differ:\n%v\n%v", second, third)
	}
	if second[0].Offset != 0 {
		t.Errorf("cached units were mutated: offset %d", second[0].Offset)
	}
}

func TestDeriveUnsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"float64", reflect.TypeFor[struct{ F float64 }]()},
		{"int", reflect.TypeFor[struct{ N int }]()},
		{"slice", reflect.TypeFor[struct{ S []float32 }]()},
		{"pointer", reflect.TypeFor[struct{ P *light }]()},
		{"array of arrays", reflect.TypeFor[struct{ A [2][2]float32 }]()},
		{"empty array", reflect.TypeFor[struct{ A [0]float32 }]()},
		{"nested unsupported", reflect.TypeFor[struct{ In struct{ S string } }]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.typ)
			if !errors.Is(err, ErrUnsupportedField) {
				t.Errorf("expected ErrUnsupportedField, got %v", err)
			}
		})
	}
}

func TestDeriveUnknownTag(t *testing.T) {
	_, err := DeriveOf[struct {
		M std140.Mat4 `std140:"packed"`
	}]()
	if err == nil {
		t.Fatal("expected error for unknown tag")
	}
}

func TestCheckCompatibility(t *testing.T) {
	float := memlayout.Scalar(memlayout.Float)
	vec4 := memlayout.Scalar(memlayout.FloatVector4)

	tests := []struct {
		name      string
		derived   []memlayout.MemoryUnit
		reflected []memlayout.MemoryUnit
		wantKind  IncompatibleKind
		wantAt    uint32
	}{
		{
			name:      "single float matches",
			derived:   []memlayout.MemoryUnit{u(0, float)},
			reflected: []memlayout.MemoryUnit{u(0, float)},
		},
		{
			name:      "reflected padding member missing on host",
			derived:   []memlayout.MemoryUnit{u(0, float)},
			reflected: []memlayout.MemoryUnit{u(0, float), u(16, float)},
			wantKind:  MissingUnit,
			wantAt:    16,
		},
		{
			name:      "trailing host fields are over-provision",
			derived:   []memlayout.MemoryUnit{u(0, float), u(16, vec4), u(32, float)},
			reflected: []memlayout.MemoryUnit{u(0, float)},
		},
		{
			name:      "interior host fields are over-provision",
			derived:   []memlayout.MemoryUnit{u(0, float), u(16, vec4), u(32, float)},
			reflected: []memlayout.MemoryUnit{u(0, float), u(32, float)},
		},
		{
			name:      "reflected unit between host units",
			derived:   []memlayout.MemoryUnit{u(0, float), u(32, float)},
			reflected: []memlayout.MemoryUnit{u(0, float), u(16, float)},
			wantKind:  MissingUnit,
			wantAt:    16,
		},
		{
			name:      "layout mismatch",
			derived:   []memlayout.MemoryUnit{u(0, vec4)},
			reflected: []memlayout.MemoryUnit{u(0, float)},
			wantKind:  UnitLayoutMismatch,
			wantAt:    0,
		},
		{
			name:      "matrix order mismatch",
			derived:   []memlayout.MemoryUnit{u(0, memlayout.Matrix(memlayout.Matrix4x4, memlayout.ColumnMajor, 16))},
			reflected: []memlayout.MemoryUnit{u(0, memlayout.Matrix(memlayout.Matrix4x4, memlayout.RowMajor, 16))},
			wantKind:  UnitLayoutMismatch,
		},
		{
			name:      "empty reflected block",
			derived:   []memlayout.MemoryUnit{u(0, float)},
			reflected: nil,
		},
		{
			name:      "empty host block",
			derived:   nil,
			reflected: []memlayout.MemoryUnit{u(0, float)},
			wantKind:  MissingUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCompatibility(tt.derived, tt.reflected)
			if tt.wantKind == 0 {
				if err != nil {
					t.Errorf("expected compatible, got %v", err)
				}
				return
			}
			var ie *IncompatibleError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *IncompatibleError, got %v", err)
			}
			if ie.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", ie.Kind, tt.wantKind)
			}
			if ie.Unit.Offset != tt.wantAt {
				t.Errorf("Unit.Offset = %d, want %d", ie.Unit.Offset, tt.wantAt)
			}
		})
	}
}

func TestIncompatibleErrorIs(t *testing.T) {
	missing := &IncompatibleError{Kind: MissingUnit}
	mismatch := &IncompatibleError{Kind: UnitLayoutMismatch}

	if !errors.Is(missing, ErrMissingUnit) || errors.Is(missing, ErrUnitLayoutMismatch) {
		t.Error("missing unit error matched the wrong sentinel")
	}
	if !errors.Is(mismatch, ErrUnitLayoutMismatch) || errors.Is(mismatch, ErrMissingUnit) {
		t.Error("layout mismatch error matched the wrong sentinel")
	}
}

func TestDescriptorCheckCompatibility(t *testing.T) {
	d, err := DescribeOf[struct{ Scale float32 }]()
	if err != nil {
		t.Fatal(err)
	}
	reflected := []memlayout.MemoryUnit{u(0, memlayout.Scalar(memlayout.Float))}
	if err := d.CheckCompatibility(reflected); err != nil {
		t.Errorf("expected compatible, got %v", err)
	}
	reflected = append(reflected, u(16, memlayout.Scalar(memlayout.Float)))
	if err := d.CheckCompatibility(reflected); !errors.Is(err, ErrMissingUnit) {
		t.Errorf("expected ErrMissingUnit, got %v", err)
	}
}

type encoded struct {
	A float32
	B std140.Vec3
	C std140.Mat2 `std140:"row_major"`
	D bool
	E [2]int32
}

func TestEncode(t *testing.T) {
	v := encoded{
		A: 1.5,
		B: std140.Vec3{1, 2, 3},
		C: std140.Mat2{{1, 2}, {3, 4}},
		D: true,
		E: [2]int32{-1, 7},
	}

	buf, err := Encode(&v)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 112 {
		t.Fatalf("len = %d, want 112", len(buf))
	}

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	w := func(off int) uint32 { return binary.LittleEndian.Uint32(buf[off:]) }

	floats := map[int]float32{0: 1.5, 16: 1, 20: 2, 24: 3, 32: 1, 36: 3, 48: 2, 52: 4}
	for off, want := range floats {
		if got := f(off); got != want {
			t.Errorf("float at %d = %v, want %v", off, got, want)
		}
	}
	words := map[int]uint32{64: 1, 80: 0xFFFFFFFF, 96: 7, 4: 0, 40: 0, 84: 0}
	for off, want := range words {
		if got := w(off); got != want {
			t.Errorf("word at %d = %#x, want %#x", off, got, want)
		}
	}
}

func TestEncodeMath32Matrix(t *testing.T) {
	m := math32.Matrix4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	buf, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 16; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != float32(i+1) {
			t.Errorf("component %d = %v, want %v", i, got, i+1)
		}
	}
}

func TestEncodeInto(t *testing.T) {
	d, err := DescribeOf[light]()
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, d.Size())
	for i := range buf {
		buf[i] = 0xAA
	}
	if err := d.EncodeInto(buf, light{Intensity: 2}); err != nil {
		t.Fatal(err)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:])); got != 2 {
		t.Errorf("Intensity = %v, want 2", got)
	}
	if buf[0] != 0 {
		t.Error("expected buffer to be cleared before encoding")
	}

	if err := d.EncodeInto(buf[:8], light{}); err == nil {
		t.Error("expected error for short buffer")
	}
	if err := d.EncodeInto(buf, inner{}); err == nil {
		t.Error("expected error for wrong type")
	}
}

func TestEncodeNil(t *testing.T) {
	var p *light
	if _, err := Encode(p); err == nil {
		t.Error("expected error for nil pointer")
	}
}
