package vertex

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/memlayout"
	"github.com/gogpu/glitz/reflection"
)

// Format is the encoding of one vertex attribute in a vertex buffer.
type Format uint16

type formatInfo struct {
	name          string
	kind          memlayout.Kind
	component     driver.ComponentType
	componentSize uint8
	normalized    bool
	integer       bool
}

var formatsByName = func() map[string]Format {
	m := make(map[string]Format, len(formats))
	for i := 1; i < len(formats); i++ {
		m[formats[i].name] = Format(i)
	}
	return m
}()

// ParseFormat returns the format with the given lowercase name, such as
// "float3_u8_norm" or "integer2_u16".
func ParseFormat(name string) (Format, error) {
	if f, ok := formatsByName[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("vertex: unknown attribute format %q", name)
}

func (f Format) info() formatInfo {
	if f == 0 || int(f) >= len(formats) {
		return formatInfo{}
	}
	return formats[f]
}

// Valid reports whether f is a defined format.
func (f Format) Valid() bool { return f.info().kind != 0 }

// String returns the format name.
func (f Format) String() string {
	if n := f.info().name; n != "" {
		return n
	}
	return fmt.Sprintf("Format(%d)", uint16(f))
}

// Kind returns the shape of the value the shader receives.
func (f Format) Kind() memlayout.Kind { return f.info().kind }

// Size returns the number of bytes one attribute occupies in a buffer.
func (f Format) Size() int {
	i := f.info()
	return int(i.kind.Components()) * int(i.componentSize)
}

// Locations returns the number of consecutive locations the attribute
// occupies: one per matrix column.
func (f Format) Locations() int { return int(f.info().kind.Columns()) }

// ComponentType returns the data type of each stored component.
func (f Format) ComponentType() driver.ComponentType { return f.info().component }

// Normalized reports whether integer components are normalized.
func (f Format) Normalized() bool { return f.info().normalized }

// Integer reports whether the shader reads the attribute as an integer.
func (f Format) Integer() bool { return f.info().integer }

// IsCompatible reports whether an attribute slot of type t may be fed with
// data of format f.
func (f Format) IsCompatible(t reflection.AttributeType) bool {
	k := f.Kind()
	return k != 0 && k == t.Kind()
}

// GPUFormat returns the equivalent WebGPU vertex format. Formats WebGPU
// cannot express (three-component 8/16-bit data, unnormalized integer to
// float conversion, matrices) return false.
func (f Format) GPUFormat() (gputypes.VertexFormat, bool) {
	g, ok := gpuFormats[f]
	return g, ok
}

// Pointer is the attribute pointer for one location of an attribute.
type Pointer struct {
	Location   uint32
	Size       int
	Type       driver.ComponentType
	Normalized bool
	Integer    bool
	Offset     int
}

// Pointers returns the attribute pointers that read f at location from a
// buffer position offset. Matrix formats yield one pointer per column.
func (f Format) Pointers(location uint32, offset int) []Pointer {
	i := f.info()
	cols := int(i.kind.Columns())
	rows := int(i.kind.Rows())
	columnSize := rows * int(i.componentSize)

	ptrs := make([]Pointer, cols)
	for c := range ptrs {
		ptrs[c] = Pointer{
			Location:   location + uint32(c),
			Size:       rows,
			Type:       i.component,
			Normalized: i.normalized,
			Integer:    i.integer,
			Offset:     offset + c*columnSize,
		}
	}
	return ptrs
}
