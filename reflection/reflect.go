package reflection

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/memlayout"
)

// Reflection errors. Each aborts pipeline creation.
var (
	// ErrUnsupportedAttribute is returned for an active attribute whose type
	// has no attribute type.
	ErrUnsupportedAttribute = errors.New("reflection: unsupported attribute type")

	// ErrUnsupportedUniform is returned for an active uniform whose type has
	// no unit kind or sampler kind, and for sampler arrays.
	ErrUnsupportedUniform = errors.New("reflection: unsupported uniform type")

	// ErrStandaloneUniform is returned for a non-sampler uniform declared
	// outside a uniform block.
	ErrStandaloneUniform = errors.New("reflection: non-opaque uniform outside a uniform block")
)

// SlotKind discriminates resource slots.
type SlotKind uint8

// Slot kinds.
const (
	SlotUniformBlock SlotKind = iota + 1
	SlotTextureSampler
)

// String returns the slot kind name.
func (k SlotKind) String() string {
	switch k {
	case SlotUniformBlock:
		return "uniform block"
	case SlotTextureSampler:
		return "texture sampler"
	default:
		return "unknown"
	}
}

// UniformBlockSlot is a uniform block of a linked program.
type UniformBlockSlot struct {
	// Index is the block index within the program.
	Index uint32

	// Units are the block's members in ascending offset order.
	Units []memlayout.MemoryUnit

	// DataSize is the minimum buffer size the block requires.
	DataSize uint32
}

// TextureSamplerSlot is a standalone sampler uniform of a linked program.
type TextureSamplerSlot struct {
	Location driver.UniformLocation
	Kind     SamplerKind
}

// ResourceSlot is a resource a linked program expects to be bound.
// Block is set for SlotUniformBlock, Sampler for SlotTextureSampler.
type ResourceSlot struct {
	Identifier Identifier
	Kind       SlotKind
	Block      UniformBlockSlot
	Sampler    TextureSamplerSlot
}

// AttributeSlot is an active vertex attribute of a linked program.
type AttributeSlot struct {
	Name     string
	Location uint32
	Type     AttributeType
}

// Program is the reflected interface of a linked program.
type Program struct {
	// Attributes are sorted by location. Built-ins are excluded.
	Attributes []AttributeSlot

	// Resources lists uniform blocks in block index order, then samplers in
	// the order the driver reports them.
	Resources []ResourceSlot
}

// Resource returns the slot with the given identifier.
func (p *Program) Resource(id Identifier) (ResourceSlot, bool) {
	for _, s := range p.Resources {
		if s.Identifier.Equal(id) {
			return s, true
		}
	}
	return ResourceSlot{}, false
}

// Reflect queries the active attributes, uniform blocks and sampler uniforms
// of a linked program.
func Reflect(r driver.Reflector, p driver.ProgramID) (*Program, error) {
	uniforms, err := r.ActiveUniforms(p)
	if err != nil {
		return nil, fmt.Errorf("reflection: query uniforms: %w", err)
	}
	blocks, err := r.ActiveUniformBlocks(p)
	if err != nil {
		return nil, fmt.Errorf("reflection: query uniform blocks: %w", err)
	}
	attributes, err := r.ActiveAttributes(p)
	if err != nil {
		return nil, fmt.Errorf("reflection: query attributes: %w", err)
	}

	prog := &Program{}

	slices.SortFunc(blocks, func(a, b driver.UniformBlockInfo) int { return int(a.Index) - int(b.Index) })
	for _, b := range blocks {
		slot, err := reflectBlock(b, uniforms)
		if err != nil {
			return nil, err
		}
		prog.Resources = append(prog.Resources, slot)
	}

	for _, u := range uniforms {
		if u.BlockIndex >= 0 {
			continue
		}
		slot, err := reflectSampler(r, p, u)
		if err != nil {
			return nil, err
		}
		prog.Resources = append(prog.Resources, slot)
	}

	for _, a := range attributes {
		if strings.HasPrefix(a.Name, "gl_") {
			continue
		}
		typ, ok := attributeTypes[a.Type]
		if !ok {
			return nil, fmt.Errorf("%w: %s has type %s", ErrUnsupportedAttribute, a.Name, a.Type)
		}
		prog.Attributes = append(prog.Attributes, AttributeSlot{
			Name:     a.Name,
			Location: uint32(a.Location),
			Type:     typ,
		})
	}
	slices.SortFunc(prog.Attributes, func(a, b AttributeSlot) int { return int(a.Location) - int(b.Location) })

	return prog, nil
}

func reflectBlock(b driver.UniformBlockInfo, uniforms []driver.UniformInfo) (ResourceSlot, error) {
	units := make([]memlayout.MemoryUnit, 0, len(b.ActiveUniforms))
	for _, idx := range b.ActiveUniforms {
		if int(idx) >= len(uniforms) {
			return ResourceSlot{}, fmt.Errorf("reflection: block %s references uniform %d of %d", b.Name, idx, len(uniforms))
		}
		u := uniforms[idx]
		layout, err := memberLayout(u)
		if err != nil {
			return ResourceSlot{}, fmt.Errorf("block %s: %w", b.Name, err)
		}
		units = append(units, memlayout.MemoryUnit{Offset: uint32(u.Offset), Layout: layout})
	}
	memlayout.SortByOffset(units)

	return ResourceSlot{
		Identifier: NewIdentifier(b.Name),
		Kind:       SlotUniformBlock,
		Block: UniformBlockSlot{
			Index:    b.Index,
			Units:    units,
			DataSize: uint32(b.DataSize),
		},
	}, nil
}

// memberLayout translates one block member. A member is an array when the
// driver reports more than one element or names it with a "[0]" suffix.
func memberLayout(u driver.UniformInfo) (memlayout.UnitLayout, error) {
	k, ok := unitKinds[u.Type]
	if !ok {
		return memlayout.UnitLayout{}, fmt.Errorf("%w: %s has type %s", ErrUnsupportedUniform, u.Name, u.Type)
	}

	array := u.Size > 1 || strings.HasSuffix(u.Name, "[0]")
	order := memlayout.ColumnMajor
	if u.RowMajor {
		order = memlayout.RowMajor
	}

	switch {
	case k.IsMatrix() && array:
		return memlayout.MatrixArray(k, order, uint32(u.MatrixStride), uint32(u.ArrayStride), uint32(u.Size)), nil
	case k.IsMatrix():
		return memlayout.Matrix(k, order, uint32(u.MatrixStride)), nil
	case array:
		return memlayout.ScalarArray(k, uint32(u.ArrayStride), uint32(u.Size)), nil
	default:
		return memlayout.Scalar(k), nil
	}
}

func reflectSampler(r driver.Reflector, p driver.ProgramID, u driver.UniformInfo) (ResourceSlot, error) {
	kind, ok := samplerTypes[u.Type]
	if !ok {
		if _, plain := unitKinds[u.Type]; plain {
			return ResourceSlot{}, fmt.Errorf("%w: %s %s", ErrStandaloneUniform, u.Type, u.Name)
		}
		return ResourceSlot{}, fmt.Errorf("%w: %s has type %s", ErrUnsupportedUniform, u.Name, u.Type)
	}
	if u.Size > 1 {
		return ResourceSlot{}, fmt.Errorf("%w: sampler array %s", ErrUnsupportedUniform, u.Name)
	}

	return ResourceSlot{
		Identifier: NewIdentifier(u.Name),
		Kind:       SlotTextureSampler,
		Sampler: TextureSamplerSlot{
			Location: r.UniformLocation(p, u.Name),
			Kind:     kind,
		},
	}, nil
}
