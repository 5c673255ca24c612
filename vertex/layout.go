package vertex

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/internal/fnvhash"
	"github.com/gogpu/glitz/reflection"
)

// InputRate is the rate at which a buffer slot advances.
type InputRate uint8

// Input rates.
const (
	PerVertex InputRate = iota
	PerInstance
)

// String returns the rate name.
func (r InputRate) String() string {
	if r == PerInstance {
		return "per-instance"
	}
	return "per-vertex"
}

// AttributeDescriptor places one attribute within a buffer slot.
type AttributeDescriptor struct {
	Location uint32
	Offset   int
	Format   Format
}

// LayoutElement is one element of a layout's flat encoding: either the
// start of the next buffer slot or an attribute of the current slot.
type LayoutElement struct {
	NextBindSlot bool

	// Stride and Rate are set when NextBindSlot is true.
	Stride int
	Rate   InputRate

	// Attribute is set when NextBindSlot is false.
	Attribute AttributeDescriptor
}

type bindSlot struct {
	stride int
	rate   InputRate
}

// Layout describes the attributes of one or more vertex buffer slots.
//
// It is stored as a flat element list. The first slot is kept apart so the
// list never starts with a slot marker. Layouts are immutable.
type Layout struct {
	initial  *bindSlot
	elements []LayoutElement
	hash     uint64
}

// Hash returns the FNV-1a hash of the layout.
func (l Layout) Hash() uint64 { return l.hash }

// Elements returns the flat encoding, excluding the first slot's marker.
func (l Layout) Elements() []LayoutElement { return l.elements }

// BufferSlot is a vertex buffer slot with its attributes.
type BufferSlot struct {
	Index      int
	Stride     int
	Rate       InputRate
	Attributes []AttributeDescriptor
}

// BufferSlots returns the layout's slots in bind order.
func (l Layout) BufferSlots() []BufferSlot {
	if l.initial == nil {
		return nil
	}
	slots := []BufferSlot{{Index: 0, Stride: l.initial.stride, Rate: l.initial.rate}}
	for _, e := range l.elements {
		if e.NextBindSlot {
			slots = append(slots, BufferSlot{Index: len(slots), Stride: e.Stride, Rate: e.Rate})
			continue
		}
		cur := &slots[len(slots)-1]
		cur.Attributes = append(cur.Attributes, e.Attribute)
	}
	return slots
}

// Attribute returns the attribute at location and the index of its slot.
func (l Layout) Attribute(location uint32) (AttributeDescriptor, int, bool) {
	slot := 0
	for _, e := range l.elements {
		if e.NextBindSlot {
			slot++
			continue
		}
		if e.Attribute.Location == location {
			return e.Attribute, slot, true
		}
	}
	return AttributeDescriptor{}, 0, false
}

// CheckCompatibility checks that the layout provides every attribute slot
// of a program with a compatible format. Attributes the program does not
// read are allowed.
func (l Layout) CheckCompatibility(slots []reflection.AttributeSlot) error {
	for _, s := range slots {
		a, _, ok := l.Attribute(s.Location)
		if !ok {
			return &IncompatibleError{Kind: MissingAttribute, Location: s.Location, Name: s.Name, Type: s.Type}
		}
		if !a.Format.IsCompatible(s.Type) {
			return &IncompatibleError{Kind: TypeMismatch, Location: s.Location, Name: s.Name, Type: s.Type, Format: a.Format}
		}
	}
	return nil
}

// GPULayouts converts the layout to WebGPU vertex buffer layouts.
func (l Layout) GPULayouts() ([]gputypes.VertexBufferLayout, error) {
	slots := l.BufferSlots()
	out := make([]gputypes.VertexBufferLayout, 0, len(slots))
	for _, s := range slots {
		gl := gputypes.VertexBufferLayout{
			ArrayStride: uint64(s.Stride),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  make([]gputypes.VertexAttribute, 0, len(s.Attributes)),
		}
		if s.Rate == PerInstance {
			gl.StepMode = gputypes.VertexStepModeInstance
		}
		for _, a := range s.Attributes {
			f, ok := a.Format.GPUFormat()
			if !ok {
				return nil, fmt.Errorf("%w: %s at location %d", ErrNoGPUFormat, a.Format, a.Location)
			}
			gl.Attributes = append(gl.Attributes, gputypes.VertexAttribute{
				Format:         f,
				Offset:         uint64(a.Offset),
				ShaderLocation: a.Location,
			})
		}
		out = append(out, gl)
	}
	return out, nil
}

// LayoutBuilder builds a Layout slot by slot.
type LayoutBuilder struct {
	initial  *bindSlot
	elements []LayoutElement
	slots    int
	err      error
}

// NewLayoutBuilder returns an empty builder.
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{}
}

// AddBufferSlot starts a new buffer slot.
func (b *LayoutBuilder) AddBufferSlot(stride int, rate InputRate) *SlotBuilder {
	if b.initial == nil {
		b.initial = &bindSlot{stride: stride, rate: rate}
	} else {
		b.elements = append(b.elements, LayoutElement{NextBindSlot: true, Stride: stride, Rate: rate})
	}
	b.slots++
	return &SlotBuilder{b: b, slot: b.slots - 1, stride: stride}
}

// SlotBuilder adds attributes to the slot most recently added to a
// LayoutBuilder.
type SlotBuilder struct {
	b      *LayoutBuilder
	slot   int
	stride int
}

// AddAttribute adds an attribute to the slot. It panics if the attribute
// does not fit within the slot's stride, or if another slot has been added
// to the LayoutBuilder since this one.
func (s *SlotBuilder) AddAttribute(a AttributeDescriptor) *SlotBuilder {
	if s.slot != s.b.slots-1 {
		panic("vertex: attribute added to a slot that is no longer the last")
	}
	if !a.Format.Valid() {
		if s.b.err == nil {
			s.b.err = fmt.Errorf("%w: %v at location %d", ErrInvalidFormat, a.Format, a.Location)
		}
		return s
	}
	if a.Offset < 0 || a.Offset+a.Format.Size() > s.stride {
		panic("vertex: attribute does not fit within stride")
	}
	s.b.elements = append(s.b.elements, LayoutElement{Attribute: a})
	return s
}

// Finish validates the layout. Attribute locations, including the extra
// locations taken by matrix columns, must be unique across all slots.
func (b *LayoutBuilder) Finish() (Layout, error) {
	if b.err != nil {
		return Layout{}, b.err
	}

	used := make(map[uint32]struct{})
	for _, e := range b.elements {
		if e.NextBindSlot {
			continue
		}
		a := e.Attribute
		for i := 0; i < a.Format.Locations(); i++ {
			loc := a.Location + uint32(i)
			if _, dup := used[loc]; dup {
				return Layout{}, fmt.Errorf("%w: %d", ErrDuplicateLocation, loc)
			}
			used[loc] = struct{}{}
		}
	}

	l := Layout{initial: b.initial, elements: b.elements}
	l.hash = l.computeHash()
	return l, nil
}

func (l Layout) computeHash() uint64 {
	h := fnvhash.New()
	if l.initial != nil {
		fnvhash.WriteUint32(h, uint32(l.initial.stride))
		fnvhash.WriteUint32(h, uint32(l.initial.rate))
	}
	for _, e := range l.elements {
		fnvhash.WriteBool(h, e.NextBindSlot)
		if e.NextBindSlot {
			fnvhash.WriteUint32(h, uint32(e.Stride))
			fnvhash.WriteUint32(h, uint32(e.Rate))
			continue
		}
		fnvhash.WriteUint32(h, e.Attribute.Location)
		fnvhash.WriteUint32(h, uint32(e.Attribute.Offset))
		fnvhash.WriteUint32(h, uint32(e.Attribute.Format))
	}
	return h.Sum64()
}
