package resources

import (
	"fmt"

	"github.com/gogpu/glitz/driver"
)

// BufferResource is a GPU buffer that can back a uniform block.
type BufferResource interface {
	// ContextID is the id of the context that owns the buffer.
	ContextID() uint64
	BufferID() driver.BufferID

	// ByteSize is the size of the buffer's data store.
	ByteSize() int
}

// TextureResource is a texture that can be sampled.
type TextureResource interface {
	ContextID() uint64
	TextureID() driver.TextureID
	Target() driver.TextureTarget

	// SampleClass is the kind of value sampling the texture yields.
	SampleClass() driver.SampleClass
}

// SamplerResource is a sampler object.
type SamplerResource interface {
	ContextID() uint64
	SamplerID() driver.SamplerID
}

// Entry assigns a resource value to a declaration.
type Entry struct {
	name    string
	kind    Kind
	buffer  BufferResource
	offset  int
	size    int
	ranged  bool
	texture TextureResource
	sampler SamplerResource
}

// BufferEntry binds the start of buf to the buffer declared as name. The
// bound size is the size of the declared block.
func BufferEntry(name string, buf BufferResource) Entry {
	return Entry{name: name, kind: KindBuffer, buffer: buf}
}

// BufferRangeEntry binds size bytes of buf starting at offset to the buffer
// declared as name.
func BufferRangeEntry(name string, buf BufferResource, offset, size int) Entry {
	return Entry{name: name, kind: KindBuffer, buffer: buf, offset: offset, size: size, ranged: true}
}

// TextureEntry binds tex sampled with s to the texture declared as name.
func TextureEntry(name string, tex TextureResource, s SamplerResource) Entry {
	return Entry{name: name, kind: KindTexture, texture: tex, sampler: s}
}

// Group is a complete set of resource values for a layout.
type Group struct {
	layout  *Layout
	entries []Entry
}

// NewGroup assigns entries to the declarations of layout. Every declaration
// needs exactly one entry of its kind.
func NewGroup(layout *Layout, entries ...Entry) (*Group, error) {
	g := &Group{layout: layout, entries: make([]Entry, layout.Len())}
	set := make([]bool, layout.Len())

	for _, e := range entries {
		i := -1
		for j, d := range layout.decls {
			if d.Identifier.Name() == e.name {
				i = j
				break
			}
		}
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntry, e.name)
		}
		if set[i] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateResource, e.name)
		}
		d := layout.decls[i]
		if d.Kind != e.kind {
			return nil, fmt.Errorf("%w: %q is declared as a %s", ErrEntryKind, e.name, d.Kind)
		}
		if err := checkEntry(d, &e); err != nil {
			return nil, err
		}
		g.entries[i] = e
		set[i] = true
	}
	for i, ok := range set {
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingEntry, layout.decls[i].Identifier)
		}
	}
	return g, nil
}

func checkEntry(d Declaration, e *Entry) error {
	switch e.kind {
	case KindBuffer:
		if e.buffer == nil {
			return fmt.Errorf("%w: %q has no buffer", ErrBufferRange, e.name)
		}
		if !e.ranged {
			e.size = int(d.Block.Size())
		}
		if e.offset < 0 || e.size < int(d.Block.Size()) || e.offset+e.size > e.buffer.ByteSize() {
			return fmt.Errorf("%w: %q: range [%d, %d) of a %d byte buffer, block needs %d bytes",
				ErrBufferRange, e.name, e.offset, e.offset+e.size, e.buffer.ByteSize(), d.Block.Size())
		}
	case KindTexture:
		if e.texture == nil || e.sampler == nil {
			return fmt.Errorf("%w: %q needs a texture and a sampler", ErrTextureMismatch, e.name)
		}
		if e.texture.Target() != d.Sampler.Target() {
			return fmt.Errorf("%w: %q is a %v, %v needs a %v",
				ErrTextureMismatch, e.name, e.texture.Target(), d.Sampler, d.Sampler.Target())
		}
		if !sampleable(d.Sampler.SampleClass(), e.texture.SampleClass()) {
			return fmt.Errorf("%w: %q cannot be sampled by a %v", ErrTextureMismatch, e.name, d.Sampler)
		}
	}
	return nil
}

// sampleable reports whether a sampler of class want can sample a texture
// of class have. Depth textures may also be read by float samplers.
func sampleable(want, have driver.SampleClass) bool {
	return want == have || (want == driver.SampleFloat && have == driver.SampleDepth)
}

// Layout returns the layout the group was built for.
func (g *Group) Layout() *Layout { return g.layout }

// Encode produces the binding descriptors of the group in declaration order.
// Every resource must belong to the context with the given id.
func (g *Group) Encode(contextID uint64) ([]BindingDescriptor, error) {
	out := make([]BindingDescriptor, 0, len(g.entries))
	for i, e := range g.entries {
		binding := g.layout.bindings[i]
		switch e.kind {
		case KindBuffer:
			if e.buffer.ContextID() != contextID {
				return nil, fmt.Errorf("%w: buffer %q", ErrForeignResource, e.name)
			}
			out = append(out, BindingDescriptor{
				Kind:   BufferView,
				Index:  binding,
				Buffer: e.buffer.BufferID(),
				Offset: e.offset,
				Size:   e.size,
			})
		case KindTexture:
			if e.texture.ContextID() != contextID {
				return nil, fmt.Errorf("%w: texture %q", ErrForeignResource, e.name)
			}
			if e.sampler.ContextID() != contextID {
				return nil, fmt.Errorf("%w: sampler of %q", ErrForeignResource, e.name)
			}
			out = append(out, BindingDescriptor{
				Kind:    SampledTexture,
				Index:   binding,
				Texture: e.texture.TextureID(),
				Target:  e.texture.Target(),
				Sampler: e.sampler.SamplerID(),
			})
		}
	}
	return out, nil
}
