package resources

import (
	"fmt"
	"reflect"

	"github.com/gogpu/glitz/interfaceblock"
	"github.com/gogpu/glitz/internal/fnvhash"
	"github.com/gogpu/glitz/reflection"
)

// Kind is the kind of a declared resource.
type Kind uint8

// Resource kinds.
const (
	KindBuffer Kind = iota + 1
	KindTexture
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Declaration is one resource a pipeline consumes.
type Declaration struct {
	Identifier reflection.Identifier
	Kind       Kind

	// Block describes the host type of a buffer declaration.
	Block *interfaceblock.Descriptor

	// Sampler is the sampler kind of a texture declaration.
	Sampler reflection.SamplerKind

	err error
}

// BufferOf declares a uniform buffer named name holding a T.
func BufferOf[T any](name string) Declaration {
	return Buffer(name, reflect.TypeFor[T]())
}

// Buffer declares a uniform buffer named name holding a value of type t.
// Errors describing t are reported by NewLayout.
func Buffer(name string, t reflect.Type) Declaration {
	d := Declaration{Identifier: reflection.NewIdentifier(name), Kind: KindBuffer}
	d.Block, d.err = interfaceblock.Describe(t)
	return d
}

// Texture declares a sampled texture named name.
func Texture(name string, kind reflection.SamplerKind) Declaration {
	return Declaration{Identifier: reflection.NewIdentifier(name), Kind: KindTexture, Sampler: kind}
}

// Layout is an ordered set of declarations with binding indices assigned.
// Buffers get uniform buffer binding indices and textures get texture
// units, each numbered from zero in declaration order.
type Layout struct {
	decls    []Declaration
	bindings []uint32
	buffers  int
	textures int
	hash     uint64
}

// NewLayout builds a layout from declarations.
func NewLayout(decls ...Declaration) (*Layout, error) {
	l := &Layout{
		decls:    make([]Declaration, len(decls)),
		bindings: make([]uint32, len(decls)),
	}
	copy(l.decls, decls)

	seen := make(map[string]bool, len(decls))
	for i, d := range l.decls {
		if d.err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDeclaration, d.Identifier, d.err)
		}
		if d.Kind != KindBuffer && d.Kind != KindTexture {
			return nil, fmt.Errorf("%w: %q has no kind", ErrInvalidDeclaration, d.Identifier)
		}
		if d.Kind == KindBuffer && d.Block == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingBlock, d.Identifier)
		}
		name := d.Identifier.Name()
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateResource, name)
		}
		seen[name] = true

		switch d.Kind {
		case KindBuffer:
			l.bindings[i] = uint32(l.buffers)
			l.buffers++
		case KindTexture:
			l.bindings[i] = uint32(l.textures)
			l.textures++
		}
	}
	l.hash = l.computeHash()
	return l, nil
}

// Len returns the number of declarations.
func (l *Layout) Len() int { return len(l.decls) }

// Declaration returns the i-th declaration.
func (l *Layout) Declaration(i int) Declaration { return l.decls[i] }

// Binding returns the binding index or texture unit of the i-th declaration.
func (l *Layout) Binding(i int) uint32 { return l.bindings[i] }

// Buffers returns the number of buffer declarations.
func (l *Layout) Buffers() int { return l.buffers }

// Textures returns the number of texture declarations.
func (l *Layout) Textures() int { return l.textures }

// Hash returns the FNV-1a hash of the layout.
func (l *Layout) Hash() uint64 { return l.hash }

// Lookup returns the index of the declaration with the given identifier.
func (l *Layout) Lookup(id reflection.Identifier) (int, bool) {
	for i, d := range l.decls {
		if d.Identifier.Equal(id) {
			return i, true
		}
	}
	return -1, false
}

func (l *Layout) computeHash() uint64 {
	h := fnvhash.New()
	for _, d := range l.decls {
		fnvhash.WriteString(h, d.Identifier.Name())
		fnvhash.WriteUint32(h, uint32(d.Kind))
		if d.Kind == KindTexture {
			fnvhash.WriteUint32(h, uint32(d.Sampler))
			continue
		}
		fnvhash.WriteUint32(h, d.Block.Size())
		for _, u := range d.Block.Units() {
			fnvhash.WriteUint32(h, u.Offset)
			fnvhash.WriteUint32(h, uint32(u.Layout.Kind))
			fnvhash.WriteBool(h, u.Layout.Array)
			fnvhash.WriteUint32(h, u.Layout.Len)
			fnvhash.WriteUint32(h, u.Layout.ArrayStride)
			fnvhash.WriteUint32(h, uint32(u.Layout.Order))
			fnvhash.WriteUint32(h, u.Layout.MatrixStride)
		}
	}
	return h.Sum64()
}
