package resources

import (
	"fmt"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/state"
)

// DescriptorKind discriminates binding descriptors.
type DescriptorKind uint8

// Descriptor kinds.
const (
	BufferView DescriptorKind = iota + 1
	SampledTexture
)

// BindingDescriptor is one encoded resource binding.
//
// A BufferView binds Size bytes of Buffer at Offset to uniform buffer
// binding Index. A SampledTexture binds Texture and Sampler to texture unit
// Index.
type BindingDescriptor struct {
	Kind  DescriptorKind
	Index uint32

	Buffer driver.BufferID
	Offset int
	Size   int

	Texture driver.TextureID
	Target  driver.TextureTarget
	Sampler driver.SamplerID
}

// String returns a diagnostic representation.
func (d BindingDescriptor) String() string {
	if d.Kind == SampledTexture {
		return fmt.Sprintf("texture(unit=%d, %v %d, sampler %d)", d.Index, d.Target, d.Texture, d.Sampler)
	}
	return fmt.Sprintf("buffer(index=%d, %d[%d:%d])", d.Index, d.Buffer, d.Offset, d.Offset+d.Size)
}

// Bind applies descriptors to the connection.
func Bind(conn *state.Connection, descs []BindingDescriptor) {
	for _, d := range descs {
		switch d.Kind {
		case BufferView:
			conn.BindUniformBufferRange(d.Index, d.Buffer, d.Offset, d.Size)
		case SampledTexture:
			conn.BindTextureUnit(d.Index, d.Target, d.Texture)
			conn.BindSampler(d.Index, d.Sampler)
		}
	}
}

// BindGroup is a group encoded once for one context and reused across
// draws.
type BindGroup struct {
	contextID   uint64
	layoutHash  uint64
	descriptors []BindingDescriptor
}

// NewBindGroup encodes g for the context with the given id.
func NewBindGroup(contextID uint64, g *Group) (*BindGroup, error) {
	descs, err := g.Encode(contextID)
	if err != nil {
		return nil, err
	}
	return &BindGroup{contextID: contextID, layoutHash: g.layout.hash, descriptors: descs}, nil
}

// ContextID returns the id of the context the group was encoded for.
func (b *BindGroup) ContextID() uint64 { return b.contextID }

// LayoutHash returns the hash of the layout the group was built from.
func (b *BindGroup) LayoutHash() uint64 { return b.layoutHash }

// Descriptors returns the encoded descriptors. The slice must not be
// modified.
func (b *BindGroup) Descriptors() []BindingDescriptor { return b.descriptors }
