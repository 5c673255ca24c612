package glitz

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/state"
)

// SamplerDescriptor describes how a texture is sampled.
type SamplerDescriptor struct {
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	AddressModeW gputypes.AddressMode
	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode

	// Mipmaps enables sampling from mip levels, blended with MipmapFilter.
	Mipmaps      bool
	MipmapFilter gputypes.FilterMode
	LodMinClamp  float32
	LodMaxClamp  float32
}

// DefaultSampler returns linear filtering with clamp-to-edge addressing and
// no mipmapping.
func DefaultSampler() SamplerDescriptor {
	return SamplerDescriptor{
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		LodMaxClamp:  1000,
	}
}

func (d SamplerDescriptor) parameters() driver.SamplerParameters {
	return driver.SamplerParameters{
		MinFilter: minFilter(d.MinFilter, d.Mipmaps, d.MipmapFilter),
		MagFilter: magFilter(d.MagFilter),
		WrapS:     wrap(d.AddressModeU),
		WrapT:     wrap(d.AddressModeV),
		WrapR:     wrap(d.AddressModeW),
		MinLOD:    d.LodMinClamp,
		MaxLOD:    d.LodMaxClamp,
	}
}

func magFilter(f gputypes.FilterMode) driver.Filter {
	if f == gputypes.FilterModeNearest {
		return driver.FilterNearest
	}
	return driver.FilterLinear
}

func minFilter(f gputypes.FilterMode, mipmaps bool, mip gputypes.FilterMode) driver.Filter {
	nearest := f == gputypes.FilterModeNearest
	mipNearest := mip == gputypes.FilterModeNearest
	switch {
	case !mipmaps && nearest:
		return driver.FilterNearest
	case !mipmaps:
		return driver.FilterLinear
	case nearest && mipNearest:
		return driver.FilterNearestMipmapNearest
	case nearest:
		return driver.FilterNearestMipmapLinear
	case mipNearest:
		return driver.FilterLinearMipmapNearest
	default:
		return driver.FilterLinearMipmapLinear
	}
}

func wrap(m gputypes.AddressMode) driver.Wrap {
	switch m {
	case gputypes.AddressModeRepeat:
		return driver.WrapRepeat
	case gputypes.AddressModeMirrorRepeat:
		return driver.WrapMirroredRepeat
	default:
		return driver.WrapClampToEdge
	}
}

func compareFunc(f gputypes.CompareFunction) driver.CompareFunc {
	switch f {
	case gputypes.CompareFunctionNever:
		return driver.CompareNever
	case gputypes.CompareFunctionLess:
		return driver.CompareLess
	case gputypes.CompareFunctionEqual:
		return driver.CompareEqual
	case gputypes.CompareFunctionGreater:
		return driver.CompareGreater
	case gputypes.CompareFunctionNotEqual:
		return driver.CompareNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return driver.CompareGreaterEqual
	case gputypes.CompareFunctionAlways:
		return driver.CompareAlways
	default:
		return driver.CompareLessEqual
	}
}

// Sampler is a sampler object owned by a context.
type Sampler struct {
	ctx      *Context
	id       driver.SamplerID
	handle   state.Handle
	params   driver.SamplerParameters
	released atomic.Bool
}

// CreateSampler creates a sampler for float and integer textures.
func (c *Context) CreateSampler(desc SamplerDescriptor) (*Sampler, error) {
	return c.createSampler(desc.parameters())
}

// CreateShadowSampler creates a sampler that compares depth texels against
// a reference with compare.
func (c *Context) CreateShadowSampler(desc SamplerDescriptor, compare gputypes.CompareFunction) (*Sampler, error) {
	p := desc.parameters()
	p.Compare = true
	p.CompareFunc = compareFunc(compare)
	return c.createSampler(p)
}

func (c *Context) createSampler(p driver.SamplerParameters) (*Sampler, error) {
	s := &Sampler{ctx: c, params: p}
	err := c.do(func(conn *state.Connection) error {
		id, err := conn.Device().CreateSampler()
		if err != nil {
			return fmt.Errorf("glitz: create sampler: %w", err)
		}
		s.id = id
		s.handle = conn.Track(driver.ObjectSampler, uint64(id))
		conn.Device().SetSamplerParameters(id, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ContextID returns the id of the owning context.
func (s *Sampler) ContextID() uint64 { return s.ctx.ID() }

// SamplerID returns the driver sampler id.
func (s *Sampler) SamplerID() driver.SamplerID { return s.id }

// IsShadow reports whether the sampler compares depth.
func (s *Sampler) IsShadow() bool { return s.params.Compare }

// Release queues the sampler for deletion. Release is idempotent.
func (s *Sampler) Release() {
	if s.released.Swap(true) {
		return
	}
	s.ctx.conn.Release(s.handle)
}
