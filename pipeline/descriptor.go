package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/internal/fnvhash"
	"github.com/gogpu/glitz/resources"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/vertex"
)

// PrimitiveAssembly is how vertices are assembled into primitives and which
// of them are culled.
type PrimitiveAssembly struct {
	Topology  gputypes.PrimitiveTopology
	FrontFace gputypes.FrontFace
	CullMode  gputypes.CullMode

	// LineWidth applies to line topologies. Zero means 1.
	LineWidth float32
}

// Triangles returns triangle-list assembly with counter-clockwise front
// faces and no culling.
func Triangles() PrimitiveAssembly {
	return PrimitiveAssembly{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
}

// Rasterizer overrides the face culling and line state of the primitive
// assembly.
type Rasterizer struct {
	FrontFace gputypes.FrontFace
	CullMode  gputypes.CullMode
	LineWidth float32
}

// DepthTest configures depth testing.
type DepthTest struct {
	Compare gputypes.CompareFunction
	Write   bool

	// Near and Far map normalized depth to window depth. Both zero means
	// the default range [0, 1].
	Near, Far float32
}

// Blending configures color blending.
type Blending struct {
	State    gputypes.BlendState
	Constant [4]float32
}

// Descriptor is a complete, immutable pipeline description.
type Descriptor struct {
	vertexShader   *Shader
	fragmentShader *Shader
	primitive      PrimitiveAssembly
	vertexLayout   vertex.Layout
	resourceLayout *resources.Layout
	depth          *DepthTest
	blend          *Blending
	writeMask      gputypes.ColorWriteMask
	viewport       *state.Rect
	hash           uint64
}

// VertexShader returns the vertex shader.
func (d *Descriptor) VertexShader() *Shader { return d.vertexShader }

// FragmentShader returns the fragment shader.
func (d *Descriptor) FragmentShader() *Shader { return d.fragmentShader }

// PrimitiveAssembly returns the primitive assembly state.
func (d *Descriptor) PrimitiveAssembly() PrimitiveAssembly { return d.primitive }

// VertexInputLayout returns the vertex input layout.
func (d *Descriptor) VertexInputLayout() vertex.Layout { return d.vertexLayout }

// ResourceLayout returns the resource layout.
func (d *Descriptor) ResourceLayout() *resources.Layout { return d.resourceLayout }

// DepthTest returns the depth test, or nil if depth testing is disabled.
func (d *Descriptor) DepthTest() *DepthTest { return d.depth }

// Blending returns the blend state, or nil if blending is disabled.
func (d *Descriptor) Blending() *Blending { return d.blend }

// Viewport returns the fixed viewport, or nil if the pipeline leaves the
// viewport unchanged.
func (d *Descriptor) Viewport() *state.Rect { return d.viewport }

// Hash returns the FNV-1a hash of the descriptor.
func (d *Descriptor) Hash() uint64 { return d.hash }

// DescriptorBuilder assembles a Descriptor.
type DescriptorBuilder struct {
	d            Descriptor
	hasPrimitive bool
	rasterizer   *Rasterizer
}

// NewDescriptorBuilder returns a builder with no vertex inputs, no
// resources, depth testing and blending disabled and all color channels
// written.
func NewDescriptorBuilder() *DescriptorBuilder {
	return &DescriptorBuilder{d: Descriptor{writeMask: gputypes.ColorWriteMaskAll}}
}

// VertexShader sets the vertex shader. Required.
func (b *DescriptorBuilder) VertexShader(s *Shader) *DescriptorBuilder {
	b.d.vertexShader = s
	return b
}

// FragmentShader sets the fragment shader. Required.
func (b *DescriptorBuilder) FragmentShader(s *Shader) *DescriptorBuilder {
	b.d.fragmentShader = s
	return b
}

// PrimitiveAssembly sets the primitive assembly state. Required.
func (b *DescriptorBuilder) PrimitiveAssembly(p PrimitiveAssembly) *DescriptorBuilder {
	b.d.primitive = p
	b.hasPrimitive = true
	return b
}

// Rasterizer sets the culling and line state independently of the order in
// which PrimitiveAssembly is called. Topology is unaffected.
func (b *DescriptorBuilder) Rasterizer(r Rasterizer) *DescriptorBuilder {
	b.rasterizer = &r
	return b
}

// VertexInputLayout sets the vertex input layout.
func (b *DescriptorBuilder) VertexInputLayout(l vertex.Layout) *DescriptorBuilder {
	b.d.vertexLayout = l
	return b
}

// ResourceLayout sets the resource layout.
func (b *DescriptorBuilder) ResourceLayout(l *resources.Layout) *DescriptorBuilder {
	b.d.resourceLayout = l
	return b
}

// DepthTest enables depth testing.
func (b *DescriptorBuilder) DepthTest(t DepthTest) *DescriptorBuilder {
	b.d.depth = &t
	return b
}

// Blending enables blending.
func (b *DescriptorBuilder) Blending(bl Blending) *DescriptorBuilder {
	b.d.blend = &bl
	return b
}

// ColorWriteMask sets the color channels written.
func (b *DescriptorBuilder) ColorWriteMask(m gputypes.ColorWriteMask) *DescriptorBuilder {
	b.d.writeMask = m
	return b
}

// Viewport fixes the viewport used by draws with the pipeline.
func (b *DescriptorBuilder) Viewport(r state.Rect) *DescriptorBuilder {
	b.d.viewport = &r
	return b
}

// Finish returns the descriptor. Vertex shader, fragment shader and
// primitive assembly must have been set.
func (b *DescriptorBuilder) Finish() (*Descriptor, error) {
	switch {
	case b.d.vertexShader == nil:
		return nil, ErrMissingVertexShader
	case b.d.fragmentShader == nil:
		return nil, ErrMissingFragmentShader
	case !b.hasPrimitive:
		return nil, ErrMissingPrimitiveAssembly
	}
	if b.d.resourceLayout == nil {
		empty, err := resources.NewLayout()
		if err != nil {
			return nil, err
		}
		b.d.resourceLayout = empty
	}
	d := b.d
	if r := b.rasterizer; r != nil {
		d.primitive.FrontFace = r.FrontFace
		d.primitive.CullMode = r.CullMode
		d.primitive.LineWidth = r.LineWidth
	}
	d.hash = hashDescriptor(&d)
	return &d, nil
}

func hashDescriptor(d *Descriptor) uint64 {
	h := fnvhash.New()
	fnvhash.WriteUint64(h, d.vertexShader.hash)
	fnvhash.WriteUint64(h, d.fragmentShader.hash)

	fnvhash.WriteUint32(h, uint32(d.primitive.Topology))
	fnvhash.WriteUint32(h, uint32(d.primitive.FrontFace))
	fnvhash.WriteUint32(h, uint32(d.primitive.CullMode))
	fnvhash.WriteFloat32(h, d.primitive.LineWidth)

	fnvhash.WriteUint64(h, d.vertexLayout.Hash())
	fnvhash.WriteUint64(h, d.resourceLayout.Hash())

	fnvhash.WriteBool(h, d.depth != nil)
	if d.depth != nil {
		fnvhash.WriteUint32(h, uint32(d.depth.Compare))
		fnvhash.WriteBool(h, d.depth.Write)
		fnvhash.WriteFloat32(h, d.depth.Near)
		fnvhash.WriteFloat32(h, d.depth.Far)
	}

	fnvhash.WriteBool(h, d.blend != nil)
	if d.blend != nil {
		for _, c := range []gputypes.BlendComponent{d.blend.State.Color, d.blend.State.Alpha} {
			fnvhash.WriteUint32(h, uint32(c.SrcFactor))
			fnvhash.WriteUint32(h, uint32(c.DstFactor))
			fnvhash.WriteUint32(h, uint32(c.Operation))
		}
		for _, v := range d.blend.Constant {
			fnvhash.WriteFloat32(h, v)
		}
	}
	fnvhash.WriteUint32(h, uint32(d.writeMask))

	fnvhash.WriteBool(h, d.viewport != nil)
	if d.viewport != nil {
		for _, v := range []int32{d.viewport.X, d.viewport.Y, d.viewport.Width, d.viewport.Height} {
			fnvhash.WriteUint32(h, uint32(v))
		}
	}
	return h.Sum64()
}
