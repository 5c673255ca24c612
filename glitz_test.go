package glitz

import (
	"testing"

	"github.com/gogpu/glitz/driver/headless"
	"github.com/gogpu/glitz/pipeline"
	"github.com/gogpu/glitz/reflection"
	"github.com/gogpu/glitz/resources"
	"github.com/gogpu/glitz/std140"
	"github.com/gogpu/glitz/vertex"
)

const triangleVertex = `
struct Camera {
    view_proj: mat4x4<f32>,
    tint: vec3<f32>,
    exposure: f32,
}

@group(0) @binding(0) var<uniform> camera: Camera;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@location(0) position: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = camera.view_proj * vec4<f32>(position.x, position.y, 0.0, 1.0);
    out.uv = uv;
    return out;
}
`

const triangleFragment = `
@group(0) @binding(1) var albedo: texture_2d<f32>;
@group(0) @binding(2) var albedo_sampler: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@fragment
fn fs_main(input: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(albedo, albedo_sampler, input.uv);
}
`

type camera struct {
	ViewProj std140.Mat4
	Tint     std140.Vec3
	Exposure float32
}

type quadVertex struct {
	Position [2]float32 `vertex:"0,float2_f32"`
	UV       [2]float32 `vertex:"1,float2_f32"`
}

var quad = []quadVertex{
	{Position: [2]float32{-1, -1}, UV: [2]float32{0, 0}},
	{Position: [2]float32{1, -1}, UV: [2]float32{1, 0}},
	{Position: [2]float32{1, 1}, UV: [2]float32{1, 1}},
	{Position: [2]float32{-1, 1}, UV: [2]float32{0, 1}},
}

// =============================================================================
// Helpers
// =============================================================================

func newTestContext(t *testing.T, devOpts []headless.Option, opts ...ContextOption) (*Context, *headless.Device) {
	t.Helper()
	dev := headless.New(devOpts...)
	c := NewContext(dev, opts...)
	t.Cleanup(c.Close)
	return c, dev
}

func sceneLayout(t *testing.T) *resources.Layout {
	t.Helper()
	l, err := resources.NewLayout(
		resources.BufferOf[camera]("camera"),
		resources.Texture("albedo", reflection.FloatSampler2D),
	)
	if err != nil {
		t.Fatalf("resources.NewLayout: %v", err)
	}
	return l
}

func quadDescriptor(t *testing.T, c *Context) *pipeline.Descriptor {
	t.Helper()
	vs, err := c.CreateVertexShader(triangleVertex)
	if err != nil {
		t.Fatalf("CreateVertexShader: %v", err)
	}
	fs, err := c.CreateFragmentShader(triangleFragment)
	if err != nil {
		t.Fatalf("CreateFragmentShader: %v", err)
	}
	vl, err := vertex.LayoutOf(vertex.PerVertexOf[quadVertex]())
	if err != nil {
		t.Fatalf("vertex.LayoutOf: %v", err)
	}
	d, err := pipeline.NewDescriptorBuilder().
		VertexShader(vs).
		FragmentShader(fs).
		PrimitiveAssembly(pipeline.Triangles()).
		VertexInputLayout(vl).
		ResourceLayout(sceneLayout(t)).
		Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return d
}

// sceneResources creates the camera buffer, the albedo texture and its
// sampler, grouped for sceneLayout.
func sceneResources(t *testing.T, c *Context) *resources.Group {
	t.Helper()
	cam, err := NewBuffer(c, camera{ViewProj: std140.Identity4(), Exposure: 1}, DynamicDraw)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	tex, err := c.CreateTexture2D(TextureDescriptor{Format: rgba8, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("CreateTexture2D: %v", err)
	}
	smp, err := c.CreateSampler(DefaultSampler())
	if err != nil {
		t.Fatalf("CreateSampler: %v", err)
	}
	g, err := resources.NewGroup(sceneLayout(t),
		resources.BufferEntry("camera", cam),
		resources.TextureEntry("albedo", tex, smp),
	)
	if err != nil {
		t.Fatalf("resources.NewGroup: %v", err)
	}
	return g
}
