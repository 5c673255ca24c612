package reflection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/memlayout"
)

type fakeReflector struct {
	attributes []driver.AttributeInfo
	uniforms   []driver.UniformInfo
	blocks     []driver.UniformBlockInfo
	locations  map[string]driver.UniformLocation
	err        error
}

func (f *fakeReflector) ActiveAttributes(driver.ProgramID) ([]driver.AttributeInfo, error) {
	return f.attributes, f.err
}

func (f *fakeReflector) ActiveUniforms(driver.ProgramID) ([]driver.UniformInfo, error) {
	return f.uniforms, f.err
}

func (f *fakeReflector) ActiveUniformBlocks(driver.ProgramID) ([]driver.UniformBlockInfo, error) {
	return f.blocks, f.err
}

func (f *fakeReflector) UniformLocation(_ driver.ProgramID, name string) driver.UniformLocation {
	if loc, ok := f.locations[name]; ok {
		return loc
	}
	return driver.NoLocation
}

func member(name string, typ driver.TypeID, size int, offset int32) driver.UniformInfo {
	return driver.UniformInfo{Name: name, Type: typ, Size: size, BlockIndex: 0, Offset: offset, ArrayStride: -1, MatrixStride: -1}
}

func standalone(name string, typ driver.TypeID) driver.UniformInfo {
	return driver.UniformInfo{Name: name, Type: typ, Size: 1, BlockIndex: -1, Offset: -1, ArrayStride: -1, MatrixStride: -1}
}

func TestReflect(t *testing.T) {
	weights := member("Material.weights[0]", driver.TypeFloat, 4, 64)
	weights.ArrayStride = 16
	model := member("Material.model", driver.TypeFloatMat4, 1, 0)
	model.MatrixStride = 16
	model.RowMajor = true
	single := member("Material.single[0]", driver.TypeFloatVec2, 1, 128)
	single.ArrayStride = 16

	f := &fakeReflector{
		attributes: []driver.AttributeInfo{
			{Name: "normal", Type: driver.TypeFloatVec3, Size: 1, Location: 1},
			{Name: "gl_VertexID", Type: driver.TypeInt, Size: 1, Location: -1},
			{Name: "position", Type: driver.TypeFloatVec2, Size: 1, Location: 0},
		},
		uniforms: []driver.UniformInfo{
			weights,
			standalone("albedo", driver.TypeSampler2D),
			model,
			single,
			standalone("shadow", driver.TypeSampler2DShadow),
		},
		blocks: []driver.UniformBlockInfo{
			{Name: "Material", Index: 0, DataSize: 144, ActiveUniforms: []uint32{0, 2, 3}},
		},
		locations: map[string]driver.UniformLocation{"albedo": 3, "shadow": 5},
	}

	prog, err := Reflect(f, 1)
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}

	wantAttrs := []AttributeSlot{
		{Name: "position", Location: 0, Type: AttributeFloatVector2},
		{Name: "normal", Location: 1, Type: AttributeFloatVector3},
	}
	if !reflect.DeepEqual(prog.Attributes, wantAttrs) {
		t.Errorf("Attributes = %v, want %v", prog.Attributes, wantAttrs)
	}

	if len(prog.Resources) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(prog.Resources))
	}

	block := prog.Resources[0]
	if block.Kind != SlotUniformBlock || block.Identifier.Name() != "Material" {
		t.Fatalf("Resources[0] = %v %v, want uniform block Material", block.Kind, block.Identifier)
	}
	wantUnits := []memlayout.MemoryUnit{
		{Offset: 0, Layout: memlayout.Matrix(memlayout.Matrix4x4, memlayout.RowMajor, 16)},
		{Offset: 64, Layout: memlayout.ScalarArray(memlayout.Float, 16, 4)},
		{Offset: 128, Layout: memlayout.ScalarArray(memlayout.FloatVector2, 16, 1)},
	}
	if !reflect.DeepEqual(block.Block.Units, wantUnits) {
		t.Errorf("Units = %v, want %v", block.Block.Units, wantUnits)
	}
	if block.Block.DataSize != 144 {
		t.Errorf("DataSize = %d, want 144", block.Block.DataSize)
	}

	albedo, ok := prog.Resource(NewIdentifier("albedo"))
	if !ok {
		t.Fatal("expected albedo sampler slot")
	}
	if albedo.Kind != SlotTextureSampler || albedo.Sampler.Kind != FloatSampler2D || albedo.Sampler.Location != 3 {
		t.Errorf("albedo = %+v", albedo)
	}
	shadow, _ := prog.Resource(NewIdentifier("shadow"))
	if shadow.Sampler.Kind != Sampler2DShadow || !shadow.Sampler.Kind.IsShadow() {
		t.Errorf("shadow kind = %v, want sampler2DShadow", shadow.Sampler.Kind)
	}
}

func TestReflectErrors(t *testing.T) {
	samplerArray := standalone("textures", driver.TypeSampler2D)
	samplerArray.Size = 4

	tests := []struct {
		name string
		f    *fakeReflector
		want error
	}{
		{
			name: "standalone float",
			f:    &fakeReflector{uniforms: []driver.UniformInfo{standalone("time", driver.TypeFloat)}},
			want: ErrStandaloneUniform,
		},
		{
			name: "unknown standalone type",
			f:    &fakeReflector{uniforms: []driver.UniformInfo{standalone("img", driver.TypeID(0x9999))}},
			want: ErrUnsupportedUniform,
		},
		{
			name: "unknown block member type",
			f: &fakeReflector{
				uniforms: []driver.UniformInfo{member("B.x", driver.TypeSampler2D, 1, 0)},
				blocks:   []driver.UniformBlockInfo{{Name: "B", ActiveUniforms: []uint32{0}}},
			},
			want: ErrUnsupportedUniform,
		},
		{
			name: "sampler array",
			f:    &fakeReflector{uniforms: []driver.UniformInfo{samplerArray}},
			want: ErrUnsupportedUniform,
		},
		{
			name: "bool attribute",
			f: &fakeReflector{attributes: []driver.AttributeInfo{
				{Name: "flag", Type: driver.TypeBool, Size: 1, Location: 0},
			}},
			want: ErrUnsupportedAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reflect(tt.f, 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestReflectDriverError(t *testing.T) {
	lost := errors.New("lost")
	_, err := Reflect(&fakeReflector{err: lost}, 1)
	if !errors.Is(err, lost) {
		t.Errorf("expected wrapped driver error, got %v", err)
	}
}

func TestIdentifier(t *testing.T) {
	a := NewIdentifier("transform")
	b := NewIdentifier("transform")
	c := NewIdentifier("material")

	if !a.Equal(b) || a != b {
		t.Error("identifiers with the same name must be equal")
	}
	if a.Equal(c) {
		t.Error("identifiers with different names must differ")
	}

	// A forged hash collision must still compare names.
	forged := Identifier{hash: a.Hash(), name: "other"}
	if a.Equal(forged) {
		t.Error("equal hashes with different names must not be equal")
	}
}

func TestSamplerKindTable(t *testing.T) {
	tests := []struct {
		kind   SamplerKind
		target driver.TextureTarget
		class  driver.SampleClass
	}{
		{FloatSampler2D, driver.Texture2D, driver.SampleFloat},
		{IntegerSampler3D, driver.Texture3D, driver.SampleSint},
		{UnsignedIntegerSamplerCube, driver.TextureCubeMap, driver.SampleUint},
		{Sampler2DArrayShadow, driver.Texture2DArray, driver.SampleDepth},
	}
	for _, tt := range tests {
		if got := tt.kind.Target(); got != tt.target {
			t.Errorf("%v.Target() = %v, want %v", tt.kind, got, tt.target)
		}
		if got := tt.kind.SampleClass(); got != tt.class {
			t.Errorf("%v.SampleClass() = %v, want %v", tt.kind, got, tt.class)
		}
	}

	if len(samplerTypes) != 15 {
		t.Errorf("expected 15 sampler types, got %d", len(samplerTypes))
	}
	if len(attributeTypes) != 21 {
		t.Errorf("expected 21 attribute types, got %d", len(attributeTypes))
	}
}

func TestAttributeTypeLocations(t *testing.T) {
	if got := AttributeFloatMatrix3x4.Locations(); got != 3 {
		t.Errorf("mat3x4 Locations() = %d, want 3", got)
	}
	if got := AttributeFloatVector4.Locations(); got != 1 {
		t.Errorf("vec4 Locations() = %d, want 1", got)
	}
}

type recordingBinder struct {
	blocks   [][3]uint32
	uniforms map[driver.UniformLocation]int32
}

func (r *recordingBinder) UniformBlockBinding(p driver.ProgramID, blockIndex, binding uint32) {
	r.blocks = append(r.blocks, [3]uint32{uint32(p), blockIndex, binding})
}

func (r *recordingBinder) Uniform1i(loc driver.UniformLocation, v int32) {
	r.uniforms[loc] = v
}

func TestAssignBindings(t *testing.T) {
	b := &recordingBinder{uniforms: map[driver.UniformLocation]int32{}}
	AssignUniformBlockBinding(b, 7, UniformBlockSlot{Index: 2}, 5)
	AssignTextureUnit(b, TextureSamplerSlot{Location: 4}, 3)

	if len(b.blocks) != 1 || b.blocks[0] != [3]uint32{7, 2, 5} {
		t.Errorf("block bindings = %v", b.blocks)
	}
	if b.uniforms[4] != 3 {
		t.Errorf("uniform at 4 = %d, want 3", b.uniforms[4])
	}
}
