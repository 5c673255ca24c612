package glitz

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glitz/driver"
)

func TestSamplerParameters(t *testing.T) {
	tests := []struct {
		name string
		desc func(*SamplerDescriptor)
		want func(*driver.SamplerParameters)
	}{
		{
			name: "default",
			desc: func(*SamplerDescriptor) {},
			want: func(*driver.SamplerParameters) {},
		},
		{
			name: "nearest repeat",
			desc: func(d *SamplerDescriptor) {
				d.MagFilter = gputypes.FilterModeNearest
				d.MinFilter = gputypes.FilterModeNearest
				d.AddressModeU = gputypes.AddressModeRepeat
				d.AddressModeV = gputypes.AddressModeMirrorRepeat
			},
			want: func(p *driver.SamplerParameters) {
				p.MagFilter = driver.FilterNearest
				p.MinFilter = driver.FilterNearest
				p.WrapS = driver.WrapRepeat
				p.WrapT = driver.WrapMirroredRepeat
			},
		},
		{
			name: "trilinear",
			desc: func(d *SamplerDescriptor) {
				d.Mipmaps = true
				d.MipmapFilter = gputypes.FilterModeLinear
			},
			want: func(p *driver.SamplerParameters) { p.MinFilter = driver.FilterLinearMipmapLinear },
		},
		{
			name: "nearest mip",
			desc: func(d *SamplerDescriptor) {
				d.MinFilter = gputypes.FilterModeNearest
				d.Mipmaps = true
				d.MipmapFilter = gputypes.FilterModeNearest
			},
			want: func(p *driver.SamplerParameters) { p.MinFilter = driver.FilterNearestMipmapNearest },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, dev := newTestContext(t, nil)
			desc := DefaultSampler()
			tt.desc(&desc)
			s, err := c.CreateSampler(desc)
			if err != nil {
				t.Fatal(err)
			}

			want := driver.SamplerParameters{
				MinFilter: driver.FilterLinear,
				MagFilter: driver.FilterLinear,
				WrapS:     driver.WrapClampToEdge,
				WrapT:     driver.WrapClampToEdge,
				WrapR:     driver.WrapClampToEdge,
				MaxLOD:    1000,
			}
			tt.want(&want)
			got, ok := dev.Sampler(s.SamplerID())
			if !ok {
				t.Fatal("sampler not created on the device")
			}
			if got != want {
				t.Errorf("parameters = %+v, want %+v", got, want)
			}
		})
	}
}

func TestCreateShadowSampler(t *testing.T) {
	c, dev := newTestContext(t, nil)
	s, err := c.CreateShadowSampler(DefaultSampler(), gputypes.CompareFunctionLess)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsShadow() {
		t.Error("IsShadow() = false")
	}
	p, _ := dev.Sampler(s.SamplerID())
	if !p.Compare || p.CompareFunc != driver.CompareLess {
		t.Errorf("compare = %v %v, want true %v", p.Compare, p.CompareFunc, driver.CompareLess)
	}

	s.Release()
	if _, err := c.Poll(); err != nil {
		t.Fatal(err)
	}
	if dev.Live(driver.ObjectSampler) != 0 {
		t.Error("released sampler still live after Poll")
	}
}
