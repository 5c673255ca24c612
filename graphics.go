package glitz

import (
	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/pipeline"
	"github.com/gogpu/glitz/resources"
	"github.com/gogpu/glitz/state"
)

// CreateVertexShader compiles a vertex shader.
func (c *Context) CreateVertexShader(source string) (*pipeline.Shader, error) {
	return c.createShader(driver.StageVertex, source)
}

// CreateFragmentShader compiles a fragment shader.
func (c *Context) CreateFragmentShader(source string) (*pipeline.Shader, error) {
	return c.createShader(driver.StageFragment, source)
}

func (c *Context) createShader(stage driver.ShaderStage, source string) (*pipeline.Shader, error) {
	var s *pipeline.Shader
	err := c.do(func(conn *state.Connection) error {
		var err error
		s, err = pipeline.CompileShader(conn, stage, source)
		return err
	})
	return s, err
}

// CreateGraphicsPipeline builds and validates a pipeline for desc. With the
// pipeline cache enabled, an equal descriptor built earlier is reused. The
// caller owns one reference to the returned pipeline.
func (c *Context) CreateGraphicsPipeline(desc *pipeline.Descriptor) (*pipeline.Pipeline, error) {
	var p *pipeline.Pipeline
	err := c.do(func(conn *state.Connection) error {
		var err error
		if c.cache != nil {
			p, err = c.cache.GetOrBuild(conn, desc)
		} else {
			p, err = pipeline.Build(conn, desc)
		}
		return err
	})
	return p, err
}

// BindResources encodes a resource group for use with p.
func (c *Context) BindResources(p *pipeline.Pipeline, g *resources.Group) (*pipeline.Bindings, error) {
	return p.BindResources(g)
}

// CreateBindGroup encodes a resource group once so that it can be reused
// across pipelines sharing its layout.
func (c *Context) CreateBindGroup(g *resources.Group) (*resources.BindGroup, error) {
	return resources.NewBindGroup(c.ID(), g)
}

// Draw submits a draw with p.
func (c *Context) Draw(p *pipeline.Pipeline, vbs []pipeline.VertexBuffer, b *pipeline.Bindings, call pipeline.DrawCall) error {
	t, err := pipeline.Draw(p, vbs, b, call)
	if err != nil {
		return err
	}
	_, err = Submit(c, t)
	return err
}

// Clear clears the bound framebuffer's color buffer to color, and its
// depth buffer if the context has one.
func (c *Context) Clear(color [4]float32) error {
	return c.do(func(conn *state.Connection) error {
		conn.SetClearColor(color)
		mask := driver.ClearColor
		if c.opts.Depth {
			mask |= driver.ClearDepth
		}
		conn.Device().Clear(mask)
		return nil
	})
}
