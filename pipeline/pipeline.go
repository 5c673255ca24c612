package pipeline

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/reflection"
	"github.com/gogpu/glitz/resources"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

// Pipeline is a validated program together with its input layouts and
// fixed-function state. Pipelines are immutable and reference counted.
type Pipeline struct {
	conn    *state.Connection
	program driver.ProgramID
	handle  state.Handle
	desc    *Descriptor

	reflected *reflection.Program
	plan      []resources.SlotBinding

	refs atomic.Int32
}

// Build runs a build machine for desc on conn.
func Build(conn *state.Connection, desc *Descriptor) (*Pipeline, error) {
	return NewMachine(desc).Run(conn)
}

// AllocateTask returns a task that builds a pipeline for desc on the
// context that owns its shaders.
func AllocateTask(desc *Descriptor) task.Task[task.Result[*Pipeline]] {
	id := task.ID(desc.vertexShader.ContextID())
	return task.Func(id, func(conn *state.Connection) task.Result[*Pipeline] {
		p, err := Build(conn, desc)
		return task.Result[*Pipeline]{Value: p, Err: err}
	})
}

// Program returns the driver program id.
func (p *Pipeline) Program() driver.ProgramID { return p.program }

// ContextID returns the id of the owning connection.
func (p *Pipeline) ContextID() uint64 { return p.conn.ID() }

// Descriptor returns the descriptor the pipeline was built from.
func (p *Pipeline) Descriptor() *Descriptor { return p.desc }

// Attributes returns the program's active vertex attributes.
func (p *Pipeline) Attributes() []reflection.AttributeSlot { return p.reflected.Attributes }

// Resources returns the program's resource slots.
func (p *Pipeline) Resources() []reflection.ResourceSlot { return p.reflected.Resources }

// Bindings returns the slot binding plan applied when the pipeline was
// built.
func (p *Pipeline) Bindings() []resources.SlotBinding { return p.plan }

// Retain adds a reference and returns p.
func (p *Pipeline) Retain() *Pipeline {
	if p.refs.Add(1) <= 1 {
		panic("pipeline: retain of a released pipeline")
	}
	return p
}

// Release drops a reference. When the last reference is dropped the program
// is queued for deletion on the owning connection. Release is safe to call
// from any goroutine.
func (p *Pipeline) Release() {
	switch n := p.refs.Add(-1); {
	case n == 0:
		p.conn.Release(p.handle)
		slogger().Debug("pipeline: released", "program", p.program, "context", p.conn.ID())
	case n < 0:
		p.refs.Store(0)
		slogger().Warn("pipeline: release of a released pipeline", "program", p.program)
	}
}

// Released reports whether every reference has been dropped.
func (p *Pipeline) Released() bool { return p.refs.Load() <= 0 }

// Bindings are resources encoded for a pipeline.
type Bindings struct {
	pipeline    *Pipeline
	descriptors []resources.BindingDescriptor
}

// Descriptors returns the encoded descriptors.
func (b *Bindings) Descriptors() []resources.BindingDescriptor { return b.descriptors }

// BindResources encodes g for the pipeline. The group must have been built
// for the resource layout the pipeline was validated against; the program
// itself is not consulted again.
func (p *Pipeline) BindResources(g *resources.Group) (*Bindings, error) {
	if g.Layout().Hash() != p.desc.resourceLayout.Hash() {
		return nil, ErrLayoutMismatch
	}
	descs, err := g.Encode(p.ContextID())
	if err != nil {
		return nil, err
	}
	return &Bindings{pipeline: p, descriptors: descs}, nil
}

// BindGroup uses a pre-encoded bind group with the pipeline.
func (p *Pipeline) BindGroup(bg *resources.BindGroup) (*Bindings, error) {
	if bg.LayoutHash() != p.desc.resourceLayout.Hash() {
		return nil, ErrLayoutMismatch
	}
	if bg.ContextID() != p.ContextID() {
		return nil, fmt.Errorf("%w: bind group", ErrForeignObject)
	}
	return &Bindings{pipeline: p, descriptors: bg.Descriptors()}, nil
}

// apply makes the pipeline's program and fixed-function state current.
func (p *Pipeline) apply(conn *state.Connection) {
	d := p.desc
	conn.UseProgram(p.program)

	face, cull := cullFace(d.primitive.CullMode)
	conn.SetCapability(driver.CapCullFace, cull)
	if cull {
		conn.SetCullFace(face)
	}
	conn.SetFrontFace(winding(d.primitive.FrontFace))
	if isLineTopology(d.primitive.Topology) {
		w := d.primitive.LineWidth
		if w == 0 {
			w = 1
		}
		conn.SetLineWidth(w)
	}

	conn.SetCapability(driver.CapDepthTest, d.depth != nil)
	if d.depth != nil {
		conn.SetDepthFunc(compareFunc(d.depth.Compare))
		conn.SetDepthMask(d.depth.Write)
		near, far := d.depth.Near, d.depth.Far
		if near == 0 && far == 0 {
			far = 1
		}
		conn.SetDepthRange(near, far)
	}

	conn.SetCapability(driver.CapBlend, d.blend != nil)
	if d.blend != nil {
		c, a := d.blend.State.Color, d.blend.State.Alpha
		conn.SetBlendFunc(state.BlendFunc{
			SrcRGB:   blendFactor(c.SrcFactor),
			DstRGB:   blendFactor(c.DstFactor),
			SrcAlpha: blendFactor(a.SrcFactor),
			DstAlpha: blendFactor(a.DstFactor),
		})
		conn.SetBlendEquation(state.BlendEquation{RGB: blendEquation(c.Operation), Alpha: blendEquation(a.Operation)})
		conn.SetBlendColor(d.blend.Constant)
	}
	conn.SetColorMask(colorMask(d.writeMask))

	if d.viewport != nil {
		conn.SetViewport(*d.viewport)
	}
}
