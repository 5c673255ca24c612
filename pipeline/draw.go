package pipeline

import (
	"fmt"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/resources"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
	"github.com/gogpu/glitz/vertex"
)

// VertexBuffer feeds one buffer slot of a vertex input layout.
type VertexBuffer struct {
	Buffer resources.BufferResource

	// Offset is the byte position of the first vertex.
	Offset int
}

// IndexBuffer holds the indices of an indexed draw.
type IndexBuffer struct {
	Buffer resources.BufferResource

	// Type is ComponentUnsignedByte, ComponentUnsignedShort or
	// ComponentUnsignedInt.
	Type driver.ComponentType

	Offset int
}

// DrawCall selects the vertices of a draw. Instances of zero issues a
// non-instanced draw. With an index buffer, First is ignored and Count
// counts indices.
type DrawCall struct {
	First     int32
	Count     int32
	Instances int32
	Indices   *IndexBuffer
}

func indexSize(t driver.ComponentType) int {
	switch t {
	case driver.ComponentUnsignedByte:
		return 1
	case driver.ComponentUnsignedShort:
		return 2
	case driver.ComponentUnsignedInt:
		return 4
	default:
		return 0
	}
}

// Draw returns a task that draws with p. Vertex buffers are matched to the
// pipeline's buffer slots by position.
func Draw(p *Pipeline, vbs []VertexBuffer, b *Bindings, call DrawCall) (task.Task[struct{}], error) {
	if p.Released() {
		return nil, ErrReleased
	}
	slots := p.desc.vertexLayout.BufferSlots()
	if len(vbs) != len(slots) {
		return nil, fmt.Errorf("%w: have %d, layout has %d slots", ErrVertexBuffers, len(vbs), len(slots))
	}
	for i, vb := range vbs {
		if vb.Buffer.ContextID() != p.ContextID() {
			return nil, fmt.Errorf("%w: vertex buffer %d", ErrForeignObject, i)
		}
	}
	if b != nil && b.pipeline.desc.resourceLayout.Hash() != p.desc.resourceLayout.Hash() {
		return nil, ErrLayoutMismatch
	}
	if b == nil && p.desc.resourceLayout.Len() > 0 {
		return nil, fmt.Errorf("%w: no bindings for a non-empty resource layout", ErrLayoutMismatch)
	}
	if idx := call.Indices; idx != nil {
		if idx.Buffer.ContextID() != p.ContextID() {
			return nil, fmt.Errorf("%w: index buffer", ErrForeignObject)
		}
		if indexSize(idx.Type) == 0 {
			return nil, fmt.Errorf("pipeline: invalid index type %#x", uint32(idx.Type))
		}
	}

	return task.Func(task.ID(p.ContextID()), func(conn *state.Connection) struct{} {
		p.apply(conn)
		bindVertexBuffers(conn, slots, vbs)
		if b != nil {
			resources.Bind(conn, b.descriptors)
		}
		issue(conn, primitiveMode(p.desc.primitive.Topology), call)
		return struct{}{}
	}), nil
}

func bindVertexBuffers(conn *state.Connection, slots []vertex.BufferSlot, vbs []VertexBuffer) {
	used := make(map[uint32]struct{})
	for i, slot := range slots {
		var divisor uint32
		if slot.Rate == vertex.PerInstance {
			divisor = 1
		}
		buf := vbs[i].Buffer.BufferID()
		for _, a := range slot.Attributes {
			for _, ptr := range a.Format.Pointers(a.Location, vbs[i].Offset+a.Offset) {
				conn.SetVertexAttribute(ptr.Location, state.AttribPointer{
					Buffer:     buf,
					Size:       ptr.Size,
					Type:       ptr.Type,
					Normalized: ptr.Normalized,
					Integer:    ptr.Integer,
					Stride:     slot.Stride,
					Offset:     ptr.Offset,
					Divisor:    divisor,
				})
				used[ptr.Location] = struct{}{}
			}
		}
	}
	conn.DisableVertexAttributesExcept(used)
}

func issue(conn *state.Connection, mode driver.PrimitiveMode, call DrawCall) {
	dev := conn.Device()
	if idx := call.Indices; idx != nil {
		conn.BindElementArrayBuffer(idx.Buffer.BufferID())
		if call.Instances > 0 {
			dev.DrawElementsInstanced(mode, call.Count, idx.Type, idx.Offset, call.Instances)
		} else {
			dev.DrawElements(mode, call.Count, idx.Type, idx.Offset)
		}
		return
	}
	if call.Instances > 0 {
		dev.DrawArraysInstanced(mode, call.First, call.Count, call.Instances)
	} else {
		dev.DrawArrays(mode, call.First, call.Count)
	}
}
