package glitz

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/interfaceblock"
	"github.com/gogpu/glitz/pipeline"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
	"github.com/gogpu/glitz/vertex"
)

// Usage is the expected update frequency of a buffer's contents.
type Usage = driver.BufferUsage

// Buffer usages.
const (
	StaticDraw  = driver.UsageStaticDraw
	DynamicDraw = driver.UsageDynamicDraw
	StreamDraw  = driver.UsageStreamDraw
)

// bufferObject is a buffer owned by a context.
type bufferObject struct {
	ctx      *Context
	id       driver.BufferID
	handle   state.Handle
	size     int
	target   driver.BufferTarget
	released atomic.Bool
}

func (c *Context) newBufferObject(target driver.BufferTarget, data []byte, usage Usage) (*bufferObject, error) {
	b := &bufferObject{ctx: c, size: len(data), target: target}
	err := c.do(func(conn *state.Connection) error {
		id, err := conn.Device().CreateBuffer()
		if err != nil {
			return fmt.Errorf("glitz: create buffer: %w", err)
		}
		b.id = id
		b.handle = conn.Track(driver.ObjectBuffer, uint64(id))
		b.bind(conn)
		conn.Device().BufferData(target, data, usage)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *bufferObject) bind(conn *state.Connection) {
	if b.target == driver.TargetElementArrayBuffer {
		conn.BindElementArrayBuffer(b.id)
	} else {
		conn.BindArrayBuffer(b.id)
	}
}

// ContextID returns the id of the owning context.
func (b *bufferObject) ContextID() uint64 { return b.ctx.ID() }

// BufferID returns the driver buffer id.
func (b *bufferObject) BufferID() driver.BufferID { return b.id }

// ByteSize returns the size of the buffer's data store.
func (b *bufferObject) ByteSize() int { return b.size }

// Release queues the buffer for deletion. Release is idempotent.
func (b *bufferObject) Release() {
	if b.released.Swap(true) {
		return
	}
	b.ctx.conn.Release(b.handle)
}

// upload returns a task writing data at the start of the buffer.
func (b *bufferObject) upload(data []byte) (task.Task[struct{}], error) {
	if b.released.Load() {
		return nil, ErrReleased
	}
	if len(data) > b.size {
		return nil, fmt.Errorf("%w: %d bytes into a %d byte buffer", ErrInvalidSize, len(data), b.size)
	}
	return task.Func(task.ID(b.ctx.ID()), func(conn *state.Connection) struct{} {
		b.bind(conn)
		conn.Device().BufferSubData(b.target, 0, data)
		return struct{}{}
	}), nil
}

// Buffer is a uniform buffer holding one value of T laid out with std140
// rules.
type Buffer[T any] struct {
	*bufferObject
}

// NewBuffer creates a uniform buffer initialized with value.
func NewBuffer[T any](c *Context, value T, usage Usage) (*Buffer[T], error) {
	data, err := interfaceblock.Encode(value)
	if err != nil {
		return nil, err
	}
	b, err := c.newBufferObject(driver.TargetArrayBuffer, data, usage)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{b}, nil
}

// Upload returns a task replacing the buffer's value.
func (b *Buffer[T]) Upload(value T) (task.Task[struct{}], error) {
	data, err := interfaceblock.Encode(value)
	if err != nil {
		return nil, err
	}
	return b.upload(data)
}

// ArrayBuffer is a vertex buffer holding a sequence of T.
type ArrayBuffer[T any] struct {
	*bufferObject
	len int
}

// NewArrayBuffer creates a vertex buffer holding values. T is a vertex
// struct whose fields carry `vertex` tags.
func NewArrayBuffer[T any](c *Context, values []T, usage Usage) (*ArrayBuffer[T], error) {
	data, err := vertex.Encode(values)
	if err != nil {
		return nil, err
	}
	b, err := c.newBufferObject(driver.TargetArrayBuffer, data, usage)
	if err != nil {
		return nil, err
	}
	return &ArrayBuffer[T]{bufferObject: b, len: len(values)}, nil
}

// Len returns the number of elements the buffer was created with.
func (b *ArrayBuffer[T]) Len() int { return b.len }

// Upload returns a task replacing the first len(values) elements.
func (b *ArrayBuffer[T]) Upload(values []T) (task.Task[struct{}], error) {
	data, err := vertex.Encode(values)
	if err != nil {
		return nil, err
	}
	return b.upload(data)
}

// VertexBuffer returns the buffer as a draw input starting at element
// first.
func (b *ArrayBuffer[T]) VertexBuffer(first int) pipeline.VertexBuffer {
	stride := 0
	if b.len > 0 {
		stride = b.size / b.len
	}
	return pipeline.VertexBuffer{Buffer: b, Offset: first * stride}
}

// Index is an index element type.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// IndexBuffer is an element array buffer.
type IndexBuffer struct {
	*bufferObject
	typ   driver.ComponentType
	count int
}

// NewIndexBuffer creates an index buffer holding indices.
func NewIndexBuffer[I Index](c *Context, indices []I, usage Usage) (*IndexBuffer, error) {
	data, typ := encodeIndices(indices)
	b, err := c.newBufferObject(driver.TargetElementArrayBuffer, data, usage)
	if err != nil {
		return nil, err
	}
	return &IndexBuffer{bufferObject: b, typ: typ, count: len(indices)}, nil
}

func encodeIndices[I Index](indices []I) ([]byte, driver.ComponentType) {
	var zero I
	switch unsafe.Sizeof(zero) {
	case 1:
		data := make([]byte, len(indices))
		for i, v := range indices {
			data[i] = uint8(v)
		}
		return data, driver.ComponentUnsignedByte
	case 2:
		data := make([]byte, 0, 2*len(indices))
		for _, v := range indices {
			data = binary.LittleEndian.AppendUint16(data, uint16(v))
		}
		return data, driver.ComponentUnsignedShort
	default:
		data := make([]byte, 0, 4*len(indices))
		for _, v := range indices {
			data = binary.LittleEndian.AppendUint32(data, uint32(v))
		}
		return data, driver.ComponentUnsignedInt
	}
}

// Count returns the number of indices.
func (b *IndexBuffer) Count() int { return b.count }

// Type returns the index component type.
func (b *IndexBuffer) Type() driver.ComponentType { return b.typ }

// DrawIndexed returns a draw call over count indices starting at first.
// Instances of zero draws once without instancing.
func (b *IndexBuffer) DrawIndexed(first, count, instances int32) pipeline.DrawCall {
	size := b.size / max(b.count, 1)
	return pipeline.DrawCall{
		Count:     count,
		Instances: instances,
		Indices:   &pipeline.IndexBuffer{Buffer: b, Type: b.typ, Offset: int(first) * size},
	}
}
