package glitz

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/interfaceblock"
	"github.com/gogpu/glitz/std140"
	"github.com/gogpu/glitz/vertex"
)

func TestNewBufferEncodesStd140(t *testing.T) {
	c, dev := newTestContext(t, nil)
	value := camera{ViewProj: std140.Identity4(), Tint: [3]float32{1, 0.5, 0}, Exposure: 2}

	b, err := NewBuffer(c, value, DynamicDraw)
	if err != nil {
		t.Fatal(err)
	}
	want, err := interfaceblock.Encode(value)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := dev.BufferContents(b.BufferID())
	if !ok {
		t.Fatal("buffer not created on the device")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("buffer contents differ from the std140 image")
	}
	if b.ByteSize() != 80 {
		t.Errorf("ByteSize() = %d, want 80", b.ByteSize())
	}
	if b.ContextID() != c.ID() {
		t.Errorf("ContextID() = %d, want %d", b.ContextID(), c.ID())
	}
}

func TestBufferUpload(t *testing.T) {
	c, dev := newTestContext(t, nil)
	b, err := NewBuffer(c, camera{}, DynamicDraw)
	if err != nil {
		t.Fatal(err)
	}

	next := camera{ViewProj: std140.Identity4(), Exposure: 0.5}
	up, err := b.Upload(next)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Submit(c, up); err != nil {
		t.Fatal(err)
	}
	want, _ := interfaceblock.Encode(next)
	if got, _ := dev.BufferContents(b.BufferID()); !bytes.Equal(got, want) {
		t.Error("upload did not replace the buffer contents")
	}
}

func TestBufferUploadAfterRelease(t *testing.T) {
	c, _ := newTestContext(t, nil)
	b, err := NewBuffer(c, camera{}, DynamicDraw)
	if err != nil {
		t.Fatal(err)
	}
	b.Release()
	if _, err := b.Upload(camera{}); !errors.Is(err, ErrReleased) {
		t.Errorf("Upload() after Release: error = %v, want ErrReleased", err)
	}
}

func TestArrayBuffer(t *testing.T) {
	c, dev := newTestContext(t, nil)
	b, err := NewArrayBuffer(c, quad, StaticDraw)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(quad) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(quad))
	}
	want, _ := vertex.Encode(quad)
	if got, _ := dev.BufferContents(b.BufferID()); !bytes.Equal(got, want) {
		t.Error("array buffer contents differ from the packed vertices")
	}
	if vb := b.VertexBuffer(2); vb.Offset != 32 {
		t.Errorf("VertexBuffer(2).Offset = %d, want 32", vb.Offset)
	}

	_, err = b.Upload(append(quad, quad...))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("oversized Upload() error = %v, want ErrInvalidSize", err)
	}
}

type meshIndex uint16

func TestNewIndexBuffer(t *testing.T) {
	c, dev := newTestContext(t, nil)

	tests := []struct {
		name  string
		make  func() (*IndexBuffer, error)
		typ   driver.ComponentType
		bytes []byte
	}{
		{
			name:  "uint8",
			make:  func() (*IndexBuffer, error) { return NewIndexBuffer(c, []uint8{0, 1, 2}, StaticDraw) },
			typ:   driver.ComponentUnsignedByte,
			bytes: []byte{0, 1, 2},
		},
		{
			name:  "named uint16",
			make:  func() (*IndexBuffer, error) { return NewIndexBuffer(c, []meshIndex{1, 0x0203}, StaticDraw) },
			typ:   driver.ComponentUnsignedShort,
			bytes: []byte{1, 0, 3, 2},
		},
		{
			name:  "uint32",
			make:  func() (*IndexBuffer, error) { return NewIndexBuffer(c, []uint32{0x01020304}, StaticDraw) },
			typ:   driver.ComponentUnsignedInt,
			bytes: []byte{4, 3, 2, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.make()
			if err != nil {
				t.Fatal(err)
			}
			if b.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", b.Type(), tt.typ)
			}
			if got, _ := dev.BufferContents(b.BufferID()); !bytes.Equal(got, tt.bytes) {
				t.Errorf("contents = %v, want %v", got, tt.bytes)
			}
		})
	}
}

func TestDrawIndexedOffset(t *testing.T) {
	c, _ := newTestContext(t, nil)
	b, err := NewIndexBuffer(c, []uint32{0, 1, 2, 2, 3, 0}, StaticDraw)
	if err != nil {
		t.Fatal(err)
	}
	call := b.DrawIndexed(3, 3, 4)
	if call.Count != 3 || call.Instances != 4 {
		t.Errorf("DrawIndexed() = %+v, want 3 indices over 4 instances", call)
	}
	if call.Indices == nil || call.Indices.Offset != 12 || call.Indices.Type != driver.ComponentUnsignedInt {
		t.Errorf("Indices = %+v, want offset 12 of uint32 indices", call.Indices)
	}
}
