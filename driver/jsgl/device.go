// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package jsgl

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/gogpu/glitz"
	"github.com/gogpu/glitz/driver"
)

// ErrUnavailable is returned when the canvas cannot provide a WebGL2 context.
var ErrUnavailable = errors.New("jsgl: webgl2 unavailable")

var errFenceFailed = errors.New("jsgl: fenceSync returned null")

// Limit parameter names.
const (
	glMaxDrawBuffers                = 0x8824
	glMaxVertexAttribs              = 0x8869
	glMaxUniformBufferBindings      = 0x8A2F
	glMaxCombinedTextureImageUnits  = 0x8B4D
	glTexture0                      = 0x84C0
	glTextureCubeMapPositiveX       = 0x8515
	glSyncGPUCommandsComplete       = 0x9117
	glSyncStatus                    = 0x9114
	glSignaled                      = 0x9119
	glTextureMagFilter              = 0x2800
	glTextureMinFilter              = 0x2801
	glTextureWrapS                  = 0x2802
	glTextureWrapT                  = 0x2803
	glTextureWrapR                  = 0x8072
	glTextureMinLOD                 = 0x813A
	glTextureMaxLOD                 = 0x813B
	glTextureCompareMode            = 0x884C
	glTextureCompareFunc            = 0x884D
	glCompareRefToTexture           = 0x884E
	glNone                          = 0
	glCompileStatus                 = 0x8B81
	glLinkStatus                    = 0x8B82
	glActiveUniforms                = 0x8B86
	glActiveAttributes              = 0x8B89
	glActiveUniformBlocks           = 0x8A36
	glUniformBlockDataSize          = 0x8A40
	glUniformBlockActiveUniformIdxs = 0x8A43
	glUniformBlockIndex             = 0x8A3A
	glUniformOffset                 = 0x8A3B
	glUniformArrayStride            = 0x8A3C
	glUniformMatrixStride           = 0x8A3D
	glUniformIsRowMajor             = 0x8A3E
)

type uniformLocation struct {
	program driver.ProgramID
	value   js.Value
}

// Device is a driver.Device backed by a WebGL2RenderingContext. It must be
// used from the goroutine that owns the JS event loop.
type Device struct {
	gl     js.Value
	limits driver.Limits

	uint8Array js.Value
	objects    map[uint64]js.Value
	fences     map[driver.FenceID]js.Value
	locations  map[driver.UniformLocation]uniformLocation
	next       uint64

	nextLocation int32
}

// New requests a WebGL2 context from canvas with the attributes of opts.
func New(canvas js.Value, opts glitz.ContextOptions) (*Device, error) {
	attrs := js.ValueOf(opts.Attributes())
	gl := canvas.Call("getContext", "webgl2", attrs)
	if gl.IsNull() || gl.IsUndefined() {
		return nil, ErrUnavailable
	}
	return FromContext(gl)
}

// FromContext wraps an existing WebGL2RenderingContext.
func FromContext(gl js.Value) (*Device, error) {
	webgl2 := js.Global().Get("WebGL2RenderingContext")
	if webgl2.IsUndefined() || !gl.InstanceOf(webgl2) {
		return nil, fmt.Errorf("%w: not a WebGL2RenderingContext", ErrUnavailable)
	}
	d := &Device{
		gl:         gl,
		uint8Array: js.Global().Get("Uint8Array"),
		objects:    make(map[uint64]js.Value),
		fences:     make(map[driver.FenceID]js.Value),
		locations:  make(map[driver.UniformLocation]uniformLocation),
	}
	d.limits = driver.Limits{
		MaxCombinedTextureUnits:  d.getInt(glMaxCombinedTextureImageUnits),
		MaxUniformBufferBindings: d.getInt(glMaxUniformBufferBindings),
		MaxVertexAttribs:         d.getInt(glMaxVertexAttribs),
		MaxDrawBuffers:           d.getInt(glMaxDrawBuffers),
	}
	glitz.Logger().Info("jsgl: device created",
		"textureUnits", d.limits.MaxCombinedTextureUnits,
		"uniformBindings", d.limits.MaxUniformBufferBindings)
	return d, nil
}

// Limits returns the limits queried when the device was created.
func (d *Device) Limits() driver.Limits { return d.limits }

func (d *Device) getInt(pname int) int {
	return d.gl.Call("getParameter", pname).Int()
}

func (d *Device) lost() bool {
	return d.gl.Call("isContextLost").Bool()
}

// track stores a newly created JS object and returns its id.
func (d *Device) track(v js.Value, kind driver.ObjectKind) (uint64, error) {
	if v.IsNull() || v.IsUndefined() {
		if d.lost() {
			return driver.InvalidID, driver.ErrContextLost
		}
		return driver.InvalidID, fmt.Errorf("jsgl: create %s failed", kind)
	}
	d.next++
	d.objects[d.next] = v
	return d.next, nil
}

// obj returns the JS object for id, or null for the zero or an unknown id.
func (d *Device) obj(id uint64) js.Value {
	if v, ok := d.objects[id]; ok {
		return v
	}
	return js.Null()
}

// CreateProgram creates an empty program.
func (d *Device) CreateProgram() (driver.ProgramID, error) {
	id, err := d.track(d.gl.Call("createProgram"), driver.ObjectProgram)
	return driver.ProgramID(id), err
}

// AttachShader attaches s to p.
func (d *Device) AttachShader(p driver.ProgramID, s driver.ShaderID) {
	d.gl.Call("attachShader", d.obj(uint64(p)), d.obj(uint64(s)))
}

// CreateBuffer creates a buffer object.
func (d *Device) CreateBuffer() (driver.BufferID, error) {
	id, err := d.track(d.gl.Call("createBuffer"), driver.ObjectBuffer)
	return driver.BufferID(id), err
}

// CreateTexture creates a texture object.
func (d *Device) CreateTexture() (driver.TextureID, error) {
	id, err := d.track(d.gl.Call("createTexture"), driver.ObjectTexture)
	return driver.TextureID(id), err
}

// CreateSampler creates a sampler object.
func (d *Device) CreateSampler() (driver.SamplerID, error) {
	id, err := d.track(d.gl.Call("createSampler"), driver.ObjectSampler)
	return driver.SamplerID(id), err
}

// CreateVertexArray creates a vertex array object.
func (d *Device) CreateVertexArray() (driver.VertexArrayID, error) {
	id, err := d.track(d.gl.Call("createVertexArray"), driver.ObjectVertexArray)
	return driver.VertexArrayID(id), err
}

var deleteFuncs = map[driver.ObjectKind]string{
	driver.ObjectBuffer:       "deleteBuffer",
	driver.ObjectFramebuffer:  "deleteFramebuffer",
	driver.ObjectProgram:      "deleteProgram",
	driver.ObjectRenderbuffer: "deleteRenderbuffer",
	driver.ObjectSampler:      "deleteSampler",
	driver.ObjectShader:       "deleteShader",
	driver.ObjectTexture:      "deleteTexture",
	driver.ObjectVertexArray:  "deleteVertexArray",
}

// Delete deletes an object.
func (d *Device) Delete(kind driver.ObjectKind, id uint64) {
	v, ok := d.objects[id]
	if !ok {
		return
	}
	delete(d.objects, id)
	if kind == driver.ObjectProgram {
		for loc, l := range d.locations {
			if uint64(l.program) == id {
				delete(d.locations, loc)
			}
		}
	}
	if fn, ok := deleteFuncs[kind]; ok {
		d.gl.Call(fn, v)
	}
}

// bytesOf copies data into a typed array view matching the component type
// the call expects.
func (d *Device) bytesOf(data []byte, view string, size int) js.Value {
	if len(data) == 0 {
		return js.Null()
	}
	u8 := d.uint8Array.New(len(data))
	js.CopyBytesToJS(u8, data)
	if view == "Uint8Array" {
		return u8
	}
	return js.Global().Get(view).New(u8.Get("buffer"), 0, len(data)/size)
}

var _ driver.Device = (*Device)(nil)
