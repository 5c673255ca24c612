// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glitz/driver"
)

// Errors reported through Err, mirroring WebGL2 getError codes.
var (
	ErrInvalidOperation = errors.New("headless: invalid operation")
	ErrInvalidValue     = errors.New("headless: invalid value")
	ErrInvalidEnum      = errors.New("headless: invalid enum")
)

// Option configures a Device.
type Option func(*options)

type options struct {
	limits       driver.Limits
	fenceLatency uint64
	fenceStatus  func(driver.FenceID) bool
	fenceSync    func() error
}

func defaultOptions() options {
	return options{limits: driver.DefaultLimits()}
}

// WithLimits sets the limits the device reports.
func WithLimits(l driver.Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithFenceLatency makes fences signal n Advance ticks after insertion.
// The default latency of zero signals fences immediately.
func WithFenceLatency(n uint64) Option {
	return func(o *options) { o.fenceLatency = n }
}

// WithFenceStatus replaces the fence clock with fn, which decides whether
// a fence has signaled each time it is polled.
func WithFenceStatus(fn func(driver.FenceID) bool) Option {
	return func(o *options) { o.fenceStatus = fn }
}

// WithFenceSyncError makes FenceSync call fn first and fail with its error
// when it returns one.
func WithFenceSyncError(fn func() error) Option {
	return func(o *options) { o.fenceSync = fn }
}

type shader struct {
	stage  driver.ShaderStage
	source string
	module *ir.Module
}

type buffer struct {
	data  []byte
	usage driver.BufferUsage
}

// TextureInfo is the storage state of a texture.
type TextureInfo struct {
	Target  driver.TextureTarget
	Format  gputypes.TextureFormat
	Levels  int
	Width   int
	Height  int
	Depth   int
	Uploads int
}

// Device is an in-memory driver.Device. It is safe for concurrent use,
// although a connection never uses it concurrently.
type Device struct {
	mu   sync.Mutex
	opts options

	nextID   uint64
	shaders  map[driver.ShaderID]*shader
	programs map[driver.ProgramID]*program
	buffers  map[driver.BufferID]*buffer
	textures map[driver.TextureID]*TextureInfo
	samplers map[driver.SamplerID]*driver.SamplerParameters
	arrays   map[driver.VertexArrayID]struct{}
	fences   map[driver.FenceID]uint64

	current    driver.ProgramID
	bound      map[driver.BufferTarget]driver.BufferID
	activeUnit uint32
	unitTex    map[uint32]map[driver.TextureTarget]driver.TextureID
	clock      uint64

	calls []Call
	err   error
}

// New returns an empty device.
func New(opts ...Option) *Device {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Device{
		opts:     o,
		shaders:  make(map[driver.ShaderID]*shader),
		programs: make(map[driver.ProgramID]*program),
		buffers:  make(map[driver.BufferID]*buffer),
		textures: make(map[driver.TextureID]*TextureInfo),
		samplers: make(map[driver.SamplerID]*driver.SamplerParameters),
		arrays:   make(map[driver.VertexArrayID]struct{}),
		fences:   make(map[driver.FenceID]uint64),
		bound:    make(map[driver.BufferTarget]driver.BufferID),
		unitTex:  make(map[uint32]map[driver.TextureTarget]driver.TextureID),
	}
}

var _ driver.Device = (*Device)(nil)

// Limits returns the configured limits.
func (d *Device) Limits() driver.Limits { return d.opts.limits }

// Err returns and clears the first error recorded since the last call,
// like WebGL2 getError.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.err
	d.err = nil
	return err
}

func (d *Device) fail(err error, format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
}

func (d *Device) newID() uint64 {
	d.nextID++
	return d.nextID
}

// Live returns the number of live objects of a kind.
func (d *Device) Live(kind driver.ObjectKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch kind {
	case driver.ObjectShader:
		return len(d.shaders)
	case driver.ObjectProgram:
		return len(d.programs)
	case driver.ObjectBuffer:
		return len(d.buffers)
	case driver.ObjectTexture:
		return len(d.textures)
	case driver.ObjectSampler:
		return len(d.samplers)
	case driver.ObjectVertexArray:
		return len(d.arrays)
	default:
		return 0
	}
}

// BufferContents returns a copy of a buffer's data store.
func (d *Device) BufferContents(b driver.BufferID) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	buf, ok := d.buffers[b]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(buf.data))
	copy(out, buf.data)
	return out, true
}

// Texture returns the storage state of a texture.
func (d *Device) Texture(t driver.TextureID) (TextureInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info, ok := d.textures[t]
	if !ok {
		return TextureInfo{}, false
	}
	return *info, true
}

// Sampler returns the parameters of a sampler.
func (d *Device) Sampler(s driver.SamplerID) (driver.SamplerParameters, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.samplers[s]
	if !ok {
		return driver.SamplerParameters{}, false
	}
	return *p, true
}

// CreateProgram creates an empty program.
func (d *Device) CreateProgram() (driver.ProgramID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := driver.ProgramID(d.newID())
	d.programs[id] = &program{}
	d.record("CreateProgram", id)
	return id, nil
}

// AttachShader attaches a shader to a program.
func (d *Device) AttachShader(p driver.ProgramID, s driver.ShaderID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("AttachShader", p, s)
	prog, ok := d.programs[p]
	if !ok {
		d.fail(ErrInvalidValue, "attach to unknown program %d", p)
		return
	}
	sh, ok := d.shaders[s]
	if !ok {
		d.fail(ErrInvalidValue, "attach unknown shader %d", s)
		return
	}
	for _, a := range prog.attached {
		if a.stage == sh.stage {
			d.fail(ErrInvalidOperation, "program %d already has a %s shader", p, sh.stage)
			return
		}
	}
	prog.attached = append(prog.attached, sh)
}

// CreateBuffer creates a buffer with an empty data store.
func (d *Device) CreateBuffer() (driver.BufferID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := driver.BufferID(d.newID())
	d.buffers[id] = &buffer{}
	d.record("CreateBuffer", id)
	return id, nil
}

// CreateTexture creates a texture without storage.
func (d *Device) CreateTexture() (driver.TextureID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := driver.TextureID(d.newID())
	d.textures[id] = &TextureInfo{}
	d.record("CreateTexture", id)
	return id, nil
}

// CreateSampler creates a sampler with WebGL2 default parameters.
func (d *Device) CreateSampler() (driver.SamplerID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := driver.SamplerID(d.newID())
	d.samplers[id] = &driver.SamplerParameters{
		MinFilter: driver.FilterNearestMipmapLinear,
		MagFilter: driver.FilterLinear,
		WrapS:     driver.WrapRepeat,
		WrapT:     driver.WrapRepeat,
		WrapR:     driver.WrapRepeat,
		MinLOD:    -1000,
		MaxLOD:    1000,
	}
	d.record("CreateSampler", id)
	return id, nil
}

// CreateVertexArray creates a vertex array object.
func (d *Device) CreateVertexArray() (driver.VertexArrayID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := driver.VertexArrayID(d.newID())
	d.arrays[id] = struct{}{}
	d.record("CreateVertexArray", id)
	return id, nil
}

// Delete deletes an object. Deleting a bound object unbinds it.
func (d *Device) Delete(kind driver.ObjectKind, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == driver.InvalidID {
		return
	}
	d.record("Delete", kind, id)

	switch kind {
	case driver.ObjectShader:
		delete(d.shaders, driver.ShaderID(id))
	case driver.ObjectProgram:
		delete(d.programs, driver.ProgramID(id))
		if d.current == driver.ProgramID(id) {
			d.current = driver.InvalidID
		}
	case driver.ObjectBuffer:
		delete(d.buffers, driver.BufferID(id))
		for target, b := range d.bound {
			if b == driver.BufferID(id) {
				delete(d.bound, target)
			}
		}
	case driver.ObjectTexture:
		delete(d.textures, driver.TextureID(id))
		for _, targets := range d.unitTex {
			for target, t := range targets {
				if t == driver.TextureID(id) {
					delete(targets, target)
				}
			}
		}
	case driver.ObjectSampler:
		delete(d.samplers, driver.SamplerID(id))
	case driver.ObjectVertexArray:
		delete(d.arrays, driver.VertexArrayID(id))
	}
}
