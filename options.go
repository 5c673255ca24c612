package glitz

import (
	"fmt"
	"log/slog"
)

// PowerPreference hints which GPU the browser should pick for the context.
type PowerPreference string

// Power preferences, spelled as WebGL context attributes.
const (
	PowerDefault         PowerPreference = "default"
	PowerHighPerformance PowerPreference = "high-performance"
	PowerLowPower        PowerPreference = "low-power"
)

// UnmarshalText accepts the WebGL spelling of a power preference.
func (p *PowerPreference) UnmarshalText(text []byte) error {
	switch v := PowerPreference(text); v {
	case PowerDefault, PowerHighPerformance, PowerLowPower:
		*p = v
		return nil
	default:
		return fmt.Errorf("%w: power preference %q", ErrInvalidOption, text)
	}
}

// ContextOptions are the attributes a rendering context is requested with.
// Field names in TOML are kebab-case, matching the WebGL attribute names.
type ContextOptions struct {
	Antialias                    bool            `toml:"antialias"`
	Depth                        bool            `toml:"depth"`
	Stencil                      bool            `toml:"stencil"`
	PremultipliedAlpha           bool            `toml:"premultiplied-alpha"`
	PreserveDrawingBuffer        bool            `toml:"preserve-drawing-buffer"`
	FailIfMajorPerformanceCaveat bool            `toml:"fail-if-major-performance-caveat"`
	PowerPreference              PowerPreference `toml:"power-preference"`

	// PipelineCacheSize bounds the number of cached pipelines. Zero
	// disables the pipeline cache.
	PipelineCacheSize int `toml:"pipeline-cache-size"`
}

// DefaultContextOptions returns the options a context is created with when
// none are given.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		Antialias:          true,
		PremultipliedAlpha: true,
		PowerPreference:    PowerDefault,
		PipelineCacheSize:  64,
	}
}

// Attributes returns the context attributes object passed to
// canvas.getContext("webgl2", attributes).
func (o ContextOptions) Attributes() map[string]any {
	power := o.PowerPreference
	if power == "" {
		power = PowerDefault
	}
	return map[string]any{
		"alpha":                        true,
		"antialias":                    o.Antialias,
		"depth":                        o.Depth,
		"stencil":                      o.Stencil,
		"premultipliedAlpha":           o.PremultipliedAlpha,
		"preserveDrawingBuffer":        o.PreserveDrawingBuffer,
		"failIfMajorPerformanceCaveat": o.FailIfMajorPerformanceCaveat,
		"powerPreference":              string(power),
	}
}

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	c := glitz.NewContext(dev,
//	    glitz.WithDepth(true),
//	    glitz.WithPowerPreference(glitz.PowerHighPerformance))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	attrs  ContextOptions
	logger *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{attrs: DefaultContextOptions()}
}

// WithOptions replaces every context attribute with o, typically loaded
// with [LoadOptions].
func WithOptions(o ContextOptions) ContextOption {
	return func(co *contextOptions) { co.attrs = o }
}

// WithAntialias requests a multisampled default framebuffer.
func WithAntialias(on bool) ContextOption {
	return func(o *contextOptions) { o.attrs.Antialias = on }
}

// WithDepth requests a depth buffer on the default framebuffer.
func WithDepth(on bool) ContextOption {
	return func(o *contextOptions) { o.attrs.Depth = on }
}

// WithStencil requests a stencil buffer on the default framebuffer.
func WithStencil(on bool) ContextOption {
	return func(o *contextOptions) { o.attrs.Stencil = on }
}

// WithPremultipliedAlpha sets whether the page compositor treats the
// drawing buffer as premultiplied.
func WithPremultipliedAlpha(on bool) ContextOption {
	return func(o *contextOptions) { o.attrs.PremultipliedAlpha = on }
}

// WithPreserveDrawingBuffer keeps the drawing buffer contents after
// compositing.
func WithPreserveDrawingBuffer(on bool) ContextOption {
	return func(o *contextOptions) { o.attrs.PreserveDrawingBuffer = on }
}

// WithFailIfMajorPerformanceCaveat refuses software-emulated contexts.
func WithFailIfMajorPerformanceCaveat(on bool) ContextOption {
	return func(o *contextOptions) { o.attrs.FailIfMajorPerformanceCaveat = on }
}

// WithPowerPreference sets the GPU power preference.
func WithPowerPreference(p PowerPreference) ContextOption {
	return func(o *contextOptions) { o.attrs.PowerPreference = p }
}

// WithPipelineCacheSize bounds the pipeline cache. Zero disables it.
func WithPipelineCacheSize(n int) ContextOption {
	return func(o *contextOptions) { o.attrs.PipelineCacheSize = n }
}

// WithLogger sets the logger for the context's lifecycle messages. It does
// not change the package logger set by [SetLogger].
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) { o.logger = l }
}
