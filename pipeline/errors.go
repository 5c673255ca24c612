package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrMissingVertexShader is returned by Finish without a vertex shader.
	ErrMissingVertexShader = errors.New("pipeline: missing vertex shader")

	// ErrMissingFragmentShader is returned by Finish without a fragment shader.
	ErrMissingFragmentShader = errors.New("pipeline: missing fragment shader")

	// ErrMissingPrimitiveAssembly is returned by Finish without a primitive
	// assembly mode.
	ErrMissingPrimitiveAssembly = errors.New("pipeline: missing primitive assembly")

	// ErrShaderStage is returned when a shader is used for the wrong stage.
	ErrShaderStage = errors.New("pipeline: shader used for the wrong stage")

	// ErrForeignObject is returned when a shader, pipeline or resource
	// belongs to another context.
	ErrForeignObject = errors.New("pipeline: object belongs to another context")

	// ErrTooManyBindings is returned when a resource layout needs more
	// binding points than the device provides.
	ErrTooManyBindings = errors.New("pipeline: resource layout exceeds device binding limits")

	// ErrLayoutMismatch is returned when resources built for one layout are
	// bound to a pipeline validated against another.
	ErrLayoutMismatch = errors.New("pipeline: resources do not match the pipeline's resource layout")

	// ErrVertexBuffers is returned when a draw's vertex buffers do not match
	// the pipeline's vertex input layout.
	ErrVertexBuffers = errors.New("pipeline: vertex buffers do not match the input layout")

	// ErrReleased is returned when a released pipeline is used.
	ErrReleased = errors.New("pipeline: pipeline has been released")
)

// BuildError is a failed pipeline build.
type BuildError struct {
	// Stage is the stage the machine failed to reach.
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("pipeline: cannot reach stage %q: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error { return e.Err }
