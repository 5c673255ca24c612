package resources

import (
	"errors"
	"fmt"

	"github.com/gogpu/glitz/reflection"
)

// Sentinel errors.
var (
	// ErrDuplicateResource is returned when two declarations share an
	// identifier.
	ErrDuplicateResource = errors.New("resources: duplicate resource identifier")

	// ErrInvalidDeclaration is returned for a declaration whose host type
	// cannot describe a uniform block.
	ErrInvalidDeclaration = errors.New("resources: invalid declaration")

	// ErrMissingBlock is returned for a buffer declaration without a block
	// descriptor. Use Buffer or BufferOf to declare buffers.
	ErrMissingBlock = errors.New("resources: buffer declaration has no block descriptor")

	// ErrMissingResource matches an IncompatibleError for a slot no
	// declaration backs.
	ErrMissingResource = errors.New("resources: missing resource")

	// ErrResourceTypeMismatch matches an IncompatibleError for a slot backed
	// by a declaration of the wrong kind.
	ErrResourceTypeMismatch = errors.New("resources: resource type mismatch")

	// ErrIncompatibleInterface matches an IncompatibleError for a uniform
	// block whose host type does not match the shader's block.
	ErrIncompatibleInterface = errors.New("resources: incompatible interface block")

	// ErrForeignResource is returned when a resource created by another
	// context is encoded.
	ErrForeignResource = errors.New("resources: resource belongs to another context")

	// ErrUnknownEntry is returned for a group entry naming no declaration.
	ErrUnknownEntry = errors.New("resources: entry names no declared resource")

	// ErrMissingEntry is returned when a group leaves a declaration unset.
	ErrMissingEntry = errors.New("resources: declared resource has no entry")

	// ErrEntryKind is returned when an entry's kind differs from its
	// declaration.
	ErrEntryKind = errors.New("resources: entry kind does not match declaration")

	// ErrBufferRange is returned when a buffer entry's range does not hold
	// the declared block.
	ErrBufferRange = errors.New("resources: buffer range does not hold the declared block")

	// ErrTextureMismatch is returned when a texture cannot be sampled by the
	// declared sampler kind.
	ErrTextureMismatch = errors.New("resources: texture does not match sampler kind")
)

// IncompatibleKind classifies an IncompatibleError.
type IncompatibleKind uint8

// Incompatibility kinds.
const (
	MissingResource IncompatibleKind = iota + 1
	ResourceTypeMismatch
	IncompatibleInterface
)

// String returns the kind name.
func (k IncompatibleKind) String() string {
	switch k {
	case MissingResource:
		return "missing resource"
	case ResourceTypeMismatch:
		return "resource type mismatch"
	case IncompatibleInterface:
		return "incompatible interface"
	default:
		return "unknown"
	}
}

// IncompatibleError reports the first reflected slot a layout fails to
// satisfy.
type IncompatibleError struct {
	Kind IncompatibleKind
	Slot reflection.ResourceSlot

	// Err is the interface block error for IncompatibleInterface.
	Err error
}

func (e *IncompatibleError) Error() string {
	switch e.Kind {
	case MissingResource:
		return fmt.Sprintf("resources: no resource declared for %s %q", e.Slot.Kind, e.Slot.Identifier)
	case ResourceTypeMismatch:
		if e.Slot.Kind == reflection.SlotTextureSampler {
			return fmt.Sprintf("resources: %q is a %s in the shader but is not declared as one", e.Slot.Identifier, e.Slot.Sampler.Kind)
		}
		return fmt.Sprintf("resources: %q is a uniform block in the shader but is not declared as a buffer", e.Slot.Identifier)
	default:
		return fmt.Sprintf("resources: uniform block %q: %v", e.Slot.Identifier, e.Err)
	}
}

// Is matches ErrMissingResource, ErrResourceTypeMismatch and
// ErrIncompatibleInterface.
func (e *IncompatibleError) Is(target error) bool {
	switch target {
	case ErrMissingResource:
		return e.Kind == MissingResource
	case ErrResourceTypeMismatch:
		return e.Kind == ResourceTypeMismatch
	case ErrIncompatibleInterface:
		return e.Kind == IncompatibleInterface
	}
	return false
}

// Unwrap returns the interface block error, if any.
func (e *IncompatibleError) Unwrap() error { return e.Err }
