package vertex

import (
	"errors"
	"fmt"

	"github.com/gogpu/glitz/reflection"
)

// Sentinel errors.
var (
	// ErrDuplicateLocation is returned when two attributes of a layout share
	// a location.
	ErrDuplicateLocation = errors.New("vertex: duplicate attribute location")

	// ErrInvalidFormat is returned for an attribute with an undefined format.
	ErrInvalidFormat = errors.New("vertex: invalid attribute format")

	// ErrUnsupportedField is returned when a vertex struct field cannot be
	// described by a format.
	ErrUnsupportedField = errors.New("vertex: unsupported field")

	// ErrNoGPUFormat is returned when a layout uses a format WebGPU cannot
	// express.
	ErrNoGPUFormat = errors.New("vertex: format has no WebGPU equivalent")

	// ErrMissingAttribute matches an IncompatibleError for a shader attribute
	// the layout does not provide.
	ErrMissingAttribute = errors.New("vertex: missing attribute")

	// ErrTypeMismatch matches an IncompatibleError for an attribute whose
	// format does not match the shader's type.
	ErrTypeMismatch = errors.New("vertex: attribute type mismatch")
)

// IncompatibleKind classifies an IncompatibleError.
type IncompatibleKind uint8

// Incompatibility kinds.
const (
	MissingAttribute IncompatibleKind = iota + 1
	TypeMismatch
)

// IncompatibleError reports the first attribute slot a layout fails to
// satisfy.
type IncompatibleError struct {
	Kind     IncompatibleKind
	Location uint32

	// Name and Type describe the shader's attribute slot.
	Name string
	Type reflection.AttributeType

	// Format is the layout's format at Location; set for TypeMismatch.
	Format Format
}

func (e *IncompatibleError) Error() string {
	if e.Kind == TypeMismatch {
		return fmt.Sprintf("vertex: attribute %s at location %d is %s in the shader but the layout provides %s",
			e.Name, e.Location, e.Type, e.Format)
	}
	return fmt.Sprintf("vertex: layout provides no attribute for %s at location %d", e.Name, e.Location)
}

// Is matches ErrMissingAttribute and ErrTypeMismatch.
func (e *IncompatibleError) Is(target error) bool {
	switch target {
	case ErrMissingAttribute:
		return e.Kind == MissingAttribute
	case ErrTypeMismatch:
		return e.Kind == TypeMismatch
	}
	return false
}
