package interfaceblock

import (
	"errors"
	"fmt"

	"github.com/gogpu/glitz/memlayout"
)

// Sentinel errors.
var (
	// ErrUnsupportedField is returned when a host type contains a field whose
	// layout cannot be fixed by std140 rules.
	ErrUnsupportedField = errors.New("interfaceblock: unsupported field type")

	// ErrMissingUnit matches an IncompatibleError for a shader unit that no
	// host field backs.
	ErrMissingUnit = errors.New("interfaceblock: missing unit")

	// ErrUnitLayoutMismatch matches an IncompatibleError for a unit whose host
	// layout differs from the shader's.
	ErrUnitLayoutMismatch = errors.New("interfaceblock: unit layout mismatch")
)

// IncompatibleKind classifies an IncompatibleError.
type IncompatibleKind uint8

// Incompatibility kinds.
const (
	MissingUnit IncompatibleKind = iota + 1
	UnitLayoutMismatch
)

// String returns the kind name.
func (k IncompatibleKind) String() string {
	switch k {
	case MissingUnit:
		return "missing unit"
	case UnitLayoutMismatch:
		return "unit layout mismatch"
	default:
		return "unknown"
	}
}

// IncompatibleError reports the first shader unit a host layout fails to
// match.
type IncompatibleError struct {
	Kind IncompatibleKind

	// Unit is the unit reported by the shader.
	Unit memlayout.MemoryUnit

	// Expected is the host layout at Unit.Offset. It is set only for
	// UnitLayoutMismatch.
	Expected memlayout.UnitLayout
}

func (e *IncompatibleError) Error() string {
	if e.Kind == UnitLayoutMismatch {
		return fmt.Sprintf("interfaceblock: unit at offset %d is %s in the shader but %s on the host",
			e.Unit.Offset, e.Unit.Layout, e.Expected)
	}
	return fmt.Sprintf("interfaceblock: no host field backs unit %s", e.Unit)
}

// Is matches ErrMissingUnit and ErrUnitLayoutMismatch.
func (e *IncompatibleError) Is(target error) bool {
	switch target {
	case ErrMissingUnit:
		return e.Kind == MissingUnit
	case ErrUnitLayoutMismatch:
		return e.Kind == UnitLayoutMismatch
	}
	return false
}
