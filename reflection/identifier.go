package reflection

import "github.com/gogpu/glitz/internal/fnvhash"

// Identifier names a resource slot. It carries a precomputed FNV-1a hash so
// that mismatches are rejected without comparing strings.
//
// Two identifiers are equal only if both their hashes and their names are
// equal; a hash collision between different names never matches. The zero
// Identifier has an empty name.
type Identifier struct {
	hash uint64
	name string
}

// NewIdentifier returns the identifier for name.
func NewIdentifier(name string) Identifier {
	return Identifier{hash: fnvhash.String(name), name: name}
}

// Name returns the identifier's name.
func (id Identifier) Name() string { return id.name }

// Hash returns the FNV-1a hash of the name.
func (id Identifier) Hash() uint64 { return id.hash }

// Equal reports whether id and other name the same slot.
func (id Identifier) Equal(other Identifier) bool {
	return id.hash == other.hash && id.name == other.name
}

// String returns the name.
func (id Identifier) String() string { return id.name }
