// Package fnvhash holds the FNV-1a helpers used to key layouts and pipeline
// descriptors.
package fnvhash

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// New returns a 64-bit FNV-1a hash.
func New() hash.Hash64 {
	return fnv.New64a()
}

// String returns the FNV-1a hash of s.
func String(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// WriteUint32 writes a uint32 to the hash.
func WriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}

// WriteUint64 writes a uint64 to the hash.
func WriteUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

// WriteString writes a length-prefixed string to the hash.
//
//nolint:gosec // G115: identifiers and entry point names are short
func WriteString(h hash.Hash64, s string) {
	WriteUint32(h, uint32(len(s)))
	_, _ = h.Write([]byte(s))
}

// WriteBool writes a bool to the hash.
func WriteBool(h hash.Hash64, v bool) {
	if v {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
}

// WriteFloat32 writes the bit pattern of a float32 to the hash.
func WriteFloat32(h hash.Hash64, v float32) {
	WriteUint32(h, math.Float32bits(v))
}
