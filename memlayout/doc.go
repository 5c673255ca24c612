// Package memlayout describes the memory units of interface blocks.
//
// A [MemoryUnit] is a scalar, vector or matrix (optionally an array of them)
// at a byte offset. Both sides of a uniform block compatibility check are
// expressed in this vocabulary: the units derived from a host struct and the
// units a driver reports for a linked program's block.
//
// The package also carries the std140 alignment and size rules used to place
// units when deriving a host layout.
package memlayout
