// Package conv provides checked integer conversions used when turning arena
// lengths into state identifiers.
//
// The conversions panic on overflow: an automaton with more than 2^32 states
// cannot be addressed and indicates a programming error, not bad input.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// compare as uint so 32-bit platforms do not overflow the constant
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
