// Package conv provides checked integer narrowing for the engine's
// position and state arithmetic.
//
// Narrowing failures panic: indices and state counts are bounded by input
// sizes the caller already holds in an int, so an out-of-range value is a
// programming error, not an input error.
package conv

import "math"

// IntToUint32 converts an int to uint32, panicking if the value is negative
// or does not fit.
func IntToUint32(n int) uint32 {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
