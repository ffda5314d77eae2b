// ABOUTME: Power-of-two alignment helpers for heap size arithmetic
// ABOUTME: All generation sizes are rounded to the collector's heap alignment

package services

import "math"

// AlignUp rounds x up to the nearest multiple of a. a must be a power of two.
// Values too close to the uint64 ceiling to round up saturate at the largest
// aligned value instead of wrapping.
func AlignUp(x, a uint64) uint64 {
	if x > math.MaxUint64-(a-1) {
		return math.MaxUint64 &^ (a - 1)
	}
	return (x + a - 1) &^ (a - 1)
}

// AlignDown rounds x down to the nearest multiple of a. a must be a power of two.
func AlignDown(x, a uint64) uint64 {
	return x &^ (a - 1)
}

// IsAligned reports whether x is a multiple of a. a must be a power of two.
func IsAligned(x, a uint64) bool {
	return x&(a-1) == 0
}

// IsPowerOfTwo reports whether a is a nonzero power of two.
func IsPowerOfTwo(a uint64) bool {
	return a != 0 && a&(a-1) == 0
}

// saturatingSub returns x-y, or 0 when y exceeds x.
func saturatingSub(x, y uint64) uint64 {
	if y > x {
		return 0
	}
	return x - y
}
