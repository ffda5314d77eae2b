// ABOUTME: Tests for power-of-two alignment helpers
// ABOUTME: Validates rounding behavior at boundaries

package services

import (
	"math"
	"testing"
)

func TestAlignUp(t *testing.T) {
	cases := []struct {
		x, a, expected uint64
	}{
		{0, 1 * mib, 0},
		{1, 1 * mib, 1 * mib},
		{1 * mib, 1 * mib, 1 * mib},
		{1*mib + 1, 1 * mib, 2 * mib},
		{100 * mib, 2 * mib, 100 * mib},
		{101 * mib, 2 * mib, 102 * mib},
	}
	for _, c := range cases {
		if got := AlignUp(c.x, c.a); got != c.expected {
			t.Errorf("AlignUp(%d, %d) = %d, expected %d", c.x, c.a, got, c.expected)
		}
	}
}

func TestAlignUpNearCeiling(t *testing.T) {
	// Inputs within a-1 of the uint64 ceiling cannot round up; they clamp to
	// the largest aligned value instead of wrapping past zero.
	const a = 2 * mib
	ceiling := uint64(math.MaxUint64) &^ (a - 1)
	for _, x := range []uint64{math.MaxUint64, math.MaxUint64 - a + 2, ceiling + 1} {
		if got := AlignUp(x, a); got != ceiling {
			t.Errorf("AlignUp(%d, %d) = %d, expected %d", x, a, got, ceiling)
		}
	}
	// The last value that can still round normally does.
	if got := AlignUp(ceiling-1, a); got != ceiling {
		t.Errorf("AlignUp(%d, %d) = %d, expected %d", ceiling-1, a, got, ceiling)
	}
}

func TestAlignDown(t *testing.T) {
	cases := []struct {
		x, a, expected uint64
	}{
		{0, 1 * mib, 0},
		{1, 1 * mib, 0},
		{1 * mib, 1 * mib, 1 * mib},
		{2*mib - 1, 1 * mib, 1 * mib},
		{101 * mib, 2 * mib, 100 * mib},
	}
	for _, c := range cases {
		if got := AlignDown(c.x, c.a); got != c.expected {
			t.Errorf("AlignDown(%d, %d) = %d, expected %d", c.x, c.a, got, c.expected)
		}
	}
}

func TestIsAligned(t *testing.T) {
	if !IsAligned(4*mib, 2*mib) {
		t.Error("expected 4 MiB to be 2 MiB aligned")
	}
	if IsAligned(3*mib, 2*mib) {
		t.Error("expected 3 MiB not to be 2 MiB aligned")
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 1024, 1 * mib} {
		if !IsPowerOfTwo(v) {
			t.Errorf("expected %d to be a power of two", v)
		}
	}
	for _, v := range []uint64{0, 3, 6, 1*mib + 1} {
		if IsPowerOfTwo(v) {
			t.Errorf("expected %d not to be a power of two", v)
		}
	}
}
