// ABOUTME: Size-suffix parsing for flag values
// ABOUTME: Accepts VM-style binary suffixes (k/m/g/t) on byte counts

package flags

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSize parses a byte count with an optional binary suffix: "512m" is
// 512 MiB, "2G" is 2 GiB, a bare number is bytes. Suffixes are binary
// (k=2^10, m=2^20, g=2^30, t=2^40), matching VM flag grammar rather than SI
// decimal units.
func ParseSize(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty size")
	}

	mult := uint64(1)
	switch trimmed[len(trimmed)-1] {
	case 'k', 'K':
		mult = 1 << 10
	case 'm', 'M':
		mult = 1 << 20
	case 'g', 'G':
		mult = 1 << 30
	case 't', 'T':
		mult = 1 << 40
	}
	if mult != 1 {
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-1])
	}

	n, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if mult != 1 && n > math.MaxUint64/mult {
		return 0, fmt.Errorf("size %q overflows", s)
	}
	return n * mult, nil
}
