// ABOUTME: Assembly-time validation for heap configuration snapshots
// ABOUTME: Enforces the caller-side precondition the sizing policy relies on

package services

import (
	"fmt"
	"math"

	"github.com/markalston/heap-sizing-analyzer/models"
)

// ValidateHeapConfiguration checks the precondition a snapshot must satisfy
// before it is handed to SizingPolicy.Compute. Violations are configuration
// assembly errors: the policy itself never re-checks them.
func ValidateHeapConfiguration(cfg models.HeapConfiguration) error {
	if !IsPowerOfTwo(cfg.HeapAlignment) {
		return fmt.Errorf("heap alignment must be a nonzero power of two, got %d", cfg.HeapAlignment)
	}
	if cfg.NewRatio < 1 {
		return fmt.Errorf("new ratio must be at least 1, got %d", cfg.NewRatio)
	}
	if cfg.NewRatio == math.MaxUint64 {
		// ratio+1 is the scaling divisor; the ceiling value would wrap it to zero.
		return fmt.Errorf("new ratio %d is out of range", cfg.NewRatio)
	}
	if cfg.MinHeapSize > cfg.InitialHeapSize {
		return fmt.Errorf("min heap size %d exceeds initial heap size %d", cfg.MinHeapSize, cfg.InitialHeapSize)
	}
	if cfg.InitialHeapSize > cfg.MaxHeapSize {
		return fmt.Errorf("initial heap size %d exceeds max heap size %d", cfg.InitialHeapSize, cfg.MaxHeapSize)
	}
	if cfg.MaxHeapSize == 0 {
		return fmt.Errorf("max heap size must be positive")
	}
	return nil
}
