// ABOUTME: Generational heap sizing policy
// ABOUTME: Computes min/initial young and old generation sizes from an origin-tagged snapshot

package services

import (
	"github.com/markalston/heap-sizing-analyzer/models"
)

// SizingPolicy derives the minimum and initial sizes of the young and old
// generations from a HeapConfiguration snapshot.
//
// It is a pure, total function over its input: conflicting operator requests
// are resolved by origin precedence, never rejected, and the policy holds no
// state between calls. Callers validate the snapshot precondition
// (MinHeapSize <= InitialHeapSize <= MaxHeapSize) before computing.
type SizingPolicy struct{}

// NewSizingPolicy creates a new sizing policy.
func NewSizingPolicy() *SizingPolicy {
	return &SizingPolicy{}
}

// Compute derives the generation sizes for cfg.
//
// The initial young and old sizes exactly partition the aligned initial heap.
// A command-line NewSize is honored exactly, unconditionally. A command-line
// OldSize is honored unless a command-line MaxNewSize leaves the maximum heap
// too small for both, in which case the young side is authoritative and the
// old size becomes the remainder of the aligned maximum heap. That silent
// override is intentional: young-generation sizing wins conflicts.
func (p *SizingPolicy) Compute(cfg models.HeapConfiguration) models.GenerationSizes {
	a := cfg.HeapAlignment
	alignedInitial := AlignUp(cfg.InitialHeapSize, a)
	alignedMax := AlignUp(cfg.MaxHeapSize, a)

	var young, old uint64
	switch {
	case cfg.NewSize.Explicit():
		// Operator fixed the young size: take it exactly, old is the
		// remainder of the initial heap.
		young = AlignUp(cfg.NewSize.Bytes, a)
		old = saturatingSub(alignedInitial, young)
	case cfg.OldSize.Explicit():
		old = p.explicitOldSize(cfg, alignedInitial, alignedMax)
		young = saturatingSub(alignedInitial, old)
	default:
		young = scaleByNewRatio(alignedInitial, cfg.NewRatio, a)
		old = saturatingSub(alignedInitial, young)
	}

	return models.GenerationSizes{
		MinYoung:     p.minYoungSize(cfg, young),
		InitialYoung: young,
		MinOld:       p.minOldSize(cfg, old),
		InitialOld:   old,
	}
}

// ErgonomicUpdates returns the flag write-backs a completed compute pass
// produced: any generation size flag with ergonomic origin is rewritten with
// its derived value so later snapshot reads observe it. Write-back is a
// separate, explicit step; Compute itself never mutates anything.
func (p *SizingPolicy) ErgonomicUpdates(cfg models.HeapConfiguration, sizes models.GenerationSizes) []models.FlagUpdate {
	var updates []models.FlagUpdate
	if cfg.NewSize.Origin == models.OriginErgonomic && cfg.NewSize.Bytes != sizes.InitialYoung {
		updates = append(updates, models.FlagUpdate{Name: models.FlagNewSize, Bytes: sizes.InitialYoung})
	}
	if cfg.OldSize.Origin == models.OriginErgonomic && cfg.OldSize.Bytes != sizes.InitialOld {
		updates = append(updates, models.FlagUpdate{Name: models.FlagOldSize, Bytes: sizes.InitialOld})
	}
	return updates
}

// explicitOldSize resolves a command-line OldSize against the young-side
// constraints. The returned size is aligned and never consumes the slack the
// young generation needs to grow.
func (p *SizingPolicy) explicitOldSize(cfg models.HeapConfiguration, alignedInitial, alignedMax uint64) uint64 {
	a := cfg.HeapAlignment
	old := AlignUp(cfg.OldSize.Bytes, a)

	if cfg.MaxNewSize.Explicit() {
		// The operator capped the young generation too. If the requested
		// old size and the young cap cannot both fit in the maximum heap,
		// the young cap wins and the old size is recomputed as the
		// remainder of the aligned maximum heap.
		maxYoung := AlignDown(cfg.MaxNewSize.Bytes, a)
		if remainder := saturatingSub(alignedMax, maxYoung); old > remainder {
			return remainder
		}
	}

	if old >= alignedInitial {
		// Leave at least the minimum delta of young room.
		old = saturatingSub(alignedInitial, AlignUp(cfg.MinHeapDeltaBytes, a))
	}
	return old
}

func (p *SizingPolicy) minYoungSize(cfg models.HeapConfiguration, initialYoung uint64) uint64 {
	a := cfg.HeapAlignment
	var floor uint64
	if cfg.NewSize.Origin == models.OriginDefault {
		floor = scaleByNewRatio(AlignDown(cfg.MinHeapSize, a), cfg.NewRatio, a)
	} else {
		// An ergonomic or command-line NewSize bounds the minimum from above.
		floor = AlignUp(cfg.NewSize.Bytes, a)
	}
	return min(floor, initialYoung)
}

func (p *SizingPolicy) minOldSize(cfg models.HeapConfiguration, initialOld uint64) uint64 {
	a := cfg.HeapAlignment
	var floor uint64
	if cfg.OldSize.Origin == models.OriginDefault {
		alignedMin := AlignDown(cfg.MinHeapSize, a)
		floor = saturatingSub(alignedMin, scaleByNewRatio(alignedMin, cfg.NewRatio, a))
	} else {
		floor = AlignUp(cfg.OldSize.Bytes, a)
	}
	return min(floor, initialOld)
}

// scaleByNewRatio carves the young generation's 1/(ratio+1) share out of
// size, aligned up to a.
func scaleByNewRatio(size, ratio, a uint64) uint64 {
	return AlignUp(size/(ratio+1), a)
}
