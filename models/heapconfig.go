// ABOUTME: Core data model for generational heap sizing
// ABOUTME: Defines origin-tagged size flags, configuration snapshots, and generation sizes

package models

import (
	"encoding/json"
	"fmt"
)

// SizeOrigin records which channel supplied a size flag's value.
// Precedence is CommandLine > Ergonomic > Default: a command-line value was
// fixed by the operator and must be honored wherever feasible, an ergonomic
// value was chosen by the runtime and may be silently recomputed.
type SizeOrigin int

const (
	OriginDefault SizeOrigin = iota
	OriginErgonomic
	OriginCommandLine
)

func (o SizeOrigin) String() string {
	switch o {
	case OriginDefault:
		return "default"
	case OriginErgonomic:
		return "ergonomic"
	case OriginCommandLine:
		return "command-line"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

func (o SizeOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *SizeOrigin) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "default":
		*o = OriginDefault
	case "ergonomic":
		*o = OriginErgonomic
	case "command-line":
		*o = OriginCommandLine
	default:
		return fmt.Errorf("unknown size origin %q", s)
	}
	return nil
}

// SizeFlag is a byte count paired with the origin that supplied it.
type SizeFlag struct {
	Bytes  uint64     `json:"bytes"`
	Origin SizeOrigin `json:"origin"`
}

// Explicit reports whether the value was fixed by the operator.
func (f SizeFlag) Explicit() bool {
	return f.Origin == OriginCommandLine
}

// Flag names recognized by the flag store and the sizing policy.
const (
	FlagInitialHeapSize   = "InitialHeapSize"
	FlagMaxHeapSize       = "MaxHeapSize"
	FlagMinHeapSize       = "MinHeapSize"
	FlagNewSize           = "NewSize"
	FlagOldSize           = "OldSize"
	FlagMaxNewSize        = "MaxNewSize"
	FlagNewRatio          = "NewRatio"
	FlagMinHeapDeltaBytes = "MinHeapDeltaBytes"
	FlagHeapAlignment     = "HeapAlignment"
)

// HeapConfiguration is a read-only snapshot of the size parameters a single
// sizing computation works from. Callers guarantee
// MinHeapSize <= InitialHeapSize <= MaxHeapSize before handing it to the
// policy (see services.ValidateHeapConfiguration).
type HeapConfiguration struct {
	InitialHeapSize uint64 `json:"initial_heap_size"`
	MaxHeapSize     uint64 `json:"max_heap_size"`
	MinHeapSize     uint64 `json:"min_heap_size"`

	NewSize    SizeFlag `json:"new_size"`
	OldSize    SizeFlag `json:"old_size"`
	MaxNewSize SizeFlag `json:"max_new_size"`

	NewRatio          uint64 `json:"new_ratio"`            // old:young proportion, >= 1
	MinHeapDeltaBytes uint64 `json:"min_heap_delta_bytes"` // growth slack when clamping
	HeapAlignment     uint64 `json:"heap_alignment"`       // power of two
}

// GenerationSizes is the result of a sizing computation. All fields are
// multiples of the configuration's HeapAlignment, and outside the
// max-new-size conflict path InitialYoung+InitialOld exactly partition the
// aligned initial heap.
type GenerationSizes struct {
	MinYoung     uint64 `json:"min_young"`
	InitialYoung uint64 `json:"initial_young"`
	MinOld       uint64 `json:"min_old"`
	InitialOld   uint64 `json:"initial_old"`
}
