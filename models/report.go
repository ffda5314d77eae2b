// ABOUTME: API response and flag-store exchange types for the sizing analyzer
// ABOUTME: Mirrors the shape of a compute pass: snapshot in, sizes and write-backs out

package models

// FlagState is one named flag as exposed by the flag store.
type FlagState struct {
	Name        string     `json:"name"`
	Bytes       uint64     `json:"bytes"`
	Origin      SizeOrigin `json:"origin"`
	Description string     `json:"description,omitempty"`
}

// FlagUpdate is a value write-back for a flag whose value was recomputed
// ergonomically. Applying an update never changes the flag's origin.
type FlagUpdate struct {
	Name  string `json:"name"`
	Bytes uint64 `json:"bytes"`
}

// SizingReport is the full result of a sizing pass: the configuration
// snapshot it ran over, the computed generation sizes, and the ergonomic
// write-backs the pass produced.
type SizingReport struct {
	Config  HeapConfiguration `json:"config"`
	Sizes   GenerationSizes   `json:"sizes"`
	Updates []FlagUpdate      `json:"updates,omitempty"`
}
