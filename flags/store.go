// ABOUTME: Origin-tagged flag store for heap size parameters
// ABOUTME: Thread-safe map of named byte counts, each tracking who supplied its value

package flags

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/markalston/heap-sizing-analyzer/models"
)

type entry struct {
	bytes       uint64
	origin      models.SizeOrigin
	description string
}

// Store holds the process-wide heap size flags. Every flag carries the
// origin of its current value; setters enforce the
// command-line > ergonomic > default precedence, so an ergonomics pass can
// never clobber a value the operator fixed explicitly.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewStore creates a store populated with the default flag set.
func NewStore() *Store {
	return &Store{
		entries: map[string]*entry{
			models.FlagMinHeapSize: {
				bytes:       8 * 1024 * 1024,
				description: "Lower bound for the committed heap, in bytes.",
			},
			models.FlagInitialHeapSize: {
				bytes:       64 * 1024 * 1024,
				description: "Initial committed heap size, in bytes.",
			},
			models.FlagMaxHeapSize: {
				bytes:       1024 * 1024 * 1024,
				description: "Maximum heap size, in bytes.",
			},
			models.FlagNewSize: {
				bytes:       16 * 1024 * 1024,
				description: "Initial size of the young generation, in bytes.",
			},
			models.FlagOldSize: {
				bytes:       48 * 1024 * 1024,
				description: "Initial size of the old generation, in bytes.",
			},
			models.FlagMaxNewSize: {
				bytes:       256 * 1024 * 1024,
				description: "Maximum size of the young generation, in bytes.",
			},
			models.FlagNewRatio: {
				bytes:       2,
				description: "Ratio of old to young generation sizes.",
			},
			models.FlagMinHeapDeltaBytes: {
				bytes:       192 * 1024,
				description: "Minimum slack kept free when clamping generation sizes, in bytes.",
			},
			models.FlagHeapAlignment: {
				bytes:       2 * 1024 * 1024,
				description: "Granularity all generation sizes are rounded to, in bytes.",
			},
		},
	}
}

// Lookup returns the current value and origin of a flag.
func (s *Store) Lookup(name string) (models.SizeFlag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return models.SizeFlag{}, false
	}
	return models.SizeFlag{Bytes: e.bytes, Origin: e.origin}, true
}

// SetCommandLine fixes a flag's value on behalf of the operator. The value
// is honored exactly by later sizing passes wherever feasible.
func (s *Store) SetCommandLine(name string, bytes uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("unknown flag %q", name)
	}
	e.bytes = bytes
	e.origin = models.OriginCommandLine
	slog.Debug("Flag set", "flag", name, "bytes", bytes, "origin", models.OriginCommandLine)
	return nil
}

// SetErgonomic records a runtime-chosen value. A flag the operator already
// fixed on the command line is left untouched.
func (s *Store) SetErgonomic(name string, bytes uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("unknown flag %q", name)
	}
	if e.origin == models.OriginCommandLine {
		slog.Debug("Flag keeps command-line value", "flag", name, "requested", bytes)
		return nil
	}
	e.bytes = bytes
	e.origin = models.OriginErgonomic
	slog.Debug("Flag set", "flag", name, "bytes", bytes, "origin", models.OriginErgonomic)
	return nil
}

// ApplyErgonomic writes back values recomputed by a sizing pass. Only the
// value changes: a flag's origin is never altered by write-back, so an
// ergonomic flag stays ergonomic and stays eligible for recomputation.
func (s *Store) ApplyErgonomic(updates []models.FlagUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		e, ok := s.entries[u.Name]
		if !ok {
			continue
		}
		e.bytes = u.Bytes
		slog.Debug("Flag value written back", "flag", u.Name, "bytes", u.Bytes, "origin", e.origin)
	}
}

// All returns every flag's state, sorted by name.
func (s *Store) All() []models.FlagState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]models.FlagState, 0, len(s.entries))
	for name, e := range s.entries {
		states = append(states, models.FlagState{
			Name:        name,
			Bytes:       e.bytes,
			Origin:      e.origin,
			Description: e.description,
		})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Name < states[j].Name })
	return states
}

// Snapshot assembles the read-only configuration a sizing pass works from.
// The snapshot is a value copy; later store mutations do not affect it.
func (s *Store) Snapshot() models.HeapConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	get := func(name string) models.SizeFlag {
		e := s.entries[name]
		return models.SizeFlag{Bytes: e.bytes, Origin: e.origin}
	}
	return models.HeapConfiguration{
		InitialHeapSize:   get(models.FlagInitialHeapSize).Bytes,
		MaxHeapSize:       get(models.FlagMaxHeapSize).Bytes,
		MinHeapSize:       get(models.FlagMinHeapSize).Bytes,
		NewSize:           get(models.FlagNewSize),
		OldSize:           get(models.FlagOldSize),
		MaxNewSize:        get(models.FlagMaxNewSize),
		NewRatio:          get(models.FlagNewRatio).Bytes,
		MinHeapDeltaBytes: get(models.FlagMinHeapDeltaBytes).Bytes,
		HeapAlignment:     get(models.FlagHeapAlignment).Bytes,
	}
}
