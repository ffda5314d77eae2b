// ABOUTME: Tests for the origin-tagged flag store
// ABOUTME: Verifies origin precedence, write-back semantics, and snapshot assembly

package flags

import (
	"testing"

	"github.com/markalston/heap-sizing-analyzer/models"
)

func TestNewStoreDefaults(t *testing.T) {
	store := NewStore()

	f, ok := store.Lookup(models.FlagNewSize)
	if !ok {
		t.Fatal("expected NewSize to be registered")
	}
	if f.Origin != models.OriginDefault {
		t.Errorf("expected default origin, got %v", f.Origin)
	}

	if len(store.All()) != 9 {
		t.Errorf("expected 9 flags, got %d", len(store.All()))
	}
}

func TestSetCommandLine(t *testing.T) {
	store := NewStore()

	if err := store.SetCommandLine(models.FlagNewSize, 20<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, _ := store.Lookup(models.FlagNewSize)
	if f.Bytes != 20<<20 {
		t.Errorf("expected 20 MiB, got %d", f.Bytes)
	}
	if f.Origin != models.OriginCommandLine {
		t.Errorf("expected command-line origin, got %v", f.Origin)
	}
}

func TestSetErgonomicRespectsCommandLine(t *testing.T) {
	// Ergonomics must not clobber a value the operator fixed explicitly.
	store := NewStore()

	if err := store.SetCommandLine(models.FlagNewSize, 20<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SetErgonomic(models.FlagNewSize, 34<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, _ := store.Lookup(models.FlagNewSize)
	if f.Bytes != 20<<20 {
		t.Errorf("expected command-line value 20 MiB to survive, got %d", f.Bytes)
	}
	if f.Origin != models.OriginCommandLine {
		t.Errorf("expected command-line origin, got %v", f.Origin)
	}
}

func TestApplyErgonomicKeepsOrigin(t *testing.T) {
	store := NewStore()

	if err := store.SetErgonomic(models.FlagNewSize, 16<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.ApplyErgonomic([]models.FlagUpdate{{Name: models.FlagNewSize, Bytes: 34 << 20}})

	f, _ := store.Lookup(models.FlagNewSize)
	if f.Bytes != 34<<20 {
		t.Errorf("expected written-back value 34 MiB, got %d", f.Bytes)
	}
	if f.Origin != models.OriginErgonomic {
		t.Errorf("expected origin to stay ergonomic, got %v", f.Origin)
	}
}

func TestUnknownFlag(t *testing.T) {
	store := NewStore()

	if err := store.SetCommandLine("NoSuchFlag", 1); err == nil {
		t.Error("expected an error for unknown flag")
	}
	if err := store.SetErgonomic("NoSuchFlag", 1); err == nil {
		t.Error("expected an error for unknown flag")
	}
	if _, ok := store.Lookup("NoSuchFlag"); ok {
		t.Error("expected lookup of unknown flag to fail")
	}
}

func TestSnapshot(t *testing.T) {
	store := NewStore()
	if err := store.SetCommandLine(models.FlagNewSize, 20<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SetCommandLine(models.FlagNewRatio, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := store.Snapshot()

	if snapshot.NewSize.Bytes != 20<<20 || snapshot.NewSize.Origin != models.OriginCommandLine {
		t.Errorf("unexpected NewSize in snapshot: %+v", snapshot.NewSize)
	}
	if snapshot.NewRatio != 3 {
		t.Errorf("expected NewRatio 3, got %d", snapshot.NewRatio)
	}

	// A snapshot is a value copy: later mutations must not leak into it.
	if err := store.SetCommandLine(models.FlagNewSize, 50<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.NewSize.Bytes != 20<<20 {
		t.Errorf("expected snapshot to be unaffected by later writes, got %d", snapshot.NewSize.Bytes)
	}
}
