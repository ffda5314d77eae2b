// ABOUTME: Tests for the flag-reference generator
// ABOUTME: Verifies output layout and the two I/O failure kinds name the offending path

package docgen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/models"
)

func TestWriteFlagReference(t *testing.T) {
	dir := t.TempDir()
	store := flags.NewStore()
	if err := store.SetCommandLine(models.FlagNewSize, 20<<20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := WriteFlagReference(dir, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatalf("expected index.md: %v", err)
	}
	if !strings.Contains(string(index), models.FlagNewSize) {
		t.Error("expected index to list NewSize")
	}

	page, err := os.ReadFile(filepath.Join(dir, "newsize.md"))
	if err != nil {
		t.Fatalf("expected newsize.md: %v", err)
	}
	if !strings.Contains(string(page), "command-line") {
		t.Error("expected flag page to show the command-line origin")
	}
	if !strings.Contains(string(page), "20 MiB") {
		t.Error("expected flag page to show the value in binary units")
	}
}

func TestWriteFlagReference_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir")

	err := WriteFlagReference(missing, flags.NewStore())

	var dirErr *DirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected a DirError, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("expected the message to name the path %q, got %q", missing, err.Error())
	}
}

func TestWriteFlagReference_UnwritableDirectory(t *testing.T) {
	// Checked before any output file is attempted.
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	if probe, err := os.CreateTemp(dir, "root-check-*"); err == nil {
		probe.Close()
		os.Remove(probe.Name())
		t.Skip("running with privileges that ignore directory permissions")
	}

	err := WriteFlagReference(dir, flags.NewStore())

	var dirErr *DirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected a DirError, got %v", err)
	}
	if dirErr.Path != dir {
		t.Errorf("expected path %q, got %q", dir, dirErr.Path)
	}

	// Nothing may have been written before the probe failed.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no output files, found %d", len(entries))
	}
}

func TestWriteFlagReference_FileWriteFailure(t *testing.T) {
	// A directory squatting on an output filename fails that single write;
	// the error names the specific path.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "newsize.md")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err := WriteFlagReference(dir, flags.NewStore())

	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected a FileError, got %v", err)
	}
	if fileErr.Path != blocked {
		t.Errorf("expected path %q, got %q", blocked, fileErr.Path)
	}
	if !strings.Contains(err.Error(), blocked) {
		t.Errorf("expected the message to name the path %q, got %q", blocked, err.Error())
	}
}
