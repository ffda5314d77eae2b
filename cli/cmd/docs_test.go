// ABOUTME: Tests for the docs command
// ABOUTME: Verifies exit codes and that failure messages name the offending path

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDocs_Success(t *testing.T) {
	dir := t.TempDir()
	docsOutputDir = dir
	t.Cleanup(func() { docsOutputDir = "" })

	var buf bytes.Buffer
	if code := runDocs(&buf); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "index.md")); err != nil {
		t.Errorf("expected index.md to exist: %v", err)
	}
}

func TestRunDocs_MissingOutput(t *testing.T) {
	docsOutputDir = ""

	var buf bytes.Buffer
	if code := runDocs(&buf); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

func TestRunDocs_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir")
	docsOutputDir = missing
	t.Cleanup(func() { docsOutputDir = "" })

	var buf bytes.Buffer
	if code := runDocs(&buf); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), missing) {
		t.Errorf("expected the message to name %q, got %q", missing, buf.String())
	}
	if !strings.Contains(buf.String(), "destination directory not writable") {
		t.Errorf("expected the unwritable-directory message, got %q", buf.String())
	}
}
