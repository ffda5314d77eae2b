// ABOUTME: Flag-reference documentation generator
// ABOUTME: Emits one markdown file per heap flag plus an index into a destination directory

package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/markalston/heap-sizing-analyzer/flags"
	"github.com/markalston/heap-sizing-analyzer/models"
)

// DirError reports a destination directory that is missing or not writable.
// It is detected by probing before any output file is attempted.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("destination directory not writable: %s", e.Path)
}

func (e *DirError) Unwrap() error { return e.Err }

// FileError reports a failure writing an individual output file mid-run.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error writing file: %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// WriteFlagReference generates the flag reference into dir: an index.md
// listing every flag and one <flag>.md per flag. The destination is probed
// for writability before any file is emitted; a read-only filesystem is an
// operator configuration error, so neither failure kind is retried.
func WriteFlagReference(dir string, store *flags.Store) error {
	if err := checkWritable(dir); err != nil {
		return err
	}

	states := store.All()
	for _, st := range states {
		path := filepath.Join(dir, strings.ToLower(st.Name)+".md")
		if err := os.WriteFile(path, []byte(flagPage(st)), 0o644); err != nil {
			return &FileError{Path: path, Err: err}
		}
	}

	indexPath := filepath.Join(dir, "index.md")
	if err := os.WriteFile(indexPath, []byte(indexPage(states)), 0o644); err != nil {
		return &FileError{Path: indexPath, Err: err}
	}
	return nil
}

// checkWritable probes dir before any output is attempted.
func checkWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &DirError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &DirError{Path: dir, Err: fmt.Errorf("not a directory")}
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return &DirError{Path: dir, Err: err}
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

func flagPage(st models.FlagState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", st.Name)
	if st.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", st.Description)
	}
	fmt.Fprintf(&b, "- Current value: %s (%d)\n", formatValue(st), st.Bytes)
	fmt.Fprintf(&b, "- Origin: %s\n", st.Origin)
	return b.String()
}

func indexPage(states []models.FlagState) string {
	var b strings.Builder
	b.WriteString("# Heap Sizing Flags\n\n")
	b.WriteString("| Flag | Value | Origin |\n")
	b.WriteString("|------|-------|--------|\n")
	for _, st := range states {
		fmt.Fprintf(&b, "| [%s](%s.md) | %s | %s |\n",
			st.Name, strings.ToLower(st.Name), formatValue(st), st.Origin)
	}
	return b.String()
}

// formatValue renders byte-valued flags in binary units; NewRatio is a bare
// proportion, not a byte count.
func formatValue(st models.FlagState) string {
	if st.Name == models.FlagNewRatio {
		return fmt.Sprintf("%d", st.Bytes)
	}
	return humanize.IBytes(st.Bytes)
}
