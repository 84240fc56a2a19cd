// Package export serializes notes to JSON or CSV files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matsen/notekeep/internal/storage"
)

// Format is a supported export format.
type Format int

const (
	FormatJSON Format = iota
	FormatCSV
)

// csvHeader is the first row of every CSV export.
var csvHeader = []string{"id", "title", "body", "created_at"}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// UnsupportedFormatError is returned for any format other than json or csv.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (use json or csv)", e.Format)
}

// IOError wraps a failure to create or write the export file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseFormat maps a user-supplied name to a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, &UnsupportedFormatError{Format: s}
	}
}

// Export writes notes to path in the given format, replacing any
// existing file. The output is written to a temporary file in the same
// directory and renamed into place, so a failed export leaves the previous
// file untouched.
func Export(notes []storage.Note, format Format, path string) error {
	// Reject bad formats before creating any file.
	if format != FormatJSON && format != FormatCSV {
		return &UnsupportedFormatError{Format: format.String()}
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	tmp := f.Name()

	if err := Write(f, notes, format); err != nil {
		f.Close()
		os.Remove(tmp)
		return &IOError{Path: path, Err: err}
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(tmp)
		return &IOError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// Write serializes notes to w in the given format.
func Write(w io.Writer, notes []storage.Note, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, notes)
	case FormatCSV:
		return writeCSV(w, notes)
	default:
		return &UnsupportedFormatError{Format: format.String()}
	}
}

func writeJSON(w io.Writer, notes []storage.Note) error {
	if notes == nil {
		notes = []storage.Note{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(notes); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, notes []storage.Note) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, n := range notes {
		record := []string{strconv.FormatInt(n.ID, 10), n.Title, n.Body, n.CreatedAt}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row for note %d: %w", n.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
