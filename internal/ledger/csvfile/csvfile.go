// Package csvfile reads and writes the fund ledger as a CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fundboard/internal/core"
	"fundboard/internal/ledger"
)

// ExportName is the fixed export file name, written next to the source
// (or into a configured export directory), overwriting any previous copy.
const ExportName = "exported_fund_data.csv"

// Source loads a ledger from a CSV file on disk.
type Source struct {
	Path string
}

// Ensure interface conformance
var (
	_ ledger.Source   = (*Source)(nil)
	_ ledger.Exporter = (*Exporter)(nil)
)

func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Load reads the whole file, validates the header and parses every row.
// Any malformed row fails the load.
func (s *Source) Load(_ context.Context) (core.Ledger, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrSourceNotFound, s.Path)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // header decides; rows may have trailing blanks
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, &ledger.SchemaError{Missing: ledger.Header}
	}

	cols, err := ledger.Columns(records[0])
	if err != nil {
		return nil, err
	}

	var out core.Ledger
	for i, rec := range records[1:] {
		t, err := ledger.UnmarshalTransaction(rec, cols, i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Exporter writes filtered views as CSV into Dir.
type Exporter struct {
	Dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// Export writes the view to Dir/ExportName, fresh, not appended.
func (e *Exporter) Export(_ context.Context, view core.Ledger) (string, error) {
	path := filepath.Join(e.Dir, ExportName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(ledger.Header); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for i, t := range view {
		if err := cw.Write(ledger.MarshalTransaction(t)); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing export %s: %w", path, err)
	}
	return path, nil
}
