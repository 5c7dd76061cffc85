// Package xlsx reads and writes the fund ledger as an Excel workbook,
// the format the fund is actually kept in.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"fundboard/internal/core"
	"fundboard/internal/ledger"
)

// ExportName is the fixed export file name. Exports land in the
// exporter's directory and overwrite any previous copy.
const ExportName = "exported_fund_data.xlsx"

// Source loads a ledger from the first sheet of an .xlsx workbook.
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

// Load opens the workbook, validates the header row of the first sheet
// and parses every data row. Any malformed cell fails the load.
func (s *Source) Load(_ context.Context) (core.Ledger, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrSourceNotFound, s.Path)
	}
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", s.Path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &ledger.SchemaError{Missing: ledger.Header}
	}

	cols, err := ledger.Columns(rows[0])
	if err != nil {
		return nil, err
	}

	var out core.Ledger
	for i, rec := range rows[1:] {
		if isBlank(rec) {
			continue
		}
		normalizeSerialDate(rec, cols[ledger.ColDate])
		t, err := ledger.UnmarshalTransaction(rec, cols, i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// normalizeSerialDate rewrites an Excel serial date number (what GetRows
// yields for date cells with a general number format) into ISO form so
// the shared codec can parse it.
func normalizeSerialDate(rec []string, idx int) {
	if idx < 0 || idx >= len(rec) {
		return
	}
	serial, err := strconv.ParseFloat(rec[idx], 64)
	if err != nil || serial < 60 { // 60 = 1900-02-29 quirk boundary; below is noise
		return
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return
	}
	rec[idx] = t.Format("2006-01-02")
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}

// Exporter writes filtered views as an .xlsx workbook into Dir.
type Exporter struct {
	Dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir}
}

// Export writes the view to Dir/ExportName, header plus one row per
// transaction, written fresh on every call.
func (e *Exporter) Export(_ context.Context, view core.Ledger) (string, error) {
	path := filepath.Join(e.Dir, ExportName)
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(ledger.Header))
	for i, h := range ledger.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for i, t := range view {
		rec := ledger.MarshalTransaction(t)
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save export %s: %w", path, err)
	}
	return path, nil
}
