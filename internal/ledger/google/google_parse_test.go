package google

import (
	"testing"

	"fundboard/internal/ledger"
)

func TestParseValues(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Contributors", "Spend", "Contribution", "Balance"},
		{"2024-01-01", "Alice", 0, 100, 100},
		{"2024-01-15", "Bob", 30, 0, 70},
	}
	got, err := parseValues(values)
	if err != nil {
		t.Fatalf("parseValues: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Contributor != "Alice" || got[0].Contribution.String() != "100" {
		t.Fatalf("row 0 = %s/%s, want Alice/100", got[0].Contributor, got[0].Contribution)
	}
	if got[1].Date.String() != "2024-01-15" {
		t.Fatalf("row 1 date = %s, want 2024-01-15", got[1].Date)
	}
}

func TestParseValuesSkipsBlankRows(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Contributors", "Spend", "Contribution", "Balance"},
		{"2024-01-01", "Alice", 0, 100, 100},
		{"", "", "", "", ""},
	}
	got, err := parseValues(values)
	if err != nil {
		t.Fatalf("parseValues: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
}

func TestParseValuesMissingColumns(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Contributors"},
		{"2024-01-01", "Alice"},
	}
	_, err := parseValues(values)
	se, ok := err.(*ledger.SchemaError)
	if !ok {
		t.Fatalf("expected *ledger.SchemaError, got %T: %v", err, err)
	}
	if len(se.Missing) != 3 {
		t.Fatalf("expected 3 missing columns, got %v", se.Missing)
	}
}

func TestParseValuesEmpty(t *testing.T) {
	_, err := parseValues(nil)
	if _, ok := err.(*ledger.SchemaError); !ok {
		t.Fatalf("expected *ledger.SchemaError, got %T: %v", err, err)
	}
}

func TestParseValuesBadRow(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Contributors", "Spend", "Contribution", "Balance"},
		{"soon", "Alice", 0, 100, 100},
	}
	_, err := parseValues(values)
	pe, ok := err.(*ledger.ParseError)
	if !ok {
		t.Fatalf("expected *ledger.ParseError, got %T: %v", err, err)
	}
	if pe.Column != ledger.ColDate || pe.Row != 2 {
		t.Fatalf("got %s row %d, want Date row 2", pe.Column, pe.Row)
	}
}
