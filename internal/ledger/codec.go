package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fundboard/internal/core"
)

// Required source columns, exact and case-sensitive.
const (
	ColDate         = "Date"
	ColContributors = "Contributors"
	ColSpend        = "Spend"
	ColContribution = "Contribution"
	ColBalance      = "Balance"
)

// Header is the canonical column order used when writing exports.
var Header = []string{ColDate, ColContributors, ColSpend, ColContribution, ColBalance}

const dateFormat = "2006-01-02"

// dateLayouts are accepted on input. Exports always write dateFormat.
var dateLayouts = []string{
	dateFormat,
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"2/1/2006",
}

// Columns maps each required column name to its index in the header row.
// All missing columns are collected into one SchemaError.
func Columns(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	var missing []string
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return idx, nil
}

// UnmarshalTransaction converts one data row into a Transaction using the
// column index from Columns. row is the 1-based row number for errors.
func UnmarshalTransaction(record []string, cols map[string]int, row int) (core.Transaction, error) {
	get := func(name string) string {
		i := cols[name]
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := parseDate(get(ColDate))
	if err != nil {
		return core.Transaction{}, &ParseError{Row: row, Column: ColDate, Value: get(ColDate), Err: err}
	}

	contribution, err := parseAmount(get(ColContribution))
	if err != nil {
		return core.Transaction{}, &ParseError{Row: row, Column: ColContribution, Value: get(ColContribution), Err: err}
	}
	spend, err := parseAmount(get(ColSpend))
	if err != nil {
		return core.Transaction{}, &ParseError{Row: row, Column: ColSpend, Value: get(ColSpend), Err: err}
	}
	balance, err := parseBalance(get(ColBalance))
	if err != nil {
		return core.Transaction{}, &ParseError{Row: row, Column: ColBalance, Value: get(ColBalance), Err: err}
	}

	return core.Transaction{
		Date:         date,
		Contributor:  get(ColContributors),
		Contribution: contribution,
		Spend:        spend,
		Balance:      balance,
	}, nil
}

// MarshalTransaction converts a Transaction to a row in Header order.
// Amounts are written with two decimals so exports reload losslessly.
func MarshalTransaction(t core.Transaction) []string {
	return []string{
		t.Date.Format(dateFormat),
		t.Contributor,
		t.Spend.StringFixed(2),
		t.Contribution.StringFixed(2),
		t.Balance.StringFixed(2),
	}
}

func parseDate(s string) (core.Date, error) {
	if s == "" {
		return core.Date{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return core.DateOf(t), nil
		}
	}
	return core.Date{}, errors.New("unrecognized date format")
}

// parseAmount parses a non-negative flow amount. Empty cells mean zero
// ("not applicable" for that row).
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(normalizeNumber(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, core.ErrNegativeAmount
	}
	return d, nil
}

// parseBalance parses the running balance, which unlike the flow columns
// may legitimately be negative (an overdrawn fund).
func parseBalance(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("empty balance")
	}
	return decimal.NewFromString(normalizeNumber(s))
}

// normalizeNumber strips currency symbols and thousands separators that
// spreadsheet cell formatting tends to leak into extracted values.
func normalizeNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
