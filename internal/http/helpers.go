package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fundboard/internal/core"
	"fundboard/internal/ledger"
)

// formatRupees renders an amount as ₹ with two decimals and comma
// grouping, e.g. ₹1,234.50.
func formatRupees(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(c)
	}
	out := "₹" + grouped.String() + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

const filterDateFormat = "2006-01-02"

// parseFilter builds a filter from query parameters, defaulting each
// control to the full-ledger view when absent.
func parseFilter(q url.Values, l core.Ledger) (core.Filter, error) {
	f := core.DefaultFilter(l)

	if v := strings.TrimSpace(q.Get("start")); v != "" {
		t, err := time.Parse(filterDateFormat, v)
		if err != nil {
			return core.Filter{}, fmt.Errorf("invalid start date %q", v)
		}
		f.Start = core.DateOf(t)
	}
	if v := strings.TrimSpace(q.Get("end")); v != "" {
		t, err := time.Parse(filterDateFormat, v)
		if err != nil {
			return core.Filter{}, fmt.Errorf("invalid end date %q", v)
		}
		f.End = core.DateOf(t)
	}
	if v := strings.TrimSpace(q.Get("contributor")); v != "" {
		f.Contributor = v
	}
	if v := strings.TrimSpace(q.Get("type")); v != "" {
		tt := core.TransactionType(v)
		if !tt.Valid() {
			return core.Filter{}, fmt.Errorf("invalid transaction type %q", v)
		}
		f.Type = tt
	}
	return f, nil
}

// loadErrorMessage translates a load failure into the message shown to
// the user. Unknown failures get a generic message; details go to logs.
func loadErrorMessage(err error) string {
	var se *ledger.SchemaError
	var pe *ledger.ParseError
	switch {
	case errors.Is(err, ledger.ErrSourceNotFound):
		return "Ledger file not found. Please ensure the fund spreadsheet exists at the configured location."
	case errors.As(err, &se):
		return "The fund spreadsheet is missing required column(s): " + strings.Join(se.Missing, ", ")
	case errors.As(err, &pe):
		return "The fund spreadsheet contains a value that could not be read: " + pe.Error()
	}
	return "Could not load the fund ledger."
}
