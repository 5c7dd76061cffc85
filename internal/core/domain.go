package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Date is a calendar date at day granularity. The time component is
	// always UTC midnight so dates compare cleanly.
	Date struct {
		time.Time
	}

	// Transaction is one row of the fund ledger. Balance is the running
	// total as recorded in the source and is never recomputed: the source
	// may contain adjustments not captured by the two flow columns.
	Transaction struct {
		Date         Date
		Contributor  string
		Contribution decimal.Decimal
		Spend        decimal.Decimal
		Balance      decimal.Decimal
	}

	// Ledger is the full ordered set of transactions loaded from the
	// source for one run. Row order is source order.
	Ledger []Transaction
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyContributor = errors.New("empty contributor")
	ErrNegativeAmount   = errors.New("negative amount")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary timestamp to a calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the month (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// String renders the date in ISO form (2006-01-02).
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Contributor) == "" {
		return ErrEmptyContributor
	}
	if t.Contribution.IsNegative() || t.Spend.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// IsContribution reports whether the row records money flowing in.
func (t Transaction) IsContribution() bool {
	return t.Contribution.IsPositive()
}

// IsSpend reports whether the row records money flowing out.
func (t Transaction) IsSpend() bool {
	return t.Spend.IsPositive()
}
