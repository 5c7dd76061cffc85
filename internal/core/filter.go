package core

// TransactionType narrows the filtered view to one flow direction.
type TransactionType string

const (
	TypeAll          TransactionType = "All"
	TypeContribution TransactionType = "Contribution"
	TypeSpending     TransactionType = "Spending"
)

// ContributorAll selects every contributor in a Filter.
const ContributorAll = "All"

// Filter describes the user-selected view: an inclusive date
// range, a contributor (or "All") and a transaction type (or "All").
type Filter struct {
	Start       Date
	End         Date
	Contributor string
	Type        TransactionType
}

// DefaultFilter spans the full ledger with no contributor or type
// narrowing. For an empty ledger the date range is zero.
func DefaultFilter(l Ledger) Filter {
	min, max, _ := DateSpan(l)
	return Filter{Start: min, End: max, Contributor: ContributorAll, Type: TypeAll}
}

// Valid reports whether the type is one of the three known selections.
func (tt TransactionType) Valid() bool {
	switch tt {
	case TypeAll, TypeContribution, TypeSpending:
		return true
	}
	return false
}

// Matches applies the filter predicates to a single row: date range
// first, then contributor, then type. Each is a pure narrowing.
func (f Filter) Matches(t Transaction) bool {
	if t.Date.Before(f.Start.Time) || t.Date.After(f.End.Time) {
		return false
	}
	if f.Contributor != ContributorAll && t.Contributor != f.Contributor {
		return false
	}
	switch f.Type {
	case TypeContribution:
		return t.IsContribution()
	case TypeSpending:
		return t.IsSpend()
	}
	return true
}

// Apply returns the filtered view of the ledger, preserving source
// order. The result is a fresh slice; the ledger is never mutated.
func (f Filter) Apply(l Ledger) Ledger {
	out := make(Ledger, 0, len(l))
	for _, t := range l {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
