package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ContributorTotal is a contribution sum aggregated by contributor name.
type ContributorTotal struct {
	Name  string
	Total decimal.Decimal
}

// MonthFlow holds the contribution and spend sums for one calendar month.
type MonthFlow struct {
	Year         int
	Month        int // 1-12
	Contribution decimal.Decimal
	Spend        decimal.Decimal
}

// TotalContributions sums the Contribution column over all rows.
func TotalContributions(l Ledger) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range l {
		sum = sum.Add(t.Contribution)
	}
	return sum
}

// TotalSpend sums the Spend column over all rows.
func TotalSpend(l Ledger) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range l {
		sum = sum.Add(t.Spend)
	}
	return sum
}

// CurrentBalance is the Balance of the last row in source order. It is
// taken from the unfiltered ledger; filtering never affects it.
func CurrentBalance(l Ledger) decimal.Decimal {
	if len(l) == 0 {
		return decimal.Zero
	}
	return l[len(l)-1].Balance
}

// DistinctContributors counts unique contributor names. With
// onlyContributing set, rows with a zero Contribution are ignored, so a
// name that only ever spends does not count.
func DistinctContributors(l Ledger, onlyContributing bool) int {
	seen := map[string]struct{}{}
	for _, t := range l {
		if onlyContributing && !t.IsContribution() {
			continue
		}
		seen[t.Contributor] = struct{}{}
	}
	return len(seen)
}

// ContributionsByContributor maps each contributor to the sum of their
// contributions, sorted descending by total. Contributors whose total is
// zero are excluded. Ties are broken by name so the output is stable.
func ContributionsByContributor(l Ledger) []ContributorTotal {
	byName := map[string]decimal.Decimal{}
	for _, t := range l {
		if !t.IsContribution() {
			continue
		}
		cur, ok := byName[t.Contributor]
		if !ok {
			cur = decimal.Zero
		}
		byName[t.Contributor] = cur.Add(t.Contribution)
	}
	out := make([]ContributorTotal, 0, len(byName))
	for name, total := range byName {
		if !total.IsPositive() {
			continue
		}
		out = append(out, ContributorTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MonthlyFlows buckets the ledger by calendar month and sums both flow
// columns per bucket, one row per distinct month, chronological.
func MonthlyFlows(l Ledger) []MonthFlow {
	type key struct{ year, month int }
	sums := map[key]*MonthFlow{}
	for _, t := range l {
		k := key{t.Date.Year(), t.Date.Month()}
		mf, ok := sums[k]
		if !ok {
			mf = &MonthFlow{Year: k.year, Month: k.month, Contribution: decimal.Zero, Spend: decimal.Zero}
			sums[k] = mf
		}
		mf.Contribution = mf.Contribution.Add(t.Contribution)
		mf.Spend = mf.Spend.Add(t.Spend)
	}
	out := make([]MonthFlow, 0, len(sums))
	for _, mf := range sums {
		out = append(out, *mf)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// DateSpan returns the minimum and maximum dates present in the ledger.
// ok is false for an empty ledger.
func DateSpan(l Ledger) (min, max Date, ok bool) {
	if len(l) == 0 {
		return Date{}, Date{}, false
	}
	min, max = l[0].Date, l[0].Date
	for _, t := range l[1:] {
		if t.Date.Before(min.Time) {
			min = t.Date
		}
		if t.Date.After(max.Time) {
			max = t.Date
		}
	}
	return min, max, true
}

// Contributors returns the distinct contributor names in the ledger,
// sorted, for populating the filter selector.
func Contributors(l Ledger) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range l {
		if _, ok := seen[t.Contributor]; ok {
			continue
		}
		seen[t.Contributor] = struct{}{}
		out = append(out, t.Contributor)
	}
	sort.Strings(out)
	return out
}
