package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(d Date, who, contribution, spend, balance string) Transaction {
	return Transaction{
		Date:         d,
		Contributor:  who,
		Contribution: dec(contribution),
		Spend:        dec(spend),
		Balance:      dec(balance),
	}
}

// sampleLedger: Alice contributes 100, then Bob spends 30 two weeks
// later.
func sampleLedger() Ledger {
	return Ledger{
		tx(NewDate(2024, 1, 1), "Alice", "100", "0", "100"),
		tx(NewDate(2024, 1, 15), "Bob", "0", "30", "70"),
	}
}

func TestTotals(t *testing.T) {
	l := sampleLedger()
	if got := TotalContributions(l); !got.Equal(dec("100")) {
		t.Fatalf("TotalContributions = %s, want 100", got)
	}
	if got := TotalSpend(l); !got.Equal(dec("30")) {
		t.Fatalf("TotalSpend = %s, want 30", got)
	}
}

func TestCurrentBalance(t *testing.T) {
	if got := CurrentBalance(nil); !got.IsZero() {
		t.Fatalf("empty ledger balance = %s, want 0", got)
	}
	l := sampleLedger()
	if got := CurrentBalance(l); !got.Equal(dec("70")) {
		t.Fatalf("CurrentBalance = %s, want 70", got)
	}
	// Balance comes from the last unfiltered row; a filter applied
	// afterwards must not change what this reports.
	view := Filter{Start: NewDate(2024, 1, 1), End: NewDate(2024, 1, 1), Contributor: ContributorAll, Type: TypeAll}.Apply(l)
	if len(view) != 1 {
		t.Fatalf("expected 1 filtered row, got %d", len(view))
	}
	if got := CurrentBalance(l); !got.Equal(dec("70")) {
		t.Fatalf("CurrentBalance after filtering = %s, want 70", got)
	}
}

func TestDistinctContributors(t *testing.T) {
	l := sampleLedger()
	cases := []struct {
		onlyContributing bool
		want             int
	}{
		{false, 2},
		{true, 1}, // Bob only spends
	}
	for i, tc := range cases {
		if got := DistinctContributors(l, tc.onlyContributing); got != tc.want {
			t.Fatalf("case %d: DistinctContributors(onlyContributing=%v) = %d, want %d", i, tc.onlyContributing, got, tc.want)
		}
	}
}

func TestContributionsByContributor(t *testing.T) {
	l := sampleLedger()
	got := ContributionsByContributor(l)
	if len(got) != 1 {
		t.Fatalf("expected 1 contributor with positive total, got %d", len(got))
	}
	if got[0].Name != "Alice" || !got[0].Total.Equal(dec("100")) {
		t.Fatalf("got %s=%s, want Alice=100", got[0].Name, got[0].Total)
	}
}

func TestContributionsByContributorOrdering(t *testing.T) {
	l := Ledger{
		tx(NewDate(2024, 2, 1), "Carol", "50", "0", "50"),
		tx(NewDate(2024, 2, 2), "Alice", "200", "0", "250"),
		tx(NewDate(2024, 2, 3), "Carol", "150", "0", "400"),
		tx(NewDate(2024, 2, 4), "Bob", "200", "0", "600"),
	}
	got := ContributionsByContributor(l)
	want := []struct {
		name, total string
	}{
		{"Alice", "200"}, // ties on 200 broken by name
		{"Bob", "200"},
		{"Carol", "200"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Name != w.name || !got[i].Total.Equal(dec(w.total)) {
			t.Fatalf("row %d: got %s=%s, want %s=%s", i, got[i].Name, got[i].Total, w.name, w.total)
		}
	}
}

func TestMonthlyFlows(t *testing.T) {
	l := Ledger{
		tx(NewDate(2024, 3, 5), "Alice", "100", "0", "100"),
		tx(NewDate(2024, 1, 10), "Bob", "0", "40", "60"),
		tx(NewDate(2024, 1, 2), "Alice", "100", "0", "100"),
		tx(NewDate(2024, 3, 20), "Bob", "0", "25", "135"),
	}
	got := MonthlyFlows(l)
	if len(got) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(got))
	}
	jan, mar := got[0], got[1]
	if jan.Year != 2024 || jan.Month != 1 {
		t.Fatalf("first bucket = %d-%02d, want 2024-01", jan.Year, jan.Month)
	}
	if !jan.Contribution.Equal(dec("100")) || !jan.Spend.Equal(dec("40")) {
		t.Fatalf("jan flows = %s/%s, want 100/40", jan.Contribution, jan.Spend)
	}
	if mar.Year != 2024 || mar.Month != 3 {
		t.Fatalf("second bucket = %d-%02d, want 2024-03", mar.Year, mar.Month)
	}
	if !mar.Contribution.Equal(dec("100")) || !mar.Spend.Equal(dec("25")) {
		t.Fatalf("mar flows = %s/%s, want 100/25", mar.Contribution, mar.Spend)
	}
}

func TestDateSpan(t *testing.T) {
	if _, _, ok := DateSpan(nil); ok {
		t.Fatal("expected ok=false for empty ledger")
	}
	l := Ledger{
		tx(NewDate(2024, 5, 10), "Alice", "10", "0", "10"),
		tx(NewDate(2024, 1, 2), "Bob", "10", "0", "20"),
		tx(NewDate(2024, 8, 30), "Carol", "10", "0", "30"),
	}
	min, max, ok := DateSpan(l)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if min.String() != "2024-01-02" || max.String() != "2024-08-30" {
		t.Fatalf("span = %s..%s, want 2024-01-02..2024-08-30", min, max)
	}
}

func TestContributors(t *testing.T) {
	l := Ledger{
		tx(NewDate(2024, 1, 1), "Carol", "10", "0", "10"),
		tx(NewDate(2024, 1, 2), "Alice", "10", "0", "20"),
		tx(NewDate(2024, 1, 3), "Carol", "0", "5", "15"),
	}
	got := Contributors(l)
	if len(got) != 2 || got[0] != "Alice" || got[1] != "Carol" {
		t.Fatalf("Contributors = %v, want [Alice Carol]", got)
	}
}

// Sum-consistency over a larger ledger: the totals equal a manual fold.
func TestSumConsistency(t *testing.T) {
	l := Ledger{
		tx(NewDate(2024, 1, 1), "A", "10.25", "0", "10.25"),
		tx(NewDate(2024, 1, 2), "B", "0.10", "0", "10.35"),
		tx(NewDate(2024, 1, 3), "C", "0.20", "0", "10.55"),
		tx(NewDate(2024, 1, 4), "D", "0", "0.30", "10.25"),
	}
	if got := TotalContributions(l); !got.Equal(dec("10.55")) {
		t.Fatalf("TotalContributions = %s, want 10.55", got)
	}
	if got := TotalSpend(l); !got.Equal(dec("0.30")) {
		t.Fatalf("TotalSpend = %s, want 0.30", got)
	}
}
