package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fundboard/internal/core"
)

// handleIndex renders the full dashboard page: summary metrics, chart
// canvases, filter controls and the initial (unfiltered) table.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	l, err := s.source.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err)
		s.renderErrorPage(w, r, loadErrorMessage(err))
		return
	}

	f := core.DefaultFilter(l)
	data := struct {
		TotalContributions string
		TotalSpending      string
		CurrentBalance     string
		ContributorCount   int
		StartDate          string
		EndDate            string
		Contributors       []string
		Rows               []txRow
		RowCount           int
	}{
		TotalContributions: formatRupees(core.TotalContributions(l)),
		TotalSpending:      formatRupees(core.TotalSpend(l)),
		CurrentBalance:     formatRupees(core.CurrentBalance(l)),
		// Contributor count follows the positive-contribution rule: a
		// name that only ever spends is not a contributor.
		ContributorCount: core.DistinctContributors(l, true),
		Contributors:     core.Contributors(l),
		Rows:             toRows(f.Apply(l)),
	}
	if len(l) > 0 {
		data.StartDate = f.Start.String()
		data.EndDate = f.End.String()
	}
	data.RowCount = len(data.Rows)

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderErrorPage(w http.ResponseWriter, r *http.Request, msg string) {
	w.WriteHeader(http.StatusServiceUnavailable)
	if s.templates != nil {
		if err := s.templates.ExecuteTemplate(w, "error.html", struct{ Message string }{Message: msg}); err == nil {
			return
		}
	}
	_, _ = w.Write([]byte(msg))
}

// handleBalanceSeries returns the balance-over-time line chart data.
func (s *Server) handleBalanceSeries(w http.ResponseWriter, r *http.Request) {
	l, ok := s.loadForJSON(w, r)
	if !ok {
		return
	}
	type point struct {
		Date    string  `json:"date"`
		Balance float64 `json:"balance"`
	}
	points := make([]point, 0, len(l))
	for _, t := range l {
		points = append(points, point{Date: t.Date.String(), Balance: t.Balance.InexactFloat64()})
	}
	writeJSON(w, r, points)
}

// handleContributorTotals returns the contributions-by-contributor bar
// chart data, sorted descending.
func (s *Server) handleContributorTotals(w http.ResponseWriter, r *http.Request) {
	l, ok := s.loadForJSON(w, r)
	if !ok {
		return
	}
	type bar struct {
		Name  string  `json:"name"`
		Total float64 `json:"total"`
	}
	totals := core.ContributionsByContributor(l)
	bars := make([]bar, 0, len(totals))
	for _, ct := range totals {
		bars = append(bars, bar{Name: ct.Name, Total: ct.Total.InexactFloat64()})
	}
	writeJSON(w, r, bars)
}

// handleMonthlyFlows returns the monthly contributions-vs-spending
// grouped bar chart data, chronological.
func (s *Server) handleMonthlyFlows(w http.ResponseWriter, r *http.Request) {
	l, ok := s.loadForJSON(w, r)
	if !ok {
		return
	}
	type month struct {
		Month        string  `json:"month"`
		Contribution float64 `json:"contribution"`
		Spend        float64 `json:"spend"`
	}
	flows := core.MonthlyFlows(l)
	months := make([]month, 0, len(flows))
	for _, mf := range flows {
		months = append(months, month{
			Month:        core.NewDate(mf.Year, mf.Month, 1).Format("Jan 2006"),
			Contribution: mf.Contribution.InexactFloat64(),
			Spend:        mf.Spend.InexactFloat64(),
		})
	}
	writeJSON(w, r, months)
}

// handleFlowBreakdown returns the total-spending-vs-contributions pie
// chart data.
func (s *Server) handleFlowBreakdown(w http.ResponseWriter, r *http.Request) {
	l, ok := s.loadForJSON(w, r)
	if !ok {
		return
	}
	out := struct {
		Contributions float64 `json:"contributions"`
		Spending      float64 `json:"spending"`
	}{
		Contributions: core.TotalContributions(l).InexactFloat64(),
		Spending:      core.TotalSpend(l).InexactFloat64(),
	}
	writeJSON(w, r, out)
}

func (s *Server) loadForJSON(w http.ResponseWriter, r *http.Request) (core.Ledger, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return nil, false
	}
	l, err := s.source.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err, "url", r.URL.Path)
		http.Error(w, loadErrorMessage(err), http.StatusServiceUnavailable)
		return nil, false
	}
	return l, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "JSON encoding failed", "error", err, "url", r.URL.Path)
	}
}
