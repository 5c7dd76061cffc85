package http

import (
	"html/template"
	"log/slog"
	"net/http"

	"fundboard/internal/core"
)

// txRow is a template-friendly transaction with formatted amounts.
type txRow struct {
	Date         string
	Contributor  string
	Contribution string
	Spend        string
	Balance      string
}

func toRows(view core.Ledger) []txRow {
	rows := make([]txRow, 0, len(view))
	for _, t := range view {
		rows = append(rows, txRow{
			Date:         t.Date.String(),
			Contributor:  t.Contributor,
			Contribution: formatRupees(t.Contribution),
			Spend:        formatRupees(t.Spend),
			Balance:      formatRupees(t.Balance),
		})
	}
	return rows
}

// handleTransactions renders the filtered transaction table partial.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	l, err := s.source.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(loadErrorMessage(err)) + `</div>`))
		return
	}

	f, err := parseFilter(r.URL.Query(), l)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	rows := toRows(f.Apply(l))
	data := struct {
		Rows     []txRow
		RowCount int
	}{Rows: rows, RowCount: len(rows)}

	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "transactions_table.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Transactions template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleExport writes the current filtered view through the exporter and
// reports the outcome inline. Export failures never end the session.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if s.exporter == nil {
		w.WriteHeader(http.StatusNotImplemented)
		_, _ = w.Write([]byte(`<div class="error">Export is not configured</div>`))
		return
	}

	l, err := s.source.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(loadErrorMessage(err)) + `</div>`))
		return
	}

	f, err := parseFilter(r.URL.Query(), l)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	path, err := s.exporter.Export(r.Context(), f.Apply(l))
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Export failed: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Filtered view exported", "path", path)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Data exported to ` + template.HTMLEscapeString(path) + `</div>`))
}
