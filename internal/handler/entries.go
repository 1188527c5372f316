package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/metrics"
	"workhours/internal/validation"
)

// HandleListEntries returns the user's entries, newest first.
// GET /api/entries
func (h *Handler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	entries, err := h.services.Entries.ListEntries(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	domain.SortEntriesForDisplay(entries)
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// HandleCreateEntry records a manual entry.
// POST /api/entries
// Request:  {"date":"2026-10-19","start_time":"09:00","end_time":"17:30","description":"..."}
// Response: 201 {"entry": {...}}
func (h *Handler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	var req validation.EntryInput
	if err := readJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	entry, err := h.services.Entries.CreateEntry(r.Context(), user.ID, req, metrics.SourceManual)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry})
}

// HandleExport downloads the user's entries as CSV.
// GET /api/entries/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	var buf bytes.Buffer
	if err := h.services.Export.WriteCSV(r.Context(), user.ID, &buf); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="workhours.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleDashboard returns totals, per-day groups and weekly progress.
// GET /api/dashboard
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	dash, err := h.services.Reporting.GetDashboard(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"dashboard":       dash,
		"goal_reached":    dash.Progress.GoalReached(),
		"clamped_percent": dash.Progress.ClampedPercent(),
		"total_text":      accounting.FormatHours(dash.TotalHours),
	})
}

// HandleMonthOverview partitions one month into weeks.
// GET /api/overview/{year}/{month}
func (h *Handler) HandleMonthOverview(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 || year > 9999 {
		writeError(w, h.logger, errors.NewInvalidInputError("year", r.PathValue("year"), "must be a four digit year"))
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		writeError(w, h.logger, errors.NewInvalidInputError("month", r.PathValue("month"), "must be between 1 and 12"))
		return
	}

	summary, err := h.services.Reporting.GetMonthOverview(r.Context(), user.ID, year, time.Month(month))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"overview": summary})
}
