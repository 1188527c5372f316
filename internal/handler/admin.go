package handler

import "net/http"

// HandleAdminUsers lists every user with entry totals.
// GET /api/admin/users
func (h *Handler) HandleAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.Reporting.GetAdminOverview(r.Context(), UserFromContext(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// HandleAdminUserEntries lists one user's entries.
// GET /api/admin/users/{id}/entries
func (h *Handler) HandleAdminUserEntries(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.Reporting.GetUserEntries(r.Context(), UserFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
