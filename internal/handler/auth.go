package handler

import (
	"net/http"
	"time"

	"workhours/internal/validation"
)

// HandleRegister creates an account.
// POST /api/auth/register
// Request:  {"username","first_name","last_name","password","confirm_password"}
// Response: 201 {"user": {...}}
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req validation.Registration
	if err := readJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	profile, err := h.services.Auth.Register(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": profile})
}

// HandleLogin checks credentials and sets the auth cookie.
// POST /api/auth/login
// Request:  {"username","password"}
// Response: {"token","expires_at","user"}
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req validation.Credentials
	if err := readJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.services.Auth.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       result.Profile,
	})
}

// HandleLogout ends the session, if any, and clears the cookie.
// POST /api/auth/logout
// Response: 204 No Content
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if token := tokenFromRequest(r); token != "" {
		if err := h.services.Auth.Logout(r.Context(), token); err != nil {
			h.logger.Debug().Err(err).Msg("logout with unusable token")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the signed-in user.
// GET /api/auth/me
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"user":         user,
		"display_name": user.DisplayName(),
		"is_admin":     user.IsAdmin(),
	})
}
