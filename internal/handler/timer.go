package handler

import (
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"workhours/internal/timer"
)

// timerSignals is the state pushed to the page on every tick.
type timerSignals struct {
	State     string `json:"state"`
	Elapsed   string `json:"elapsed"`
	StartedAt string `json:"startedAt,omitempty"`
}

func signalsOf(s timer.Snapshot) timerSignals {
	sig := timerSignals{State: s.State.String(), Elapsed: s.ElapsedText()}
	if !s.StartedAt.IsZero() {
		sig.StartedAt = s.StartedAt.Format(time.RFC3339)
	}
	return sig
}

func timerJSON(s timer.Snapshot) map[string]any {
	return map[string]any{"timer": signalsOf(s)}
}

// HandleTimerState returns the current timer.
// GET /api/timer
func (h *Handler) HandleTimerState(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, timerJSON(h.services.Timer.Snapshot(user.ID)))
}

// timerAction adapts a start, pause or stop call to a handler.
func (h *Handler) timerAction(action func(userID string) (timer.Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		snap, err := action(user.ID)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, timerJSON(snap))
	}
}

// HandleTimerSave stores the stopped timer as an entry.
// POST /api/timer/save
// Request:  {"description":"..."}
// Response: 201 {"entry": {...}, "timer": {...}}
func (h *Handler) HandleTimerSave(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	var req struct {
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	entry, err := h.services.Timer.Save(r.Context(), user.ID, req.Description)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"entry": entry,
		"timer": signalsOf(h.services.Timer.Snapshot(user.ID)),
	})
}

// HandleTimerCancel discards the timer.
// POST /api/timer/cancel
func (h *Handler) HandleTimerCancel(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, timerJSON(h.services.Timer.Cancel(user.ID)))
}

// HandleTimerStream pushes the timer's signals once per tick until the
// client goes away.
// GET /api/timer/stream
func (h *Handler) HandleTimerStream(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	sse := datastar.NewSSE(w, r)

	ticker := time.NewTicker(h.timerTick)
	defer ticker.Stop()

	for {
		if err := sse.MarshalAndPatchSignals(signalsOf(h.services.Timer.Snapshot(user.ID))); err != nil {
			h.logger.Debug().Err(err).Str("user_id", user.ID).Msg("timer stream closed")
			return
		}
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
