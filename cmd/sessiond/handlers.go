package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

type handlers struct {
	mgr *session.Manager
	log *slog.Logger
}

type homeResponse struct {
	Visits  int      `json:"visits"`
	UserID  int64    `json:"user_id,omitempty"`
	Notices []string `json:"notices,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	state := session.MustStateFromContext(r.Context())

	visits, _ := state.GetInt("visits")
	visits++
	state.Set("visits", visits)
	userID, _ := state.GetInt64("user_id")

	writeJSON(w, http.StatusOK, homeResponse{
		Visits:  visits,
		UserID:  userID,
		Notices: state.Messages().Pop(session.Notices),
		Errors:  state.Messages().Pop(session.Errors),
	})
}

func (h *handlers) notice(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	msgs := session.MessagesFromContext(r.Context())
	if key := r.FormValue("key"); key != "" {
		msgs.Put(session.Notices, key, text)
	} else {
		msgs.Notice(text)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	userID, ok := userParam(w, r)
	if !ok {
		return
	}
	if err := h.mgr.BindUser(r, userID); err != nil {
		h.fail(w, r, err)
		return
	}
	state := session.MustStateFromContext(r.Context())
	state.Set("user_id", userID)
	state.Messages().Put(session.Notices, "auth", "signed in")
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) password(w http.ResponseWriter, r *http.Request) {
	userID, ok := userParam(w, r)
	if !ok {
		return
	}
	if err := h.mgr.UnbindUser(r, userID); err != nil {
		h.fail(w, r, err)
		return
	}
	// The current session stays; only its user binding is reset.
	if err := h.mgr.BindUser(r, userID); err != nil {
		h.fail(w, r, err)
		return
	}
	session.MessagesFromContext(r.Context()).Put(session.Notices, "auth", "other sessions signed out")
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.End(w, r); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "session request failed", logger.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func userParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.FormValue("user"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "user must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
