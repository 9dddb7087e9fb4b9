// Package handlers serves archived resolution logs over HTTP. The API is
// read-only: resolutions are written by the simulator, never by clients.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/battlecore/internal/db"
	"github.com/JustinWhittecar/battlecore/internal/report"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type ResolutionHandler struct {
	Archive db.Archive
	Logger  zerolog.Logger
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// List returns the most recent resolutions, newest first.
func (h *ResolutionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxLimit)
	}

	list, err := h.Archive.List(r.Context(), limit)
	if err != nil {
		h.Logger.Error().Err(err).Msg("listing resolutions")
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []db.Summary{}
	}
	writeJSON(w, list)
}

func (h *ResolutionHandler) load(w http.ResponseWriter, r *http.Request) (*db.Resolution, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}
	res, err := h.Archive.Get(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "no such resolution", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		h.Logger.Error().Err(err).Str("resolution", id.String()).Msg("loading resolution")
		http.Error(w, "db error", http.StatusInternalServerError)
		return nil, false
	}
	return res, true
}

// Get returns one resolution with its participants and full log.
func (h *ResolutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	// archived logs never change
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, res)
}

// Reports returns the log of one resolution, optionally filtered by subject
// and message id. Player-only reports are left out unless private=1.
func (h *ResolutionHandler) Reports(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	subject := q.Get("subject")
	msg := -1
	if v := q.Get("msg"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid msg", http.StatusBadRequest)
			return
		}
		msg = n
	}
	private := q.Get("private") == "1"

	out := []report.Report{}
	for _, rep := range res.Reports {
		if subject != "" && rep.Subject != subject {
			continue
		}
		if msg >= 0 && rep.MessageID != msg {
			continue
		}
		if rep.Visibility != report.Public && !private {
			continue
		}
		out = append(out, rep)
	}
	writeJSON(w, out)
}
