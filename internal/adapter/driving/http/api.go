package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Backend:    h.Backend,
		Configured: h.Board.State().Configured,
	})
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toStateDTO(h.Board.State()))
}

func (h *Handler) PutDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == nil {
		h.writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}
	h.Board.SetDraft(r.Context(), *req.Content)
	writeJSON(w, http.StatusOK, toStateDTO(h.Board.State()))
}

// Submit posts the current draft. A body with "content" replaces the draft first.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}
	if req.Content != nil {
		h.Board.SetDraft(r.Context(), *req.Content)
	}
	h.respond(w, h.Board.Submit(r.Context()))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.Board.Fetch(r.Context()))
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.ParseMessageID(chi.URLParam(r, "id"))
	h.respond(w, h.Board.Delete(r.Context(), id))
}

func (h *Handler) respond(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toStateDTO(h.Board.State()))
	case errors.Is(err, domain.ErrNotConfigured):
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrRemote):
		h.writeError(w, http.StatusBadGateway, err.Error())
	default:
		h.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Error: msg,
		State: toStateDTO(h.Board.State()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}
