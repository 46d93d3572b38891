package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/the-axmc/conclave/internal/domain"
	"github.com/the-axmc/conclave/internal/service"
	"github.com/the-axmc/conclave/internal/store"
)

type DebateHandler struct {
	svc      *service.DebateService
	sessions domain.SessionStore
}

func NewDebateHandler(svc *service.DebateService, sessions domain.SessionStore) *DebateHandler {
	return &DebateHandler{svc: svc, sessions: sessions}
}

type submitRunRequest struct {
	Scenario        string             `json:"scenario"`
	Weights         map[string]float64 `json:"weights,omitempty"`
	RunVerification bool               `json:"run_verification,omitempty"`
	LLMProvider     string             `json:"llm_provider,omitempty"`
}

// Submit runs one full debate and returns the completed session.
func (h *DebateHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.Run(r.Context(), service.RunRequest{
		Scenario:        req.Scenario,
		Weights:         req.Weights,
		RunVerification: req.RunVerification,
		LLMProvider:     req.LLMProvider,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScenarioRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProviderUnavailable):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoProposals):
			writeError(w, http.StatusBadGateway, "debate failed: no usable proposals were generated")
		default:
			writeError(w, http.StatusInternalServerError, "debate run failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Latest returns the most recently persisted session.
func (h *DebateHandler) Latest(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Latest(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no sessions yet")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load latest session")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// List returns recent sessions, most recent first.
func (h *DebateHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	sessions, err := h.sessions.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []domain.DebateSession{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}
