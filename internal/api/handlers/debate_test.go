package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/the-axmc/conclave/internal/domain"
	"github.com/the-axmc/conclave/internal/llm"
	"github.com/the-axmc/conclave/internal/service"
	"github.com/the-axmc/conclave/internal/store"
	"github.com/the-axmc/conclave/internal/verify"
)

type stubSessionStore struct {
	sessions []domain.DebateSession
	latest   *domain.DebateSession
	err      error
}

func (s *stubSessionStore) Save(ctx context.Context, session *domain.DebateSession) error {
	if s.err != nil {
		return s.err
	}
	s.sessions = append(s.sessions, *session)
	s.latest = session
	return nil
}

func (s *stubSessionStore) Latest(ctx context.Context) (*domain.DebateSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.latest == nil {
		return nil, store.ErrNotFound
	}
	return s.latest, nil
}

func (s *stubSessionStore) List(ctx context.Context, limit int) ([]domain.DebateSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit <= 0 || limit > len(s.sessions) {
		limit = len(s.sessions)
	}
	return s.sessions[:limit], nil
}

func newTestHandler(client domain.LLMClient, sessions domain.SessionStore) *DebateHandler {
	svc := service.NewDebateService(
		map[string]domain.LLMClient{"mock": client},
		verify.NewMock(),
		verify.NewMock(),
		sessions,
		zap.NewNop(),
		service.Config{DefaultProvider: "mock", VerifierMode: "mock"},
	)
	return NewDebateHandler(svc, sessions)
}

func TestSubmitReturnsSession(t *testing.T) {
	sessions := &stubSessionStore{}
	h := newTestHandler(llm.NewMockClient(), sessions)

	body := `{"scenario": "Fix the failing test", "run_verification": true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/debates", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var session domain.DebateSession
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !strings.HasPrefix(session.ID, "debate-") {
		t.Errorf("session id = %q", session.ID)
	}
	if session.FinalPlanID == "" {
		t.Error("session has no final plan")
	}
	if len(sessions.sessions) != 1 {
		t.Errorf("persisted %d sessions, want 1", len(sessions.sessions))
	}
}

func TestSubmitRejectsInvalidBody(t *testing.T) {
	h := newTestHandler(llm.NewMockClient(), &stubSessionStore{})

	req := httptest.NewRequest(http.MethodPost, "/v1/debates", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitRejectsMissingScenario(t *testing.T) {
	h := newTestHandler(llm.NewMockClient(), &stubSessionStore{})

	req := httptest.NewRequest(http.MethodPost, "/v1/debates", strings.NewReader(`{"scenario": ""}`))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitRejectsUnknownProvider(t *testing.T) {
	h := newTestHandler(llm.NewMockClient(), &stubSessionStore{})

	body := `{"scenario": "Fix the failing test", "llm_provider": "delphi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/debates", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitNoProposalsIsBadGateway(t *testing.T) {
	client := llm.NewMockClient()
	client.ProposalError = errors.New("provider down")
	h := newTestHandler(client, &stubSessionStore{})

	req := httptest.NewRequest(http.MethodPost, "/v1/debates",
		strings.NewReader(`{"scenario": "Fix the failing test"}`))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestLatestEmptyStoreIs404(t *testing.T) {
	h := newTestHandler(llm.NewMockClient(), &stubSessionStore{})

	req := httptest.NewRequest(http.MethodGet, "/v1/debates/latest", nil)
	rec := httptest.NewRecorder()

	h.Latest(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLatestReturnsSession(t *testing.T) {
	sessions := &stubSessionStore{latest: &domain.DebateSession{ID: "debate-1"}}
	h := newTestHandler(llm.NewMockClient(), sessions)

	req := httptest.NewRequest(http.MethodGet, "/v1/debates/latest", nil)
	rec := httptest.NewRecorder()

	h.Latest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var session domain.DebateSession
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if session.ID != "debate-1" {
		t.Errorf("session id = %q", session.ID)
	}
}

func TestListInvalidLimit(t *testing.T) {
	h := newTestHandler(llm.NewMockClient(), &stubSessionStore{})

	req := httptest.NewRequest(http.MethodGet, "/v1/debates?limit=abc", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListEmptyReturnsEmptyArray(t *testing.T) {
	h := newTestHandler(llm.NewMockClient(), &stubSessionStore{})

	req := httptest.NewRequest(http.MethodGet, "/v1/debates", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload struct {
		Sessions []domain.DebateSession `json:"sessions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload.Sessions == nil {
		t.Error("sessions should decode to an empty array, not null")
	}
}
