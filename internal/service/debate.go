package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
	"go.uber.org/zap"
)

var (
	// ErrScenarioRequired is returned when the run request carries no scenario.
	ErrScenarioRequired = errors.New("scenario is required")
	// ErrNoProposals is the fatal condition: no proposer produced a usable
	// proposal, so there is nothing to debate and no session is created.
	ErrNoProposals = errors.New("no usable proposals were generated")
	// ErrProviderUnavailable is returned when the requested LLM provider is
	// unknown or not configured.
	ErrProviderUnavailable = errors.New("requested LLM provider is not available")
)

// Config tunes a DebateService. Zero values fall back to sane defaults.
type Config struct {
	// DefaultProvider names the LLM client used when the run request does
	// not pick one.
	DefaultProvider string
	// VerifierMode overrides verification mode selection: "real", "mock",
	// or "" for scenario-driven selection.
	VerifierMode string
	// VerifyTimeout bounds the real verification call.
	VerifyTimeout time.Duration
	// CodeKeywords overrides the substrings marking a scenario as
	// code-related. Nil keeps the default set.
	CodeKeywords []string
}

// DebateService runs the full debate pipeline: classification, proposal
// collection, plan derivation, belief revision, verification, synthesis
// and session assembly. One Run is one logically sequential pipeline; a
// run either completes with one immutable session or fails fatally.
type DebateService struct {
	clients      map[string]domain.LLMClient
	verifier     domain.Verifier
	mockVerifier domain.Verifier
	store        domain.SessionStore
	logger       *zap.Logger
	cfg          Config
	codeKeywords []string
}

func NewDebateService(clients map[string]domain.LLMClient, verifier, mockVerifier domain.Verifier, store domain.SessionStore, logger *zap.Logger, cfg Config) *DebateService {
	keywords := cfg.CodeKeywords
	if len(keywords) == 0 {
		keywords = defaultCodeKeywords
	}
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = 20 * time.Second
	}
	return &DebateService{
		clients:      clients,
		verifier:     verifier,
		mockVerifier: mockVerifier,
		store:        store,
		logger:       logger,
		cfg:          cfg,
		codeKeywords: keywords,
	}
}

// RunRequest is the externally supplied input for one debate run.
type RunRequest struct {
	Scenario        string             `json:"scenario"`
	Weights         map[string]float64 `json:"weights,omitempty"`
	RunVerification bool               `json:"run_verification,omitempty"`
	LLMProvider     string             `json:"llm_provider,omitempty"`
}

// Run executes one complete debate and returns the assembled session.
// Non-fatal failures along the way degrade gracefully and are recorded in
// the session's warning list; a fatal failure returns an error and no
// session.
func (s *DebateService) Run(ctx context.Context, req RunRequest) (*domain.DebateSession, error) {
	scenario := strings.TrimSpace(req.Scenario)
	if scenario == "" {
		return nil, ErrScenarioRequired
	}

	client, err := s.clientFor(req.LLMProvider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sessionID := fmt.Sprintf("debate-%d", start.UnixMilli())
	weights := ResolveWeights(req.Weights)

	var warnings []string

	category, classWarnings := s.classifyScenario(ctx, client, scenario)
	warnings = append(warnings, classWarnings...)

	codeRelated := s.isCodeRelated(scenario)

	proposals, proposalWarnings, err := s.collectProposals(ctx, client, scenario, category, weights)
	warnings = append(warnings, proposalWarnings...)
	if err != nil {
		return nil, err
	}

	plans := derivePlans(proposals)

	// Initial priors: uniform, damped, one minute after run start.
	entries := initialEntries(plans, start.Add(1*time.Minute))
	DampAndNormalize(entries)
	snapshots := []domain.ProbabilitySnapshot{
		snapshot(entries, start.Add(1*time.Minute), "Initial priors."),
	}

	// Sequential weighted revision, canonical proposer order. Each update
	// operates on the distribution left by the previous one.
	for i, role := range domain.ProposerOrder {
		p := proposalFor(proposals, role)
		if p == nil {
			continue
		}
		agent := domain.AgentByRole(role)
		planID := domain.PlanIDForRole(role)

		rationale := "No rationale provided."
		if len(p.Rationale) > 0 {
			rationale = p.Rationale[0]
		}

		ApplyWeightedUpdate(entries, planID, p.Confidence, weights.For(role))
		markUpdate(entries, planID, role, rationale)
		DampAndNormalize(entries)

		at := start.Add(time.Duration(2+2*i) * time.Minute)
		snapshots = append(snapshots, snapshot(entries, at,
			fmt.Sprintf("%s weighed in on %s.", agent.Name, planID)))
	}

	// Verification targets whichever plan currently leads.
	target := entries[leadingEntry(entries)].PlanID
	verification, executed, fellBack, verifyWarnings := s.runVerification(ctx, sessionID, target, codeRelated, req.RunVerification)
	warnings = append(warnings, verifyWarnings...)

	if executed {
		passed := verification.Status == domain.VerificationPass
		asserted := 0.18
		note := fmt.Sprintf("Verification failed on %s; confidence lowered.", target)
		if passed {
			asserted = 0.82
			note = fmt.Sprintf("Verification passed on %s; confidence raised.", target)
		}

		weight := weights.Synthesizer * verification.Reliability
		ApplyWeightedUpdate(entries, target, asserted, weight)
		markUpdate(entries, target, domain.RoleSynthesizer, verification.Summary)
		DampAndNormalize(entries)
		snapshots = append(snapshots, snapshot(entries, start.Add(16*time.Minute), note))
	} else {
		// Synthesizer nudges the leader when no verification ran.
		lead := leadingEntry(entries)
		leadPlanID := entries[lead].PlanID
		asserted := entries[lead].Probability + 0.05
		if asserted > 0.7 {
			asserted = 0.7
		}
		ApplyWeightedUpdate(entries, leadPlanID, asserted, weights.Synthesizer)
		markUpdate(entries, leadPlanID, domain.RoleSynthesizer, "Leading plan nudged in lieu of verification.")
		DampAndNormalize(entries)
		snapshots = append(snapshots, snapshot(entries, start.Add(16*time.Minute),
			"Verification skipped; synthesizer adjusted confidence."))
	}

	final := snapshots[len(snapshots)-1]
	finalIdx := leadingEntry(final.Entries)
	finalPlanID := final.Entries[finalIdx].PlanID
	finalProb := final.Entries[finalIdx].Probability

	timeline := buildTimeline(start, executed)

	var ledger []domain.EvidenceLedgerEntry
	if codeRelated && executed {
		ledger = assembleEvidence(start, finalPlanID, proposals, proposalWarnings, verification, executed, fellBack)
	}

	excerpt := evidenceExcerpt(verification)

	solution, solutionWarnings := s.synthesizeSolution(ctx, client, scenario, proposals, excerpt, plans)
	warnings = append(warnings, solutionWarnings...)

	response, responseWarnings := s.synthesizeResponse(ctx, client, domain.FinalResponseRequest{
		Scenario:        scenario,
		Category:        category,
		Solution:        solution,
		Proposals:       proposals,
		EvidenceExcerpt: excerpt,
		CodeRelated:     codeRelated,
	})
	warnings = append(warnings, responseWarnings...)

	completed := time.Now()

	session := &domain.DebateSession{
		ID:                   sessionID,
		Scenario:             scenario,
		Category:             category,
		CodeRelated:          codeRelated,
		Weights:              weights,
		Agents:               domain.Roster,
		Plans:                plans,
		Messages:             buildMessages(proposals, solution, finalPlanID, finalProb, ledger, start),
		Snapshots:            snapshots,
		EvidenceLedger:       ledger,
		Timeline:             timeline,
		Verification:         verification,
		VerificationExecuted: executed,
		FinalPlanID:          finalPlanID,
		FinalSolution:        solution,
		FinalResponse:        response,
		Belief: domain.BeliefSummary{
			FinalPlanID: finalPlanID,
			Confidence:  finalProb,
			Variance:    varianceBucket(finalProb),
		},
		Recommendation: fmt.Sprintf("Adopt %s: %s", finalPlanID, solution.Summary),
		Warnings:       warnings,
		StartedAt:      start,
		CompletedAt:    completed,
	}

	if s.store != nil {
		if err := s.store.Save(ctx, session); err != nil {
			s.logger.Error("failed to persist session",
				zap.String("session_id", session.ID),
				zap.Error(err))
		}
	}

	s.logger.Info("debate run completed",
		zap.String("session_id", session.ID),
		zap.String("final_plan", finalPlanID),
		zap.Float64("confidence", finalProb),
		zap.Bool("verification_executed", executed),
		zap.Int("warnings", len(warnings)))

	return session, nil
}

func (s *DebateService) clientFor(provider string) (domain.LLMClient, error) {
	name := provider
	if name == "" {
		name = s.cfg.DefaultProvider
	}
	client, ok := s.clients[name]
	if !ok || client == nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, name)
	}
	return client, nil
}

func proposalFor(proposals []domain.Proposal, role domain.Role) *domain.Proposal {
	for i := range proposals {
		if proposals[i].Role == role {
			return &proposals[i]
		}
	}
	return nil
}

func markUpdate(entries []domain.ProbabilityEntry, planID string, role domain.Role, rationale string) {
	for i := range entries {
		if entries[i].PlanID == planID {
			entries[i].UpdatedBy = role
			entries[i].Rationale = rationale
			return
		}
	}
}

func evidenceExcerpt(v *domain.VerificationResult) string {
	if v == nil {
		return ""
	}
	excerpt := v.Summary
	if len(v.Logs) > 0 {
		excerpt += "\n" + v.Logs[0]
	}
	return excerpt
}
