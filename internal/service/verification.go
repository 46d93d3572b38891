package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/the-axmc/conclave/internal/domain"
	"go.uber.org/zap"
)

// Verification reliability attached by outcome. Fallback results carry
// low reliability regardless of their pass/fail status.
const (
	ReliabilityPass     = 0.9
	ReliabilityFail     = 0.75
	ReliabilityFallback = 0.2
)

// defaultCodeKeywords marks a scenario as code-related when any of these
// substrings appears (case-insensitive). Overridable via config so the
// detector can be tuned without touching core logic.
var defaultCodeKeywords = []string{
	"code", "bug", "error", "stack", "test", "build", "deploy", "api",
	"repo", "python", "javascript", "typescript", "golang", "java",
	"rust", "compile", "runtime", "exception",
}

// isCodeRelated reports whether the scenario mentions any code keyword.
func (s *DebateService) isCodeRelated(scenario string) bool {
	lower := strings.ToLower(scenario)
	for _, kw := range s.codeKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// verificationMode picks "real" or "mock". An explicit configured
// override wins; otherwise code-related scenarios default to real.
func (s *DebateService) verificationMode(codeRelated bool) string {
	switch s.cfg.VerifierMode {
	case "real", "mock":
		return s.cfg.VerifierMode
	}
	if codeRelated {
		return "real"
	}
	return "mock"
}

// runVerification decides whether verification executes and runs it.
// Verification executes exactly when the scenario is code-related; the
// caller's request cannot force it on a non-code scenario nor suppress it
// on a code one, and either override is recorded as a warning. A failing
// real verifier falls back to the deterministic mock, never to an error.
func (s *DebateService) runVerification(ctx context.Context, sessionID, planID string, codeRelated, requested bool) (result *domain.VerificationResult, executed, fellBack bool, warnings []string) {
	if !codeRelated {
		if requested {
			warnings = append(warnings,
				"verification was requested but the scenario is not code-related; verification skipped")
		}
		return nil, false, false, warnings
	}

	if !requested {
		warnings = append(warnings,
			"scenario is code-related; verification executed despite not being requested")
	}

	mode := s.verificationMode(codeRelated)
	req := domain.VerifyRequest{
		SessionID: sessionID,
		PlanID:    planID,
		Mode:      mode,
	}

	if mode == "real" {
		verifyCtx, cancel := context.WithTimeout(ctx, s.cfg.VerifyTimeout)
		defer cancel()

		res, err := s.verifier.Verify(verifyCtx, req)
		if err == nil && res.Status != domain.VerificationError {
			res.Reliability = reliabilityFor(res.Status)
			return res, true, false, warnings
		}

		reason := "verifier reported an error status"
		if err != nil {
			reason = err.Error()
		}
		s.logger.Warn("verification fell back to mock",
			zap.String("plan_id", planID),
			zap.String("reason", reason))
		warnings = append(warnings,
			fmt.Sprintf("verification unavailable (%s); fell back to mock verification", reason))

		res, _ = s.mockVerifier.Verify(ctx, req)
		res.Reliability = ReliabilityFallback
		return res, true, true, warnings
	}

	res, _ := s.mockVerifier.Verify(ctx, req)
	res.Reliability = reliabilityFor(res.Status)
	return res, true, false, warnings
}

func reliabilityFor(status domain.VerificationStatus) float64 {
	if status == domain.VerificationPass {
		return ReliabilityPass
	}
	return ReliabilityFail
}
