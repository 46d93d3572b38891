package verify

import (
	"context"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

// Mock is the local deterministic verifier. Results are keyed by plan id
// only, so the same plan always verifies the same way. Used when the
// caller selects mock mode or when the real verifier is unreachable.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

// mockOutcomes keys pass/fail by plan slot. Slots a and c pass, b and d
// fail; the split keeps both branches of the belief update exercised.
var mockOutcomes = map[string]bool{
	domain.PlanA: true,
	domain.PlanB: false,
	domain.PlanC: true,
	domain.PlanD: false,
}

func (m *Mock) Verify(ctx context.Context, req domain.VerifyRequest) (*domain.VerificationResult, error) {
	started := time.Now()
	passed := mockOutcomes[req.PlanID]

	status := domain.VerificationFail
	summary := "Mock verification failed: simulated test run found a regression."
	exitCode := 1
	logs := []string{
		"mock-verify: preparing fixture for " + req.PlanID,
		"mock-verify: running simulated test suite",
		"mock-verify: 1 failure detected",
	}
	if passed {
		status = domain.VerificationPass
		summary = "Mock verification passed: simulated test run completed cleanly."
		exitCode = 0
		logs = []string{
			"mock-verify: preparing fixture for " + req.PlanID,
			"mock-verify: running simulated test suite",
			"mock-verify: all checks passed",
		}
	}

	return &domain.VerificationResult{
		Status:     status,
		Summary:    summary,
		Logs:       logs,
		ExitCode:   &exitCode,
		StartedAt:  started,
		FinishedAt: started.Add(250 * time.Millisecond),
	}, nil
}
