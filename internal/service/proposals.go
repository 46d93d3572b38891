package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/the-axmc/conclave/internal/domain"
	"go.uber.org/zap"
)

// MinRationaleCount maps a role's resolved weight to the minimum number
// of rationale items its proposal must carry. Heavier voices have to
// justify themselves more.
func MinRationaleCount(weight float64) int {
	switch {
	case weight >= 0.7:
		return 4
	case weight >= 0.5:
		return 3
	case weight >= 0.3:
		return 2
	default:
		return 1
	}
}

// validateProposal repairs what it can (severity rounding and clamping,
// confidence clamping) and rejects what it cannot (missing fields, thin
// rationale).
func validateProposal(p *domain.Proposal, minRationale int) error {
	p.Proposal = strings.TrimSpace(p.Proposal)
	p.Summary = strings.TrimSpace(p.Summary)
	p.Risk = strings.TrimSpace(p.Risk)

	p.RiskSeverity = math.Round(p.RiskSeverity)
	if p.RiskSeverity < 1 {
		p.RiskSeverity = 1
	}
	if p.RiskSeverity > 5 {
		p.RiskSeverity = 5
	}
	p.Confidence = clamp01(p.Confidence)

	if p.Proposal == "" {
		return fmt.Errorf("proposal text is empty")
	}
	if p.Summary == "" {
		return fmt.Errorf("summary is empty")
	}
	if p.Risk == "" {
		return fmt.Errorf("risk is empty")
	}
	if len(p.Rationale) < minRationale {
		return fmt.Errorf("rationale has %d items, need at least %d", len(p.Rationale), minRationale)
	}
	return nil
}

// collectProposals asks each proposer role for a structured proposal in
// the canonical order. A malformed response earns exactly one strict
// retry; a second failure drops that role with a warning. Zero usable
// proposals is the one fatal outcome.
func (s *DebateService) collectProposals(ctx context.Context, client domain.LLMClient, scenario string, category domain.Category, weights domain.Weights) ([]domain.Proposal, []string, error) {
	var proposals []domain.Proposal
	var warnings []string

	for _, role := range domain.ProposerOrder {
		agent := domain.AgentByRole(role)
		minRationale := MinRationaleCount(weights.For(role))

		req := domain.ProposalRequest{
			Scenario:     scenario,
			Category:     category,
			Weights:      weights,
			MinRationale: minRationale,
		}

		p, err := s.requestProposal(ctx, client, *agent, req)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("%s proposal dropped after retry: %v", role, err))
			s.logger.Warn("proposal dropped",
				zap.String("role", string(role)),
				zap.Error(err))
			continue
		}
		proposals = append(proposals, *p)
	}

	if len(proposals) == 0 {
		return nil, warnings, ErrNoProposals
	}
	return proposals, warnings, nil
}

// requestProposal generates and validates one role's proposal, retrying
// once with a stricter instruction when the first attempt is malformed.
func (s *DebateService) requestProposal(ctx context.Context, client domain.LLMClient, agent domain.Agent, req domain.ProposalRequest) (*domain.Proposal, error) {
	p, err := client.GenerateProposal(ctx, agent, req)
	if err == nil {
		err = validateProposal(p, req.MinRationale)
	}
	if err == nil {
		return p, nil
	}

	req.Strict = true
	p, retryErr := client.GenerateProposal(ctx, agent, req)
	if retryErr == nil {
		retryErr = validateProposal(p, req.MinRationale)
	}
	if retryErr != nil {
		return nil, fmt.Errorf("first attempt: %v; retry: %w", err, retryErr)
	}
	return p, nil
}
