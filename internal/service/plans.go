package service

import (
	"fmt"
	"strings"

	"github.com/the-axmc/conclave/internal/domain"
)

// derivePlans maps proposals onto the four fixed plan slots. A role
// without a usable proposal yields a placeholder plan, so the output is
// always exactly four plans in slot order.
func derivePlans(proposals []domain.Proposal) []domain.Plan {
	plans := make([]domain.Plan, 0, len(domain.ProposerOrder))
	for _, role := range domain.ProposerOrder {
		planID := domain.PlanIDForRole(role)
		agent := domain.AgentByRole(role)

		p := proposalFor(proposals, role)
		if p == nil {
			plans = append(plans, placeholderPlan(planID, *agent))
			continue
		}

		plans = append(plans, domain.Plan{
			ID:      planID,
			Title:   fmt.Sprintf("%s plan", agent.Name),
			Summary: p.Summary,
			Steps:   proposalSteps(p.Proposal),
			Risks:   []string{p.Risk},
		})
	}
	return plans
}

func placeholderPlan(planID string, agent domain.Agent) domain.Plan {
	return domain.Plan{
		ID:      planID,
		Title:   fmt.Sprintf("%s plan (unavailable)", agent.Name),
		Summary: "No proposal available.",
		Steps:   []string{"Review the scenario manually."},
		Risks:   []string{"No agent analysis backs this plan slot."},
	}
}

// proposalSteps splits a proposal's free text into plan steps. Newlines
// win; otherwise sentences do; a text with neither becomes one step.
func proposalSteps(text string) []string {
	var parts []string
	if strings.Contains(text, "\n") {
		parts = strings.Split(text, "\n")
	} else {
		parts = strings.SplitAfter(text, ". ")
	}

	steps := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			steps = append(steps, part)
		}
	}
	if len(steps) == 0 {
		steps = []string{text}
	}
	return steps
}
