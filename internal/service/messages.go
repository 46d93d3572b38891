package service

import (
	"fmt"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

// buildMessages derives the debate transcript: one message per accepted
// proposal, timestamped with that role's revision snapshot, plus a
// closing synthesizer message referencing the evidence ledger.
func buildMessages(proposals []domain.Proposal, solution domain.FinalSolution, finalPlanID string, finalProbability float64, ledger []domain.EvidenceLedgerEntry, start time.Time) []domain.DebateMessage {
	messages := make([]domain.DebateMessage, 0, len(proposals)+1)

	for i, role := range domain.ProposerOrder {
		p := proposalFor(proposals, role)
		if p == nil {
			continue
		}
		agent := domain.AgentByRole(role)

		messages = append(messages, domain.DebateMessage{
			ID:                fmt.Sprintf("msg-%d", len(messages)+1),
			Agent:             agent.Name,
			Content:           p.Proposal,
			PreferredPlanID:   domain.PlanIDForRole(role),
			Confidence:        p.Confidence,
			Reasons:           p.Rationale,
			DisconfirmingTest: p.DisconfirmingTest,
			Timestamp:         start.Add(time.Duration(2+2*i) * time.Minute),
		})
	}

	references := make([]string, 0, len(ledger))
	for _, entry := range ledger {
		references = append(references, entry.ID)
	}

	synthesizer := domain.AgentByRole(domain.RoleSynthesizer)
	messages = append(messages, domain.DebateMessage{
		ID:              fmt.Sprintf("msg-%d", len(messages)+1),
		Agent:           synthesizer.Name,
		Content:         solution.Summary,
		PreferredPlanID: finalPlanID,
		Confidence:      finalProbability,
		Reasons:         solution.Assumptions,
		References:      references,
		Timestamp:       start.Add(18 * time.Minute),
	})

	return messages
}
