package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

// Timeline offsets from run start, in minutes. Every run gets exactly
// these four events.
var timelineSchedule = []struct {
	Label  string
	Offset int
}{
	{"Plans proposed", 0},
	{"Debate round", 9},
	{"Verification run", 15},
	{"Synthesized outcome", 18},
}

// buildTimeline produces the fixed four-event schedule. Only the
// verification event's detail text depends on what actually happened.
func buildTimeline(start time.Time, verificationExecuted bool) []domain.TimelineEvent {
	events := make([]domain.TimelineEvent, 0, len(timelineSchedule))
	for i, item := range timelineSchedule {
		details := ""
		switch item.Label {
		case "Plans proposed":
			details = "Proposer agents submitted their competing plans."
		case "Debate round":
			details = "Weighted belief revision applied in canonical role order."
		case "Verification run":
			if verificationExecuted {
				details = "Verification executed against the leading plan."
			} else {
				details = "Verification skipped; scenario is not code-related."
			}
		case "Synthesized outcome":
			details = "Synthesizer selected the final plan and produced the response."
		}

		events = append(events, domain.TimelineEvent{
			ID:        fmt.Sprintf("evt-%d", i+1),
			Label:     item.Label,
			Timestamp: start.Add(time.Duration(item.Offset) * time.Minute),
			Details:   details,
		})
	}
	return events
}

// demonstrationPatch is the sample diff attached as closing patch
// evidence after a passing verification.
const demonstrationPatch = `--- a/solution.txt
+++ b/solution.txt
@@ -1,3 +1,3 @@
-apply previous approach
+apply verified plan steps
 run test suite
 confirm green build
`

// assembleEvidence builds the append-only evidence ledger. Called only
// for code-related scenarios where verification executed.
func assembleEvidence(start time.Time, finalPlanID string, proposals []domain.Proposal, generationWarnings []string, verification *domain.VerificationResult, executed, fellBack bool) []domain.EvidenceLedgerEntry {
	at := start.Add(17 * time.Minute)
	next := func() time.Time {
		at = at.Add(time.Second)
		return at
	}

	var entries []domain.EvidenceLedgerEntry
	add := func(planID, agent string, t domain.EvidenceType, summary, details string, reliability float64) {
		entries = append(entries, domain.EvidenceLedgerEntry{
			ID:          fmt.Sprintf("ev-%d", len(entries)+1),
			PlanID:      planID,
			Agent:       agent,
			Type:        t,
			Summary:     summary,
			Details:     details,
			Reliability: reliability,
			Timestamp:   next(),
		})
	}

	if p := proposalFor(proposals, domain.RolePlanner); p != nil {
		add(domain.PlanA, "Planner", domain.EvidenceAnalysis,
			"Planner assessment of the proposed approach", p.Proposal, 0.7)
	}
	if p := proposalFor(proposals, domain.RoleSecurity); p != nil {
		add(domain.PlanC, "Security Analyst", domain.EvidenceAnalysis,
			"Security review of the proposed approach", p.Risk, 0.65)
	}

	for _, w := range generationWarnings {
		add(finalPlanID, "Synthesizer", domain.EvidenceLog,
			"Generation warning recorded during the run", w, 0.4)
	}

	verificationType := domain.EvidenceAnalysis
	if executed {
		verificationType = domain.EvidenceTest
	}
	add(finalPlanID, "Verifier", verificationType,
		verification.Summary, strings.Join(verification.Logs, "\n"), verification.Reliability)

	if fellBack {
		add(finalPlanID, "Verifier", domain.EvidenceLog,
			"Verification ran in fallback mode; treat the result as low-reliability",
			"The real verification service was unreachable or errored; a deterministic mock produced this result.",
			ReliabilityFallback)
	}

	if verification.Status == domain.VerificationPass {
		add(finalPlanID, "Synthesizer", domain.EvidencePatch,
			"Demonstration patch for the verified plan", demonstrationPatch, 0.6)
	}

	return entries
}
