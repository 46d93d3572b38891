package service

import (
	"testing"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

func TestBuildTimelineSchedule(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	events := buildTimeline(start, true)

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	wantOffsets := []time.Duration{0, 9 * time.Minute, 15 * time.Minute, 18 * time.Minute}
	wantLabels := []string{"Plans proposed", "Debate round", "Verification run", "Synthesized outcome"}
	for i, evt := range events {
		if evt.Timestamp.Sub(start) != wantOffsets[i] {
			t.Errorf("event %d at offset %v, want %v", i, evt.Timestamp.Sub(start), wantOffsets[i])
		}
		if evt.Label != wantLabels[i] {
			t.Errorf("event %d label %q, want %q", i, evt.Label, wantLabels[i])
		}
		if evt.ID == "" {
			t.Errorf("event %d has no id", i)
		}
	}
}

func TestBuildTimelineVerificationDetail(t *testing.T) {
	start := time.Now()

	executed := buildTimeline(start, true)
	if executed[2].Details != "Verification executed against the leading plan." {
		t.Errorf("executed detail = %q", executed[2].Details)
	}

	skipped := buildTimeline(start, false)
	if skipped[2].Details != "Verification skipped; scenario is not code-related." {
		t.Errorf("skipped detail = %q", skipped[2].Details)
	}
}

func TestAssembleEvidenceFullLedger(t *testing.T) {
	start := time.Now()
	proposals := []domain.Proposal{
		{Role: domain.RolePlanner, Proposal: "planner analysis"},
		{Role: domain.RoleSecurity, Risk: "injection risk"},
	}
	verification := passingResult()
	verification.Reliability = ReliabilityPass

	entries := assembleEvidence(start, domain.PlanA, proposals,
		[]string{"cost proposal dropped after retry: model refused"},
		verification, true, false)

	// Planner analysis, security analysis, one warning log, verification
	// test, closing patch.
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5: %+v", len(entries), entries)
	}

	if entries[0].PlanID != domain.PlanA || entries[0].Type != domain.EvidenceAnalysis {
		t.Errorf("entry 0 = %+v, want planner analysis on plan-a", entries[0])
	}
	if entries[1].PlanID != domain.PlanC || entries[1].Agent != "Security Analyst" {
		t.Errorf("entry 1 = %+v, want security analysis on plan-c", entries[1])
	}
	if entries[2].Type != domain.EvidenceLog || entries[2].Reliability != 0.4 {
		t.Errorf("entry 2 = %+v, want low-reliability warning log", entries[2])
	}
	if entries[3].Type != domain.EvidenceTest || entries[3].Reliability != ReliabilityPass {
		t.Errorf("entry 3 = %+v, want verification test evidence", entries[3])
	}
	if entries[4].Type != domain.EvidencePatch {
		t.Errorf("entry 4 = %+v, want the closing patch", entries[4])
	}

	for i, e := range entries {
		if e.ID == "" {
			t.Errorf("entry %d has no id", i)
		}
		if i > 0 && !entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entry %d timestamp not after entry %d", i, i-1)
		}
		if !e.Timestamp.After(start.Add(17 * time.Minute)) {
			t.Errorf("entry %d timestamped before the ledger window", i)
		}
	}
}

func TestAssembleEvidenceFailedVerification(t *testing.T) {
	start := time.Now()
	verification := failingResult()
	verification.Reliability = ReliabilityFail

	entries := assembleEvidence(start, domain.PlanB, nil, nil, verification, true, false)

	// Just the verification entry: no proposals, no warnings, no patch on
	// a failed run.
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(entries), entries)
	}
	if entries[0].Type != domain.EvidenceTest {
		t.Errorf("type = %s, want test", entries[0].Type)
	}
	if entries[0].Reliability != ReliabilityFail {
		t.Errorf("reliability = %g, want %g", entries[0].Reliability, ReliabilityFail)
	}
}

func TestAssembleEvidenceFallbackEntry(t *testing.T) {
	start := time.Now()
	verification := passingResult()
	verification.Reliability = ReliabilityFallback

	entries := assembleEvidence(start, domain.PlanA, nil, nil, verification, true, true)

	var fallbackLog *domain.EvidenceLedgerEntry
	for i := range entries {
		if entries[i].Type == domain.EvidenceLog {
			fallbackLog = &entries[i]
		}
	}
	if fallbackLog == nil {
		t.Fatal("fallback run recorded no low-reliability log entry")
	}
	if fallbackLog.Reliability != ReliabilityFallback {
		t.Errorf("fallback reliability = %g, want %g", fallbackLog.Reliability, ReliabilityFallback)
	}
}

func TestDerivePlansFillsEmptySlots(t *testing.T) {
	proposals := []domain.Proposal{
		{Role: domain.RolePlanner, Proposal: "Do the simple thing first. Then verify.", Summary: "Simple first", Risk: "May miss edge cases"},
	}

	plans := derivePlans(proposals)
	if len(plans) != 4 {
		t.Fatalf("got %d plans, want 4", len(plans))
	}

	order := domain.PlanOrder()
	for i, p := range plans {
		if p.ID != order[i] {
			t.Errorf("plan %d id %q, want %q", i, p.ID, order[i])
		}
	}

	if plans[0].Summary != "Simple first" {
		t.Errorf("plan-a summary = %q", plans[0].Summary)
	}
	if len(plans[0].Steps) < 2 {
		t.Errorf("plan-a steps = %v, want the proposal split into steps", plans[0].Steps)
	}

	// Slots without a proposal carry explicit placeholders.
	if plans[1].Summary != "No proposal available." {
		t.Errorf("plan-b summary = %q, want placeholder", plans[1].Summary)
	}
	if len(plans[1].Steps) == 0 || len(plans[1].Risks) == 0 {
		t.Errorf("placeholder plan missing steps or risks: %+v", plans[1])
	}
}

func TestBuildMessages(t *testing.T) {
	start := time.Now()
	proposals := []domain.Proposal{
		{Role: domain.RolePlanner, Proposal: "do X", Confidence: 0.7, Rationale: []string{"r1", "r2"}, DisconfirmingTest: "try Y"},
		{Role: domain.RoleCost, Proposal: "do Z cheaply", Confidence: 0.55, Rationale: []string{"r3"}},
	}
	solution := domain.FinalSolution{Summary: "ship the fix", Assumptions: []string{"staging mirrors prod"}}
	ledger := []domain.EvidenceLedgerEntry{{ID: "ev-1"}, {ID: "ev-2"}}

	messages := buildMessages(proposals, solution, domain.PlanA, 0.61, ledger, start)

	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 2 proposals + closing", len(messages))
	}

	if messages[0].Agent != "Planner" || messages[0].PreferredPlanID != domain.PlanA {
		t.Errorf("message 0 = %+v", messages[0])
	}
	if messages[0].Timestamp.Sub(start) != 2*time.Minute {
		t.Errorf("planner message at offset %v, want 2m", messages[0].Timestamp.Sub(start))
	}
	if messages[1].Agent != "Cost Analyst" || messages[1].PreferredPlanID != domain.PlanD {
		t.Errorf("message 1 = %+v", messages[1])
	}
	if messages[1].Timestamp.Sub(start) != 8*time.Minute {
		t.Errorf("cost message at offset %v, want 8m", messages[1].Timestamp.Sub(start))
	}

	closing := messages[2]
	if closing.Agent != "Synthesizer" {
		t.Errorf("closing agent = %q", closing.Agent)
	}
	if closing.PreferredPlanID != domain.PlanA || closing.Confidence != 0.61 {
		t.Errorf("closing = %+v", closing)
	}
	if closing.Timestamp.Sub(start) != 18*time.Minute {
		t.Errorf("closing message at offset %v, want 18m", closing.Timestamp.Sub(start))
	}
	if len(closing.References) != 2 || closing.References[0] != "ev-1" {
		t.Errorf("closing references = %v", closing.References)
	}
}
