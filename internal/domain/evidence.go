package domain

import "time"

// EvidenceType tags what kind of artifact an evidence entry is.
type EvidenceType string

const (
	EvidenceTest     EvidenceType = "test"
	EvidenceLog      EvidenceType = "log"
	EvidenceAnalysis EvidenceType = "analysis"
	EvidencePatch    EvidenceType = "patch"
)

// EvidenceLedgerEntry is one append-only audit record behind the final
// decision. Reliability scales how strongly the evidence moved belief.
type EvidenceLedgerEntry struct {
	ID          string       `json:"id"`
	PlanID      string       `json:"plan_id"`
	Agent       string       `json:"agent"`
	Type        EvidenceType `json:"type"`
	Summary     string       `json:"summary"`
	Details     string       `json:"details"`
	Reliability float64      `json:"reliability"` // 0..1
	Timestamp   time.Time    `json:"timestamp"`
}

// VerificationStatus is the outcome of a verification run.
type VerificationStatus string

const (
	VerificationPass    VerificationStatus = "pass"
	VerificationFail    VerificationStatus = "fail"
	VerificationSkipped VerificationStatus = "skipped"
	VerificationError   VerificationStatus = "error"
)

// VerificationResult is what the verification capability reports for a
// target plan. The core consumes it as-is; execution mechanics live
// behind the Verifier interface.
type VerificationResult struct {
	Status      VerificationStatus `json:"status"`
	Summary     string             `json:"summary"`
	Logs        []string           `json:"logs"`
	ExitCode    *int               `json:"exit_code,omitempty"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	Reliability float64            `json:"reliability"`
}
