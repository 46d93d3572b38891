package domain

import "time"

// ProbabilityEntry is one plan's share of the belief distribution at a
// point in time.
type ProbabilityEntry struct {
	PlanID      string    `json:"plan_id"`
	Probability float64   `json:"probability"`
	UpdatedBy   Role      `json:"updated_by"`
	Rationale   string    `json:"rationale"`
	Timestamp   time.Time `json:"timestamp"`
}

// ProbabilitySnapshot is one immutable state of the belief distribution.
// Entries cover every plan exactly once, in plan-slot order, and sum to 1
// within floating tolerance. Snapshots are appended, never mutated.
type ProbabilitySnapshot struct {
	Timestamp time.Time          `json:"timestamp"`
	Note      string             `json:"note"`
	Entries   []ProbabilityEntry `json:"entries"`
}

// BeliefSummary is the coarse certainty readout attached to a finished
// session.
type BeliefSummary struct {
	FinalPlanID string  `json:"final_plan_id"`
	Confidence  float64 `json:"confidence"`
	Variance    string  `json:"variance"` // low | medium | high
}
