package domain

import "time"

// DebateMessage is one transcript record, derived from an accepted
// proposal or from the final synthesis. Not independently mutable.
type DebateMessage struct {
	ID                string    `json:"id"`
	Agent             string    `json:"agent"`
	Content           string    `json:"content"`
	PreferredPlanID   string    `json:"preferred_plan_id"`
	Confidence        float64   `json:"confidence"`
	Reasons           []string  `json:"reasons"`
	DisconfirmingTest string    `json:"disconfirming_test,omitempty"`
	References        []string  `json:"references,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// TimelineEvent is one fixed-schedule entry in the run timeline.
type TimelineEvent struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// DebateSession is the aggregate record of one completed run. Created
// once per run, immutable after construction, identified by a
// run-start-derived id.
type DebateSession struct {
	ID                   string                `json:"id"`
	Scenario             string                `json:"scenario"`
	Category             Category              `json:"category"`
	CodeRelated          bool                  `json:"code_related"`
	Weights              Weights               `json:"weights"`
	Agents               []Agent               `json:"agents"`
	Plans                []Plan                `json:"plans"`
	Messages             []DebateMessage       `json:"messages"`
	Snapshots            []ProbabilitySnapshot `json:"snapshots"`
	EvidenceLedger       []EvidenceLedgerEntry `json:"evidence_ledger"`
	Timeline             []TimelineEvent       `json:"timeline"`
	Verification         *VerificationResult   `json:"verification,omitempty"`
	VerificationExecuted bool                  `json:"verification_executed"`
	FinalPlanID          string                `json:"final_plan_id"`
	FinalSolution        FinalSolution         `json:"final_solution"`
	FinalResponse        string                `json:"final_response"`
	Belief               BeliefSummary         `json:"belief"`
	Recommendation       string                `json:"recommendation"`
	Warnings             []string              `json:"warnings"`
	StartedAt            time.Time             `json:"started_at"`
	CompletedAt          time.Time             `json:"completed_at"`
}
