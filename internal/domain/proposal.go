package domain

// Proposal is a proposer role's raw structured assertion about the
// scenario, prior to being mapped onto a Plan.
type Proposal struct {
	Role              Role     `json:"role"`
	Proposal          string   `json:"proposal"`
	Summary           string   `json:"summary"`
	Risk              string   `json:"risk"`
	RiskSeverity      float64  `json:"risk_severity"` // rounded and clamped to 1..5 at validation
	Rationale         []string `json:"rationale"`
	Confidence        float64  `json:"confidence"` // 0..1
	DisconfirmingTest string   `json:"disconfirming_test,omitempty"`
}

// FinalSolution is the synthesizer's structured output.
type FinalSolution struct {
	Summary     string   `json:"summary"`
	Steps       []string `json:"steps"`       // >= 2
	Risks       []string `json:"risks"`       // >= 1
	Assumptions []string `json:"assumptions"` // >= 1
}
