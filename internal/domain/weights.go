package domain

// Weights holds the resolved per-role influence factors, all in [0,1].
// One named field per role keeps the set exhaustive at compile time.
type Weights struct {
	Planner     float64 `json:"planner"`
	Skeptic     float64 `json:"skeptic"`
	Security    float64 `json:"security"`
	Cost        float64 `json:"cost"`
	Synthesizer float64 `json:"synthesizer"`
}

// For returns the weight for a role. Unknown roles weigh zero.
func (w Weights) For(r Role) float64 {
	switch r {
	case RolePlanner:
		return w.Planner
	case RoleSkeptic:
		return w.Skeptic
	case RoleSecurity:
		return w.Security
	case RoleCost:
		return w.Cost
	case RoleSynthesizer:
		return w.Synthesizer
	}
	return 0
}
