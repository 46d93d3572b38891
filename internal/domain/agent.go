package domain

// Role identifies one of the five fixed debate roles.
type Role string

const (
	RolePlanner     Role = "planner"
	RoleSkeptic     Role = "skeptic"
	RoleSecurity    Role = "security"
	RoleCost        Role = "cost"
	RoleSynthesizer Role = "synthesizer"
)

// Agent is one statically defined debate participant.
type Agent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
	Goal string `json:"goal"`
}

// Roster is the fixed, ordered set of debate agents. The synthesizer is
// always last; the four proposer roles precede it in debate order.
var Roster = []Agent{
	{ID: "agent-planner", Name: "Planner", Role: RolePlanner, Goal: "Produce the most direct workable plan for the scenario."},
	{ID: "agent-skeptic", Name: "Skeptic", Role: RoleSkeptic, Goal: "Find the failure modes the other plans gloss over."},
	{ID: "agent-security", Name: "Security Analyst", Role: RoleSecurity, Goal: "Surface security and data-exposure risks before anything ships."},
	{ID: "agent-cost", Name: "Cost Analyst", Role: RoleCost, Goal: "Keep the solution cheap to build and cheap to run."},
	{ID: "agent-synthesizer", Name: "Synthesizer", Role: RoleSynthesizer, Goal: "Weigh the proposals against the evidence and commit to one outcome."},
}

// ProposerOrder is the canonical order in which proposer roles speak and
// in which their belief updates are applied. Each update operates on the
// distribution left by the previous one, so this order is observable
// behavior, not a convenience.
var ProposerOrder = []Role{RolePlanner, RoleSkeptic, RoleSecurity, RoleCost}

// AgentByRole returns the roster entry for a role, or nil if the role is
// not part of the roster.
func AgentByRole(r Role) *Agent {
	for i := range Roster {
		if Roster[i].Role == r {
			return &Roster[i]
		}
	}
	return nil
}

func ValidRole(s string) bool {
	switch Role(s) {
	case RolePlanner, RoleSkeptic, RoleSecurity, RoleCost, RoleSynthesizer:
		return true
	}
	return false
}
