package domain

// Plan is one candidate solution derived from a proposer's proposal, or a
// placeholder when that proposer produced nothing usable. Immutable once
// derived within a run.
type Plan struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
	Risks   []string `json:"risks"`
}

const (
	PlanA = "plan-a"
	PlanB = "plan-b"
	PlanC = "plan-c"
	PlanD = "plan-d"
)

// planSlot binds a proposer role to its fixed plan slot. The mapping is a
// static table rather than a map so the four slots stay exhaustive and
// ordered at compile time.
type planSlot struct {
	Role   Role
	PlanID string
}

var planSlots = [4]planSlot{
	{RolePlanner, PlanA},
	{RoleSkeptic, PlanB},
	{RoleSecurity, PlanC},
	{RoleCost, PlanD},
}

// PlanIDForRole returns the fixed plan slot for a proposer role, or ""
// for the synthesizer and unknown roles.
func PlanIDForRole(r Role) string {
	for _, s := range planSlots {
		if s.Role == r {
			return s.PlanID
		}
	}
	return ""
}

// PlanOrder is the fixed slot order, matching ProposerOrder.
func PlanOrder() [4]string {
	var out [4]string
	for i, s := range planSlots {
		out[i] = s.PlanID
	}
	return out
}
