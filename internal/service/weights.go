package service

import "github.com/the-axmc/conclave/internal/domain"

// Default per-role influence weights, applied when the caller supplies no
// override for a role.
const (
	DefaultPlannerWeight     = 0.9
	DefaultSkepticWeight     = 0.85
	DefaultSecurityWeight    = 0.8
	DefaultCostWeight        = 0.75
	DefaultSynthesizerWeight = 0.9
)

// ResolveWeights merges caller overrides with the defaults and clamps
// every weight into [0,1]. It never fails: unknown keys are ignored and
// missing roles fall back to their default.
func ResolveWeights(overrides map[string]float64) domain.Weights {
	resolve := func(role domain.Role, def float64) float64 {
		v, ok := overrides[string(role)]
		if !ok {
			v = def
		}
		return clamp01(v)
	}

	return domain.Weights{
		Planner:     resolve(domain.RolePlanner, DefaultPlannerWeight),
		Skeptic:     resolve(domain.RoleSkeptic, DefaultSkepticWeight),
		Security:    resolve(domain.RoleSecurity, DefaultSecurityWeight),
		Cost:        resolve(domain.RoleCost, DefaultCostWeight),
		Synthesizer: resolve(domain.RoleSynthesizer, DefaultSynthesizerWeight),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
