package service

import (
	"testing"

	"github.com/the-axmc/conclave/internal/domain"
)

func TestResolveWeightsDefaults(t *testing.T) {
	w := ResolveWeights(nil)

	if w.Planner != DefaultPlannerWeight {
		t.Errorf("planner = %g, want %g", w.Planner, DefaultPlannerWeight)
	}
	if w.Skeptic != DefaultSkepticWeight {
		t.Errorf("skeptic = %g, want %g", w.Skeptic, DefaultSkepticWeight)
	}
	if w.Security != DefaultSecurityWeight {
		t.Errorf("security = %g, want %g", w.Security, DefaultSecurityWeight)
	}
	if w.Cost != DefaultCostWeight {
		t.Errorf("cost = %g, want %g", w.Cost, DefaultCostWeight)
	}
	if w.Synthesizer != DefaultSynthesizerWeight {
		t.Errorf("synthesizer = %g, want %g", w.Synthesizer, DefaultSynthesizerWeight)
	}
}

func TestResolveWeightsOverridesAndClamping(t *testing.T) {
	w := ResolveWeights(map[string]float64{
		"planner":  1.7,
		"skeptic":  -0.3,
		"cost":     0.42,
		"narrator": 0.99, // unknown role, ignored
	})

	if w.Planner != 1 {
		t.Errorf("planner override not clamped to 1, got %g", w.Planner)
	}
	if w.Skeptic != 0 {
		t.Errorf("skeptic override not clamped to 0, got %g", w.Skeptic)
	}
	if w.Cost != 0.42 {
		t.Errorf("cost = %g, want 0.42", w.Cost)
	}
	if w.Security != DefaultSecurityWeight {
		t.Errorf("security = %g, want default %g", w.Security, DefaultSecurityWeight)
	}
}

func TestWeightsForUnknownRoleIsZero(t *testing.T) {
	w := ResolveWeights(nil)
	if got := w.For(domain.Role("narrator")); got != 0 {
		t.Errorf("unknown role weight = %g, want 0", got)
	}
}

func TestMinRationaleCount(t *testing.T) {
	cases := []struct {
		weight float64
		want   int
	}{
		{0.9, 4},
		{0.7, 4},
		{0.69, 3},
		{0.5, 3},
		{0.49, 2},
		{0.3, 2},
		{0.29, 1},
		{0, 1},
	}

	for _, tc := range cases {
		if got := MinRationaleCount(tc.weight); got != tc.want {
			t.Errorf("MinRationaleCount(%g) = %d, want %d", tc.weight, got, tc.want)
		}
	}
}
