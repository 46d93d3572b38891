package service

import (
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

// DampingFactor is the fixed blend ratio mixing the normalized
// distribution with a uniform prior after every update. It guarantees
// every plan keeps at least DampingFactor/N probability, so the engine
// never reports absolute certainty.
const DampingFactor = 0.08

// Normalize rescales entries so probabilities sum to 1. If the total is
// zero the distribution becomes uniform.
func Normalize(entries []domain.ProbabilityEntry) {
	if len(entries) == 0 {
		return
	}

	total := 0.0
	for _, e := range entries {
		total += e.Probability
	}

	if total == 0 {
		uniform := 1.0 / float64(len(entries))
		for i := range entries {
			entries[i].Probability = uniform
		}
		return
	}

	for i := range entries {
		entries[i].Probability /= total
	}
}

// DampAndNormalize normalizes, then blends each probability with the
// uniform prior: p' = (1-d)*p + d*(1/N). Mandatory after every weighted
// update; it is what keeps every plan's probability inside
// (d/N, 1-d*(N-1)/N).
func DampAndNormalize(entries []domain.ProbabilityEntry) {
	Normalize(entries)

	n := float64(len(entries))
	if n == 0 {
		return
	}
	uniform := 1.0 / n
	for i := range entries {
		entries[i].Probability = (1-DampingFactor)*entries[i].Probability + DampingFactor*uniform
	}
}

// ApplyWeightedUpdate moves the targeted plan's raw probability toward
// the asserted value: p' = clamp01(p*(1-w) + asserted*w). Other entries
// pass through untouched; the caller must follow with DampAndNormalize.
func ApplyWeightedUpdate(entries []domain.ProbabilityEntry, planID string, asserted, weight float64) {
	for i := range entries {
		if entries[i].PlanID == planID {
			entries[i].Probability = clamp01(entries[i].Probability*(1-weight) + asserted*weight)
			return
		}
	}
}

// leadingEntry returns the index of the highest-probability entry. Ties
// resolve to the earliest entry, which is plan-slot order.
func leadingEntry(entries []domain.ProbabilityEntry) int {
	best := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].Probability > entries[best].Probability {
			best = i
		}
	}
	return best
}

// cloneEntries copies the latest distribution so a new snapshot never
// aliases a recorded one.
func cloneEntries(entries []domain.ProbabilityEntry) []domain.ProbabilityEntry {
	out := make([]domain.ProbabilityEntry, len(entries))
	copy(out, entries)
	return out
}

// snapshot records the current distribution under a note and timestamp.
func snapshot(entries []domain.ProbabilityEntry, at time.Time, note string) domain.ProbabilitySnapshot {
	recorded := cloneEntries(entries)
	for i := range recorded {
		recorded[i].Timestamp = at
	}
	return domain.ProbabilitySnapshot{
		Timestamp: at,
		Note:      note,
		Entries:   recorded,
	}
}

// initialEntries builds the uniform prior distribution over the plans.
func initialEntries(plans []domain.Plan, at time.Time) []domain.ProbabilityEntry {
	entries := make([]domain.ProbabilityEntry, len(plans))
	uniform := 1.0 / float64(len(plans))
	for i, p := range plans {
		entries[i] = domain.ProbabilityEntry{
			PlanID:      p.ID,
			Probability: uniform,
			UpdatedBy:   domain.RoleSynthesizer,
			Rationale:   "Initial uniform prior.",
			Timestamp:   at,
		}
	}
	return entries
}
