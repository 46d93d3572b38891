package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/the-axmc/conclave/internal/domain"
	"go.uber.org/zap"
)

// varianceBucket maps the winning plan's final probability to the coarse
// certainty readout.
func varianceBucket(probability float64) string {
	switch {
	case probability >= 0.66:
		return "low"
	case probability >= 0.5:
		return "medium"
	default:
		return "high"
	}
}

// synthesizeSolution produces the final structured solution, falling back
// to the second plan's content when the capability fails or returns an
// incomplete shape.
func (s *DebateService) synthesizeSolution(ctx context.Context, client domain.LLMClient, scenario string, proposals []domain.Proposal, evidenceExcerpt string, plans []domain.Plan) (domain.FinalSolution, []string) {
	sol, err := client.GenerateFinalSolution(ctx, scenario, proposals, evidenceExcerpt)
	if err == nil {
		err = validateSolution(sol)
	}
	if err == nil {
		return *sol, nil
	}

	s.logger.Warn("final solution generation failed, using fallback", zap.Error(err))

	fallback := plans[1]
	return domain.FinalSolution{
			Summary:     fallback.Summary,
			Steps:       fallback.Steps,
			Risks:       fallback.Risks,
			Assumptions: []string{"Assumes the selected plan can be applied without further verification."},
		}, []string{
			fmt.Sprintf("final solution generation failed (%v); substituted %s content", err, fallback.ID),
		}
}

func validateSolution(sol *domain.FinalSolution) error {
	if strings.TrimSpace(sol.Summary) == "" {
		return fmt.Errorf("solution summary is empty")
	}
	if len(sol.Steps) < 2 {
		return fmt.Errorf("solution has %d steps, need at least 2", len(sol.Steps))
	}
	if len(sol.Risks) < 1 {
		return fmt.Errorf("solution lists no risks")
	}
	if len(sol.Assumptions) < 1 {
		return fmt.Errorf("solution lists no assumptions")
	}
	return nil
}

// synthesizeResponse produces the user-facing response text. A non-code
// scenario that comes back looking like a checklist earns one rewrite
// attempt; code-related responses are expected to carry a code block and
// skip the heuristic. Failure falls back to the solution summary.
func (s *DebateService) synthesizeResponse(ctx context.Context, client domain.LLMClient, req domain.FinalResponseRequest) (string, []string) {
	text, err := client.GenerateFinalResponse(ctx, req)
	if err == nil && !req.CodeRelated && looksLikeList(text) {
		s.logger.Debug("final response looked like a checklist, retrying once")
		text, err = client.GenerateFinalResponse(ctx, req)
	}
	if err != nil {
		s.logger.Warn("final response generation failed, using solution summary", zap.Error(err))
		return req.Solution.Summary, []string{
			fmt.Sprintf("final response generation failed (%v); substituted the solution summary", err),
		}
	}
	return text, nil
}

// looksLikeList reports whether the text reads as a list or checklist:
// at least three lines, the majority of them bullet- or number-prefixed.
func looksLikeList(text string) bool {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 3 {
		return false
	}

	listLines := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") ||
			strings.HasPrefix(trimmed, "[ ]") ||
			strings.HasPrefix(trimmed, "[x]") ||
			startsWithNumberedItem(trimmed) {
			listLines++
		}
	}
	return listLines*2 > len(lines)
}

func startsWithNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')')
}
