package service

import (
	"context"
	"fmt"

	"github.com/the-axmc/conclave/internal/domain"
	"go.uber.org/zap"
)

// classifyScenario tags the scenario with one of the fixed categories.
// Classification is never fatal: any failure substitutes the default
// category and records a warning.
func (s *DebateService) classifyScenario(ctx context.Context, client domain.LLMClient, scenario string) (domain.Category, []string) {
	category, err := client.Classify(ctx, scenario)
	if err != nil {
		s.logger.Warn("scenario classification failed, using default category",
			zap.String("default", string(domain.DefaultCategory)),
			zap.Error(err))
		return domain.DefaultCategory, []string{
			fmt.Sprintf("classification failed (%v); defaulted to %q", err, domain.DefaultCategory),
		}
	}
	return category, nil
}
