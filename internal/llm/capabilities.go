package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/the-axmc/conclave/internal/domain"
)

// completer is the single primitive each provider implements: send one
// prompt, get the raw completion text back.
type completer interface {
	complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// stripFences removes markdown code fences models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func classifyWith(ctx context.Context, c completer, scenario string) (domain.Category, error) {
	var labels strings.Builder
	for _, cat := range domain.Categories {
		labels.WriteString("- ")
		labels.WriteString(string(cat))
		labels.WriteString("\n")
	}

	result, err := c.complete(ctx, fmt.Sprintf(classifyPrompt, labels.String(), scenario), 0)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}

	label := strings.ToLower(strings.TrimSpace(stripFences(result)))
	if !domain.ValidCategory(label) {
		return "", fmt.Errorf("classify: label %q is not in the category set", label)
	}
	return domain.Category(label), nil
}

func generateProposalWith(ctx context.Context, c completer, agent domain.Agent, req domain.ProposalRequest) (*domain.Proposal, error) {
	evidence := ""
	if req.EvidenceExcerpt != "" {
		evidence = "\nVerification evidence so far:\n" + req.EvidenceExcerpt + "\n"
	}

	prompt := fmt.Sprintf(proposalPrompt,
		agent.Name, agent.Role, agent.Goal,
		req.Category, req.Scenario, evidence,
		req.MinRationale,
	)
	if req.Strict {
		prompt += strictSuffix
	}

	result, err := c.complete(ctx, prompt, 0.4)
	if err != nil {
		return nil, fmt.Errorf("generate proposal: %w", err)
	}

	var p domain.Proposal
	if err := json.Unmarshal([]byte(stripFences(result)), &p); err != nil {
		return nil, fmt.Errorf("parse proposal: %w (raw: %s)", err, result)
	}
	p.Role = agent.Role
	return &p, nil
}

func generateFinalSolutionWith(ctx context.Context, c completer, scenario string, proposals []domain.Proposal, evidenceExcerpt string) (*domain.FinalSolution, error) {
	evidence := ""
	if evidenceExcerpt != "" {
		evidence = "\nVerification evidence:\n" + evidenceExcerpt + "\n"
	}

	result, err := c.complete(ctx,
		fmt.Sprintf(finalSolutionPrompt, scenario, formatProposals(proposals), evidence), 0.3)
	if err != nil {
		return nil, fmt.Errorf("generate final solution: %w", err)
	}

	var sol domain.FinalSolution
	if err := json.Unmarshal([]byte(stripFences(result)), &sol); err != nil {
		return nil, fmt.Errorf("parse final solution: %w (raw: %s)", err, result)
	}
	return &sol, nil
}

func generateFinalResponseWith(ctx context.Context, c completer, req domain.FinalResponseRequest) (string, error) {
	instruction := proseResponseInstruction
	if req.CodeRelated {
		instruction = codeResponseInstruction
	}

	evidence := ""
	if req.EvidenceExcerpt != "" {
		evidence = "Verification evidence:\n" + req.EvidenceExcerpt + "\n"
	}

	var steps strings.Builder
	for i, s := range req.Solution.Steps {
		steps.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
	}

	result, err := c.complete(ctx,
		fmt.Sprintf(finalResponsePrompt,
			req.Category, req.Scenario,
			req.Solution.Summary, steps.String(),
			evidence, instruction),
		0.5)
	if err != nil {
		return "", fmt.Errorf("generate final response: %w", err)
	}
	return strings.TrimSpace(result), nil
}

func formatProposals(proposals []domain.Proposal) string {
	var sb strings.Builder
	for i, p := range proposals {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s (confidence %.2f, risk: %s)\n",
			i+1, p.Role, p.Summary, p.Confidence, p.Risk))
	}
	return sb.String()
}
