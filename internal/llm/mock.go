package llm

import (
	"context"

	"github.com/the-axmc/conclave/internal/domain"
)

// MockClient is a configurable LLM client for testing.
// Set the response fields to control what each method returns. Per-role
// proposal responses take precedence over the shared ProposalResponse.
type MockClient struct {
	ClassifyResponse      domain.Category
	ClassifyError         error
	ProposalResponse      *domain.Proposal
	ProposalResponses     map[domain.Role]*domain.Proposal
	ProposalErrors        map[domain.Role]error
	ProposalError         error
	FinalSolutionResponse *domain.FinalSolution
	FinalSolutionError    error
	FinalResponseText     string
	FinalResponseTexts    []string
	FinalResponseError    error

	// Call tracking for assertions
	ClassifyCalls      []string
	ProposalCalls      []domain.ProposalRequest
	ProposalAgents     []domain.Agent
	FinalSolutionCalls [][]domain.Proposal
	FinalResponseCalls []domain.FinalResponseRequest
}

func NewMockClient() *MockClient {
	return &MockClient{
		ClassifyResponse: domain.CategoryGeneral,
		ProposalResponse: &domain.Proposal{
			Proposal:          "Mock proposal",
			Summary:           "Mock summary",
			Risk:              "Mock risk",
			RiskSeverity:      2,
			Rationale:         []string{"reason one", "reason two", "reason three", "reason four"},
			Confidence:        0.6,
			DisconfirmingTest: "Mock disconfirming test",
		},
		FinalSolutionResponse: &domain.FinalSolution{
			Summary:     "Mock final solution",
			Steps:       []string{"step one", "step two"},
			Risks:       []string{"mock risk"},
			Assumptions: []string{"mock assumption"},
		},
		FinalResponseText: "Mock final response.",
	}
}

func (c *MockClient) Classify(ctx context.Context, scenario string) (domain.Category, error) {
	c.ClassifyCalls = append(c.ClassifyCalls, scenario)
	if c.ClassifyError != nil {
		return "", c.ClassifyError
	}
	return c.ClassifyResponse, nil
}

func (c *MockClient) GenerateProposal(ctx context.Context, agent domain.Agent, req domain.ProposalRequest) (*domain.Proposal, error) {
	c.ProposalCalls = append(c.ProposalCalls, req)
	c.ProposalAgents = append(c.ProposalAgents, agent)
	if err, ok := c.ProposalErrors[agent.Role]; ok && err != nil {
		return nil, err
	}
	if c.ProposalError != nil {
		return nil, c.ProposalError
	}
	if p, ok := c.ProposalResponses[agent.Role]; ok {
		out := *p
		out.Role = agent.Role
		return &out, nil
	}
	out := *c.ProposalResponse
	out.Role = agent.Role
	return &out, nil
}

func (c *MockClient) GenerateFinalSolution(ctx context.Context, scenario string, proposals []domain.Proposal, evidenceExcerpt string) (*domain.FinalSolution, error) {
	c.FinalSolutionCalls = append(c.FinalSolutionCalls, proposals)
	if c.FinalSolutionError != nil {
		return nil, c.FinalSolutionError
	}
	out := *c.FinalSolutionResponse
	return &out, nil
}

func (c *MockClient) GenerateFinalResponse(ctx context.Context, req domain.FinalResponseRequest) (string, error) {
	c.FinalResponseCalls = append(c.FinalResponseCalls, req)
	if c.FinalResponseError != nil {
		return "", c.FinalResponseError
	}
	if len(c.FinalResponseTexts) > 0 {
		text := c.FinalResponseTexts[0]
		if len(c.FinalResponseTexts) > 1 {
			c.FinalResponseTexts = c.FinalResponseTexts[1:]
		}
		return text, nil
	}
	return c.FinalResponseText, nil
}
