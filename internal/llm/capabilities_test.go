package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/the-axmc/conclave/internal/domain"
)

type scriptedCompleter struct {
	responses []string
	err       error
	prompts   []string
}

func (c *scriptedCompleter) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	resp := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return resp, nil
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  coding  ", "coding"},
	}

	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassifyWithValidLabel(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"  Debugging\n"}}

	got, err := classifyWith(context.Background(), c, "Fix the failing test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != domain.CategoryDebugging {
		t.Errorf("category = %s, want debugging", got)
	}
}

func TestClassifyWithUnknownLabel(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"philosophy"}}

	if _, err := classifyWith(context.Background(), c, "scenario"); err == nil {
		t.Fatal("expected an error for a label outside the category set")
	}
}

func TestGenerateProposalWithParsesJSON(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"```json\n" + `{
		"proposal": "Do the thing",
		"summary": "Thing doer",
		"risk": "It may break",
		"risk_severity": 3,
		"rationale": ["a", "b"],
		"confidence": 0.8,
		"disconfirming_test": "Try the opposite"
	}` + "\n```"}}

	agent := domain.AgentByRole(domain.RoleSkeptic)
	p, err := generateProposalWith(context.Background(), c, *agent, domain.ProposalRequest{
		Scenario: "scenario", MinRationale: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != domain.RoleSkeptic {
		t.Errorf("role = %s, want skeptic (stamped by the capability)", p.Role)
	}
	if p.Proposal != "Do the thing" || p.Confidence != 0.8 {
		t.Errorf("parsed proposal = %+v", p)
	}
}

func TestGenerateProposalWithStrictRetrySuffix(t *testing.T) {
	c := &scriptedCompleter{responses: []string{`{"proposal":"x","summary":"y","risk":"z","rationale":["a"],"confidence":0.5}`}}

	agent := domain.AgentByRole(domain.RolePlanner)
	if _, err := generateProposalWith(context.Background(), c, *agent, domain.ProposalRequest{Strict: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.prompts) != 1 {
		t.Fatalf("got %d prompts", len(c.prompts))
	}
	if !containsStrictSuffix(c.prompts[0]) {
		t.Error("strict request did not append the strict instruction")
	}
}

func containsStrictSuffix(prompt string) bool {
	return len(prompt) >= len(strictSuffix) && prompt[len(prompt)-len(strictSuffix):] == strictSuffix
}

func TestGenerateProposalWithMalformedJSON(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"Sure! Here is my plan: first we..."}}

	agent := domain.AgentByRole(domain.RolePlanner)
	if _, err := generateProposalWith(context.Background(), c, *agent, domain.ProposalRequest{}); err == nil {
		t.Fatal("expected a parse error for non-JSON output")
	}
}

func TestGenerateFinalResponseWithTrims(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"\n  The fix is straightforward.  \n"}}

	got, err := generateFinalResponseWith(context.Background(), c, domain.FinalResponseRequest{
		Scenario: "scenario",
		Solution: domain.FinalSolution{Summary: "summary", Steps: []string{"one"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "The fix is straightforward." {
		t.Errorf("response = %q", got)
	}
}
