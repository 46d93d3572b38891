package domain

import "context"

// ProposalRequest carries everything a proposer role sees when asked for
// a structured proposal.
type ProposalRequest struct {
	Scenario        string
	Category        Category
	Weights         Weights
	EvidenceExcerpt string
	MinRationale    int
	// Strict is set on the one retry after a malformed response; the
	// client should instruct the model to return nothing but the schema.
	Strict bool
}

// FinalResponseRequest carries the inputs for the user-facing response.
type FinalResponseRequest struct {
	Scenario        string
	Category        Category
	Solution        FinalSolution
	Proposals       []Proposal
	EvidenceExcerpt string
	CodeRelated     bool
}

// LLMClient is the external text-generation capability consumed by the
// debate core. Implementations validate shape only as far as parsing;
// semantic validation and repair belong to the orchestrator.
type LLMClient interface {
	Classify(ctx context.Context, scenario string) (Category, error)
	GenerateProposal(ctx context.Context, agent Agent, req ProposalRequest) (*Proposal, error)
	GenerateFinalSolution(ctx context.Context, scenario string, proposals []Proposal, evidenceExcerpt string) (*FinalSolution, error)
	GenerateFinalResponse(ctx context.Context, req FinalResponseRequest) (string, error)
}

// VerifyRequest identifies what the verification capability should run.
type VerifyRequest struct {
	SessionID   string
	PlanID      string
	Mode        string // "real" or "mock"
	FixturePath string
	Command     string
}

// Verifier is the external verification capability. The core only
// consumes its result; sandboxing and process mechanics are out of scope.
type Verifier interface {
	Verify(ctx context.Context, req VerifyRequest) (*VerificationResult, error)
}
