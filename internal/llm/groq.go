package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

const groqChatURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqClient talks to Groq's OpenAI-compatible chat completions API.
type GroqClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGroqClient(apiKey, model string) *GroqClient {
	return &GroqClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqChatRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type groqChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *GroqClient) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	body, err := json.Marshal(groqChatRequest{
		Model:       c.model,
		Messages:    []groqMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqChatURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result groqChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("groq API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("groq API returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}

func (c *GroqClient) Classify(ctx context.Context, scenario string) (domain.Category, error) {
	return classifyWith(ctx, c, scenario)
}

func (c *GroqClient) GenerateProposal(ctx context.Context, agent domain.Agent, req domain.ProposalRequest) (*domain.Proposal, error) {
	return generateProposalWith(ctx, c, agent, req)
}

func (c *GroqClient) GenerateFinalSolution(ctx context.Context, scenario string, proposals []domain.Proposal, evidenceExcerpt string) (*domain.FinalSolution, error) {
	return generateFinalSolutionWith(ctx, c, scenario, proposals, evidenceExcerpt)
}

func (c *GroqClient) GenerateFinalResponse(ctx context.Context, req domain.FinalResponseRequest) (string, error) {
	return generateFinalResponseWith(ctx, c, req)
}
