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

// OllamaClient talks to a local Ollama server via /api/chat.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOllamaClient(baseURL, model string) *OllamaClient {
	return &OllamaClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error,omitempty"`
}

func (c *OllamaClient) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    c.model,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options:  ollamaOptions{Temperature: temperature},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result ollamaChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("ollama error: %s", result.Error)
	}

	return result.Message.Content, nil
}

func (c *OllamaClient) Classify(ctx context.Context, scenario string) (domain.Category, error) {
	return classifyWith(ctx, c, scenario)
}

func (c *OllamaClient) GenerateProposal(ctx context.Context, agent domain.Agent, req domain.ProposalRequest) (*domain.Proposal, error) {
	return generateProposalWith(ctx, c, agent, req)
}

func (c *OllamaClient) GenerateFinalSolution(ctx context.Context, scenario string, proposals []domain.Proposal, evidenceExcerpt string) (*domain.FinalSolution, error) {
	return generateFinalSolutionWith(ctx, c, scenario, proposals, evidenceExcerpt)
}

func (c *OllamaClient) GenerateFinalResponse(ctx context.Context, req domain.FinalResponseRequest) (string, error) {
	return generateFinalResponseWith(ctx, c, req)
}
