package llm

import (
	"fmt"

	"github.com/the-axmc/conclave/internal/config"
	"github.com/the-axmc/conclave/internal/domain"
)

// Provider constants
const (
	ProviderOllama = "ollama"
	ProviderGroq   = "groq"
	ProviderMock   = "mock"
)

// NewClient creates an LLM client based on the provider name.
// Returns an error if the provider is unknown or a required credential is
// missing (except for mock).
func NewClient(provider string) (domain.LLMClient, error) {
	switch provider {
	case ProviderOllama:
		return NewOllamaClient(config.OllamaURL(), config.OllamaModel()), nil

	case ProviderGroq:
		if config.GroqAPIKey() == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return NewGroqClient(config.GroqAPIKey(), config.GroqModel()), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid options: ollama, groq, mock)", provider)
	}
}
