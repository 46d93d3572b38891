package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by CONCLAVE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("CONCLAVE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// LLMProvider returns the configured default LLM provider.
// Valid values: ollama, groq, mock. Defaults to "ollama".
func LLMProvider() string {
	p := os.Getenv("LLM_PROVIDER")
	if p == "" {
		return "ollama"
	}
	return p
}

func GroqAPIKey() string {
	return os.Getenv("GROQ_API_KEY")
}

// GroqModel returns the Groq chat model. Defaults to llama-3.3-70b-versatile.
func GroqModel() string {
	m := os.Getenv("GROQ_MODEL")
	if m == "" {
		return "llama-3.3-70b-versatile"
	}
	return m
}

// OllamaURL returns the base URL of the local Ollama server.
func OllamaURL() string {
	u := os.Getenv("OLLAMA_URL")
	if u == "" {
		return "http://localhost:11434"
	}
	return u
}

// OllamaModel returns the Ollama chat model. Defaults to llama3.1.
func OllamaModel() string {
	m := os.Getenv("OLLAMA_MODEL")
	if m == "" {
		return "llama3.1"
	}
	return m
}

// VerifierURL returns the base URL of the verification service.
// Empty means no real verifier is reachable and runs fall back to mock.
func VerifierURL() string {
	return os.Getenv("VERIFIER_URL")
}

// VerifierMode returns the explicit verification mode override.
// Valid values: "real", "mock", "" (no override).
func VerifierMode() string {
	return os.Getenv("VERIFIER_MODE")
}

// VerifierTimeoutMS returns the verification call timeout in milliseconds.
// Defaults to 20000.
func VerifierTimeoutMS() int {
	ms, err := strconv.Atoi(os.Getenv("VERIFIER_TIMEOUT_MS"))
	if err != nil || ms <= 0 {
		return 20000
	}
	return ms
}

// CodeKeywords returns the substrings that mark a scenario as
// code-related. Overridable via CODE_KEYWORDS (comma-separated) so the
// detector can be tuned without touching core logic.
func CodeKeywords() []string {
	raw := os.Getenv("CODE_KEYWORDS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SessionCap returns how many recent sessions are retained.
// Defaults to 25.
func SessionCap() int {
	n, err := strconv.Atoi(os.Getenv("SESSION_CAP"))
	if err != nil || n <= 0 {
		return 25
	}
	return n
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
