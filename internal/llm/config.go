package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterises the provider stack.
type Config struct {
	// Provider is one of: anthropic, openai, gemini, openrouter, mock.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig
}

type AnthropicConfig struct {
	APIKey string
	Model  string // alias or dated ID; default "claude-haiku"
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string // optional override for OpenAI-compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string // alias or dated ID; default "gemini-flash"
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // routed name, e.g. "google/gemini-2.0-flash-exp"
	BaseURL string // default "https://openrouter.ai/api/v1"
}

// DefaultConfig is the baseline every other source overrides.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv reads the STARTEGE_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Provider = envOr("STARTEGE_LLM_PROVIDER", cfg.Provider)

	cfg.Anthropic.APIKey = os.Getenv("STARTEGE_ANTHROPIC_API_KEY")
	cfg.Anthropic.Model = envOr("STARTEGE_ANTHROPIC_MODEL", cfg.Anthropic.Model)

	cfg.OpenAI.APIKey = os.Getenv("STARTEGE_OPENAI_API_KEY")
	cfg.OpenAI.Model = envOr("STARTEGE_OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = os.Getenv("STARTEGE_OPENAI_BASE_URL")

	cfg.Gemini.APIKey = os.Getenv("STARTEGE_GEMINI_API_KEY")
	cfg.Gemini.Model = envOr("STARTEGE_GEMINI_MODEL", cfg.Gemini.Model)

	cfg.OpenRouter.APIKey = os.Getenv("STARTEGE_OPENROUTER_API_KEY")
	cfg.OpenRouter.Model = envOr("STARTEGE_OPENROUTER_MODEL", cfg.OpenRouter.Model)

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// keyEnvByProvider names the env var whose absence makes the provider
// unusable. Mock needs no key.
var keyEnvByProvider = map[string]string{
	"anthropic":  "STARTEGE_ANTHROPIC_API_KEY",
	"openai":     "STARTEGE_OPENAI_API_KEY",
	"gemini":     "STARTEGE_GEMINI_API_KEY",
	"openrouter": "STARTEGE_OPENROUTER_API_KEY",
}

// Validate checks the selected provider is known and has its API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	keyEnv, ok := keyEnvByProvider[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.apiKey() == "" {
		return fmt.Errorf("%s is required for the %s provider", keyEnv, c.Provider)
	}
	return nil
}

func (c Config) apiKey() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "gemini":
		return c.Gemini.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}
