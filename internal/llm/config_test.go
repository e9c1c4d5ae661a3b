package llm

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateNamesTheMissingVariable(t *testing.T) {
	err := Config{Provider: "openai"}.Validate()
	if err == nil || !strings.Contains(err.Error(), "STARTEGE_OPENAI_API_KEY") {
		t.Fatalf("error %v does not name the env var to set", err)
	}
}

func TestConfigFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("STARTEGE_LLM_PROVIDER", "gemini")
	t.Setenv("STARTEGE_GEMINI_API_KEY", "g-key")
	t.Setenv("STARTEGE_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"STARTEGE_LLM_PROVIDER",
		"STARTEGE_ANTHROPIC_API_KEY", "STARTEGE_ANTHROPIC_MODEL",
		"STARTEGE_OPENAI_API_KEY", "STARTEGE_OPENAI_MODEL", "STARTEGE_OPENAI_BASE_URL",
		"STARTEGE_GEMINI_API_KEY", "STARTEGE_GEMINI_MODEL",
		"STARTEGE_OPENROUTER_API_KEY", "STARTEGE_OPENROUTER_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("default openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.OpenRouter.Model != "google/gemini-2.0-flash-exp" {
		t.Errorf("default openrouter model = %q", cfg.OpenRouter.Model)
	}
}
