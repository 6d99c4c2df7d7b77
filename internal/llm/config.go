package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	APIKey string

	// Model is a friendly alias ("claude-haiku", "gpt-4o-mini",
	// "gemini-flash") or a raw model id.
	Model string

	// BaseURL overrides the OpenAI endpoint for compatible APIs
	// (OpenRouter and friends). OpenAI provider only.
	BaseURL string

	Retry RetryConfig
}

// defaultModels picks a cheap model per provider when none is configured.
var defaultModels = map[string]string{
	"anthropic": "claude-haiku",
	"openai":    "gpt-4o-mini",
	"gemini":    "gemini-flash",
}

// DefaultConfig returns a Config with retry defaults and no provider
// selected.
func DefaultConfig() Config {
	return Config{
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from TACTIX_LLM_* variables, falling back
// to bare API key discovery (ANTHROPIC_API_KEY, OPENAI_API_KEY,
// GEMINI_API_KEY, in that order). The second return is false when no
// provider could be configured.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()

	cfg.Provider = os.Getenv("TACTIX_LLM_PROVIDER")
	cfg.APIKey = os.Getenv("TACTIX_LLM_API_KEY")
	cfg.Model = os.Getenv("TACTIX_LLM_MODEL")
	cfg.BaseURL = os.Getenv("TACTIX_LLM_BASE_URL")

	if cfg.Provider == "" {
		for _, probe := range []struct{ provider, env string }{
			{"anthropic", "ANTHROPIC_API_KEY"},
			{"openai", "OPENAI_API_KEY"},
			{"gemini", "GEMINI_API_KEY"},
		} {
			if k := os.Getenv(probe.env); k != "" {
				cfg.Provider = probe.provider
				cfg.APIKey = k
				break
			}
		}
	}

	if cfg.Provider == "" {
		return Config{}, false
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}
	return cfg, true
}

// Validate checks the config is usable.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("API key is required for the %s provider", c.Provider)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
