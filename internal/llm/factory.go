package llm

import (
	"context"
	"fmt"
)

// New creates a Provider from config, wrapped with retry middleware.
func New(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		base, err = newAnthropic(cfg)
	case "openai":
		base, err = newOpenAI(cfg)
	case "gemini":
		base, err = newGemini(ctx, cfg)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(base, cfg.Retry), nil
}

// NewFromEnv creates a Provider from environment configuration. The error
// is ErrProviderUnavailable when no provider is configured at all.
func NewFromEnv(ctx context.Context) (Provider, error) {
	cfg, ok := ConfigFromEnv()
	if !ok {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("no LLM provider configured")}
	}
	return New(ctx, cfg)
}
