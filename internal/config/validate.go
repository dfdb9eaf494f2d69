package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderAnthropic, ProviderOpenAI:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", l.Provider)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown provider %q (want anthropic, openai or mock)", l.Provider)
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", g.BatchSize)
	}
	if g.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", g.Concurrency)
	}
	if g.StaggerDelay < 0 {
		return fmt.Errorf("stagger_delay must be >= 0 (got %v)", g.StaggerDelay)
	}
	if g.MaxRetries <= 0 {
		return fmt.Errorf("max_retries must be > 0 (got %d)", g.MaxRetries)
	}
	if g.ToneLevel < 1 || g.ToneLevel > 10 {
		return fmt.Errorf("tone_level must be within [1, 10] (got %d)", g.ToneLevel)
	}
	return nil
}
