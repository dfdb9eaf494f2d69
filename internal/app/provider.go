package app

import (
	"fmt"

	"github.com/heartmarshall/phrasegen-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/phrasegen-backend/internal/adapter/llm/mock"
	"github.com/heartmarshall/phrasegen-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/phrasegen-backend/internal/batch"
	"github.com/heartmarshall/phrasegen-backend/internal/config"
	"github.com/heartmarshall/phrasegen-backend/internal/service/generation"
)

// newProvider returns the generate function for the configured provider and
// the model details recorded on every result.
func newProvider(cfg config.LLMConfig) (batch.GenerateFunc, generation.ModelInfo, error) {
	info := generation.ModelInfo{Model: cfg.Model, Temperature: cfg.Temperature}

	switch cfg.Provider {
	case config.ProviderAnthropic:
		info.Brand = anthropic.Brand
		return anthropic.New(cfg).Generate, info, nil
	case config.ProviderOpenAI:
		info.Brand = openai.Brand
		return openai.New(cfg).Generate, info, nil
	case config.ProviderMock:
		info.Brand, info.Model = mock.Brand, mock.Model
		return mock.New().Generate, info, nil
	default:
		return nil, generation.ModelInfo{}, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
