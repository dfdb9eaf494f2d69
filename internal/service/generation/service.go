// Package generation runs a complete phrase generation: batching, concurrent
// dispatch, aggregation, duplicate filtering and optional persistence.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phrasegen-backend/internal/batch"
	"github.com/heartmarshall/phrasegen-backend/internal/config"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/lexicon"
	"github.com/heartmarshall/phrasegen-backend/internal/phrase"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type batchProcessor interface {
	ProcessBatch(ctx context.Context, index int, cfg domain.PromptConfig, generate batch.GenerateFunc, delay time.Duration) domain.BatchGenerationResult
}

type phraseStore interface {
	SaveResult(ctx context.Context, res domain.GenerationResult) error
	ListEnglish(ctx context.Context, limit int) ([]string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// ModelInfo describes the provider behind the generate function.
type ModelInfo struct {
	Brand       string
	Model       string
	Temperature float64
}

// Service orchestrates generation runs.
type Service struct {
	log        *slog.Logger
	processor  batchProcessor
	generate   batch.GenerateFunc
	model      ModelInfo
	cfg        config.GenerationConfig
	normalizer *phrase.Normalizer
	store      phraseStore
	now        func() time.Time
	newID      func() uuid.UUID
}

// NewService creates a new generation service.
func NewService(
	logger *slog.Logger,
	processor batchProcessor,
	generate batch.GenerateFunc,
	model ModelInfo,
	cfg config.GenerationConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "generation"),
		processor:  processor,
		generate:   generate,
		model:      model,
		cfg:        cfg,
		normalizer: phrase.NewNormalizer(lexicon.Default()),
		now:        time.Now,
		newID:      uuid.New,
	}
}

// SetStore injects the optional persistence layer.
func (s *Service) SetStore(store phraseStore) {
	s.store = store
}
