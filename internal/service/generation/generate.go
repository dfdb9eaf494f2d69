package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phrasegen-backend/internal/batch"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/phrase"
	"github.com/heartmarshall/phrasegen-backend/internal/prompt"
	"github.com/heartmarshall/phrasegen-backend/pkg/ctxutil"
)

// maxStoredExisting caps how many stored phrases are added to the avoid list.
const maxStoredExisting = 300

// Generate runs one generation: it dispatches ceil(Count/BatchSize) batches,
// merges their output, filters duplicates and trims to Count.
// A run that yields no phrases returns the (empty) result with domain.ErrNoPhrases.
func (s *Service) Generate(ctx context.Context, req Request) (domain.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return domain.GenerationResult{}, err
	}

	runID := s.newID()
	ctx = ctxutil.WithRunID(ctx, runID)
	log := s.log.With(slog.String("run_id", runID.String()))

	existing := req.ExistingPhrases
	if req.AvoidStored && s.store != nil {
		stored, err := s.store.ListEnglish(ctx, maxStoredExisting)
		if err != nil {
			return domain.GenerationResult{}, fmt.Errorf("list stored phrases: %w", err)
		}
		existing = append(existing[:len(existing):len(existing)], stored...)
	}

	tone := req.ToneLevel
	if tone == 0 {
		tone = s.cfg.ToneLevel
	}

	sizes := splitCount(req.Count, s.cfg.BatchSize)
	configs := make([]domain.PromptConfig, len(sizes))
	for i, n := range sizes {
		configs[i] = prompt.CreatePromptConfig(s.model.Model, prompt.Options{
			Level:           req.Level,
			SpecificTopics:  req.SpecificTopics,
			TopicsToDiscuss: req.TopicsToDiscuss,
			Count:           n,
			ExistingPhrases: existing,
			ToneLevel:       tone,
		})
	}

	log.Info("generation started",
		slog.Int("count", req.Count),
		slog.Int("batches", len(sizes)),
		slog.String("level", configs[0].Level),
		slog.Int("existing", len(existing)),
	)
	started := s.now()

	results := s.dispatch(ctx, configs)
	phrases, errs := AggregateBatchResults(results)

	kept, filtered := s.filterDuplicates(phrases, existing)
	final := phrase.DedupeAndCapitalizePhrases(kept)
	filtered += len(kept) - len(final)
	if len(final) > req.Count {
		final = final[:req.Count]
	}

	res := domain.GenerationResult{
		ID:               runID,
		Phrases:          final,
		AggregatedErrors: errs,
		ErrorSummary:     buildSummary(req.Count, len(final), filtered, errs),
		Level:            configs[0].Level,
		Context:          configs[0].Context,
		ToneLevel:        tone,
		LLMBrand:         s.model.Brand,
		LLMModel:         s.model.Model,
		Temperature:      s.model.Temperature,
		CreatedAt:        s.now(),
	}

	log.Info("generation finished",
		slog.String("summary", res.ErrorSummary.Message),
		slog.Duration("took", res.CreatedAt.Sub(started)),
	)

	if len(final) == 0 {
		return res, domain.ErrNoPhrases
	}

	if s.store != nil {
		if err := s.store.SaveResult(ctx, res); err != nil {
			return res, fmt.Errorf("save result: %w", err)
		}
		log.Info("generation saved", slog.Int("phrases", len(final)))
	}

	return res, nil
}

// dispatch runs every batch concurrently, at most cfg.Concurrency at a time.
// Only the first wave is staggered; later batches start as slots free up.
func (s *Service) dispatch(ctx context.Context, configs []domain.PromptConfig) []domain.BatchGenerationResult {
	limit := max(1, s.cfg.Concurrency)
	delays := batch.CreateBatchDelays(min(len(configs), limit), s.cfg.StaggerDelay)
	results := make([]domain.BatchGenerationResult, len(configs))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, cfg := range configs {
		var delay time.Duration
		if i < len(delays) {
			delay = delays[i]
		}
		g.Go(func() error {
			results[i] = s.processor.ProcessBatch(ctxutil.WithBatchID(ctx, i), i, cfg, s.generate, delay)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// filterDuplicates drops phrases whose meaning repeats one of existing or an
// earlier phrase of the same run. English is compared by normalized key, Thai
// with trailing politeness particles removed.
func (s *Service) filterDuplicates(phrases []domain.Phrase, existing []string) ([]domain.Phrase, int) {
	seen := s.normalizer.KeySet(existing)
	kept := make([]domain.Phrase, 0, len(phrases))

	for _, p := range phrases {
		key := s.normalizer.Normalize(p.English)
		if key != "" && seen[key] {
			continue
		}
		if s.thaiRepeats(p, kept) {
			continue
		}
		if key != "" {
			seen[key] = true
		}
		kept = append(kept, p)
	}
	return kept, len(phrases) - len(kept)
}

func (s *Service) thaiRepeats(p domain.Phrase, kept []domain.Phrase) bool {
	for _, k := range kept {
		if s.normalizer.IsThaiDuplicate(p.Thai, k.Thai) {
			return true
		}
	}
	return false
}

// splitCount splits total into chunks of at most size.
func splitCount(total, size int) []int {
	size = max(1, size)
	sizes := make([]int, 0, (total+size-1)/size)
	for total > 0 {
		n := min(total, size)
		sizes = append(sizes, n)
		total -= n
	}
	return sizes
}
