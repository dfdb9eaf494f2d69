// Package batch runs one retryable generation cycle: call the generator,
// validate and repair the returned phrases, and report what was absorbed.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/lexicon"
	"github.com/heartmarshall/phrasegen-backend/internal/mnemonic"
	"github.com/heartmarshall/phrasegen-backend/internal/phrase"
)

const (
	// MaxRetries is the number of generator calls made per batch.
	MaxRetries = 3

	BaseBackoff = time.Second
	MaxBackoff  = 10 * time.Second
)

// maxReportedReasons caps the rejection reasons kept in INVALID_DATA details.
const maxReportedReasons = 5

// GenerateFunc calls the external generator and returns its raw JSON document.
type GenerateFunc func(ctx context.Context, cfg domain.PromptConfig) ([]byte, error)

// Processor executes batches. It holds no per-batch state and is safe for
// concurrent use.
type Processor struct {
	log        *slog.Logger
	sleep      Sleeper
	now        func() time.Time
	maxRetries int
	backoff    BackoffFunc
	mnemonics  *mnemonic.Validator
}

// Option configures a Processor.
type Option func(*Processor)

// WithSleep replaces the sleeper used for stagger delays and backoff.
func WithSleep(s Sleeper) Option {
	return func(p *Processor) { p.sleep = s }
}

// WithClock replaces the clock used to timestamp errors.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// WithLexicon sets the tables used for mnemonic checks.
func WithLexicon(t *lexicon.Tables) Option {
	return func(p *Processor) { p.mnemonics = mnemonic.New(t) }
}

// WithMaxRetries sets the number of generator calls per batch.
func WithMaxRetries(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxRetries = n
		}
	}
}

// WithBackoff replaces the backoff schedule.
func WithBackoff(b BackoffFunc) Option {
	return func(p *Processor) { p.backoff = b }
}

// New creates a Processor.
func New(log *slog.Logger, opts ...Option) *Processor {
	p := &Processor{
		log:        log.With("service", "batch"),
		sleep:      SleepContext,
		now:        time.Now,
		maxRetries: MaxRetries,
		backoff:    ExponentialBackoff(BaseBackoff, MaxBackoff),
		mnemonics:  mnemonic.New(lexicon.Default()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessBatch waits delay, then calls generate until one response carries a
// phrases array or the retries run out. A response is always a success once
// decoded, even with zero valid phrases. Exhaustion yields an empty result
// with a single API_ERROR.
func (p *Processor) ProcessBatch(
	ctx context.Context,
	index int,
	cfg domain.PromptConfig,
	generate GenerateFunc,
	delay time.Duration,
) domain.BatchGenerationResult {
	log := p.log.With(slog.Int("batch_id", index))

	if delay > 0 {
		if err := p.sleep(ctx, delay); err != nil {
			log.Warn("stagger delay interrupted", slog.String("error", err.Error()))
		}
	}

	var result domain.BatchGenerationResult
	attempts, err := RetryWithBackoff(ctx, func(ctx context.Context, attempt int) error {
		res, err := p.attempt(ctx, index, cfg, generate)
		if err != nil {
			log.Warn("batch attempt failed",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", p.maxRetries),
				slog.String("error", err.Error()),
			)
			return err
		}
		result = res
		return nil
	}, p.maxRetries, p.backoff, p.sleep)

	if err != nil {
		cause := Classify(err)
		log.Error("batch failed",
			slog.Int("attempts", attempts),
			slog.String("cause", cause.String()),
			slog.String("error", err.Error()),
		)
		return domain.BatchGenerationResult{
			BatchID: index,
			Phrases: []domain.Phrase{},
			Errors: []domain.BatchError{domain.NewBatchError(
				domain.ErrorKindAPIError,
				fmt.Sprintf("batch %d failed after %d attempts: %v", index, attempts, err),
				map[string]any{
					"batchId":       index,
					"attemptNumber": attempts,
					"cause":         cause.String(),
				},
				p.now(),
			)},
		}
	}

	log.Info("batch complete",
		slog.Int("attempts", attempts),
		slog.Int("phrases", len(result.Phrases)),
		slog.Int("errors", len(result.Errors)),
	)
	return result
}

func (p *Processor) attempt(
	ctx context.Context,
	index int,
	cfg domain.PromptConfig,
	generate GenerateFunc,
) (domain.BatchGenerationResult, error) {
	raw, err := generate(ctx, cfg)
	if err != nil {
		return domain.BatchGenerationResult{}, fmt.Errorf("generate: %w", err)
	}

	items, err := decodeItems(raw)
	if err != nil {
		return domain.BatchGenerationResult{}, err
	}

	checked := phrase.ValidateBatch(items)
	phrases := make([]domain.Phrase, 0, len(checked.Valid))
	var repaired []string
	for _, ph := range checked.Valid {
		ph = phrase.Sanitize(ph)
		if ph.HasMnemonic() {
			res := p.mnemonics.Validate(ph.Pronunciation, ph.Mnemonic, ph.English)
			if !res.Valid && len(res.Suggestions) > 0 {
				ph = ph.WithMnemonic(res.Suggestions[0])
				repaired = append(repaired, ph.English)
			}
		}
		phrases = append(phrases, ph)
	}

	now := p.now()
	errs := make([]domain.BatchError, 0, 2)
	if n := len(checked.Invalid); n > 0 {
		reasons := make([]string, 0, min(n, maxReportedReasons))
		for _, inv := range checked.Invalid[:min(n, maxReportedReasons)] {
			reasons = append(reasons, inv.Err.Error())
		}
		errs = append(errs, domain.NewBatchError(
			domain.ErrorKindInvalidData,
			fmt.Sprintf("%d of %d phrases failed validation", n, len(items)),
			map[string]any{
				"batchId":      index,
				"invalidCount": n,
				"reasons":      reasons,
			},
			now,
		))
	}
	if len(repaired) > 0 {
		errs = append(errs, domain.NewBatchError(
			domain.ErrorKindValidationError,
			fmt.Sprintf("%d mnemonics repaired", len(repaired)),
			map[string]any{
				"batchId":       index,
				"repairedCount": len(repaired),
				"phrases":       repaired,
			},
			now,
		))
	}

	return domain.BatchGenerationResult{BatchID: index, Phrases: phrases, Errors: errs}, nil
}

type envelope struct {
	Phrases json.RawMessage `json:"phrases"`
}

// decodeItems extracts the phrases array from a generator response.
func decodeItems(raw []byte) ([]json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if t := bytes.TrimSpace(env.Phrases); len(t) == 0 || t[0] != '[' {
		return nil, domain.ErrMissingPhrases
	}
	var items []json.RawMessage
	if err := json.Unmarshal(env.Phrases, &items); err != nil {
		return nil, fmt.Errorf("decode phrases: %w", err)
	}
	return items, nil
}
