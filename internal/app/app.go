// Package app wires configuration, logging, the provider, the pipeline and
// the optional store into one generation run.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/phrasegen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/phrasegen-backend/internal/adapter/postgres/phraseset"
	"github.com/heartmarshall/phrasegen-backend/internal/batch"
	"github.com/heartmarshall/phrasegen-backend/internal/config"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/service/generation"
)

// RunOptions are the per-invocation inputs of Run.
type RunOptions struct {
	// ConfigPath overrides CONFIG_PATH. Empty means config.Load's lookup.
	ConfigPath string
	Request    generation.Request
	// Migrate applies pending migrations before generating. Ignored without a database.
	Migrate bool
	// Out receives the result as indented JSON.
	Out io.Writer
}

// Run performs one generation run and writes the result to opts.Out.
// A run that produced nothing still writes its result, then returns domain.ErrNoPhrases.
func Run(ctx context.Context, opts RunOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting phrasegen",
		slog.Any("build", buildInfo{}),
		slog.String("provider", cfg.LLM.Provider),
		slog.Bool("database", cfg.Database.Enabled()),
	)

	if cfg.Generation.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Generation.RunTimeout)
		defer cancel()
	}

	generate, info, err := newProvider(cfg.LLM)
	if err != nil {
		return err
	}

	processor := batch.New(logger, batch.WithMaxRetries(cfg.Generation.MaxRetries))
	svc := generation.NewService(logger, processor, generate, info, cfg.Generation)

	if cfg.Database.Enabled() {
		if opts.Migrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()
		svc.SetStore(phraseset.New(pool, postgres.NewTxManager(pool)))
	} else if opts.Request.AvoidStored {
		logger.Warn("stored phrases requested but no database configured")
	}

	res, genErr := svc.Generate(ctx, opts.Request)
	if genErr != nil && !errors.Is(genErr, domain.ErrNoPhrases) {
		return genErr
	}

	if opts.Out != nil {
		if err := writeJSON(opts.Out, res); err != nil {
			return err
		}
	}
	return genErr
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// Show loads a stored run by id and writes it to out as indented JSON.
func Show(ctx context.Context, configPath string, id uuid.UUID, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		return errors.New("show: no database configured")
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	res, err := phraseset.New(pool, postgres.NewTxManager(pool)).GetResult(ctx, id)
	if err != nil {
		return err
	}
	logger.Info("loaded stored run",
		slog.String("run_id", id.String()),
		slog.Int("phrases", len(res.Phrases)),
	)
	return writeJSON(out, res)
}

func writeJSON(w io.Writer, res domain.GenerationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
