// Package phraseset stores generation runs with their phrases and batch errors.
package phraseset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/phrasegen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo persists generation results in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  txManager
}

// New creates a Repo.
func New(pool *pgxpool.Pool, txm txManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SaveResult stores the run, its phrases and its errors in one transaction.
func (r *Repo) SaveResult(ctx context.Context, res domain.GenerationResult) error {
	return r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		sum := res.ErrorSummary
		query, args, err := psql.Insert("generation_runs").
			Columns("id", "level", "context", "tone_level", "llm_brand", "llm_model", "temperature",
				"requested", "produced", "filtered", "total_errors", "summary", "created_at").
			Values(res.ID, res.Level, res.Context, res.ToneLevel, res.LLMBrand, res.LLMModel, res.Temperature,
				sum.Requested, sum.Produced, sum.Filtered, sum.TotalErrors, sum.Message, res.CreatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert generation_run: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return mapError(err, "generation_run", res.ID)
		}

		batch := &pgx.Batch{}
		for i, p := range res.Phrases {
			examples, err := json.Marshal(p.Examples)
			if err != nil {
				return fmt.Errorf("generated_phrase %d marshal examples: %w", i, err)
			}
			batch.Queue(
				`INSERT INTO generated_phrases
				 (id, run_id, position, english, thai, thai_masculine, thai_feminine, pronunciation, mnemonic, examples, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				uuid.New(), res.ID, i, p.English, p.Thai, p.ThaiMasculine, p.ThaiFeminine,
				p.Pronunciation, p.Mnemonic, examples, res.CreatedAt,
			)
		}
		for i, e := range res.AggregatedErrors {
			var details []byte
			if len(e.Details) > 0 {
				if details, err = json.Marshal(e.Details); err != nil {
					return fmt.Errorf("generation_error %d marshal details: %w", i, err)
				}
			}
			batch.Queue(
				`INSERT INTO generation_errors (run_id, position, kind, message, details, occurred_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				res.ID, i, string(e.Type), e.Message, details, e.Timestamp,
			)
		}

		return sendBatchExec(ctx, q, batch, res.ID)
	})
}

func sendBatchExec(ctx context.Context, q postgres.Querier, batch *pgx.Batch, runID uuid.UUID) error {
	if batch.Len() == 0 {
		return nil
	}
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "generation_run", runID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListEnglish returns the English text of the most recently stored phrases, newest first.
func (r *Repo) ListEnglish(ctx context.Context, limit int) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("english").
		From("generated_phrases").
		OrderBy("created_at DESC", "position ASC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list english: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list generated_phrases: %w", err)
	}
	english, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan generated_phrases: %w", err)
	}
	return english, nil
}

// GetResult loads a stored run. Missing runs return domain.ErrNotFound.
func (r *Repo) GetResult(ctx context.Context, id uuid.UUID) (domain.GenerationResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("level", "context", "tone_level", "llm_brand", "llm_model", "temperature",
		"requested", "produced", "filtered", "total_errors", "summary", "created_at").
		From("generation_runs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("build get generation_run: %w", err)
	}

	res := domain.GenerationResult{ID: id}
	sum := &res.ErrorSummary
	err = q.QueryRow(ctx, query, args...).Scan(
		&res.Level, &res.Context, &res.ToneLevel, &res.LLMBrand, &res.LLMModel, &res.Temperature,
		&sum.Requested, &sum.Produced, &sum.Filtered, &sum.TotalErrors, &sum.Message, &res.CreatedAt,
	)
	if err != nil {
		return domain.GenerationResult{}, mapError(err, "generation_run", id)
	}

	if res.Phrases, err = r.phrases(ctx, q, id); err != nil {
		return domain.GenerationResult{}, err
	}
	if res.AggregatedErrors, err = r.batchErrors(ctx, q, id); err != nil {
		return domain.GenerationResult{}, err
	}
	if len(res.AggregatedErrors) > 0 {
		sum.ByKind = make(map[domain.ErrorKind]int)
		for _, e := range res.AggregatedErrors {
			sum.ByKind[e.Type]++
		}
	}
	return res, nil
}

func (r *Repo) phrases(ctx context.Context, q postgres.Querier, runID uuid.UUID) ([]domain.Phrase, error) {
	rows, err := q.Query(ctx,
		`SELECT english, thai, thai_masculine, thai_feminine, pronunciation, mnemonic, examples
		 FROM generated_phrases WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list generated_phrases: %w", err)
	}
	defer rows.Close()

	out := []domain.Phrase{}
	for rows.Next() {
		var (
			p        domain.Phrase
			examples []byte
		)
		if err := rows.Scan(&p.English, &p.Thai, &p.ThaiMasculine, &p.ThaiFeminine,
			&p.Pronunciation, &p.Mnemonic, &examples); err != nil {
			return nil, fmt.Errorf("scan generated_phrase: %w", err)
		}
		if err := json.Unmarshal(examples, &p.Examples); err != nil {
			return nil, fmt.Errorf("generated_phrase unmarshal examples: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) batchErrors(ctx context.Context, q postgres.Querier, runID uuid.UUID) ([]domain.BatchError, error) {
	rows, err := q.Query(ctx,
		`SELECT kind, message, details, occurred_at
		 FROM generation_errors WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list generation_errors: %w", err)
	}
	defer rows.Close()

	out := []domain.BatchError{}
	for rows.Next() {
		var (
			kind, msg string
			details   []byte
			at        time.Time
		)
		if err := rows.Scan(&kind, &msg, &details, &at); err != nil {
			return nil, fmt.Errorf("scan generation_error: %w", err)
		}
		e := domain.NewBatchError(domain.ErrorKind(kind), msg, nil, at)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("generation_error unmarshal details: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
