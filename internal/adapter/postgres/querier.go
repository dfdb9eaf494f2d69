// Package postgres stores generated phrase sets and the history of generation
// runs. Repositories share one pool; TxManager lets a run and its phrases be
// written atomically.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is what the phrase repositories need from a connection. Both the
// pool and an open transaction provide it, so a save runs the same code inside
// or outside RunInTx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type runTxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, runTxKey{}, tx)
}

// QuerierFromCtx picks the run transaction opened by RunInTx when ctx carries
// one and falls back to pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(runTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}
