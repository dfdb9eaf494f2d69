package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey   ctxKey = "run_id"
	batchIDKey ctxKey = "batch_id"
)

// WithRunID stores the generation run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithBatchID stores the batch index in the context.
func WithBatchID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, batchIDKey, id)
}

// BatchIDFromCtx extracts the batch index from the context.
// Returns -1 and false if absent.
func BatchIDFromCtx(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(batchIDKey).(int)
	if !ok {
		return -1, false
	}
	return id, true
}
