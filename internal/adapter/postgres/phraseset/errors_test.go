package phraseset

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := mapError(nil, "generation_run", uuid.New()); got != nil {
		t.Errorf("mapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows), "generation_run", id)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("mapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := fmt.Sprintf("generation_run %s: not found", id); got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_ContextPassesThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.DeadlineExceeded, context.Canceled} {
		got := mapError(ctxErr, "generation_run", 1)
		if !errors.Is(got, ctxErr) {
			t.Errorf("mapError(%v) lost the context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("mapError(%v) should not map to ErrNotFound", ctxErr)
		}
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"unique_violation", "23505", domain.ErrAlreadyExists},
		{"foreign_key_violation", "23503", domain.ErrNotFound},
		{"check_violation", "23514", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapError(&pgconn.PgError{Code: tt.code}, "generated_phrase", "x")
			if !errors.Is(got, tt.wantErr) {
				t.Errorf("mapError(code %s) = %v, want %v", tt.code, got, tt.wantErr)
			}
		})
	}
}

func TestMapError_UnknownPgError(t *testing.T) {
	t.Parallel()

	got := mapError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, "generation_run", 1)

	var pgErr *pgconn.PgError
	if !errors.As(got, &pgErr) {
		t.Errorf("unknown PgError should stay unwrappable: %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) || errors.Is(got, domain.ErrAlreadyExists) || errors.Is(got, domain.ErrValidation) {
		t.Error("unknown PgError should not map to a domain error")
	}
}
