package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("english", "required")

	if got := err.Error(); got != "validation: english: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	var verr ValidationError
	verr.Add("thai", "required")
	verr.Add("examples", "at least 2 required")

	err := verr.Err()
	if err == nil {
		t.Fatal("Err() = nil, want error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "validation: 2 errors") {
		t.Fatalf("unexpected Error(): %q", msg)
	}
	if !strings.Contains(msg, "examples: at least 2 required") {
		t.Fatalf("Error() should list each field: %q", msg)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_ErrNilWhenEmpty(t *testing.T) {
	t.Parallel()

	var verr ValidationError
	if err := verr.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	var nilErr *ValidationError
	if err := nilErr.Err(); err != nil {
		t.Fatalf("nil receiver Err() = %v, want nil", err)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrValidation, ErrMissingPhrases, ErrNoPhrases}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
