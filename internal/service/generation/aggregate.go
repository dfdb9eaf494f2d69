package generation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

// AggregateBatchResults concatenates phrases and errors of all batches in
// batch order. It does not deduplicate.
func AggregateBatchResults(results []domain.BatchGenerationResult) ([]domain.Phrase, []domain.BatchError) {
	var np, ne int
	for _, r := range results {
		np += len(r.Phrases)
		ne += len(r.Errors)
	}

	phrases := make([]domain.Phrase, 0, np)
	errs := make([]domain.BatchError, 0, ne)
	for _, r := range results {
		phrases = append(phrases, r.Phrases...)
		errs = append(errs, r.Errors...)
	}
	return phrases, errs
}

// buildSummary condenses a run's counts and errors.
func buildSummary(requested, produced, filtered int, errs []domain.BatchError) domain.ErrorSummary {
	sum := domain.ErrorSummary{
		Requested:   requested,
		Produced:    produced,
		Filtered:    filtered,
		TotalErrors: len(errs),
	}
	if len(errs) > 0 {
		sum.ByKind = make(map[domain.ErrorKind]int)
		for _, e := range errs {
			sum.ByKind[e.Type]++
		}
	}

	msg := fmt.Sprintf("%d of %d phrases produced; %d filtered", produced, requested, filtered)
	if len(sum.ByKind) > 0 {
		kinds := make([]string, 0, len(sum.ByKind))
		for k, n := range sum.ByKind {
			kinds = append(kinds, fmt.Sprintf("%s=%d", k, n))
		}
		slices.Sort(kinds)
		msg += fmt.Sprintf("; %d errors (%s)", len(errs), strings.Join(kinds, ", "))
	}
	sum.Message = msg
	return sum
}
