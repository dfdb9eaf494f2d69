package phrase

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

// Sanitize returns a copy of p with every string field trimmed.
func Sanitize(p domain.Phrase) domain.Phrase {
	out := domain.Phrase{
		English:       strings.TrimSpace(p.English),
		Thai:          strings.TrimSpace(p.Thai),
		ThaiMasculine: strings.TrimSpace(p.ThaiMasculine),
		ThaiFeminine:  strings.TrimSpace(p.ThaiFeminine),
		Pronunciation: strings.TrimSpace(p.Pronunciation),
		Mnemonic:      strings.TrimSpace(p.Mnemonic),
		Examples:      make([]domain.ExampleSentence, len(p.Examples)),
	}
	for i, ex := range p.Examples {
		out.Examples[i] = domain.ExampleSentence{
			Thai:          strings.TrimSpace(ex.Thai),
			ThaiMasculine: strings.TrimSpace(ex.ThaiMasculine),
			ThaiFeminine:  strings.TrimSpace(ex.ThaiFeminine),
			Pronunciation: strings.TrimSpace(ex.Pronunciation),
			Translation:   strings.TrimSpace(ex.Translation),
		}
	}
	return out
}

// Invalid is one rejected raw item with the reason it was rejected.
type Invalid struct {
	Raw json.RawMessage
	Err error
}

// BatchValidation partitions raw generator items.
type BatchValidation struct {
	Valid   []domain.Phrase
	Invalid []Invalid
}

// ValidateBatch parses every item, keeping input order in both partitions.
// Valid phrases are returned as parsed, without sanitizing.
func ValidateBatch(items []json.RawMessage) BatchValidation {
	var res BatchValidation
	for _, item := range items {
		p, err := Parse(item)
		if err != nil {
			res.Invalid = append(res.Invalid, Invalid{Raw: item, Err: err})
			continue
		}
		res.Valid = append(res.Valid, p)
	}
	return res
}
