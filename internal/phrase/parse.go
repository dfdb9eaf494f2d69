// Package phrase validates, sanitizes, normalizes and deduplicates generated phrases.
package phrase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

var exampleFields = [...]string{"thai", "thaiMasculine", "thaiFeminine", "pronunciation", "translation"}

// Parse checks one raw generator item against the phrase contract and decodes it.
// The check is all-or-nothing: a single missing field or malformed example
// rejects the whole item. The returned error is a *domain.ValidationError
// listing every problem found.
func Parse(raw json.RawMessage) (domain.Phrase, error) {
	obj, ok := decodeObject(raw)
	if !ok {
		return domain.Phrase{}, domain.NewValidationError("phrase", "must be a JSON object")
	}

	var verr domain.ValidationError
	p := domain.Phrase{
		English:       requireString(obj, "english", "", &verr),
		Thai:          requireString(obj, "thai", "", &verr),
		ThaiMasculine: requireString(obj, "thaiMasculine", "", &verr),
		ThaiFeminine:  requireString(obj, "thaiFeminine", "", &verr),
		Pronunciation: requireString(obj, "pronunciation", "", &verr),
		Mnemonic:      optionalString(obj, "mnemonic", &verr),
		Examples:      parseExamples(obj["examples"], &verr),
	}

	if err := verr.Err(); err != nil {
		return domain.Phrase{}, err
	}
	return p, nil
}

// IsValid reports whether raw satisfies the phrase contract.
func IsValid(raw json.RawMessage) bool {
	_, err := Parse(raw)
	return err == nil
}

func parseExamples(raw json.RawMessage, verr *domain.ValidationError) []domain.ExampleSentence {
	if !isArray(raw) {
		verr.Add("examples", "must be an array")
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		verr.Add("examples", "must be an array")
		return nil
	}
	if len(items) < domain.MinExamples {
		verr.Add("examples", fmt.Sprintf("at least %d required, got %d", domain.MinExamples, len(items)))
	}

	examples := make([]domain.ExampleSentence, 0, len(items))
	for i, item := range items {
		prefix := fmt.Sprintf("examples[%d].", i)
		obj, ok := decodeObject(item)
		if !ok {
			verr.Add(fmt.Sprintf("examples[%d]", i), "must be an object")
			continue
		}
		var vals [len(exampleFields)]string
		for j, f := range exampleFields {
			vals[j] = requireString(obj, f, prefix, verr)
		}
		examples = append(examples, domain.ExampleSentence{
			Thai:          vals[0],
			ThaiMasculine: vals[1],
			ThaiFeminine:  vals[2],
			Pronunciation: vals[3],
			Translation:   vals[4],
		})
	}
	return examples
}

func requireString(obj map[string]json.RawMessage, field, prefix string, verr *domain.ValidationError) string {
	raw, ok := obj[field]
	if !ok || isNull(raw) {
		verr.Add(prefix+field, "required")
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		verr.Add(prefix+field, "must be a string")
		return ""
	}
	if strings.TrimSpace(s) == "" {
		verr.Add(prefix+field, "must not be empty")
	}
	return s
}

func optionalString(obj map[string]json.RawMessage, field string, verr *domain.ValidationError) string {
	raw, ok := obj[field]
	if !ok || isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		verr.Add(field, "must be a string")
		return ""
	}
	return s
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
