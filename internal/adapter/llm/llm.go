// Package llm holds what the text-generation providers share: JSON
// extraction from model output and an HTTP-status error wrapper.
package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty model response")
	// ErrNoJSON is returned when the model text contains no JSON object.
	ErrNoJSON = errors.New("no JSON object found in response")
)

// StatusError is a provider failure with the HTTP status the API returned.
type StatusError struct {
	Provider string
	Code     int
	Err      error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Code, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus returns the response status code.
func (e *StatusError) HTTPStatus() int { return e.Code }

// ExtractJSON returns the span between the first '{' and the last '}' of s.
// Models often wrap JSON in prose or code fences; the span must itself be valid JSON.
func ExtractJSON(s string) ([]byte, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoJSON
	}
	out := []byte(s[start : end+1])
	if !json.Valid(out) {
		return nil, fmt.Errorf("%w: extracted span is not valid JSON", ErrNoJSON)
	}
	return out, nil
}
