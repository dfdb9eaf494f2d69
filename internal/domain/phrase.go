package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinExamples is the minimum number of example sentences a phrase must carry.
const MinExamples = 2

// ExampleSentence is one usage example attached to a phrase.
type ExampleSentence struct {
	Thai          string `json:"thai"`
	ThaiMasculine string `json:"thaiMasculine"`
	ThaiFeminine  string `json:"thaiFeminine"`
	Pronunciation string `json:"pronunciation"`
	Translation   string `json:"translation"`
}

// Phrase is one vocabulary unit produced by the generator.
// Mnemonic is optional; an empty string means the model did not provide one.
type Phrase struct {
	English       string            `json:"english"`
	Thai          string            `json:"thai"`
	ThaiMasculine string            `json:"thaiMasculine"`
	ThaiFeminine  string            `json:"thaiFeminine"`
	Pronunciation string            `json:"pronunciation"`
	Mnemonic      string            `json:"mnemonic,omitempty"`
	Examples      []ExampleSentence `json:"examples"`
}

// WithMnemonic returns a copy of p with the mnemonic replaced.
// The examples slice is cloned so the copy shares no backing array with p.
func (p Phrase) WithMnemonic(mnemonic string) Phrase {
	out := p
	out.Mnemonic = mnemonic
	out.Examples = slices.Clone(p.Examples)
	return out
}

// HasMnemonic reports whether the phrase carries a non-blank mnemonic.
func (p Phrase) HasMnemonic() bool {
	return strings.TrimSpace(p.Mnemonic) != ""
}

// PromptConfig describes one generation request sent to the text-generation service.
type PromptConfig struct {
	Model           string `json:"model"`
	Level           string `json:"level"`
	Context         string `json:"context"`
	ToneDescription string `json:"toneDescription"`
	Count           int    `json:"count"`
	SystemPrompt    string `json:"systemPrompt"`
	UserPrompt      string `json:"userPrompt"`
}

// BatchGenerationResult is the output of one batch attempt-cycle.
type BatchGenerationResult struct {
	BatchID int          `json:"batchId"`
	Phrases []Phrase     `json:"phrases"`
	Errors  []BatchError `json:"errors"`
}

// ErrorSummary condenses the errors of a generation run for display.
type ErrorSummary struct {
	Requested   int               `json:"requested"`
	Produced    int               `json:"produced"`
	Filtered    int               `json:"filtered"`
	TotalErrors int               `json:"totalErrors"`
	ByKind      map[ErrorKind]int `json:"byKind,omitempty"`
	Message     string            `json:"message"`
}

// GenerationResult aggregates all batches of one generation run.
type GenerationResult struct {
	ID               uuid.UUID    `json:"id"`
	Phrases          []Phrase     `json:"phrases"`
	AggregatedErrors []BatchError `json:"aggregatedErrors"`
	ErrorSummary     ErrorSummary `json:"errorSummary"`
	Level            string       `json:"level"`
	Context          string       `json:"context"`
	ToneLevel        int          `json:"toneLevel"`
	LLMBrand         string       `json:"llmBrand"`
	LLMModel         string       `json:"llmModel"`
	Temperature      float64      `json:"temperature"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// FoldKey is the cheap comparison key used by final deduplication:
// surrounding whitespace trimmed, lowercased.
func FoldKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
