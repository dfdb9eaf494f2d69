package generation

import (
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

// MaxCount bounds the phrases requested by one run.
const MaxCount = 500

// Request holds the parameters of one generation run.
type Request struct {
	Level           domain.ProficiencyLevel
	SpecificTopics  string
	TopicsToDiscuss string
	Count           int
	// ToneLevel 0 uses the configured default.
	ToneLevel       int
	ExistingPhrases []string
	// AvoidStored adds previously stored phrases to ExistingPhrases.
	AvoidStored     bool
}

// Validate checks all fields and collects all errors.
func (r *Request) Validate() error {
	var errs domain.ValidationError

	if r.Count < 1 {
		errs.Add("count", "must be at least 1")
	} else if r.Count > MaxCount {
		errs.Add("count", "too many (max 500)")
	}
	if r.Level != "" && !r.Level.IsValid() {
		errs.Add("level", "unknown proficiency level")
	}
	if r.ToneLevel < 0 || r.ToneLevel > 10 {
		errs.Add("tone_level", "must be within [1, 10]")
	}

	return errs.Err()
}
