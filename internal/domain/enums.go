package domain

import "strings"

// ErrorKind classifies a BatchError.
type ErrorKind string

const (
	ErrorKindInvalidJSON      ErrorKind = "INVALID_JSON"
	ErrorKindMissingFields    ErrorKind = "MISSING_FIELDS"
	ErrorKindInvalidData      ErrorKind = "INVALID_DATA"
	ErrorKindAPIError         ErrorKind = "API_ERROR"
	ErrorKindNetworkError     ErrorKind = "NETWORK_ERROR"
	ErrorKindTimeout          ErrorKind = "TIMEOUT"
	ErrorKindRateLimit        ErrorKind = "RATE_LIMIT"
	ErrorKindModelUnavailable ErrorKind = "MODEL_UNAVAILABLE"
	ErrorKindParseError       ErrorKind = "PARSE_ERROR"
	ErrorKindUnknown          ErrorKind = "UNKNOWN"
	ErrorKindValidationError  ErrorKind = "VALIDATION_ERROR"
)

func (k ErrorKind) String() string { return string(k) }

func (k ErrorKind) IsValid() bool {
	switch k {
	case ErrorKindInvalidJSON, ErrorKindMissingFields, ErrorKindInvalidData, ErrorKindAPIError,
		ErrorKindNetworkError, ErrorKindTimeout, ErrorKindRateLimit, ErrorKindModelUnavailable,
		ErrorKindParseError, ErrorKindUnknown, ErrorKindValidationError:
		return true
	}
	return false
}

// ProficiencyLevel is one of six ordered learner bands.
type ProficiencyLevel string

const (
	LevelCompleteBeginner ProficiencyLevel = "Complete Beginner"
	LevelBeginner         ProficiencyLevel = "Beginner"
	LevelIntermediate     ProficiencyLevel = "Intermediate"
	LevelAdvanced         ProficiencyLevel = "Advanced"
	LevelNative           ProficiencyLevel = "Native"
	LevelGodMode          ProficiencyLevel = "God Mode"
)

// ProficiencyLevels lists every band from easiest to hardest.
var ProficiencyLevels = []ProficiencyLevel{
	LevelCompleteBeginner, LevelBeginner, LevelIntermediate,
	LevelAdvanced, LevelNative, LevelGodMode,
}

func (l ProficiencyLevel) String() string { return string(l) }

func (l ProficiencyLevel) IsValid() bool {
	return l.Rank() > 0
}

// Rank returns the 1-based position of the level, or 0 for unknown levels.
func (l ProficiencyLevel) Rank() int {
	for i, lv := range ProficiencyLevels {
		if lv == l {
			return i + 1
		}
	}
	return 0
}

// ParseProficiencyLevel matches s against the known bands, ignoring case,
// surrounding whitespace and '-'/'_' separators.
func ParseProficiencyLevel(s string) (ProficiencyLevel, error) {
	key := foldLevel(s)
	for _, lv := range ProficiencyLevels {
		if foldLevel(string(lv)) == key {
			return lv, nil
		}
	}
	return "", NewValidationError("level", "unknown proficiency level "+strings.TrimSpace(s))
}

func foldLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}
