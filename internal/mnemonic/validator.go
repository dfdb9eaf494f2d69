// Package mnemonic checks that a mnemonic's quoted sound hook actually sounds
// like the phrase's romanized pronunciation and proposes replacements when not.
package mnemonic

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/lexicon"
)

const minMatchLen = 2

// hookRe matches the first quoted span using straight or curly quotes. The
// opening quote must not follow a letter, so contractions like "it's" are skipped.
var hookRe = regexp.MustCompile(`(?:^|[^\p{L}])['"‘“]([^'"‘’“”]+)['"’”]`)

// Issue messages.
const (
	IssueNoHook     = "no quoted sound hook"
	IssueNoMatch    = "sound hook does not match pronunciation"
	IssueBadPairing = "critical: mismatched phrase"
)

// badPairings are syllable/hook combinations that look similar on paper but
// are known to mislead learners.
var badPairings = []struct{ syllable, hook string }{
	{syllable: "chan", hook: "john"},
}

// Result is the outcome of checking one mnemonic.
type Result struct {
	Valid       bool
	Hook        string
	Syllables   []string
	Issues      []string
	Suggestions []string
	// Similarity is the normalized edit similarity between the pronunciation
	// and the hook, in [0,1]. Informational only.
	Similarity float64
}

// Validator compares pronunciations with mnemonic hooks.
type Validator struct {
	t *lexicon.Tables
}

// New creates a Validator over the given tables.
func New(t *lexicon.Tables) *Validator {
	return &Validator{t: t}
}

// Validate checks mnemonic against pronunciation. On failure the result carries
// suggestions built from the pronunciation and english.
func (v *Validator) Validate(pronunciation, mnemonic, english string) Result {
	res := Result{Syllables: v.Syllables(pronunciation)}

	m := hookRe.FindStringSubmatch(mnemonic)
	if m == nil {
		res.Issues = append(res.Issues, IssueNoHook)
		res.Suggestions = v.GenerateSuggestions(res.Syllables, english)
		return res
	}
	res.Hook = strings.TrimSpace(m[1])
	hookWords := v.Syllables(res.Hook)
	res.Similarity = similarity(strings.Join(res.Syllables, ""), strings.Join(hookWords, ""))

	res.Valid = v.matches(res.Syllables, hookWords)
	if !res.Valid {
		res.Issues = append(res.Issues, IssueNoMatch)
	}
	if isBadPairing(res.Syllables, hookWords) {
		res.Valid = false
		res.Issues = append(res.Issues, IssueBadPairing)
	}

	if !res.Valid {
		res.Suggestions = v.GenerateSuggestions(res.Syllables, english)
	}
	return res
}

// Syllables lowercases s, strips tone marks, folds phonetic vowel letters to
// ASCII, drops everything that is not a letter and splits on whitespace and hyphens.
func (v *Validator) Syllables(s string) []string {
	s = v.fold(strings.ToLower(s))
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (v *Validator) fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.Map(func(r rune) rune {
		if ascii, ok := v.t.ToneVowels[r]; ok {
			return ascii
		}
		return r
	}, s)
}

func (v *Validator) matches(syllables, hookWords []string) bool {
	for _, s := range syllables {
		if len(s) < minMatchLen {
			continue
		}
		for _, h := range hookWords {
			if len(h) < minMatchLen {
				continue
			}
			if overlaps(s, h) {
				return true
			}
			if alike, ok := v.t.SyllableRhymes[s]; ok && overlaps(strings.ReplaceAll(alike, "-", ""), h) {
				return true
			}
			if ss, hs := skeleton(s), skeleton(h); len(ss) >= minMatchLen && len(hs) >= minMatchLen && overlaps(ss, hs) {
				return true
			}
		}
	}
	return false
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// skeleton removes vowels, leaving the consonant outline of a word.
func skeleton(w string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return -1
		}
		return r
	}, w)
}

func isBadPairing(syllables, hookWords []string) bool {
	hook := strings.Join(hookWords, " ")
	for _, bp := range badPairings {
		for _, s := range syllables {
			if s == bp.syllable && strings.Contains(hook, bp.hook) {
				return true
			}
		}
	}
	return false
}

func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// GenerateSuggestions builds replacement mnemonics from the pronunciation
// syllables. The first suggestion is the canonical repair:
// "Think: '<sound-alike>' - <english>".
func (v *Validator) GenerateSuggestions(syllables []string, english string) []string {
	english = strings.TrimSpace(english)

	alike := make([]string, 0, len(syllables))
	for _, s := range syllables {
		if r, ok := v.t.SyllableRhymes[s]; ok {
			alike = append(alike, r)
			continue
		}
		alike = append(alike, s)
	}
	sound := strings.Join(alike, " ")
	if sound == "" {
		sound = strings.ToLower(english)
	}

	out := []string{fmt.Sprintf("Think: '%s' - %s", sound, english)}
	if raw := strings.Join(syllables, "-"); raw != "" && raw != sound {
		out = append(out, fmt.Sprintf("Say '%s' (%s) to remember %s", sound, raw, english))
	}
	return out
}

// PhraseIssues lists the mnemonic problems found for one phrase.
type PhraseIssues struct {
	Phrase domain.Phrase
	Issues []string
}

// ValidatePhraseSet checks every phrase that carries a mnemonic and returns
// only those with issues, in input order.
func (v *Validator) ValidatePhraseSet(phrases []domain.Phrase) []PhraseIssues {
	var out []PhraseIssues
	for _, p := range phrases {
		if !p.HasMnemonic() {
			continue
		}
		if res := v.Validate(p.Pronunciation, p.Mnemonic, p.English); len(res.Issues) > 0 {
			out = append(out, PhraseIssues{Phrase: p, Issues: res.Issues})
		}
	}
	return out
}
