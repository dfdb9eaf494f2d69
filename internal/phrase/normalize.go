package phrase

import (
	"slices"
	"strings"
	"unicode"

	"github.com/heartmarshall/phrasegen-backend/internal/lexicon"
)

const compoundJoiner = "_"

// Normalizer turns English text into an order-independent duplicate-detection key.
// Two phrases have the same meaning iff their keys are equal, so tense, plural,
// synonym and word-order variants collapse to one key.
type Normalizer struct {
	t *lexicon.Tables
}

// NewNormalizer creates a Normalizer over the given tables.
func NewNormalizer(t *lexicon.Tables) *Normalizer {
	return &Normalizer{t: t}
}

// NormalizeEnglish normalizes s with the built-in tables.
func NormalizeEnglish(s string) string {
	return defaultNormalizer().Normalize(s)
}

func defaultNormalizer() *Normalizer {
	return NewNormalizer(lexicon.Default())
}

// Normalize runs the full pipeline: lowercase, strip punctuation, drop articles,
// expand contractions, reduce verbs to base form, singularize, map synonyms,
// merge compounds, sort, join.
func (n *Normalizer) Normalize(s string) string {
	tokens := tokenize(strings.ToLower(s))

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.t.Articles[tok] {
			continue
		}
		for _, w := range n.expand(tok) {
			w = n.baseVerb(w)
			w = n.singular(w)
			w = n.canonical(w)
			out = append(out, w)
		}
	}

	out = n.mergeCompounds(out)
	slices.Sort(out)
	return strings.Join(out, " ")
}

// IsDuplicate reports whether candidate has the same key as any of existing.
func (n *Normalizer) IsDuplicate(candidate string, existing []string) bool {
	key := n.Normalize(candidate)
	for _, e := range existing {
		if n.Normalize(e) == key {
			return true
		}
	}
	return false
}

// IsDuplicatePhrase reports whether candidate duplicates any existing phrase
// using the built-in tables.
func IsDuplicatePhrase(candidate string, existing []string) bool {
	return defaultNormalizer().IsDuplicate(candidate, existing)
}

// KeySet normalizes every phrase once, for repeated IsDuplicate-style lookups.
func (n *Normalizer) KeySet(phrases []string) map[string]bool {
	set := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		if k := n.Normalize(p); k != "" {
			set[k] = true
		}
	}
	return set
}

// tokenize splits on anything that is not a letter, digit or apostrophe.
// Typographic apostrophes are folded to ASCII.
func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "’", "'")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (n *Normalizer) expand(tok string) []string {
	if exp, ok := n.t.Contractions[tok]; ok {
		return strings.Fields(exp)
	}
	return []string{tok}
}

func (n *Normalizer) baseVerb(w string) string {
	if base, ok := n.t.VerbForms[w]; ok {
		return base
	}
	return w
}

func (n *Normalizer) singular(w string) string {
	if s, ok := n.t.IrregularPlurals[w]; ok {
		return s
	}
	if n.t.UncountableNouns[w] || len(w) <= 3 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && hasSibilantStem(w[:len(w)-2]):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// usStems are "-us" nouns whose plural adds "es" ("buses", "viruses").
var usStems = map[string]bool{
	"bus": true, "virus": true, "status": true, "bonus": true,
	"campus": true, "focus": true, "census": true, "circus": true,
}

// hasSibilantStem reports whether stem takes an "-es" plural. Stems ending in a
// single "s" or "z" ("hous", "priz") are "-se"/"-ze" nouns that only add "s".
func hasSibilantStem(stem string) bool {
	for _, suf := range []string{"ss", "x", "zz", "ch", "sh"} {
		if strings.HasSuffix(stem, suf) {
			return true
		}
	}
	return usStems[stem]
}

func (n *Normalizer) canonical(w string) string {
	if c, ok := n.t.Synonyms[w]; ok {
		return c
	}
	return w
}

// mergeCompounds greedily replaces known compounds, trying longer ones first
// at each position.
func (n *Normalizer) mergeCompounds(tokens []string) []string {
	if len(n.t.Compounds) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		matched := false
		for _, c := range n.t.Compounds {
			if i+len(c) <= len(tokens) && slices.Equal(tokens[i:i+len(c)], c) {
				out = append(out, strings.Join(c, compoundJoiner))
				i += len(c)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}
