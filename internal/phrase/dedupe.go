package phrase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/lexicon"
)

// DedupeAndCapitalizePhrases keeps the first phrase for each trimmed-lowercase
// English text and upper-cases the first letter of its English field.
// This is intentionally looser than Normalize and only used on final output.
func DedupeAndCapitalizePhrases(phrases []domain.Phrase) []domain.Phrase {
	seen := make(map[string]bool, len(phrases))
	out := make([]domain.Phrase, 0, len(phrases))
	for _, p := range phrases {
		key := domain.FoldKey(p.English)
		if seen[key] {
			continue
		}
		seen[key] = true
		p.English = capitalize(strings.TrimSpace(p.English))
		out = append(out, p)
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// IsThaiDuplicate reports whether a and b are the same Thai text once
// whitespace and trailing politeness particles are removed.
func (n *Normalizer) IsThaiDuplicate(a, b string) bool {
	ca, cb := stripThai(a, n.t), stripThai(b, n.t)
	return ca != "" && ca == cb
}

// HasThaiDuplicatePatterns is IsThaiDuplicate with the built-in tables.
func HasThaiDuplicatePatterns(a, b string) bool {
	return defaultNormalizer().IsThaiDuplicate(a, b)
}

// stripThai drops particles that end a whitespace-separated chunk, repeating
// until none is left, then joins the chunks. A particle is only stripped when
// it is the whole chunk or leaves at least two runes, so "ชนะ" stays intact.
func stripThai(s string, t *lexicon.Tables) string {
	var sb strings.Builder
	for _, f := range strings.Fields(s) {
		sb.WriteString(trimParticles(f, t.ThaiParticles))
	}
	return sb.String()
}

func trimParticles(s string, particles []string) string {
	for {
		trimmed := false
		for _, p := range particles {
			rest, ok := strings.CutSuffix(s, p)
			if !ok || (rest != "" && utf8.RuneCountInString(rest) < 2) {
				continue
			}
			s, trimmed = rest, true
			break
		}
		if !trimmed {
			return s
		}
	}
}
