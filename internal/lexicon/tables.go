// Package lexicon holds the static lookup tables used to normalize English phrases,
// compare Thai text and build phonetic mnemonics.
//
// Tables are built once and shared read-only; callers must not modify the maps.
package lexicon

import (
	"slices"
	"strings"
	"sync"
)

// Tables is the full set of lookup data consumed by the normalizers and validators.
type Tables struct {
	Articles         map[string]bool
	Contractions     map[string]string
	VerbForms        map[string]string
	IrregularPlurals map[string]string
	UncountableNouns map[string]bool
	// Synonyms maps every listed synonym to its canonical term.
	Synonyms map[string]string
	// Compounds are token sequences merged into one token, longest first.
	Compounds [][]string
	// ThaiParticles are politeness/mood particles, longest first.
	ThaiParticles  []string
	SyllableRhymes map[string]string
	// ToneVowels maps romanization vowel letters that survive diacritic
	// stripping (ɔ, ɛ, ʉ, ...) to a plain ASCII vowel.
	ToneVowels map[rune]rune
}

// Default returns the built-in tables. The value is built on first use.
func Default() *Tables {
	return defaultTables()
}

var defaultTables = sync.OnceValue(func() *Tables {
	return Build(synonymGroups, compoundWords)
})

// Build assembles Tables from synonym groups (canonical → synonyms) and
// compound word lists. Other tables use the built-in data.
func Build(groups map[string][]string, compounds []string) *Tables {
	t := &Tables{
		Articles:         toSet(articles),
		Contractions:     contractions,
		VerbForms:        verbForms,
		IrregularPlurals: irregularPlurals,
		UncountableNouns: toSet(uncountableNouns),
		Synonyms:         make(map[string]string),
		SyllableRhymes:   syllableRhymes,
		ToneVowels:       toneVowels,
	}

	for canonical, syns := range groups {
		for _, s := range syns {
			t.Synonyms[s] = canonical
		}
	}

	for _, c := range compounds {
		if parts := strings.Fields(c); len(parts) > 1 {
			t.Compounds = append(t.Compounds, parts)
		}
	}
	slices.SortStableFunc(t.Compounds, func(a, b []string) int {
		return len(b) - len(a)
	})

	t.ThaiParticles = slices.Clone(thaiParticles)
	slices.SortStableFunc(t.ThaiParticles, func(a, b string) int {
		return len(b) - len(a)
	})

	return t
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
