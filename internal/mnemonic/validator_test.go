package mnemonic

import (
	"slices"
	"strings"
	"testing"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/lexicon"
)

func newValidator() *Validator {
	return New(lexicon.Default())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		pronunciation string
		mnemonic      string
		english       string
		wantValid     bool
		wantHook      string
	}{
		{
			name:          "direct overlap",
			pronunciation: "mai pen rai",
			mnemonic:      "Think: 'my pen' - no problem",
			english:       "No problem",
			wantValid:     true,
			wantHook:      "my pen",
		},
		{
			name:          "no overlap",
			pronunciation: "sawadee",
			mnemonic:      "Think: 'goodbye now' - hello",
			english:       "Hello",
			wantValid:     false,
			wantHook:      "goodbye now",
		},
		{
			name:          "double quotes",
			pronunciation: "khop khun",
			mnemonic:      `Sounds like "cop coon"`,
			english:       "Thank you",
			wantValid:     true,
			wantHook:      "cop coon",
		},
		{
			name:          "curly quotes",
			pronunciation: "aroi",
			mnemonic:      "Imagine “a roy” eating",
			english:       "Delicious",
			wantValid:     true,
			wantHook:      "a roy",
		},
		{
			name:          "consonant skeleton",
			pronunciation: "phet",
			mnemonic:      "Think: 'phat' - spicy",
			english:       "Spicy",
			wantValid:     true,
			wantHook:      "phat",
		},
		{
			name:          "tone marks stripped",
			pronunciation: "khɔ̀ɔp khun",
			mnemonic:      "Think: 'hoop' - thanks",
			english:       "Thanks",
			wantValid:     true,
			wantHook:      "hoop",
		},
		{
			name:          "contraction before hook",
			pronunciation: "mâi pen rai",
			mnemonic:      "It's like saying 'my pen rye' - no problem",
			english:       "No problem",
			wantValid:     true,
			wantHook:      "my pen rye",
		},
		{
			name:          "contraction at start",
			pronunciation: "mai pen rai",
			mnemonic:      "Don't worry, say 'mai pen rai'",
			english:       "No problem",
			wantValid:     true,
			wantHook:      "mai pen rai",
		},
		{
			name:          "no hook",
			pronunciation: "mai pen rai",
			mnemonic:      "Think about relaxing",
			english:       "No problem",
			wantValid:     false,
		},
		{
			name:          "single-letter words ignored",
			pronunciation: "a b",
			mnemonic:      "Think: 'a b' - x",
			english:       "X",
			wantValid:     false,
			wantHook:      "a b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := newValidator().Validate(tt.pronunciation, tt.mnemonic, tt.english)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (issues %v)", res.Valid, tt.wantValid, res.Issues)
			}
			if res.Hook != tt.wantHook {
				t.Errorf("Hook = %q, want %q", res.Hook, tt.wantHook)
			}
			if !res.Valid && len(res.Suggestions) == 0 {
				t.Error("invalid result must carry suggestions")
			}
			if res.Valid && len(res.Issues) != 0 {
				t.Errorf("valid result has issues: %v", res.Issues)
			}
		})
	}
}

func TestValidate_InvalidSuggestion(t *testing.T) {
	t.Parallel()

	res := newValidator().Validate("sawadee", "Think: 'goodbye now' - hello", "Hello")
	if !slices.Contains(res.Issues, IssueNoMatch) {
		t.Errorf("issues = %v", res.Issues)
	}
	if got := res.Suggestions[0]; got != "Think: 'sawadee' - Hello" {
		t.Errorf("first suggestion = %q", got)
	}
}

func TestValidate_KnownBadPairingOverridesMatch(t *testing.T) {
	t.Parallel()

	res := newValidator().Validate("chan ba", "Think: 'john ba' - me", "Me")
	if res.Valid {
		t.Fatal("known bad pairing must be invalid")
	}
	if !slices.Contains(res.Issues, IssueBadPairing) {
		t.Errorf("issues = %v, want %q", res.Issues, IssueBadPairing)
	}
	if slices.Contains(res.Issues, IssueNoMatch) {
		t.Error("overlap passed, so only the pairing issue is expected")
	}
}

func TestValidate_NoHookIssue(t *testing.T) {
	t.Parallel()

	res := newValidator().Validate("mai pen rai", "no quotes here", "No problem")
	if len(res.Issues) != 1 || res.Issues[0] != IssueNoHook {
		t.Errorf("issues = %v", res.Issues)
	}
	if res.Similarity != 0 {
		t.Errorf("Similarity = %v, want 0 without a hook", res.Similarity)
	}
}

func TestValidate_Similarity(t *testing.T) {
	t.Parallel()

	v := newValidator()
	same := v.Validate("pen", "'pen'", "pen")
	if same.Similarity != 1 {
		t.Errorf("identical similarity = %v, want 1", same.Similarity)
	}
	far := v.Validate("sawadee", "'goodbye now'", "hello")
	if far.Similarity <= 0 || far.Similarity >= 1 {
		t.Errorf("partial similarity = %v, want in (0,1)", far.Similarity)
	}
}

func TestSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"mai pen rai", []string{"mai", "pen", "rai"}},
		{"sa-wat-dee", []string{"sa", "wat", "dee"}},
		{"Khâo Phàt", []string{"khao", "phat"}},
		{"khɔ̀ɔp-khun", []string{"khoop", "khun"}},
		{"  (krap)!  ", []string{"krap"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		if got := newValidator().Syllables(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("Syllables(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGenerateSuggestions(t *testing.T) {
	t.Parallel()

	v := newValidator()
	got := v.GenerateSuggestions([]string{"mai", "pen", "rai"}, " No problem ")
	if got[0] != "Think: 'my pen rye' - No problem" {
		t.Errorf("first suggestion = %q", got[0])
	}
	if len(got) < 2 || !strings.Contains(got[1], "mai-pen-rai") {
		t.Errorf("expected an alternate suggestion with the raw syllables, got %v", got)
	}

	empty := v.GenerateSuggestions(nil, "Hello")
	if empty[0] != "Think: 'hello' - Hello" {
		t.Errorf("fallback suggestion = %q", empty[0])
	}
}

func TestGenerateSuggestions_RepairValidates(t *testing.T) {
	t.Parallel()

	v := newValidator()
	res := v.Validate("sa-wat-dee", "Think: 'zzz' - hi", "Hello")
	if res.Valid {
		t.Fatal("expected invalid mnemonic")
	}
	repaired := v.Validate("sa-wat-dee", res.Suggestions[0], "Hello")
	if !repaired.Valid {
		t.Errorf("repair %q does not validate: %v", res.Suggestions[0], repaired.Issues)
	}
}

func TestValidatePhraseSet(t *testing.T) {
	t.Parallel()

	phrases := []domain.Phrase{
		{English: "No problem", Pronunciation: "mai pen rai", Mnemonic: "Think: 'my pen' - no problem"},
		{English: "Hello", Pronunciation: "sawadee", Mnemonic: "Think: 'goodbye now' - hello"},
		{English: "Thanks", Pronunciation: "khop khun"},
	}
	got := newValidator().ValidatePhraseSet(phrases)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Phrase.English != "Hello" || len(got[0].Issues) == 0 {
		t.Errorf("unexpected issues: %+v", got[0])
	}
}
