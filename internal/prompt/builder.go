// Package prompt builds the system/user prompt pair for one phrase generation batch.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

const defaultContext = "general everyday conversation"

// Options describes what one batch should ask the model for.
type Options struct {
	Level           domain.ProficiencyLevel
	SpecificTopics  string
	TopicsToDiscuss string
	Count           int
	ExistingPhrases []string
	ToneLevel       int
}

// responseSchema is the exact JSON shape the model must return.
const responseSchema = `{
  "phrases": [
    {
      "english": "<English phrase>",
      "thai": "<Thai, neutral form>",
      "thaiMasculine": "<Thai as spoken by a man, with ครับ where natural>",
      "thaiFeminine": "<Thai as spoken by a woman, with ค่ะ/คะ where natural>",
      "pronunciation": "<romanized pronunciation with tone marks, syllables separated by spaces or hyphens>",
      "mnemonic": "<memory aid that quotes an English sound-alike, e.g. Think: 'my pen rye' - no problem>",
      "examples": [
        {
          "thai": "<Thai sentence>",
          "thaiMasculine": "<masculine form>",
          "thaiFeminine": "<feminine form>",
          "pronunciation": "<romanized pronunciation>",
          "translation": "<English translation>"
        },
        {
          "thai": "<second Thai sentence>",
          "thaiMasculine": "<masculine form>",
          "thaiFeminine": "<feminine form>",
          "pronunciation": "<romanized pronunciation>",
          "translation": "<English translation>"
        }
      ]
    }
  ],
  "metadata": {
    "setTheme": "<short theme of the set>",
    "culturalNotes": ["<note>"],
    "difficultyProgression": "<how difficulty develops across the set>"
  }
}`

// CreatePromptConfig builds the prompt pair for one batch. It is pure and deterministic.
func CreatePromptConfig(model string, opts Options) domain.PromptConfig {
	count := max(opts.Count, 1)
	level := opts.Level
	if !level.IsValid() {
		level = domain.LevelBeginner
	}
	tone := ToneProfile(opts.ToneLevel)
	topic := topicContext(opts)

	return domain.PromptConfig{
		Model:           model,
		Level:           level.String(),
		Context:         topic,
		ToneDescription: fmt.Sprintf("%s: %s", tone.Name, tone.Description),
		Count:           count,
		SystemPrompt:    systemPrompt(level, tone),
		UserPrompt:      userPrompt(count, level, topic, opts.ExistingPhrases),
	}
}

func topicContext(opts Options) string {
	var parts []string
	if s := strings.TrimSpace(opts.SpecificTopics); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(opts.TopicsToDiscuss); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return defaultContext
	}
	return strings.Join(parts, "; ")
}

func systemPrompt(level domain.ProficiencyLevel, tone Tone) string {
	var sb strings.Builder
	sb.WriteString("You are an expert Thai language teacher who writes flashcards for English speakers.\n")
	sb.WriteString("Every phrase must be natural, correct Thai with accurate gendered forms and romanized pronunciation.\n\n")

	fmt.Fprintf(&sb, "Learner level: %s.\n%s\n\n", level, LevelGuidance(level))

	fmt.Fprintf(&sb, "Voice (tone %d/10, %s): %s\n", tone.Level, tone.Name, tone.Description)
	fmt.Fprintf(&sb, "%s\n\n", tone.Mnemonics)

	sb.WriteString("Mnemonic rules:\n")
	sb.WriteString("- Each mnemonic must contain a quoted English sound-alike (the phonetic hook) in single quotes.\n")
	sb.WriteString("- The quoted hook must actually sound like the pronunciation field.\n\n")

	sb.WriteString("Respond with ONLY a valid JSON object matching this schema, no markdown and no explanations:\n")
	sb.WriteString(responseSchema)
	return sb.String()
}

func userPrompt(count int, level domain.ProficiencyLevel, topic string, existing []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate EXACTLY %d Thai phrases for a %s learner.\n", count, level)
	fmt.Fprintf(&sb, "Topic: %s.\n", topic)
	fmt.Fprintf(&sb, "The \"phrases\" array must contain exactly %d items, no more and no fewer.\n", count)
	sb.WriteString("Each phrase needs at least 2 example sentences, every example with all five fields filled.\n")

	if avoid := cleanExisting(existing); len(avoid) > 0 {
		sb.WriteString("\nThe learner already knows these phrases. Do NOT repeat them or produce phrases with the same meaning ")
		sb.WriteString("(including plural, tense, synonym or word-order variants):\n")
		for _, p := range avoid {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
	} else {
		sb.WriteString("\nDo not repeat a phrase or its meaning within the set.\n")
	}
	return sb.String()
}

func cleanExisting(existing []string) []string {
	out := make([]string, 0, len(existing))
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		e = strings.TrimSpace(e)
		key := domain.FoldKey(e)
		if e == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
