package prompt

import "github.com/heartmarshall/phrasegen-backend/internal/domain"

// Tone is one voice profile on the 1–10 seriousness scale.
type Tone struct {
	Level       int
	Name        string
	Description string
	Mnemonics   string
}

var tones = [10]Tone{
	{1, "ultra-professional", "Formal, precise and business-appropriate. No humour, no slang.",
		"Mnemonics are short, literal sound-alikes with no jokes."},
	{2, "polished", "Courteous and clear, like a well-edited travel guide.",
		"Mnemonics are tidy sound-alikes with at most a light touch of wit."},
	{3, "friendly teacher", "Warm and encouraging, like a patient classroom teacher.",
		"Mnemonics are gentle and easy to picture."},
	{4, "conversational", "Relaxed everyday speech, the way friends talk over coffee.",
		"Mnemonics may use everyday imagery and mild humour."},
	{5, "playful", "Light-hearted with occasional jokes while staying useful.",
		"Mnemonics should raise a smile."},
	{6, "cheeky", "Witty and a little sassy; puns are welcome.",
		"Mnemonics lean on puns and exaggerated images."},
	{7, "quirky", "Offbeat scenarios and surprising situations.",
		"Mnemonics use odd, vivid characters and situations."},
	{8, "absurd", "Silly, over-the-top situations that still teach real Thai.",
		"Mnemonics are ridiculous mini-stories you cannot forget."},
	{9, "unhinged", "Wildly exaggerated, surreal energy with a running gag or two.",
		"Mnemonics are surreal and loud, but the sound hook must stay accurate."},
	{10, "complete creative chaos", "Maximum absurdity and chaotic creativity; every line is a surprise.",
		"Mnemonics are pure chaos, yet the quoted sound hook must still match the pronunciation."},
}

// ToneProfile returns the profile for level, clamping to the 1–10 range.
func ToneProfile(level int) Tone {
	return tones[clamp(level, 1, len(tones))-1]
}

var levelGuidance = map[domain.ProficiencyLevel]string{
	domain.LevelCompleteBeginner: "Use only the most common survival words and two-to-three word phrases. " +
		"Examples must be very short, concrete sentences in present tense.",
	domain.LevelBeginner: "Use high-frequency everyday vocabulary and short phrases. " +
		"Examples are simple sentences with basic particles and polite endings.",
	domain.LevelIntermediate: "Mix everyday vocabulary with useful expressions and common classifiers. " +
		"Examples may combine two clauses and use time markers.",
	domain.LevelAdvanced: "Include idiomatic expressions, nuanced verbs and register differences. " +
		"Examples should sound natural with varied sentence structure.",
	domain.LevelNative: "Use colloquialisms, slang, proverbs and culturally specific expressions a native speaker would use. " +
		"Examples should be indistinguishable from native conversation.",
	domain.LevelGodMode: "Use rare, literary, regional and highly specialised vocabulary, royal or formal registers and wordplay. " +
		"Examples should challenge even fluent speakers.",
}

// LevelGuidance returns the vocabulary/complexity instruction for lvl.
// Unknown levels fall back to the Beginner band.
func LevelGuidance(lvl domain.ProficiencyLevel) string {
	if g, ok := levelGuidance[lvl]; ok {
		return g
	}
	return levelGuidance[domain.LevelBeginner]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
