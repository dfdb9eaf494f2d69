// Package mock is an offline provider that serves phrases from a fixed
// catalogue. It lets the pipeline run without network access or API keys.
package mock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/pkg/ctxutil"
)

const (
	Brand = "mock"
	Model = "mock-catalogue"
)

// Generator returns catalogue entries in the same JSON envelope a real model uses.
type Generator struct{}

// New creates a Generator.
func New() *Generator { return &Generator{} }

// Generate returns pc.Count catalogue entries. Each batch starts at a
// different offset so concurrent batches overlap as little as the catalogue allows.
func (g *Generator) Generate(ctx context.Context, pc domain.PromptConfig) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := max(pc.Count, 1)
	offset := 0
	if id, ok := ctxutil.BatchIDFromCtx(ctx); ok {
		offset = id * n
	}

	items := make([]domain.Phrase, n)
	for i := range items {
		items[i] = catalogue[(offset+i)%len(catalogue)]
	}

	out, err := json.Marshal(struct {
		Phrases []domain.Phrase `json:"phrases"`
	}{Phrases: items})
	if err != nil {
		return nil, fmt.Errorf("mock: marshal: %w", err)
	}
	return out, nil
}

// Size returns the number of distinct catalogue entries.
func Size() int { return len(catalogue) }

func polite(thai string) (masculine, feminine string) {
	return thai + "ครับ", thai + "ค่ะ"
}

func entry(english, thai, pron, mnemonic string, examples ...domain.ExampleSentence) domain.Phrase {
	m, f := polite(thai)
	return domain.Phrase{
		English:       english,
		Thai:          thai,
		ThaiMasculine: m,
		ThaiFeminine:  f,
		Pronunciation: pron,
		Mnemonic:      mnemonic,
		Examples:      examples,
	}
}

func ex(thai, pron, translation string) domain.ExampleSentence {
	m, f := polite(thai)
	return domain.ExampleSentence{
		Thai:          thai,
		ThaiMasculine: m,
		ThaiFeminine:  f,
		Pronunciation: pron,
		Translation:   translation,
	}
}

var catalogue = []domain.Phrase{
	entry("Hello", "สวัสดี", "sà-wàt-dee", "Think: 'sawadee' - a sweaty hello",
		ex("สวัสดีตอนเช้า", "sà-wàt-dee dtawn cháo", "Good morning"),
		ex("สวัสดีทุกคน", "sà-wàt-dee túk kon", "Hello everyone"),
	),
	entry("Thank you", "ขอบคุณ", "khòp-khun", "A cop says 'cop khun' - thank you",
		ex("ขอบคุณมาก", "khòp-khun mâak", "Thank you very much"),
		ex("ขอบคุณสำหรับอาหาร", "khòp-khun sǎm-ràp aa-hǎan", "Thank you for the food"),
	),
	entry("How much?", "เท่าไหร่", "tâo-rài", "Ask 'tao rye' at the market - how much?",
		ex("อันนี้เท่าไหร่", "an níi tâo-rài", "How much is this?"),
		ex("ค่าแท็กซี่เท่าไหร่", "kâaták-sîi tâo-rài", "How much is the taxi fare?"),
	),
	entry("Delicious", "อร่อย", "a-ròi", "Think: 'a-roi' like a royal meal - delicious",
		ex("อาหารอร่อยมาก", "aa-hǎan a-ròi mâak", "The food is very delicious"),
		ex("ต้มยำอร่อย", "dtôm-yam a-ròi", "The tom yum is delicious"),
	),
	entry("Excuse me", "ขอโทษ", "khǎw-tôht", "A horn goes 'toht toht' - excuse me",
		ex("ขอโทษที่มาสาย", "khǎw-tôht tîi maa sǎai", "Sorry for being late"),
		ex("ขอโทษ ห้องน้ำอยู่ไหน", "khǎw-tôht hâwng-nam yùu nǎi", "Excuse me, where is the bathroom?"),
	),
	entry("Where is the bathroom?", "ห้องน้ำอยู่ที่ไหน", "hâwng-nam yùu tîi-nǎi", "A long 'nam' for the bathroom",
		ex("ห้องน้ำอยู่ชั้นสอง", "hâwng-nam yùu chán sǎwng", "The bathroom is on the second floor"),
		ex("ห้องน้ำอยู่ข้างหลัง", "hâwng-nam yùu khâang lǎng", "The bathroom is at the back"),
	),
	entry("I don't understand", "ไม่เข้าใจ", "mâi khâo-jai", "My cow has no 'jai' - I don't understand",
		ex("ฉันไม่เข้าใจคำถาม", "chǎn mâi khâo-jai kham-thǎam", "I don't understand the question"),
		ex("ไม่เข้าใจ พูดช้าๆ ได้ไหม", "mâi khâo-jai pûut cháa cháa dâi mǎi", "I don't understand, can you speak slowly?"),
	),
	entry("Good luck", "โชคดี", "chôhk-dee", "Never 'choke dee' - good luck",
		ex("โชคดีนะ", "chôhk-dee ná", "Good luck to you"),
		ex("ขอให้โชคดีในการสอบ", "khǎw hâi chôhk-dee nai gaan sàwp", "Good luck on the exam"),
	),
	entry("See you later", "แล้วเจอกัน", "láew jer gan", "A 'jerk gun' waves - see you later",
		ex("แล้วเจอกันพรุ่งนี้", "láew jer gan prûng-níi", "See you tomorrow"),
		ex("แล้วเจอกันที่ร้าน", "láew jer gan tîi ráan", "See you at the shop"),
	),
	entry("Very spicy", "เผ็ดมาก", "phèt mâak", "Your 'phet maak' bites hard - very spicy",
		ex("ส้มตำเผ็ดมาก", "sôm-dtam phèt mâak", "The papaya salad is very spicy"),
		ex("ไม่เอาเผ็ดมาก", "mâi ao phèt mâak", "Not too spicy, please"),
	),
	entry("Water", "น้ำ", "nám", "Say 'nam nam' when thirsty - water",
		ex("ขอน้ำเปล่า", "khǎw nám bplàao", "Plain water, please"),
		ex("น้ำเย็นมาก", "nám yen mâak", "The water is very cold"),
	),
	entry("Goodbye", "ลาก่อน", "laa-gàwn", "Wave 'la gone' - goodbye",
		ex("ลาก่อนเพื่อน", "laa-gàwn phûean", "Goodbye, friend"),
		ex("ลาก่อนนะ", "laa-gàwn ná", "Goodbye then"),
	),
}
