package lexicon

var articles = []string{"a", "an", "the"}

var contractions = map[string]string{
	"don't":     "do not",
	"doesn't":   "does not",
	"didn't":    "did not",
	"can't":     "can not",
	"cannot":    "can not",
	"won't":     "will not",
	"wouldn't":  "would not",
	"shouldn't": "should not",
	"couldn't":  "could not",
	"isn't":     "is not",
	"aren't":    "are not",
	"wasn't":    "was not",
	"weren't":   "were not",
	"haven't":   "have not",
	"hasn't":    "has not",
	"hadn't":    "had not",
	"i'm":       "i am",
	"you're":    "you are",
	"we're":     "we are",
	"they're":   "they are",
	"he's":      "he is",
	"she's":     "she is",
	"it's":      "it is",
	"that's":    "that is",
	"what's":    "what is",
	"where's":   "where is",
	"how's":     "how is",
	"there's":   "there is",
	"let's":     "let us",
	"i've":      "i have",
	"you've":    "you have",
	"we've":     "we have",
	"they've":   "they have",
	"i'll":      "i will",
	"you'll":    "you will",
	"we'll":     "we will",
	"they'll":   "they will",
	"i'd":       "i would",
	"you'd":     "you would",
}

// verbForms maps inflected verb forms to their base form.
var verbForms = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",
	"ate": "eat", "eaten": "eat", "eating": "eat", "eats": "eat",
	"drank": "drink", "drunk": "drink", "drinking": "drink", "drinks": "drink",
	"saw": "see", "seen": "see", "seeing": "see", "sees": "see",
	"came": "come", "coming": "come", "comes": "come",
	"took": "take", "taken": "take", "taking": "take", "takes": "take",
	"made": "make", "making": "make", "makes": "make",
	"said": "say", "saying": "say", "says": "say",
	"got": "get", "gotten": "get", "getting": "get", "gets": "get",
	"knew": "know", "known": "know", "knowing": "know", "knows": "know",
	"thought": "think", "thinking": "think", "thinks": "think",
	"bought": "buy", "buying": "buy", "buys": "buy",
	"paid": "pay", "paying": "pay", "pays": "pay",
	"spoke": "speak", "spoken": "speak", "speaking": "speak", "speaks": "speak",
	"wrote": "write", "written": "write", "writing": "write", "writes": "write",
	"ran": "run", "running": "run", "runs": "run",
	"slept": "sleep", "sleeping": "sleep", "sleeps": "sleep",
	"felt": "feel", "feeling": "feel", "feels": "feel",
	"left": "leave", "leaving": "leave", "leaves": "leave",
	"found": "find", "finding": "find", "finds": "find",
	"gave": "give", "given": "give", "giving": "give", "gives": "give",
	"told": "tell", "telling": "tell", "tells": "tell",
	"wanted": "want", "wanting": "want", "wants": "want",
	"liked": "like", "liking": "like", "likes": "like",
	"loved": "love", "loving": "love", "loves": "love",
	"needed": "need", "needing": "need", "needs": "need",
	"helped": "help", "helping": "help", "helps": "help",
	"walked": "walk", "walking": "walk", "walks": "walk",
	"talked": "talk", "talking": "talk", "talks": "talk",
	"cooked": "cook", "cooking": "cook", "cooks": "cook",
	"tried": "try", "trying": "try", "tries": "try",
	"stopped": "stop", "stopping": "stop", "stops": "stop",
	"met": "meet", "meeting": "meet", "meets": "meet",
	"sat": "sit", "sitting": "sit", "sits": "sit",
	"understood": "understand", "understanding": "understand", "understands": "understand",
}

var irregularPlurals = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
	"knives":   "knife",
	"wives":    "wife",
	"lives":    "life",
	"leaves":   "leaf",
	"loaves":   "loaf",
	"halves":   "half",
	"shelves":  "shelf",
	"oxen":     "ox",
	"dice":     "die",
}

// uncountableNouns never lose a trailing "s".
var uncountableNouns = []string{
	"news", "series", "species", "rice", "glass", "bus", "gas", "yes", "this", "his",
	"us", "always", "perhaps", "less", "unless", "thanks", "chess", "physics", "mathematics",
	"lens", "plus", "bonus", "tennis", "christmas", "its", "as",
}

// synonymGroups maps a canonical term to the words treated as the same meaning.
var synonymGroups = map[string][]string{
	"hello":     {"hi", "hey", "greeting", "greetings", "howdy"},
	"goodbye":   {"bye", "farewell", "cya"},
	"thank":     {"thanks", "thx"},
	"large":     {"big", "huge", "enormous", "giant"},
	"small":     {"little", "tiny", "mini"},
	"fast":      {"quick", "rapid", "speedy"},
	"slow":      {"sluggish"},
	"happy":     {"glad", "joyful", "cheerful"},
	"sad":       {"unhappy", "upset", "sorrowful"},
	"tasty":     {"delicious", "yummy"},
	"buy":       {"purchase"},
	"eat":       {"dine", "consume"},
	"beautiful": {"pretty", "lovely", "gorgeous"},
	"expensive": {"pricey", "costly"},
	"cheap":     {"inexpensive"},
	"home":      {"house"},
	"friend":    {"buddy", "pal", "mate"},
	"tired":     {"exhausted", "sleepy"},
	"sorry":     {"apologies", "apologize"},
	"start":     {"begin"},
	"finish":    {"end", "complete"},
	"car":       {"automobile", "vehicle"},
	"toilet":    {"restroom", "bathroom", "washroom", "lavatory"},
}

// compoundWords are multi-word terms collapsed into one token. Entries are written
// in their normalized (post-synonym) form.
var compoundWords = []string{
	"ice cream",
	"good morning",
	"good night",
	"good evening",
	"thank you",
	"how much",
	"what time",
	"bus stop",
	"train station",
	"post office",
	"credit card",
	"mobile phone",
	"coffee shop",
	"night market",
	"fried rice",
	"sticky rice",
	"mango sticky rice",
	"no problem",
	"excuse me",
	"see you later",
	"air conditioner",
	"high school",
}

// thaiParticles are sentence-final particles that do not change a phrase's meaning.
var thaiParticles = []string{
	"ครับ", "คับ", "ค่ะ", "คะ", "ค่า", "จ้ะ", "จ้า", "จ๊ะ",
	"นะ", "น่ะ", "นะคะ", "นะครับ", "สิ", "ซิ", "ล่ะ", "เถอะ", "หรอ", "เหรอ",
}

// syllableRhymes maps common Thai romanized syllables to English sound-alikes.
var syllableRhymes = map[string]string{
	"mai":   "my",
	"pen":   "pen",
	"rai":   "rye",
	"sa":    "sah",
	"wat":   "what",
	"wad":   "what",
	"dee":   "day",
	"di":    "dee",
	"khop":  "cop",
	"khob":  "cob",
	"khun":  "coon",
	"kha":   "car",
	"khrap": "crap",
	"krap":  "crap",
	"chai":  "chai",
	"chan":  "chun",
	"phom":  "pom",
	"pom":   "pom",
	"aroi":  "a-roy",
	"nam":   "nahm",
	"pai":   "pie",
	"bpai":  "pie",
	"gin":   "gin",
	"kin":   "kin",
	"khao":  "cow",
	"khaw":  "cow",
	"rao":   "row",
	"lae":   "lay",
	"nee":   "knee",
	"ni":    "knee",
	"nan":   "nun",
	"dai":   "die",
	"jai":   "jive",
	"sabai": "sub-eye",
	"suay":  "sway",
	"ron":   "ron",
	"yen":   "yen",
	"phet":  "pet",
	"tao":   "tow",
	"mak":   "muck",
	"maak":  "muck",
	"ma":    "ma",
	"na":    "nah",
	"la":    "la",
	"gaw":   "gore",
	"kor":   "core",
	"thot":  "tote",
	"toht":  "tote",
}

var toneVowels = map[rune]rune{
	'ɔ': 'o',
	'ɛ': 'e',
	'ʉ': 'u',
	'ə': 'e',
	'ɯ': 'u',
	'ʊ': 'u',
	'ɪ': 'i',
	'æ': 'a',
	'ɑ': 'a',
	'ŋ': 'n',
}
