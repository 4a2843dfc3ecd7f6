package dragon

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Intent is the classified purpose of an utterance.
type Intent string

const (
	IntentSleep  Intent = "sleep"
	IntentFeed   Intent = "feed"
	IntentPlay   Intent = "play"
	IntentWash   Intent = "wash"
	IntentSoothe Intent = "soothe"
	IntentAttack Intent = "attack"
	IntentSing   Intent = "sing"
	IntentTalk   Intent = "talk"
)

// intentEntry binds an intent to its keyword set. The slice order in a
// Lexicon is the match priority: the first entry with any hit wins.
type intentEntry struct {
	Tag   Intent
	Words []string
}

type elementEntry struct {
	Element Element
	Words   []string
}

// Lexicon is one language's keyword tables. All word lists hold already
// normalized forms (lowercase, no diacritics).
type Lexicon struct {
	Positive   []string
	Negative   []string
	Intents    []intentEntry
	HatchHints []string
	Elements   []elementEntry
	namePat    *regexp.Regexp
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the text, strips diacritics, and rebuilds it as
// space-delimited tokens wrapped in single spaces, so that keyword lookups
// can test whole-word containment (" word ") instead of raw substrings.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}
	fields := strings.FieldsFunc(stripped, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
	})
	if len(fields) == 0 {
		return " "
	}
	return " " + strings.Join(fields, " ") + " "
}

// containsWord reports whether the normalized text holds word as a whole
// token. Presence only: a word appearing twice still counts once.
func containsWord(normalized, word string) bool {
	return strings.Contains(normalized, " "+word+" ")
}

func containsAny(normalized string, words []string) bool {
	for _, w := range words {
		if containsWord(normalized, w) {
			return true
		}
	}
	return false
}

var lexicons = map[string]Lexicon{
	"en": {
		Positive: []string{
			"hello", "hi", "bravo", "thanks", "kind", "love", "hug", "kiss",
			"friend", "protect", "heal", "nice", "good", "happy", "play",
			"sing", "dance", "please", "cool", "great",
		},
		Negative: []string{
			"attack", "burn", "destroy", "break", "steal", "shout", "scream",
			"evil", "hate", "threaten", "scratch", "bite", "hit",
		},
		Intents: []intentEntry{
			{IntentSleep, []string{"sleep", "nap", "rest"}},
			{IntentFeed, []string{"eat", "food", "feed"}},
			{IntentPlay, []string{"play"}},
			{IntentWash, []string{"wash", "bath", "clean"}},
			{IntentSoothe, []string{"calm", "soothe", "pet", "hug"}},
			{IntentAttack, []string{"attack", "burn", "destroy", "bite", "scratch"}},
			{IntentSing, []string{"sing", "song"}},
		},
		HatchHints: []string{"hatch", "wake", "hello", "hi", "rise"},
		Elements: []elementEntry{
			{ElementFire, []string{"fire", "flame"}},
			{ElementWater, []string{"water"}},
			{ElementWind, []string{"wind", "air"}},
			{ElementEarth, []string{"earth", "rock", "stone"}},
			{ElementLight, []string{"light"}},
			{ElementShadow, []string{"shadow", "night"}},
		},
		namePat: regexp.MustCompile(`(?i)(?:your name is|i call you)\s+([a-zA-Z-]{2,20})`),
	},
	"fr": {
		Positive: []string{
			"bonjour", "salut", "bravo", "merci", "gentil", "aime", "amour",
			"calin", "bisou", "ami", "protege", "soigne", "doux", "sage",
			"content", "heureux", "plaisir", "joue", "chante", "danse",
			"bien", "cool", "super",
		},
		Negative: []string{
			"attaque", "brule", "detruire", "casse", "vole", "hurle", "crie",
			"mechant", "haine", "deteste", "menace", "griffe", "mords",
			"agresse", "frappe",
		},
		Intents: []intentEntry{
			{IntentSleep, []string{"dors", "dodo", "endors", "sieste", "repos"}},
			{IntentFeed, []string{"mange", "manger", "nourris", "nourrir", "miam", "repas"}},
			{IntentPlay, []string{"joue", "jouer", "jeu", "amuse-toi"}},
			{IntentWash, []string{"lave", "laver", "bain", "nettoie", "nettoyer"}},
			{IntentSoothe, []string{"calme", "calmer", "caresse", "calin", "rassure"}},
			{IntentAttack, []string{"attaque", "brule", "detruis", "mords", "griffe", "ecrase"}},
			{IntentSing, []string{"chante", "chanson", "musique"}},
		},
		HatchHints: []string{
			"eclore", "eclot", "reveille", "reveil", "reveille-toi",
			"revele-toi", "bonjour", "salut", "coucou",
		},
		Elements: []elementEntry{
			{ElementFire, []string{"feu"}},
			{ElementWater, []string{"eau"}},
			{ElementWind, []string{"vent", "air"}},
			{ElementEarth, []string{"terre", "roc", "pierre"}},
			{ElementLight, []string{"lumiere"}},
			{ElementShadow, []string{"ombre", "nuit"}},
		},
		namePat: regexp.MustCompile(`(?i)(?:je t[’' ]app(?:elle)?|tu t[’' ]appelles|ton nom est)\s+([a-zA-Z-]{2,20})`),
	},
}

// DefaultLang is used when a state carries no language or an unknown one.
const DefaultLang = "en"

// LexiconFor returns the lexicon for lang, falling back to English.
func LexiconFor(lang string) Lexicon {
	if lex, ok := lexicons[lang]; ok {
		return lex
	}
	return lexicons[DefaultLang]
}

// KnownLang reports whether a lexicon exists for lang.
func KnownLang(lang string) bool {
	_, ok := lexicons[lang]
	return ok
}
