package dragon

import "math/rand"

// CareAction is a discrete caretaking button press.
type CareAction string

const (
	CareFeed  CareAction = "feed"
	CareWash  CareAction = "wash"
	CarePlay  CareAction = "play"
	CareSleep CareAction = "sleep"
)

// careLines holds the per-action flavor text banks, one bank per language.
var careLines = map[string]map[CareAction][]string{
	"en": {
		CareFeed:  {"Yum!", "Thank you!"},
		CareWash:  {"All clean!", "That tickles!"},
		CarePlay:  {"Wanna play? ✨", "Haha!"},
		CareSleep: {"*yawn*", "See you later…"},
	},
	"fr": {
		CareFeed:  {"Miam !", "Merci !"},
		CareWash:  {"Tout propre !", "Ça chatouille !"},
		CarePlay:  {"On joue ? ✨", "Haha !"},
		CareSleep: {"*bâillement*", "À plus tard…"},
	},
}

func careLine(lang string, action CareAction, rng *rand.Rand) string {
	bank, ok := careLines[lang]
	if !ok {
		bank = careLines[DefaultLang]
	}
	lines := bank[action]
	if len(lines) == 0 {
		return "…"
	}
	return lines[rng.Intn(len(lines))]
}

// applyCare raises the targeted needs, adjusts energy, grants a little
// experience, and appends one flavor line. Unknown actions fall through
// to the unchanged state; the event surface is typed, so that only
// happens on imports of hand-edited saves.
func applyCare(s State, action CareAction, rng *rand.Rand) (State, bool) {
	switch action {
	case CareFeed:
		s.Hunger = clampFloat(s.Hunger+FeedHungerGain, MinNeed, MaxNeed)
		s.Energy = clampInt(s.Energy+FeedEnergyGain, 0, MaxEnergy)
		s.XP += CareXPGain
		s.Action = ActionFeed
	case CareWash:
		s.Hygiene = clampFloat(s.Hygiene+WashHygieneGain, MinNeed, MaxNeed)
		s.XP += CareXPGain
		s.Action = ActionWash
	case CarePlay:
		s.Fun = clampFloat(s.Fun+PlayFunGain, MinNeed, MaxNeed)
		s.Energy = clampInt(s.Energy-PlayEnergyCost, 0, MaxEnergy)
		s.XP += PlayXPGain
		s.Action = ActionPlay
	case CareSleep:
		s.Rest = clampFloat(s.Rest+SleepRestGain, MinNeed, MaxNeed)
		s.Energy = clampInt(s.Energy+SleepEnergyGain, 0, MaxEnergy)
		s.XP += CareXPGain
		s.Action = ActionSleep
	default:
		return s, false
	}

	s.Log = appendLog(s.Log, LogEntry{Who: SpeakerDragon, Text: careLine(s.Lang, action, rng)})
	return s, true
}
