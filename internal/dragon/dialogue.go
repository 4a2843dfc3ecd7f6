package dragon

import (
	"fmt"
	"math/rand"
)

// replyBanks holds the flavor lines, keyed by language, then alignment,
// then intent. Selection is uniform over the candidates; this is the
// engine's only source of non-determinism and only ever touches the log.
var replyBanks = map[string]map[Alignment]map[Intent][]string{
	"en": {
		AlignGentle: {
			IntentTalk:   {"I'm listening!", "I learn fast."},
			IntentFeed:   {"Yum!", "Thank you!"},
			IntentPlay:   {"Wanna play? ✨", "I chase the light."},
			IntentWash:   {"Bubbles!", "So fresh!"},
			IntentSleep:  {"*yawn*", "Good night…"},
			IntentSoothe: {"I feel safe.", "Thanks for the gentleness."},
			IntentAttack: {"I'd rather protect.", "No need to hurt anyone."},
			IntentSing:   {"La-la-la 🎶", "An old ballad rises."},
		},
		AlignNeutral: {
			IntentTalk:   {"...", "Hmm?"},
			IntentFeed:   {"I'm eating.", "Alright."},
			IntentPlay:   {"Why not.", "A little."},
			IntentWash:   {"If you insist.", "Fine."},
			IntentSleep:  {"Rest.", "Closing my eyes."},
			IntentSoothe: {"I am calm.", "Good."},
			IntentAttack: {"I'm thinking…", "Later."},
			IntentSing:   {"Hum hum.", "♪"},
		},
		AlignEvil: {
			IntentTalk:   {"Speak, human.", "Your words make me stronger."},
			IntentFeed:   {"More.", "Fruit will do."},
			IntentPlay:   {"I'm training.", "Dangerous games."},
			IntentWash:   {"Scales don't rust.", "Make it quick."},
			IntentSleep:  {"I lurk in the shadows.", "A brief rest."},
			IntentSoothe: {"I need no soothing.", "Tsss."},
			IntentAttack: {"Grrr… (in my head)", "Let it all burn…"},
			IntentSing:   {"A dark chant echoes.", "Hmmm."},
		},
	},
	"fr": {
		AlignGentle: {
			IntentTalk:   {"Je t'écoute !", "J'apprends vite."},
			IntentFeed:   {"Miam !", "Merci !"},
			IntentPlay:   {"On joue ? ✨", "Je cours après la lumière."},
			IntentWash:   {"Des bulles !", "Tout frais !"},
			IntentSleep:  {"*bâillement*", "Bonne nuit…"},
			IntentSoothe: {"Je me sens en sécurité.", "Merci pour la douceur."},
			IntentAttack: {"Je préfère protéger.", "Pas besoin de blesser."},
			IntentSing:   {"La-la-la 🎶", "Une ballade ancienne s'élève."},
		},
		AlignNeutral: {
			IntentTalk:   {"...", "Hmm ?"},
			IntentFeed:   {"Je mange.", "D'accord."},
			IntentPlay:   {"Pourquoi pas.", "Un peu."},
			IntentWash:   {"Si tu insistes.", "Bon."},
			IntentSleep:  {"Repos.", "Je ferme les yeux."},
			IntentSoothe: {"Je suis calme.", "Bien."},
			IntentAttack: {"Je réfléchis…", "Plus tard."},
			IntentSing:   {"Hum hum.", "♪"},
		},
		AlignEvil: {
			IntentTalk:   {"Parle, humain.", "Tes mots me fortifient."},
			IntentFeed:   {"Plus.", "Des fruits suffiront."},
			IntentPlay:   {"Je m'entraîne.", "Des jeux dangereux."},
			IntentWash:   {"Les écailles ne rouillent pas.", "Fais vite."},
			IntentSleep:  {"Je guette dans l'ombre.", "Un bref repos."},
			IntentSoothe: {"Je n'ai pas besoin d'être apaisé.", "Tsss."},
			IntentAttack: {"Grrr… (en imagination)", "Que tout s'embrase…"},
			IntentSing:   {"Un chant sombre résonne.", "Hmmm."},
		},
	},
}

// Reply picks a flavor line for the resolved alignment and intent,
// falling back to the talk bank when an intent has no dedicated entry.
func Reply(lang string, align Alignment, intent Intent, rng *rand.Rand) string {
	banks, ok := replyBanks[lang]
	if !ok {
		banks = replyBanks[DefaultLang]
	}
	bank := banks[align]
	lines := bank[intent]
	if len(lines) == 0 {
		lines = bank[IntentTalk]
	}
	if len(lines) == 0 {
		return "…"
	}
	return lines[rng.Intn(len(lines))]
}

// Narrative lines. Kept out of the reply banks because they mark state
// transitions, not conversation.

func openingLine(lang string) string {
	if lang == "fr" {
		return "Un œuf mystérieux repose dans un nid chaud. Prends-en soin et parle-lui."
	}
	return "A mysterious egg rests in a warm nest. Care for it and talk to it."
}

func hatchLine(lang string) string {
	if lang == "fr" {
		return "🐣 *Craaack* … Bonjour."
	}
	return "🐣 *Craaack* … Hello."
}

func juvenileLine(lang string) string {
	if lang == "fr" {
		return "🐲 Le dragonnet grandit : il est maintenant jeune."
	}
	return "🐲 The dragonling has grown: it is now a juvenile."
}

func adultLine(lang string) string {
	if lang == "fr" {
		return "🐉 Une lumière enveloppe le dragon… il est adulte !"
	}
	return "🐉 A glow surrounds the dragon… it is now an adult!"
}

func namedLine(lang, name string) string {
	if lang == "fr" {
		return fmt.Sprintf("Je m'appellerai %s.", name)
	}
	return fmt.Sprintf("I shall be called %s.", name)
}

func gainLine(lang string, r Reward) string {
	if lang == "fr" {
		if r.Victory {
			return fmt.Sprintf("⚔️ Victoire ! +%d XP, +%d Affection", r.XP, r.Affection)
		}
		return fmt.Sprintf("⚔️ Défaite… +%d XP, +%d Affection", r.XP, r.Affection)
	}
	if r.Victory {
		return fmt.Sprintf("⚔️ Victory! +%d XP, +%d Affection", r.XP, r.Affection)
	}
	return fmt.Sprintf("⚔️ Defeat… +%d XP, +%d Affection", r.XP, r.Affection)
}
