package dragon

import (
	"math/rand"
	"testing"
)

func TestReplyComesFromTheRightBank(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		got := Reply("en", AlignGentle, IntentFeed, rng)
		if got != "Yum!" && got != "Thank you!" {
			t.Fatalf("Reply() = %q, not in the gentle feed bank", got)
		}
	}
}

func TestReplyUnknownIntentFallsBackToTalk(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := Reply("fr", AlignNeutral, Intent("juggle"), rng)
	talk := replyBanks["fr"][AlignNeutral][IntentTalk]
	if got != talk[0] && got != talk[1] {
		t.Errorf("Reply() = %q, want a neutral talk line", got)
	}
}

func TestReplyUnknownLanguageFallsBackToEnglish(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := Reply("de", AlignEvil, IntentAttack, rng)
	bank := replyBanks["en"][AlignEvil][IntentAttack]
	if got != bank[0] && got != bank[1] {
		t.Errorf("Reply() = %q, want an english evil attack line", got)
	}
}

func TestReplyIsDeterministicForASeed(t *testing.T) {
	a := Reply("en", AlignNeutral, IntentPlay, rand.New(rand.NewSource(42)))
	b := Reply("en", AlignNeutral, IntentPlay, rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed gave %q then %q", a, b)
	}
}

func TestNarrativeLinesAreLocalized(t *testing.T) {
	if openingLine("fr") == openingLine("en") {
		t.Error("opening line not localized")
	}
	if hatchLine("fr") == hatchLine("en") {
		t.Error("hatch line not localized")
	}
	if got := namedLine("en", "Spark"); got != "I shall be called Spark." {
		t.Errorf("namedLine = %q", got)
	}
}

func TestGainLineReportsOutcome(t *testing.T) {
	win := gainLine("en", Reward{XP: 6, Affection: 2, Victory: true})
	loss := gainLine("en", Reward{XP: 2, Affection: 1})
	if win == loss {
		t.Error("victory and defeat lines are identical")
	}
}
