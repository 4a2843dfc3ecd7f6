package dragon

import "testing"

func TestStageFromXP(t *testing.T) {
	tests := []struct {
		xp   int
		want Stage
	}{
		{0, StageEgg},
		{4, StageEgg},
		{5, StageHatchling},
		{19, StageHatchling},
		{20, StageJuvenile},
		{49, StageJuvenile},
		{50, StageAdult},
		{500, StageAdult},
	}
	for _, tt := range tests {
		if got := StageFromXP(tt.xp); got != tt.want {
			t.Errorf("StageFromXP(%d) = %q, want %q", tt.xp, got, tt.want)
		}
	}
}

func TestAdvanceStageHoldsEggWithoutAffection(t *testing.T) {
	s := NewState("en")
	s.XP = 40 // well past the threshold, but the egg is unloved
	s.Affection = HatchMinAffection - 1

	next, lines := advanceStage(s, false)
	if next.Stage != StageEgg {
		t.Errorf("stage = %q, want egg held back", next.Stage)
	}
	if len(lines) != 0 {
		t.Errorf("unexpected narrative lines: %v", lines)
	}
}

func TestAdvanceStageHatchHintOverridesGates(t *testing.T) {
	s := NewState("en")

	next, lines := advanceStage(s, true)
	if next.Stage != StageHatchling {
		t.Fatalf("stage = %q, want hatchling", next.Stage)
	}
	if next.XP != HatchlingXP {
		t.Errorf("xp = %d, want grant to %d", next.XP, HatchlingXP)
	}
	if len(lines) != 1 || lines[0].Who != SpeakerDragon {
		t.Errorf("want one dragon hatch line, got %v", lines)
	}
}

func TestAdvanceStageJuvenileNeedsAffection(t *testing.T) {
	s := NewState("en")
	s.Stage = StageHatchling
	s.XP = JuvenileXP

	s.Affection = JuvenileMinAffection - 1
	if next, _ := advanceStage(s, false); next.Stage != StageHatchling {
		t.Errorf("stage = %q, want hatchling held back", next.Stage)
	}

	s.Affection = JuvenileMinAffection
	next, _ := advanceStage(s, false)
	if next.Stage != StageJuvenile {
		t.Errorf("stage = %q, want juvenile", next.Stage)
	}
	if len(next.Moves) == 0 {
		t.Error("moves not rebound on the juvenile step")
	}
}

func TestAdvanceStageAdultNeedsConversation(t *testing.T) {
	s := NewState("en")
	s.Stage = StageJuvenile
	s.XP = AdultXP

	s.Achievements.Utterances = AdultMinUtterances - 1
	if next, _ := advanceStage(s, false); next.Stage != StageJuvenile {
		t.Errorf("stage = %q, want juvenile held back", next.Stage)
	}

	s.Achievements.Utterances = AdultMinUtterances
	next, _ := advanceStage(s, false)
	if next.Stage != StageAdult {
		t.Errorf("stage = %q, want adult", next.Stage)
	}
	if next.Action != ActionEvolve {
		t.Errorf("action = %q, want %q", next.Action, ActionEvolve)
	}
}

func TestAdvanceStageMovesOneStepAtMost(t *testing.T) {
	s := NewState("en")
	s.XP = 500
	s.Affection = MaxBondStat
	s.Achievements.Utterances = 100

	next, _ := advanceStage(s, false)
	if next.Stage != StageHatchling {
		t.Errorf("stage = %q, want hatchling (single step from egg)", next.Stage)
	}
}

func TestAdvanceStageAdultIsTerminal(t *testing.T) {
	s := NewState("en")
	s.Stage = StageAdult
	s.XP = 500
	next, lines := advanceStage(s, true)
	if next.Stage != StageAdult || len(lines) != 0 {
		t.Errorf("adult stage changed: %q, lines %v", next.Stage, lines)
	}
}

func TestDefaultMovesReturnsACopy(t *testing.T) {
	a := DefaultMoves(ElementFire)
	a[0].Power = 999
	b := DefaultMoves(ElementFire)
	if b[0].Power == 999 {
		t.Error("DefaultMoves shares its backing array with callers")
	}
}

func TestDefaultMovesUnknownElementFallsBack(t *testing.T) {
	got := DefaultMoves(Element("plasma"))
	want := DefaultMoves(DefaultElement)
	if len(got) != len(want) || got[0].ID != want[0].ID {
		t.Errorf("fallback moves = %+v, want %+v", got, want)
	}
}
