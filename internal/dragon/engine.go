package dragon

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Event is the closed set of inputs the engine accepts. New event kinds
// are a compile-time surface, not a string that falls through a default
// branch.
type Event interface {
	isEvent()
}

// ResetEvent discards all progress, keeping only the language preference.
type ResetEvent struct{}

// ImportEvent shallow-merges a previously exported state blob onto the
// current state. The merged result is re-clamped and re-derived; the
// blob's own derived fields are not trusted.
type ImportEvent struct {
	Raw []byte
}

// TickEvent applies passive needs decay. Elapsed zero means one timer
// tick; a positive value reconciles wall time missed while the app was
// closed, bounded by the reconciliation window.
type TickEvent struct {
	Elapsed time.Duration
}

// CareEvent applies one caretaking action.
type CareEvent struct {
	Action CareAction
}

// SpeakEvent feeds one utterance through the full classification chain.
type SpeakEvent struct {
	Text string
}

// GainEvent applies an externally computed reward bundle, e.g. from a
// training duel.
type GainEvent struct {
	Reward Reward
}

// SetLangEvent switches the active language.
type SetLangEvent struct {
	Lang string
}

func (ResetEvent) isEvent()   {}
func (ImportEvent) isEvent()  {}
func (TickEvent) isEvent()    {}
func (CareEvent) isEvent()    {}
func (SpeakEvent) isEvent()   {}
func (GainEvent) isEvent()    {}
func (SetLangEvent) isEvent() {}

// Reward is a duel outcome applied additively to the state. Fun and Rest
// may be negative; everything is clamped on application.
type Reward struct {
	XP        int     `json:"xp"`
	Affection int     `json:"affection"`
	Fun       float64 `json:"fun"`
	Rest      float64 `json:"rest"`
	Victory   bool    `json:"victory"`
}

// Engine is the transition orchestrator. It owns the random source used
// for flavor-text selection so tests can pin it; it holds no state of
// its own.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine drawing flavor text from rng. A nil rng
// gets a time-seeded source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Apply is the single dispatch over event kinds: a total function from
// (state, event) to the next state. Only ImportEvent can fail, and then
// the returned state is the input state, untouched.
func (e *Engine) Apply(s State, ev Event) (State, error) {
	switch ev := ev.(type) {
	case ResetEvent:
		return NewState(s.Lang), nil

	case ImportEvent:
		merged := s
		if err := json.Unmarshal(ev.Raw, &merged); err != nil {
			return s, fmt.Errorf("invalid import: %w", err)
		}
		merged.Action = ActionIdle
		// Stage, mood and alignment are rederived rather than copied
		// from the blob; finalize re-clamps every bounded field.
		if merged.XP < 0 {
			merged.XP = 0
		}
		merged.Stage = StageFromXP(merged.XP)
		if !KnownLang(merged.Lang) {
			merged.Lang = s.Lang
		}
		if len(merged.Moves) == 0 {
			merged.Moves = DefaultMoves(merged.Element)
		}
		return finalize(merged), nil

	case TickEvent:
		units, ok := decayUnits(ev.Elapsed)
		if !ok {
			return s, nil
		}
		next := s
		next.Action = ActionIdle
		next = DecayNeeds(next, units)
		return finalize(next), nil

	case CareEvent:
		next := s
		next.Action = ActionIdle
		next, ok := applyCare(next, ev.Action, e.rng)
		if !ok {
			// Unknown action tag: identity, by policy.
			return s, nil
		}
		next, lines := advanceStage(next, false)
		next.Log = appendLog(next.Log, lines...)
		return finalize(next), nil

	case SpeakEvent:
		return e.speak(s, ev.Text), nil

	case GainEvent:
		next := s
		next.Action = ActionIdle
		next.XP += ev.Reward.XP
		next.Affection = clampInt(next.Affection+ev.Reward.Affection, 0, MaxBondStat)
		next.Fun = clampFloat(next.Fun+ev.Reward.Fun, MinNeed, MaxNeed)
		next.Rest = clampFloat(next.Rest+ev.Reward.Rest, MinNeed, MaxNeed)
		if ev.Reward.Victory {
			next.Achievements.BattleWins++
		}
		next.Log = appendLog(next.Log, LogEntry{Who: SpeakerSystem, Text: gainLine(next.Lang, ev.Reward)})
		next, lines := advanceStage(next, false)
		next.Log = appendLog(next.Log, lines...)
		return finalize(next), nil

	case SetLangEvent:
		if !KnownLang(ev.Lang) || ev.Lang == s.Lang {
			return s, nil
		}
		next := s
		next.Lang = ev.Lang
		return next, nil

	default:
		// Unknown event kinds are a deliberate no-op, not a crash.
		return s, nil
	}
}

// speak runs the full chain: normalize, classify, apply sentiment,
// adjust energy and xp, evaluate the stage gates, rederive alignment,
// resolve name and element, apply the gentle-attack modifier, pick a
// reply, and append the log lines.
func (e *Engine) speak(s State, text string) State {
	if strings.TrimSpace(text) == "" {
		return s
	}

	lex := LexiconFor(s.Lang)
	res := Classify(text, lex)

	next := s
	next.Action = ActionIdle
	next.Achievements.Utterances++

	if res.Score > 0 {
		next.Affection = clampInt(next.Affection+res.Score, 0, MaxBondStat)
	} else if res.Score < 0 {
		next.Temper = clampInt(next.Temper-res.Score, 0, MaxBondStat)
	}

	energyShift := -1
	if res.Intent == IntentSleep || res.Intent == IntentFeed {
		energyShift += 2
	}
	next.Energy = clampInt(next.Energy+energyShift, 0, MaxEnergy)

	next.XP++
	if res.Intent == IntentPlay {
		next.XP++
	}

	if el := ElementFromText(text, next.Element, lex); el != next.Element {
		next.Element = el
		next.Moves = DefaultMoves(el)
	}

	next, narrative := advanceStage(next, res.HatchHinted)

	// Name is set once and never overwritten.
	if next.Name == "" && res.ProposedName != "" {
		next.Name = res.ProposedName
		next.Achievements.Named = true
		narrative = append(narrative, LogEntry{Who: SpeakerDragon, Text: namedLine(next.Lang, next.Name)})
	}

	next.Alignment = AlignmentFor(next.Affection, next.Temper)

	// A dragon that ends up gentle refuses aggression: the order is told
	// to attack softens it instead. This reads the alignment computed
	// from the already-updated bond stats, not the prior state's.
	if res.Intent == IntentAttack && next.Alignment == AlignGentle {
		next.Temper = clampInt(next.Temper-1, 0, MaxBondStat)
		next.Affection = clampInt(next.Affection+1, 0, MaxBondStat)
	}

	if next.Alignment == AlignGentle && s.Alignment != AlignGentle {
		next.Achievements.GentlePath = true
	}
	if next.Alignment == AlignEvil && s.Alignment != AlignEvil {
		next.Achievements.EvilPath = true
	}

	reply := Reply(next.Lang, next.Alignment, res.Intent, e.rng)

	next.Log = appendLog(next.Log, LogEntry{Who: SpeakerYou, Text: text}, LogEntry{Who: SpeakerDragon, Text: reply})
	next.Log = appendLog(next.Log, narrative...)

	return finalize(next)
}
