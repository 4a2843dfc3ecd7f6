package dragon

// Stage is the dragon's life phase. It only moves forward, one step per
// transition, except on a full reset.
type Stage string

const (
	StageEgg       Stage = "egg"
	StageHatchling Stage = "hatchling"
	StageJuvenile  Stage = "juvenile"
	StageAdult     Stage = "adult"
)

// Alignment is the dragon's disposition, rederived every transition from
// affection vs temper. It is not sticky and can flip back.
type Alignment string

const (
	AlignGentle  Alignment = "gentle"
	AlignNeutral Alignment = "neutral"
	AlignEvil    Alignment = "evil"
)

// Element is the dragon's elemental affinity. It changes only when an
// utterance explicitly names an element.
type Element string

const (
	ElementFire   Element = "fire"
	ElementWater  Element = "water"
	ElementWind   Element = "wind"
	ElementEarth  Element = "earth"
	ElementLight  Element = "light"
	ElementShadow Element = "shadow"
)

// Action is a one-shot animation cue for the renderer. Every transition
// resets it to idle before applying the event.
type Action string

const (
	ActionIdle   Action = "idle"
	ActionFeed   Action = "feed"
	ActionWash   Action = "wash"
	ActionPlay   Action = "play"
	ActionSleep  Action = "sleep"
	ActionHatch  Action = "hatch"
	ActionEvolve Action = "evolve"
)

// Speaker identifies who a log line belongs to.
type Speaker string

const (
	SpeakerYou    Speaker = "you"
	SpeakerDragon Speaker = "dragon"
	SpeakerSystem Speaker = "system"
	SpeakerEnemy  Speaker = "enemy"
)

// LogEntry is one line of the conversation log.
type LogEntry struct {
	Who  Speaker `json:"who"`
	Text string  `json:"text"`
}

// Move is a battle move bound to the dragon's element.
type Move struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Power int    `json:"power"`
	Cost  int    `json:"cost"`
}

// Achievements holds write-once milestones and monotonic counters.
type Achievements struct {
	Hatched    bool `json:"hatched"`
	Named      bool `json:"named"`
	GentlePath bool `json:"gentle_path"`
	EvilPath   bool `json:"evil_path"`
	Utterances int  `json:"utterances"`
	BattleWins int  `json:"battle_wins"`
}

// State is the dragon's entire mutable state. Transitions never mutate a
// State in place; they return a new value.
type State struct {
	Name      string    `json:"name,omitempty"`
	Stage     Stage     `json:"stage"`
	Alignment Alignment `json:"align"`
	Element   Element   `json:"element"`
	XP        int       `json:"xp"`
	Affection int       `json:"affection"`
	Temper    int       `json:"temper"`
	Energy    int       `json:"energy"`

	Hunger  float64 `json:"hunger"`
	Hygiene float64 `json:"hygiene"`
	Fun     float64 `json:"fun"`
	Rest    float64 `json:"rest"`
	// Mood is always the mean of the four needs, never set directly.
	Mood float64 `json:"mood"`

	Moves  []Move `json:"moves"`
	Action Action `json:"action"`
	Lang   string `json:"lang"`

	Achievements Achievements `json:"achievements"`
	Log          []LogEntry   `json:"log"`
}

// NewState returns a fresh egg waiting in its nest.
func NewState(lang string) State {
	s := State{
		Stage:     StageEgg,
		Alignment: AlignNeutral,
		Element:   DefaultElement,
		XP:        0,
		Affection: 0,
		Temper:    0,
		Energy:    InitialEnergy,
		Hunger:    InitialHunger,
		Hygiene:   InitialHygiene,
		Fun:       InitialFun,
		Rest:      InitialRest,
		Moves:     DefaultMoves(DefaultElement),
		Action:    ActionIdle,
		Lang:      lang,
		Log:       []LogEntry{{Who: SpeakerSystem, Text: openingLine(lang)}},
	}
	return finalize(s)
}

// stageOrder maps stages to their position so advancement can be checked
// to move at most one step at a time.
var stageOrder = map[Stage]int{
	StageEgg:       0,
	StageHatchling: 1,
	StageJuvenile:  2,
	StageAdult:     3,
}

// StageIndex returns the stage's position in the lifecycle, egg first.
func StageIndex(s Stage) int {
	return stageOrder[s]
}

// appendLog returns a new log slice so callers never alias the input
// state's backing array.
func appendLog(log []LogEntry, entries ...LogEntry) []LogEntry {
	out := make([]LogEntry, 0, len(log)+len(entries))
	out = append(out, log...)
	out = append(out, entries...)
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// finalize restores the state invariants before a transition returns:
// every bounded field is clamped, mood is rederived from the needs, and
// alignment is rederived from affection vs temper.
func finalize(s State) State {
	if s.XP < 0 {
		s.XP = 0
	}
	s.Affection = clampInt(s.Affection, 0, MaxBondStat)
	s.Temper = clampInt(s.Temper, 0, MaxBondStat)
	s.Energy = clampInt(s.Energy, 0, MaxEnergy)
	s.Hunger = clampFloat(s.Hunger, MinNeed, MaxNeed)
	s.Hygiene = clampFloat(s.Hygiene, MinNeed, MaxNeed)
	s.Fun = clampFloat(s.Fun, MinNeed, MaxNeed)
	s.Rest = clampFloat(s.Rest, MinNeed, MaxNeed)
	s.Mood = (s.Hunger + s.Hygiene + s.Fun + s.Rest) / 4
	s.Alignment = AlignmentFor(s.Affection, s.Temper)
	return s
}
