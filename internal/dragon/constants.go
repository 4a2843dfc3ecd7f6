package dragon

import "time"

// Tuning constants. The needs decay and care amounts are deliberately
// asymmetric: hunger and fun drain faster than hygiene and rest.
const (
	MaxNeed     = 100.0
	MinNeed     = 0.0
	MaxBondStat = 30 // affection and temper cap
	MaxEnergy   = 10

	InitialEnergy  = 8
	InitialHunger  = 50.0
	InitialHygiene = 60.0
	InitialFun     = 55.0
	InitialRest    = 60.0

	// Stage thresholds (xp)
	HatchlingXP = 5
	JuvenileXP  = 20
	AdultXP     = 50

	// Auxiliary evolution gates
	HatchMinAffection    = 2
	JuvenileMinAffection = 4
	AdultMinUtterances   = 10

	// Alignment flips when |affection - temper| reaches this margin
	AlignmentMargin = 5

	// Passive decay per tick unit
	HungerDecayRate  = 0.5
	HygieneDecayRate = 0.25
	FunDecayRate     = 0.35
	RestDecayRate    = 0.3

	// Care action amounts
	FeedHungerGain  = 28.0
	FeedEnergyGain  = 1
	WashHygieneGain = 30.0
	PlayFunGain     = 26.0
	PlayEnergyCost  = 1
	SleepRestGain   = 32.0
	SleepEnergyGain = 3

	CareXPGain = 1
	PlayXPGain = 2

	// TickInterval is one decay unit of wall time.
	TickInterval = 2200 * time.Millisecond

	// Elapsed-time reconciliation bounds. Under the minimum the decay is
	// a no-op; above the maximum a long-idle session only pays for six
	// minutes of neglect.
	ReconcileMinElapsed = 30 * time.Second
	ReconcileMaxElapsed = 6 * time.Minute

	// SavedLogWindow is how many trailing log lines the persisted copy
	// keeps. The in-memory log is unbounded.
	SavedLogWindow = 30
)

// DefaultElement is assigned at creation until an utterance names one.
const DefaultElement = ElementWind
