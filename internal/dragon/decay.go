package dragon

import "time"

// DecayNeeds applies units worth of passive depletion to the four needs.
// Needs floor at zero; mood is rederived by finalize at the transition
// boundary.
func DecayNeeds(s State, units float64) State {
	s.Hunger = clampFloat(s.Hunger-HungerDecayRate*units, MinNeed, MaxNeed)
	s.Hygiene = clampFloat(s.Hygiene-HygieneDecayRate*units, MinNeed, MaxNeed)
	s.Fun = clampFloat(s.Fun-FunDecayRate*units, MinNeed, MaxNeed)
	s.Rest = clampFloat(s.Rest-RestDecayRate*units, MinNeed, MaxNeed)
	return s
}

// decayUnits converts elapsed wall time into decay units. Zero means the
// caller is a fixed-interval timer and pays exactly one unit. Elapsed
// time below the minimum is dropped; above the maximum it is capped so a
// long-idle session cannot drain every need in one jump.
func decayUnits(elapsed time.Duration) (float64, bool) {
	if elapsed == 0 {
		return 1, true
	}
	if elapsed < ReconcileMinElapsed {
		return 0, false
	}
	if elapsed > ReconcileMaxElapsed {
		elapsed = ReconcileMaxElapsed
	}
	return float64(elapsed) / float64(TickInterval), true
}
