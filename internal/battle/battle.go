// Package battle implements the training-duel minigame. The duel itself
// never touches the dragon's state; it only produces a Reward bundle the
// caller dispatches as a gain event.
package battle

import (
	"fmt"
	"math"
	"math/rand"

	"dragonling/internal/dragon"
)

const (
	PlayerMaxHP = 60
	EnemyMaxHP  = 60
	enemyMood   = 55 // enemies fight at slightly-above-neutral mood
)

var enemyNames = []string{
	"Jelly Blob",
	"Friendly Thistle",
	"Fickle Breeze",
	"Little Mole",
	"Curious Gleam",
}

var enemyElements = []dragon.Element{
	dragon.ElementFire,
	dragon.ElementWater,
	dragon.ElementWind,
	dragon.ElementEarth,
	dragon.ElementLight,
	dragon.ElementShadow,
}

// Enemy is a randomly drawn training opponent.
type Enemy struct {
	Name    string
	Element dragon.Element
	HP      int
	MaxHP   int
}

// RandomEnemy draws an opponent with 40-59 starting HP.
func RandomEnemy(rng *rand.Rand) Enemy {
	return Enemy{
		Name:    enemyNames[rng.Intn(len(enemyNames))],
		Element: enemyElements[rng.Intn(len(enemyElements))],
		HP:      40 + rng.Intn(20),
		MaxHP:   EnemyMaxHP,
	}
}

// Damage is the move's power buffed or dulled by mood: a delighted
// dragon hits harder, a miserable one softer.
func Damage(m dragon.Move, mood float64) int {
	return int(math.Round(float64(m.Power) + (mood-50)/20))
}

// Outcome is how a duel ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

// Duel is one turn-based training fight.
type Duel struct {
	Enemy    Enemy
	PlayerHP int
	Outcome  Outcome
	Log      []dragon.LogEntry
}

// NewDuel starts a fight against a random enemy.
func NewDuel(rng *rand.Rand) *Duel {
	enemy := RandomEnemy(rng)
	return &Duel{
		Enemy:    enemy,
		PlayerHP: PlayerMaxHP,
		Log: []dragon.LogEntry{{
			Who:  dragon.SpeakerSystem,
			Text: fmt.Sprintf("A training duel begins against %s (%s).", enemy.Name, enemy.Element),
		}},
	}
}

func (d *Duel) addLog(who dragon.Speaker, text string) {
	d.Log = append(d.Log, dragon.LogEntry{Who: who, Text: text})
}

// PlayRound resolves one full round: the dragon's move, then, if the
// enemy still stands, its counter with the first move of its element.
func (d *Duel) PlayRound(m dragon.Move, mood float64) {
	if d.Outcome != OutcomeNone {
		return
	}

	dmg := Damage(m, mood)
	d.addLog(dragon.SpeakerYou, m.Name+"!")
	d.Enemy.HP -= dmg
	if d.Enemy.HP < 0 {
		d.Enemy.HP = 0
	}
	d.addLog(dragon.SpeakerDragon, fmt.Sprintf("Deals %d damage.", dmg))
	if d.Enemy.HP == 0 {
		d.Outcome = OutcomeVictory
		d.addLog(dragon.SpeakerSystem, "Victory!")
		return
	}

	em := dragon.DefaultMoves(d.Enemy.Element)[0]
	edmg := Damage(em, enemyMood)
	d.addLog(dragon.SpeakerEnemy, em.Name+"!")
	d.PlayerHP -= edmg
	if d.PlayerHP < 0 {
		d.PlayerHP = 0
	}
	d.addLog(dragon.SpeakerSystem, fmt.Sprintf("You take %d damage.", edmg))
	if d.PlayerHP == 0 {
		d.Outcome = OutcomeDefeat
		d.addLog(dragon.SpeakerSystem, "Defeat…")
	}
}

// Flee ends the duel with no reward.
func (d *Duel) Flee() {
	if d.Outcome == OutcomeNone {
		d.Outcome = OutcomeFled
		d.addLog(dragon.SpeakerSystem, "You slip away from the duel.")
	}
}

// Reward returns the bundle for the duel's outcome. Victory trains hard;
// defeat still teaches a little but costs some rest. A fled duel grants
// nothing.
func (d *Duel) Reward() (dragon.Reward, bool) {
	switch d.Outcome {
	case OutcomeVictory:
		return dragon.Reward{XP: 6, Affection: 2, Fun: 8, Victory: true}, true
	case OutcomeDefeat:
		return dragon.Reward{XP: 2, Affection: 1, Rest: -5}, true
	default:
		return dragon.Reward{}, false
	}
}
