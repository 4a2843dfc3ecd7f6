package battle

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dragonling/internal/dragon"
)

// DoneMsg is emitted when the duel ends. Dispatch reports whether the
// reward should be fed to the engine as a gain event.
type DoneMsg struct {
	Reward   dragon.Reward
	Dispatch bool
}

var (
	enemyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	moveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	chosenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// Model is the duel sub-model embedded in the chat UI.
type Model struct {
	Duel   *Duel
	Moves  []dragon.Move
	Mood   float64
	Choice int
}

// NewModel starts a duel using the dragon's current move set and mood.
func NewModel(s dragon.State, rng *rand.Rand) Model {
	return Model{
		Duel:  NewDuel(rng),
		Moves: s.Moves,
		Mood:  s.Mood,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func done(d *Duel) tea.Cmd {
	reward, dispatch := d.Reward()
	return func() tea.Msg {
		return DoneMsg{Reward: reward, Dispatch: dispatch}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.Duel.Outcome != OutcomeNone {
		// Any key closes a finished duel.
		return m, done(m.Duel)
	}

	switch key.String() {
	case "left", "h":
		if m.Choice > 0 {
			m.Choice--
		}
	case "right", "l":
		if m.Choice < len(m.Moves)-1 {
			m.Choice++
		}
	case "enter", " ":
		if len(m.Moves) > 0 {
			m.Duel.PlayRound(m.Moves[m.Choice], m.Mood)
		}
	case "f", "esc":
		m.Duel.Flee()
		return m, done(m.Duel)
	}
	return m, nil
}

func hpBar(hp, maxHP int) string {
	filled := 0
	if maxHP > 0 {
		filled = hp * 10 / maxHP
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(enemyStyle.Render(fmt.Sprintf("%s (%s)", m.Duel.Enemy.Name, m.Duel.Enemy.Element)))
	b.WriteString(fmt.Sprintf("  %s %d/%d\n", hpBar(m.Duel.Enemy.HP, m.Duel.Enemy.MaxHP), m.Duel.Enemy.HP, m.Duel.Enemy.MaxHP))
	b.WriteString(fmt.Sprintf("You  %s %d/%d\n\n", hpBar(m.Duel.PlayerHP, PlayerMaxHP), m.Duel.PlayerHP, PlayerMaxHP))

	for i, mv := range m.Moves {
		label := fmt.Sprintf(" %s ", mv.Name)
		if i == m.Choice {
			b.WriteString(chosenStyle.Render("▸" + label))
		} else {
			b.WriteString(moveStyle.Render(" " + label))
		}
	}
	b.WriteString("\n\n")

	// Trailing slice of the duel log.
	log := m.Duel.Log
	if len(log) > 6 {
		log = log[len(log)-6:]
	}
	for _, entry := range log {
		b.WriteString(fmt.Sprintf("%s: %s\n", entry.Who, entry.Text))
	}

	if m.Duel.Outcome != OutcomeNone {
		b.WriteString(faintStyle.Render("\nPress any key to return."))
	} else {
		b.WriteString(faintStyle.Render("\n←/→ pick a move, enter to strike, f to flee."))
	}
	return b.String()
}
