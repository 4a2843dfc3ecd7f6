package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dragonling/internal/dragon"
)

// chromeHeight is the number of rows around the log viewport: header,
// avatar, stat rows, composer, status and help lines.
const chromeHeight = 9

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5C2E7"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89DCEB")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	youStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	dragonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true)
	enemyStyleL = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func speakerStyle(who dragon.Speaker) lipgloss.Style {
	switch who {
	case dragon.SpeakerYou:
		return youStyle
	case dragon.SpeakerDragon:
		return dragonStyle
	case dragon.SpeakerEnemy:
		return enemyStyleL
	default:
		return systemStyle
	}
}

func speakerLabel(s dragon.State, who dragon.Speaker) string {
	switch who {
	case dragon.SpeakerYou:
		return "you"
	case dragon.SpeakerDragon:
		if s.Name != "" {
			return s.Name
		}
		return "dragon"
	case dragon.SpeakerEnemy:
		return "enemy"
	default:
		return "·"
	}
}

func (m Model) renderLog() string {
	var b strings.Builder
	for _, entry := range m.state.Log {
		style := speakerStyle(entry.Who)
		b.WriteString(style.Render(speakerLabel(m.state, entry.Who)+":") + " " + entry.Text + "\n")
	}
	return b.String()
}

func makeBar(value, max float64) string {
	filled := 0
	if max > 0 {
		filled = int(value * 10 / max)
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "The dragon curls up in its nest. Bye!\n"
	}
	if !m.ready {
		return "Warming the nest…"
	}
	if m.mode == modeBattle {
		return m.battle.View()
	}

	s := m.state
	name := s.Name
	if name == "" {
		name = "Dragonling"
	}

	header := titleStyle.Render("🐉 "+name) + "  " +
		chipStyle.Render(string(s.Stage)) + " " +
		chipStyle.Render(string(s.Alignment)) + " " +
		chipStyle.Render(string(s.Element)) + " " +
		chipStyle.Render(fmt.Sprintf("XP %d", s.XP))

	avatar := Avatar(s)

	bonds := barStyle.Render(fmt.Sprintf(
		"affection %s %2d   temper %s %2d   energy %s %2d",
		makeBar(float64(s.Affection), dragon.MaxBondStat), s.Affection,
		makeBar(float64(s.Temper), dragon.MaxBondStat), s.Temper,
		makeBar(float64(s.Energy), dragon.MaxEnergy), s.Energy,
	))
	needs := barStyle.Render(fmt.Sprintf(
		"hunger %s  hygiene %s  fun %s  rest %s  mood %3.0f",
		makeBar(s.Hunger, dragon.MaxNeed),
		makeBar(s.Hygiene, dragon.MaxNeed),
		makeBar(s.Fun, dragon.MaxNeed),
		makeBar(s.Rest, dragon.MaxNeed),
		s.Mood,
	))

	status := ""
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}
	help := helpStyle.Render("enter to talk · /feed /wash /play /sleep /battle · /help · esc to quit")

	return strings.Join([]string{
		header,
		avatar,
		bonds,
		needs,
		m.viewport.View(),
		m.input.View(),
		status,
		help,
	}, "\n")
}
