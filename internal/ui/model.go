package ui

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dragonling/internal/battle"
	"dragonling/internal/dragon"
)

type mode int

const (
	modeChat mode = iota
	modeBattle
)

// Model is the chat UI: a composer, a scrolling conversation log, stat
// bars, and a timer feeding tick events to the engine.
type Model struct {
	engine    *dragon.Engine
	state     dragon.State
	statePath string
	tickEvery time.Duration
	rng       *rand.Rand

	mode   mode
	battle battle.Model

	input    textinput.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	status   string
	quitting bool
}

type tickMsg time.Time

// NewModel builds the chat model around an engine and a loaded state.
func NewModel(engine *dragon.Engine, state dragon.State, statePath string, tickEvery time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "Say something to the dragon… (/help for commands)"
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		engine:    engine,
		state:     state,
		statePath: statePath,
		tickEvery: tickEvery,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		input:     ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// dispatch feeds one event to the engine and persists the result. Import
// failures surface on the status line and leave the state untouched.
func (m *Model) dispatch(ev dragon.Event) {
	next, err := m.engine.Apply(m.state, ev)
	if err != nil {
		m.status = "Invalid import."
		return
	}
	m.state = next
	if err := dragon.Save(m.statePath, m.state); err != nil {
		log.Printf("saving state: %v", err)
	}
	m.refreshLog()
}

func (m *Model) refreshLog() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := m.height - chromeHeight
		if logHeight < 3 {
			logHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, logHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = logHeight
		}
		m.input.Width = m.width - 4
		m.refreshLog()
		return m, nil

	case tickMsg:
		if m.mode == modeChat {
			m.dispatch(dragon.TickEvent{})
		}
		return m, m.tick()

	case battle.DoneMsg:
		m.mode = modeChat
		if msg.Dispatch {
			m.dispatch(dragon.GainEvent{Reward: msg.Reward})
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeBattle {
			var cmd tea.Cmd
			m.battle, cmd = m.battle.Update(msg)
			return m, cmd
		}
		if msg.String() == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			text := m.input.Value()
			m.input.Reset()
			return m.submit(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit routes a composer line: slash commands drive care actions and
// housekeeping, anything else is spoken to the dragon.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	m.status = ""
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return m, nil
	}
	if !strings.HasPrefix(trimmed, "/") {
		m.dispatch(dragon.SpeakEvent{Text: text})
		return m, nil
	}

	cmd, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "/feed":
		m.dispatch(dragon.CareEvent{Action: dragon.CareFeed})
	case "/wash":
		m.dispatch(dragon.CareEvent{Action: dragon.CareWash})
	case "/play":
		m.dispatch(dragon.CareEvent{Action: dragon.CarePlay})
	case "/sleep":
		m.dispatch(dragon.CareEvent{Action: dragon.CareSleep})
	case "/battle":
		if m.state.Stage == dragon.StageEgg {
			m.status = "An egg cannot duel yet."
			return m, nil
		}
		m.mode = modeBattle
		m.battle = battle.NewModel(m.state, m.rng)
	case "/reset":
		m.dispatch(dragon.ResetEvent{})
	case "/export":
		m.status = "Save blob: " + dragon.Export(m.state)
	case "/import":
		payload, err := dragon.DecodeExport(arg)
		if err != nil {
			m.status = "Invalid import."
			return m, nil
		}
		m.dispatch(dragon.ImportEvent{Raw: payload})
	case "/lang":
		if !dragon.KnownLang(arg) {
			m.status = "Unknown language: " + arg
			return m, nil
		}
		m.dispatch(dragon.SetLangEvent{Lang: arg})
	case "/help":
		m.status = "Commands: /feed /wash /play /sleep /battle /export /import <blob> /lang <en|fr> /reset"
	case "/quit":
		m.quitting = true
		return m, tea.Quit
	default:
		m.status = "Unknown command: " + cmd
	}
	return m, nil
}

// State exposes the current snapshot, mainly for tests.
func (m Model) State() dragon.State {
	return m.state
}
