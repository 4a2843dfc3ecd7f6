package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dragonling/internal/config"
	"dragonling/internal/dragon"
	"dragonling/internal/ui"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	statePath := cfg.StatePath
	if statePath == "" {
		statePath, err = dragon.StatePath()
		if err != nil {
			log.Fatalf("resolving state path: %v", err)
		}
	}

	engine := dragon.NewEngine(nil)
	state := dragon.Load(statePath, engine, cfg.Lang)

	program := tea.NewProgram(
		ui.NewModel(engine, state, statePath, cfg.TickInterval),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
