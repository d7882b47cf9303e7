// Command blockfall-term runs the game in a terminal.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0 uses the config file or the clock)")
	logPath := flag.String("log", "", "Write game events to this file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	opts := cfg.EngineOptions()
	if *logPath != "" {
		session := uuid.NewString()
		f, err := tea.LogToFile(*logPath, session[:8])
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.Printf("Starting session %s", session)
		opts = append(opts, tetris.WithListener(tetris.ListenerFunc(logEvent)))
	}

	m := newModel(tetris.New(opts...), cfg.Bindings(), cfg.Display.Ghost)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

func logEvent(e tetris.Event) {
	switch e.Kind {
	case tetris.EventLineClear:
		log.Printf("Cleared %d lines for %d points", e.Lines, e.Points)
	case tetris.EventLevelUp:
		log.Printf("Level %d", e.Level)
	case tetris.EventGameOver:
		log.Printf("Game over")
	case tetris.EventRestart:
		log.Printf("Restarted")
	}
}
