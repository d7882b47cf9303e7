// Command blockfall runs the game in a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Uint64("seed", 0, "Piece sequence seed (0 uses the config file or the clock)")
	verbose := flag.Bool("v", false, "Log game events")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config and exit")
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
	if *dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	session := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("[%s] ", session[:8]))
	log.Printf("Starting session %s (board %dx%d, randomizer %s)", session, cfg.Board.Width, cfg.Board.Height, cfg.Randomizer)

	events := &tetris.EventQueue{}
	opts := append(cfg.EngineOptions(), tetris.WithListener(events))
	if *verbose {
		opts = append(opts, tetris.WithListener(logEvents()))
	}
	engine := tetris.New(opts...)

	storage := newWorld(
		Player{Engine: engine, Queue: events},
		Controls{
			Bindings:   cfg.Bindings(),
			Controller: input.NewController(cfg.Input.RepeatDelay, cfg.Input.RepeatRate),
		},
		cfg.Display,
	)
	screenW, screenH := screenSize(storage)

	update := newUpdateScheduler(storage, NewAudioSystem(cfg.Audio))

	draw := ecs.NewScheduler(storage)
	draw.Register(&RenderSystem{})

	game := NewGame(storage, update, draw)

	if *debug {
		game.Imgui = debugui_ebiten.NewImguiBackend("Blockfall", screenW*2, screenH)
		update.Register(debugui.NewSystem(
			debugui.NewEngineInspector(engine),
			debugui.NewSessions(storage, 20),
			debugui.NewPerformanceStats(120, map[string]debugui.StatsSource{
				"Update": update,
				"Draw":   draw,
			}),
		))
	} else {
		ebiten.SetWindowSize(screenW*2, screenH*2)
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}

	log.Printf("Session over after %d rounds: score %d, lines %d, level %d", storage.Count(), engine.Score(), engine.Lines(), engine.Level())
}

func logEvents() tetris.Listener {
	return tetris.ListenerFunc(func(e tetris.Event) {
		switch e.Kind {
		case tetris.EventLock:
			log.Printf("Locked %s", e.Shape)
		case tetris.EventLineClear:
			log.Printf("Cleared %d lines for %d points", e.Lines, e.Points)
		case tetris.EventLevelUp:
			log.Printf("Level %d", e.Level)
		case tetris.EventGameOver:
			log.Printf("Game over")
		case tetris.EventRestart:
			log.Printf("Restarted")
		}
	})
}

// newUpdateScheduler registers the per-tick systems in order.
func newUpdateScheduler(storage *ecs.Storage, audio *AudioSystem) *ecs.Scheduler {
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&EventSystem{})
	scheduler.Register(audio)
	scheduler.Register(&RoundSystem{})
	return scheduler
}
