package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Board and side panel margins, in tiles.
const (
	marginTiles = 1
	panelTiles  = 7
)

// Player is the game in the window and the events it raised this update.
type Player struct {
	Engine *tetris.Engine
	Queue  *tetris.EventQueue
	Events []tetris.Event
}

// Controls turns held keys into actions.
type Controls struct {
	Bindings   input.Bindings
	Controller *input.Controller
}

// Canvas is the render target for the current Draw call.
type Canvas struct {
	Screen *ebiten.Image
}

// Round is one game played in the window, from a start or restart until game
// over or the next restart.
type Round struct {
	Number int
	Score  int
	Lines  int
	Level  int
	Pieces int
	Played time.Duration
	Over   bool
}

// newWorld creates the storage every system runs against: the player,
// controls, display and canvas singletons and the first round.
func newWorld(player Player, controls Controls, display config.Display) *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Round](registry)
	storage := ecs.NewStorage(registry)

	storage.AddSingleton(player)
	storage.AddSingleton(controls)
	storage.AddSingleton(display)
	storage.AddSingleton(Canvas{})
	storage.Spawn(Round{Number: 1})
	return storage
}

// screenSize returns the logical screen size in pixels.
func screenSize(storage *ecs.Storage) (int, int) {
	var player *Player
	var display *config.Display
	if !storage.ReadSingleton(&player) || !storage.ReadSingleton(&display) {
		return 0, 0
	}
	tile := display.TileSize
	return (player.Engine.Width() + 2*marginTiles + panelTiles) * tile, (player.Engine.Height() + 2*marginTiles) * tile
}

// Game implements ebiten.Game by running the update and draw schedulers.
type Game struct {
	Updates *ecs.Scheduler
	Draws   *ecs.Scheduler
	Imgui   *debugui_ebiten.ImguiBackend

	canvas *ecs.Singleton[Canvas]
	width  int
	height int
}

func NewGame(storage *ecs.Storage, updates, draws *ecs.Scheduler) *Game {
	w, h := screenSize(storage)
	return &Game{
		Updates: updates,
		Draws:   draws,
		canvas:  ecs.NewSingleton[Canvas](storage),
		width:   w,
		height:  h,
	}
}

func (g *Game) Update() error {
	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}

	stopped := g.Updates.Once(1.0 / float64(ebiten.TPS()))

	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}

	if stopped {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Get().Screen = screen
	g.Draws.Once(0)

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}
