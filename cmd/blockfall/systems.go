package main

import (
	"fmt"
	"image/color"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}

// InputSystem polls the keyboard and applies the resulting actions. It stands
// down while the ImGui overlay holds the keyboard.
type InputSystem struct {
	Player   ecs.Singleton[Player]
	Controls ecs.Singleton[Controls]
	Capture  ecs.Singleton[debugui.InputCapture]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	controls := s.Controls.Get()
	if capture := s.Capture.Get(); capture != nil && capture.WantCaptureKeyboard {
		controls.Controller.Reset()
		return
	}

	held := func(a input.Action) bool {
		return keyHeld(controls.Bindings.Keys(a))
	}

	engine := s.Player.Get().Engine
	for _, action := range controls.Controller.Update(held, seconds(frame.DeltaTime)) {
		if action == input.Quit {
			frame.Commands.Stop()
			return
		}
		action.Apply(engine)
	}
}

// GravitySystem advances the falling piece.
type GravitySystem struct {
	Player ecs.Singleton[Player]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	s.Player.Get().Engine.Tick(seconds(frame.DeltaTime))
}

// EventSystem moves the events raised so far into Player.Events for the
// systems after it.
type EventSystem struct {
	Player ecs.Singleton[Player]
}

func (s *EventSystem) Execute(frame *ecs.UpdateFrame) {
	p := s.Player.Get()
	p.Events = p.Queue.Drain()
}

// RoundSystem keeps the open Round in step with the engine, closes it on game
// over and opens the next one on restart.
type RoundSystem struct {
	Player ecs.Singleton[Player]
	Rounds ecs.Query[struct{ *Round }]
}

func (s *RoundSystem) Execute(frame *ecs.UpdateFrame) {
	p := s.Player.Get()

	var current *Round
	for item := range s.Rounds.Values() {
		if !item.Round.Over {
			current = item.Round
		}
	}

	restarted := slices.ContainsFunc(p.Events, func(ev tetris.Event) bool {
		return ev.Kind == tetris.EventRestart
	})
	if restarted {
		if current != nil {
			current.Over = true
		}
		frame.Commands.Spawn(Round{Number: s.Rounds.Len() + 1})
		return
	}
	if current == nil {
		return
	}

	e := p.Engine
	current.Score = e.Score()
	current.Lines = e.Lines()
	current.Level = e.Level()
	current.Pieces = e.Stats().TotalSpawned()
	if e.State() == tetris.Falling {
		current.Played += seconds(frame.DeltaTime)
	}
	current.Over = e.GameOver()
}

// cuePlayer is the part of *audio.Player the audio system drives.
type cuePlayer interface {
	Rewind() error
	Play()
}

// AudioSystem turns the update's engine events into sound effects.
type AudioSystem struct {
	Player ecs.Singleton[Player]

	context *audio.Context
	bank    sound.Bank
	players map[sound.Cue]cuePlayer
}

func NewAudioSystem(cfg config.Audio) *AudioSystem {
	s := &AudioSystem{}
	if cfg.Enabled {
		s.context = audio.NewContext(sound.SampleRate)
		s.bank = sound.NewBank(cfg.Volume)
		s.players = make(map[sound.Cue]cuePlayer)
	}
	return s
}

func (s *AudioSystem) Execute(frame *ecs.UpdateFrame) {
	if s.context == nil {
		return
	}
	for _, ev := range s.Player.Get().Events {
		cue, ok := sound.CueFor(ev)
		if !ok {
			continue
		}
		s.play(cue)
	}
}

func (s *AudioSystem) play(cue sound.Cue) {
	player, ok := s.players[cue]
	if !ok {
		player = s.context.NewPlayerFromBytes(s.bank[cue])
		s.players[cue] = player
	}
	if err := player.Rewind(); err != nil {
		log.Printf("Failed to rewind cue %d: %v", cue, err)
		return
	}
	player.Play()
}

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	wellColor       = color.RGBA{R: 32, G: 32, B: 44, A: 255}
	gridColor       = color.RGBA{R: 44, G: 44, B: 58, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// hudLegendGap is the pixel offset from the score lines to the legend.
const hudLegendGap = 4 * 16

// RenderSystem draws the well, the falling piece, its ghost, the next
// preview, the score panel and the controls legend.
type RenderSystem struct {
	Player   ecs.Singleton[Player]
	Controls ecs.Singleton[Controls]
	Display  ecs.Singleton[config.Display]
	Canvas   ecs.Singleton[Canvas]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Canvas.Get().Screen
	if screen == nil {
		return
	}

	display := s.Display.Get()
	snap := s.Player.Get().Engine.Snapshot()
	tile := float32(display.TileSize)
	originX := tile * marginTiles
	originY := tile * marginTiles
	boardW := tile * float32(snap.Width)
	boardH := tile * float32(snap.Height)

	screen.Fill(backgroundColor)
	vector.DrawFilledRect(screen, originX-2, originY-2, boardW+4, boardH+4, gridColor, false)
	vector.DrawFilledRect(screen, originX, originY, boardW, boardH, wellColor, false)

	for y, row := range snap.Cells {
		for x, c := range row {
			if c.A == 0 {
				continue
			}
			drawTile(screen, originX+float32(x)*tile, originY+float32(y)*tile, tile, c)
		}
	}

	if !snap.GameOver {
		if display.Ghost {
			for _, p := range snap.Ghost {
				if p.Y < 0 {
					continue
				}
				px := originX + float32(p.X)*tile
				py := originY + float32(p.Y)*tile
				vector.StrokeRect(screen, px+1, py+1, tile-2, tile-2, 1, snap.Color, false)
			}
		}
		for _, p := range snap.Active {
			if p.Y < 0 {
				continue
			}
			drawTile(screen, originX+float32(p.X)*tile, originY+float32(p.Y)*tile, tile, snap.Color)
		}
	}

	panelX := originX + boardW + tile
	ebitenutil.DebugPrintAt(screen, "NEXT", int(panelX), int(originY))
	for _, p := range snap.Next.Offsets(0) {
		drawTile(screen, panelX+float32(p.X)*tile, originY+tile+float32(p.Y)*tile, tile, snap.Next.Color())
	}

	hud := fmt.Sprintf("SCORE %d\nLINES %d\nLEVEL %d", snap.Score, snap.Lines, snap.Level)
	ebitenutil.DebugPrintAt(screen, hud, int(panelX), int(originY+tile*7))

	legend := strings.Join(s.Controls.Get().Bindings.Legend(), "\n")
	ebitenutil.DebugPrintAt(screen, legend, int(panelX), int(originY+tile*7)+hudLegendGap)

	switch {
	case snap.GameOver:
		drawBanner(screen, originX, originY, boardW, boardH, "GAME OVER\nR to restart")
	case snap.Paused:
		drawBanner(screen, originX, originY, boardW, boardH, "PAUSED")
	}
}

func drawTile(screen *ebiten.Image, x, y, tile float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x+1, y+1, tile-2, tile-2, c, false)
}

func drawBanner(screen *ebiten.Image, x, y, w, h float32, msg string) {
	vector.DrawFilledRect(screen, x, y, w, h, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, msg, int(x+w/2)-30, int(y+h/2)-8)
}
