package ebiten_test

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and draws ImGui panels over the game.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Execute all systems, including the debugui system
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := debugui_ebiten.NewImguiBackend("Blockfall ImGui Example", 1280, 720)

	engine := tetris.New()
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		engine.Tick(time.Duration(frame.DeltaTime * float64(time.Second)))
	}))
	scheduler.Register(debugui.NewSystem(
		debugui.NewEngineInspector(engine),
		debugui.NewSessions(storage, 20),
		debugui.PanelFunc(func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from blockfall!")
			imgui.End()
		}),
	))

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
