package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// EngineInspector shows the live session state, spawn and clear counts, and
// offers pause, single-step and restart controls.
type EngineInspector struct {
	Engine *tetris.Engine
}

func NewEngineInspector(engine *tetris.Engine) *EngineInspector {
	return &EngineInspector{Engine: engine}
}

func shapeColor(s tetris.Shape) imgui.Vec4 {
	c := s.Color()
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
}

func (ei *EngineInspector) Render() {
	e := ei.Engine

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 360), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", e.State()))
	imgui.Text(fmt.Sprintf("Score: %d", e.Score()))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", e.Level(), e.Lines()))
	imgui.Text(fmt.Sprintf("Fall Interval: %s (%s elapsed)", e.FallInterval(), e.Elapsed().Round(time.Millisecond)))
	imgui.Separator()

	piece := e.Piece()
	imgui.PushStyleColorVec4(imgui.ColText, shapeColor(piece.Shape))
	imgui.Text(fmt.Sprintf("Piece: %s rot %d at (%d, %d)", piece.Shape, piece.Rotation, piece.Origin.X, piece.Origin.Y))
	imgui.PopStyleColor()
	imgui.PushStyleColorVec4(imgui.ColText, shapeColor(e.Next()))
	imgui.Text(fmt.Sprintf("Next: %s", e.Next()))
	imgui.PopStyleColor()
	imgui.Text(fmt.Sprintf("Locked Cells: %d", e.Occupied()))
	imgui.Separator()

	if e.Paused() {
		if imgui.Button("Resume") {
			e.TogglePause()
		}
		imgui.SameLine()
		if imgui.Button("Step") {
			e.TogglePause()
			e.Tick(e.FallInterval())
			e.TogglePause()
		}
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else if imgui.Button("Pause") {
		e.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		e.Restart()
	}

	stats := e.Stats()
	if imgui.TreeNodeStr("Spawns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, shape := range tetris.Shapes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextColored(shapeColor(shape), shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned(shape)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		names := []string{"", "Single", "Double", "Triple", "Tetris"}
		for lines := 1; lines < len(names); lines++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", names[lines], stats.Clears(lines)))
		}
		imgui.BulletText(fmt.Sprintf("Pieces Locked: %d", stats.Locked()))
		imgui.TreePop()
	}

	imgui.End()
}
