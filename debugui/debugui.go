// Package debugui provides Dear ImGui debug panels for a running game: an
// engine inspector with pause, step and restart controls, a sessions browser
// over the ECS storage, and frame and system timing statistics.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// Panel renders one ImGui window.
type Panel interface {
	Render()
}

// PanelFunc adapts a function to Panel.
type PanelFunc func()

func (f PanelFunc) Render() { f() }

// InputCapture tracks whether Dear ImGui is consuming mouse or keyboard
// input. System keeps it as a storage singleton; game input systems should
// stand down while it is set.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes the InputCapture singleton and defers every panel's
// Render to the end of the frame, after the game systems have run.
type System struct {
	Panels  []Panel
	Capture ecs.Singleton[InputCapture]
}

// NewSystem creates a system rendering panels.
func NewSystem(panels ...Panel) *System {
	return &System{Panels: panels}
}

// Add appends a panel.
func (s *System) Add(p Panel) {
	s.Panels = append(s.Panels, p)
}

// Execute updates input capture state and queues all panel renders.
func (s *System) Execute(frame *ecs.UpdateFrame) {
	if !s.Capture.Exists() {
		frame.Storage.AddSingleton(InputCapture{})
	}
	capture := s.Capture.Get()

	io := imgui.CurrentIO()
	capture.WantCaptureMouse = io.WantCaptureMouse()
	capture.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range s.Panels {
		frame.Commands.Defer(p.Render)
	}
}
