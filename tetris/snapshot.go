package tetris

import (
	"image/color"
	"time"
)

// Snapshot is a copy of everything a renderer needs for one frame. It shares
// no memory with the engine.
type Snapshot struct {
	Width, Height int
	// Cells is indexed [row][column]; zero alpha means empty.
	Cells [][]color.RGBA

	State  State
	Active []Point
	Ghost  []Point
	Color  color.RGBA
	Shape  Shape
	Next   Shape

	Score    int
	Lines    int
	Level    int
	Interval time.Duration
	Paused   bool
	GameOver bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:    e.board.Width(),
		Height:   e.board.Height(),
		Cells:    e.board.Rows(),
		State:    e.state,
		Active:   e.piece.Cells(),
		Ghost:    e.GhostCells(),
		Color:    e.piece.Color(),
		Shape:    e.piece.Shape,
		Next:     e.next,
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		Interval: e.FallInterval(),
		Paused:   e.Paused(),
		GameOver: e.GameOver(),
	}
}

// Composite returns the board with the falling piece drawn in, indexed
// [row][column]. The piece is left out once the game is over.
func (s Snapshot) Composite() [][]color.RGBA {
	out := make([][]color.RGBA, len(s.Cells))
	for y := range s.Cells {
		out[y] = make([]color.RGBA, len(s.Cells[y]))
		copy(out[y], s.Cells[y])
	}
	if s.GameOver {
		return out
	}
	for _, p := range s.Active {
		if p.Y >= 0 && p.Y < s.Height && p.X >= 0 && p.X < s.Width {
			out[p.Y][p.X] = s.Color
		}
	}
	return out
}
