package tetris

import "image/color"

// Piece is the falling piece: a shape, a rotation index and the grid
// position of its frame origin.
type Piece struct {
	Shape    Shape
	Rotation int
	Origin   Point
}

// NewPiece returns a piece of the given shape at its spawn position.
func NewPiece(shape Shape, boardWidth int) Piece {
	return Piece{
		Shape:  shape,
		Origin: shape.SpawnOrigin(boardWidth),
	}
}

// Cells returns the absolute grid cells the piece occupies.
func (p Piece) Cells() []Point {
	cells := p.Shape.Offsets(p.Rotation)
	for i := range cells {
		cells[i] = cells[i].Add(p.Origin)
	}
	return cells
}

// Color returns the piece color.
func (p Piece) Color() color.RGBA {
	return p.Shape.Color()
}

// Moved returns a copy of p translated by dx columns and dy rows.
func (p Piece) Moved(dx, dy int) Piece {
	p.Origin = p.Origin.Add(Point{X: dx, Y: dy})
	return p
}

// Rotated returns a copy of p turned by steps rotation states. Positive steps
// rotate clockwise.
func (p Piece) Rotated(steps int) Piece {
	p.Rotation = p.Shape.NormalizeRotation(p.Rotation + steps)
	return p
}
