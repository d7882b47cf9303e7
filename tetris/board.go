package tetris

import "image/color"

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the grid of locked cells. A cell with zero alpha is empty.
type Board struct {
	width  int
	height int
	cells  []color.RGBA
}

// NewBoard creates an empty board. Non-positive dimensions fall back to the
// defaults.
func NewBoard(width, height int) *Board {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]color.RGBA, width*height),
	}
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the locked color at (x, y) and whether the cell is occupied.
// Coordinates outside the grid report an empty cell.
func (b *Board) At(x, y int) (color.RGBA, bool) {
	if !b.inside(x, y) {
		return color.RGBA{}, false
	}
	c := b.cells[y*b.width+x]
	return c, c.A != 0
}

// IsCellFree reports whether (x, y) is inside the grid and not locked.
func (b *Board) IsCellFree(x, y int) bool {
	if !b.inside(x, y) {
		return false
	}
	return b.cells[y*b.width+x].A == 0
}

// CanPlace reports whether every cell is within the horizontal bounds, above
// the floor and clear of locked cells. Cells above the top edge are accepted;
// this is the check used to detect a blocked spawn.
func (b *Board) CanPlace(cells []Point) bool {
	for _, p := range cells {
		if p.X < 0 || p.X >= b.width || p.Y >= b.height {
			return false
		}
		if p.Y >= 0 && !b.IsCellFree(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Fits is CanPlace restricted to the visible grid. Movement and rotation use
// it so a piece can never leave the board through the top.
func (b *Board) Fits(cells []Point) bool {
	for _, p := range cells {
		if !b.IsCellFree(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Lock writes c into every cell. Cells outside the grid are dropped.
func (b *Board) Lock(cells []Point, c color.RGBA) {
	for _, p := range cells {
		if b.inside(p.X, p.Y) {
			b.cells[p.Y*b.width+p.X] = c
		}
	}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.A == 0 {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every full row, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := range b.height {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullLines removes every full row in one pass. Rows above a removed row
// drop by the number of removed rows beneath them, keeping their order, and
// empty rows fill the top. Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	full := make([]bool, b.height)
	cleared := 0
	for y := range b.height {
		if b.rowFull(y) {
			full[y] = true
			cleared++
		}
	}
	if cleared == 0 {
		return 0
	}

	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if full[src] {
			continue
		}
		if dst != src {
			copy(b.row(dst), b.row(src))
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(b.row(dst))
	}
	return cleared
}

func (b *Board) row(y int) []color.RGBA {
	return b.cells[y*b.width : (y+1)*b.width]
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Rows returns a copy of the grid, indexed [row][column].
func (b *Board) Rows() [][]color.RGBA {
	rows := make([][]color.RGBA, b.height)
	for y := range rows {
		rows[y] = make([]color.RGBA, b.width)
		copy(rows[y], b.row(y))
	}
	return rows
}

// Occupied returns the number of locked cells.
func (b *Board) Occupied() int {
	n := 0
	for _, c := range b.cells {
		if c.A != 0 {
			n++
		}
	}
	return n
}
