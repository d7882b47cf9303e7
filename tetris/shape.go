package tetris

import "image/color"

// Shape identifies one of the seven standard pieces.
type Shape uint8

const (
	I Shape = iota
	O
	T
	S
	Z
	J
	L
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

// Shapes lists every shape in catalog order.
var Shapes = [ShapeCount]Shape{I, O, T, S, Z, J, L}

// Point is a grid coordinate. X is the column, Y is the row; row 0 is the top.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// frameSize is the side of the square frame rotation states are drawn in.
const frameSize = 5

type shapeDef struct {
	color     color.RGBA
	rotations [][]Point
}

var catalog [ShapeCount]shapeDef

func init() {
	frames := [ShapeCount][][frameSize]string{
		I: {
			{".....", "..#..", "..#..", "..#..", "..#.."},
			{".....", ".....", "####.", ".....", "....."},
		},
		O: {
			{".....", ".....", ".##..", ".##..", "....."},
		},
		T: {
			{".....", ".....", ".#...", "###..", "....."},
			{".....", ".....", ".#...", ".##..", ".#..."},
			{".....", ".....", ".....", "###..", ".#..."},
			{".....", ".....", ".#...", "##...", ".#..."},
		},
		S: {
			{".....", ".....", ".##..", "##...", "....."},
			{".....", ".#...", ".##..", "..#..", "....."},
		},
		Z: {
			{".....", ".....", "##...", ".##..", "....."},
			{".....", "..#..", ".##..", ".#...", "....."},
		},
		J: {
			{".....", ".#...", ".#...", "##...", "....."},
			{".....", ".....", "#....", "###..", "....."},
			{".....", ".##..", ".#...", ".#...", "....."},
			{".....", ".....", "###..", "..#..", "....."},
		},
		L: {
			{".....", "..#..", "..#..", ".##..", "....."},
			{".....", ".....", "###..", "#....", "....."},
			{".....", "##...", ".#...", ".#...", "....."},
			{".....", ".....", "..#..", "###..", "....."},
		},
	}

	colors := [ShapeCount]color.RGBA{
		I: {R: 0, G: 255, B: 255, A: 255},
		O: {R: 255, G: 255, B: 0, A: 255},
		T: {R: 180, G: 0, B: 255, A: 255},
		S: {R: 0, G: 255, B: 0, A: 255},
		Z: {R: 255, G: 0, B: 0, A: 255},
		J: {R: 0, G: 120, B: 255, A: 255},
		L: {R: 255, G: 165, B: 0, A: 255},
	}

	for shape, states := range frames {
		def := shapeDef{color: colors[shape]}
		for _, frame := range states {
			var cells []Point
			for y, row := range frame {
				for x, ch := range row {
					if ch == '#' {
						cells = append(cells, Point{X: x, Y: y})
					}
				}
			}
			def.rotations = append(def.rotations, cells)
		}
		catalog[shape] = def
	}
}

// Valid reports whether s names a catalog shape.
func (s Shape) Valid() bool {
	return s < ShapeCount
}

// Color returns the display color of the shape.
func (s Shape) Color() color.RGBA {
	return catalog[s].color
}

// Rotations returns the number of distinct rotation states of the shape.
func (s Shape) Rotations() int {
	return len(catalog[s].rotations)
}

// NormalizeRotation maps any rotation index, negative included, onto
// [0, s.Rotations()).
func (s Shape) NormalizeRotation(rotation int) int {
	n := s.Rotations()
	rotation %= n
	if rotation < 0 {
		rotation += n
	}
	return rotation
}

// Offsets returns the occupied cells of the given rotation relative to the
// piece origin. The rotation is normalized first. The returned slice is a
// copy.
func (s Shape) Offsets(rotation int) []Point {
	src := catalog[s].rotations[s.NormalizeRotation(rotation)]
	out := make([]Point, len(src))
	copy(out, src)
	return out
}

// SpawnOrigin returns where a new piece of this shape appears on a board of
// the given width: horizontally centered, with its topmost cell on row 0.
func (s Shape) SpawnOrigin(width int) Point {
	top := frameSize
	for _, p := range catalog[s].rotations[0] {
		top = min(top, p.Y)
	}
	return Point{X: width/2 - 2, Y: -top}
}
