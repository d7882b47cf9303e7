package tetris

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeOffsets(t *testing.T) {
	wantRotations := map[Shape]int{I: 2, O: 1, T: 4, S: 2, Z: 2, J: 4, L: 4}

	for _, shape := range Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			require.Equal(t, wantRotations[shape], shape.Rotations())

			for r := -shape.Rotations(); r < 2*shape.Rotations(); r++ {
				assert.Len(t, shape.Offsets(r), 4, "rotation %d", r)
			}

			p := Piece{Shape: shape}
			start := p.Cells()
			for range shape.Rotations() {
				p = p.Rotated(1)
			}
			assert.Equal(t, start, p.Cells())
			assert.Equal(t, 0, p.Rotation)
		})
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		shape    Shape
		rotation int
		want     int
	}{
		{T, 0, 0},
		{T, 5, 1},
		{T, -1, 3},
		{I, 3, 1},
		{I, -2, 0},
		{O, 7, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.shape, tt.rotation), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NormalizeRotation(tt.rotation))
		})
	}
}

func TestOffsetsReturnsCopy(t *testing.T) {
	cells := T.Offsets(0)
	cells[0] = Point{X: 99, Y: 99}
	assert.NotEqual(t, cells[0], T.Offsets(0)[0])
}

func TestSpawnOrigin(t *testing.T) {
	for _, shape := range Shapes {
		p := NewPiece(shape, DefaultWidth)
		top, left, right := DefaultHeight, DefaultWidth, -1
		for _, c := range p.Cells() {
			top = min(top, c.Y)
			left = min(left, c.X)
			right = max(right, c.X)
		}
		if top != 0 {
			t.Errorf("%s: expected topmost cell on row 0, got %d", shape, top)
		}
		if left < 2 || right > 7 {
			t.Errorf("%s: expected a centered spawn, got columns %d..%d", shape, left, right)
		}
	}
}

func TestShapeColorsDistinct(t *testing.T) {
	seen := make(map[[4]uint8]Shape)
	for _, shape := range Shapes {
		c := shape.Color()
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, ok := seen[key]; ok {
			t.Errorf("%s and %s share a color", shape, other)
		}
		seen[key] = shape
		assert.Equal(t, uint8(255), c.A)
	}
}
