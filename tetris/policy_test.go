package tetris

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{155, 16},
		{-4, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("lines=%d", tt.lines), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.lines))
		})
	}

	for lines := range 1000 {
		if got, want := LevelFor(lines), 1+lines/10; got != want {
			t.Fatalf("LevelFor(%d) = %d, want %d", lines, got, want)
		}
	}
}

func TestGravityInterval(t *testing.T) {
	g := DefaultGravity()

	assert.Equal(t, 500*time.Millisecond, g.Interval(1))
	assert.Equal(t, 300*time.Millisecond, g.Interval(5))
	assert.Equal(t, 50*time.Millisecond, g.Interval(10))
	assert.Equal(t, 50*time.Millisecond, g.Interval(50))
	assert.Equal(t, 500*time.Millisecond, g.Interval(0))

	prev := g.Interval(1)
	for level := 2; level < 100; level++ {
		cur := g.Interval(level)
		if cur > prev {
			t.Fatalf("interval grew from %v to %v at level %d", prev, cur, level)
		}
		if cur < g.Floor {
			t.Fatalf("interval %v below floor at level %d", cur, level)
		}
		prev = cur
	}
}

func TestGravityZeroFloor(t *testing.T) {
	g := Gravity{Base: 100 * time.Millisecond, Step: time.Second}
	assert.Equal(t, time.Millisecond, g.Interval(3))
}

func TestScoringPoints(t *testing.T) {
	scaled := DefaultScoring()
	flat := Scoring{}

	for lines, want := range LineScores {
		assert.Equal(t, want, scaled.Points(lines, 1), "lines %d", lines)
		assert.Equal(t, want*4, scaled.Points(lines, 4), "lines %d", lines)
		assert.Equal(t, want, flat.Points(lines, 4), "lines %d", lines)
	}
	assert.Equal(t, 800, flat.Points(6, 1))
	assert.Equal(t, 0, flat.Points(-1, 1))
}
