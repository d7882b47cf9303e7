package tetris

import "time"

// LinesPerLevel is how many cleared lines advance the level by one.
const LinesPerLevel = 10

// LevelFor returns the level reached after clearing lines rows.
func LevelFor(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return 1 + lines/LinesPerLevel
}

// Gravity is a step schedule for the fall interval: Base at level 1, Step
// shorter for every level after, never below Floor.
type Gravity struct {
	Base  time.Duration
	Step  time.Duration
	Floor time.Duration
}

// DefaultGravity returns the stock schedule: 500ms, 50ms faster per level,
// 50ms minimum.
func DefaultGravity() Gravity {
	return Gravity{
		Base:  500 * time.Millisecond,
		Step:  50 * time.Millisecond,
		Floor: 50 * time.Millisecond,
	}
}

// Interval returns the fall interval for level.
func (g Gravity) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	floor := max(g.Floor, time.Millisecond)
	step := max(g.Step, 0)
	d := g.Base - time.Duration(level-1)*step
	if d < floor {
		return floor
	}
	return d
}

// LineScores maps a simultaneous clear of n rows to its base award.
var LineScores = [5]int{0, 100, 300, 500, 800}

// Scoring decides how many points a clear is worth.
type Scoring struct {
	// ScaleByLevel multiplies the table award by the level in effect when
	// the lines were cleared.
	ScaleByLevel bool
}

// DefaultScoring scales awards by level.
func DefaultScoring() Scoring {
	return Scoring{ScaleByLevel: true}
}

// Points returns the award for clearing lines rows at level.
func (s Scoring) Points(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	base := LineScores[min(lines, len(LineScores)-1)]
	if s.ScaleByLevel {
		return base * max(level, 1)
	}
	return base
}
