package tetris

// State is the engine's position in the piece lifecycle.
//
// Spawning, Locking and LineClearing are transient: they are entered and left
// inside a single command. Between commands the engine rests in Falling,
// Paused or GameOver.
type State uint8

const (
	Spawning State = iota
	Falling
	Locking
	LineClearing
	Paused
	GameOver
)

// acceptsInput reports whether movement and gravity apply in s.
func (s State) acceptsInput() bool {
	return s == Falling
}

// Direction is a horizontal move.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)
