// Package input maps named keys to game actions and implements delayed
// auto-repeat for held keys. It knows nothing about any windowing library;
// front-ends translate their key events to the names used here.
package input

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Action -linecomment

// Action is a player intent.
type Action uint8

const (
	None       Action = iota // none
	MoveLeft                 // left
	MoveRight                // right
	SoftDrop                 // soft-drop
	HardDrop                 // hard-drop
	Rotate                   // rotate
	RotateBack               // rotate-back
	Pause                    // pause
	Restart                  // restart
	Quit                     // quit
	actionCount
)

// ParseAction resolves an action by its String form.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a := MoveLeft; a < actionCount; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// Repeats reports whether holding the action's key repeats it.
func (a Action) Repeats() bool {
	switch a {
	case MoveLeft, MoveRight, SoftDrop:
		return true
	}
	return false
}

// Apply performs the action on the engine. Quit and None do nothing; the
// front-end handles Quit itself.
func (a Action) Apply(e *tetris.Engine) {
	switch a {
	case MoveLeft:
		e.Move(tetris.Left)
	case MoveRight:
		e.Move(tetris.Right)
	case SoftDrop:
		e.SoftDrop()
	case HardDrop:
		e.HardDrop()
	case Rotate:
		e.Rotate()
	case RotateBack:
		e.RotateBack()
	case Pause:
		e.TogglePause()
	case Restart:
		e.Restart()
	}
}
