package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Bindings maps key names to actions. Key names are lower case and
// front-end neutral: letters, digits, "left", "right", "up", "down",
// "space", "escape", "enter".
type Bindings map[string]Action

// DefaultBindings returns the stock layout: arrows to move, soft drop and
// rotate, Z/X to rotate either way, space to hard drop, P to pause, R to
// restart, Q or Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		"left":   MoveLeft,
		"right":  MoveRight,
		"down":   SoftDrop,
		"up":     Rotate,
		"z":      Rotate,
		"x":      RotateBack,
		"space":  HardDrop,
		"p":      Pause,
		"r":      Restart,
		"q":      Quit,
		"escape": Quit,
	}
}

// ParseBindings builds bindings from an action name to key names table, as
// found in configuration files. Actions missing from the table keep their
// default keys. A key bound to two actions is an error.
func ParseBindings(table map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for _, name := range slices.Sorted(maps.Keys(table)) {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		maps.DeleteFunc(b, func(_ string, a Action) bool { return a == action })
	}
	for _, name := range slices.Sorted(maps.Keys(table)) {
		action, _ := ParseAction(name)
		for _, key := range table[name] {
			key = normalizeKey(key)
			if key == "" {
				return nil, fmt.Errorf("empty key for action %s", action)
			}
			if prev, ok := b[key]; ok && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, action)
			}
			b[key] = action
		}
	}
	return b, nil
}

func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "spacebar" {
		return "space"
	}
	if key == "esc" {
		return "escape"
	}
	return key
}

// Lookup returns the action bound to key, or None.
func (b Bindings) Lookup(key string) Action {
	return b[normalizeKey(key)]
}

// Keys returns the sorted key names bound to action.
func (b Bindings) Keys(action Action) []string {
	var keys []string
	for key, a := range b {
		if a == action {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// Legend returns one line per bound action, in action order, naming the
// action and its keys: "rotate      up/z".
func (b Bindings) Legend() []string {
	var lines []string
	for a := MoveLeft; a < actionCount; a++ {
		keys := b.Keys(a)
		if len(keys) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-12s%s", a, strings.Join(keys, "/")))
	}
	return lines
}
