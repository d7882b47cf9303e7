package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keyCodes maps binding key names to ebiten keys.
var keyCodes = map[string]ebiten.Key{
	"left":   ebiten.KeyLeft,
	"right":  ebiten.KeyRight,
	"up":     ebiten.KeyUp,
	"down":   ebiten.KeyDown,
	"space":  ebiten.KeySpace,
	"escape": ebiten.KeyEscape,
	"enter":  ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"shift":  ebiten.KeyShiftLeft,
	"ctrl":   ebiten.KeyControlLeft,
	",":      ebiten.KeyComma,
	".":      ebiten.KeyPeriod,
	"/":      ebiten.KeySlash,
	"a":      ebiten.KeyA,
	"b":      ebiten.KeyB,
	"c":      ebiten.KeyC,
	"d":      ebiten.KeyD,
	"e":      ebiten.KeyE,
	"f":      ebiten.KeyF,
	"g":      ebiten.KeyG,
	"h":      ebiten.KeyH,
	"i":      ebiten.KeyI,
	"j":      ebiten.KeyJ,
	"k":      ebiten.KeyK,
	"l":      ebiten.KeyL,
	"m":      ebiten.KeyM,
	"n":      ebiten.KeyN,
	"o":      ebiten.KeyO,
	"p":      ebiten.KeyP,
	"q":      ebiten.KeyQ,
	"r":      ebiten.KeyR,
	"s":      ebiten.KeyS,
	"t":      ebiten.KeyT,
	"u":      ebiten.KeyU,
	"v":      ebiten.KeyV,
	"w":      ebiten.KeyW,
	"x":      ebiten.KeyX,
	"y":      ebiten.KeyY,
	"z":      ebiten.KeyZ,
	"0":      ebiten.Key0,
	"1":      ebiten.Key1,
	"2":      ebiten.Key2,
	"3":      ebiten.Key3,
	"4":      ebiten.Key4,
	"5":      ebiten.Key5,
	"6":      ebiten.Key6,
	"7":      ebiten.Key7,
	"8":      ebiten.Key8,
	"9":      ebiten.Key9,
}

// keyHeld reports whether any key bound to the action is down. Names with no
// ebiten key are ignored.
func keyHeld(names []string) bool {
	for _, name := range names {
		if key, ok := keyCodes[name]; ok && ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
