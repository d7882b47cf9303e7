// Package sound turns engine events into short synthesized effects. It
// produces raw PCM; playback is left to the front-end.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = 44100

// Cue names an effect.
type Cue uint8

const (
	CueMove Cue = iota + 1
	CueRotate
	CueHardDrop
	CueLock
	CueLineClear
	CueTetris
	CueLevelUp
	CueGameOver
)

// Cues lists every cue.
var Cues = []Cue{CueMove, CueRotate, CueHardDrop, CueLock, CueLineClear, CueTetris, CueLevelUp, CueGameOver}

// CueFor returns the effect for an engine event, if it has one.
func CueFor(e tetris.Event) (Cue, bool) {
	switch e.Kind {
	case tetris.EventMove:
		return CueMove, true
	case tetris.EventRotate:
		return CueRotate, true
	case tetris.EventHardDrop:
		return CueHardDrop, true
	case tetris.EventLock:
		return CueLock, true
	case tetris.EventLineClear:
		if e.Lines >= 4 {
			return CueTetris, true
		}
		return CueLineClear, true
	case tetris.EventLevelUp:
		return CueLevelUp, true
	case tetris.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}

// Note is one square-wave tone.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Notes returns the melody of a cue.
func (c Cue) Notes() []Note {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch c {
	case CueMove:
		return []Note{{880, ms(20)}}
	case CueRotate:
		return []Note{{660, ms(15)}, {990, ms(15)}}
	case CueHardDrop:
		return []Note{{220, ms(40)}}
	case CueLock:
		return []Note{{330, ms(30)}}
	case CueLineClear:
		return []Note{{523, ms(60)}, {659, ms(60)}, {784, ms(90)}}
	case CueTetris:
		return []Note{{523, ms(60)}, {659, ms(60)}, {784, ms(60)}, {1047, ms(160)}}
	case CueLevelUp:
		return []Note{{784, ms(80)}, {988, ms(80)}, {1175, ms(120)}}
	case CueGameOver:
		return []Note{{392, ms(150)}, {330, ms(150)}, {262, ms(300)}}
	}
	return nil
}

// Render synthesizes notes as 16-bit little-endian stereo PCM at SampleRate.
// Volume is clamped to [0, 1]. Each note fades out linearly to avoid clicks.
func Render(notes []Note, volume float64) []byte {
	volume = math.Max(0, math.Min(1, volume))
	amplitude := volume * 0.3 * math.MaxInt16

	total := 0
	for _, n := range notes {
		total += samples(n.Duration)
	}
	buf := make([]byte, 0, total*4)

	for _, n := range notes {
		count := samples(n.Duration)
		for i := range count {
			var v float64
			if n.Freq > 0 {
				phase := math.Mod(float64(i)*n.Freq/SampleRate, 1)
				v = amplitude
				if phase >= 0.5 {
					v = -amplitude
				}
				v *= 1 - float64(i)/float64(count)
			}
			s := uint16(int16(v))
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}

func samples(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(int64(d) * SampleRate / int64(time.Second))
}

// Bank holds the rendered PCM of every cue.
type Bank map[Cue][]byte

// NewBank renders every cue at volume.
func NewBank(volume float64) Bank {
	b := make(Bank, len(Cues))
	for _, c := range Cues {
		b[c] = Render(c.Notes(), volume)
	}
	return b
}
