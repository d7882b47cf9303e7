package input

import "time"

// Default auto-repeat timing for held keys.
const (
	DefaultRepeatDelay = 200 * time.Millisecond
	DefaultRepeatRate  = 50 * time.Millisecond
)

// Repeater turns a held key into discrete presses: one on the initial press,
// then one every Rate once the key has been held for Delay. A zero Rate
// disables repetition.
type Repeater struct {
	Delay time.Duration
	Rate  time.Duration

	held    bool
	elapsed time.Duration
}

// Update feeds the key state for one frame and returns how many presses the
// frame produces.
func (r *Repeater) Update(down bool, dt time.Duration) int {
	if !down {
		r.held = false
		r.elapsed = 0
		return 0
	}
	if !r.held {
		r.held = true
		r.elapsed = 0
		return 1
	}
	if r.Rate <= 0 {
		return 0
	}
	r.elapsed += dt
	if r.elapsed >= r.Delay {
		r.elapsed -= r.Rate
		return 1
	}
	return 0
}

// Controller tracks a repeater per action and converts held actions into the
// ordered list of actions to apply each frame.
type Controller struct {
	repeaters [actionCount]Repeater
}

// NewController creates a controller. Only movement and soft drop repeat.
func NewController(delay, rate time.Duration) *Controller {
	c := &Controller{}
	for a := range c.repeaters {
		c.repeaters[a].Delay = delay
		if Action(a).Repeats() {
			c.repeaters[a].Rate = rate
		}
	}
	return c
}

// Update polls held for every action and returns the actions that fire this
// frame, in declaration order.
func (c *Controller) Update(held func(Action) bool, dt time.Duration) []Action {
	var fired []Action
	for a := MoveLeft; a < actionCount; a++ {
		for range c.repeaters[a].Update(held(a), dt) {
			fired = append(fired, a)
		}
	}
	return fired
}

// Reset forgets every held key. Keys still down fire as fresh presses on the
// next Update.
func (c *Controller) Reset() {
	for a := range c.repeaters {
		c.repeaters[a].held = false
		c.repeaters[a].elapsed = 0
	}
}
