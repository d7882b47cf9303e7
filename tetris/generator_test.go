package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformDeterministic(t *testing.T) {
	a, b := NewUniform(42), NewUniform(42)
	seen := make(map[Shape]bool)
	for range 500 {
		sa, sb := a.Next(), b.Next()
		assert.Equal(t, sa, sb)
		assert.True(t, sa.Valid())
		seen[sa] = true
	}
	assert.Len(t, seen, ShapeCount)
}

func TestBagDealsEveryShape(t *testing.T) {
	bag := NewBag(3)
	for round := range 5 {
		seen := make(map[Shape]int)
		for range ShapeCount {
			seen[bag.Next()]++
		}
		for _, shape := range Shapes {
			if seen[shape] != 1 {
				t.Errorf("round %d: %s dealt %d times", round, shape, seen[shape])
			}
		}
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence(S, Z)
	assert.Equal(t, []Shape{S, Z, S, Z}, []Shape{seq.Next(), seq.Next(), seq.Next(), seq.Next()})

	empty := NewSequence()
	assert.Equal(t, I, empty.Next())
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	e := New(WithGenerator(NewSequence(O)), WithListener(&q))
	assert.Equal(t, 1, q.Len())

	e.HardDrop()
	events := q.Drain()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, EventSpawn, events[0].Kind)
	assert.Equal(t, EventSpawn, events[len(events)-1].Kind)
	assert.Equal(t, "EventHardDrop", events[1].Kind.String())
}
