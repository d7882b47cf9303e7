package tetris

import "math/rand/v2"

// Generator produces the sequence of shapes the engine spawns.
type Generator interface {
	Next() Shape
}

// Uniform draws every shape independently and uniformly. Repeats are
// possible.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a Uniform generator seeded with seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: newRand(seed)}
}

func (u *Uniform) Next() Shape {
	return Shape(u.rng.IntN(ShapeCount))
}

// Bag deals all seven shapes in a shuffled order before reshuffling, so no
// shape waits more than twelve spawns.
type Bag struct {
	rng  *rand.Rand
	bag  []Shape
	next int
}

// NewBag returns a Bag generator seeded with seed.
func NewBag(seed uint64) *Bag {
	return &Bag{rng: newRand(seed)}
}

func (b *Bag) Next() Shape {
	if b.next >= len(b.bag) {
		b.bag = append(b.bag[:0], Shapes[:]...)
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
		b.next = 0
	}
	s := b.bag[b.next]
	b.next++
	return s
}

// Sequence replays a fixed list of shapes, cycling when exhausted. It is
// meant for tests and scripted demos.
type Sequence struct {
	shapes []Shape
	next   int
}

// NewSequence returns a generator cycling through shapes. An empty list
// yields I forever.
func NewSequence(shapes ...Shape) *Sequence {
	return &Sequence{shapes: shapes}
}

func (s *Sequence) Next() Shape {
	if len(s.shapes) == 0 {
		return I
	}
	shape := s.shapes[s.next%len(s.shapes)]
	s.next++
	return shape
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
