package tetris

import "github.com/kamstrup/intmap"

// Stats counts spawned shapes and clears by size over a session.
type Stats struct {
	spawns *intmap.Map[Shape, int]
	clears *intmap.Map[int, int]
	locks  int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Shape, int](ShapeCount),
		clears: intmap.New[int, int](len(LineScores)),
	}
}

func (s *Stats) recordSpawn(shape Shape) {
	n, _ := s.spawns.Get(shape)
	s.spawns.Put(shape, n+1)
}

func (s *Stats) recordLock(lines int) {
	s.locks++
	if lines > 0 {
		n, _ := s.clears.Get(lines)
		s.clears.Put(lines, n+1)
	}
}

func (s *Stats) reset() {
	for _, shape := range Shapes {
		s.spawns.Del(shape)
	}
	for lines := range LineScores {
		s.clears.Del(lines)
	}
	s.locks = 0
}

// Spawned returns how many pieces of shape have spawned.
func (s *Stats) Spawned(shape Shape) int {
	n, _ := s.spawns.Get(shape)
	return n
}

// TotalSpawned returns how many pieces have spawned.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, shape := range Shapes {
		total += s.Spawned(shape)
	}
	return total
}

// Clears returns how many locks removed exactly lines rows at once.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

// Locked returns how many pieces have locked.
func (s *Stats) Locked() int {
	return s.locks
}
