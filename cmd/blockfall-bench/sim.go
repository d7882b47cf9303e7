package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Frame is the simulated time that passes per scheduler update.
const Frame = time.Second / 60

// actionWeights biases the random player toward movement so pieces travel
// the whole well before landing.
var actionWeights = []struct {
	Action input.Action
	Weight int
}{
	{input.MoveLeft, 6},
	{input.MoveRight, 6},
	{input.Rotate, 3},
	{input.RotateBack, 2},
	{input.SoftDrop, 4},
	{input.HardDrop, 1},
}

// Totals aggregates results across every finished and running game.
type Totals struct {
	Games     int
	Pieces    int
	Locks     int
	Lines     int
	Score     int
	BestScore int
	Spawns    [tetris.ShapeCount]int
	Clears    [len(tetris.LineScores)]int
}

// Add folds one session's counters into t.
func (t *Totals) Add(e *tetris.Engine) {
	stats := e.Stats()
	t.Pieces += stats.TotalSpawned()
	t.Locks += stats.Locked()
	t.Lines += e.Lines()
	t.Score += e.Score()
	t.BestScore = max(t.BestScore, e.Score())
	for _, shape := range tetris.Shapes {
		t.Spawns[shape] += stats.Spawned(shape)
	}
	for lines := 1; lines < len(t.Clears); lines++ {
		t.Clears[lines] += stats.Clears(lines)
	}
}

// Session is one headless game driven by a random player.
type Session struct {
	Seed   uint64
	Engine *tetris.Engine
	rng    *rand.Rand
}

// Tuning holds the knobs shared by every session.
type Tuning struct {
	// ActionRate is the chance per frame that a session presses a key.
	ActionRate float64
}

// Sessions selects every session entity.
type Sessions = ecs.Query[struct{ *Session }]

// World holds every session in the run as an entity, plus the running totals.
type World struct {
	Storage *ecs.Storage
	Totals  *ecs.Singleton[Totals]
	Tuning  *ecs.Singleton[Tuning]
}

// NewWorld spawns n sessions. Session i draws pieces and inputs from seed+i
// so reruns with the same seed replay exactly.
func NewWorld(n int, seed uint64, randomizer func(seed uint64) tetris.Generator, opts ...tetris.Option) *World {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Session](registry)
	storage := ecs.NewStorage(registry)

	w := &World{
		Storage: storage,
		Totals:  ecs.NewSingleton[Totals](storage),
		Tuning:  ecs.NewSingleton(storage, Tuning{ActionRate: 0.25}),
	}
	for i := range n {
		s := seed + uint64(i)
		sessionOpts := append([]tetris.Option{tetris.WithGenerator(randomizer(s))}, opts...)
		storage.Spawn(Session{
			Seed:   s,
			Engine: tetris.New(sessionOpts...),
			rng:    rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		})
	}
	return w
}

// Sessions returns every session in spawn order.
func (w *World) Sessions() []*Session {
	var out []*Session
	for item := range ecs.NewView[struct{ *Session }](w.Storage).Values() {
		out = append(out, item.Session)
	}
	return out
}

// Finish folds the sessions still running into the totals.
func (w *World) Finish() {
	totals := w.Totals.Get()
	for _, s := range w.Sessions() {
		totals.Add(s.Engine)
	}
}

func (s *Session) randomAction() input.Action {
	total := 0
	for _, aw := range actionWeights {
		total += aw.Weight
	}
	n := s.rng.IntN(total)
	for _, aw := range actionWeights {
		if n < aw.Weight {
			return aw.Action
		}
		n -= aw.Weight
	}
	return input.None
}

// PlayerSystem presses a random key for some sessions each frame.
type PlayerSystem struct {
	Sessions Sessions
	Tuning   ecs.Singleton[Tuning]
}

func (p *PlayerSystem) Execute(frame *ecs.UpdateFrame) {
	rate := p.Tuning.Get().ActionRate
	for item := range p.Sessions.Values() {
		s := item.Session
		if s.rng.Float64() < rate {
			s.randomAction().Apply(s.Engine)
		}
	}
}

// GravitySystem advances every session by one frame.
type GravitySystem struct {
	Sessions Sessions
}

func (g *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	for item := range g.Sessions.Values() {
		item.Session.Engine.Tick(Frame)
	}
}

// RestartSystem records finished games and starts them over.
type RestartSystem struct {
	Sessions Sessions
	Totals   ecs.Singleton[Totals]
}

func (r *RestartSystem) Execute(frame *ecs.UpdateFrame) {
	totals := r.Totals.Get()
	for item := range r.Sessions.Values() {
		e := item.Session.Engine
		if !e.GameOver() {
			continue
		}
		totals.Games++
		totals.Add(e)
		e.Restart()
	}
}

// NewScheduler registers the bench systems in update order.
func NewScheduler(w *World) *ecs.Scheduler {
	scheduler := ecs.NewScheduler(w.Storage)
	scheduler.Register(&PlayerSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&RestartSystem{})
	return scheduler
}
