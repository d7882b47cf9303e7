package tetris

import (
	"image/color"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithBoardSize sets the board dimensions.
func WithBoardSize(width, height int) Option {
	return func(e *Engine) {
		e.board = NewBoard(width, height)
	}
}

// WithGenerator sets the shape source.
func WithGenerator(g Generator) Option {
	return func(e *Engine) {
		e.gen = g
	}
}

// WithSeed uses a Uniform generator seeded with seed.
func WithSeed(seed uint64) Option {
	return WithGenerator(NewUniform(seed))
}

// WithGravity sets the fall interval schedule.
func WithGravity(g Gravity) Option {
	return func(e *Engine) {
		e.gravity = g
	}
}

// WithScoring sets the scoring policy.
func WithScoring(s Scoring) Option {
	return func(e *Engine) {
		e.scoring = s
	}
}

// WithListener registers a listener for engine events.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listeners = append(e.listeners, l)
	}
}

// Engine owns one game session: the board, the falling piece, the queued next
// shape and the score. It is not safe for concurrent use; a single control
// loop drives it.
type Engine struct {
	board     *Board
	gen       Generator
	gravity   Gravity
	scoring   Scoring
	listeners []Listener
	stats     *Stats

	state State
	piece Piece
	next  Shape

	score int
	lines int
	level int

	elapsed time.Duration
}

// New creates an engine and spawns the first piece. Without options it uses
// a 10x20 board, a time-seeded uniform generator, the default gravity and
// level-scaled scoring.
func New(opts ...Option) *Engine {
	e := &Engine{
		gravity: DefaultGravity(),
		scoring: DefaultScoring(),
		stats:   newStats(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		e.board = NewBoard(DefaultWidth, DefaultHeight)
	}
	if e.gen == nil {
		e.gen = NewUniform(uint64(time.Now().UnixNano()))
	}
	e.start()
	return e
}

// AddListener registers l for future events.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) emit(ev Event) {
	if ev.Level == 0 {
		ev.Level = e.level
	}
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}

func (e *Engine) start() {
	e.board.Reset()
	e.stats.reset()
	e.score = 0
	e.lines = 0
	e.level = 1
	e.elapsed = 0
	e.next = e.gen.Next()
	e.spawn()
}

// spawn promotes the queued shape to the falling piece and queues a new one.
func (e *Engine) spawn() {
	e.state = Spawning
	e.piece = NewPiece(e.next, e.board.Width())
	e.next = e.gen.Next()
	e.stats.recordSpawn(e.piece.Shape)

	if !e.board.CanPlace(e.piece.Cells()) {
		e.state = GameOver
		e.emit(Event{Kind: EventGameOver, Shape: e.piece.Shape})
		return
	}
	e.state = Falling
	e.emit(Event{Kind: EventSpawn, Shape: e.piece.Shape})
}

// lock merges the falling piece into the board, clears lines and spawns the
// next piece. The gravity clock restarts for the new piece.
func (e *Engine) lock() {
	e.state = Locking
	e.elapsed = 0
	shape := e.piece.Shape
	e.board.Lock(e.piece.Cells(), e.piece.Color())
	e.emit(Event{Kind: EventLock, Shape: shape})
	e.clearLines(shape)
	e.spawn()
}

func (e *Engine) clearLines(shape Shape) {
	e.state = LineClearing
	cleared := e.board.ClearFullLines()
	e.stats.recordLock(cleared)
	if cleared == 0 {
		return
	}

	points := e.scoring.Points(cleared, e.level)
	e.score += points
	e.lines += cleared
	previous := e.level
	e.level = LevelFor(e.lines)

	e.emit(Event{Kind: EventLineClear, Shape: shape, Lines: cleared, Points: points, Level: e.level})
	if e.level > previous {
		e.emit(Event{Kind: EventLevelUp, Level: e.level})
	}
}

// step moves the piece down one row, locking it when blocked. Returns
// whether the piece moved.
func (e *Engine) step() bool {
	moved := e.piece.Moved(0, 1)
	if e.board.Fits(moved.Cells()) {
		e.piece = moved
		return true
	}
	e.lock()
	return false
}

// Move shifts the piece one column. Returns whether it moved.
func (e *Engine) Move(dir Direction) bool {
	if !e.state.acceptsInput() || (dir != Left && dir != Right) {
		return false
	}
	moved := e.piece.Moved(int(dir), 0)
	if !e.board.Fits(moved.Cells()) {
		return false
	}
	e.piece = moved
	e.emit(Event{Kind: EventMove, Shape: e.piece.Shape})
	return true
}

// Rotate turns the piece clockwise. A blocked rotation is rejected; there are
// no wall kicks.
func (e *Engine) Rotate() bool {
	return e.rotate(1)
}

// RotateBack turns the piece counter-clockwise under the same rules as
// Rotate.
func (e *Engine) RotateBack() bool {
	return e.rotate(-1)
}

func (e *Engine) rotate(steps int) bool {
	if !e.state.acceptsInput() {
		return false
	}
	rotated := e.piece.Rotated(steps)
	if !e.board.Fits(rotated.Cells()) {
		return false
	}
	e.piece = rotated
	e.emit(Event{Kind: EventRotate, Shape: e.piece.Shape})
	return true
}

// SoftDrop applies one gravity step immediately. Like a gravity tick, a
// blocked piece locks. Returns whether the piece moved.
func (e *Engine) SoftDrop() bool {
	if !e.state.acceptsInput() {
		return false
	}
	shape := e.piece.Shape
	moved := e.step()
	if moved {
		e.emit(Event{Kind: EventSoftDrop, Shape: shape})
	}
	return moved
}

// HardDrop drops the piece as far as it goes and locks it at once. Returns
// the number of rows travelled.
func (e *Engine) HardDrop() int {
	if !e.state.acceptsInput() {
		return 0
	}
	distance := 0
	for {
		moved := e.piece.Moved(0, 1)
		if !e.board.Fits(moved.Cells()) {
			break
		}
		e.piece = moved
		distance++
	}
	e.emit(Event{Kind: EventHardDrop, Shape: e.piece.Shape, Distance: distance})
	e.lock()
	return distance
}

// Tick advances the gravity clock by dt. When a fall interval has accumulated
// the piece drops one row. At most one row drops per tick; leftover time is
// kept below one interval. Ticks are ignored unless the engine is Falling.
func (e *Engine) Tick(dt time.Duration) {
	if !e.state.acceptsInput() || dt <= 0 {
		return
	}
	interval := e.FallInterval()
	e.elapsed += dt
	if e.elapsed < interval {
		return
	}
	e.elapsed -= interval
	if e.elapsed >= interval {
		e.elapsed = 0
	}
	e.step()
}

// TogglePause pauses a falling game or resumes a paused one. It has no effect
// once the game is over.
func (e *Engine) TogglePause() {
	switch e.state {
	case Falling:
		e.state = Paused
		e.emit(Event{Kind: EventPause})
	case Paused:
		e.state = Falling
		e.emit(Event{Kind: EventResume})
	}
}

// Restart discards the session and starts a new one from any state.
func (e *Engine) Restart() {
	e.emit(Event{Kind: EventRestart, Level: 1})
	e.start()
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Width and Height return the board dimensions in cells.
func (e *Engine) Width() int { return e.board.Width() }
func (e *Engine) Height() int { return e.board.Height() }

// Cell returns the locked color at (x, y) and whether the cell is occupied.
// Coordinates outside the board report unoccupied.
func (e *Engine) Cell(x, y int) (color.RGBA, bool) { return e.board.At(x, y) }

// Rows returns a copy of the locked cells, top row first.
func (e *Engine) Rows() [][]color.RGBA { return e.board.Rows() }

// Occupied returns how many cells hold locked blocks.
func (e *Engine) Occupied() int { return e.board.Occupied() }

// Piece returns a copy of the falling piece.
func (e *Engine) Piece() Piece { return e.piece }

// ActiveCells returns the absolute cells of the falling piece.
func (e *Engine) ActiveCells() []Point { return e.piece.Cells() }

// ActiveColor returns the color of the falling piece.
func (e *Engine) ActiveColor() color.RGBA { return e.piece.Color() }

// Next returns the queued shape.
func (e *Engine) Next() Shape { return e.next }

func (e *Engine) Score() int { return e.score }
func (e *Engine) Lines() int { return e.lines }
func (e *Engine) Level() int { return e.level }
func (e *Engine) Paused() bool { return e.state == Paused }
func (e *Engine) GameOver() bool { return e.state == GameOver }
func (e *Engine) Stats() *Stats { return e.stats }
func (e *Engine) Gravity() Gravity { return e.gravity }
func (e *Engine) Scoring() Scoring { return e.scoring }
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// FallInterval returns the gravity interval at the current level.
func (e *Engine) FallInterval() time.Duration {
	return e.gravity.Interval(e.level)
}

// GhostCells returns where the falling piece would land on a hard drop.
func (e *Engine) GhostCells() []Point {
	ghost := e.piece
	for {
		moved := ghost.Moved(0, 1)
		if !e.board.Fits(moved.Cells()) {
			break
		}
		ghost = moved
	}
	return ghost.Cells()
}
