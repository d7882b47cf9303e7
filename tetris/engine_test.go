package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (r *recorder) reset() {
	r.events = nil
}

func newTestEngine(t *testing.T, shapes ...Shape) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e := New(WithGenerator(NewSequence(shapes...)), WithListener(rec))
	require.Equal(t, Falling, e.State())
	return e, rec
}

func TestNewEngine(t *testing.T) {
	e, rec := newTestEngine(t, O, T, S)

	assert.Equal(t, O, e.Piece().Shape)
	assert.Equal(t, T, e.Next())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, 1, e.Level())
	assert.False(t, e.Paused())
	assert.False(t, e.GameOver())
	assert.Equal(t, []EventKind{EventSpawn}, rec.kinds())
	assert.ElementsMatch(t, []Point{{4, 0}, {5, 0}, {4, 1}, {5, 1}}, e.ActiveCells())
	assert.Equal(t, O.Color(), e.ActiveColor())
}

func TestMove(t *testing.T) {
	e, _ := newTestEngine(t, O)

	for range 4 {
		require.True(t, e.Move(Left))
	}
	assert.False(t, e.Move(Left))
	assert.Equal(t, -1, e.Piece().Origin.X)

	for range 8 {
		require.True(t, e.Move(Right))
	}
	assert.False(t, e.Move(Right))
	assert.False(t, e.Move(Direction(3)))

	e.board.Lock([]Point{{X: 7, Y: 0}}, red)
	assert.False(t, e.Move(Left))
}

func TestRotate(t *testing.T) {
	t.Run("cycles through states", func(t *testing.T) {
		e, rec := newTestEngine(t, T)
		rec.reset()

		require.True(t, e.Rotate())
		assert.Equal(t, 1, e.Piece().Rotation)
		require.True(t, e.RotateBack())
		assert.Equal(t, 0, e.Piece().Rotation)
		assert.Equal(t, []EventKind{EventRotate, EventRotate}, rec.kinds())
	})

	t.Run("blocked rotation is rejected without kicks", func(t *testing.T) {
		e, rec := newTestEngine(t, I)
		e.board.Lock([]Point{{X: 6, Y: 1}}, red)
		before := e.Piece()
		rec.reset()

		assert.False(t, e.Rotate())
		assert.Equal(t, before, e.Piece())
		assert.Empty(t, rec.events)
	})
	t.Run("rotation needing the row above the well waits one fall", func(t *testing.T) {
		e, _ := newTestEngine(t, S, S)
		spawned := e.Piece()

		assert.False(t, e.Rotate(), "the second S frame reaches row -1 at spawn")
		assert.Equal(t, spawned, e.Piece())

		e.Tick(e.FallInterval())
		require.Equal(t, spawned.Origin.Y+1, e.Piece().Origin.Y)
		assert.True(t, e.Rotate())
		for _, p := range e.ActiveCells() {
			assert.GreaterOrEqual(t, p.Y, 0)
		}
	})
}

func TestReadAccessors(t *testing.T) {
	e, _ := newTestEngine(t, O, O)
	e.board.Lock([]Point{{X: 0, Y: 19}, {X: 9, Y: 19}}, red)

	assert.Equal(t, 10, e.Width())
	assert.Equal(t, 20, e.Height())
	assert.Equal(t, 2, e.Occupied())

	c, ok := e.Cell(0, 19)
	assert.True(t, ok)
	assert.Equal(t, red, c)
	_, ok = e.Cell(1, 19)
	assert.False(t, ok)
	_, ok = e.Cell(-1, 0)
	assert.False(t, ok, "outside the board")

	rows := e.Rows()
	require.Len(t, rows, 20)
	rows[19][1] = red
	rows[0] = nil
	_, ok = e.Cell(1, 19)
	assert.False(t, ok, "rows are a copy")
	assert.Equal(t, 2, e.Occupied())
	assert.Len(t, e.Rows()[0], 10)
}

func TestHardDrop(t *testing.T) {
	e, rec := newTestEngine(t, O, T)
	rec.reset()

	assert.Equal(t, 18, e.HardDrop())
	assert.Equal(t, 4, e.board.Occupied())
	for _, p := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.False(t, e.board.IsCellFree(p.X, p.Y), "cell %v", p)
	}
	assert.Equal(t, T, e.Piece().Shape)
	assert.Equal(t, []EventKind{EventHardDrop, EventLock, EventSpawn}, rec.kinds())
	assert.Equal(t, 18, rec.events[0].Distance)
	assert.Equal(t, 0, e.Score())
}

func TestSoftDrop(t *testing.T) {
	e, _ := newTestEngine(t, O, T)

	for i := range 18 {
		require.True(t, e.SoftDrop(), "drop %d", i)
	}
	assert.Equal(t, 0, e.board.Occupied())

	e.Tick(e.FallInterval() / 2)
	require.Positive(t, e.Elapsed())

	assert.False(t, e.SoftDrop())
	assert.Equal(t, 4, e.board.Occupied())
	assert.Equal(t, T, e.Piece().Shape)
	assert.Zero(t, e.Elapsed(), "the next piece gets a fresh gravity clock")
}

func TestGhostCells(t *testing.T) {
	e, _ := newTestEngine(t, O)
	assert.ElementsMatch(t, []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}}, e.GhostCells())

	fillRow(e.board, 19)
	assert.ElementsMatch(t, []Point{{4, 17}, {5, 17}, {4, 18}, {5, 18}}, e.GhostCells())
}

func TestScoring(t *testing.T) {
	t.Run("no lines", func(t *testing.T) {
		e, _ := newTestEngine(t, O)
		e.HardDrop()
		assert.Equal(t, 0, e.Score())
		assert.Equal(t, 0, e.Lines())
	})

	t.Run("single", func(t *testing.T) {
		e, rec := newTestEngine(t, O)
		fillRow(e.board, 19, 4, 5)
		rec.reset()

		e.HardDrop()
		assert.Equal(t, 100, e.Score())
		assert.Equal(t, 1, e.Lines())
		assert.Equal(t, 2, e.board.Occupied())
		assert.Equal(t, []EventKind{EventHardDrop, EventLock, EventLineClear, EventSpawn}, rec.kinds())
		assert.Equal(t, 1, rec.events[2].Lines)
		assert.Equal(t, 100, rec.events[2].Points)
	})

	t.Run("tetris", func(t *testing.T) {
		e, _ := newTestEngine(t, I)
		for y := 16; y < 20; y++ {
			fillRow(e.board, y, 5)
		}

		e.HardDrop()
		assert.Equal(t, 800, e.Score())
		assert.Equal(t, 4, e.Lines())
		assert.Equal(t, 0, e.board.Occupied())
		assert.Equal(t, 1, e.Stats().Clears(4))
	})

	t.Run("scaled by level", func(t *testing.T) {
		e, _ := newTestEngine(t, O)
		e.lines, e.level = 20, 3
		fillRow(e.board, 19, 4, 5)

		e.HardDrop()
		assert.Equal(t, 300, e.Score())
	})

	t.Run("unscaled", func(t *testing.T) {
		e := New(WithGenerator(NewSequence(O)), WithScoring(Scoring{ScaleByLevel: false}))
		e.lines, e.level = 20, 3
		fillRow(e.board, 19, 4, 5)

		e.HardDrop()
		assert.Equal(t, 100, e.Score())
	})
}

func TestLevelUp(t *testing.T) {
	e, rec := newTestEngine(t, O)
	e.lines = 9
	fillRow(e.board, 19, 4, 5)
	rec.reset()

	e.HardDrop()
	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, []EventKind{EventHardDrop, EventLock, EventLineClear, EventLevelUp, EventSpawn}, rec.kinds())
	assert.Equal(t, 2, rec.events[3].Level)
	assert.Less(t, e.FallInterval(), DefaultGravity().Base)
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	e, rec := newTestEngine(t, O)
	e.board.Lock([]Point{{X: 4, Y: 0}}, red)
	rec.reset()

	e.HardDrop()
	assert.Equal(t, GameOver, e.State())
	assert.True(t, e.GameOver())
	assert.Equal(t, []EventKind{EventHardDrop, EventLock, EventGameOver}, rec.kinds())

	rec.reset()
	before := e.board.Rows()
	piece := e.Piece()
	assert.False(t, e.Move(Left))
	assert.False(t, e.Rotate())
	assert.False(t, e.SoftDrop())
	assert.Equal(t, 0, e.HardDrop())
	e.Tick(time.Hour)
	e.TogglePause()
	assert.Equal(t, GameOver, e.State())
	assert.Equal(t, before, e.board.Rows())
	assert.Equal(t, piece, e.Piece())
	assert.Empty(t, rec.events)
}

func TestTick(t *testing.T) {
	e, _ := newTestEngine(t, O)
	start := e.Piece().Origin.Y

	e.Tick(499 * time.Millisecond)
	assert.Equal(t, start, e.Piece().Origin.Y)

	e.Tick(time.Millisecond)
	assert.Equal(t, start+1, e.Piece().Origin.Y)

	e.Tick(10 * time.Second)
	assert.Equal(t, start+2, e.Piece().Origin.Y)
	assert.Less(t, e.Elapsed(), e.FallInterval())

	e.Tick(0)
	e.Tick(-time.Second)
	assert.Equal(t, start+2, e.Piece().Origin.Y)
}

func TestTickLocksAtFloor(t *testing.T) {
	e, _ := newTestEngine(t, O, T)
	for range 18 {
		e.Tick(e.FallInterval())
	}
	assert.Equal(t, 0, e.board.Occupied())

	e.Tick(e.FallInterval())
	assert.Equal(t, 4, e.board.Occupied())
	assert.Equal(t, T, e.Piece().Shape)
}

func TestPause(t *testing.T) {
	e, rec := newTestEngine(t, O)
	rec.reset()

	e.TogglePause()
	require.True(t, e.Paused())
	piece := e.Piece()
	for range 10 {
		e.Tick(time.Hour)
	}
	assert.False(t, e.Move(Left))
	assert.False(t, e.Rotate())
	assert.False(t, e.SoftDrop())
	assert.Equal(t, 0, e.HardDrop())
	assert.Equal(t, piece, e.Piece())
	assert.Equal(t, 0, e.board.Occupied())

	e.TogglePause()
	require.False(t, e.Paused())
	e.Tick(e.FallInterval())
	assert.Equal(t, piece.Origin.Y+1, e.Piece().Origin.Y)
	assert.Equal(t, []EventKind{EventPause, EventResume}, rec.kinds())
}

func TestRestart(t *testing.T) {
	e, rec := newTestEngine(t, O)
	e.board.Lock([]Point{{X: 4, Y: 0}}, red)
	fillRow(e.board, 10)
	e.score, e.lines, e.level = 1200, 14, 2
	e.HardDrop()
	require.True(t, e.GameOver())
	rec.reset()

	e.Restart()
	assert.Equal(t, Falling, e.State())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 0, e.board.Occupied())
	assert.Equal(t, 1, e.Stats().TotalSpawned())
	assert.Equal(t, []EventKind{EventRestart, EventSpawn}, rec.kinds())
}

func TestRestartWhilePaused(t *testing.T) {
	e, _ := newTestEngine(t, O)
	e.TogglePause()
	e.Restart()
	assert.Equal(t, Falling, e.State())
}

func TestIndependentSessions(t *testing.T) {
	a := New(WithSeed(7))
	b := New(WithSeed(7))
	assert.Equal(t, a.Piece().Shape, b.Piece().Shape)
	assert.Equal(t, a.Next(), b.Next())

	a.HardDrop()
	assert.Equal(t, 4, a.board.Occupied())
	assert.Equal(t, 0, b.board.Occupied())
	assert.Equal(t, 1, b.Stats().TotalSpawned())
}

func TestStats(t *testing.T) {
	e, _ := newTestEngine(t, O, T, O)
	e.HardDrop()
	e.HardDrop()

	stats := e.Stats()
	assert.Equal(t, 3, stats.TotalSpawned())
	assert.Equal(t, 2, stats.Spawned(O))
	assert.Equal(t, 1, stats.Spawned(T))
	assert.Equal(t, 2, stats.Locked())
	assert.Equal(t, 0, stats.Clears(1))
}

func TestSnapshot(t *testing.T) {
	e, _ := newTestEngine(t, O, T)
	e.board.Lock([]Point{{X: 0, Y: 19}}, red)

	snap := e.Snapshot()
	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Equal(t, O, snap.Shape)
	assert.Equal(t, T, snap.Next)
	assert.Equal(t, Falling, snap.State)
	assert.Equal(t, e.FallInterval(), snap.Interval)

	snap.Cells[0][0] = blue
	assert.True(t, e.board.IsCellFree(0, 0))

	grid := snap.Composite()
	assert.Equal(t, red, grid[19][0])
	assert.Equal(t, O.Color(), grid[0][4])
	assert.Equal(t, O.Color(), grid[1][5])
}
