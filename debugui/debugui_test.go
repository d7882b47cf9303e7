package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(4, nil)
	assert.Zero(t, ps.AverageFrameTime())

	for _, dt := range []float32{0.010, 0.020, 0.030, 0.040} {
		ps.Record(dt)
	}
	assert.InDelta(t, 25.0, ps.AverageFrameTime(), 0.001)

	// The ring overwrites the oldest sample.
	ps.Record(0.050)
	assert.InDelta(t, 35.0, ps.AverageFrameTime(), 0.001)
}

func TestStatsSource(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) {}))
	scheduler.Once(0)

	var source StatsSource = scheduler
	stats := source.GetStats()
	assert.Equal(t, 1, stats.SystemCount)
	assert.EqualValues(t, 1, stats.Frames)
}

func TestPanelFunc(t *testing.T) {
	calls := 0
	var p Panel = PanelFunc(func() { calls++ })
	p.Render()
	assert.Equal(t, 1, calls)
}

type round struct {
	Number int
	Played time.Duration
	Over   bool
}

type seat struct {
	Name string
}

type player struct {
	Engine *tetris.Engine
	Best   *round
	Shape  tetris.Shape
	hidden int
}

func newSessionStorage(t *testing.T) (*ecs.Storage, []ecs.EntityId) {
	t.Helper()
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[round](registry)
	ecs.RegisterComponent[seat](registry)
	storage := ecs.NewStorage(registry)

	ids := []ecs.EntityId{
		storage.Spawn(round{Number: 1}),
		storage.Spawn(round{Number: 2}, seat{Name: "left"}),
		storage.Spawn(round{Number: 3}),
	}
	return storage, ids
}

func TestSessionsEntities(t *testing.T) {
	storage, ids := newSessionStorage(t)
	s := NewSessions(storage, 10)

	rows := s.Entities()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Contains(t, ids, row.ID)
	}

	s.SortBy(0, false)
	rows = s.Entities()
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i-1].ID, rows[i].ID)
	}

	s.SetFilter("SEAT")
	rows = s.Entities()
	require.Len(t, rows, 1)
	assert.Equal(t, ids[1], rows[0].ID)
	assert.Equal(t, []string{"debugui.round", "debugui.seat"}, rows[0].ComponentTypes)

	s.SetFilter("")
	storage.Spawn(round{Number: 4})
	assert.Len(t, s.Entities(), 4, "rows are rebuilt when entities are added")

	s.Select(ids[2])
	assert.Equal(t, ids[2], s.Selected())
}

func TestReflectionCache(t *testing.T) {
	fields := globalReflectionCache.GetFields(reflect.TypeFor[player]())
	require.Len(t, fields, 3, "unexported fields are skipped")

	assert.Equal(t, "Engine", fields[0].Name)
	assert.True(t, fields[0].IsPointer)
	assert.Equal(t, "Best", fields[1].Name)
	assert.True(t, fields[1].IsStruct)
	assert.False(t, fields[2].IsStruct)

	assert.Nil(t, globalReflectionCache.GetFields(reflect.TypeFor[int]()))
	assert.Equal(t, fields, globalReflectionCache.GetFields(reflect.TypeFor[player]()))
}

func TestFormatValue(t *testing.T) {
	format := func(v any) (string, bool) {
		return formatValue(reflect.ValueOf(v))
	}

	text, ok := format(1500 * time.Millisecond)
	assert.True(t, ok)
	assert.Equal(t, "1.5s", text)

	text, _ = format(tetris.T)
	assert.Equal(t, tetris.T.String(), text)

	text, _ = format(tetris.New(tetris.WithSeed(1)))
	assert.Contains(t, text, "score 0, lines 0, level 1")

	text, _ = format((*round)(nil))
	assert.Equal(t, "nil", text)

	_, ok = format(round{Number: 2})
	assert.False(t, ok, "structs with exported fields expand")

	_, ok = format(&round{Number: 2})
	assert.False(t, ok)

	text, _ = format(0.25)
	assert.Equal(t, "0.250", text)

	text, _ = format([]int{1, 2})
	assert.Equal(t, "[2 items]", text)
}
