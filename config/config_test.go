package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Gravity.Base)
	assert.True(t, cfg.Scoring.ScaleByLevel)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
board:
  width: 12
gravity:
  base: 800ms
  step: 60ms
scoring:
  scale_by_level: false
randomizer: bag
seed: 99
input:
  repeat_delay: 150ms
  keys:
    left: [a, left]
    hard-drop: [w]
audio:
  enabled: false
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 800*time.Millisecond, cfg.Gravity.Base)
	assert.Equal(t, 60*time.Millisecond, cfg.Gravity.Step)
	assert.Equal(t, 50*time.Millisecond, cfg.Gravity.Floor)
	assert.False(t, cfg.Scoring.ScaleByLevel)
	assert.Equal(t, RandomizerBag, cfg.Randomizer)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 150*time.Millisecond, cfg.Input.RepeatDelay)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume)

	b := cfg.Bindings()
	assert.Equal(t, input.MoveLeft, b.Lookup("a"))
	assert.Equal(t, input.HardDrop, b.Lookup("w"))
	assert.Equal(t, input.None, b.Lookup("space"))
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("board:\n  wdth: 12\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow board", func(c *Config) { c.Board.Width = 3 }},
		{"tall board", func(c *Config) { c.Board.Height = 100 }},
		{"zero gravity", func(c *Config) { c.Gravity.Base = 0 }},
		{"floor above base", func(c *Config) { c.Gravity.Floor = time.Second }},
		{"negative step", func(c *Config) { c.Gravity.Step = -time.Millisecond }},
		{"randomizer", func(c *Config) { c.Randomizer = "history" }},
		{"repeat", func(c *Config) { c.Input.RepeatRate = -1 }},
		{"keys", func(c *Config) { c.Input.Keys = map[string][]string{"hold": {"c"}} }},
		{"volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"tile size", func(c *Config) { c.Display.TileSize = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Board.Width = 1
	cfg.Audio.Volume = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board width")
	assert.Contains(t, err.Error(), "audio volume")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\nrandomizer: uniform\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.Seed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 2\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 1234
	cfg.Input.Keys = map[string][]string{"pause": {"f"}}

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	assert.Contains(t, buf.String(), "base: 500ms")

	back, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Board.Width, cfg.Board.Height = 8, 16
	cfg.Seed = 3
	cfg.Scoring.ScaleByLevel = false

	e := tetris.New(cfg.EngineOptions()...)
	assert.Equal(t, 8, e.Width())
	assert.Equal(t, 16, e.Height())
	assert.False(t, e.Scoring().ScaleByLevel)
	assert.Equal(t, cfg.Gravity.Base, e.FallInterval())

	a, b := cfg.Generator(), cfg.Generator()
	for range 20 {
		assert.Equal(t, a.Next(), b.Next())
	}

	cfg.Randomizer = RandomizerBag
	_, ok := cfg.Generator().(*tetris.Bag)
	assert.True(t, ok)
}
