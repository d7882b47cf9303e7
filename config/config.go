// Package config loads game settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Randomizer names.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

type Config struct {
	Board      Board   `yaml:"board"`
	Gravity    Gravity `yaml:"gravity"`
	Scoring    Scoring `yaml:"scoring"`
	Randomizer string  `yaml:"randomizer"`
	// Seed fixes the piece sequence. Zero seeds from the clock.
	Seed    uint64  `yaml:"seed"`
	Input   Input   `yaml:"input"`
	Audio   Audio   `yaml:"audio"`
	Display Display `yaml:"display"`
}

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Gravity struct {
	Base  time.Duration `yaml:"base"`
	Step  time.Duration `yaml:"step"`
	Floor time.Duration `yaml:"floor"`
}

type Scoring struct {
	ScaleByLevel bool `yaml:"scale_by_level"`
}

type Input struct {
	RepeatDelay time.Duration `yaml:"repeat_delay"`
	RepeatRate  time.Duration `yaml:"repeat_rate"`
	// Keys maps an action name to the keys that trigger it. Actions left
	// out keep their default keys.
	Keys map[string][]string `yaml:"keys,omitempty"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Display struct {
	TileSize int  `yaml:"tile_size"`
	Ghost    bool `yaml:"ghost"`
}

// Default returns the stock settings.
func Default() Config {
	g := tetris.DefaultGravity()
	return Config{
		Board:      Board{Width: tetris.DefaultWidth, Height: tetris.DefaultHeight},
		Gravity:    Gravity{Base: g.Base, Step: g.Step, Floor: g.Floor},
		Scoring:    Scoring{ScaleByLevel: tetris.DefaultScoring().ScaleByLevel},
		Randomizer: RandomizerUniform,
		Input: Input{
			RepeatDelay: input.DefaultRepeatDelay,
			RepeatRate:  input.DefaultRepeatRate,
		},
		Audio:   Audio{Enabled: true, Volume: 0.5},
		Display: Display{TileSize: 30, Ghost: true},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports every out of range setting.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width < 4 || c.Board.Width > 64 {
		errs = append(errs, invalid("board width %d outside [4, 64]", c.Board.Width))
	}
	if c.Board.Height < 4 || c.Board.Height > 64 {
		errs = append(errs, invalid("board height %d outside [4, 64]", c.Board.Height))
	}
	if c.Gravity.Base <= 0 {
		errs = append(errs, invalid("gravity base must be positive, got %s", c.Gravity.Base))
	}
	if c.Gravity.Floor <= 0 || c.Gravity.Floor > c.Gravity.Base {
		errs = append(errs, invalid("gravity floor %s must be in (0, base]", c.Gravity.Floor))
	}
	if c.Gravity.Step < 0 {
		errs = append(errs, invalid("gravity step must not be negative, got %s", c.Gravity.Step))
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		errs = append(errs, invalid("unknown randomizer %q", c.Randomizer))
	}
	if c.Input.RepeatDelay < 0 || c.Input.RepeatRate < 0 {
		errs = append(errs, invalid("key repeat timings must not be negative"))
	}
	if _, err := input.ParseBindings(c.Input.Keys); err != nil {
		errs = append(errs, invalid("keys: %v", err))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, invalid("audio volume %g outside [0, 1]", c.Audio.Volume))
	}
	if c.Display.TileSize < 8 || c.Display.TileSize > 64 {
		errs = append(errs, invalid("tile size %d outside [8, 64]", c.Display.TileSize))
	}

	return errors.Join(errs...)
}

// Bindings returns the key bindings.
func (c Config) Bindings() input.Bindings {
	b, err := input.ParseBindings(c.Input.Keys)
	if err != nil {
		return input.DefaultBindings()
	}
	return b
}

// Generator returns the configured piece randomizer. A zero seed falls back
// to the clock.
func (c Config) Generator() tetris.Generator {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if c.Randomizer == RandomizerBag {
		return tetris.NewBag(seed)
	}
	return tetris.NewUniform(seed)
}

// EngineOptions converts the settings to engine options.
func (c Config) EngineOptions() []tetris.Option {
	return []tetris.Option{
		tetris.WithBoardSize(c.Board.Width, c.Board.Height),
		tetris.WithGravity(tetris.Gravity{Base: c.Gravity.Base, Step: c.Gravity.Step, Floor: c.Gravity.Floor}),
		tetris.WithScoring(tetris.Scoring{ScaleByLevel: c.Scoring.ScaleByLevel}),
		tetris.WithGenerator(c.Generator()),
	}
}
