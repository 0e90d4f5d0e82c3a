// Package config reads game settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var ErrInvalid = errors.New("config: invalid value")

const (
	VariantProcedural = "procedural"
	VariantStatic     = "static"
)

// Config holds everything the front-ends need to build and run a game.
type Config struct {
	Variant      string        // procedural or static
	Rows         int           // Procedural grid rows
	Cols         int           // Procedural grid columns
	CellSize     int           // Pixels per cell
	Enemies      int           // Number of wandering enemies
	Seed         uint64        // 0 picks a time based seed
	TPS          int           // Ticks per second of the frame loop
	GenSteps     int           // Generator steps per frame
	PlayInterval time.Duration // Minimum time between gameplay steps
	RunnerSpeed  float64       // Static variant player speed, pixels per second
	Sound        bool

	LogLevel  string
	LogFormat string // text or json
	LogFile   string // empty logs to stderr
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, applying defaults for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	r := reader{lookup: lookup}

	cfg := Config{
		Variant:      strings.ToLower(r.getString("MAZE_VARIANT", VariantProcedural)),
		Rows:         r.getInt("MAZE_ROWS", 20),
		Cols:         r.getInt("MAZE_COLS", 20),
		CellSize:     r.getInt("MAZE_CELL_SIZE", 30),
		Enemies:      r.getInt("MAZE_ENEMIES", 5),
		Seed:         r.getUint64("MAZE_SEED", 0),
		TPS:          r.getInt("MAZE_TPS", 60),
		GenSteps:     r.getInt("MAZE_GEN_STEPS", 1),
		PlayInterval: r.getDuration("MAZE_PLAY_INTERVAL", 100*time.Millisecond),
		RunnerSpeed:  r.getFloat("MAZE_RUNNER_SPEED", 120),
		Sound:        r.getBool("MAZE_SOUND", true),
		LogLevel:     r.getString("LOG_LEVEL", "info"),
		LogFormat:    strings.ToLower(r.getString("LOG_FORMAT", "text")),
		LogFile:      r.getString("LOG_FILE", ""),
	}
	if r.err != nil {
		return Config{}, r.err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Variant != VariantProcedural && c.Variant != VariantStatic:
		return fmt.Errorf("%w: MAZE_VARIANT=%q", ErrInvalid, c.Variant)
	case c.Rows < 1:
		return fmt.Errorf("%w: MAZE_ROWS=%d", ErrInvalid, c.Rows)
	case c.Cols < 1:
		return fmt.Errorf("%w: MAZE_COLS=%d", ErrInvalid, c.Cols)
	case c.CellSize < 4:
		return fmt.Errorf("%w: MAZE_CELL_SIZE=%d", ErrInvalid, c.CellSize)
	case c.Enemies < 0:
		return fmt.Errorf("%w: MAZE_ENEMIES=%d", ErrInvalid, c.Enemies)
	case c.TPS < 1:
		return fmt.Errorf("%w: MAZE_TPS=%d", ErrInvalid, c.TPS)
	case c.GenSteps < 1:
		return fmt.Errorf("%w: MAZE_GEN_STEPS=%d", ErrInvalid, c.GenSteps)
	case c.PlayInterval < 0:
		return fmt.Errorf("%w: MAZE_PLAY_INTERVAL=%s", ErrInvalid, c.PlayInterval)
	case c.RunnerSpeed <= 0:
		return fmt.Errorf("%w: MAZE_RUNNER_SPEED=%g", ErrInvalid, c.RunnerSpeed)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: LOG_FORMAT=%q", ErrInvalid, c.LogFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL=%q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Fields is the startup summary logged by the front-ends.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"variant":       c.Variant,
		"rows":          c.Rows,
		"cols":          c.Cols,
		"cell_size":     c.CellSize,
		"enemies":       c.Enemies,
		"seed":          c.Seed,
		"tps":           c.TPS,
		"gen_steps":     c.GenSteps,
		"play_interval": c.PlayInterval.String(),
		"runner_speed":  c.RunnerSpeed,
		"sound":         c.Sound,
	}
}

// reader keeps the first parse error so Load can report it once.
type reader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *reader) getString(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *reader) fail(key, value string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, value, err)
	}
}

func (r *reader) getInt(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) getUint64(key string, def uint64) uint64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *reader) getFloat(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return f
}

func (r *reader) getBool(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}

func (r *reader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return d
}
