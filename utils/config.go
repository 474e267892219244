package utils

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Seed modes understood by the driver
const (
	SeedModeRandom   = "random"
	SeedModeNoise    = "noise"
	SeedModePatterns = "patterns"
)

// minInterval rejects durations that were most likely written as milliseconds
const minInterval = time.Millisecond

// Config holds the configuration for the game.
// EvolveInterval and FrameRate are time.Duration values, so JSON numbers are
// nanoseconds: 500ms is written as 500000000.
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	LiveProbability     float64       `json:"live_probability"`
	EvolveInterval      time.Duration `json:"evolve_interval"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"`
	SeedMode            string        `json:"seed_mode"`
	Workers             int           `json:"workers"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               25,
		Height:              25,
		LiveProbability:     0.5,
		EvolveInterval:      500 * time.Millisecond,
		FrameRate:           50 * time.Millisecond,
		SeedMode:            SeedModeRandom,
		Workers:             1,
		UseParallel:         false,
		UseMemoryPool:       true,
		AutoRestart:         false,
		StagnationThreshold: 5,
		MaxGenerations:      0, // unlimited
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid values in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be positive, got %dx%d", c.Width, c.Height)
	case !(c.LiveProbability >= 0 && c.LiveProbability <= 1):
		return errors.Wrapf(ErrInvalidConfig, "live_probability %v outside [0, 1]", c.LiveProbability)
	case c.EvolveInterval < minInterval:
		return errors.Wrapf(ErrInvalidConfig, "evolve_interval must be at least %v (values are nanoseconds), got %v", minInterval, c.EvolveInterval)
	case c.FrameRate < minInterval:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be at least %v (values are nanoseconds), got %v", minInterval, c.FrameRate)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}

	switch c.SeedMode {
	case SeedModeRandom, SeedModeNoise, SeedModePatterns:
		return nil
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown seed_mode %q", c.SeedMode)
	}
}

// PlanWorkers returns the number of goroutines the engine should plan with
func (c Config) PlanWorkers() int {
	if c.UseParallel {
		return runtime.NumCPU()
	}
	return max(1, c.Workers)
}

// EffectiveSeed returns Seed, or a time-based seed when Seed is zero
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
