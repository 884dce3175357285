package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Defaults
const (
	MaxBalls    = 50
	TrailLength = 25
	Friction    = 0.99
	Gravity     = 0.2
	GravityStep = 0.1
	MinRadius   = 10.0
	MaxRadius   = 30.0
	MaxSpeed    = 2.0
	BallAlpha   = 0.8
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable simulation parameters
type Config struct {
	MaxBalls    int     `json:"max_balls"`
	TrailLength int     `json:"trail_length"`
	Friction    float64 `json:"friction"`
	Gravity     float64 `json:"gravity"`
	GravityStep float64 `json:"gravity_step"`
	MinRadius   float64 `json:"min_radius"`
	MaxRadius   float64 `json:"max_radius"`
	MaxSpeed    float64 `json:"max_speed"` // dx, dy drawn from [-MaxSpeed, MaxSpeed]
	Alpha       float64 `json:"alpha"`
}

// DefaultConfig returns the stock settings
func DefaultConfig() Config {
	return Config{
		MaxBalls:    MaxBalls,
		TrailLength: TrailLength,
		Friction:    Friction,
		Gravity:     Gravity,
		GravityStep: GravityStep,
		MinRadius:   MinRadius,
		MaxRadius:   MaxRadius,
		MaxSpeed:    MaxSpeed,
		Alpha:       BallAlpha,
	}
}

// LoadConfig reads a JSON file over the defaults. Missing keys keep their default value.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	switch {
	case c.MaxBalls < 0:
		return fmt.Errorf("%w: max_balls %d is negative", ErrInvalidConfig, c.MaxBalls)
	case c.TrailLength < 1:
		return fmt.Errorf("%w: trail_length %d must be at least 1", ErrInvalidConfig, c.TrailLength)
	case c.Gravity < 0:
		return fmt.Errorf("%w: gravity %g is negative", ErrInvalidConfig, c.Gravity)
	case c.GravityStep <= 0:
		return fmt.Errorf("%w: gravity_step %g must be positive", ErrInvalidConfig, c.GravityStep)
	case c.MinRadius <= 0 || c.MaxRadius < c.MinRadius:
		return fmt.Errorf("%w: radius range [%g,%g]", ErrInvalidConfig, c.MinRadius, c.MaxRadius)
	case c.MaxSpeed < 0:
		return fmt.Errorf("%w: max_speed %g is negative", ErrInvalidConfig, c.MaxSpeed)
	case c.Alpha < 0 || c.Alpha > 1:
		return fmt.Errorf("%w: alpha %g outside [0,1]", ErrInvalidConfig, c.Alpha)
	}
	return nil
}
