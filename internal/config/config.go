// Package config loads uavpath settings with priority defaults < file < flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/uavpath/export"
	"github.com/katalvlaran/uavpath/internal/logger"
	"github.com/katalvlaran/uavpath/mapio"
	"github.com/katalvlaran/uavpath/search"
	"github.com/katalvlaran/uavpath/terrain"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all settings.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Mission MissionConfig `yaml:"mission"`
	Drone   DroneConfig   `yaml:"drone"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapConfig selects the terrain source. File wins over Builtin, Builtin over Random.
type MapConfig struct {
	File    string       `yaml:"file"`
	Builtin string       `yaml:"builtin"`
	Random  RandomConfig `yaml:"random"`
}

// RandomConfig describes a generated map.
type RandomConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Obstacle float64 `yaml:"obstacle"`
	Hill     float64 `yaml:"hill"`
	Wind     float64 `yaml:"wind"`
	Seed     int64   `yaml:"seed"` // 0 = default seed
}

// MissionConfig holds planning settings. A nil Start or Goal falls back to the
// map's S/D markers, then to the top-left and bottom-right corners.
type MissionConfig struct {
	Start        *Coord  `yaml:"start,omitempty"`
	Goal         *Coord  `yaml:"goal,omitempty"`
	Strategy     string  `yaml:"strategy"`
	EnergyWeight float64 `yaml:"energy_weight"`
	Simplify     bool    `yaml:"simplify"`
	Compare      bool    `yaml:"compare"`
}

// DroneConfig holds vehicle settings.
type DroneConfig struct {
	MaxEnergy float64 `yaml:"max_energy"`
}

// ExportConfig holds output settings. An empty Formats list disables export.
type ExportConfig struct {
	Formats []string `yaml:"formats"`
	Dir     string   `yaml:"dir"`
	PerfLog string   `yaml:"perf_log"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Coord is a cell coordinate.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts c to a terrain point.
func (c Coord) Point() terrain.Point { return terrain.Pt(c.X, c.Y) }

// ParseCoord parses "x,y".
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: coordinate %q, want x,y", ErrInvalid, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: coordinate %q: %v", ErrInvalid, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: coordinate %q: %v", ErrInvalid, s, err)
	}
	return Coord{X: x, Y: y}, nil
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Builtin: mapio.SampleName,
			Random: RandomConfig{
				Width:    20,
				Height:   20,
				Obstacle: 0.15,
				Hill:     0.10,
				Wind:     0.10,
			},
		},
		Mission: MissionConfig{
			Strategy:     search.AStar.String(),
			EnergyWeight: 1.0,
			Simplify:     true,
		},
		Drone: DroneConfig{
			MaxEnergy: 100,
		},
		Export: ExportConfig{
			Dir: "output",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	if c.Map.File == "" && c.Map.Builtin != "" {
		if _, ok := mapio.Builtin(c.Map.Builtin); !ok {
			return fmt.Errorf("%w: unknown builtin map %q", ErrInvalid, c.Map.Builtin)
		}
	}
	if c.Map.File == "" && c.Map.Builtin == "" {
		r := c.Map.Random
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("%w: random map size %dx%d", ErrInvalid, r.Width, r.Height)
		}
		if !(r.Obstacle >= 0) || !(r.Hill >= 0) || !(r.Wind >= 0) || !(r.Obstacle+r.Hill+r.Wind <= 1) {
			return fmt.Errorf("%w: random map probabilities %g/%g/%g", ErrInvalid, r.Obstacle, r.Hill, r.Wind)
		}
	}

	if _, err := search.ParseStrategy(c.Mission.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !positiveFinite(c.Mission.EnergyWeight) {
		return fmt.Errorf("%w: energy_weight must be > 0, got %g", ErrInvalid, c.Mission.EnergyWeight)
	}
	if !positiveFinite(c.Drone.MaxEnergy) {
		return fmt.Errorf("%w: drone max_energy must be > 0, got %g", ErrInvalid, c.Drone.MaxEnergy)
	}
	for _, f := range c.Export.Formats {
		if _, err := export.ParseFormat(f); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
