// Package config centralizes the game's tunables. Velocities and accelerations
// are per tick; the frontends run the simulation at a fixed TPS.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// PlayerConfig describes the player's car.
type PlayerConfig struct {
	Width        float64
	Height       float64
	Acceleration float64
	Friction     float64
	MaxSpeed     float64
	LateralStep  float64 // pixels per tick while steering
	StartLane    int
	StartY       float64
}

// TrafficConfig describes spawned traffic.
type TrafficConfig struct {
	Width         float64
	Height        float64
	Speed         float64
	SpawnInterval time.Duration
	InitialDelay  time.Duration
	MinBatch      int
	MaxBatch      int
	MaxVehicles   int     // 0 means unbounded
	CullDistance  float64 // vertical distance from the player beyond which traffic is dropped
}

// Config is the full set of game parameters.
type Config struct {
	// Playfield, in pixels. The road is centered in it.
	CanvasWidth  int
	CanvasHeight int
	// Window size for the ebiten frontend; the playfield is centered inside.
	ScreenWidth int

	RoadWidthRatio float64
	LaneCount      int
	CameraAnchor   float64 // fraction of the view height where the player sits
	DistanceScale  float64
	TPS            int
	Seed           int64
	LogLevel       string

	Player  PlayerConfig
	Traffic TrafficConfig
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		CanvasWidth:    200,
		CanvasHeight:   600,
		ScreenWidth:    480,
		RoadWidthRatio: 0.9,
		LaneCount:      3,
		CameraAnchor:   0.8,
		DistanceScale:  0.1,
		TPS:            60,
		Seed:           0,
		LogLevel:       "info",
		Player: PlayerConfig{
			Width:        30,
			Height:       50,
			Acceleration: 0.2,
			Friction:     0.05,
			MaxSpeed:     13,
			LateralStep:  3,
			StartLane:    1,
			StartY:       100,
		},
		Traffic: TrafficConfig{
			Width:         30,
			Height:        50,
			Speed:         5,
			SpawnInterval: 500 * time.Millisecond,
			InitialDelay:  500 * time.Millisecond,
			MinBatch:      1,
			MaxBatch:      2,
			MaxVehicles:   64,
			CullDistance:  1800,
		},
	}
}

// TickDuration is the simulated time covered by one tick.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// RoadWidth is the road width derived from the playfield.
func (c Config) RoadWidth() float64 {
	return float64(c.CanvasWidth) * c.RoadWidthRatio
}

// Validate checks the configuration for values that would break the game.
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.ScreenWidth < c.CanvasWidth:
		return fmt.Errorf("%w: screen width %d narrower than canvas %d", ErrInvalidConfig, c.ScreenWidth, c.CanvasWidth)
	case c.RoadWidthRatio <= 0 || c.RoadWidthRatio > 1:
		return fmt.Errorf("%w: road width ratio %v outside (0, 1]", ErrInvalidConfig, c.RoadWidthRatio)
	case c.LaneCount < 1:
		return fmt.Errorf("%w: lane count %d", ErrInvalidConfig, c.LaneCount)
	case c.CameraAnchor < 0 || c.CameraAnchor > 1:
		return fmt.Errorf("%w: camera anchor %v outside [0, 1]", ErrInvalidConfig, c.CameraAnchor)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.Player.StartLane < 0 || c.Player.StartLane >= c.LaneCount:
		return fmt.Errorf("%w: start lane %d with %d lanes", ErrInvalidConfig, c.Player.StartLane, c.LaneCount)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Player.Width > c.RoadWidth():
		return fmt.Errorf("%w: player wider than the road", ErrInvalidConfig)
	case c.Player.MaxSpeed <= 0 || c.Player.Acceleration < 0 || c.Player.Friction < 0:
		return fmt.Errorf("%w: player kinematics", ErrInvalidConfig)
	case c.Traffic.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalidConfig, c.Traffic.SpawnInterval)
	case c.Traffic.MinBatch < 0 || c.Traffic.MaxBatch < c.Traffic.MinBatch:
		return fmt.Errorf("%w: spawn batch %d..%d", ErrInvalidConfig, c.Traffic.MinBatch, c.Traffic.MaxBatch)
	case c.Traffic.MaxVehicles < 0:
		return fmt.Errorf("%w: max vehicles %d", ErrInvalidConfig, c.Traffic.MaxVehicles)
	case c.Traffic.CullDistance > 0 && c.Traffic.CullDistance <= float64(c.CanvasHeight):
		return fmt.Errorf("%w: cull distance %v would drop traffic as it spawns", ErrInvalidConfig, c.Traffic.CullDistance)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FromEnv starts from Default and applies RACECAR_* overrides.
func FromEnv() (Config, error) {
	c := Default()

	var err error
	if c.LaneCount, err = envInt("RACECAR_LANES", c.LaneCount); err != nil {
		return c, err
	}
	if c.Traffic.MaxVehicles, err = envInt("RACECAR_MAX_TRAFFIC", c.Traffic.MaxVehicles); err != nil {
		return c, err
	}
	if c.TPS, err = envInt("RACECAR_TPS", c.TPS); err != nil {
		return c, err
	}
	if c.CanvasHeight, err = envInt("RACECAR_HEIGHT", c.CanvasHeight); err != nil {
		return c, err
	}
	if c.Player.MaxSpeed, err = envFloat("RACECAR_MAX_SPEED", c.Player.MaxSpeed); err != nil {
		return c, err
	}
	if c.Traffic.SpawnInterval, err = envDuration("RACECAR_SPAWN_INTERVAL", c.Traffic.SpawnInterval); err != nil {
		return c, err
	}
	seed, err := envInt("RACECAR_SEED", 0)
	if err != nil {
		return c, err
	}
	c.Seed = int64(seed)
	c.LogLevel = GetEnv("RACECAR_LOG_LEVEL", c.LogLevel)

	// A narrower road pulls the start lane back onto it.
	if c.Player.StartLane >= c.LaneCount {
		c.Player.StartLane = c.LaneCount / 2
	}

	return c, c.Validate()
}

func envInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
	}
	return v, nil
}
