package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := c.RoadWidth(); got != 180 {
		t.Errorf("RoadWidth() = %v, want 180", got)
	}
	if got := c.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lanes", func(c *Config) { c.LaneCount = 0 }},
		{"zero canvas", func(c *Config) { c.CanvasWidth = 0 }},
		{"road ratio", func(c *Config) { c.RoadWidthRatio = 1.5 }},
		{"anchor", func(c *Config) { c.CameraAnchor = -0.1 }},
		{"tps", func(c *Config) { c.TPS = 0 }},
		{"start lane", func(c *Config) { c.Player.StartLane = 3 }},
		{"wide car", func(c *Config) { c.Player.Width = 500; c.ScreenWidth = 1000 }},
		{"max speed", func(c *Config) { c.Player.MaxSpeed = 0 }},
		{"spawn interval", func(c *Config) { c.Traffic.SpawnInterval = 0 }},
		{"batch", func(c *Config) { c.Traffic.MinBatch = 3 }},
		{"max vehicles", func(c *Config) { c.Traffic.MaxVehicles = -1 }},
		{"cull inside view", func(c *Config) { c.Traffic.CullDistance = 100 }},
		{"narrow screen", func(c *Config) { c.ScreenWidth = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RACECAR_TEST_KEY", "set")
	if got := GetEnv("RACECAR_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("RACECAR_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RACECAR_LANES", "5")
	t.Setenv("RACECAR_SEED", "42")
	t.Setenv("RACECAR_SPAWN_INTERVAL", "250ms")
	t.Setenv("RACECAR_MAX_SPEED", "8.5")
	t.Setenv("RACECAR_LOG_LEVEL", "debug")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() = %v", err)
	}
	if c.LaneCount != 5 || c.Seed != 42 || c.Traffic.SpawnInterval != 250*time.Millisecond {
		t.Errorf("unexpected config: lanes=%d seed=%d interval=%v", c.LaneCount, c.Seed, c.Traffic.SpawnInterval)
	}
	if c.Player.MaxSpeed != 8.5 || c.LogLevel != "debug" {
		t.Errorf("unexpected config: maxSpeed=%v level=%q", c.Player.MaxSpeed, c.LogLevel)
	}
}

func TestFromEnvSingleLane(t *testing.T) {
	t.Setenv("RACECAR_LANES", "1")
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() = %v", err)
	}
	if c.Player.StartLane != 0 {
		t.Errorf("StartLane = %d, want 0", c.Player.StartLane)
	}
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("RACECAR_LANES", "three")
	if _, err := FromEnv(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("FromEnv() = %v, want ErrInvalidConfig", err)
	}

	t.Setenv("RACECAR_LANES", "0")
	if _, err := FromEnv(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("FromEnv() with zero lanes = %v, want ErrInvalidConfig", err)
	}
}
