// Package session runs one play-through: the player's car, the road, the
// traffic and the score, advanced one fixed tick at a time.
package session

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/controls"
	"github.com/golangdaddy/racecar/pkg/geom"
	"github.com/golangdaddy/racecar/pkg/road"
	"github.com/golangdaddy/racecar/pkg/traffic"
	"github.com/golangdaddy/racecar/pkg/vehicle"
)

// Hit is a single frame of overlap between the player and a traffic car.
type Hit struct {
	Tick    int64
	CarID   int64
	Lane    int
	PlayerX float64
	PlayerY float64
}

// Session owns all game state. It is not safe for concurrent use, except
// for Controls().Press/Release which may be called from any goroutine.
type Session struct {
	cfg    config.Config
	logger *log.Logger

	road     *road.Road
	controls *controls.Controls
	player   *vehicle.Car
	fleet    *traffic.Fleet
	spawner  *traffic.Spawner

	viewWidth  float64
	viewHeight float64
	tickLen    time.Duration

	cameraY  float64
	distance float64
	ticks    int64
	hits     int64
	hitLast  bool

	onHit func(Hit)
}

// New builds a session from cfg. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvasWidth := float64(cfg.CanvasWidth)
	rd, err := road.New(canvasWidth/2, cfg.RoadWidth(), cfg.LaneCount)
	if err != nil {
		return nil, fmt.Errorf("building road: %w", err)
	}

	startX, err := rd.LaneCenter(cfg.Player.StartLane)
	if err != nil {
		return nil, fmt.Errorf("placing player: %w", err)
	}

	ctl := controls.New()
	player := vehicle.NewCar(startX, cfg.Player.StartY, cfg.Player.Width, cfg.Player.Height, ctl, rd)
	player.Acceleration = cfg.Player.Acceleration
	player.Friction = cfg.Player.Friction
	player.MaxSpeed = cfg.Player.MaxSpeed
	player.LateralStep = cfg.Player.LateralStep

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fleet := traffic.NewFleet(cfg.Traffic.MaxVehicles)
	viewHeight := float64(cfg.CanvasHeight)
	spawner := traffic.NewSpawner(rd, fleet, cfg.Traffic, viewHeight, rand.New(rand.NewSource(seed)), logger)

	s := &Session{
		cfg:        cfg,
		logger:     logger,
		road:       rd,
		controls:   ctl,
		player:     player,
		fleet:      fleet,
		spawner:    spawner,
		viewWidth:  canvasWidth,
		viewHeight: viewHeight,
		tickLen:    cfg.TickDuration(),
	}
	s.updateCamera()

	logger.Info("session started", "lanes", cfg.LaneCount, "seed", seed, "tps", cfg.TPS)
	return s, nil
}

// OnHit registers a callback invoked for every hit reported by Tick.
func (s *Session) OnHit(fn func(Hit)) {
	s.onHit = fn
}

// SetViewport follows a resize of the visible playfield.
func (s *Session) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.viewWidth, s.viewHeight = width, height
	s.spawner.SetViewHeight(height)
	s.updateCamera()
}

// Tick advances the game by one step and returns the hits detected in it.
func (s *Session) Tick() []Hit {
	s.ticks++

	// Input and spawn timer first: anything that happened since the last
	// tick is visible to this one in full.
	s.controls.Drain()
	s.spawner.Update(s.tickLen, s.player.Y)

	s.player.Advance()
	s.updateCamera()
	s.distance += s.player.Speed * s.cfg.DistanceScale

	hits := s.detectHits()

	s.fleet.Advance()
	if n := s.fleet.Cull(s.player.Y, s.cullDistance()); n > 0 {
		s.logger.Debug("culled traffic", "removed", n, "remaining", s.fleet.Len())
	}

	return hits
}

func (s *Session) detectHits() []Hit {
	var hits []Hit
	playerBox := s.player.Bounds()
	for _, tc := range s.fleet.Cars() {
		if !geom.Overlaps(tc.Bounds(), playerBox) {
			continue
		}
		hit := Hit{
			Tick:    s.ticks,
			CarID:   tc.ID,
			Lane:    tc.Lane,
			PlayerX: s.player.X,
			PlayerY: s.player.Y,
		}
		hits = append(hits, hit)
		s.logger.Info("hit!", "car", tc.ID, "lane", tc.Lane, "tick", s.ticks)
		if s.onHit != nil {
			s.onHit(hit)
		}
	}
	s.hits += int64(len(hits))
	s.hitLast = len(hits) > 0
	return hits
}

func (s *Session) cullDistance() float64 {
	d := s.cfg.Traffic.CullDistance
	if d <= 0 {
		return 0
	}
	return math.Max(d, 2*s.viewHeight)
}

func (s *Session) updateCamera() {
	s.cameraY = -s.player.Y + s.viewHeight*s.cfg.CameraAnchor
}

// Controls is the input the player's car reads.
func (s *Session) Controls() *controls.Controls { return s.controls }

// Player returns the player's car.
func (s *Session) Player() *vehicle.Car { return s.player }

// Road returns the road.
func (s *Session) Road() *road.Road { return s.road }

// Traffic returns the live traffic cars in spawn order.
func (s *Session) Traffic() []*vehicle.TrafficCar { return s.fleet.Cars() }

// Fleet returns the traffic collection.
func (s *Session) Fleet() *traffic.Fleet { return s.fleet }

// Spawner returns the traffic spawner.
func (s *Session) Spawner() *traffic.Spawner { return s.spawner }

// CameraOffset is the vertical translation applied before drawing the world.
func (s *Session) CameraOffset() float64 { return s.cameraY }

// Distance is the accumulated score.
func (s *Session) Distance() float64 { return s.distance }

// DistanceText formats the score for display, rounded to a whole number.
// Anything that rounds to zero prints as "0", never "-0".
func (s *Session) DistanceText() string {
	d := math.Round(s.distance)
	if d == 0 {
		d = 0
	}
	return fmt.Sprintf("%.0f", d)
}

// Hits is the total number of hit frames so far.
func (s *Session) Hits() int64 { return s.hits }

// Colliding reports whether the last tick detected a hit.
func (s *Session) Colliding() bool { return s.hitLast }

// Ticks is the number of ticks run.
func (s *Session) Ticks() int64 { return s.ticks }

// Viewport returns the visible playfield size.
func (s *Session) Viewport() (float64, float64) { return s.viewWidth, s.viewHeight }
