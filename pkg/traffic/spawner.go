package traffic

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/road"
	"github.com/golangdaddy/racecar/pkg/vehicle"
)

// Spawner drops batches of traffic into random lanes just above the
// visible window, on a fixed interval.
type Spawner struct {
	road   *road.Road
	fleet  *Fleet
	rng    *rand.Rand
	logger *log.Logger

	interval  time.Duration
	untilNext time.Duration

	minBatch, maxBatch int
	width, height      float64
	speed              float64
	viewHeight         float64

	nextID int64
}

// NewSpawner wires a spawner to the road and fleet it feeds.
func NewSpawner(rd *road.Road, fleet *Fleet, cfg config.TrafficConfig, viewHeight float64, rng *rand.Rand, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{
		road:       rd,
		fleet:      fleet,
		rng:        rng,
		logger:     logger,
		interval:   cfg.SpawnInterval,
		untilNext:  cfg.InitialDelay,
		minBatch:   cfg.MinBatch,
		maxBatch:   cfg.MaxBatch,
		width:      cfg.Width,
		height:     cfg.Height,
		speed:      cfg.Speed,
		viewHeight: viewHeight,
	}
}

// SetViewHeight changes how far ahead of the player new traffic appears.
func (s *Spawner) SetViewHeight(h float64) {
	s.viewHeight = h
}

// Update advances the spawn timer by elapsed and fires every interval that
// came due, returning the number of cars added.
func (s *Spawner) Update(elapsed time.Duration, playerY float64) int {
	if s.interval <= 0 {
		return 0
	}

	spawned := 0
	s.untilNext -= elapsed
	for s.untilNext <= 0 {
		spawned += s.SpawnBatch(s.batchSize(), playerY)
		s.untilNext += s.interval
	}
	return spawned
}

func (s *Spawner) batchSize() int {
	if s.maxBatch <= s.minBatch {
		return s.minBatch
	}
	return s.minBatch + s.rng.Intn(s.maxBatch-s.minBatch+1)
}

// SpawnBatch adds n cars in random lanes at one view height ahead of
// playerY. It stops early when the fleet is full.
func (s *Spawner) SpawnBatch(n int, playerY float64) int {
	added := 0
	for i := 0; i < n; i++ {
		lane := s.rng.Intn(s.road.LaneCount)
		tc, err := s.SpawnInLane(lane, playerY)
		if errors.Is(err, ErrFleetFull) {
			s.logger.Debug("traffic at capacity, skipping spawn", "cars", s.fleet.Len())
			break
		}
		if err != nil {
			s.logger.Error("spawn failed", "lane", lane, "err", err)
			continue
		}
		s.logger.Debug("spawned traffic", "id", tc.ID, "lane", lane, "x", tc.X, "y", tc.Y)
		added++
	}
	return added
}

// SpawnInLane places a single car in the given lane.
func (s *Spawner) SpawnInLane(lane int, playerY float64) (*vehicle.TrafficCar, error) {
	x, err := s.road.LaneCenter(lane)
	if err != nil {
		return nil, err
	}

	tc := &vehicle.TrafficCar{
		ID:     s.nextID,
		Lane:   lane,
		X:      x,
		Y:      playerY - s.viewHeight,
		Width:  s.width,
		Height: s.height,
		Speed:  s.speed,
	}
	if err := s.fleet.Add(tc); err != nil {
		return nil, err
	}
	s.nextID++
	return tc, nil
}
