package session

import (
	"math"

	"github.com/golangdaddy/racecar/pkg/controls"
)

// DefaultLookahead is how close a car ahead may get before the autopilot
// changes lane.
const DefaultLookahead = 300.0

// Autopilot drives a session with no player: full throttle, staying in its
// lane until traffic ahead comes within Lookahead, then moving to the lane
// with the most room.
type Autopilot struct {
	Lookahead float64
	target    int
}

// NewAutopilot starts in the player's current lane.
func NewAutopilot(s *Session) *Autopilot {
	return &Autopilot{
		Lookahead: DefaultLookahead,
		target:    s.nearestLane(s.player.X),
	}
}

// Target is the lane the autopilot is steering for.
func (a *Autopilot) Target() int { return a.target }

// Steer sets the session's controls for the next tick.
func (a *Autopilot) Steer(s *Session) {
	if s.laneGap(a.target) < a.Lookahead {
		a.target = s.bestLane(a.target)
	}

	ctl := s.controls
	ctl.Set(controls.Up, true)
	ctl.Set(controls.Down, false)

	x, err := s.road.LaneCenter(a.target)
	if err != nil {
		return
	}
	dx := x - s.player.X
	ctl.Set(controls.Left, dx < -s.player.LateralStep/2)
	ctl.Set(controls.Right, dx > s.player.LateralStep/2)
}

func (s *Session) nearestLane(x float64) int {
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < s.road.LaneCount; i++ {
		cx, _ := s.road.LaneCenter(i)
		if d := math.Abs(cx - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// laneGap is the distance from the player to the nearest car in lane that is
// ahead or alongside. A clear lane has an infinite gap.
func (s *Session) laneGap(lane int) float64 {
	gap := math.Inf(1)
	p := s.player
	for _, tc := range s.fleet.Cars() {
		if tc.Lane != lane || tc.Y > p.Y+(p.Height+tc.Height)/2 {
			continue
		}
		gap = math.Min(gap, math.Max(p.Y-tc.Y, 0))
	}
	return gap
}

// bestLane picks the lane with the largest gap, preferring lanes closer to
// from and then the leftmost.
func (s *Session) bestLane(from int) int {
	best := from
	bestGap := s.laneGap(from)
	for i := 0; i < s.road.LaneCount; i++ {
		g := s.laneGap(i)
		closer := abs(i-from) < abs(best-from)
		if g > bestGap || (g == bestGap && closer) {
			best, bestGap = i, g
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
