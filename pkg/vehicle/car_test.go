package vehicle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golangdaddy/racecar/pkg/controls"
	"github.com/golangdaddy/racecar/pkg/road"
)

const epsilon = 1e-9

func newTestCar(t *testing.T) (*Car, *controls.Controls) {
	t.Helper()
	// Left shoulder at 0 so the lane clamp is [half width, road width - half width].
	rd, err := road.New(90, 180, 3)
	if err != nil {
		t.Fatal(err)
	}
	ctl := controls.New()
	x, _ := rd.LaneCenter(1)
	return NewCar(x, 100, 30, 50, ctl, rd), ctl
}

func TestAccelerationWithFriction(t *testing.T) {
	car, ctl := newTestCar(t)
	ctl.Forward = true

	for i := 1; i <= 5; i++ {
		car.Advance()
		want := float64(i) * (car.Acceleration - car.Friction)
		if math.Abs(car.Speed-want) > epsilon {
			t.Fatalf("tick %d: speed = %v, want %v", i, car.Speed, want)
		}
	}
	if math.Abs(car.Speed-0.75) > epsilon {
		t.Errorf("speed after 5 ticks = %v, want 0.75", car.Speed)
	}
}

func TestForwardMovesUp(t *testing.T) {
	car, ctl := newTestCar(t)
	ctl.Forward = true
	startY := car.Y
	for i := 0; i < 10; i++ {
		car.Advance()
	}
	if car.Y >= startY {
		t.Errorf("Y = %v, want less than %v", car.Y, startY)
	}
}

func TestSpeedCappedAtMax(t *testing.T) {
	car, ctl := newTestCar(t)
	ctl.Forward = true
	for i := 0; i < 500; i++ {
		car.Advance()
		if car.Speed > car.MaxSpeed {
			t.Fatalf("tick %d: speed %v above max %v", i, car.Speed, car.MaxSpeed)
		}
	}
	// Friction is applied after the cap.
	if math.Abs(car.Speed-(car.MaxSpeed-car.Friction)) > epsilon {
		t.Errorf("top speed = %v, want %v", car.Speed, car.MaxSpeed-car.Friction)
	}
}

func TestReverseCappedAtHalfMax(t *testing.T) {
	car, ctl := newTestCar(t)
	ctl.Backward = true
	for i := 0; i < 500; i++ {
		car.Advance()
		if car.Speed < -car.MaxSpeed/2 {
			t.Fatalf("tick %d: speed %v below -max/2", i, car.Speed)
		}
	}
	if math.Abs(car.Speed-(-car.MaxSpeed/2+car.Friction)) > epsilon {
		t.Errorf("reverse top speed = %v", car.Speed)
	}
}

func TestFrictionDecaysToExactZero(t *testing.T) {
	for _, start := range []float64{1.0, -1.0, 0.33, 12.9} {
		car, _ := newTestCar(t)
		car.Speed = start

		prev := math.Abs(car.Speed)
		for i := 0; i < 1000 && car.Speed != 0; i++ {
			car.Advance()
			cur := math.Abs(car.Speed)
			if cur != 0 && math.Abs(prev-cur-car.Friction) > 1e-6 {
				t.Fatalf("start %v tick %d: |speed| %v -> %v, want a %v drop", start, i, prev, cur, car.Friction)
			}
			if cur >= prev {
				t.Fatalf("start %v tick %d: |speed| did not decrease (%v -> %v)", start, i, prev, cur)
			}
			prev = cur
		}
		if car.Speed != 0 {
			t.Fatalf("start %v: speed = %v, want exactly 0", start, car.Speed)
		}

		y := car.Y
		for i := 0; i < 10; i++ {
			car.Advance()
		}
		if car.Speed != 0 || car.Y != y {
			t.Errorf("start %v: car drifted at rest (speed %v, y %v -> %v)", start, car.Speed, y, car.Y)
		}
	}
}

func TestForwardAndBackwardCancel(t *testing.T) {
	car, ctl := newTestCar(t)
	ctl.Forward = true
	ctl.Backward = true
	for i := 0; i < 20; i++ {
		car.Advance()
	}
	if car.Speed != 0 {
		t.Errorf("speed = %v, want 0", car.Speed)
	}
}

func TestLateralMovement(t *testing.T) {
	car, ctl := newTestCar(t)
	x := car.X

	ctl.Left = true
	car.Advance()
	if car.X != x-car.LateralStep {
		t.Errorf("left: X = %v, want %v", car.X, x-car.LateralStep)
	}

	ctl.Left = false
	ctl.Right = true
	car.Advance()
	if car.X != x {
		t.Errorf("right: X = %v, want %v", car.X, x)
	}

	ctl.Left = true
	car.Advance()
	if car.X != x {
		t.Errorf("both: X = %v, want %v", car.X, x)
	}
}

func TestLateralMovementIgnoresSpeed(t *testing.T) {
	car, ctl := newTestCar(t)
	car.Speed = 10
	x := car.X
	ctl.Right = true
	car.Advance()
	if car.X != x+car.LateralStep {
		t.Errorf("X = %v, want %v", car.X, x+car.LateralStep)
	}
}

func TestLaneClampHolds(t *testing.T) {
	car, ctl := newTestCar(t)
	rng := rand.New(rand.NewSource(7))
	half := car.Width / 2
	roadWidth := 180.0

	for i := 0; i < 2000; i++ {
		ctl.Forward = rng.Intn(2) == 0
		ctl.Backward = rng.Intn(3) == 0
		ctl.Left = rng.Intn(2) == 0
		ctl.Right = rng.Intn(4) == 0
		car.Advance()

		if car.X < half || car.X > roadWidth-half {
			t.Fatalf("tick %d: X = %v outside [%v, %v]", i, car.X, half, roadWidth-half)
		}
		if car.Speed < -car.MaxSpeed/2 || car.Speed > car.MaxSpeed {
			t.Fatalf("tick %d: speed = %v out of range", i, car.Speed)
		}
	}
}

func TestLaneClampOnCenteredRoad(t *testing.T) {
	// 200 wide playfield, road at 90%: shoulders at 10 and 190.
	rd, err := road.New(100, 180, 3)
	if err != nil {
		t.Fatal(err)
	}
	ctl := controls.New()
	car := NewCar(100, 100, 30, 50, ctl, rd)

	ctl.Left = true
	for i := 0; i < 100; i++ {
		car.Advance()
	}
	if car.X != 25 {
		t.Errorf("X after steering left = %v, want 25", car.X)
	}

	ctl.Left, ctl.Right = false, true
	for i := 0; i < 100; i++ {
		car.Advance()
	}
	if car.X != 175 {
		t.Errorf("X after steering right = %v, want 175", car.X)
	}
}

func TestNilControls(t *testing.T) {
	car := NewCar(0, 0, 30, 50, nil, nil)
	car.Speed = 1
	car.Advance()
	if math.Abs(car.Speed-0.95) > epsilon {
		t.Errorf("speed = %v, want 0.95", car.Speed)
	}
}

func TestCarBoundsAreCentered(t *testing.T) {
	car, _ := newTestCar(t)
	b := car.Bounds()
	c := b.Center()
	if c.X != car.X || c.Y != car.Y || b.W != car.Width || b.H != car.Height {
		t.Errorf("Bounds() = %+v for car at (%v, %v)", b, car.X, car.Y)
	}
}
