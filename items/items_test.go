package items

import (
	"math"
	"math/rand"
	"testing"
)

func testParams() Params {
	return Params{
		Gravity:      18,
		ThrowSpeed:   22,
		ThrowAngle:   float32(10 * math.Pi / 180),
		TargetHeight: 7,
		Scale:        0.6,
		HoldScale:    1.25,
		HandRadius:   0.35,
		MaxSpin:      8,
		Aspect:       1.5,
		Bag:          Rect{X: 0, Y: -4, HalfW: 1, HalfH: 1},
	}
}

func newTestSim(p Params, seed int64) *Sim {
	return NewSim(p, rand.New(rand.NewSource(seed)))
}

// totalItems counts items across both homes.
func totalItems(s *Sim) int {
	n := len(s.Flying)
	if s.Held != nil {
		n++
	}
	return n
}

func TestStepIntegration(t *testing.T) {
	p := testParams()
	p.Gravity = 10
	s := newTestSim(p, 1)

	s.Flying = append(s.Flying, Item{X: 0, Y: 0, VelX: 1, VelY: 0, Spin: 2})
	s.Step(0.5)

	it := s.Flying[0]
	// Semi-implicit Euler: gravity first, then position from the new velocity.
	if math.Abs(float64(it.VelY)+5) > 1e-4 {
		t.Errorf("expected VelY -5, got %f", it.VelY)
	}
	if math.Abs(float64(it.X)-0.5) > 1e-4 || math.Abs(float64(it.Y)+2.5) > 1e-4 {
		t.Errorf("expected position (0.5, -2.5), got (%f, %f)", it.X, it.Y)
	}
	if math.Abs(float64(it.Rot)-1) > 1e-4 {
		t.Errorf("expected rotation 1, got %f", it.Rot)
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() []Item {
		s := newTestSim(testParams(), 7)
		s.Press(0, -4)
		s.Release(0.5, -3)
		s.Press(0.2, -4)
		s.Release(-1, -3.5)
		for i := 0; i < 120; i++ {
			s.Step(1.0 / 60)
		}
		return s.Flying
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("runs diverged in item count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("item %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestStepLeavesHeldAlone(t *testing.T) {
	s := newTestSim(testParams(), 1)

	if got, _ := s.Press(0, -4); got != GrabBag {
		t.Fatalf("expected GrabBag, got %v", got)
	}
	before := *s.Held
	s.Step(1.0)
	if *s.Held != before {
		t.Errorf("held item changed during Step: %+v vs %+v", *s.Held, before)
	}
	if len(s.Flying) != 0 {
		t.Errorf("expected no flying items, got %d", len(s.Flying))
	}
}

func TestBagSpawnsHeld(t *testing.T) {
	p := testParams()
	s := newTestSim(p, 3)

	if got, _ := s.Press(0.3, -3.8); got != GrabBag {
		t.Fatalf("expected GrabBag, got %v", got)
	}
	if s.Held == nil {
		t.Fatal("expected a held item")
	}
	if s.Held.HalfH != p.Scale || s.Held.HalfW != p.Aspect*p.Scale {
		t.Errorf("expected half size (%f, %f), got (%f, %f)",
			p.Aspect*p.Scale, p.Scale, s.Held.HalfW, s.Held.HalfH)
	}
	if s.Held.Rot < 0 || float64(s.Held.Rot) >= 2*math.Pi {
		t.Errorf("spawn rotation %f outside [0, 2pi)", s.Held.Rot)
	}
	if s.Held.VelX != 0 || s.Held.VelY != 0 || s.Held.Spin != 0 {
		t.Errorf("fresh item should be at rest, got vel (%f, %f) spin %f",
			s.Held.VelX, s.Held.VelY, s.Held.Spin)
	}
}

func TestBagPaddedByHandRadius(t *testing.T) {
	p := testParams() // bag right edge at x=1, hand radius 0.35
	s := newTestSim(p, 1)

	if got, _ := s.Press(1.3, -4); got != GrabBag {
		t.Errorf("click within hand radius of the bag should grab, got %v", got)
	}

	s = newTestSim(p, 1)
	if got, _ := s.Press(1.4, -4); got != GrabNone {
		t.Errorf("click beyond hand radius of the bag should miss, got %v", got)
	}
}

func TestPressWhileHoldingGrabsNothing(t *testing.T) {
	s := newTestSim(testParams(), 1)
	s.Flying = append(s.Flying, Item{X: 3, Y: 3, HalfW: 1, HalfH: 1})

	s.Press(0, -4) // take from bag
	if s.Held == nil {
		t.Fatal("expected a held item")
	}

	if got, _ := s.Press(3, 3); got != GrabNone {
		t.Errorf("press while holding should grab nothing, got %v", got)
	}
	if len(s.Flying) != 1 {
		t.Errorf("flying pile changed while holding: %d items", len(s.Flying))
	}
}

func TestPickupTransfersOwnership(t *testing.T) {
	s := newTestSim(testParams(), 1)
	s.Flying = append(s.Flying, Item{X: 2, Y: 2, HalfW: 0.9, HalfH: 0.6, Spin: 42})

	if got, _ := s.Press(2, 2); got != GrabItem {
		t.Fatalf("expected GrabItem, got %v", got)
	}
	if len(s.Flying) != 0 {
		t.Errorf("item still in flying pile after pickup")
	}
	if s.Held == nil || s.Held.Spin != 42 {
		t.Errorf("held item is not the picked one: %+v", s.Held)
	}
	if totalItems(s) != 1 {
		t.Errorf("item count not conserved: %d", totalItems(s))
	}
}

func TestPickupTieBreakPrefersLatest(t *testing.T) {
	s := newTestSim(testParams(), 1)
	s.Flying = append(s.Flying,
		Item{X: 2, Y: 2, HalfW: 0.9, HalfH: 0.6, Spin: 1},
		Item{X: 2.1, Y: 2, HalfW: 0.9, HalfH: 0.6, Spin: 2},
	)

	got, idx := s.Press(2, 2)
	if got != GrabItem {
		t.Fatalf("expected GrabItem, got %v", got)
	}
	if idx != 1 {
		t.Errorf("expected pick at flying index 1, got %d", idx)
	}
	if s.Held.Spin != 2 {
		t.Errorf("expected the later item (spin 2), got spin %f", s.Held.Spin)
	}
	if len(s.Flying) != 1 || s.Flying[0].Spin != 1 {
		t.Errorf("earlier item should remain flying: %+v", s.Flying)
	}
}

func TestPickupHonorsRotation(t *testing.T) {
	p := testParams()
	p.HandRadius = 0

	// A long thin item rotated 45 degrees: its tip reaches diagonal points
	// far outside the unrotated bounds.
	plank := Item{X: 0, Y: 0, Rot: float32(math.Pi / 4), HalfW: 2, HalfH: 0.1}

	s := newTestSim(p, 1)
	s.Flying = append(s.Flying, plank)
	if got, _ := s.Press(1.3, 1.3); got != GrabItem {
		t.Errorf("point on the rotated long axis should hit, got %v", got)
	}

	s = newTestSim(p, 1)
	s.Flying = append(s.Flying, plank)
	if got, _ := s.Press(1.3, -1.3); got != GrabNone {
		t.Errorf("point off the rotated long axis should miss, got %v", got)
	}
}

func TestPickupPaddedByHandRadius(t *testing.T) {
	p := testParams()
	p.HandRadius = 0.5
	s := newTestSim(p, 1)
	s.Flying = append(s.Flying, Item{X: 10, Y: 0, HalfW: 1, HalfH: 1})

	if got, _ := s.Press(11.4, 0); got != GrabItem {
		t.Errorf("point within hand radius of the edge should hit, got %v", got)
	}

	s = newTestSim(p, 1)
	s.Flying = append(s.Flying, Item{X: 10, Y: 0, HalfW: 1, HalfH: 1})
	if got, _ := s.Press(11.6, 0); got != GrabNone {
		t.Errorf("point beyond hand radius should miss, got %v", got)
	}
}

func TestReleaseThrowsTowardTarget(t *testing.T) {
	p := testParams()
	p.ThrowAngle = 0 // no deviation: aim is exact
	s := newTestSim(p, 1)

	s.Press(0, -4)
	if !s.Release(0, 2) {
		t.Fatal("expected a throw")
	}

	it := s.Flying[0]
	if it.X != 0 || it.Y != 2 {
		t.Errorf("expected release position (0, 2), got (%f, %f)", it.X, it.Y)
	}
	// Directly below the target: straight up at throw speed.
	if math.Abs(float64(it.VelX)) > 1e-4 || math.Abs(float64(it.VelY)-22) > 1e-3 {
		t.Errorf("expected velocity (0, 22), got (%f, %f)", it.VelX, it.VelY)
	}
	if absf(it.Spin) > p.MaxSpin {
		t.Errorf("spin %f exceeds max %f", it.Spin, p.MaxSpin)
	}
}

func TestReleaseDeviationStaysInCone(t *testing.T) {
	p := testParams()
	p.ThrowAngle = float32(30 * math.Pi / 180)

	for seed := int64(1); seed <= 40; seed++ {
		s := newTestSim(p, seed)
		s.Press(0, -4)
		s.Release(0, 0) // aim straight up at (0, 7)

		it := s.Flying[0]
		speed := math.Sqrt(float64(it.VelX)*float64(it.VelX) + float64(it.VelY)*float64(it.VelY))
		if math.Abs(speed-22) > 1e-3 {
			t.Fatalf("seed %d: speed %f, want 22", seed, speed)
		}
		// Angle from straight up must stay inside the cone.
		off := math.Abs(math.Atan2(float64(it.VelX), float64(it.VelY)))
		if off > float64(p.ThrowAngle)+1e-4 {
			t.Fatalf("seed %d: deviation %f exceeds cone %f", seed, off, p.ThrowAngle)
		}
		if absf(it.Spin) > p.MaxSpin {
			t.Fatalf("seed %d: spin %f exceeds max %f", seed, it.Spin, p.MaxSpin)
		}
	}
}

func TestReleaseWithoutHoldingIsNoOp(t *testing.T) {
	s := newTestSim(testParams(), 1)

	if s.Release(0, 0) {
		t.Error("release with nothing held should report no throw")
	}
	if len(s.Flying) != 0 {
		t.Errorf("release with nothing held appended an item")
	}
}

func TestReleaseAtTargetDropsDead(t *testing.T) {
	p := testParams()
	s := newTestSim(p, 1)

	s.Press(0, -4)
	s.Release(0, p.TargetHeight)

	it := s.Flying[0]
	if it.VelX != 0 || it.VelY != 0 {
		t.Errorf("release at the aim point should have zero velocity, got (%f, %f)", it.VelX, it.VelY)
	}
}

func TestLaunchVelocity(t *testing.T) {
	p := testParams()

	// Straight below the target, no deviation: straight up at throw speed.
	vx, vy := LaunchVelocity(p, 0, 2, 0)
	if math.Abs(float64(vx)) > 1e-4 || math.Abs(float64(vy)-22) > 1e-3 {
		t.Errorf("expected velocity (0, 22), got (%f, %f)", vx, vy)
	}

	// A quarter turn of deviation swings the same throw to horizontal.
	vx, vy = LaunchVelocity(p, 0, 2, float32(math.Pi/2))
	if math.Abs(float64(vx)+22) > 1e-3 || math.Abs(float64(vy)) > 1e-3 {
		t.Errorf("expected velocity (-22, 0), got (%f, %f)", vx, vy)
	}

	// Deviation never changes the speed.
	vx, vy = LaunchVelocity(p, -0.8, -3.5, 0.3)
	speed := math.Sqrt(float64(vx)*float64(vx) + float64(vy)*float64(vy))
	if math.Abs(speed-22) > 1e-3 {
		t.Errorf("expected speed 22, got %f", speed)
	}
}

func TestRoundTripRerandomizes(t *testing.T) {
	s := newTestSim(testParams(), 9)
	s.Flying = append(s.Flying, Item{X: 1, Y: 1, VelX: 5, VelY: 5, Spin: 3, HalfW: 0.9, HalfH: 0.6})

	if got, _ := s.Press(1, 1); got != GrabItem {
		t.Fatalf("expected GrabItem, got %v", got)
	}
	if !s.Release(1, 1) {
		t.Fatal("expected a throw")
	}

	it := s.Flying[0]
	if it.X != 1 || it.Y != 1 {
		t.Errorf("expected item back at (1, 1), got (%f, %f)", it.X, it.Y)
	}
	// Old velocity had magnitude ~7.07; a rethrow always launches at 22.
	speed := math.Sqrt(float64(it.VelX)*float64(it.VelX) + float64(it.VelY)*float64(it.VelY))
	if math.Abs(speed-22) > 1e-3 {
		t.Errorf("rethrow speed %f, want 22", speed)
	}
	if it.VelX == 5 && it.VelY == 5 {
		t.Error("velocity not rerandomized on rethrow")
	}
	if absf(it.Spin) > s.params.MaxSpin {
		t.Errorf("spin %f exceeds max %f", it.Spin, s.params.MaxSpin)
	}
}

func TestStateExclusivity(t *testing.T) {
	s := newTestSim(testParams(), 5)

	check := func(stage string, want int) {
		t.Helper()
		if totalItems(s) != want {
			t.Fatalf("%s: expected %d items total, got %d", stage, want, totalItems(s))
		}
		if s.Held != nil {
			for i := range s.Flying {
				if s.Flying[i] == *s.Held {
					t.Fatalf("%s: held item also present in flying pile", stage)
				}
			}
		}
	}

	s.Press(0, -4)
	check("after bag grab", 1)
	s.Release(0, 0)
	check("after throw", 1)
	s.Press(0, 0)
	check("after pickup", 1)
	s.Release(2, 0)
	check("after rethrow", 1)
	s.Press(0, -4)
	check("after second bag grab", 2)
}

func TestThrowOrderPreserved(t *testing.T) {
	p := testParams()
	p.ThrowAngle = 0
	s := newTestSim(p, 1)

	// Throw well away from the bag so later bag presses cannot pick one up.
	for i, x := range []float32{-0.5, 0, 0.5} {
		if got, _ := s.Press(0, -4); got != GrabBag {
			t.Fatalf("throw %d: expected GrabBag, got %v", i, got)
		}
		s.Release(x, 3)
	}

	if len(s.Flying) != 3 {
		t.Fatalf("expected 3 flying items, got %d", len(s.Flying))
	}
	want := []float32{-0.5, 0, 0.5}
	for i, it := range s.Flying {
		if it.X != want[i] {
			t.Errorf("flying[%d].X = %f, want %f (throw order broken)", i, it.X, want[i])
		}
	}
}
