// Package items implements the envelope inventory: the single held item,
// the ordered flying pile, grab hit-testing and throw physics. Positions
// live in the latitude-independent overlay plane.
package items

import (
	"math"
	"math/rand"
)

// Item is one envelope. While flying it integrates under gravity and spin;
// while held its position is wherever the pointer is, and X/Y are only
// written back on release.
type Item struct {
	X, Y       float32 // center, overlay units
	VelX, VelY float32 // overlay units per second
	Rot        float32 // radians
	Spin       float32 // radians per second
	HalfW      float32
	HalfH      float32
}

// hit reports whether the point (px, py) falls inside the item's rotated
// bounds, padded outward on both axes.
func (it *Item) hit(px, py, pad float32) bool {
	dx := px - it.X
	dy := py - it.Y
	sin, cos := sincos(it.Rot)
	lx := dx*cos + dy*sin
	ly := -dx*sin + dy*cos
	return absf(lx) <= it.HalfW+pad && absf(ly) <= it.HalfH+pad
}

// Rect is an axis-aligned rectangle given as center and half extents.
type Rect struct {
	X, Y         float32
	HalfW, HalfH float32
}

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float32) Rect {
	r.HalfW += pad
	r.HalfH += pad
	return r
}

// Contains reports whether the point (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py float32) bool {
	return absf(px-r.X) <= r.HalfW && absf(py-r.Y) <= r.HalfH
}

// Params holds the tuning constants for item behavior.
type Params struct {
	Gravity      float32 // downward acceleration on flying items
	ThrowSpeed   float32 // launch speed
	ThrowAngle   float32 // max random deviation from the aim direction, radians
	TargetHeight float32 // throws aim at (0, TargetHeight)
	Scale        float32 // half-height of a spawned item
	HoldScale    float32 // extra draw scale while held
	HandRadius   float32 // grab padding around item and bag bounds
	MaxSpin      float32 // max |angular velocity| assigned on release
	Aspect       float32 // item width/height ratio, from the envelope texture
	Bag          Rect    // where fresh envelopes are drawn from
}

// Grab classifies what a pointer press got hold of.
type Grab int

const (
	GrabNone Grab = iota
	GrabItem      // picked an item off the pile
	GrabBag       // drew a fresh envelope from the bag
)

// Sim owns all items. Held and Flying are mutually exclusive homes: an item
// is either the single held one or somewhere in the flying pile, never both.
// Flying preserves throw order; later throws draw on top and win grab ties.
type Sim struct {
	Held   *Item
	Flying []Item

	params Params
	rng    *rand.Rand
}

// NewSim creates an item simulation. rng drives throw deviation, spin and
// spawn orientation; pass a seeded source for reproducible runs.
func NewSim(params Params, rng *rand.Rand) *Sim {
	return &Sim{params: params, rng: rng}
}

// Params returns the tuning constants the sim was built with.
func (s *Sim) Params() Params {
	return s.params
}

// Holding reports whether an item is currently held.
func (s *Sim) Holding() bool {
	return s.Held != nil
}

// Step integrates every flying item by dt seconds. The held item does not
// move here. Items are never culled; they fall and spin indefinitely.
func (s *Sim) Step(dt float32) {
	for i := range s.Flying {
		it := &s.Flying[i]
		it.VelY -= s.params.Gravity * dt
		it.X += it.VelX * dt
		it.Y += it.VelY * dt
		it.Rot += it.Spin * dt
	}
}

// Press handles a pointer press at overlay coordinates (wx, wy). If nothing
// is held, the topmost flying item under the pointer is picked up; failing
// that, a press inside the bag draws a fresh envelope. A press while already
// holding grabs nothing. For GrabItem the second return is the index the
// item occupied in the flying pile; it is -1 otherwise.
func (s *Sim) Press(wx, wy float32) (Grab, int) {
	if s.Held != nil {
		return GrabNone, -1
	}

	// Scan newest to oldest so the most recently thrown item wins ties.
	for i := len(s.Flying) - 1; i >= 0; i-- {
		if s.Flying[i].hit(wx, wy, s.params.HandRadius) {
			item := s.Flying[i]
			s.Flying = append(s.Flying[:i], s.Flying[i+1:]...)
			s.Held = &item
			return GrabItem, i
		}
	}

	if s.params.Bag.Expand(s.params.HandRadius).Contains(wx, wy) {
		item := s.spawn(wx, wy)
		s.Held = &item
		return GrabBag, -1
	}
	return GrabNone, -1
}

// Release throws the held item from overlay coordinates (wx, wy): aims at
// (0, TargetHeight), deviates by a random angle within the cone, launches at
// ThrowSpeed with a random spin, and appends the item to the flying pile.
// Reports whether a throw happened.
func (s *Sim) Release(wx, wy float32) bool {
	if s.Held == nil {
		return false
	}
	item := *s.Held
	s.Held = nil

	item.X = wx
	item.Y = wy

	dev := s.uniform(-s.params.ThrowAngle, s.params.ThrowAngle)
	item.VelX, item.VelY = LaunchVelocity(s.params, wx, wy, dev)
	item.Spin = s.uniform(-s.params.MaxSpin, s.params.MaxSpin)

	s.Flying = append(s.Flying, item)
	return true
}

// LaunchVelocity returns the velocity of a throw released at (x, y): the
// unit direction toward (0, TargetHeight) rotated by deviation radians,
// scaled by ThrowSpeed. A release exactly at the aim point gets zero
// velocity.
func LaunchVelocity(p Params, x, y, deviation float32) (vx, vy float32) {
	dirX, dirY := normalizeOrZero(-x, p.TargetHeight-y)
	sin, cos := sincos(deviation)
	return (dirX*cos - dirY*sin) * p.ThrowSpeed, (dirX*sin + dirY*cos) * p.ThrowSpeed
}

// spawn creates a fresh envelope at (x, y) with a random orientation.
func (s *Sim) spawn(x, y float32) Item {
	return Item{
		X:     x,
		Y:     y,
		Rot:   s.rng.Float32() * 2 * math.Pi,
		HalfW: s.params.Aspect * s.params.Scale,
		HalfH: s.params.Scale,
	}
}

// uniform returns a random value in [lo, hi).
func (s *Sim) uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

// normalizeOrZero returns the unit vector of (x, y), or zero if the input
// is the zero vector.
func normalizeOrZero(x, y float32) (nx, ny float32) {
	mag := float32(math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y)))
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// sincos returns sin(x) and cos(x) as float32.
func sincos(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
