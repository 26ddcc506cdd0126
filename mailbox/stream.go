// Package mailbox maintains the sliding window of mailboxes around the rider.
package mailbox

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/mailride/components"
)

// Stream owns the mailbox entities. Each tick it drops pairs that fell a
// half-turn behind the rider and spawns pairs ahead until the window extends
// a half-turn in front, so the rider always approaches stocked road.
type Stream struct {
	world  *ecs.World
	boxes  ecs.Map1[components.Mailbox]
	filter ecs.Filter1[components.Mailbox]

	spacing float32 // latitude between consecutive pairs, radians
	offset  float32 // lateral distance from road center to box center
	count   int
}

// NewStream creates an empty stream. spacing is the latitude step between
// pairs in radians; offset is the lateral distance from the road center.
func NewStream(world *ecs.World, spacing, offset float32) *Stream {
	return &Stream{
		world:   world,
		boxes:   ecs.NewMap1[components.Mailbox](world),
		filter:  ecs.NewFilter1[components.Mailbox](world),
		spacing: spacing,
		offset:  offset,
	}
}

// Tick advances the window to the rider's latitude. Boxes more than pi
// behind are removed; pairs are appended ahead until the furthest pair is
// at least pi in front. Returns how many boxes were spawned and dropped.
func (s *Stream) Tick(myLatitude float32) (spawned, dropped int) {
	// First pass: find boxes behind the window and the furthest latitude.
	// The fold seeds at the rider so an empty stream fills from there.
	furthest := myLatitude
	behind := myLatitude - math.Pi
	var toRemove []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		box := query.Get()
		if box.Latitude <= behind {
			toRemove = append(toRemove, query.Entity())
			continue
		}
		if box.Latitude > furthest {
			furthest = box.Latitude
		}
	}

	// Second pass: mutate only after the query is fully consumed.
	for _, entity := range toRemove {
		s.world.RemoveEntity(entity)
	}
	dropped = len(toRemove)
	s.count -= dropped

	if s.spacing <= 0 {
		return spawned, dropped
	}
	for furthest < myLatitude+math.Pi {
		furthest += s.spacing
		s.boxes.NewEntity(&components.Mailbox{X: s.offset, Latitude: furthest})
		s.boxes.NewEntity(&components.Mailbox{X: -s.offset, Latitude: furthest})
		spawned += 2
	}
	s.count += spawned

	return spawned, dropped
}

// Each calls fn for every mailbox. fn must not spawn or remove boxes.
func (s *Stream) Each(fn func(components.Mailbox)) {
	query := s.filter.Query()
	for query.Next() {
		fn(*query.Get())
	}
}

// Count returns the number of live mailboxes.
func (s *Stream) Count() int {
	return s.count
}
