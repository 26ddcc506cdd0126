// Package components defines ECS components for the game world.
package components

// Mailbox marks a roadside mailbox pinned to a point on the cylinder.
// X is the lateral offset from the road center; Latitude is the angular
// position around the ring in radians. Mailboxes never move once spawned.
type Mailbox struct {
	X        float32
	Latitude float32
}
