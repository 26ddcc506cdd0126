// Package camera provides the cylindrical camera rig and the screen overlay
// projection for UI-space drawing.
package camera

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Rig describes the 3D view for one frame.
type Rig struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
	FovDeg float32 // vertical field of view, degrees
}

// Camera tracks the rider's progress around the cylinder and frames both
// render passes. Latitude 0 puts the eye on top of the cylinder looking
// along -Z; advancing latitude carries the eye around the ring.
type Camera struct {
	// Latitude is the rider's angular progress in radians.
	Latitude float32

	radius float32 // orbit radius of the eye
	rot    float32 // pitch away from the travel tangent, radians
	fov    float32 // vertical FOV, degrees
	uiFov  float32 // overlay vertical extent, world units
}

// New creates a camera orbiting at the given radius. rot pitches the view
// away from the travel tangent (positive looks away from the surface),
// fovDeg is the 3D vertical field of view and uiFov the overlay extent.
func New(radius, rot, fovDeg, uiFov float32) *Camera {
	return &Camera{
		radius: radius,
		rot:    rot,
		fov:    fovDeg,
		uiFov:  uiFov,
	}
}

// Rig returns the eye, target and up vectors for the current latitude.
// The eye rides the orbit circle in the x=0 plane; forward follows the
// travel tangent pitched by rot, and up stays perpendicular to forward.
func (c *Camera) Rig() Rig {
	sinL, cosL := sincos(c.Latitude)
	radial := Vec3{0, cosL, -sinL}
	tangent := Vec3{0, -sinL, -cosL}

	sinR, cosR := sincos(c.rot)
	eye := radial.Scale(c.radius)
	forward := tangent.Scale(cosR).Add(radial.Scale(sinR))
	up := radial.Scale(cosR).Add(tangent.Scale(-sinR))

	return Rig{
		Eye:    eye,
		Target: eye.Add(forward),
		Up:     up,
		FovDeg: c.fov,
	}
}

// UIFov returns the overlay's vertical extent in world units.
func (c *Camera) UIFov() float32 {
	return c.uiFov
}

// Overlay returns the overlay projection for the given viewport.
// The projection does not depend on latitude.
func (c *Camera) Overlay(viewportW, viewportH float32) Overlay {
	return Overlay{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Extent:    c.uiFov,
	}
}

// OnCylinder maps a road-plane point (x, latitude) to world space.
// x runs across the road, latitude around the ring.
func OnCylinder(radius, x, latitude float32) Vec3 {
	sinL, cosL := sincos(latitude)
	return Vec3{x, radius * cosL, -radius * sinL}
}

// Overlay is a fixed-scale 2D projection layered over the 3D view.
// World origin maps to the viewport center, +Y is up on screen, and the
// vertical visible extent is always Extent world units regardless of
// viewport size.
type Overlay struct {
	ViewportW, ViewportH float32
	Extent               float32
}

// Scale returns screen pixels per world unit.
func (o Overlay) Scale() float32 {
	return o.ViewportH / o.Extent
}

// WorldToScreen converts overlay world coordinates to screen pixels.
func (o Overlay) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := o.Scale()
	sx = o.ViewportW/2 + wx*s
	sy = o.ViewportH/2 - wy*s
	return sx, sy
}

// ScreenToWorld converts screen pixels to overlay world coordinates.
func (o Overlay) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := o.Scale()
	wx = (sx - o.ViewportW/2) / s
	wy = (o.ViewportH/2 - sy) / s
	return wx, wy
}

// sincos returns sin(x) and cos(x) as float32.
func sincos(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}
