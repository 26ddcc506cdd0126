package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/items"
)

// handleInput processes window, keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Debug HUD toggle
	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
	}

	if g.paused {
		return
	}

	g.handleMouse()
}

// handleMouse maps pointer presses and releases into grab and throw calls,
// through the latched overlay mapping.
func (g *Game) handleMouse() {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		wx, wy := g.overlay.ScreenToWorld(mouse.X, mouse.Y)

		grab, index := g.sim.Press(wx, wy)
		switch grab {
		case items.GrabItem:
			g.collector.RecordPickup()
			g.flights.RecordPickup(index, g.tick)
		case items.GrabBag:
			g.collector.RecordBagDraw()
		default:
			g.collector.RecordMissedGrab()
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		wx, wy := g.overlay.ScreenToWorld(mouse.X, mouse.Y)

		if g.sim.Release(wx, wy) {
			g.collector.RecordThrow()
			g.flights.RecordThrow(g.tick)
		}
	}
}

// handleResize re-latches the viewport after a window resize.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.overlay = g.cam.Overlay(w, h)
	if g.sprites != nil {
		g.sprites.SetOverlay(g.overlay)
	}
}
