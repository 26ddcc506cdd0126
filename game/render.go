package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/camera"
	"github.com/pthm-cable/mailride/components"
	"github.com/pthm-cable/mailride/renderer"
	"github.com/pthm-cable/mailride/telemetry"
)

// Draw renders the frame: 3D pass (road ring, mailbox billboards), then the
// overlay pass (bag, flying items, held item, hand cursor), then the HUD.
// Closes the perf tick Update opened.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(g.skyColor)

	g.cam.Latitude = g.latitude
	cam3d := renderer.RigCamera(g.cam.Rig())

	rl.BeginMode3D(cam3d)
	g.roadR.Draw()
	g.drawMailboxes(cam3d)
	rl.EndMode3D()

	g.drawOverlay()

	if g.debugMode {
		g.drawHUD()
	}
	if g.paused {
		rl.DrawText("PAUSED", 10, 10, 20, rl.Yellow)
	}

	rl.EndDrawing()

	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()
}

// drawMailboxes draws every mailbox in the window as a billboard resting on
// the road surface.
func (g *Game) drawMailboxes(cam3d rl.Camera3D) {
	size := g.mailboxSize
	g.stream.Each(func(box components.Mailbox) {
		pos := camera.OnCylinder(g.earthRadius+size/2, box.X, box.Latitude)
		renderer.DrawBillboard(cam3d, g.assets.Mailbox, pos, size)
	})
}

// drawOverlay draws the 2D layer: bag, flying pile oldest-first so later
// throws land on top, then the held item and hand cursor at the pointer.
func (g *Game) drawOverlay() {
	p := g.sim.Params()

	g.sprites.Draw(g.assets.Bag, p.Bag.X, p.Bag.Y, p.Bag.HalfW*2, p.Bag.HalfH*2, 0)

	for i := range g.sim.Flying {
		it := &g.sim.Flying[i]
		g.sprites.Draw(g.assets.Envelope, it.X, it.Y, it.HalfW*2, it.HalfH*2, it.Rot)
	}

	mouse := rl.GetMousePosition()
	wx, wy := g.overlay.ScreenToWorld(mouse.X, mouse.Y)

	if held := g.sim.Held; held != nil {
		g.sprites.Draw(g.assets.Envelope, wx, wy,
			held.HalfW*2*p.HoldScale, held.HalfH*2*p.HoldScale, held.Rot)
		g.sprites.Draw(g.assets.HoldingHand, wx, wy, p.HandRadius*2, p.HandRadius*2, 0)
	} else {
		g.sprites.Draw(g.assets.Hand, wx, wy, p.HandRadius*2, p.HandRadius*2, 0)
	}
}

// drawHUD draws the debug readout.
func (g *Game) drawHUD() {
	rl.DrawFPS(10, 35)
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Latitude: %.2f rad", g.latitude), 10, 85, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Boxes: %d  Flying: %d", g.stream.Count(), len(g.sim.Flying)), 10, 110, 20, rl.White)
}
