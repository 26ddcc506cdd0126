// Throw arc preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/throwpreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/camera"
	"github.com/pthm-cable/mailride/config"
	"github.com/pthm-cable/mailride/items"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30

	arcCount = 9   // arcs fanned across the deviation cone
	maxSteps = 600 // integration cap per arc
)

// ThrowParams holds the throw tuning under preview.
type ThrowParams struct {
	Speed        float32
	Gravity      float32
	AngleDeg     float32
	TargetHeight float32
	LaunchX      float32
	LaunchY      float32
	Extent       float32 // vertical world units visible in the preview
}

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Throw Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	uiFov := cfg.Derived.UIFov32
	dt := cfg.Derived.DT32
	bag := items.Rect{X: 0, Y: -uiFov/2 + 1, HalfW: 1, HalfH: 1}

	// Initialize with default values from config
	defaults := ThrowParams{
		Speed:        float32(cfg.Throw.Speed),
		Gravity:      float32(cfg.Physics.Gravity),
		AngleDeg:     float32(cfg.Throw.Angle),
		TargetHeight: float32(cfg.Throw.TargetHeight),
		LaunchX:      bag.X,
		LaunchY:      bag.Y,
		Extent:       20,
	}
	params := defaults

	arcs := make([][]rl.Vector2, 0, arcCount)

	// Time for animation
	var time float32 = 0
	animating := false

	// GUI state
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			time += rl.GetFrameTime()
		}

		if needsRegen {
			arcs = generateArcs(params, dt)
			time = 0
			needsRegen = false
		}

		overlay := camera.Overlay{ViewportW: previewSize, ViewportH: previewSize, Extent: params.Extent}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview panel
		rl.DrawRectangle(10, 10, previewSize, previewSize, rl.NewColor(235, 240, 245, 255))
		drawGameViewport(overlay, uiFov)
		drawBag(overlay, bag)
		drawTarget(overlay, params.TargetHeight)
		drawArcs(overlay, arcs)
		if animating {
			drawMarkers(overlay, arcs, &time, dt)
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Stats from the straight center arc
		center := arcs[len(arcs)/2]
		apex := arcApex(center)
		flight := float32(len(center)-1) * dt
		span := landingSpan(arcs)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Apex: %.2f  Flight: %.2fs  Landing span: %.1f", apex, flight, span), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Aim point (0, %.1f)  Cone: +/-%.1f deg", params.TargetHeight, params.AngleDeg), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Throw Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Speed slider
		rl.DrawText("Speed (launch, units/s)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"5", "50",
			params.Speed, 5, 50,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Speed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newSpeed != params.Speed {
			params.Speed = newSpeed
			needsRegen = true
		}
		panelY += 35

		// Gravity slider
		rl.DrawText("Gravity (units/s^2)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGravity := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"2", "40",
			params.Gravity, 2, 40,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Gravity), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newGravity != params.Gravity {
			params.Gravity = newGravity
			needsRegen = true
		}
		panelY += 35

		// Deviation cone slider
		rl.DrawText("Deviation cone (max, degrees)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAngle := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "45",
			params.AngleDeg, 0, 45,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.AngleDeg), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newAngle != params.AngleDeg {
			params.AngleDeg = newAngle
			needsRegen = true
		}
		panelY += 35

		// Target height slider
		rl.DrawText("Target height (aim point Y)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newTarget := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "15",
			params.TargetHeight, 0, 15,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.TargetHeight), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newTarget != params.TargetHeight {
			params.TargetHeight = newTarget
			needsRegen = true
		}
		panelY += 35

		// Launch X slider
		rl.DrawText("Launch X (release point)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newLaunchX := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-8", "8",
			params.LaunchX, -8, 8,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.LaunchX), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newLaunchX != params.LaunchX {
			params.LaunchX = newLaunchX
			needsRegen = true
		}
		panelY += 35

		// Launch Y slider
		rl.DrawText("Launch Y (release point)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newLaunchY := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-8", "8",
			params.LaunchY, -8, 8,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.LaunchY), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newLaunchY != params.LaunchY {
			params.LaunchY = newLaunchY
			needsRegen = true
		}
		panelY += 35

		// Zoom slider
		rl.DrawText("View extent (world units)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newExtent := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"8", "32",
			params.Extent, 8, 32,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Extent), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newExtent != params.Extent {
			params.Extent = newExtent
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
			time = 0
		}

		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := []string{
			"physics:",
			fmt.Sprintf("  gravity: %.1f", params.Gravity),
			"throw:",
			fmt.Sprintf("  speed: %.1f", params.Speed),
			fmt.Sprintf("  angle: %.1f", params.AngleDeg),
			fmt.Sprintf("  target_height: %.1f", params.TargetHeight),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := fmt.Sprintf(`physics:
  gravity: %.1f
throw:
  speed: %.1f
  angle: %.1f
  target_height: %.1f`,
				params.Gravity, params.Speed, params.AngleDeg, params.TargetHeight)
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// generateArcs integrates arcCount throws across the deviation cone with the
// gameplay stepper, so the preview shows exactly the trajectories the game
// produces. The center arc is the straight throw.
func generateArcs(tp ThrowParams, dt float32) [][]rl.Vector2 {
	p := items.Params{
		Gravity:      tp.Gravity,
		ThrowSpeed:   tp.Speed,
		TargetHeight: tp.TargetHeight,
	}
	floor := -tp.Extent/2 - 1

	arcs := make([][]rl.Vector2, 0, arcCount)
	maxDev := tp.AngleDeg * math.Pi / 180
	for i := 0; i < arcCount; i++ {
		dev := -maxDev + 2*maxDev*float32(i)/float32(arcCount-1)
		arcs = append(arcs, simulateArc(p, tp.LaunchX, tp.LaunchY, dev, dt, floor))
	}
	return arcs
}

// simulateArc integrates one throw and returns the world-space points it
// passes through, launch point included. Integration stops once the item
// falls below floor, or at maxSteps.
func simulateArc(p items.Params, x, y, dev, dt, floor float32) []rl.Vector2 {
	sim := items.NewSim(p, rand.New(rand.NewSource(1)))
	vx, vy := items.LaunchVelocity(p, x, y, dev)
	sim.Flying = append(sim.Flying, items.Item{X: x, Y: y, VelX: vx, VelY: vy})

	pts := make([]rl.Vector2, 0, maxSteps+1)
	pts = append(pts, rl.Vector2{X: x, Y: y})
	for i := 0; i < maxSteps; i++ {
		sim.Step(dt)
		it := sim.Flying[0]
		pts = append(pts, rl.Vector2{X: it.X, Y: it.Y})
		if it.VelY < 0 && it.Y < floor {
			break
		}
	}
	return pts
}

// toScreen maps an overlay point into the preview panel.
func toScreen(ov camera.Overlay, wx, wy float32) rl.Vector2 {
	sx, sy := ov.WorldToScreen(wx, wy)
	return rl.Vector2{X: sx + 10, Y: sy + 10}
}

// drawGameViewport outlines the region a 16:9 game window shows of the
// overlay plane.
func drawGameViewport(ov camera.Overlay, uiFov float32) {
	halfH := uiFov / 2
	halfW := halfH * 16 / 9
	tl := toScreen(ov, -halfW, halfH)
	br := toScreen(ov, halfW, -halfH)
	rl.DrawRectangleLines(int32(tl.X), int32(tl.Y), int32(br.X-tl.X), int32(br.Y-tl.Y), rl.LightGray)
}

func drawBag(ov camera.Overlay, bag items.Rect) {
	tl := toScreen(ov, bag.X-bag.HalfW, bag.Y+bag.HalfH)
	br := toScreen(ov, bag.X+bag.HalfW, bag.Y-bag.HalfH)
	rl.DrawRectangleLines(int32(tl.X), int32(tl.Y), int32(br.X-tl.X), int32(br.Y-tl.Y), rl.Brown)
}

func drawTarget(ov camera.Overlay, targetHeight float32) {
	c := toScreen(ov, 0, targetHeight)
	rl.DrawLineV(rl.Vector2{X: c.X - 8, Y: c.Y}, rl.Vector2{X: c.X + 8, Y: c.Y}, rl.Red)
	rl.DrawLineV(rl.Vector2{X: c.X, Y: c.Y - 8}, rl.Vector2{X: c.X, Y: c.Y + 8}, rl.Red)
}

func drawArcs(ov camera.Overlay, arcs [][]rl.Vector2) {
	for i, arc := range arcs {
		color := rl.NewColor(70, 120, 200, 180)
		if i == len(arcs)/2 {
			color = rl.Maroon
		}
		for j := 1; j < len(arc); j++ {
			a := toScreen(ov, arc[j-1].X, arc[j-1].Y)
			b := toScreen(ov, arc[j].X, arc[j].Y)
			rl.DrawLineV(a, b, color)
		}
	}
}

// drawMarkers draws one dot per arc at the current animation time, looping
// once the longest arc finishes.
func drawMarkers(ov camera.Overlay, arcs [][]rl.Vector2, time *float32, dt float32) {
	longest := 0
	for _, arc := range arcs {
		if len(arc) > longest {
			longest = len(arc)
		}
	}
	idx := int(*time / dt)
	if idx >= longest {
		*time = 0
		idx = 0
	}
	for _, arc := range arcs {
		j := idx
		if j >= len(arc) {
			j = len(arc) - 1
		}
		pt := toScreen(ov, arc[j].X, arc[j].Y)
		rl.DrawCircleV(pt, 4, rl.Maroon)
	}
}

func arcApex(arc []rl.Vector2) float32 {
	apex := arc[0].Y
	for _, pt := range arc {
		if pt.Y > apex {
			apex = pt.Y
		}
	}
	return apex
}

// landingSpan returns the horizontal distance between the end points of the
// two edge arcs.
func landingSpan(arcs [][]rl.Vector2) float32 {
	left := arcs[0][len(arcs[0])-1].X
	right := arcs[len(arcs)-1][len(arcs[len(arcs)-1])-1].X
	return float32(math.Abs(float64(right - left)))
}
