package main

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/mailride/config"
	"github.com/pthm-cable/mailride/items"
)

// Integration cap per throw; ~20s at the default dt.
const maxArcSteps = 1200

// ArcMetrics describes the simulated arcs of one evaluation.
type ArcMetrics struct {
	Apex     float64 // peak height of the straight throw
	RiseTime float64 // seconds from release to apex
	Span     float64 // landing distance between the two cone-edge throws
}

// ThrowEvaluator scores a parameter vector by integrating throws with the
// gameplay stepper and comparing the resulting arcs against the desired
// flight shape. Loss is a sum of squared relative errors; zero means every
// target is hit exactly.
type ThrowEvaluator struct {
	params   *ParamVector
	baseCfg  *config.Config
	riseTime float64 // desired release-to-apex seconds for the straight throw
	spread   float64 // desired landing span across the deviation cone

	lastMetrics ArcMetrics
}

// NewThrowEvaluator creates a new evaluator.
func NewThrowEvaluator(params *ParamVector, baseCfg *config.Config, riseTime, spread float64) *ThrowEvaluator {
	return &ThrowEvaluator{
		params:   params,
		baseCfg:  baseCfg,
		riseTime: riseTime,
		spread:   spread,
	}
}

// LastMetrics returns the arc metrics from the most recent evaluation.
func (te *ThrowEvaluator) LastMetrics() ArcMetrics {
	return te.lastMetrics
}

// Evaluate computes the loss for a raw parameter vector (lower = better).
// Three throws are integrated from the bag center: the straight throw sets
// apex and rise time, the two cone-edge throws set the landing span.
func (te *ThrowEvaluator) Evaluate(raw []float64) float64 {
	clamped := te.params.Clamp(raw)
	p := items.Params{
		ThrowSpeed:   float32(clamped[0]),
		Gravity:      float32(clamped[1]),
		ThrowAngle:   float32(clamped[2] * math.Pi / 180),
		TargetHeight: float32(te.baseCfg.Throw.TargetHeight),
	}
	dt := te.baseCfg.Derived.DT32
	launchY := -te.baseCfg.Derived.UIFov32/2 + 1 // bag center

	apex, rise, okC := integrateStraight(p, launchY, dt)
	leftX, okL := integrateEdge(p, launchY, p.ThrowAngle, dt)
	rightX, okR := integrateEdge(p, launchY, -p.ThrowAngle, dt)

	metrics := ArcMetrics{
		Apex:     apex,
		RiseTime: rise,
		Span:     math.Abs(rightX - leftX),
	}
	te.lastMetrics = metrics

	target := te.baseCfg.Throw.TargetHeight
	loss := sq((metrics.Apex - target) / target)
	loss += sq((metrics.RiseTime - te.riseTime) / te.riseTime)
	loss += sq((metrics.Span - te.spread) / te.spread)
	if !okC || !okL || !okR {
		// A throw never came back down inside the step cap.
		loss += 10
	}
	return loss
}

// launch starts a single-item sim with a throw of the given deviation,
// released at the bag center.
func launch(p items.Params, launchY, dev float32) *items.Sim {
	sim := items.NewSim(p, rand.New(rand.NewSource(1)))
	vx, vy := items.LaunchVelocity(p, 0, launchY, dev)
	sim.Flying = append(sim.Flying, items.Item{X: 0, Y: launchY, VelX: vx, VelY: vy})
	return sim
}

// integrateStraight steps the zero-deviation throw until its apex and
// returns the peak height and the time it took to get there. ok is false if
// the throw was still rising at the step cap.
func integrateStraight(p items.Params, launchY, dt float32) (apex, rise float64, ok bool) {
	sim := launch(p, launchY, 0)
	for i := 1; i <= maxArcSteps; i++ {
		sim.Step(dt)
		it := sim.Flying[0]
		if it.VelY <= 0 {
			return float64(it.Y), float64(float32(i) * dt), true
		}
	}
	return float64(sim.Flying[0].Y), float64(float32(maxArcSteps) * dt), false
}

// integrateEdge steps a cone-edge throw until it falls back through the
// launch height and returns the X position where it landed. ok is false if
// it never came down inside the step cap.
func integrateEdge(p items.Params, launchY, dev, dt float32) (landingX float64, ok bool) {
	sim := launch(p, launchY, dev)
	for i := 0; i < maxArcSteps; i++ {
		sim.Step(dt)
		it := sim.Flying[0]
		if it.VelY < 0 && it.Y <= launchY {
			return float64(it.X), true
		}
	}
	return float64(sim.Flying[0].X), false
}

func sq(x float64) float64 {
	return x * x
}
