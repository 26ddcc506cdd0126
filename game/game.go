// Package game wires the ride together: camera, road ring, mailbox stream,
// item simulation, telemetry and rendering, driven by a single-threaded
// input, update, draw loop.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/mailride/camera"
	"github.com/pthm-cable/mailride/config"
	"github.com/pthm-cable/mailride/items"
	"github.com/pthm-cable/mailride/mailbox"
	"github.com/pthm-cable/mailride/placeholders"
	"github.com/pthm-cable/mailride/renderer"
	"github.com/pthm-cable/mailride/road"
	"github.com/pthm-cable/mailride/telemetry"
)

// Options configures a new game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config value
	OutputDir      string  // empty = no CSV output
	AssetsDir      string  // empty = placeholder sprites only
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	world ecs.World
	rng   *rand.Rand

	cam      *camera.Camera
	latitude float32
	stream   *mailbox.Stream
	sim      *items.Sim
	mesh     road.Mesh

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	flights       *telemetry.FlightTracker
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	// Rendering (nil in headless mode)
	assets  *renderer.Assets
	roadR   *renderer.RoadRenderer
	sprites *renderer.SpriteRenderer

	overlay  camera.Overlay
	skyColor rl.Color

	// Cached config values for hot paths
	dt          float32
	rideSpeed   float32
	earthRadius float32
	mailboxSize float32

	// State
	tick           int32
	paused         bool
	debugMode      bool
	headless       bool
	stepsPerUpdate int
	rngSeed        int64

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance. In windowed mode the raylib
// window must already exist; headless mode makes no raylib calls at all.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		world:          ecs.NewWorld(),
		rng:            rand.New(rand.NewSource(opts.Seed)),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: opts.StepsPerUpdate,
		rngSeed:        opts.Seed,
		dt:             cfg.Derived.DT32,
		rideSpeed:      cfg.Derived.RideSpeed32,
		earthRadius:    cfg.Derived.EarthRadius32,
		mailboxSize:    float32(cfg.Mailboxes.Size),
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		skyColor: rl.NewColor(
			uint8(cfg.Sky.R*255),
			uint8(cfg.Sky.G*255),
			uint8(cfg.Sky.B*255),
			255,
		),
	}

	g.cam = camera.New(cfg.Derived.CameraRadius, cfg.Derived.CameraRotRad, cfg.Derived.Fov32, cfg.Derived.UIFov32)
	g.overlay = g.cam.Overlay(g.screenWidth, g.screenHeight)
	g.mesh = road.Generate(cfg.Derived.EarthRadius32, cfg.Derived.RoadWidth32)
	g.stream = mailbox.NewStream(&g.world, cfg.Derived.SpacingRad, cfg.Derived.MailboxOffset)

	// The envelope texture fixes the in-world item shape; with no window we
	// read it off the placeholder image instead.
	var aspect float32
	if opts.Headless {
		b := placeholders.Envelope().Bounds()
		aspect = float32(b.Dx()) / float32(b.Dy())
	} else {
		g.assets = renderer.LoadAssets(opts.AssetsDir)
		aspect = g.assets.EnvelopeAspect()
		g.roadR = renderer.NewRoadRenderer(g.mesh, g.assets.Road)
		g.sprites = renderer.NewSpriteRenderer(g.overlay)
	}

	g.sim = items.NewSim(itemParams(cfg, aspect), g.rng)

	g.collector = telemetry.NewCollector(statsWindow, g.dt)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.flights = telemetry.NewFlightTracker(g.dt)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
		g.outputManager = om
	}

	// Fill the mailbox window so the first frame is already populated.
	spawned, dropped := g.stream.Tick(g.latitude)
	g.collector.RecordBoxes(spawned, dropped)

	return g
}

// itemParams maps config values into item simulation parameters. The bag
// sits bottom-center of the overlay, one unit above the lower edge.
func itemParams(cfg *config.Config, aspect float32) items.Params {
	return items.Params{
		Gravity:      float32(cfg.Physics.Gravity),
		ThrowSpeed:   float32(cfg.Throw.Speed),
		ThrowAngle:   cfg.Derived.ThrowAngleRad,
		TargetHeight: float32(cfg.Throw.TargetHeight),
		Scale:        float32(cfg.Items.Scale),
		HoldScale:    float32(cfg.Items.HoldScale),
		HandRadius:   float32(cfg.Items.HandRadius),
		MaxSpin:      float32(cfg.Items.MaxSpin),
		Aspect:       aspect,
		Bag: items.Rect{
			X:     0,
			Y:     -cfg.Derived.UIFov32/2 + 1,
			HalfW: 1,
			HalfH: 1,
		},
	}
}

// SetStatsCallback registers a hook invoked with each flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Latitude returns the rider's angular progress in radians.
func (g *Game) Latitude() float32 {
	return g.latitude
}

// Unload releases rendering resources and closes output files.
func (g *Game) Unload() {
	if g.assets != nil {
		g.assets.Unload()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output manager", "error", err)
		}
	}
}
