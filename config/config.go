// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Camera    CameraConfig    `yaml:"camera"`
	Sky       SkyConfig       `yaml:"sky"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Throw     ThrowConfig     `yaml:"throw"`
	Items     ItemsConfig     `yaml:"items"`
	Mailboxes MailboxesConfig `yaml:"mailboxes"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds the cylinder dimensions and ride motion.
type WorldConfig struct {
	EarthRadius float64 `yaml:"earth_radius"` // Cylinder radius in world units
	RideSpeed   float64 `yaml:"ride_speed"`   // Latitude advance in radians per second
	RoadWidth   float64 `yaml:"road_width"`   // Lateral half-extent of the road surface
}

// CameraConfig holds the rig and overlay framing parameters.
type CameraConfig struct {
	Fov    float64 `yaml:"fov"`    // Vertical field of view in degrees (3D pass)
	UIFov  float64 `yaml:"ui_fov"` // Vertical visible extent of the overlay in world units
	Height float64 `yaml:"height"` // Eye height above the road surface
	Rot    float64 `yaml:"rot"`    // Pitch away from the tangent in degrees (positive looks up)
}

// SkyConfig holds the clear color as 0..1 channels.
type SkyConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// PhysicsConfig holds item physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Downward acceleration on flying items
	DT      float64 `yaml:"dt"`      // Fixed step for headless runs and tools
}

// ThrowConfig holds release parameters for thrown items.
type ThrowConfig struct {
	Speed        float64 `yaml:"speed"`         // Launch speed in overlay units per second
	Angle        float64 `yaml:"angle"`         // Max random deviation from the aim direction, degrees
	TargetHeight float64 `yaml:"target_height"` // Y coordinate of the fixed aim point
}

// ItemsConfig holds item sizing and grab parameters.
type ItemsConfig struct {
	Scale      float64 `yaml:"scale"`       // Half-height of an item in overlay units
	HoldScale  float64 `yaml:"hold_scale"`  // Extra scale applied while held
	HandRadius float64 `yaml:"hand_radius"` // Grab padding around item bounds
	MaxSpin    float64 `yaml:"max_spin"`    // Max |angular velocity| on release, radians per second
}

// MailboxesConfig holds mailbox placement parameters.
type MailboxesConfig struct {
	Size    float64 `yaml:"size"`    // Billboard edge length in world units
	Spacing float64 `yaml:"spacing"` // Latitude between consecutive pairs, degrees
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Window length in sim seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames kept for perf percentiles
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32     float32 // Screen.Width as float32
	ScreenH32     float32 // Screen.Height as float32
	DT32          float32 // Physics.DT as float32
	Fov32         float32 // Camera.Fov as float32, degrees
	UIFov32       float32 // Camera.UIFov as float32
	CameraRotRad  float32 // Camera.Rot in radians
	CameraRadius  float32 // EarthRadius + Camera.Height
	EarthRadius32 float32 // World.EarthRadius as float32
	RideSpeed32   float32 // World.RideSpeed as float32
	RoadWidth32   float32 // World.RoadWidth as float32
	ThrowAngleRad float32 // Throw.Angle in radians
	SpacingRad    float32 // Mailboxes.Spacing in radians
	MailboxOffset float32 // Lateral distance from road center to a mailbox center
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.Fov32 = float32(c.Camera.Fov)
	c.Derived.UIFov32 = float32(c.Camera.UIFov)
	c.Derived.CameraRotRad = float32(c.Camera.Rot * math.Pi / 180)
	c.Derived.CameraRadius = float32(c.World.EarthRadius + c.Camera.Height)
	c.Derived.EarthRadius32 = float32(c.World.EarthRadius)
	c.Derived.RideSpeed32 = float32(c.World.RideSpeed)
	c.Derived.RoadWidth32 = float32(c.World.RoadWidth)
	c.Derived.ThrowAngleRad = float32(c.Throw.Angle * math.Pi / 180)
	c.Derived.SpacingRad = float32(c.Mailboxes.Spacing * math.Pi / 180)
	c.Derived.MailboxOffset = float32(c.World.RoadWidth + c.Mailboxes.Size/2)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
