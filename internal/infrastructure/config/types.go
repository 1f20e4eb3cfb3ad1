package config

import "github.com/younwookim/arena/internal/domain/entity"

// Fallback upper bound for vertical velocity when none is configured
const DefaultMaxVelocity = 2000.0

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	Gravity   GravitySettings `json:"gravity"`
	Collision CollisionConfig `json:"collision"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	Framerate    int     `json:"framerate"`
	MaxFrameTime float64 `json:"maxFrameTime"` // seconds, 0 = unbounded
}

type MovementConfig struct {
	Speed float64 `json:"speed"` // units per second
	// QuantizeHorizontal rounds horizontal displacement to whole units
	QuantizeHorizontal bool `json:"quantizeHorizontal"`
}

type JumpConfig struct {
	Impulse float64 `json:"impulse"` // units per second, 0 disables jumping
}

// GravitySettings configures the vertical velocity integrator.
// Zero bounds fall back to the arena-derived defaults.
type GravitySettings struct {
	Acceleration float64 `json:"acceleration"` // units per second²
	MinVelocity  float64 `json:"minVelocity"`
	MaxVelocity  float64 `json:"maxVelocity"`
}

// VelocityRange returns the clamp range for vertical velocity
func (g GravitySettings) VelocityRange(arenaHeight, footprintHeight float64) (lo, hi float64) {
	lo, hi = g.MinVelocity, g.MaxVelocity
	if lo == 0 {
		lo = -(arenaHeight/2 - footprintHeight/2)
	}
	if hi == 0 {
		hi = DefaultMaxVelocity
	}
	return lo, hi
}

// Broad-phase implementations for tile queries
const (
	BroadPhaseGrid    = "grid"
	BroadPhaseSpatial = "spatial"
)

type CollisionConfig struct {
	BroadPhase string `json:"broadPhase"` // grid (default) or spatial
}

// BroadPhaseOrDefault returns the broad-phase name, grid when unset
func (c CollisionConfig) BroadPhaseOrDefault() string {
	if c.BroadPhase == "" {
		return BroadPhaseGrid
	}
	return c.BroadPhase
}

// SizeConfig is a width/height pair in world units
type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Vec returns the size as a vector
func (s SizeConfig) Vec() entity.Vec2 {
	return entity.Vec2{X: s.Width, Y: s.Height}
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec returns the position as a vector
func (p PositionConfig) Vec() entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}
