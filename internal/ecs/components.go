package ecs

import "github.com/younwookim/arena/internal/domain/entity"

// Position is an entity's world position. Z is a fixed draw depth
// and never changes during simulation.
type Position struct {
	X, Y, Z float64
}

// Vec returns the planar part of the position
func (p Position) Vec() entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}

// Velocity is in world units per second.
// Only Y is integrated; X reports the last horizontal speed.
type Velocity struct {
	X, Y float64
}

// Body holds the sizes of a kinematic entity
type Body struct {
	Collider  entity.Vec2 // collision box size, centered on the position
	Footprint entity.Vec2 // visual size, used for arena clamping
}

// Control holds per-entity state that spans ticks
type Control struct {
	JumpHeld bool // jump direction was pressed last tick
	Grounded bool // a downward move was blocked last tick
}

// Motion is the per-tick movement report read by the animation layer
type Motion struct {
	Delta    entity.Vec2 // displacement actually committed
	Velocity Velocity
	BlockedX bool
	BlockedY bool
	Grounded bool
	Jumped   bool
	Moved    bool // an intent was produced this tick
}
