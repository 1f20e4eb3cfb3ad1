package system

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
)

// Input is the per-tick movement intent produced by the input mapping layer.
// Direction is normalized; it is ignored when Active is false.
type Input struct {
	Active    bool
	Direction entity.Vec2
}

// NoInput is the absent intent
var NoInput = Input{}

// MoveIntent represents a movement intention for a single tick
type MoveIntent struct {
	EntityID ecs.EntityID
	Delta    entity.Vec2 // proposed displacement in world units
	Jumped   bool
}

// MovementSettings holds the constants read by ResolveIntent
type MovementSettings struct {
	Speed              float64
	JumpImpulse        float64
	QuantizeHorizontal bool
}

// ResolveIntent turns an input into a proposed displacement.
// A newly pressed upward direction while grounded sets vel.Y to the jump impulse.
// ok is false when there is no input and no vertical velocity.
func ResolveIntent(id ecs.EntityID, in Input, gravity bool, vel *ecs.Velocity, ctl *ecs.Control, mv MovementSettings, dt float64) (MoveIntent, bool) {
	dir := in.Direction
	if !in.Active {
		dir = entity.Vec2{}
	}

	pressed := dir.Y > 0
	jumped := false
	if gravity && pressed && !ctl.JumpHeld && ctl.Grounded && mv.JumpImpulse > 0 {
		vel.Y = mv.JumpImpulse
		jumped = true
	}
	ctl.JumpHeld = pressed

	vel.X = dir.X * mv.Speed

	if !in.Active && (!gravity || vel.Y == 0) {
		return MoveIntent{}, false
	}

	dx := dir.X * mv.Speed * dt
	if mv.QuantizeHorizontal {
		dx = math.Round(dx)
	}

	var dy float64
	if gravity {
		dy = vel.Y * dt
	} else {
		dy = dir.Y * mv.Speed * dt
	}

	return MoveIntent{
		EntityID: id,
		Delta:    entity.Vec2{X: dx, Y: dy},
		Jumped:   jumped,
	}, true
}
