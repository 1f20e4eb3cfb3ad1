package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// PhysicsSystem runs gravity, intent, collision and commit for every kinematic
// entity once per tick
type PhysicsSystem struct {
	movement MovementSettings
	gravity  config.GravitySettings
	arena    entity.Vec2
	resolver *CollisionResolver
}

// NewPhysicsSystem creates a new physics system for an arena centered on the origin
func NewPhysicsSystem(cfg *config.PhysicsConfig, arena entity.Vec2, tiles TileQuery) *PhysicsSystem {
	return &PhysicsSystem{
		movement: MovementSettings{
			Speed:              cfg.Movement.Speed,
			JumpImpulse:        cfg.Jump.Impulse,
			QuantizeHorizontal: cfg.Movement.QuantizeHorizontal,
		},
		gravity:  cfg.Gravity,
		arena:    arena,
		resolver: NewCollisionResolver(tiles),
	}
}

// Resolver returns the collision resolver used by the system
func (s *PhysicsSystem) Resolver() *CollisionResolver {
	return s.resolver
}

// pendingMove is one entity's tick result before it is committed
type pendingMove struct {
	id     ecs.EntityID
	vel    ecs.Velocity
	ctl    ecs.Control
	delta  entity.Vec2
	motion ecs.Motion
}

// Update advances the simulation by dt. Entities without an entry in inputs
// get no input. Every entity resolves against the tiles and prior-tick
// positions; positions are committed only after all entities are resolved.
func (s *PhysicsSystem) Update(w *ecs.World, inputs map[ecs.EntityID]Input, dt float64) {
	if dt <= 0 {
		return
	}

	ids := w.Kinematics()
	moves := make([]pendingMove, 0, len(ids))
	for _, id := range ids {
		moves = append(moves, s.resolve(w, id, inputs[id], dt))
	}

	for _, m := range moves {
		s.commit(w, m)
	}
}

func (s *PhysicsSystem) resolve(w *ecs.World, id ecs.EntityID, in Input, dt float64) pendingMove {
	body := w.Body[id]
	vel := w.Velocity[id]
	ctl := w.Control[id]
	gravity := w.HasGravity(id)

	if gravity {
		lo, hi := s.gravity.VelocityRange(s.arena.Y, body.Footprint.Y)
		vel = IntegrateGravity(vel, s.gravity.Acceleration, lo, hi, dt)
	}

	m := pendingMove{id: id}
	intent, ok := ResolveIntent(id, in, gravity, &vel, &ctl, s.movement, dt)
	m.motion.Moved = ok
	m.motion.Jumped = intent.Jumped

	if ok {
		res := s.resolver.Resolve(w.Box(id), intent.Delta)
		m.delta = res.Delta
		m.motion.BlockedX = res.BlockedX
		m.motion.BlockedY = res.BlockedY

		if res.BlockedX {
			vel.X = 0
		}
		if res.BlockedY {
			vel.Y = 0
		}
		ctl.Grounded = res.BlockedY && intent.Delta.Y < 0
	}

	m.vel = vel
	m.ctl = ctl
	return m
}

func (s *PhysicsSystem) commit(w *ecs.World, m pendingMove) {
	body := w.Body[m.id]
	before := w.Position[m.id]
	after := CommitPosition(before, m.delta, PlayableArea(s.arena, body.Footprint))

	// The arena edge stops a move the same way a tile does
	unclamped := before.Vec().Add(m.delta)
	if m.delta.Y != 0 && after.Y != unclamped.Y {
		m.vel.Y = 0
		m.motion.BlockedY = true
		if m.delta.Y < 0 {
			m.ctl.Grounded = true
		}
	}
	if m.delta.X != 0 && after.X != unclamped.X {
		m.vel.X = 0
		m.motion.BlockedX = true
	}

	m.motion.Delta = after.Vec().Sub(before.Vec())
	m.motion.Velocity = m.vel
	m.motion.Grounded = m.ctl.Grounded

	w.Position[m.id] = after
	w.Velocity[m.id] = m.vel
	w.Control[m.id] = m.ctl
	w.Motion[m.id] = m.motion
}
