package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
)

// PlayableArea returns the region an entity's center may occupy inside an
// arena centered on the origin: the arena half-extent minus half the footprint.
func PlayableArea(arena, footprint entity.Vec2) entity.AABB {
	return entity.AABB{Half: arena.Scale(0.5)}.Shrink(footprint.Scale(0.5))
}

// CommitPosition applies delta to pos and clamps the result to playable.
// A zero delta leaves pos untouched.
func CommitPosition(pos ecs.Position, delta entity.Vec2, playable entity.AABB) ecs.Position {
	if delta.IsZero() {
		return pos
	}
	p := playable.Clamp(pos.Vec().Add(delta))
	pos.X, pos.Y = p.X, p.Y
	return pos
}
