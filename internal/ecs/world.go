package ecs

import (
	"slices"

	"github.com/younwookim/arena/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]Position
	Velocity map[EntityID]Velocity
	Body     map[EntityID]Body
	Control  map[EntityID]Control
	Motion   map[EntityID]Motion

	// Tags
	AffectedByGravity map[EntityID]struct{}
	IsPlayer          map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:            1, // 0 is "nil"
		Position:          make(map[EntityID]Position),
		Velocity:          make(map[EntityID]Velocity),
		Body:              make(map[EntityID]Body),
		Control:           make(map[EntityID]Control),
		Motion:            make(map[EntityID]Motion),
		AffectedByGravity: make(map[EntityID]struct{}),
		IsPlayer:          make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Body, id)
	delete(w.Control, id)
	delete(w.Motion, id)
	delete(w.AffectedByGravity, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreateKinematic creates an entity that moves under the physics pipeline
func (w *World) CreateKinematic(pos Position, body Body, gravity bool) EntityID {
	id := w.NewEntity()

	w.Position[id] = pos
	w.Velocity[id] = Velocity{}
	w.Body[id] = body
	w.Control[id] = Control{}
	if gravity {
		w.AffectedByGravity[id] = struct{}{}
	}

	return id
}

// CreatePlayer creates the player entity. The player falls under gravity.
func (w *World) CreatePlayer(pos Position, body Body) EntityID {
	id := w.CreateKinematic(pos, body, true)
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// Kinematics returns every entity with Position, Velocity and Body, in id order
func (w *World) Kinematics() []EntityID {
	ids := make([]EntityID, 0, len(w.Body))
	for id := range w.Body {
		if _, ok := w.Position[id]; !ok {
			continue
		}
		if _, ok := w.Velocity[id]; !ok {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// HasGravity reports whether the entity is affected by gravity
func (w *World) HasGravity(id EntityID) bool {
	_, ok := w.AffectedByGravity[id]
	return ok
}

// Box returns the entity's collider in world coordinates
func (w *World) Box(id EntityID) entity.AABB {
	return entity.NewAABB(w.Position[id].Vec(), w.Body[id].Collider)
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}
