package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/entity"
)

func createTestBody() Body {
	return Body{
		Collider:  entity.Vec2{X: 64, Y: 32},
		Footprint: entity.Vec2{X: 64, Y: 64},
	}
}

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Velocity)
	assert.NotNil(t, w.Body)
	assert.NotNil(t, w.IsPlayer)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Position[id1] = Position{X: 100, Y: 200}

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(Position{X: 1, Y: 2, Z: 2}, createTestBody())

	require.True(t, w.Exists(id))

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	assert.NotContains(t, w.Velocity, id)
	assert.NotContains(t, w.Body, id)
	assert.NotContains(t, w.Control, id)
	assert.NotContains(t, w.AffectedByGravity, id)
	assert.NotContains(t, w.IsPlayer, id)
	assert.Equal(t, EntityID(0), w.PlayerID)
}

func TestCreatePlayer(t *testing.T) {
	w := NewWorld()
	body := createTestBody()

	id := w.CreatePlayer(Position{X: -100, Y: 0, Z: 2}, body)

	assert.Equal(t, id, w.PlayerID)
	assert.Equal(t, Position{X: -100, Y: 0, Z: 2}, w.GetPlayerPosition())
	assert.Equal(t, Velocity{}, w.Velocity[id])
	assert.Equal(t, body, w.Body[id])
	assert.True(t, w.HasGravity(id))
	assert.Contains(t, w.IsPlayer, id)
}

func TestCreateKinematic_WithoutGravity(t *testing.T) {
	w := NewWorld()

	id := w.CreateKinematic(Position{}, createTestBody(), false)

	assert.False(t, w.HasGravity(id))
	assert.NotContains(t, w.IsPlayer, id)
	assert.Equal(t, EntityID(0), w.PlayerID)
}

func TestKinematics_SortedAndComplete(t *testing.T) {
	w := NewWorld()
	a := w.CreateKinematic(Position{}, createTestBody(), false)
	b := w.CreateKinematic(Position{}, createTestBody(), true)
	c := w.CreateKinematic(Position{}, createTestBody(), false)

	// Missing velocity excludes the entity
	delete(w.Velocity, b)

	assert.Equal(t, []EntityID{a, c}, w.Kinematics())
}

func TestBox(t *testing.T) {
	w := NewWorld()
	id := w.CreateKinematic(Position{X: 10, Y: 20, Z: 2}, createTestBody(), false)

	box := w.Box(id)

	assert.Equal(t, entity.Vec2{X: 10, Y: 20}, box.Center)
	assert.Equal(t, entity.Vec2{X: 32, Y: 16}, box.Half)
}
