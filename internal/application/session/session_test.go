package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

const testDT = 1.0 / 60

func createTestLoader(t *testing.T) (*config.Loader, *config.GameConfig) {
	t.Helper()
	loader := config.NewLoader("../../../cmd/game/configs")
	game, err := loader.LoadAll()
	require.NoError(t, err)
	return loader, game
}

func TestLoad_LevelOne(t *testing.T) {
	loader, game := createTestLoader(t)

	s, err := Load(loader, game, "level_one")
	require.NoError(t, err)

	assert.Equal(t, "level_one", s.Stage.ID)
	assert.Equal(t, 32, s.Tiles.Cols)
	assert.Equal(t, 32, s.Tiles.Rows)
	assert.Equal(t, entity.Vec2{X: 640, Y: 640}, s.Arena())
	assert.Equal(t, -100.0, s.PlayerPosition().X)
	assert.Equal(t, 0.0, s.PlayerPosition().Y)
	assert.Equal(t, 2.0, s.PlayerPosition().Z)
	assert.Equal(t, entity.Vec2{X: 32, Y: 16}, s.PlayerBox().Half)
}

func TestSession_LandsOnPlatform(t *testing.T) {
	loader, game := createTestLoader(t)
	s, err := Load(loader, game, "level_one")
	require.NoError(t, err)

	var motion = s.Step(system.NoInput, testDT)
	assert.True(t, motion.Moved)
	assert.Less(t, motion.Delta.Y, 0.0)

	for i := 0; i < 300; i++ {
		motion = s.Step(system.NoInput, testDT)
	}

	// Row 24 platform top is at y=-160
	assert.InDelta(t, -144.0, s.PlayerPosition().Y, 1e-6)
	assert.True(t, motion.Grounded)
	assert.Equal(t, 301, s.Frame())
	assert.InDelta(t, 301*testDT, s.Elapsed(), 1e-9)
}

func TestSession_StepIgnoresNonPositiveDT(t *testing.T) {
	loader, game := createTestLoader(t)
	s, err := Load(loader, game, "level_one")
	require.NoError(t, err)

	s.Step(system.NoInput, 0)

	assert.Equal(t, 0, s.Frame())
	assert.Equal(t, 0.0, s.PlayerPosition().Y)
}

func TestLoad_LevelTwoFromTMX(t *testing.T) {
	loader, game := createTestLoader(t)

	s, err := Load(loader, game, "level_two")
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.PlayerPosition().X)
	assert.Equal(t, 100.0, s.PlayerPosition().Y)

	// index 11 is remapped to floor by the stage file
	tile, ok := s.Tiles.Tile(10, 14)
	require.True(t, ok)
	assert.Equal(t, entity.TileFloor, tile.Type)

	for i := 0; i < 300; i++ {
		s.Step(system.NoInput, testDT)
	}
	assert.InDelta(t, 56.0, s.PlayerPosition().Y, 1e-6)
}

func TestNew_SpawnOutsideArena(t *testing.T) {
	loader, game := createTestLoader(t)
	stage, err := loader.LoadStage("level_one")
	require.NoError(t, err)
	tiles, err := system.LoadStage(loader.FS(), stage)
	require.NoError(t, err)

	stage.PlayerSpawn = &config.PositionConfig{X: 1000, Y: 0}
	s, err := New(game, stage, tiles)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_MissingStage(t *testing.T) {
	loader, game := createTestLoader(t)

	s, err := Load(loader, game, "nope")

	assert.Nil(t, s)
	assert.Error(t, err)
}

// The grid and resolv broad-phases drive identical simulations
func TestSession_BroadPhasesAgree(t *testing.T) {
	loader, game := createTestLoader(t)

	gridGame := *game
	gridPhysics := *game.Physics
	gridPhysics.Collision.BroadPhase = config.BroadPhaseGrid
	gridGame.Physics = &gridPhysics

	spatialGame := *game
	spatialPhysics := *game.Physics
	spatialPhysics.Collision.BroadPhase = config.BroadPhaseSpatial
	spatialGame.Physics = &spatialPhysics

	a, err := Load(loader, &gridGame, "level_one")
	require.NoError(t, err)
	b, err := Load(loader, &spatialGame, "level_one")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(9))
	states := []system.InputState{{Left: true}, {Right: true}, {Up: true}, {Up: true, Left: true}, {}}
	for i := 0; i < 1200; i++ {
		in := states[rng.Intn(len(states))].Intent()
		a.Step(in, testDT)
		b.Step(in, testDT)
		require.Equal(t, a.PlayerPosition(), b.PlayerPosition(), "tick %d", i)
	}
}
