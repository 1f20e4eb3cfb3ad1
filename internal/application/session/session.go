// Package session runs one stage of play: the world, its tile map and the
// physics pipeline, advanced one tick at a time.
package session

import (
	"fmt"

	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/spatial"
)

// Session holds the simulation state of one stage
type Session struct {
	Stage  *config.StageConfig
	Tiles  *entity.TileMap
	World  *ecs.World
	Player ecs.EntityID

	physics *system.PhysicsSystem
	arena   entity.Vec2
	frame   int
	elapsed float64
}

// New builds a session for a loaded stage and spawns the player
func New(game *config.GameConfig, stage *config.StageConfig, tiles *entity.TileMap) (*Session, error) {
	arena := stage.Size.Arena()
	player := game.Entities.Player

	spawn := player.Spawn.Vec()
	if stage.PlayerSpawn != nil {
		spawn = stage.PlayerSpawn.Vec()
	}
	playable := system.PlayableArea(arena, player.Footprint.Vec())
	if !playable.Contains(spawn) {
		return nil, fmt.Errorf("%w: stage %s spawn (%v, %v) is outside the playable area",
			config.ErrInvalid, stage.ID, spawn.X, spawn.Y)
	}

	var query system.TileQuery
	switch game.Physics.Collision.BroadPhaseOrDefault() {
	case config.BroadPhaseSpatial:
		query = spatial.NewTileIndex(tiles)
	default:
		query = tiles
	}

	world := ecs.NewWorld()
	id := world.CreatePlayer(
		ecs.Position{X: spawn.X, Y: spawn.Y, Z: player.Depth},
		ecs.Body{Collider: player.Collider.Vec(), Footprint: player.Footprint.Vec()},
	)

	return &Session{
		Stage:   stage,
		Tiles:   tiles,
		World:   world,
		Player:  id,
		physics: system.NewPhysicsSystem(game.Physics, arena, query),
		arena:   arena,
	}, nil
}

// Load reads a stage through loader and builds a session for it
func Load(loader *config.Loader, game *config.GameConfig, stageID string) (*Session, error) {
	stage, err := loader.LoadStage(stageID)
	if err != nil {
		return nil, err
	}
	tiles, err := system.LoadStage(loader.FS(), stage)
	if err != nil {
		return nil, err
	}
	return New(game, stage, tiles)
}

// Step advances the simulation by dt with the player's input and returns the
// player's movement report for the tick
func (s *Session) Step(in system.Input, dt float64) ecs.Motion {
	if dt > 0 {
		s.physics.Update(s.World, map[ecs.EntityID]system.Input{s.Player: in}, dt)
		s.frame++
		s.elapsed += dt
	}
	return s.World.Motion[s.Player]
}

// Arena returns the arena size
func (s *Session) Arena() entity.Vec2 {
	return s.arena
}

// Frame returns the number of ticks simulated
func (s *Session) Frame() int {
	return s.frame
}

// Elapsed returns the simulated time in seconds
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// PlayerPosition returns the player's position
func (s *Session) PlayerPosition() ecs.Position {
	return s.World.Position[s.Player]
}

// PlayerBox returns the player's collider in world coordinates
func (s *Session) PlayerBox() entity.AABB {
	return s.World.Box(s.Player)
}
