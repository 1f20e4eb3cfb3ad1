package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// tileList is a TileQuery that returns every tile regardless of area
type tileList []entity.Tile

func (l tileList) SolidTiles(entity.AABB) []entity.Tile {
	return l
}

func solidTile(cx, cy, size float64) entity.Tile {
	return entity.Tile{
		Type: entity.TileFloor,
		Box:  entity.NewAABB(entity.Vec2{X: cx, Y: cy}, entity.Vec2{X: size, Y: size}),
	}
}

func box(cx, cy, w, h float64) entity.AABB {
	return entity.NewAABB(entity.Vec2{X: cx, Y: cy}, entity.Vec2{X: w, Y: h})
}

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{
			ScreenWidth:  200,
			ScreenHeight: 200,
			Scale:        1,
			Framerate:    60,
		},
		Movement: config.MovementConfig{Speed: 150},
		Jump:     config.JumpConfig{Impulse: 420},
		Gravity:  config.GravitySettings{Acceleration: 900},
	}
}

// createTestStage builds a 200x200 arena of 20 unit tiles with a solid bottom row
func createTestStage(t *testing.T) *entity.TileMap {
	t.Helper()
	grid := make([][]int, 10)
	for y := range grid {
		grid[y] = make([]int, 10)
		if y == 9 {
			for x := range grid[y] {
				grid[y][x] = 9
			}
		}
	}
	m, err := entity.NewTileMap(grid, 20, entity.ArenaOrigin(200, 200), nil)
	require.NoError(t, err)
	return m
}

func createTestBody() ecs.Body {
	return ecs.Body{
		Collider:  entity.Vec2{X: 20, Y: 20},
		Footprint: entity.Vec2{X: 20, Y: 20},
	}
}
