package system

import (
	"math/rand"
	"testing"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/spatial"
)

// createBenchStage builds a 64x64 map with random solid cells
func createBenchStage(b *testing.B) *entity.TileMap {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	grid := make([][]int, 64)
	for y := range grid {
		grid[y] = make([]int, 64)
		for x := range grid[y] {
			if rng.Intn(5) == 0 {
				grid[y][x] = 9
			}
		}
	}
	m, err := entity.NewTileMap(grid, 16, entity.ArenaOrigin(1024, 1024), nil)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func benchmarkResolve(b *testing.B, q TileQuery) {
	r := NewCollisionResolver(q)
	rng := rand.New(rand.NewSource(2))
	boxes := make([]entity.AABB, 256)
	deltas := make([]entity.Vec2, len(boxes))
	for i := range boxes {
		boxes[i] = box(rng.Float64()*900-450, rng.Float64()*900-450, 24, 12)
		deltas[i] = entity.Vec2{X: rng.Float64()*10 - 5, Y: rng.Float64()*10 - 5}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % len(boxes)
		r.Resolve(boxes[k], deltas[k])
	}
}

func BenchmarkResolve_Grid(b *testing.B) {
	benchmarkResolve(b, createBenchStage(b))
}

func BenchmarkResolve_Spatial(b *testing.B) {
	benchmarkResolve(b, spatial.NewTileIndex(createBenchStage(b)))
}

func BenchmarkSolidTiles_Grid(b *testing.B) {
	m := createBenchStage(b)
	area := box(0, 0, 48, 48)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.SolidTiles(area)
	}
}

func BenchmarkSolidTiles_Spatial(b *testing.B) {
	idx := spatial.NewTileIndex(createBenchStage(b))
	area := box(0, 0, 48, 48)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.SolidTiles(area)
	}
}
