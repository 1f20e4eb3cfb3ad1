package spatial

import (
	"cmp"
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/arena/internal/domain/entity"
)

const tagSolid = "solid"

// TileIndex is a broad-phase lookup of solid tiles backed by a resolv space.
// Space coordinates are y-down with the map's top-left corner at (0,0).
// Queries add and remove a probe object, so a TileIndex is not safe for
// concurrent use.
type TileIndex struct {
	space  *resolv.Space
	origin entity.Vec2
	count  int
}

// NewTileIndex adds every solid tile of m to a new space with roughly one cell per tile
func NewTileIndex(m *entity.TileMap) *TileIndex {
	ts := int(m.TileSize)
	if ts < 1 {
		ts = 1
	}
	bounds := m.Bounds().Size()
	space := resolv.NewSpace(int(math.Ceil(bounds.X))+ts, int(math.Ceil(bounds.Y))+ts, ts, ts)
	idx := &TileIndex{space: space, origin: m.Origin}

	for _, tile := range m.Tiles() {
		if !tile.Solid() {
			continue
		}
		x, y, w, h := idx.toSpace(tile.Box)
		obj := resolv.NewObject(x, y, w, h, tagSolid)
		obj.Data = tile
		space.Add(obj)
		idx.count++
	}

	return idx
}

// Len returns the number of indexed solid tiles
func (idx *TileIndex) Len() int {
	return idx.count
}

// SolidTiles returns every solid tile whose cell intersects or touches area,
// ordered row-major.
func (idx *TileIndex) SolidTiles(area entity.AABB) []entity.Tile {
	x, y, w, h := idx.toSpace(area)
	// pad so cells that only touch the area are included
	probe := resolv.NewObject(x-1, y-1, w+2, h+2)
	idx.space.Add(probe)
	defer idx.space.Remove(probe)

	check := probe.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	var tiles []entity.Tile
	for _, obj := range check.ObjectsByTags(tagSolid) {
		if tile, ok := obj.Data.(entity.Tile); ok {
			tiles = append(tiles, tile)
		}
	}

	slices.SortFunc(tiles, func(a, b entity.Tile) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return slices.CompactFunc(tiles, func(a, b entity.Tile) bool {
		return a.X == b.X && a.Y == b.Y
	})
}

// toSpace converts a world box to a y-down rectangle relative to the map origin
func (idx *TileIndex) toSpace(b entity.AABB) (x, y, w, h float64) {
	lo, hi := b.Min(), b.Max()
	size := b.Size()
	return lo.X - idx.origin.X, idx.origin.Y - hi.Y, size.X, size.Y
}
