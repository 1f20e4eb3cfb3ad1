package entity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMalformedMap is returned when a tile grid cannot form a valid TileMap
var ErrMalformedMap = errors.New("malformed tile map")

// TileType represents the semantic type of a tile
type TileType int

const (
	TileBackground TileType = iota
	TileGround
	TileSpecial
	TileLava
	TileTreeGround
	TileFloor
)

var tileTypeNames = map[TileType]string{
	TileBackground: "background",
	TileGround:     "ground",
	TileSpecial:    "special",
	TileLava:       "lava",
	TileTreeGround: "treeGround",
	TileFloor:      "floor",
}

// String returns the tile type name used in stage files
func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Solid reports whether the tile type blocks movement.
// Only Background is passable.
func (t TileType) Solid() bool {
	return t != TileBackground
}

// ParseTileType converts a stage file name to a TileType
func ParseTileType(name string) (TileType, error) {
	for t, n := range tileTypeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return TileBackground, fmt.Errorf("unknown tile type %q", name)
}

// TypeForIndex maps a tileset atlas index to its tile type
func TypeForIndex(index int) TileType {
	switch index {
	case 4:
		return TileFloor
	case 5:
		return TileLava
	case 9:
		return TileGround
	case 10:
		return TileSpecial
	case 11:
		return TileTreeGround
	default:
		return TileBackground
	}
}

// Tile represents a single spawned tile. Tiles never change after the map is built.
type Tile struct {
	X, Y  int // grid coordinate, row 0 is the top row
	Index int // tileset atlas index
	Type  TileType
	Box   AABB
}

// Solid reports whether the tile blocks movement
func (t Tile) Solid() bool {
	return t.Type.Solid()
}

// TileMap is the static world geometry of a level
type TileMap struct {
	Cols     int
	Rows     int
	TileSize float64
	Origin   Vec2 // world position of the top-left corner of cell (0,0)
	tiles    []Tile
}

// ArenaOrigin returns the top-left corner of an arena centered on the world origin
func ArenaOrigin(width, height float64) Vec2 {
	return Vec2{X: -width / 2, Y: height / 2}
}

// NewTileMap builds a TileMap from a grid of atlas indices.
// mapping converts each index to a tile type; nil uses TypeForIndex.
func NewTileMap(grid [][]int, tileSize float64, origin Vec2, mapping func(int) TileType) (*TileMap, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedMap)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v must be positive", ErrMalformedMap, tileSize)
	}
	if mapping == nil {
		mapping = TypeForIndex
	}

	cols := len(grid[0])
	m := &TileMap{
		Cols:     cols,
		Rows:     len(grid),
		TileSize: tileSize,
		Origin:   origin,
		tiles:    make([]Tile, 0, cols*len(grid)),
	}

	for y, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedMap, y, len(row), cols)
		}
		for x, index := range row {
			m.tiles = append(m.tiles, Tile{
				X:     x,
				Y:     y,
				Index: index,
				Type:  mapping(index),
				Box:   NewAABB(m.CellCenter(x, y), Vec2{X: tileSize, Y: tileSize}),
			})
		}
	}

	return m, nil
}

// CellCenter returns the world position of the center of cell (x, y)
func (m *TileMap) CellCenter(x, y int) Vec2 {
	return Vec2{
		X: m.Origin.X + (float64(x)+0.5)*m.TileSize,
		Y: m.Origin.Y - (float64(y)+0.5)*m.TileSize,
	}
}

// Tile returns the tile at grid coordinates.
// Out-of-range coordinates return a Background tile and false.
func (m *TileMap) Tile(x, y int) (Tile, bool) {
	if x < 0 || x >= m.Cols || y < 0 || y >= m.Rows {
		return Tile{X: x, Y: y, Index: -1, Type: TileBackground}, false
	}
	return m.tiles[y*m.Cols+x], true
}

// Tiles returns every tile in row-major order
func (m *TileMap) Tiles() []Tile {
	return m.tiles
}

// Bounds returns the world box covered by the grid
func (m *TileMap) Bounds() AABB {
	size := Vec2{X: float64(m.Cols) * m.TileSize, Y: float64(m.Rows) * m.TileSize}
	center := Vec2{X: m.Origin.X + size.X/2, Y: m.Origin.Y - size.Y/2}
	return NewAABB(center, size)
}

// CellAt returns the grid coordinate containing world point p.
// The result may lie outside the grid.
func (m *TileMap) CellAt(p Vec2) (x, y int) {
	x = int(math.Floor((p.X - m.Origin.X) / m.TileSize))
	y = int(math.Floor((m.Origin.Y - p.Y) / m.TileSize))
	return x, y
}

// SolidTiles returns every solid tile whose cell intersects or touches area,
// in row-major order.
func (m *TileMap) SolidTiles(area AABB) []Tile {
	lo, hi := area.Min(), area.Max()
	startX, startY := m.CellAt(Vec2{X: lo.X - Epsilon, Y: hi.Y + Epsilon})
	endX, endY := m.CellAt(Vec2{X: hi.X, Y: lo.Y})

	startX = max(startX, 0)
	startY = max(startY, 0)
	endX = min(endX, m.Cols-1)
	endY = min(endY, m.Rows-1)

	var solid []Tile
	for ty := startY; ty <= endY; ty++ {
		for tx := startX; tx <= endX; tx++ {
			tile := m.tiles[ty*m.Cols+tx]
			if tile.Solid() {
				solid = append(solid, tile)
			}
		}
	}
	return solid
}
