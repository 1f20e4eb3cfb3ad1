package system

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
)

// TileQuery finds the solid tiles that could touch an area.
// Implementations may return extra tiles but must not miss one.
type TileQuery interface {
	SolidTiles(area entity.AABB) []entity.Tile
}

// Resolution is the displacement a box may actually take
type Resolution struct {
	Delta    entity.Vec2
	BlockedX bool
	BlockedY bool
}

// CollisionResolver clamps proposed displacements against solid tiles
type CollisionResolver struct {
	tiles TileQuery
}

// NewCollisionResolver creates a resolver over a tile query
func NewCollisionResolver(q TileQuery) *CollisionResolver {
	return &CollisionResolver{tiles: q}
}

// Resolve returns the part of delta that box can move without overlapping a
// solid tile it did not already overlap. Each axis is clamped to the distance
// to contact. A tile the box already overlaps blocks only moves that would
// deepen the overlap on that axis.
//
// The result is a fixed point: resolving it again returns it unchanged.
func (r *CollisionResolver) Resolve(box entity.AABB, delta entity.Vec2) Resolution {
	if delta.IsZero() {
		return Resolution{}
	}

	tiles := r.tiles.SolidTiles(box.Union(box.Translate(delta)))
	if len(tiles) == 0 {
		return Resolution{Delta: delta}
	}

	dx, blockedX := resolveAxis(box, entity.AxisX, delta.X, tiles)
	dy, blockedY := resolveAxis(box, entity.AxisY, delta.Y, tiles)

	// Each axis alone is clear, but the diagonal may still clip a corner
	if dx != 0 && dy != 0 && newlyOverlaps(box, box.Translate(entity.Vec2{X: dx, Y: dy}), tiles) {
		dy, blockedY = resolveAxis(box.Translate(entity.Vec2{X: dx}), entity.AxisY, delta.Y, tiles)
	}

	return Resolution{
		Delta:    entity.Vec2{X: dx, Y: dy},
		BlockedX: blockedX,
		BlockedY: blockedY,
	}
}

// resolveAxis clamps a single-axis move of box against tiles
func resolveAxis(box entity.AABB, axis entity.Axis, delta float64, tiles []entity.Tile) (float64, bool) {
	if delta == 0 {
		return 0, false
	}

	lo, hi := box.Span(axis)
	dist := math.Abs(delta)
	allowed := dist
	blocked := false

	for _, tile := range tiles {
		if !box.OverlapsOn(tile.Box, axis.Other()) {
			continue
		}
		tlo, thi := tile.Box.Span(axis)

		if box.OverlapsOn(tile.Box, axis) {
			if deepens(lo, hi, tlo, thi, delta) {
				return 0, true
			}
			continue
		}

		var gap float64
		if delta > 0 {
			gap = tlo - hi
		} else {
			gap = lo - thi
		}
		if gap < -entity.Epsilon {
			continue // behind
		}
		gap = math.Max(gap, 0)

		if gap < dist-entity.Epsilon {
			blocked = true
			allowed = math.Min(allowed, gap)
		}
	}

	return math.Copysign(allowed, delta), blocked
}

// deepens reports whether moving [lo, hi] by delta increases its overlap with [tlo, thi]
func deepens(lo, hi, tlo, thi, delta float64) bool {
	if delta > 0 {
		return hi < thi && lo < tlo
	}
	return lo > tlo && hi > thi
}

func newlyOverlaps(from, to entity.AABB, tiles []entity.Tile) bool {
	for _, tile := range tiles {
		if to.Overlaps(tile.Box) && !from.Overlaps(tile.Box) {
			return true
		}
	}
	return false
}
