package entity

import "math"

// Epsilon is the penetration depth below which two boxes are considered touching
// rather than overlapping.
const Epsilon = 1e-9

// Vec2 is a 2D vector in world units. The world is y-up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the euclidean length of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Get returns the component of v along axis
func (v Vec2) Get(axis Axis) float64 {
	if axis == AxisX {
		return v.X
	}
	return v.Y
}

// With returns v with the component along axis replaced by value
func (v Vec2) With(axis Axis, value float64) Vec2 {
	if axis == AxisX {
		v.X = value
	} else {
		v.Y = value
	}
	return v
}

// Axis selects one coordinate axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the perpendicular axis
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// String returns the axis name
func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// AABB is an axis-aligned bounding box stored as center and half-extents.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB creates a box of the given full size centered on center
func NewAABB(center, size Vec2) AABB {
	return AABB{Center: center, Half: size.Scale(0.5)}
}

// Min returns the bottom-left corner
func (b AABB) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner
func (b AABB) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Size returns the full width and height
func (b AABB) Size() Vec2 {
	return b.Half.Scale(2)
}

// Span returns the [lo, hi] interval covered on axis
func (b AABB) Span(axis Axis) (lo, hi float64) {
	c := b.Center.Get(axis)
	h := b.Half.Get(axis)
	return c - h, c + h
}

// Translate returns the box moved by d
func (b AABB) Translate(d Vec2) AABB {
	return AABB{Center: b.Center.Add(d), Half: b.Half}
}

// Penetration returns how far the two intervals on axis overlap.
// Negative values are the gap between them.
func (b AABB) Penetration(o AABB, axis Axis) float64 {
	lo, hi := b.Span(axis)
	olo, ohi := o.Span(axis)
	return math.Min(hi, ohi) - math.Max(lo, olo)
}

// OverlapsOn reports whether the boxes overlap on a single axis
func (b AABB) OverlapsOn(o AABB, axis Axis) bool {
	return b.Penetration(o, axis) > Epsilon
}

// Overlaps reports whether the boxes overlap on both axes.
// Boxes that only touch along an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	return b.OverlapsOn(o, AxisX) && b.OverlapsOn(o, AxisY)
}

// Union returns the smallest box containing both boxes
func (b AABB) Union(o AABB) AABB {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	lo := Vec2{X: math.Min(bmin.X, omin.X), Y: math.Min(bmin.Y, omin.Y)}
	hi := Vec2{X: math.Max(bmax.X, omax.X), Y: math.Max(bmax.Y, omax.Y)}
	return AABB{Center: lo.Add(hi).Scale(0.5), Half: hi.Sub(lo).Scale(0.5)}
}

// Shrink returns the box with each half-extent reduced by d, never below zero
func (b AABB) Shrink(d Vec2) AABB {
	return AABB{
		Center: b.Center,
		Half:   Vec2{X: math.Max(b.Half.X-d.X, 0), Y: math.Max(b.Half.Y-d.Y, 0)},
	}
}

// Clamp returns p limited to the box
func (b AABB) Clamp(p Vec2) Vec2 {
	lo, hi := b.Min(), b.Max()
	return Vec2{X: clamp(p.X, lo.X, hi.X), Y: clamp(p.Y, lo.Y, hi.Y)}
}

// Contains reports whether p lies inside the box, edges included
func (b AABB) Contains(p Vec2) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
