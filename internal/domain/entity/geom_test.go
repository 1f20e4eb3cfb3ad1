package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABB_Overlaps(t *testing.T) {
	a := NewAABB(Vec2{}, Vec2{X: 10, Y: 10})

	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"same box", a, true},
		{"partial overlap", NewAABB(Vec2{X: 5, Y: 5}, Vec2{X: 10, Y: 10}), true},
		{"touching right edge", NewAABB(Vec2{X: 10}, Vec2{X: 10, Y: 10}), false},
		{"touching bottom edge", NewAABB(Vec2{Y: -10}, Vec2{X: 10, Y: 10}), false},
		{"separated", NewAABB(Vec2{X: 30}, Vec2{X: 10, Y: 10}), false},
		{"overlap on x only", NewAABB(Vec2{X: 2, Y: 20}, Vec2{X: 10, Y: 10}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(Vec2{}, Vec2{X: 2, Y: 2})
	b := a.Translate(Vec2{X: 4, Y: -2})

	u := a.Union(b)
	assert.Equal(t, Vec2{X: -1, Y: -3}, u.Min())
	assert.Equal(t, Vec2{X: 5, Y: 1}, u.Max())
}

func TestAABB_Penetration(t *testing.T) {
	a := NewAABB(Vec2{}, Vec2{X: 10, Y: 10})
	b := NewAABB(Vec2{X: 8}, Vec2{X: 10, Y: 10})

	assert.InDelta(t, 2.0, a.Penetration(b, AxisX), 1e-12)
	assert.InDelta(t, 10.0, a.Penetration(b, AxisY), 1e-12)

	far := NewAABB(Vec2{X: 20}, Vec2{X: 10, Y: 10})
	assert.InDelta(t, -10.0, a.Penetration(far, AxisX), 1e-12)
}

func TestAABB_Clamp(t *testing.T) {
	area := NewAABB(Vec2{}, Vec2{X: 20, Y: 10})

	assert.Equal(t, Vec2{X: 10, Y: -5}, area.Clamp(Vec2{X: 50, Y: -50}))
	assert.Equal(t, Vec2{X: 1, Y: 2}, area.Clamp(Vec2{X: 1, Y: 2}))
	assert.True(t, area.Contains(Vec2{X: 10, Y: 5}))
	assert.False(t, area.Contains(Vec2{X: 10.5, Y: 0}))
}

func TestAABB_Shrink(t *testing.T) {
	area := NewAABB(Vec2{}, Vec2{X: 20, Y: 10})

	assert.Equal(t, Vec2{X: 7, Y: 0}, area.Shrink(Vec2{X: 3, Y: 8}).Half)
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	assert.Equal(t, 5.0, v.Length())
	assert.InDelta(t, 0.6, v.Normalize().X, 1e-12)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.Equal(t, Vec2{X: 3, Y: 9}, v.With(AxisY, 9))
	assert.Equal(t, 4.0, v.Get(AxisY))
	assert.Equal(t, AxisY, AxisX.Other())
	assert.True(t, Vec2{}.IsZero())
}
