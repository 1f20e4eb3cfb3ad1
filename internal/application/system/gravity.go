package system

import "github.com/younwookim/arena/internal/ecs"

// IntegrateGravity lowers vertical velocity by accel*dt and clamps it to [lo, hi]
func IntegrateGravity(v ecs.Velocity, accel, lo, hi, dt float64) ecs.Velocity {
	v.Y -= accel * dt
	v.Y = clamp(v.Y, lo, hi)
	return v
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
