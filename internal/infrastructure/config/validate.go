package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks physics.json values
func (c *PhysicsConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return invalid("display size %dx%d must be positive", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return invalid("framerate %d must be positive", d.Framerate)
	}
	if d.MaxFrameTime < 0 {
		return invalid("maxFrameTime %v must not be negative", d.MaxFrameTime)
	}
	if c.Movement.Speed < 0 {
		return invalid("movement speed %v must not be negative", c.Movement.Speed)
	}
	if c.Jump.Impulse < 0 {
		return invalid("jump impulse %v must not be negative", c.Jump.Impulse)
	}
	g := c.Gravity
	if g.Acceleration < 0 {
		return invalid("gravity acceleration %v must not be negative", g.Acceleration)
	}
	if g.MinVelocity > 0 {
		return invalid("gravity minVelocity %v must not be positive", g.MinVelocity)
	}
	if g.MaxVelocity < 0 {
		return invalid("gravity maxVelocity %v must not be negative", g.MaxVelocity)
	}
	switch c.Collision.BroadPhaseOrDefault() {
	case BroadPhaseGrid, BroadPhaseSpatial:
	default:
		return invalid("collision broadPhase %q", c.Collision.BroadPhase)
	}
	return nil
}

// Validate checks entities.json values
func (c *EntitiesConfig) Validate() error {
	p := c.Player
	if p.Collider.Width <= 0 || p.Collider.Height <= 0 {
		return invalid("player collider %vx%v must be positive", p.Collider.Width, p.Collider.Height)
	}
	if p.Footprint.Width <= 0 || p.Footprint.Height <= 0 {
		return invalid("player footprint %vx%v must be positive", p.Footprint.Width, p.Footprint.Height)
	}
	if p.Sprite.FrameTime <= 0 {
		return invalid("player frameTime %v must be positive", p.Sprite.FrameTime)
	}
	for name, anim := range p.Sprite.Animations {
		if anim.Frames <= 0 {
			return invalid("animation %s has %d frames", name, anim.Frames)
		}
	}
	return nil
}

// Validate checks a stage file's values
func (s *StageConfig) Validate() error {
	if s.ID == "" {
		return invalid("stage id is empty")
	}
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return invalid("stage %s size %vx%v must be positive", s.ID, s.Size.Width, s.Size.Height)
	}
	if s.Size.TileSize <= 0 {
		return invalid("stage %s tileSize %v must be positive", s.ID, s.Size.TileSize)
	}
	if s.Map.Source == "" {
		return invalid("stage %s has no map source", s.ID)
	}
	switch s.Map.FormatOrDefault() {
	case MapFormatCSV:
	case MapFormatTMX:
		if s.Map.Layer == "" {
			return invalid("stage %s tmx map needs a layer", s.ID)
		}
	default:
		return invalid("stage %s map format %q", s.ID, s.Map.Format)
	}
	if _, err := s.Mapping(); err != nil {
		return fmt.Errorf("stage %s: %w", s.ID, err)
	}
	return nil
}
