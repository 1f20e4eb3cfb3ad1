// Package animation selects the player's sprite animation from the
// movement report of each physics tick.
package animation

import (
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// State is the animation currently playing
type State int

const (
	StateStay State = iota
	StateWalk
	StateJump
)

func (s State) String() string {
	switch s {
	case StateStay:
		return "stay"
	case StateWalk:
		return "walk"
	case StateJump:
		return "jump"
	default:
		return "unknown"
	}
}

// DefaultFrameTime is the seconds per frame when the sprite config sets none
const DefaultFrameTime = 0.2

var defaultFrames = map[State]int{
	StateStay: 2,
	StateWalk: 7,
	StateJump: 3,
}

// Clip is one row of a sprite sheet
type Clip struct {
	Row    int
	Frames int
}

// Animator tracks the current clip, frame and facing of one sprite
type Animator struct {
	clips     map[State]Clip
	frameTime float64

	state State
	frame int
	timer float64
	flipX bool
}

// NewAnimator creates an animator from sprite config. Missing clips fall back
// to the default frame counts.
func NewAnimator(cfg config.SpriteConfig) *Animator {
	a := &Animator{
		clips:     make(map[State]Clip, len(defaultFrames)),
		frameTime: cfg.FrameTime,
		flipX:     true,
	}
	if a.frameTime <= 0 {
		a.frameTime = DefaultFrameTime
	}

	for state, frames := range defaultFrames {
		clip := Clip{Row: int(state), Frames: frames}
		if c, ok := cfg.Animations[state.String()]; ok && c.Frames > 0 {
			clip = Clip{Row: c.Row, Frames: c.Frames}
		}
		a.clips[state] = clip
	}
	return a
}

// Update advances the animation by dt using the tick's movement report
func (a *Animator) Update(m ecs.Motion, dt float64) {
	next := selectState(m)
	if next != a.state {
		a.state = next
		a.frame = 0
		a.timer = 0
	}

	if m.Delta.X != 0 {
		a.flipX = m.Delta.X >= 0
	}

	if dt <= 0 {
		return
	}
	a.timer += dt
	if a.timer >= a.frameTime {
		a.timer -= a.frameTime
		if a.timer >= a.frameTime {
			a.timer = 0
		}
		a.frame = (a.frame + 1) % a.clips[a.state].Frames
	}
}

func selectState(m ecs.Motion) State {
	switch {
	case !m.Moved:
		return StateStay
	case m.Delta.Y > 0:
		return StateJump
	case m.Delta.X != 0:
		return StateWalk
	default:
		return StateStay
	}
}

// State returns the current animation state
func (a *Animator) State() State {
	return a.state
}

// Frame returns the current frame within the clip
func (a *Animator) Frame() int {
	return a.frame
}

// FlipX reports whether the sprite faces right
func (a *Animator) FlipX() bool {
	return a.flipX
}

// Clip returns the sheet row and frame count of the current state
func (a *Animator) Clip() Clip {
	return a.clips[a.state]
}
