// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// Variable timestep
	clock func() time.Time
	last  time.Time
	maxDT float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.nextDT())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// nextDT returns the time since the previous update when a clock is set,
// capped at maxDT. The first tick after SetClock and a clock that did not
// advance use the fixed dt.
func (g *Game) nextDT() float64 {
	if g.clock == nil {
		return g.dt
	}

	now := g.clock()
	if g.last.IsZero() {
		g.last = now
		return g.dt
	}

	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt <= 0 {
		return g.dt
	}
	if g.maxDT > 0 && dt > g.maxDT {
		dt = g.maxDT
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetClock switches to a variable timestep measured by clock.
// maxDT caps a single step; 0 leaves it unbounded.
func (g *Game) SetClock(clock func() time.Time, maxDT float64) {
	g.clock = clock
	g.last = time.Time{}
	g.maxDT = maxDT
}

// Close exits the current scene. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
