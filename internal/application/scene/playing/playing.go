// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/arena/internal/application/animation"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorCollider = color.RGBA{200, 200, 100, 128}
	colorFacing   = color.RGBA{240, 240, 240, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}

	tileColors = map[entity.TileType]color.RGBA{
		entity.TileGround:     {110, 80, 50, 255},
		entity.TileSpecial:    {120, 90, 200, 255},
		entity.TileLava:       {200, 50, 50, 255},
		entity.TileTreeGround: {60, 130, 60, 255},
		entity.TileFloor:      {80, 80, 100, 255},
	}
)

// InputSource reads one frame of keyboard state
type InputSource interface {
	GetInput() system.InputState
}

// Options configures recording for a Playing scene
type Options struct {
	Store      replay.Store // nil disables recording
	RecordName string       // empty generates a timestamped name
}

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	machine  state.Machine
	input    InputSource
	animator *animation.Animator
	motion   ecs.Motion
	reload   func() scene.Scene
	screenW  int
	screenH  int

	// Input recording
	recorder   *Recorder
	store      replay.Store
	recordName string
}

// New creates a new Playing scene for a loaded session.
// reload builds the scene that reloads the stage from the menu.
func New(cfg *config.GameConfig, sess *session.Session, opts Options, reload func() scene.Scene) *Playing {
	p := &Playing{
		session:    sess,
		input:      system.NewInputSystem(),
		animator:   animation.NewAnimator(cfg.Entities.Player.Sprite),
		reload:     reload,
		screenW:    cfg.Physics.Display.ScreenWidth,
		screenH:    cfg.Physics.Display.ScreenHeight,
		store:      opts.Store,
		recordName: opts.RecordName,
	}
	// Loading -> Playing is always allowed
	_ = p.machine.Transition(state.StatePlaying)

	if p.store != nil {
		p.recorder = NewRecorder(sess.Stage.ID)
		log.Printf("Recording enabled: stage %s", sess.Stage.ID)
	}

	return p
}

// SetInput replaces the keyboard as the input source
func (p *Playing) SetInput(in InputSource) {
	p.input = in
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.machine.Current()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	input := p.input.GetInput()

	switch p.machine.Current() {
	case state.StatePlaying:
		if input.Menu {
			return nil, p.machine.Transition(state.StateMenu)
		}
		p.updatePlaying(input, dt)
	case state.StateMenu:
		if input.Menu {
			return nil, p.machine.Transition(state.StatePlaying)
		}
		if input.Reload && p.reload != nil {
			if err := p.machine.Transition(state.StateLoading); err != nil {
				return nil, err
			}
			return p.reload(), nil
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(input system.InputState, dt float64) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input, dt)
	}

	p.motion = p.session.Step(input.Intent(), dt)
	p.animator.Update(p.motion, dt)
}

// saveRecording saves the current recording to the store
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	name := p.recordName
	if name == "" {
		name = GenerateFilename()
	}

	if err := p.recorder.Save(p.store, name); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", name, p.recorder.FrameCount())
	}
	p.recorder.Stop()
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawTiles(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	if p.machine.Current() == state.StateMenu {
		p.drawMenuOverlay(screen)
	}
}

// toScreen converts a world box to a screen rectangle. The arena fills the screen.
func (p *Playing) toScreen(box entity.AABB) (x, y, w, h float64) {
	arena := p.session.Arena()
	sx := float64(p.screenW) / arena.X
	sy := float64(p.screenH) / arena.Y
	lo, hi := box.Min(), box.Max()
	size := box.Size()
	return (lo.X + arena.X/2) * sx, (arena.Y/2 - hi.Y) * sy, size.X * sx, size.Y * sy
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	for _, tile := range p.session.Tiles.Tiles() {
		c, ok := tileColors[tile.Type]
		if !ok {
			continue
		}
		x, y, w, h := p.toScreen(tile.Box)
		ebitenutil.DrawRect(screen, x, y, w, h, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pos := p.session.PlayerPosition()
	body := p.session.World.Body[p.session.Player]

	x, y, w, h := p.toScreen(entity.NewAABB(pos.Vec(), body.Footprint))
	ebitenutil.DrawRect(screen, x, y, w, h, colorPlayer)

	// Facing marker
	fx := x
	if p.animator.FlipX() {
		fx = x + w - 4
	}
	ebitenutil.DrawRect(screen, fx, y+h/4, 4, 4, colorFacing)

	// Collider debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		cx, cy, cw, ch := p.toScreen(p.session.PlayerBox())
		ebitenutil.DrawRect(screen, cx, cy, cw, ch, colorCollider)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pos := p.session.PlayerPosition()
	status := fmt.Sprintf("%s | pos %.1f, %.1f | %s #%d | frame %d",
		p.session.Stage.Name, pos.X, pos.Y, p.animator.State(), p.animator.Frame(), p.session.Frame())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | Tab: Collider | ESC: Menu")
}

func (p *Playing) drawMenuOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "MENU\n\nESC: resume\nR: reload stage"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
