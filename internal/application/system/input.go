package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/arena/internal/domain/entity"
)

// InputSystem maps the keyboard to movement intents
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Menu   bool // menu toggle was just pressed
	Reload bool // stage reload was just pressed
}

// GetInput reads the current input state. Arrow keys and WASD both move.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Menu:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Reload: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Intent converts held directions to a normalized movement intent.
// Opposite keys cancel; no held key is the absent intent.
func (in InputState) Intent() Input {
	var dir entity.Vec2
	if in.Left {
		dir.X--
	}
	if in.Right {
		dir.X++
	}
	if in.Up {
		dir.Y++
	}
	if in.Down {
		dir.Y--
	}
	if dir.IsZero() {
		return NoInput
	}
	return Input{Active: true, Direction: dir.Normalize()}
}
