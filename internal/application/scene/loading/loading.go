// Package loading provides the scene that reads a stage and hands it to play.
package loading

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/scene/playing"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

var colorBG = color.RGBA{10, 10, 20, 255}

// Loading loads one stage and transitions to the Playing scene
type Loading struct {
	loader  *config.Loader
	game    *config.GameConfig
	stageID string
	opts    playing.Options
}

// New creates a Loading scene for stageID
func New(loader *config.Loader, game *config.GameConfig, stageID string, opts playing.Options) *Loading {
	return &Loading{
		loader:  loader,
		game:    game,
		stageID: stageID,
		opts:    opts,
	}
}

// Update loads the stage. A stage that cannot be loaded ends the game.
func (l *Loading) Update(_ float64) (scene.Scene, error) {
	sess, err := session.Load(l.loader, l.game, l.stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", l.stageID, err)
	}

	log.Printf("Stage loaded: %s (%dx%d tiles)", sess.Stage.Name, sess.Tiles.Cols, sess.Tiles.Rows)

	return playing.New(l.game, sess, l.opts, l.restart), nil
}

func (l *Loading) restart() scene.Scene {
	return New(l.loader, l.game, l.stageID, l.opts)
}

// Draw renders the loading screen
func (l *Loading) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrint(screen, "Loading "+l.stageID+"...")
}

// OnEnter is called when entering this scene
func (l *Loading) OnEnter() {}

// OnExit is called when leaving this scene
func (l *Loading) OnExit() {}
