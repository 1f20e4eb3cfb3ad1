package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/game"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene/loading"
	"github.com/younwookim/arena/internal/application/scene/playing"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

const appName = "tile_arena"

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "level_one", "Stage to play")
	recordFlag := flag.String("record", "", "Record input under this name (e.g., -record run.json)")
	storeFlag := flag.String("store", "file", "Replay store: file or appdata")
	dirFlag := flag.String("dir", "replays", "Directory of the file replay store")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the result")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var store replay.Store
	if *recordFlag != "" || *replayFlag != "" {
		store, err = openStore(*storeFlag, *dirFlag)
		if err != nil {
			log.Fatalf("Failed to open replay store: %v", err)
		}
	}

	if *replayFlag != "" {
		data, err := store.Load(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		result, err := RunReplay(loader, cfg, data)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(result)
		return
	}

	opts := playing.Options{RecordName: *recordFlag}
	if *recordFlag != "" {
		opts.Store = store
	}

	display := cfg.Physics.Display
	g := game.New(loading.New(loader, cfg, *stageFlag, opts), display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))
	g.SetClock(time.Now, display.MaxFrameTime)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Tile Arena")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.Close()
}
