package main

import (
	"fmt"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Stage   string
	Frames  int
	Elapsed float64
	Final   ecs.Position
	Motion  ecs.Motion
}

// String formats the result for the terminal
func (r ReplayResult) String() string {
	return fmt.Sprintf("stage %s: %d frames, %.3fs, final position (%.3f, %.3f) grounded=%v",
		r.Stage, r.Frames, r.Elapsed, r.Final.X, r.Final.Y, r.Motion.Grounded)
}

// RunReplay loads the replay's stage and feeds every recorded frame through
// a fresh session without opening a window
func RunReplay(loader *config.Loader, cfg *config.GameConfig, data *replay.ReplayData) (ReplayResult, error) {
	sess, err := session.Load(loader, cfg, data.Stage)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to start replay: %w", err)
	}

	replayer := replay.NewReplayer(*data)
	result := ReplayResult{Stage: data.Stage}
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		result.Motion = sess.Step(input.State.Intent(), input.DT)
	}

	result.Frames = sess.Frame()
	result.Elapsed = sess.Elapsed()
	result.Final = sess.PlayerPosition()
	return result, nil
}

// openStore returns the replay store for kind: "file" keeps replays in dir,
// "appdata" in the per-user application data directory
func openStore(kind, dir string) (replay.Store, error) {
	switch kind {
	case "file":
		return replay.NewFileStore(dir), nil
	case "appdata":
		return replay.OpenGDataStore(appName)
	default:
		return nil, fmt.Errorf("unknown replay store %q", kind)
	}
}
