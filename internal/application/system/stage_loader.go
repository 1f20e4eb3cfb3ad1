package system

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/tilemap"
)

// LoadStage reads the map named by cfg from fsys and builds its TileMap.
// The grid's top-left corner is placed at the top-left corner of the arena.
func LoadStage(fsys fs.FS, cfg *config.StageConfig) (*entity.TileMap, error) {
	mapping, err := cfg.Mapping()
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", cfg.ID, err)
	}

	var grid [][]int
	switch cfg.Map.FormatOrDefault() {
	case config.MapFormatCSV:
		grid, err = tilemap.LoadCSV(fsys, cfg.Map.Source)
	case config.MapFormatTMX:
		grid, err = tilemap.LoadTMX(fsys, cfg.Map.Source, cfg.Map.Layer)
	default:
		err = fmt.Errorf("%w: map format %q", config.ErrInvalid, cfg.Map.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", cfg.ID, err)
	}

	origin := entity.ArenaOrigin(cfg.Size.Width, cfg.Size.Height)
	tiles, err := entity.NewTileMap(grid, cfg.Size.TileSize, origin, mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", cfg.ID, err)
	}

	return tiles, nil
}
