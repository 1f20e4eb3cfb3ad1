package tilemap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// IndexProperty on a tileset tile overrides its atlas index
const IndexProperty = "index"

// EmptyCell is the grid value for a cell with no tile
const EmptyCell = -1

// LoadTMX reads the named tile layer of a Tiled map into a grid of atlas
// indices. A tile's index is its tileset-local id unless the tileset tile
// carries an "index" property.
func LoadTMX(fsys fs.FS, path, layerName string) ([][]int, error) {
	if _, err := fs.Stat(fsys, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("%w: load TMX %s: %v", ErrMalformed, path, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != layerName {
			continue
		}
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("%w: layer %s has %d tiles, want %d",
				ErrMalformed, layerName, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}

		grid := make([][]int, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			grid[y] = make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				grid[y][x] = tileIndex(layer.Tiles[y*levelMap.Width+x])
			}
		}
		return grid, nil
	}

	return nil, fmt.Errorf("%w: %s has no tile layer %q", ErrMalformed, path, layerName)
}

func tileIndex(tile *tiled.LayerTile) int {
	if tile == nil || tile.IsNil() {
		return EmptyCell
	}
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if v := tilesetTile.Properties.GetInt(IndexProperty); v != 0 {
				return v
			}
		}
	}
	return int(tile.ID)
}
