package config

import (
	"fmt"
	"strconv"

	"github.com/younwookim/arena/internal/domain/entity"
)

// Map source formats
const (
	MapFormatCSV = "csv"
	MapFormatTMX = "tmx"
)

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Map         MapConfig                    `json:"map"`
	PlayerSpawn *PositionConfig              `json:"playerSpawn,omitempty"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping,omitempty"`
}

type StageSizeConfig struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	TileSize float64 `json:"tileSize"`
}

// MapConfig names the grid source of a stage, relative to the config root
type MapConfig struct {
	Source string `json:"source"`
	Format string `json:"format"` // csv (default) or tmx
	Layer  string `json:"layer"`  // tmx tile layer name
}

// FormatOrDefault returns the map format, csv when unset
func (m MapConfig) FormatOrDefault() string {
	if m.Format == "" {
		return MapFormatCSV
	}
	return m.Format
}

// TileMappingConfig overrides the type of one atlas index
type TileMappingConfig struct {
	Type string `json:"type"`
}

// Mapping returns the tile type function for the stage: the overrides in
// TileMapping on top of entity.TypeForIndex.
func (s *StageConfig) Mapping() (func(int) entity.TileType, error) {
	if len(s.TileMapping) == 0 {
		return entity.TypeForIndex, nil
	}

	overrides := make(map[int]entity.TileType, len(s.TileMapping))
	for key, m := range s.TileMapping {
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: tileMapping key %q is not an index", ErrInvalid, key)
		}
		tt, err := entity.ParseTileType(m.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: tileMapping %q: %v", ErrInvalid, key, err)
		}
		overrides[index] = tt
	}

	return func(index int) entity.TileType {
		if tt, ok := overrides[index]; ok {
			return tt
		}
		return entity.TypeForIndex(index)
	}, nil
}

// Arena returns the stage's arena size
func (s StageSizeConfig) Arena() entity.Vec2 {
	return entity.Vec2{X: s.Width, Y: s.Height}
}
