package tilemap

import "errors"

var (
	// ErrMalformed is returned when map data cannot be parsed into a grid
	ErrMalformed = errors.New("malformed map data")
	// ErrMissingAsset is returned when a map file does not exist
	ErrMissingAsset = errors.New("missing map asset")
)
