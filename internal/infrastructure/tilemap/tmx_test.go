package tilemap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTMX(t *testing.T) {
	grid, err := LoadTMX(os.DirFS("testdata"), "small.tmx", "collision")
	require.NoError(t, err)

	want := [][]int{
		{9, 9, EmptyCell, EmptyCell},
		{4, 5, 10, EmptyCell},
		{EmptyCell, EmptyCell, EmptyCell, 11},
	}
	assert.Equal(t, want, grid)
}

func TestLoadTMX_MissingLayer(t *testing.T) {
	grid, err := LoadTMX(os.DirFS("testdata"), "small.tmx", "nope")
	assert.Nil(t, grid)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoadTMX_MissingFile(t *testing.T) {
	grid, err := LoadTMX(os.DirFS("testdata"), "absent.tmx", "collision")
	assert.Nil(t, grid)
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestLoadTMX_MatchesCSV(t *testing.T) {
	fsys := os.DirFS("testdata")

	fromCSV, err := LoadCSV(fsys, "small.csv")
	require.NoError(t, err)
	fromTMX, err := LoadTMX(fsys, "small.tmx", "collision")
	require.NoError(t, err)

	for y, row := range fromCSV {
		for x, index := range row {
			if index == 0 {
				assert.Equal(t, EmptyCell, fromTMX[y][x])
				continue
			}
			assert.Equal(t, index, fromTMX[y][x], "cell %d,%d", x, y)
		}
	}
}
