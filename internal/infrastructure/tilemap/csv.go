package tilemap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// ParseCSV reads a grid of atlas indices. Rows are lines, cells are
// comma-separated non-negative integers, and there is no header row.
func ParseCSV(r io.Reader) ([][]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0 // first record fixes the column count
	reader.TrimLeadingSpace = true

	var grid [][]int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, perr.Line, perr.Err)
			}
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		row := make([]int, len(record))
		for x, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not an integer", ErrMalformed, len(grid), x, field)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: row %d col %d: negative index %d", ErrMalformed, len(grid), x, v)
			}
			row[x] = v
		}
		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrMalformed)
	}
	return grid, nil
}

// LoadCSV parses the csv map at path in fsys
func LoadCSV(fsys fs.FS, path string) ([][]int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	grid, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}
