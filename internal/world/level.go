package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StartMarker marks the player start cell in a level file.
const StartMarker rune = '@'

// Marker describes what a special level symbol spawns. Marker cells are
// replaced by Empty before the grid reaches the renderer.
type Marker struct {
	Texture       string   // static texture, or first frame when Frames is set
	Frames        []string // animation frames, empty for static sprites
	FrameDuration float64  // seconds per frame
	Scale         float64
	Damaging      bool
}

// DefaultMarkers returns the stock marker table: 'O' is a key pickup and
// 'A' a damaging spike.
func DefaultMarkers() map[rune]Marker {
	return map[rune]Marker{
		'O': {Texture: "key", Scale: 8},
		'A': {Texture: "spike", Scale: 12, Damaging: true},
	}
}

// SpriteSpawn is a sprite placement extracted from a level marker.
type SpriteSpawn struct {
	Pos    Vec2
	Symbol rune
	Marker Marker
}

// Level is a parsed level: the wall grid plus everything stripped out of it.
type Level struct {
	Grid     *Grid
	Spawns   []SpriteSpawn
	Start    Vec2
	HasStart bool
}

// LoadLevel reads a level file from disk.
func LoadLevel(path string, markers map[rune]Marker, cellSize float64) (*Level, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file %s: %w", path, err)
	}
	defer file.Close()

	lvl, err := ParseLevel(file, markers, cellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel reads one grid row per line. Short rows are padded with Empty so
// editors that trim trailing spaces do not break the map; trailing blank
// lines are ignored.
func ParseLevel(r io.Reader, markers map[rune]Marker, cellSize float64) (*Level, error) {
	var lines [][]rune
	width := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		runes := []rune(line)
		if len(runes) > width {
			width = len(runes)
		}
		lines = append(lines, runes)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading level: %w", err)
	}

	for len(lines) > 0 && strings.TrimSpace(string(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || width == 0 {
		return nil, fmt.Errorf("level contains no grid rows")
	}

	lvl := &Level{}
	rows := make([]string, len(lines))
	for row, runes := range lines {
		padded := make([]rune, width)
		for col := range padded {
			padded[col] = Empty
			if col >= len(runes) {
				continue
			}

			ch := runes[col]
			switch {
			case ch == StartMarker:
				if lvl.HasStart {
					return nil, fmt.Errorf("duplicate start marker at row %d col %d", row+1, col+1)
				}
				lvl.Start = CellCenter(row, col, cellSize)
				lvl.HasStart = true
			case markers != nil && hasMarker(markers, ch):
				lvl.Spawns = append(lvl.Spawns, SpriteSpawn{
					Pos:    CellCenter(row, col, cellSize),
					Symbol: ch,
					Marker: markers[ch],
				})
			default:
				padded[col] = ch
			}
		}
		rows[row] = string(padded)
	}

	grid, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	lvl.Grid = grid

	if !lvl.HasStart {
		lvl.Start = Vec2{1.5 * cellSize, 1.5 * cellSize}
	}
	return lvl, nil
}

func hasMarker(markers map[rune]Marker, ch rune) bool {
	_, ok := markers[ch]
	return ok
}
