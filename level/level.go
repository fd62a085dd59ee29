// Package level loads the static world geometry: a list of one-sided
// collision segments plus the tile positions a client renders them with.
// Loaded once at startup; the resulting game.Level is shared read-only.
package level

import (
	"encoding/json"
	"fmt"
	"os"

	"chainball/game"
)

// Load reads a level file: a JSON object with "segments" and "tiles".
func Load(path string) (*game.Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl game.Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return &lvl, nil
}

// Default is a flat ground strip below the spawn point, used when no
// level file is configured.
func Default() *game.Level {
	lvl := &game.Level{
		Segments: []game.Segment{
			{P1: game.Vec2{X: -10, Y: -2}, P2: game.Vec2{X: 10, Y: -2}},
		},
	}
	for x := -10; x < 10; x++ {
		lvl.Tiles = append(lvl.Tiles, game.Vec2{X: float64(x), Y: -3})
	}
	return lvl
}
