package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"raymaze/internal/config"
	"raymaze/internal/logger"
	"raymaze/internal/texture"
	"raymaze/internal/world"
)

// preloadTimeout bounds texture decoding at startup.
const preloadTimeout = 30 * time.Second

// LoadAtlas builds the texture atlas: procedural defaults first, then the
// configured files on top. Files that fail keep their fallback.
func LoadAtlas(cfg *config.Config) *texture.Atlas {
	atlas := texture.NewAtlas(texture.DefaultPalette(), cfg.GetCellSize())
	if cfg.Textures.GenerateDefaults {
		atlas.GenerateDefaults()
	}

	manifest := texture.Manifest{
		Walls:   cfg.Textures.Walls,
		Floor:   cfg.Textures.Floor,
		Ceiling: cfg.Textures.Ceiling,
		Sprites: cfg.Textures.Sprites,
	}
	if manifest.Empty() {
		return atlas
	}

	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	defer cancel()
	if err := atlas.Preload(ctx, manifest); err != nil {
		logger.Warn("some textures failed to load, using fallbacks", zap.Error(err))
	}
	return atlas
}

// MarkerTable converts the configured level markers. Keys that are not a
// single symbol are skipped; Validate already reports them.
func MarkerTable(cfg *config.Config) map[rune]world.Marker {
	markers := make(map[rune]world.Marker, len(cfg.Level.Markers))
	for key, m := range cfg.Level.Markers {
		r := []rune(key)
		if len(r) != 1 {
			continue
		}
		markers[r[0]] = world.Marker{
			Texture:       m.Texture,
			Frames:        m.Frames,
			FrameDuration: m.FrameDuration,
			Scale:         m.Scale,
			Damaging:      m.Damaging,
		}
	}
	return markers
}
