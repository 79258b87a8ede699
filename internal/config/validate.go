package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"raymaze/internal/logger"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Display.ScreenWidth > 0, "display.screen_width must be positive, got %d", c.Display.ScreenWidth)
	check(c.Display.ScreenHeight > 0, "display.screen_height must be positive, got %d", c.Display.ScreenHeight)
	check(c.World.CellSize > 0, "world.cell_size must be positive, got %v", c.World.CellSize)
	check(c.Camera.FOVDegrees > 0 && c.Camera.FOVDegrees < 180, "camera.fov_degrees must be in (0, 180), got %v", c.Camera.FOVDegrees)
	check(c.Camera.CollisionRadius >= 0, "camera.collision_radius must not be negative, got %v", c.Camera.CollisionRadius)
	check(c.Raycast.Step > 0, "raycast.step must be positive, got %v", c.Raycast.Step)
	check(c.Raycast.MaxRange > 0, "raycast.max_range must be positive, got %v", c.Raycast.MaxRange)
	check(c.Raycast.Stride >= 1, "raycast.stride must be at least 1, got %d", c.Raycast.Stride)
	check(c.Raycast.Workers >= 0, "raycast.workers must not be negative, got %d", c.Raycast.Workers)
	check(c.Shading.MinBrightness >= 0 && c.Shading.MinBrightness <= 1, "shading.min_brightness must be in [0, 1], got %v", c.Shading.MinBrightness)
	check(c.Flashlight.HalfWidthDegrees >= 0, "flashlight.half_width_degrees must not be negative, got %v", c.Flashlight.HalfWidthDegrees)
	check(c.Minimap.CellPixels > 0, "minimap.cell_pixels must be positive, got %d", c.Minimap.CellPixels)
	check(c.Minimap.OverlayCellPixels > 0, "minimap.overlay_cell_pixels must be positive, got %d", c.Minimap.OverlayCellPixels)
	check(c.Minimap.Rays >= 0, "minimap.rays must not be negative, got %d", c.Minimap.Rays)

	for key, m := range c.Level.Markers {
		check(utf8.RuneCountInString(key) == 1, "level.markers key %q must be a single symbol", key)
		check(m.Texture != "" || len(m.Frames) > 0, "level.markers[%q] needs a texture or frames", key)
		check(len(m.Frames) == 0 || m.FrameDuration > 0, "level.markers[%q].frame_duration must be positive for animations", key)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	for name, level := range c.Logging.Subsystems {
		if _, err := logger.ParseLevel(level); err != nil {
			errs = append(errs, fmt.Errorf("logging.subsystems[%q]: %w", name, err))
		}
	}
	for key := range c.Textures.Walls {
		check(utf8.RuneCountInString(key) == 1, "textures.walls key %q must be a single symbol", key)
	}

	return errors.Join(errs...)
}
