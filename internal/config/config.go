// Package config loads renderer and demo settings from YAML.
package config

import (
	"math"
	"time"

	"raymaze/internal/logger"
)

// Config holds all settings.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	World      WorldConfig      `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Raycast    RaycastConfig    `yaml:"raycast"`
	Shading    ShadingConfig    `yaml:"shading"`
	Flashlight FlashlightConfig `yaml:"flashlight"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Minimap    MinimapConfig    `yaml:"minimap"`
	Textures   TexturesConfig   `yaml:"textures"`
	Level      LevelConfig      `yaml:"level"`
	Logging    LoggingConfig    `yaml:"logging"`
	Debug      DebugConfig      `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

type WorldConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

type CameraConfig struct {
	FOVDegrees           float64 `yaml:"fov_degrees"`
	MoveSpeed            float64 `yaml:"move_speed"`             // world units per second
	RotationSpeedDegrees float64 `yaml:"rotation_speed_degrees"` // per second
	CollisionRadius      float64 `yaml:"collision_radius"`
}

type RaycastConfig struct {
	Step     float64 `yaml:"step"`
	MaxRange float64 `yaml:"max_range"`
	Stride   int     `yaml:"stride"`
	Workers  int     `yaml:"workers"` // parallel ray casters, <= 1 casts on the render goroutine
}

type ShadingConfig struct {
	FalloffDistance float64 `yaml:"falloff_distance"`
	MinBrightness   float64 `yaml:"min_brightness"`
}

type FlashlightConfig struct {
	Enabled          bool    `yaml:"enabled"`
	Strength         float64 `yaml:"strength"`
	HalfWidthDegrees float64 `yaml:"half_width_degrees"`
}

type SpritesConfig struct {
	AlphaThreshold uint8   `yaml:"alpha_threshold"`
	TouchRadius    float64 `yaml:"touch_radius"`
}

type MinimapConfig struct {
	CellPixels        int     `yaml:"cell_pixels"`         // full-screen map mode
	OverlayCellPixels int     `yaml:"overlay_cell_pixels"` // corner overlay in 3-D mode
	Rays              int     `yaml:"rays"`
	Step              float64 `yaml:"step"`
	ShowOverlay       bool    `yaml:"show_overlay"`
}

type TexturesConfig struct {
	GenerateDefaults bool              `yaml:"generate_defaults"`
	Walls            map[string]string `yaml:"walls"`
	Floor            string            `yaml:"floor"`
	Ceiling          string            `yaml:"ceiling"`
	Sprites          map[string]string `yaml:"sprites"`
}

type LevelConfig struct {
	File    string                  `yaml:"file"`
	Markers map[string]MarkerConfig `yaml:"markers"`
}

// MarkerConfig describes the sprite a level symbol spawns.
type MarkerConfig struct {
	Texture       string   `yaml:"texture"`
	Frames        []string `yaml:"frames"`
	FrameDuration float64  `yaml:"frame_duration"`
	Scale         float64  `yaml:"scale"`
	Damaging      bool     `yaml:"damaging"`
}

type LoggingConfig struct {
	Level      string            `yaml:"level"`
	LogFile    string            `yaml:"log_file"`
	Subsystems map[string]string `yaml:"subsystems"` // per-logger level, e.g. texture: debug
}

type DebugConfig struct {
	ShowFPS         bool          `yaml:"show_fps"`
	PerfLog         bool          `yaml:"perf_log"`
	PerfLogInterval time.Duration `yaml:"perf_log_interval"`
	MinFPS          float64       `yaml:"min_fps"`
}

// Default returns a Config with every value set.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "raymaze",
			TPS:          60,
		},
		World: WorldConfig{
			CellSize: 64,
		},
		Camera: CameraConfig{
			FOVDegrees:           60,
			MoveSpeed:            160,
			RotationSpeedDegrees: 120,
			CollisionRadius:      12,
		},
		Raycast: RaycastConfig{
			Step:     1.0,
			MaxRange: 2000,
			Stride:   1,
			Workers:  0,
		},
		Shading: ShadingConfig{
			FalloffDistance: 900,
			MinBrightness:   0.25,
		},
		Flashlight: FlashlightConfig{
			Enabled:          true,
			Strength:         0.35,
			HalfWidthDegrees: 12,
		},
		Sprites: SpritesConfig{
			AlphaThreshold: 10,
			TouchRadius:    20,
		},
		Minimap: MinimapConfig{
			CellPixels:        20,
			OverlayCellPixels: 8,
			Rays:              25,
			Step:              1.0,
			ShowOverlay:       true,
		},
		Textures: TexturesConfig{
			GenerateDefaults: true,
		},
		Level: LevelConfig{
			File: "assets/levels/maze.txt",
			Markers: map[string]MarkerConfig{
				"O": {Texture: "key", Scale: 8},
				"A": {Texture: "spike", Scale: 12, Damaging: true},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ShowFPS:         true,
			PerfLogInterval: 5 * time.Second,
			MinFPS:          30,
		},
	}
}

// Helper functions for easy access to commonly used values

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCellSize() float64 {
	return c.World.CellSize
}

// LoggerOptions returns the logger settings with console output enabled.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:      c.Logging.Level,
		File:       c.Logging.LogFile,
		Subsystems: c.Logging.Subsystems,
		Console:    true,
	}
}

// GetFOV returns the field of view in radians.
func (c *Config) GetFOV() float64 {
	return degreesToRadians(c.Camera.FOVDegrees)
}

// GetRotationSpeed returns the turn rate in radians per second.
func (c *Config) GetRotationSpeed() float64 {
	return degreesToRadians(c.Camera.RotationSpeedDegrees)
}

// GetFlashlightHalfWidth returns the flashlight half-width in radians.
func (c *Config) GetFlashlightHalfWidth() float64 {
	return degreesToRadians(c.Flashlight.HalfWidthDegrees)
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
