package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.ScreenWidth != 800 || cfg.Display.ScreenHeight != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Raycast.Stride != 1 {
		t.Errorf("expected stride 1, got %d", cfg.Raycast.Stride)
	}
	if cfg.Raycast.Workers != 0 {
		t.Errorf("expected serial ray casting by default, got %d workers", cfg.Raycast.Workers)
	}
	if cfg.Sprites.AlphaThreshold != 10 {
		t.Errorf("expected alpha threshold 10, got %d", cfg.Sprites.AlphaThreshold)
	}
	if cfg.Minimap.Rays != 25 {
		t.Errorf("expected 25 minimap rays, got %d", cfg.Minimap.Rays)
	}
	if m, ok := cfg.Level.Markers["A"]; !ok || !m.Damaging || m.Texture != "spike" {
		t.Errorf("expected damaging spike marker, got %+v", m)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestAngleHelpers(t *testing.T) {
	cfg := Default()
	if got := cfg.GetFOV(); math.Abs(got-math.Pi/3) > 1e-12 {
		t.Errorf("GetFOV = %v, want pi/3", got)
	}
	cfg.Camera.RotationSpeedDegrees = 90
	if got := cfg.GetRotationSpeed(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("GetRotationSpeed = %v, want pi/2", got)
	}
	cfg.Flashlight.HalfWidthDegrees = 180
	if got := cfg.GetFlashlightHalfWidth(); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("GetFlashlightHalfWidth = %v, want pi", got)
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  screen_width: 320
  screen_height: 200
raycast:
  stride: 4
flashlight:
  enabled: false
textures:
  walls:
    "#": assets/textures/stone.png
level:
  markers:
    "K":
      frames: [key, key_glint]
      frame_duration: 0.5
      scale: 6
debug:
  perf_log: true
  perf_log_interval: 2s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Display.ScreenWidth != 320 || cfg.Display.ScreenHeight != 200 {
		t.Errorf("expected 320x200, got %dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Raycast.Stride != 4 {
		t.Errorf("expected stride 4, got %d", cfg.Raycast.Stride)
	}
	if cfg.Flashlight.Enabled {
		t.Error("expected flashlight disabled")
	}
	if cfg.Raycast.MaxRange != 2000 {
		t.Errorf("unset key should keep default, got max_range %v", cfg.Raycast.MaxRange)
	}
	if cfg.Textures.Walls["#"] != "assets/textures/stone.png" {
		t.Errorf("wall texture not loaded: %v", cfg.Textures.Walls)
	}
	if m := cfg.Level.Markers["K"]; len(m.Frames) != 2 || m.FrameDuration != 0.5 {
		t.Errorf("animated marker = %+v", m)
	}
	if _, ok := cfg.Level.Markers["O"]; !ok {
		t.Error("default markers should survive a partial markers section")
	}
	if cfg.Debug.PerfLogInterval != 2*time.Second {
		t.Errorf("expected 2s perf interval, got %v", cfg.Debug.PerfLogInterval)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(tmpDir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("raycast:\n  stride: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(invalid)
	if err == nil || !strings.Contains(err.Error(), "stride") {
		t.Errorf("expected stride validation error, got %v", err)
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{"zero size", func(c *Config) { c.Display.ScreenWidth = 0; c.Display.ScreenHeight = -1 }, []string{"screen_width", "screen_height"}},
		{"cell size", func(c *Config) { c.World.CellSize = 0 }, []string{"cell_size"}},
		{"fov", func(c *Config) { c.Camera.FOVDegrees = 180 }, []string{"fov_degrees"}},
		{"step and range", func(c *Config) { c.Raycast.Step = -1; c.Raycast.MaxRange = 0 }, []string{"raycast.step", "max_range"}},
		{"negative workers", func(c *Config) { c.Raycast.Workers = -2 }, []string{"raycast.workers"}},
		{"log levels", func(c *Config) {
			c.Logging.Level = "chatty"
			c.Logging.Subsystems = map[string]string{"texture": "loud"}
		}, []string{"logging.level", "logging.subsystems"}},
		{"brightness", func(c *Config) { c.Shading.MinBrightness = 1.5 }, []string{"min_brightness"}},
		{"marker key", func(c *Config) { c.Level.Markers["AB"] = MarkerConfig{Texture: "x"} }, []string{`"AB"`}},
		{"animation duration", func(c *Config) {
			c.Level.Markers["Z"] = MarkerConfig{Frames: []string{"a"}}
		}, []string{"frame_duration"}},
		{"wall key", func(c *Config) { c.Textures.Walls = map[string]string{"": "x.png"} }, []string{"textures.walls"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}
