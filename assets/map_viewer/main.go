// Command map_viewer renders a level to a PNG without opening a window:
// either the 3-D view from a chosen pose or the top-down map.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"raymaze/internal/config"
	"raymaze/internal/game"
	"raymaze/internal/logger"
	"raymaze/internal/world"
)

var (
	outPath  = flag.String("out", "snapshot.png", "output PNG path")
	mapMode  = flag.Bool("map", false, "render the top-down map instead of the 3-D view")
	cellX    = flag.Float64("x", -1, "viewer column in cells, negative uses the level start")
	cellY    = flag.Float64("y", -1, "viewer row in cells, negative uses the level start")
	angleDeg = flag.Float64("angle", 0, "facing in degrees, 0 looks east")
)

func main() {
	ensureRuntimeCWD()
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LoggerOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	cell := cfg.GetCellSize()
	lvl, err := world.LoadLevel(cfg.Level.File, game.MarkerTable(cfg), cell)
	if err != nil {
		return err
	}

	if *mapMode {
		cfg.Display.ScreenWidth = lvl.Grid.Cols() * cfg.Minimap.CellPixels
		cfg.Display.ScreenHeight = lvl.Grid.Rows() * cfg.Minimap.CellPixels
	}
	g := game.NewGame(cfg, lvl, game.LoadAtlas(cfg))
	defer g.Close()

	pose := g.StartPose()
	if *cellX >= 0 && *cellY >= 0 {
		pose.Pos = world.Vec2{X: *cellX * cell, Y: *cellY * cell}
	}
	pose.Angle = *angleDeg * math.Pi / 180
	img := g.Snapshot(pose, *mapMode)

	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *outPath, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", *outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("snapshot written",
		zap.String("path", *outPath),
		zap.String("level", cfg.Level.File),
		zap.Bool("map", *mapMode),
		zap.Float64("x", pose.Pos.X),
		zap.Float64("y", pose.Pos.Y))
	return nil
}

// ensureRuntimeCWD moves to the executable's directory when started from
// elsewhere so relative asset paths resolve.
func ensureRuntimeCWD() {
	if _, err := os.Stat(config.DefaultPath); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
