package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raymaze/internal/config"
	"raymaze/internal/game"
	"raymaze/internal/logger"
	"raymaze/internal/world"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet; the no-op default would swallow this
		_ = logger.Init(logger.Options{Console: true})
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := logger.Init(cfg.LoggerOptions()); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	lvl, err := world.LoadLevel(cfg.Level.File, game.MarkerTable(cfg), cfg.GetCellSize())
	if err != nil {
		logger.Fatal("failed to load level", zap.String("file", cfg.Level.File), zap.Error(err))
	}
	logger.Info("level loaded",
		zap.String("file", cfg.Level.File),
		zap.Int("rows", lvl.Grid.Rows()),
		zap.Int("cols", lvl.Grid.Cols()),
		zap.Int("sprites", len(lvl.Spawns)))

	atlas := game.LoadAtlas(cfg)

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, lvl, atlas)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, game.ErrExit) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
