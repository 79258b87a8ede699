// Package game runs the ebiten demo: a menu, the first-person maze view and
// a full-screen map, all drawn through the software renderer.
package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raymaze/internal/config"
	"raymaze/internal/game/keytracker"
	"raymaze/internal/logger"
	"raymaze/internal/monitoring"
	"raymaze/internal/render"
	"raymaze/internal/sprite"
	"raymaze/internal/texture"
	"raymaze/internal/workerpool"
	"raymaze/internal/world"
)

// ErrExit is returned from the game loop to request a clean exit.
var ErrExit = errors.New("exit game")

// State is the top-level screen the demo is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateExit:
		return "exit"
	}
	return "unknown"
}

// Game implements ebiten.Game.
type Game struct {
	cfg   *config.Config
	level *world.Level
	atlas *texture.Atlas

	state    State
	pose     world.Pose
	sprites  []sprite.Sprite
	mapMode  bool
	frameDT  float64 // seconds of simulation not yet seen by the sprite pass
	resets   int
	lastMsg  string
	msgUntil time.Time

	worldRenderer  *render.WorldRenderer
	spriteRenderer *sprite.Renderer
	overlay        *render.Minimap
	fullMap        *render.Minimap
	fb             *render.Framebuffer
	frame          *ebiten.Image
	pool           *workerpool.Pool

	keys    *keytracker.Tracker
	mouse   mouseState
	monitor *monitoring.FrameMonitor
	log     *zap.Logger
}

// NewGame wires the renderers for a loaded level and atlas.
func NewGame(cfg *config.Config, lvl *world.Level, atlas *texture.Atlas) *Game {
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	cell := cfg.GetCellSize()

	worldOpts := render.Options{
		Width:    w,
		Height:   h,
		CellSize: cell,
		Step:     cfg.Raycast.Step,
		MaxRange: cfg.Raycast.MaxRange,
		Stride:   cfg.Raycast.Stride,
		Shading: render.Shading{
			FalloffDistance: cfg.Shading.FalloffDistance,
			MinBrightness:   cfg.Shading.MinBrightness,
		},
		Flashlight: render.Flashlight{
			Enabled:   cfg.Flashlight.Enabled,
			Strength:  cfg.Flashlight.Strength,
			HalfWidth: cfg.GetFlashlightHalfWidth(),
		},
	}

	var pool *workerpool.Pool
	if cfg.Raycast.Workers > 1 {
		pool = workerpool.New(cfg.Raycast.Workers)
		pool.Start()
		worldOpts.Pool = pool
	}

	spriteOpts := sprite.DefaultOptions(w, h)
	spriteOpts.AlphaThreshold = cfg.Sprites.AlphaThreshold

	fullOpts := render.DefaultMinimapOptions(cfg.Minimap.CellPixels)
	fullOpts.Rays = cfg.Minimap.Rays

	overlayOpts := render.DefaultMinimapOptions(cfg.Minimap.OverlayCellPixels)
	overlayOpts.Rays = 0
	overlayOpts.Offset = world.Vec2{
		X: float64(w - lvl.Grid.Cols()*cfg.Minimap.OverlayCellPixels),
		Y: 0,
	}

	g := &Game{
		cfg:            cfg,
		level:          lvl,
		atlas:          atlas,
		state:          StateMenu,
		worldRenderer:  render.NewWorldRenderer(worldOpts, atlas),
		spriteRenderer: sprite.NewRenderer(spriteOpts, atlas),
		overlay:        render.NewMinimap(overlayOpts, cell, cfg.Raycast.Step, cfg.Raycast.MaxRange),
		fullMap:        render.NewMinimap(fullOpts, cell, cfg.Minimap.Step, cfg.Raycast.MaxRange),
		fb:             render.NewFramebuffer(w, h),
		pool:           pool,
		keys:           keytracker.New(),
		monitor:        monitoring.NewFrameMonitor(cfg.Debug.PerfLogInterval),
		log:            logger.Named("game"),
	}
	g.resetSession()
	return g
}

// resetSession puts the player on the start cell and respawns every sprite.
func (g *Game) resetSession() {
	g.pose = g.StartPose()
	g.sprites = sprite.FromSpawns(g.level.Spawns)
	g.mapMode = false
	g.frameDT = 0
}

// Close stops the ray casting workers. The game must not be drawn after.
func (g *Game) Close() {
	if g.pool != nil {
		g.pool.Stop()
	}
}

// Update advances one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	return g.step(g.readInput(), dt)
}

// step applies one tick of input. It holds all state transitions so it can
// be driven without a window.
func (g *Game) step(in Input, dt float64) error {
	switch g.state {
	case StateMenu:
		if in.Confirm {
			g.resetSession()
			g.setState(StatePlaying)
		} else if in.Quit {
			g.setState(StateExit)
		}
	case StatePlaying:
		if in.Menu {
			g.setState(StateMenu)
			return nil
		}
		g.handleToggles(in)
		g.applyMovement(in, dt)
		g.checkHazards()
		g.frameDT += dt
	}
	if g.state == StateExit {
		return ErrExit
	}
	return nil
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.log.Info("state change", zap.Stringer("from", g.state), zap.Stringer("to", s))
	g.state = s
}

func (g *Game) handleToggles(in Input) {
	if in.ToggleMap {
		g.mapMode = !g.mapMode
	}
	if in.ToggleFlashlight {
		f := g.worldRenderer.Options().Flashlight
		f.Enabled = !f.Enabled
		g.worldRenderer.SetFlashlight(f)
		g.notify("flashlight toggled")
	}
}

// checkHazards sends the player back to the start after touching a damaging
// sprite.
func (g *Game) checkHazards() {
	for _, s := range g.sprites {
		if s.Damaging && sprite.Touching(s, g.pose.Pos, g.cfg.Sprites.TouchRadius) {
			g.resets++
			g.log.Info("player hit hazard",
				zap.String("sprite", s.Texture),
				zap.Float64("x", s.Pos.X),
				zap.Float64("y", s.Pos.Y),
				zap.Int("resets", g.resets))
			g.pose.Pos = g.level.Start
			g.notify("ouch! back to the start")
			return
		}
	}
}

func (g *Game) notify(msg string) {
	g.lastMsg = msg
	g.msgUntil = time.Now().Add(2 * time.Second)
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state != StatePlaying {
		g.drawMenu(screen)
		return
	}

	timer := g.monitor.StartFrame()
	g.renderFrame()
	g.monitor.Profile(monitoring.PassPresent, func() { g.present(screen) })
	g.drawHUD(screen)
	timer.EndFrame()

	if g.cfg.Debug.PerfLog {
		g.monitor.MaybeLog(g.log, g.cfg.Debug.MinFPS)
	}
}

// Layout keeps the logical screen at the configured size so the
// framebuffer maps one-to-one onto it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
