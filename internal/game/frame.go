package game

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"raymaze/internal/monitoring"
	"raymaze/internal/render"
	"raymaze/internal/world"
)

// renderFrame draws the current view into the framebuffer: the 3-D view
// with sprites and the corner map, or the full-screen map.
func (g *Game) renderFrame() {
	if g.mapMode {
		g.fb.Clear()
		g.fullMap.Draw(g.fb, g.level.Grid, g.pose)
		return
	}

	var depth render.DepthBuffer
	g.monitor.Profile(monitoring.PassWorld, func() {
		depth = g.worldRenderer.Render(g.fb, g.level.Grid, g.pose)
	})

	var written int
	dt := g.frameDT
	g.frameDT = 0
	g.monitor.Profile(monitoring.PassSprites, func() {
		written = g.spriteRenderer.Render(g.fb, g.sprites, g.pose, depth, dt)
	})
	g.monitor.RecordSprites(len(g.sprites), written)

	if g.cfg.Minimap.ShowOverlay {
		g.overlay.Draw(g.fb, g.level.Grid, g.pose)
	}
}

// present uploads the framebuffer to the screen.
func (g *Game) present(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	g.frame.WritePixels(g.fb.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.cfg.Debug.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.0f", ebiten.ActualFPS()), 10, 10)
	}
	if g.lastMsg != "" && time.Now().Before(g.msgUntil) {
		ebitenutil.DebugPrintAt(screen, g.lastMsg, 10, g.cfg.GetScreenHeight()-24)
	}
}

// Snapshot renders one frame from pose without a window and returns a copy
// of the pixels. Animations do not advance.
func (g *Game) Snapshot(pose world.Pose, mapMode bool) *image.RGBA {
	savedPose, savedMode := g.pose, g.mapMode
	g.pose, g.mapMode = pose, mapMode
	g.frameDT = 0
	g.renderFrame()
	g.pose, g.mapMode = savedPose, savedMode

	img := image.NewRGBA(image.Rect(0, 0, g.fb.Width, g.fb.Height))
	copy(img.Pix, g.fb.Pix)
	return img
}

// StartPose is the pose a new session begins with.
func (g *Game) StartPose() world.Pose {
	return world.Pose{Pos: g.level.Start, FOV: g.cfg.GetFOV()}
}
