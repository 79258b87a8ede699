// Package render draws the first-person view of a tile grid into a pixel
// sink: ceiling, textured wall slabs and a perspective floor, one ray per
// column block.
package render

import (
	"math"

	"raymaze/internal/mathutil"
	"raymaze/internal/raycast"
	"raymaze/internal/texture"
	"raymaze/internal/workerpool"
	"raymaze/internal/world"
)

// nearWall is the corrected distance at or below which a wall covers the
// whole screen height.
const nearWall = 0.1

// DepthBuffer holds the corrected wall distance for each screen column.
type DepthBuffer []float64

// Options configures a WorldRenderer. Stride < 1 is treated as 1.
type Options struct {
	Width      int
	Height     int
	CellSize   float64
	Step       float64
	MaxRange   float64
	Stride     int
	Shading    Shading
	Flashlight Flashlight

	// Pool, when set, casts the column rays in parallel. Drawing into the
	// sink always happens on the calling goroutine.
	Pool *workerpool.Pool
}

// Slab is the vertical extent of a wall column. Top and Bottom are clipped
// rows [Top, Bottom); Start and Height describe the unclipped slab.
type Slab struct {
	Top    int
	Bottom int
	Start  float64
	Height float64
}

// WorldRenderer renders walls, floor and ceiling. It holds no per-frame
// state, so Render may be called repeatedly with different poses.
type WorldRenderer struct {
	opts   Options
	atlas  *texture.Atlas
	caster raycast.Caster
}

// column is the per-ray result shared by every pixel of a stride block.
type column struct {
	rayAngle   float64
	offset     float64
	corrected  float64
	hit        raycast.Intersection
	slab       Slab
	u          float64
	brightness float64
}

// NewWorldRenderer creates a renderer drawing with the given atlas.
func NewWorldRenderer(opts Options, atlas *texture.Atlas) *WorldRenderer {
	if opts.Stride < 1 {
		opts.Stride = 1
	}
	return &WorldRenderer{
		opts:   opts,
		atlas:  atlas,
		caster: raycast.NewCaster(opts.CellSize, opts.Step, opts.MaxRange),
	}
}

// Options returns the renderer configuration.
func (r *WorldRenderer) Options() Options {
	return r.opts
}

// SetFlashlight replaces the flashlight settings between frames.
func (r *WorldRenderer) SetFlashlight(f Flashlight) {
	r.opts.Flashlight = f
}

// SlabExtents projects a corrected distance to a centered wall slab. Walls
// at or below nearWall fill the screen.
func (r *WorldRenderer) SlabExtents(corrected float64) Slab {
	h := float64(r.opts.Height)
	height := h
	if corrected > nearWall {
		height = r.opts.CellSize * h / corrected
	}
	start := h/2 - height/2
	end := h/2 + height/2
	return Slab{
		Top:    int(math.Max(start, 0)),
		Bottom: int(math.Min(end, h)),
		Start:  start,
		Height: height,
	}
}

// Render draws one frame and returns the per-column depth buffer consumed by
// the sprite pass.
func (r *WorldRenderer) Render(sink Sink, g *world.Grid, pose world.Pose) DepthBuffer {
	w, h := r.opts.Width, r.opts.Height
	depth := make(DepthBuffer, mathutil.IntMax(w, 0))
	if w <= 0 || h <= 0 || g == nil {
		return depth
	}

	stride := r.opts.Stride
	cols := make([]column, (w+stride-1)/stride)
	cast := func(b int) {
		cols[b] = r.castColumn(g, pose, b*stride)
	}
	if r.opts.Pool != nil {
		r.opts.Pool.ParallelFor(0, len(cols), cast)
	} else {
		for b := range cols {
			cast(b)
		}
	}

	for b, col := range cols {
		x0 := b * stride
		x1 := mathutil.IntMin(x0+stride, w)

		r.drawCeiling(sink, col, x0, x1)
		r.drawWall(sink, col, x0, x1)
		r.drawFloor(sink, pose, col, x0, x1)

		for x := x0; x < x1; x++ {
			depth[x] = col.corrected
		}
	}
	return depth
}

func (r *WorldRenderer) castColumn(g *world.Grid, pose world.Pose, x int) column {
	ratio := float64(x) / float64(r.opts.Width)
	rayAngle := pose.Angle - pose.FOV/2 + pose.FOV*ratio
	offset := rayAngle - pose.Angle

	hit := r.caster.Cast(g, pose.Pos, rayAngle, nil)
	corrected := hit.Distance * math.Cos(offset)

	col := column{
		rayAngle:  rayAngle,
		offset:    offset,
		corrected: corrected,
		hit:       hit,
	}
	if !hit.Hit() {
		// no slab: the horizon splits ceiling and floor
		mid := r.opts.Height / 2
		col.slab = Slab{Top: mid, Bottom: mid, Start: float64(r.opts.Height) / 2}
		return col
	}

	col.slab = r.SlabExtents(corrected)
	col.brightness = r.opts.Shading.Brightness(corrected) + r.opts.Flashlight.Boost(offset)

	hitX := pose.Pos.X + hit.Distance*math.Cos(rayAngle)
	hitY := pose.Pos.Y + hit.Distance*math.Sin(rayAngle)
	o := hitOrientation(g, hit.Impact, hitX, hitY, r.opts.CellSize)
	col.u = textureU(o, hitX, hitY, r.opts.CellSize)
	return col
}

func (r *WorldRenderer) drawCeiling(sink Sink, col column, x0, x1 int) {
	for y := 0; y < col.slab.Top; y++ {
		c := r.atlas.CeilingColor(x0, y, r.opts.Width, r.opts.Height)
		for x := x0; x < x1; x++ {
			sink.SetPixel(x, y, c)
		}
	}
}

func (r *WorldRenderer) drawWall(sink Sink, col column, x0, x1 int) {
	if !col.hit.Hit() || col.slab.Top >= col.slab.Bottom {
		return
	}
	symbol := col.hit.Impact

	if !r.atlas.HasWallTexture(symbol) {
		c := shade(r.atlas.WallColor(symbol, col.u, 0), col.brightness)
		for x := x0; x < x1; x++ {
			drawRun(sink, x, col.slab.Top, col.slab.Bottom, c)
		}
		return
	}

	for y := col.slab.Top; y < col.slab.Bottom; y++ {
		v := math.Max(0, (float64(y)-col.slab.Start)/col.slab.Height)
		c := shade(r.atlas.WallColor(symbol, col.u, v), col.brightness)
		for x := x0; x < x1; x++ {
			sink.SetPixel(x, y, c)
		}
	}
}

func (r *WorldRenderer) drawFloor(sink Sink, pose world.Pose, col column, x0, x1 int) {
	half := float64(r.opts.Height) / 2
	cosOffset := math.Cos(col.offset)
	dirX, dirY := math.Cos(col.rayAngle), math.Sin(col.rayAngle)

	for y := col.slab.Bottom; y < r.opts.Height; y++ {
		below := float64(y) - half
		if below <= 0 {
			// horizon row has no floor distance
			c := r.atlas.CeilingColor(x0, y, r.opts.Width, r.opts.Height)
			for x := x0; x < x1; x++ {
				sink.SetPixel(x, y, c)
			}
			continue
		}
		perp := half / below * r.opts.CellSize
		dist := perp / cosOffset
		c := r.atlas.FloorColor(pose.Pos.X+dist*dirX, pose.Pos.Y+dist*dirY)
		c = shade(c, r.opts.Shading.Brightness(perp))
		for x := x0; x < x1; x++ {
			sink.SetPixel(x, y, c)
		}
	}
}
