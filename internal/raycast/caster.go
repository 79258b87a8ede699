// Package raycast marches rays across a tile grid.
package raycast

import (
	"image/color"
	"math"

	"raymaze/internal/world"
)

// Intersection is the result of a single cast. Impact == world.Empty means
// the ray hit nothing before leaving the grid or exhausting its range.
type Intersection struct {
	Distance float64
	Impact   rune
}

// Hit reports whether the ray struck a wall.
func (in Intersection) Hit() bool {
	return in.Impact != world.Empty
}

// PixelSetter is the minimal drawing capability the trace mode needs.
type PixelSetter interface {
	SetPixel(x, y int, c color.RGBA)
}

// Trace paints every sampled point of a ray, used by the 2-D minimap.
// Positions are mapped to pixels as Offset + pos*Scale.
type Trace struct {
	Sink   PixelSetter
	Offset world.Vec2
	Scale  float64
	Color  color.RGBA
}

// Caster performs fixed-step linear ray marching. Hit precision equals Step:
// there is no refinement, so callers must tolerate a Step-sized offset at
// wall boundaries.
type Caster struct {
	CellSize float64
	Step     float64
	MaxRange float64
}

// NewCaster returns a caster with a usable step.
func NewCaster(cellSize, step, maxRange float64) Caster {
	c := Caster{CellSize: cellSize, Step: step, MaxRange: maxRange}
	if c.Step <= 0 {
		c.Step = 1.0
	}
	return c
}

// Cast marches from origin along angle. A nil trace disables path painting.
func (c Caster) Cast(g *world.Grid, origin world.Vec2, angle float64, trace *Trace) Intersection {
	step := c.Step
	if step <= 0 {
		step = 1.0
	}
	dirX, dirY := math.Cos(angle), math.Sin(angle)

	lastValid := 0.0
	for d := 0.0; d < c.MaxRange; d += step {
		x := origin.X + d*dirX
		y := origin.Y + d*dirY

		row, col, ok := g.CellAt(x, y, c.CellSize)
		if !ok {
			// left the grid without hitting anything
			return Intersection{Distance: lastValid, Impact: world.Empty}
		}
		if cell := g.Cell(row, col); cell != world.Empty {
			return Intersection{Distance: d, Impact: cell}
		}

		if trace != nil && trace.Sink != nil {
			scale := trace.Scale
			if scale == 0 {
				scale = 1
			}
			trace.Sink.SetPixel(int(trace.Offset.X+x*scale), int(trace.Offset.Y+y*scale), trace.Color)
		}
		lastValid = d
	}
	return Intersection{Distance: c.MaxRange, Impact: world.Empty}
}
