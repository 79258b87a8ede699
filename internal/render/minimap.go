package render

import (
	"image/color"
	"math"

	"raymaze/internal/raycast"
	"raymaze/internal/world"
)

// MinimapOptions configures the top-down map.
type MinimapOptions struct {
	CellPixels  int        // on-screen size of one grid cell
	Offset      world.Vec2 // screen position of the map's top-left corner
	Rays        int        // traced rays across the field of view, 0 disables
	EmptyColor  color.RGBA
	WallColor   color.RGBA
	PlayerColor color.RGBA
	RayColor    color.RGBA
}

// DefaultMinimapOptions returns black floor, red walls and 25 yellow rays.
func DefaultMinimapOptions(cellPixels int) MinimapOptions {
	return MinimapOptions{
		CellPixels:  cellPixels,
		Rays:        25,
		EmptyColor:  color.RGBA{0, 0, 0, 255},
		WallColor:   color.RGBA{255, 0, 0, 255},
		PlayerColor: color.RGBA{255, 255, 255, 255},
		RayColor:    color.RGBA{255, 255, 0, 255},
	}
}

// Minimap draws the grid from above with the player and a fan of traced
// rays. Used both full screen and as a corner overlay.
type Minimap struct {
	opts     MinimapOptions
	cellSize float64
	caster   raycast.Caster
}

// NewMinimap creates a minimap for a world with the given cell size. Rays are
// traced with step so the fan is drawn without gaps.
func NewMinimap(opts MinimapOptions, cellSize, step, maxRange float64) *Minimap {
	if opts.CellPixels < 1 {
		opts.CellPixels = 1
	}
	return &Minimap{
		opts:     opts,
		cellSize: cellSize,
		caster:   raycast.NewCaster(cellSize, step, maxRange),
	}
}

// Scale is the number of screen pixels per world unit.
func (m *Minimap) Scale() float64 {
	return float64(m.opts.CellPixels) / m.cellSize
}

// Draw paints the map, the ray fan and the player marker.
func (m *Minimap) Draw(sink Sink, g *world.Grid, pose world.Pose) {
	if g == nil {
		return
	}
	cp := m.opts.CellPixels
	ox, oy := int(m.opts.Offset.X), int(m.opts.Offset.Y)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := m.opts.EmptyColor
			if g.Cell(row, col) != world.Empty {
				c = m.opts.WallColor
			}
			fillRect(sink, ox+col*cp, oy+row*cp, cp, cp, c)
		}
	}

	if m.opts.Rays > 0 {
		trace := &raycast.Trace{
			Sink:   sink,
			Offset: m.opts.Offset,
			Scale:  m.Scale(),
			Color:  m.opts.RayColor,
		}
		for i := 0; i < m.opts.Rays; i++ {
			a := pose.Angle - pose.FOV/2 + pose.FOV*float64(i)/float64(m.opts.Rays)
			m.caster.Cast(g, pose.Pos, a, trace)
		}
	}

	m.drawPlayer(sink, pose)
}

// drawPlayer fills a triangle pointing along the view direction.
func (m *Minimap) drawPlayer(sink Sink, pose world.Pose) {
	size := math.Max(float64(m.opts.CellPixels)*0.5, 3)
	center := m.opts.Offset.Add(pose.Pos.Scale(m.Scale()))
	fwd := pose.Forward()
	right := pose.Right()

	tip := center.Add(fwd.Scale(size))
	back := center.Add(fwd.Scale(-size * 0.5))
	left := back.Add(right.Scale(-size * 0.5))
	rgt := back.Add(right.Scale(size * 0.5))

	minX := int(math.Floor(math.Min(tip.X, math.Min(left.X, rgt.X))))
	maxX := int(math.Ceil(math.Max(tip.X, math.Max(left.X, rgt.X))))
	minY := int(math.Floor(math.Min(tip.Y, math.Min(left.Y, rgt.Y))))
	maxY := int(math.Ceil(math.Max(tip.Y, math.Max(left.Y, rgt.Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := world.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if insideTriangle(p, tip, left, rgt) {
				sink.SetPixel(x, y, m.opts.PlayerColor)
			}
		}
	}
}

func insideTriangle(p, a, b, c world.Vec2) bool {
	d1 := edge(p, a, b)
	d2 := edge(p, b, c)
	d3 := edge(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func edge(p, a, b world.Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
