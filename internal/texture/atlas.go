// Package texture owns wall, floor, ceiling and sprite pixel data and
// answers color queries for the renderers.
package texture

import (
	"image/color"
	"math"

	"raymaze/internal/mathutil"
)

// Missing is returned for any sample that cannot be resolved, so a bad
// texture shows up as magenta instead of stopping the frame.
var Missing = color.RGBA{255, 0, 255, 255}

var (
	defaultFloor = color.RGBA{64, 64, 64, 255}
)

// Data is an immutable row-major RGBA pixel grid. Pixels hold straight
// (non-premultiplied) channel values exactly as decoded.
type Data struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// NewData allocates a blank texture.
func NewData(width, height int) *Data {
	return &Data{Width: width, Height: height, Pixels: make([]color.RGBA, width*height)}
}

func (d *Data) valid() bool {
	return d != nil && d.Width > 0 && d.Height > 0 && len(d.Pixels) >= d.Width*d.Height
}

// Palette maps wall symbols to flat colors used when no texture is bound.
type Palette struct {
	colors   map[rune]color.RGBA
	fallback color.RGBA
}

// NewPalette builds a palette from a symbol table and the color used for
// symbols missing from it.
func NewPalette(colors map[rune]color.RGBA, fallback color.RGBA) Palette {
	table := make(map[rune]color.RGBA, len(colors))
	for k, v := range colors {
		table[k] = v
	}
	return Palette{colors: table, fallback: fallback}
}

// DefaultPalette returns the stock wall colors.
func DefaultPalette() Palette {
	return NewPalette(map[rune]color.RGBA{
		'+': {139, 69, 19, 255},   // wood
		'#': {128, 128, 128, 255}, // stone
		'=': {160, 82, 45, 255},   // brick
		'-': {180, 82, 45, 255},
		'|': {160, 92, 55, 255},
	}, color.RGBA{255, 0, 0, 255})
}

// Color returns the flat color for a symbol.
func (p Palette) Color(symbol rune) color.RGBA {
	if c, ok := p.colors[symbol]; ok {
		return c
	}
	return p.fallback
}

// Atlas holds every texture a level uses. It is filled at level load and
// only read while rendering.
type Atlas struct {
	walls    map[rune]*Data
	sprites  map[string]*Data
	floor    *Data
	ceiling  *Data
	palette  Palette
	cellSize float64
}

// NewAtlas creates an empty atlas. cellSize is the world size of one grid
// cell and sets the floor texture repeat.
func NewAtlas(palette Palette, cellSize float64) *Atlas {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Atlas{
		walls:    make(map[rune]*Data),
		sprites:  make(map[string]*Data),
		palette:  palette,
		cellSize: cellSize,
	}
}

// SetWall binds a texture to a wall symbol.
func (a *Atlas) SetWall(symbol rune, d *Data) {
	a.walls[symbol] = d
}

// SetFloor binds the floor texture.
func (a *Atlas) SetFloor(d *Data) {
	a.floor = d
}

// SetCeiling binds the ceiling texture.
func (a *Atlas) SetCeiling(d *Data) {
	a.ceiling = d
}

// SetSprite binds a named sprite texture.
func (a *Atlas) SetSprite(name string, d *Data) {
	a.sprites[name] = d
}

// Wall returns the texture bound to symbol, if any.
func (a *Atlas) Wall(symbol rune) (*Data, bool) {
	d, ok := a.walls[symbol]
	return d, ok
}

// HasWallTexture reports whether symbol has a texture bound. When it does
// not, WallColor is constant for that symbol.
func (a *Atlas) HasWallTexture(symbol rune) bool {
	_, ok := a.walls[symbol]
	return ok
}

// Sprite returns the named sprite texture, if any.
func (a *Atlas) Sprite(name string) (*Data, bool) {
	d, ok := a.sprites[name]
	return d, ok
}

// Sample reads a texture at (u, v), tiling both axes by their fractional
// part and picking the nearest pixel by truncation. Non-finite coordinates
// yield Missing.
func Sample(d *Data, u, v float64) color.RGBA {
	if !d.valid() || !finite(u) || !finite(v) {
		return Missing
	}
	u = mathutil.Fract(u)
	v = mathutil.Fract(v)
	x := mathutil.IntClamp(int(u*float64(d.Width)), 0, d.Width-1)
	y := mathutil.IntClamp(int(v*float64(d.Height)), 0, d.Height-1)
	return d.Pixels[y*d.Width+x]
}

// SampleClamped reads a texture at (u, v) clamped to the edges instead of
// tiling. Sprites use it so their borders do not bleed.
func SampleClamped(d *Data, u, v float64) color.RGBA {
	if !d.valid() || !finite(u) || !finite(v) {
		return Missing
	}
	x := mathutil.IntClamp(int(u*float64(d.Width)), 0, d.Width-1)
	y := mathutil.IntClamp(int(v*float64(d.Height)), 0, d.Height-1)
	return d.Pixels[y*d.Width+x]
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// WallColor returns the wall color for a symbol at (u, v): the bound texture
// when there is one, the palette color otherwise.
func (a *Atlas) WallColor(symbol rune, u, v float64) color.RGBA {
	if d, ok := a.walls[symbol]; ok {
		return Sample(d, u, v)
	}
	return a.palette.Color(symbol)
}

// FloorColor returns the floor color at a world position. The floor texture
// repeats once per grid cell.
func (a *Atlas) FloorColor(worldX, worldY float64) color.RGBA {
	if a.floor == nil {
		return defaultFloor
	}
	return Sample(a.floor, worldX/a.cellSize, worldY/a.cellSize)
}

// CeilingColor returns the ceiling color for a screen pixel. Without a
// ceiling texture a night-sky gradient is synthesized, brighter toward the
// top of the screen.
func (a *Atlas) CeilingColor(screenX, screenY, screenW, screenH int) color.RGBA {
	if screenW <= 0 || screenH <= 0 {
		return Missing
	}
	if a.ceiling != nil {
		return Sample(a.ceiling, float64(screenX)/float64(screenW), float64(screenY)/float64(screenH))
	}
	t := 1 - float64(screenY)/float64(screenH)
	return color.RGBA{
		R: uint8(20 + 30*t),
		G: uint8(20 + 25*t),
		B: uint8(50 + 80*t),
		A: 255,
	}
}
