package texture

import (
	"image/color"
	"math"

	"raymaze/internal/mathutil"
)

// Default sizes of the generated textures.
const (
	DefaultWallSize   = 64
	DefaultSkyWidth   = 256
	DefaultSkyHeight  = 128
	DefaultSpriteSize = 32
)

// Stock sprite texture names produced by GenerateDefaults.
const (
	SpriteKey   = "key"
	SpriteSpike = "spike"
)

var (
	mortarColor = color.RGBA{101, 67, 33, 255}
	brickColor  = color.RGBA{139, 69, 19, 255}
)

// GenerateDefaults fills the atlas with deterministic procedural textures:
// brick for '+', stone for '#', oriented wood grain for '-' and '|', a
// checker floor and a sky gradient ceiling, plus the stock sprites.
// Existing bindings are replaced.
func (a *Atlas) GenerateDefaults() {
	a.SetWall('+', Brick(DefaultWallSize, DefaultWallSize))
	a.SetWall('#', Stone(DefaultWallSize, DefaultWallSize))
	a.SetWall('-', Wood(DefaultWallSize, DefaultWallSize, true))
	a.SetWall('|', Wood(DefaultWallSize, DefaultWallSize, false))
	a.SetFloor(FloorTiles(DefaultWallSize, DefaultWallSize))
	a.SetCeiling(Sky(DefaultSkyWidth, DefaultSkyHeight))
	a.SetSprite(SpriteKey, Key(DefaultSpriteSize))
	a.SetSprite(SpriteSpike, Spike(DefaultSpriteSize))
}

// Brick draws staggered bricks, eight per row and four rows, with a two
// pixel mortar border.
func Brick(w, h int) *Data {
	d := NewData(w, h)
	bw := mathutil.IntMax(w/8, 1)
	bh := mathutil.IntMax(h/4, 1)
	for y := 0; y < h; y++ {
		row := y / bh
		shift := 0
		if row%2 == 1 {
			shift = bw / 2
		}
		for x := 0; x < w; x++ {
			bx := (x + shift) % bw
			by := y % bh
			c := brickColor
			if bx < 2 || bx >= bw-2 || by < 2 || by >= bh-2 {
				c = mortarColor
			}
			d.Pixels[y*w+x] = c
		}
	}
	return d
}

// Stone draws a gray surface with a fixed pseudo-random speckle.
func Stone(w, h int) *Data {
	d := NewData(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			noise := float64((x*17+y*23)%64) / 64
			g := uint8(128 + noise*64)
			d.Pixels[y*w+x] = color.RGBA{g, g, g, 255}
		}
	}
	return d
}

// Wood draws sinusoidal grain. Horizontal grain varies along x, vertical
// grain along y.
func Wood(w, h int, horizontal bool) *Data {
	d := NewData(w, h)
	period := float64(mathutil.IntMax(h/8, 1))
	if horizontal {
		period = float64(mathutil.IntMax(w/8, 1))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			along, across := y, x
			if horizontal {
				along, across = x, y
			}
			grain := math.Sin(math.Mod(float64(along), period) / period)
			cross := math.Abs(math.Sin(float64(across)*0.1) * 0.1)
			base := 139 + grain*40 + cross*20
			d.Pixels[y*w+x] = color.RGBA{
				R: uint8(mathutil.Clamp(base, 100, 180)),
				G: uint8(mathutil.Clamp(base*0.5, 50, 120)),
				B: uint8(mathutil.Clamp(base*0.2, 10, 60)),
				A: 255,
			}
		}
	}
	return d
}

// FloorTiles draws a 4x4 checkerboard of gray tiles with darker grout.
func FloorTiles(w, h int) *Data {
	d := NewData(w, h)
	tile := mathutil.IntMax(w/4, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tx, ty := x%tile, y%tile
			base := 80
			if (x/tile+y/tile)%2 == 0 {
				base = 40
			}
			if tx < 2 || ty < 2 || tx >= tile-2 || ty >= tile-2 {
				base -= 10
			}
			g := uint8(base)
			d.Pixels[y*w+x] = color.RGBA{g, g, g, 255}
		}
	}
	return d
}

// Sky draws a three band vertical gradient from deep blue at the top to a
// pale horizon.
func Sky(w, h int) *Data {
	d := NewData(w, h)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		var c color.RGBA
		switch {
		case t < 0.3:
			k := t / 0.3
			c = color.RGBA{uint8(25 + k*30), uint8(25 + k*50), uint8(112 + k*50), 255}
		case t < 0.7:
			k := (t - 0.3) / 0.4
			c = color.RGBA{uint8(55 + k*80), uint8(75 + k*100), uint8(162 + k*60), 255}
		default:
			k := (t - 0.7) / 0.3
			c = color.RGBA{uint8(135 + k*50), uint8(175 + k*40), uint8(222 + k*20), 255}
		}
		for x := 0; x < w; x++ {
			d.Pixels[y*w+x] = c
		}
	}
	return d
}

// Key draws a golden key on a transparent background.
func Key(size int) *Data {
	d := NewData(size, size)
	gold := color.RGBA{218, 165, 32, 255}
	s := float64(size)
	cx, cy := s*0.3, s*0.5
	outer, inner := s*0.2, s*0.1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			r := math.Hypot(fx-cx, fy-cy)
			ring := r <= outer && r >= inner
			shaft := fx >= cx+outer && fx < s*0.9 && math.Abs(fy-cy) <= s*0.05
			tooth := fy > cy && fy <= cy+s*0.15 &&
				((fx >= s*0.65 && fx < s*0.72) || (fx >= s*0.8 && fx < s*0.87))
			if ring || shaft || tooth {
				d.Pixels[y*size+x] = gold
			}
		}
	}
	return d
}

// Spike draws a row of steel spikes rising from the bottom edge on a
// transparent background.
func Spike(size int) *Data {
	d := NewData(size, size)
	steel := color.RGBA{170, 170, 185, 255}
	edge := color.RGBA{90, 90, 100, 255}
	const teeth = 4
	tw := float64(size) / teeth
	for y := 0; y < size; y++ {
		height := float64(size-y) / float64(size)
		for x := 0; x < size; x++ {
			local := math.Mod(float64(x)+0.5, tw)/tw - 0.5
			half := 0.5 * (1 - height)
			if math.Abs(local) > half {
				continue
			}
			c := steel
			if math.Abs(local) > half-0.08 {
				c = edge
			}
			d.Pixels[y*size+x] = c
		}
	}
	return d
}
