package sprite

import (
	"math"
	"sort"

	"raymaze/internal/mathutil"
	"raymaze/internal/render"
	"raymaze/internal/texture"
	"raymaze/internal/world"
)

// DefaultAlphaThreshold hides near-transparent texels that would otherwise
// leave a faint halo around sprites.
const DefaultAlphaThreshold = 10

// maxSpriteSize bounds the projected size of a sprite almost on top of the
// viewer so the pixel math stays in int range.
const maxSpriteSize = 1e9

// Options configures a Renderer.
type Options struct {
	Width          int
	Height         int
	AlphaThreshold uint8 // texels with alpha <= threshold are skipped
}

// DefaultOptions returns options for a screen size with the stock alpha
// threshold.
func DefaultOptions(width, height int) Options {
	return Options{Width: width, Height: height, AlphaThreshold: DefaultAlphaThreshold}
}

// Renderer draws sprites back to front after the world pass. It keeps
// scratch slices between frames and is not safe for concurrent use.
type Renderer struct {
	opts  Options
	atlas *texture.Atlas
	order []int
	dist2 []float64
}

// NewRenderer creates a sprite renderer reading textures from atlas.
func NewRenderer(opts Options, atlas *texture.Atlas) *Renderer {
	return &Renderer{opts: opts, atlas: atlas}
}

// Render advances animations by dt, then draws every visible sprite. depth
// is the buffer returned by the world pass; columns it does not cover are
// treated as unoccluded. It returns the number of pixels written.
func (r *Renderer) Render(sink render.Sink, sprites []Sprite, pose world.Pose, depth render.DepthBuffer, dt float64) int {
	Advance(sprites, dt)
	if r.opts.Width <= 0 || r.opts.Height <= 0 || len(sprites) == 0 {
		return 0
	}

	r.sortBackToFront(sprites, pose.Pos)

	written := 0
	for _, i := range r.order {
		written += r.draw(sink, &sprites[i], pose, depth)
	}
	return written
}

// sortBackToFront orders sprite indices by descending squared distance.
// Equal distances keep their input order.
func (r *Renderer) sortBackToFront(sprites []Sprite, from world.Vec2) {
	r.order = r.order[:0]
	r.dist2 = r.dist2[:0]
	for i, s := range sprites {
		r.order = append(r.order, i)
		r.dist2 = append(r.dist2, mathutil.DistanceSquared(s.Pos.X, s.Pos.Y, from.X, from.Y))
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		return r.dist2[r.order[a]] > r.dist2[r.order[b]]
	})
}

func (r *Renderer) draw(sink render.Sink, s *Sprite, pose world.Pose, depth render.DepthBuffer) int {
	tex, ok := r.atlas.Sprite(s.Texture)
	if !ok {
		return 0
	}

	dx := s.Pos.X - pose.Pos.X
	dy := s.Pos.Y - pose.Pos.Y
	diff := mathutil.NormalizeAngle(math.Atan2(dy, dx) - pose.Angle)
	halfFOV := pose.FOV / 2
	if math.Abs(diff) > halfFOV {
		return 0
	}

	dist := math.Hypot(dx, dy) * math.Cos(diff)
	if dist <= 0 {
		return 0
	}

	w, h := float64(r.opts.Width), float64(r.opts.Height)
	size := math.Min(h/dist*s.Scale, maxSpriteSize)
	if !(size >= 1) {
		return 0
	}
	left := int(w/2*(1+diff/halfFOV) - size/2)
	top := int(h/2 - size/2)
	n := int(size)

	x0 := mathutil.IntMax(0, -left)
	x1 := mathutil.IntMin(n, r.opts.Width-left)
	y0 := mathutil.IntMax(0, -top)
	y1 := mathutil.IntMin(n, r.opts.Height-top)

	written := 0
	for x := x0; x < x1; x++ {
		col := left + x
		if col < len(depth) && dist >= depth[col] {
			continue
		}
		u := float64(x) / size
		for y := y0; y < y1; y++ {
			c := texture.SampleClamped(tex, u, float64(y)/size)
			if c.A <= r.opts.AlphaThreshold {
				continue
			}
			sink.SetPixel(col, top+y, c)
			written++
		}
	}
	return written
}
