package render

import "image/color"

// Framebuffer is a packed RGBA8 pixel buffer laid out like image.RGBA.Pix,
// so it can be handed directly to ebiten.Image.WritePixels.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates an opaque black framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
	fb.Clear()
	return fb
}

// SetPixel writes one pixel. Out-of-range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
}

// DrawVerticalRun fills rows [y0, y1) of column x, clipped to the buffer.
func (fb *Framebuffer) DrawVerticalRun(x, y0, y1 int, c color.RGBA) {
	if x < 0 || x >= fb.Width {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > fb.Height {
		y1 = fb.Height
	}
	stride := fb.Width * 4
	for i := (y0*fb.Width + x) * 4; y0 < y1; y0, i = y0+1, i+stride {
		fb.Pix[i] = c.R
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.B
		fb.Pix[i+3] = c.A
	}
}

// At returns the pixel at (x, y), or transparent black outside the buffer.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.RGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.RGBA{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c color.RGBA) {
	for i := 0; i+3 < len(fb.Pix); i += 4 {
		fb.Pix[i] = c.R
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.B
		fb.Pix[i+3] = c.A
	}
}

// Clear resets the buffer to opaque black.
func (fb *Framebuffer) Clear() {
	fb.Fill(color.RGBA{0, 0, 0, 255})
}

// fillRect fills a clipped rectangle on any sink.
func fillRect(sink Sink, x, y, w, h int, c color.RGBA) {
	for cx := x; cx < x+w; cx++ {
		drawRun(sink, cx, y, y+h, c)
	}
}
