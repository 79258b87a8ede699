package render

import "image/color"

// Sink receives pixel writes. Implementations must ignore out-of-range
// coordinates.
type Sink interface {
	SetPixel(x, y int, c color.RGBA)
}

// VerticalRunner is an optional Sink capability for filling a column span
// [y0, y1) with one color.
type VerticalRunner interface {
	DrawVerticalRun(x, y0, y1 int, c color.RGBA)
}

// drawRun fills [y0, y1) at column x, using the bulk path when available.
func drawRun(sink Sink, x, y0, y1 int, c color.RGBA) {
	if y0 >= y1 {
		return
	}
	if vr, ok := sink.(VerticalRunner); ok {
		vr.DrawVerticalRun(x, y0, y1, c)
		return
	}
	for y := y0; y < y1; y++ {
		sink.SetPixel(x, y, c)
	}
}
