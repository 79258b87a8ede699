package render

import (
	"raymaze/internal/mathutil"
	"raymaze/internal/world"
)

// Orientation is the direction of a wall face seen from above.
type Orientation int

const (
	// Vertical faces run along the y axis and are textured by hit y.
	Vertical Orientation = iota
	// Horizontal faces run along the x axis and are textured by hit x.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FaceOrientation guesses the orientation of a junction cell from its four
// neighbours: more '|' than '-' neighbours means the junction sits in a
// vertical wall line. Ties resolve to Vertical.
func FaceOrientation(g *world.Grid, row, col int) Orientation {
	var vertical, horizontal int
	for _, n := range [4][2]int{{row - 1, col}, {row + 1, col}, {row, col - 1}, {row, col + 1}} {
		switch g.Cell(n[0], n[1]) {
		case world.VerticalWall:
			vertical++
		case world.HorizontalWall:
			horizontal++
		}
	}
	if horizontal > vertical {
		return Horizontal
	}
	return Vertical
}

// hitOrientation decides which face a hit point lies on. Junctions ask their
// neighbours; everything else picks the axis whose in-cell remainder is
// closest to a cell edge.
func hitOrientation(g *world.Grid, symbol rune, hitX, hitY, cellSize float64) Orientation {
	if symbol == world.Junction {
		if row, col, ok := g.CellAt(hitX, hitY, cellSize); ok {
			return FaceOrientation(g, row, col)
		}
	}
	fx := mathutil.Fract(hitX / cellSize)
	fy := mathutil.Fract(hitY / cellSize)
	if edgeDistance(fx) < edgeDistance(fy) {
		return Vertical
	}
	return Horizontal
}

// textureU returns the horizontal texture coordinate along a face.
func textureU(o Orientation, hitX, hitY, cellSize float64) float64 {
	if o == Vertical {
		return mathutil.Fract(hitY / cellSize)
	}
	return mathutil.Fract(hitX / cellSize)
}

func edgeDistance(f float64) float64 {
	if f > 0.5 {
		return 1 - f
	}
	return f
}
