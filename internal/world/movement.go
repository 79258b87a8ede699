package world

// TryMove moves from pos by delta, sliding along walls: each axis is applied
// only if the body (a square of the given radius) stays on empty cells.
// It is movement glue for the demo and is never called while rendering.
func TryMove(g *Grid, pos, delta Vec2, radius, cellSize float64) Vec2 {
	next := pos
	if bodyFits(g, Vec2{pos.X + delta.X, pos.Y}, radius, cellSize) {
		next.X += delta.X
	}
	if bodyFits(g, Vec2{next.X, pos.Y + delta.Y}, radius, cellSize) {
		next.Y += delta.Y
	}
	return next
}

func bodyFits(g *Grid, p Vec2, radius, cellSize float64) bool {
	corners := [4]Vec2{
		{p.X - radius, p.Y - radius},
		{p.X + radius, p.Y - radius},
		{p.X - radius, p.Y + radius},
		{p.X + radius, p.Y + radius},
	}
	for _, c := range corners {
		if !g.Walkable(c.X, c.Y, cellSize) {
			return false
		}
	}
	return true
}
