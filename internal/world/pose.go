package world

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Direction returns the unit vector for an angle in radians.
func Direction(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Pose is the viewer state supplied fresh every frame. Renderers only read it.
type Pose struct {
	Pos   Vec2
	Angle float64 // facing, radians
	FOV   float64 // horizontal field of view, radians
}

// Forward returns the unit facing vector.
func (p Pose) Forward() Vec2 {
	return Direction(p.Angle)
}

// Right returns the unit vector pointing to the viewer's right.
func (p Pose) Right() Vec2 {
	return Direction(p.Angle + math.Pi/2)
}

// CellCenter returns the world position of the center of a grid cell.
func CellCenter(row, col int, cellSize float64) Vec2 {
	return Vec2{
		X: float64(col)*cellSize + cellSize/2,
		Y: float64(row)*cellSize + cellSize/2,
	}
}
