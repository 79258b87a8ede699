// Package sprite holds billboard sprites and draws them over the world view
// using the wall depth buffer for occlusion.
package sprite

import (
	"raymaze/internal/mathutil"
	"raymaze/internal/world"
)

// Animation cycles a sprite through named texture frames.
type Animation struct {
	Frames        []string
	FrameDuration float64 // seconds
	Current       int
	Elapsed       float64 // seconds since the last frame change
}

// Sprite is a camera-facing billboard placed in the world.
type Sprite struct {
	Pos       world.Vec2
	Texture   string
	Scale     float64
	Damaging  bool
	Animation *Animation // nil for static sprites
}

// NewStatic creates a sprite with a fixed texture.
func NewStatic(pos world.Vec2, texture string, scale float64, damaging bool) Sprite {
	return Sprite{Pos: pos, Texture: texture, Scale: scale, Damaging: damaging}
}

// NewAnimated creates a sprite starting on the first of frames.
func NewAnimated(pos world.Vec2, frames []string, frameDuration, scale float64, damaging bool) Sprite {
	s := Sprite{Pos: pos, Scale: scale, Damaging: damaging}
	if len(frames) > 0 {
		s.Texture = frames[0]
		s.Animation = &Animation{
			Frames:        append([]string(nil), frames...),
			FrameDuration: frameDuration,
		}
	}
	return s
}

// FromSpawn builds the sprite a level marker asks for.
func FromSpawn(sp world.SpriteSpawn) Sprite {
	m := sp.Marker
	if len(m.Frames) > 0 {
		return NewAnimated(sp.Pos, m.Frames, m.FrameDuration, m.Scale, m.Damaging)
	}
	return NewStatic(sp.Pos, m.Texture, m.Scale, m.Damaging)
}

// FromSpawns converts every spawn of a level.
func FromSpawns(spawns []world.SpriteSpawn) []Sprite {
	out := make([]Sprite, 0, len(spawns))
	for _, sp := range spawns {
		out = append(out, FromSpawn(sp))
	}
	return out
}

// Update advances the animation by dt seconds. At most one frame is
// advanced per call.
func (s *Sprite) Update(dt float64) {
	a := s.Animation
	if a == nil || len(a.Frames) == 0 {
		return
	}
	a.Elapsed += dt
	if a.Elapsed >= a.FrameDuration {
		a.Current = (a.Current + 1) % len(a.Frames)
		s.Texture = a.Frames[a.Current]
		a.Elapsed = 0
	}
}

// Advance updates every sprite in place.
func Advance(sprites []Sprite, dt float64) {
	for i := range sprites {
		sprites[i].Update(dt)
	}
}

// Touching reports whether pos is within radius of the sprite.
func Touching(s Sprite, pos world.Vec2, radius float64) bool {
	return mathutil.DistanceSquared(s.Pos.X, s.Pos.Y, pos.X, pos.Y) <= radius*radius
}
