// Package keytracker turns held-key polling into edge-triggered presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PressedFunc reports whether a key is currently held.
type PressedFunc func(ebiten.Key) bool

// Tracker remembers the previous state of every key it has been asked about.
type Tracker struct {
	pressed PressedFunc
	prev    map[ebiten.Key]bool
}

// New returns a tracker reading the live keyboard.
func New() *Tracker {
	return NewWithSource(ebiten.IsKeyPressed)
}

// NewWithSource returns a tracker reading key state from fn.
func NewWithSource(fn PressedFunc) *Tracker {
	return &Tracker{pressed: fn, prev: make(map[ebiten.Key]bool)}
}

// JustPressed returns true if key was up on the previous query and is down
// now. Each key should be queried once per frame.
func (t *Tracker) JustPressed(key ebiten.Key) bool {
	down := t.pressed(key)
	just := down && !t.prev[key]
	t.prev[key] = down
	return just
}

// AnyJustPressed reports whether any of keys was just pressed. Every key is
// queried so none of them misses its edge.
func (t *Tracker) AnyJustPressed(keys ...ebiten.Key) bool {
	hit := false
	for _, k := range keys {
		if t.JustPressed(k) {
			hit = true
		}
	}
	return hit
}
