package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"raymaze/internal/world"
)

const (
	mouseSensitivity   = 0.002        // radians per pixel
	maxMouseTurn       = math.Pi / 20 // per tick
	mouseDeadZone      = 2
	mouseJumpThreshold = 200
)

// Input is one tick of player intent.
type Input struct {
	Forward, Back           bool
	TurnLeft, TurnRight     bool
	StrafeLeft, StrafeRight bool
	MouseTurn               float64 // radians, already clamped

	Confirm          bool
	Quit             bool
	Menu             bool
	ToggleMap        bool
	ToggleFlashlight bool
}

type mouseState struct {
	lastX       int
	initialized bool
}

// readInput polls the keyboard and mouse.
func (g *Game) readInput() Input {
	in := Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyE),

		Confirm:          g.keys.JustPressed(ebiten.KeyEnter),
		Quit:             g.keys.JustPressed(ebiten.KeyEscape),
		Menu:             g.keys.JustPressed(ebiten.KeyP),
		ToggleMap:        g.keys.JustPressed(ebiten.KeyM),
		ToggleFlashlight: g.keys.JustPressed(ebiten.KeyF),
	}
	x, _ := ebiten.CursorPosition()
	in.MouseTurn = g.mouse.turn(x)
	return in
}

// turn converts horizontal cursor motion into a bounded rotation. Tiny
// jitters and large jumps (cursor re-entering the window) are ignored.
func (m *mouseState) turn(x int) float64 {
	if !m.initialized {
		m.lastX = x
		m.initialized = true
		return 0
	}
	delta := x - m.lastX
	m.lastX = x
	if abs(delta) <= mouseDeadZone || abs(delta) >= mouseJumpThreshold {
		return 0
	}
	return math.Max(-maxMouseTurn, math.Min(maxMouseTurn, float64(delta)*mouseSensitivity))
}

// applyMovement turns and moves the player, sliding along walls.
func (g *Game) applyMovement(in Input, dt float64) {
	turn := in.MouseTurn
	if in.TurnLeft {
		turn -= g.cfg.GetRotationSpeed() * dt
	}
	if in.TurnRight {
		turn += g.cfg.GetRotationSpeed() * dt
	}
	g.pose.Angle = math.Mod(g.pose.Angle+turn, 2*math.Pi)

	var delta world.Vec2
	speed := g.cfg.Camera.MoveSpeed * dt
	fwd, right := g.pose.Forward(), g.pose.Right()
	if in.Forward {
		delta = delta.Add(fwd.Scale(speed))
	}
	if in.Back {
		delta = delta.Add(fwd.Scale(-speed))
	}
	if in.StrafeLeft {
		delta = delta.Add(right.Scale(-speed))
	}
	if in.StrafeRight {
		delta = delta.Add(right.Scale(speed))
	}
	if delta == (world.Vec2{}) {
		return
	}
	g.pose.Pos = world.TryMove(g.level.Grid, g.pose.Pos, delta, g.cfg.Camera.CollisionRadius, g.cfg.GetCellSize())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
