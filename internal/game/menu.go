package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	menuBackground = color.RGBA{0, 0, 0, 255}
	menuTitleColor = color.RGBA{255, 220, 0, 255}
	menuTextColor  = color.RGBA{220, 220, 220, 255}
)

const menuTitle = "RAYMAZE"

var menuLines = []string{
	"ENTER  play",
	"ESC    quit",
	"",
	"WASD / arrows  move and turn",
	"Q / E          strafe",
	"mouse          turn",
	"M              toggle map",
	"F              toggle flashlight",
	"P              back to this menu",
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(menuBackground)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 3
	centerX := g.cfg.GetScreenWidth() / 2
	y := g.cfg.GetScreenHeight()/4 + face.Ascent

	titleW := font.MeasureString(face, menuTitle).Round()
	ebitext.Draw(screen, menuTitle, face, centerX-titleW/2, y, menuTitleColor)
	y += 2 * lineHeight

	// key table is left-aligned on its widest line
	widest := 0
	for _, line := range menuLines {
		widest = max(widest, font.MeasureString(face, line).Round())
	}
	x := centerX - widest/2
	for _, line := range menuLines {
		ebitext.Draw(screen, line, face, x, y, menuTextColor)
		y += lineHeight
	}
}
