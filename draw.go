package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dungeonroom/ecs/render"
	"github.com/milk9111/dungeonroom/game"
	"golang.org/x/image/font/basicfont"
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

func drawScene(screen *ebiten.Image, sprites []render.Sprite) {
	for _, s := range sprites {
		switch s.Shape {
		case render.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.W/2), s.Color, true)
		default:
			vector.DrawFilledRect(screen, float32(s.X-s.W/2), float32(s.Y-s.H/2), float32(s.W), float32(s.H), s.Color, false)
		}
	}
}

func drawHUD(screen *ebiten.Image, hud render.HUD) {
	const lineHeight = 16
	for i, line := range hud.Lines() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(24, float64(24+i*lineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, hudFace, op)
	}
}

func drawDebug(screen *ebiten.Image, sim *game.Game) {
	stats := sim.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  t=%dms  shots=%d  hits=%d  (F2: copy snapshot)",
		ebiten.ActualFPS(), sim.Now(), stats.ShotsFired, stats.HitsTaken), 24, screen.Bounds().Dy()-40)
}
