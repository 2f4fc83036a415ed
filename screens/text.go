package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Glyph size of ebitenutil's debug font
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

var background = color.RGBA{10, 10, 10, 255}

// drawText prints a line of debug text in a color
func drawText(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	w := len(text)*debugGlyphWidth + debugGlyphWidth
	if w <= 0 {
		return
	}
	// Create a new image for this line to draw with the correct color
	lineImg := ebiten.NewImage(w, debugGlyphHeight)
	defer lineImg.Deallocate()
	ebitenutil.DebugPrintAt(lineImg, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(lineImg, op)
}
