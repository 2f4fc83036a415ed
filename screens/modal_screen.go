package screens

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// window is a bordered box centred on the screen with a title line
type window struct {
	title         string
	width, height int
	fill, ink     color.Color
	border        float32
}

// draw paints the box and title and returns the box's top-left corner
func (w window) draw(screen *ebiten.Image) (x, y int) {
	bounds := screen.Bounds()
	x = (bounds.Dx() - w.width) / 2
	y = (bounds.Dy() - w.height) / 2

	fx, fy, fw, fh := float32(x), float32(y), float32(w.width), float32(w.height)
	vector.DrawFilledRect(screen, fx, fy, fw, fh, w.fill, false)
	vector.StrokeRect(screen, fx, fy, fw, fh, w.border, w.ink, false)
	drawText(screen, w.title, x+(w.width-len(w.title)*debugGlyphWidth)/2, y+4, w.ink)
	return x, y
}

// ModalScreen is a message box drawn over the game; the game is paused
// while it is open
type ModalScreen struct {
	window
	lines     []string
	closeKeys []ebiten.Key
}

// NewModalScreen creates a modal that closes on P or Escape
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		window: window{
			title:  title,
			width:  width,
			height: height,
			fill:   color.RGBA{0, 0, 0, 200},
			ink:    color.White,
			border: 1,
		},
		lines:     strings.Split(content, "\n"),
		closeKeys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
	}
}

// Update closes the modal when one of its keys is pressed
func (s *ModalScreen) Update() error {
	for _, k := range s.closeKeys {
		if inpututil.IsKeyJustPressed(k) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	x, y := s.window.draw(screen)
	for i, line := range s.lines {
		drawText(screen, line, x+10, y+10+(i+1)*debugGlyphHeight, s.ink)
	}
}

// Layout implements the Screen interface
func (s *ModalScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
