package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders/systems"
)

const logTop = 30

// DebugScreen shows the message log. It follows the newest line until the
// player scrolls back.
type DebugScreen struct {
	window
	messages *systems.MessageLog
	back     int // Lines scrolled back from the newest
}

// NewDebugScreen creates a message log window sized to fit the viewport
func NewDebugScreen(viewW, viewH int, messages *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		window: window{
			title:  "MESSAGE LOG",
			width:  viewW - 40,
			height: viewH / 2,
			fill:   color.RGBA{0, 0, 0, 255},
			ink:    color.White,
			border: 2,
		},
		messages: messages,
	}
}

// Update scrolls with the arrow keys and closes on Escape
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.back = min(s.back+1, max(len(s.messages.Messages)-s.lines(), 0))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.back = max(s.back-1, 0)
	}
	return nil
}

// lines is how many messages fit in the window
func (s *DebugScreen) lines() int {
	return max((s.height-logTop-20)/debugGlyphHeight, 1)
}

// Draw renders the visible slice of the log, oldest at the top
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	x, y := s.window.draw(screen)

	msgs := s.messages.Messages
	end := max(len(msgs)-s.back, 0)
	start := max(end-s.lines(), 0)
	for i, msg := range msgs[start:end] {
		drawText(screen, msg.Text, x+10, y+logTop+i*debugGlyphHeight, msg.Color())
	}

	drawText(screen, "Up/Down: Scroll  ESC: Close", x+10, y+s.height-20, s.ink)
}

// Layout implements the Screen interface
func (s *DebugScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
