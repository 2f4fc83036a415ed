package screens

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"invaders/config"
	"invaders/data"
	"invaders/physics"
	"invaders/snapshot"
	"invaders/systems"
)

// Renderer draws simulation frames with flat shapes in place of sprites
type Renderer struct {
	cfg             *config.Config
	colors          map[string]color.RGBA // By sprite handle
	explosionLength int
}

// NewRenderer creates a renderer using archetype colors
func NewRenderer(cfg *config.Config, archetypes *data.ArchetypeManager) *Renderer {
	colors := make(map[string]color.RGBA)
	for _, t := range archetypes.Templates {
		colors[t.Sprite] = data.ParseHexColor(t.Color)
	}
	return &Renderer{
		cfg:             cfg,
		colors:          colors,
		explosionLength: max(archetypes.MustTemplate(data.ExplosionID).Length, 1),
	}
}

// toScreen converts world coordinates (origin centre, y up) to screen pixels
func (r *Renderer) toScreen(x, y float64) (float32, float32) {
	return float32(x + r.cfg.Width/2), float32(r.cfg.Height/2 - y)
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, frame snapshot.Frame) {
	screen.Fill(background)

	// Lower layers first
	for _, layer := range []float64{0, 10, 20} {
		for _, e := range frame.Entities {
			if e.Z == layer {
				r.drawEntity(screen, e)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", frame.Score), 8, 8)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e snapshot.EntityState) {
	clr, ok := r.colors[e.Sprite]
	if !ok {
		clr = color.RGBA{255, 255, 255, 255}
	}
	cx, cy := r.toScreen(e.X, e.Y)

	if e.Has("Explosion") {
		progress := float64(e.Frame) / float64(r.explosionLength)
		radius := float32(4 + 28*math.Sin(math.Pi*min(progress, 1)))
		vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
		return
	}

	w := float32(e.W * e.Scale)
	h := float32(e.H * e.Scale)
	vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, clr, false)

	if e.Has("Player") {
		fwd := physics.Forward(e.Rotation)
		nose := float32(h)
		vector.StrokeLine(screen, cx, cy, cx+float32(fwd.X)*nose, cy-float32(fwd.Y)*nose, 2, color.White, true)
	}
}

// DrawMessages prints the most recent messages in the bottom-left corner
func (r *Renderer) DrawMessages(screen *ebiten.Image, messages *systems.MessageLog, n int) {
	recent := messages.RecentMessages(n)
	y := int(r.cfg.Height) - debugGlyphHeight - 4
	for _, msg := range recent {
		drawText(screen, msg.Text, 8, y, msg.Color())
		y -= debugGlyphHeight
	}
}
