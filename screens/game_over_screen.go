package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"invaders/systems"
)

// GameOverScreen is drawn over the game while the player waits to respawn
type GameOverScreen struct {
	*BaseScreen
	sim *systems.Simulation
}

// NewGameOverScreen creates the respawn overlay
func NewGameOverScreen(width, height int, sim *systems.Simulation) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(width, height),
		sim:        sim,
	}
}

// Draw shows the last score and the respawn countdown
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	ctx := s.sim.Context()
	if ctx.Player.On || ctx.Player.LastShot == systems.NeverShot {
		return
	}
	remaining := max(ctx.Player.LastShot+ctx.Config.RespawnDelay-ctx.Now(), 0)
	text := fmt.Sprintf("Destroyed! Score %d\n\nRespawning in %.1fs", ctx.Player.Score, remaining)
	ebitenutil.DebugPrintAt(screen, text, s.GetWidth()/2-60, s.GetHeight()/2-20)
}
