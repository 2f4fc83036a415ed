package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders/config"
	"invaders/data"
	"invaders/snapshot"
	"invaders/systems"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	sim         *systems.Simulation
	renderer    *Renderer
	input       *InputDecoder
	overlay     *GameOverScreen
	screenStack *ScreenStack // Modals drawn over the game
}

// NewGameScreen creates a game screen running a fresh simulation
func NewGameScreen(cfg *config.Config, archetypes *data.ArchetypeManager) *GameScreen {
	w, h := config.GetWindowSize(cfg)
	sim := systems.NewSimulation(cfg, archetypes)
	return &GameScreen{
		BaseScreen:  NewBaseScreen(w, h),
		sim:         sim,
		renderer:    NewRenderer(cfg, archetypes),
		input:       NewInputDecoder(),
		overlay:     NewGameOverScreen(w, h, sim),
		screenStack: NewScreenStack(),
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		Toggle(s.screenStack, func() *DebugScreen {
			return NewDebugScreen(s.GetWidth(), s.GetHeight(), s.sim.Messages())
		})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) && s.screenStack.Len() == 0 {
		s.screenStack.Push(NewModalScreen("PAUSED", "P or ESC to resume", 200, 60))
		return nil
	}

	// The simulation is paused while a window is open
	if s.screenStack.Len() > 0 {
		return s.screenStack.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sim.Close()
		return ErrMenu
	}

	s.sim.Step(s.input.Read())
	return nil
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, snapshot.Capture(s.sim.Context()))
	s.renderer.DrawMessages(screen, s.sim.Messages(), 3)
	s.overlay.Draw(screen)

	s.screenStack.Draw(screen)
}

// Simulation returns the running simulation
func (s *GameScreen) Simulation() *systems.Simulation {
	return s.sim
}
