package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"invaders/config"
	"invaders/data"
	"invaders/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg         *config.Config
	archetypes  *data.ArchetypeManager
	screenStack *screens.ScreenStack
}

// NewGame creates a new game instance showing the start menu
func NewGame(cfg *config.Config, archetypes *data.ArchetypeManager) *Game {
	g := &Game{
		cfg:         cfg,
		archetypes:  archetypes,
		screenStack: screens.NewScreenStack(),
	}
	g.screenStack.Push(screens.NewStartScreen(cfg))
	return g
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.start(config.VariantArcade)
	case errors.Is(err, screens.ErrPhysicsGame):
		g.start(config.VariantPhysics)
	case errors.Is(err, screens.ErrMenu):
		g.screenStack.Replace(screens.NewStartScreen(g.cfg))
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
	return nil
}

// start replaces the menu with a game of the given variant
func (g *Game) start(variant string) {
	cfg := *g.cfg
	cfg.Variant = variant
	g.screenStack.Replace(screens.NewGameScreen(&cfg, g.archetypes))
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
