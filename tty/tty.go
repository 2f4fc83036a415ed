package tty

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"invaders/config"
	"invaders/data"
	"invaders/snapshot"
	"invaders/systems"
)

// Terminals report key presses but not releases; a held direction stays
// active for this many ticks after its last repeat.
const holdTicks = 8

// Game runs the simulation in a terminal
type Game struct {
	screen tcell.Screen
	sim    *systems.Simulation
	cfg    *config.Config

	width, height int

	leftHeld, rightHeld, thrustHeld int // Remaining ticks
	fire                            bool
}

// NewGame initialises the terminal
func NewGame(cfg *config.Config, archetypes *data.ArchetypeManager) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}

	return newGame(screen, cfg, archetypes)
}

func newGame(screen tcell.Screen, cfg *config.Config, archetypes *data.ArchetypeManager) (*Game, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal screen: %w", err)
	}

	g := &Game{
		screen: screen,
		sim:    systems.NewSimulation(cfg, archetypes),
		cfg:    cfg,
	}
	g.width, g.height = screen.Size()
	return g, nil
}

// Run loops until the player quits
func (g *Game) Run() {
	ticker := time.NewTicker(g.cfg.TickDuration())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(g.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.sim.Step(g.input())
			g.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalised or done
// is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Close restores the terminal
func (g *Game) Close() {
	g.sim.Close()
	g.screen.Fini()
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}

	return true
}

// handleKey records a key press. It returns false when the player quits.
func (g *Game) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.leftHeld, g.rightHeld = holdTicks, 0
	case tcell.KeyRight:
		g.rightHeld, g.leftHeld = holdTicks, 0
	case tcell.KeyUp:
		g.thrustHeld = holdTicks
	case tcell.KeyRune:
		switch r {
		case ' ':
			g.fire = true
		case 'a':
			g.leftHeld, g.rightHeld = holdTicks, 0
		case 'd':
			g.rightHeld, g.leftHeld = holdTicks, 0
		case 'w':
			g.thrustHeld = holdTicks
		case 'q':
			return false
		}
	}
	return true
}

// input builds this tick's input and ages held keys
func (g *Game) input() systems.Input {
	in := systems.Input{
		Left:   g.leftHeld > 0,
		Right:  g.rightHeld > 0,
		Thrust: g.thrustHeld > 0,
		Fire:   g.fire,
	}
	g.fire = false
	g.leftHeld = max(g.leftHeld-1, 0)
	g.rightHeld = max(g.rightHeld-1, 0)
	g.thrustHeld = max(g.thrustHeld-1, 0)
	return in
}

// cell maps world coordinates (origin centre, y up) onto the terminal grid
func (g *Game) cell(x, y float64) (int, int) {
	cx := int((x + g.cfg.Width/2) / g.cfg.Width * float64(g.width))
	cy := int((g.cfg.Height/2 - y) / g.cfg.Height * float64(g.height-1))
	return cx, cy + 1
}

func (g *Game) draw() {
	g.screen.Clear()
	frame := snapshot.Capture(g.sim.Context())

	for _, e := range frame.Entities {
		x, y := g.cell(e.X, e.Y)
		if x < 0 || x >= g.width || y < 1 || y >= g.height {
			continue
		}
		glyph, style := glyphFor(e)
		g.screen.SetContent(x, y, glyph, nil, style)
	}

	status := fmt.Sprintf("Score: %d  Enemies: %d", frame.Score, frame.EnemyCount)
	if !frame.PlayerOn {
		status += "  [respawning]"
	}
	g.drawText(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	if msgs := g.sim.Messages().RecentMessages(1); len(msgs) > 0 {
		g.drawText(len(status)+2, 0, msgs[0].Text, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	g.screen.Show()
}

func (g *Game) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= g.width {
			return
		}
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

// glyphFor picks a character and style for an entity
func glyphFor(e snapshot.EntityState) (rune, tcell.Style) {
	switch {
	case e.Has("Player"):
		return 'A', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	case e.Has("Enemy"):
		return 'W', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case e.Has("FromPlayer"):
		return '|', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case e.Has("FromEnemy"):
		return '!', tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case e.Has("Explosion"):
		if e.Frame < 8 {
			return '*', tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	return '?', tcell.StyleDefault
}
