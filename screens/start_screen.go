package screens

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"invaders/config"
)

// Errors returned by screens to ask the game for a transition
var (
	ErrNewGame     = errors.New("new game")
	ErrPhysicsGame = errors.New("physics game")
	ErrMenu        = errors.New("back to menu")
	ErrQuit        = errors.New("quit")
)

type menuOption struct {
	label  string
	choice error
}

var (
	titleColor    = color.RGBA{255, 230, 150, 255}
	optionColor   = color.RGBA{200, 200, 200, 255}
	selectedColor = color.RGBA{255, 255, 255, 255}
)

const optionSpacing = 30

// StartScreen is the variant menu shown before a game
type StartScreen struct {
	*BaseScreen
	input    *InputDecoder
	options  []menuOption
	selected int
}

// NewStartScreen creates the menu
func NewStartScreen(cfg *config.Config) *StartScreen {
	w, h := config.GetWindowSize(cfg)
	return &StartScreen{
		BaseScreen: NewBaseScreen(w, h),
		input:      NewInputDecoder(),
		options: []menuOption{
			{"Arcade", ErrNewGame},
			{"Gravity well", ErrPhysicsGame},
			{"Quit", ErrQuit},
		},
	}
}

// Update moves the selection and returns the chosen option's transition
func (s *StartScreen) Update() error {
	move, confirm := s.input.Menu()
	n := len(s.options)
	s.selected = (s.selected + move + n) % n

	if confirm {
		return s.options[s.selected].choice
	}
	return nil
}

// Draw renders the title and the options, marking the selected one
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cx, cy := s.GetWidth()/2, s.GetHeight()/2
	drawText(screen, config.WindowTitle, cx-len(config.WindowTitle)*debugGlyphWidth/2, cy/2, titleColor)

	top := cy - len(s.options)*optionSpacing/2
	for i, opt := range s.options {
		label, c := "  "+opt.label, optionColor
		if i == s.selected {
			label, c = "> "+opt.label, selectedColor
		}
		drawText(screen, label, cx-len(label)*debugGlyphWidth/2, top+i*optionSpacing, c)
	}
}
