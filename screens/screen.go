package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrCloseScreen is returned by a screen that wants to be popped
var ErrCloseScreen = errors.New("close screen")

// Screen is one layer of the window frontend
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack layers screens. Only the top screen is updated; every
// screen is drawn, bottom first, so overlays sit over the game.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates an empty stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

// Push puts a screen on top
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the top screen, or nil when empty
func (s *ScreenStack) Pop() Screen {
	top := s.Peek()
	if top != nil {
		s.screens = s.screens[:len(s.screens)-1]
	}
	return top
}

// Peek returns the top screen, or nil when empty
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens on the stack
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Replace swaps the whole stack for a single screen
func (s *ScreenStack) Replace(screen Screen) {
	clear(s.screens)
	s.screens = append(s.screens[:0], screen)
}

// Update runs the top screen. ErrCloseScreen pops it and is not passed on;
// any other error is returned to the caller.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	err := top.Update()
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Toggle pops the top screen if it has the same concrete type as the one
// open would build, and pushes a new one otherwise.
func Toggle[T Screen](s *ScreenStack, open func() T) {
	if _, isOpen := s.Peek().(T); isOpen {
		s.Pop()
		return
	}
	s.Push(open())
}

// Draw draws every screen from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout asks the top screen for the logical size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
