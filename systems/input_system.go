package systems

import (
	"math"

	"invaders/components"
	"invaders/ecs"
	"invaders/physics"
)

// Radians per second the physics ship turns under digital input
const turnRate = math.Pi

// InputSystem maps decoded input onto the player's velocity and orientation
type InputSystem struct{}

// NewInputSystem creates the input mapper
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Update applies this tick's input to the player, if there is one
func (s *InputSystem) Update(ctx *Context) {
	id, ok := ctx.SinglePlayer()
	if !ok {
		return
	}
	in := ctx.Input

	if orient, ok := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation); ok {
		if stickActive(in, ctx.Config.StickDeadzone) {
			orient.Theta = physics.Heading(in.StickX, in.StickY, ctx.Config.HeadingOffset)
		} else if ctx.Config.Physics() {
			// Digital turning; left is counter-clockwise
			turn := 0.0
			if in.Left {
				turn += turnRate
			}
			if in.Right {
				turn -= turnRate
			}
			orient.Theta = physics.Normalize(orient.Theta + turn*ctx.Clock.DeltaSeconds())
		}
	}

	if vel, ok := ecs.Get[components.VelocityComponent](ctx.World, id, components.Velocity); ok {
		vel.X = digitalAxis(in)
		if vel.X == 0 && stickActive(in, ctx.Config.StickDeadzone) {
			vel.X = in.StickX
		}
	}
}

// digitalAxis returns -1 for left, 1 for right, 0 otherwise. Left wins when both are held.
func digitalAxis(in Input) float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	}
	return 0
}

func stickActive(in Input, deadzone float64) bool {
	return math.Hypot(in.StickX, in.StickY) > deadzone
}
