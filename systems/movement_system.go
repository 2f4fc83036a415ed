package systems

import (
	"math"

	"invaders/components"
	"invaders/ecs"
)

// Wobble parameters of enemy motion
const (
	wobbleRate   = 0.2
	wobbleRadius = 3
)

// MovementSystem advances every movable entity by its velocity
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update moves entities and marks off-screen auto-despawn entities for removal
func (s *MovementSystem) Update(ctx *Context) {
	step := ctx.Clock.DeltaSeconds() * ctx.Config.BaseSpeed

	for _, id := range ctx.World.Query(0, components.Velocity, components.Transform, components.Movable) {
		vel, _ := ecs.Get[components.VelocityComponent](ctx.World, id, components.Velocity)
		tf := ctx.transform(id)
		mov, _ := ecs.Get[components.MovableComponent](ctx.World, id, components.Movable)

		tf.X += vel.X * step
		tf.Y += vel.Y * step

		if orient, ok := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation); ok {
			tf.Rotation = orient.Theta
		}

		if mov.AutoDespawn && ctx.outOfBounds(tf.X, tf.Y) {
			ctx.Despawn(id)
		}
	}
}

// EnemyMotionSystem makes enemies circle slowly around their position
type EnemyMotionSystem struct{}

// NewEnemyMotionSystem creates the enemy wobble
func NewEnemyMotionSystem() *EnemyMotionSystem {
	return &EnemyMotionSystem{}
}

// Update offsets each enemy along a small circle driven by elapsed time
func (s *EnemyMotionSystem) Update(ctx *Context) {
	if !ctx.Config.EnemyWobble {
		return
	}
	angle := math.Mod(-ctx.Config.BaseSpeed*wobbleRate*ctx.Clock.DeltaSeconds()*ctx.Now(), 360)
	dx := math.Sin(angle) * wobbleRadius
	dy := math.Cos(angle) * wobbleRadius

	for _, id := range ctx.World.Query(components.Enemy, components.Transform) {
		tf := ctx.transform(id)
		tf.X += dx
		tf.Y += dy
	}
}
