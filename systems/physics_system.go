package systems

import (
	"invaders/components"
	"invaders/ecs"
	"invaders/physics"
)

// ThrustSystem adds the player's thruster force to the tick's force buffer
type ThrustSystem struct{}

// NewThrustSystem creates the thrust source
func NewThrustSystem() *ThrustSystem {
	return &ThrustSystem{}
}

// Update pushes the player along its heading while thrust is held
func (s *ThrustSystem) Update(ctx *Context) {
	if !ctx.Input.Thrust {
		return
	}
	id, ok := ctx.SinglePlayer(components.Body, components.Orientation)
	if !ok {
		return
	}
	orient, _ := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation)
	ctx.Forces.Add(id, physics.Forward(orient.Theta).Scale(ctx.Config.ThrustForce))
}

// GravitySystem adds pairwise attraction between gravitating bodies
type GravitySystem struct{}

// NewGravitySystem creates the n-body source
func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

// Update accumulates gravity over every unordered pair of bodies
func (s *GravitySystem) Update(ctx *Context) {
	ids := ctx.World.Query(0, components.Body, components.Transform)
	masses := make([]physics.Mass, 0, len(ids))
	for _, id := range ids {
		body, _ := ecs.Get[components.BodyComponent](ctx.World, id, components.Body)
		if !body.Gravitates || body.Mass <= 0 {
			continue
		}
		tf := ctx.transform(id)
		masses = append(masses, physics.Mass{ID: id, X: tf.X, Y: tf.Y, M: body.Mass})
	}
	if len(masses) < 2 {
		return
	}
	ctx.Forces.AddAll(ctx.Gravity.Accumulate(masses))
}

// ForceCompositionSystem writes each body's net force for the tick. It is
// the only writer of Body.FX and Body.FY.
type ForceCompositionSystem struct{}

// NewForceCompositionSystem creates the composition step
func NewForceCompositionSystem() *ForceCompositionSystem {
	return &ForceCompositionSystem{}
}

// Update overwrites every body's force with the buffered sum, then empties the buffer
func (s *ForceCompositionSystem) Update(ctx *Context) {
	for _, id := range ctx.World.Query(0, components.Body) {
		body, _ := ecs.Get[components.BodyComponent](ctx.World, id, components.Body)
		f := ctx.Forces.Net(id)
		if !f.Finite() {
			f = physics.Vec{}
		}
		body.FX, body.FY = f.X, f.Y
	}
	ctx.Forces.Reset()
}

// BodyIntegrationSystem moves bodies under their composed force and impulses
type BodyIntegrationSystem struct{}

// NewBodyIntegrationSystem creates the integrator
func NewBodyIntegrationSystem() *BodyIntegrationSystem {
	return &BodyIntegrationSystem{}
}

// Update integrates each body one tick. Projectiles leaving the field are
// removed; everything else bounces off the viewport edges.
func (s *BodyIntegrationSystem) Update(ctx *Context) {
	dt := ctx.Clock.DeltaSeconds()
	halfW, halfH := ctx.Config.Width/2, ctx.Config.Height/2

	for _, id := range ctx.World.Query(0, components.Body, components.Transform) {
		body, _ := ecs.Get[components.BodyComponent](ctx.World, id, components.Body)
		tf := ctx.transform(id)

		k := physics.Kinetic{
			Pos:     physics.Vec{X: tf.X, Y: tf.Y},
			Vel:     physics.Vec{X: body.VX, Y: body.VY},
			Force:   physics.Vec{X: body.FX, Y: body.FY},
			Impulse: physics.Vec{X: body.ImpulseX, Y: body.ImpulseY},
			Mass:    body.Mass,
		}
		physics.Integrate(&k, dt)

		if orient, ok := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation); ok {
			tf.Rotation = orient.Theta
		}

		mov, movable := ecs.Get[components.MovableComponent](ctx.World, id, components.Movable)
		if movable && mov.AutoDespawn {
			if ctx.outOfBounds(k.Pos.X, k.Pos.Y) {
				ctx.Despawn(id)
			}
		} else {
			physics.ReflectBounds(&k, halfW, halfH)
		}

		tf.X, tf.Y = k.Pos.X, k.Pos.Y
		body.VX, body.VY = k.Vel.X, k.Vel.Y
		body.ImpulseX, body.ImpulseY = 0, 0
	}
}
