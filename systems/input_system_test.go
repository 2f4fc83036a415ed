package systems_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/components"
	"invaders/config"
	"invaders/ecs"
	"invaders/systems"
)

func spawnPlayer(t *testing.T, ctx *systems.Context) ecs.EntityID {
	t.Helper()
	x, y := ctx.Spawner.PlayerSpawnPosition()
	player := ctx.Spawner.CreatePlayer(x, y)
	ctx.Player.Spawned()
	return player.ID
}

func TestInputDigitalAxis(t *testing.T) {
	tests := []struct {
		name  string
		input systems.Input
		want  float64
	}{
		{"idle", systems.Input{}, 0},
		{"left", systems.Input{Left: true}, -1},
		{"right", systems.Input{Right: true}, 1},
		{"both, left wins", systems.Input{Left: true, Right: true}, -1},
		{"stick", systems.Input{StickX: 0.6}, 0.6},
		{"stick inside deadzone", systems.Input{StickX: 0.1}, 0},
		{"key beats stick", systems.Input{Right: true, StickX: -0.8}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t)
			id := spawnPlayer(t, ctx)
			ctx.Input = tt.input

			systems.NewInputSystem().Update(ctx)

			vel, ok := ecs.Get[components.VelocityComponent](ctx.World, id, components.Velocity)
			require.True(t, ok)
			assert.Equal(t, tt.want, vel.X)
			assert.Zero(t, vel.Y)
		})
	}
}

func TestInputStickSetsHeading(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy float64
		want   float64
	}{
		{"up", 0, 1, 0},
		{"left", -1, 0, math.Pi / 2},
		{"down", 0, -1, math.Pi},
		{"right", 1, 0, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t)
			id := spawnPlayer(t, ctx)
			ctx.Input = systems.Input{StickX: tt.sx, StickY: tt.sy}

			systems.NewInputSystem().Update(ctx)

			orient, _ := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation)
			assert.InDelta(t, tt.want, orient.Theta, 1e-9)
		})
	}
}

func TestInputStickReleaseKeepsHeading(t *testing.T) {
	ctx := newContext(t)
	id := spawnPlayer(t, ctx)
	sys := systems.NewInputSystem()

	ctx.Input = systems.Input{StickX: -1}
	sys.Update(ctx)
	ctx.Input = systems.Input{}
	sys.Update(ctx)

	orient, _ := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation)
	assert.InDelta(t, math.Pi/2, orient.Theta, 1e-9)
}

func TestInputPhysicsTurning(t *testing.T) {
	ctx := newContext(t, func(c *config.Config) { c.Variant = config.VariantPhysics })
	id := spawnPlayer(t, ctx)
	ctx.Input = systems.Input{Left: true}

	for range 30 {
		run(ctx, systems.NewInputSystem())
	}

	orient, _ := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation)
	assert.InDelta(t, math.Pi/2, orient.Theta, 1e-9, "half a second at π rad/s")
}

func TestInputWithoutPlayer(t *testing.T) {
	ctx := newContext(t)
	ctx.Input = systems.Input{Left: true, StickX: 1}
	assert.NotPanics(t, func() { systems.NewInputSystem().Update(ctx) })
}
