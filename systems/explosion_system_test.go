package systems_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/components"
	"invaders/ecs"
	"invaders/systems"
)

func TestExplosionRequestsBecomeEntities(t *testing.T) {
	ctx := newContext(t)
	ctx.RequestExplosion(1, 2)
	ctx.RequestExplosion(3, 4)

	systems.NewExplosionSpawnSystem().Update(ctx)

	assert.Empty(t, ctx.Explosions)
	ids := ctx.World.Query(components.Explosion, components.Animation, components.Transform)
	require.Len(t, ids, 2)
	first := transformOf(ctx, ids[0])
	assert.Equal(t, 1.0, first.X)
	assert.Equal(t, 2.0, first.Y)
	assert.Equal(t, 1.0, first.Scale)
}

func TestExplosionLifecycle(t *testing.T) {
	ctx := newContext(t)
	id := ctx.Spawner.CreateExplosion(0, 0).ID
	anim, ok := ecs.Get[components.AnimationComponent](ctx.World, id, components.Animation)
	require.True(t, ok)
	assert.Equal(t, 16, anim.Length)
	assert.Equal(t, 50*time.Millisecond, anim.Period)

	sys := systems.NewExplosionAnimationSystem()
	for range 47 {
		run(ctx, sys)
	}
	require.True(t, ctx.World.IsAlive(id))
	assert.Equal(t, 15, anim.Frame)

	run(ctx, sys)
	assert.False(t, ctx.World.IsAlive(id))
	assert.Equal(t, 16, anim.Frame)
	assert.Zero(t, ctx.World.CountTagged(components.Explosion))
}

func TestExplosionFramesNeverExceedLength(t *testing.T) {
	ctx := newContext(t)
	id := ctx.Spawner.CreateExplosion(0, 0).ID
	anim, _ := ecs.Get[components.AnimationComponent](ctx.World, id, components.Animation)

	// One long tick completes many intervals at once
	ctx.Clock.Advance()
	ctx.Clock.Delta = time.Second
	systems.NewExplosionAnimationSystem().Update(ctx)
	ctx.World.Purge()

	assert.Equal(t, anim.Length, anim.Frame)
	assert.False(t, ctx.World.IsAlive(id))
}

func TestClockDeltaSumsToElapsed(t *testing.T) {
	ctx := newContext(t)
	var total time.Duration
	for range 48 {
		ctx.Clock.Advance()
		assert.InDelta(t, float64(time.Second/60), float64(ctx.Clock.Delta), 1)
		total += ctx.Clock.Delta
	}
	assert.Equal(t, 800*time.Millisecond, total)
	assert.InDelta(t, 0.8, ctx.Clock.Elapsed, 1e-12)
}
