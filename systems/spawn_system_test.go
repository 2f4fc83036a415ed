package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/components"
	"invaders/config"
	"invaders/ecs"
	"invaders/systems"
)

func TestIntervalGate(t *testing.T) {
	g := systems.NewIntervalGate(0.5, 60)
	assert.Equal(t, uint64(30), g.Every())
	assert.False(t, g.Open(0))
	assert.True(t, g.Open(1))
	assert.False(t, g.Open(30))
	assert.True(t, g.Open(31))
	assert.True(t, g.Open(151))

	assert.Equal(t, uint64(1), systems.NewIntervalGate(0, 60).Every(), "a zero interval opens every tick")
}

func TestCanRespawn(t *testing.T) {
	fresh := systems.NewPlayerState()
	assert.True(t, systems.CanRespawn(fresh, 0, 2))

	alive := fresh
	alive.Spawned()
	assert.False(t, systems.CanRespawn(alive, 100, 2))

	dead := fresh
	dead.Shot(1.0)
	assert.False(t, systems.CanRespawn(dead, 1.5, 2))
	assert.False(t, systems.CanRespawn(dead, 3.0, 2), "exactly the delay is still too early")
	assert.True(t, systems.CanRespawn(dead, 3.01, 2))
}

func TestPlayerSpawnsOnFirstTick(t *testing.T) {
	ctx := newContext(t)
	sys := systems.NewPlayerSpawnSystem(ctx.Config)

	var events []systems.PlayerSpawnedEvent
	ctx.World.GetEventManager().Subscribe(systems.EventPlayerSpawned, func(e ecs.Event) {
		events = append(events, e.(systems.PlayerSpawnedEvent))
	})

	run(ctx, sys)

	assert.True(t, ctx.Player.On)
	assert.Equal(t, systems.NeverShot, ctx.Player.LastShot)
	id, ok := ctx.SinglePlayer()
	require.True(t, ok)
	tf := transformOf(ctx, id)
	assert.InDelta(t, 0, tf.X, 1e-9)
	assert.InDelta(t, -314.25, tf.Y, 1e-9)
	require.Len(t, events, 1)
	assert.False(t, events[0].Respawn)
}

func TestPlayerRespawnWaitsForDelay(t *testing.T) {
	ctx := newContext(t)
	sys := systems.NewPlayerSpawnSystem(ctx.Config)
	run(ctx, sys)
	id, ok := ctx.SinglePlayer()
	require.True(t, ok)

	for ctx.Clock.Tick < 29 {
		run(ctx, sys)
	}
	// Shot on tick 30, at 0.5s
	run(ctx)
	ctx.Despawn(id)
	ctx.Player.Shot(ctx.Now())
	ctx.Player.Score = 7
	ctx.World.Purge()

	for ctx.Clock.Tick < 150 {
		run(ctx, sys)
		require.False(t, ctx.Player.On, "respawned early at tick %d", ctx.Clock.Tick)
	}

	var events []systems.PlayerSpawnedEvent
	ctx.World.GetEventManager().Subscribe(systems.EventPlayerSpawned, func(e ecs.Event) {
		events = append(events, e.(systems.PlayerSpawnedEvent))
	})
	run(ctx, sys)

	assert.Equal(t, uint64(151), ctx.Clock.Tick)
	assert.True(t, ctx.Player.On)
	assert.Equal(t, 0, ctx.Player.Score)
	assert.Equal(t, 1, ctx.World.CountTagged(components.Player))
	require.Len(t, events, 1)
	assert.True(t, events[0].Respawn)
	assert.Equal(t, 7, events[0].FinalScore)
}

func TestEnemySpawnRespectsCap(t *testing.T) {
	ctx := newContext(t, func(c *config.Config) { c.EnemyMax = 2 })
	sys := systems.NewEnemySpawnSystem(ctx.Config)

	for range 300 {
		run(ctx, sys)
		require.LessOrEqual(t, ctx.EnemyCount, 2)
	}
	assert.Equal(t, 2, ctx.EnemyCount)
	assert.Equal(t, 2, ctx.World.CountTagged(components.Enemy))
}

func TestEnemySpawnCadence(t *testing.T) {
	ctx := newContext(t, func(c *config.Config) { c.EnemyMax = 10 })
	sys := systems.NewEnemySpawnSystem(ctx.Config)

	run(ctx, sys)
	assert.Equal(t, 1, ctx.EnemyCount, "first enemy appears on tick 1")
	for ctx.Clock.Tick < 60 {
		run(ctx, sys)
	}
	assert.Equal(t, 1, ctx.EnemyCount)
	run(ctx, sys)
	assert.Equal(t, 2, ctx.EnemyCount)
}

func TestEnemySpawnPlacement(t *testing.T) {
	fixed := newContext(t, func(c *config.Config) { c.EnemySpawnPolicy = config.SpawnFixed })
	run(fixed, systems.NewEnemySpawnSystem(fixed.Config))
	enemies := fixed.World.Query(components.Enemy)
	require.Len(t, enemies, 1)
	tf := transformOf(fixed, enemies[0])
	assert.Zero(t, tf.X)
	assert.Zero(t, tf.Y)

	random := newContext(t, func(c *config.Config) { c.EnemyMax = 50; c.EnemySpawnInterval = 0 })
	sys := systems.NewEnemySpawnSystem(random.Config)
	for range 50 {
		run(random, sys)
	}
	for _, id := range random.World.Query(components.Enemy) {
		tf := transformOf(random, id)
		assert.LessOrEqual(t, tf.X, 598.0/2-100)
		assert.GreaterOrEqual(t, tf.X, -(598.0/2 - 100))
		assert.LessOrEqual(t, tf.Y, 676.0/2-100)
		assert.GreaterOrEqual(t, tf.Y, -(676.0/2 - 100))
	}
}

func TestDoubleDespawnCountsEnemyOnce(t *testing.T) {
	ctx := newContext(t)
	a := ctx.SpawnEnemy(0, 0)
	ctx.SpawnEnemy(50, 50)
	require.Equal(t, 2, ctx.EnemyCount)

	assert.True(t, ctx.Despawn(a.ID))
	assert.False(t, ctx.Despawn(a.ID))
	ctx.World.Purge()
	assert.False(t, ctx.Despawn(a.ID))

	assert.Equal(t, 1, ctx.EnemyCount)
}

func TestEnemyCountNeverNegative(t *testing.T) {
	ctx := newContext(t)
	e := ctx.World.CreateEntity()
	ctx.World.TagEntity(e.ID, components.Enemy)

	ctx.Despawn(e.ID)
	assert.Equal(t, 0, ctx.EnemyCount)
}
