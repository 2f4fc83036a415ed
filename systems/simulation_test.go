package systems_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/components"
	"invaders/config"
	"invaders/data"
	"invaders/systems"
)

func newSimulation(t *testing.T, mutate ...func(*config.Config)) *systems.Simulation {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}
	require.NoError(t, cfg.Validate())
	sim := systems.NewSimulation(cfg, data.NewArchetypeManager())
	t.Cleanup(sim.Close)
	return sim
}

func TestSimulationStageOrder(t *testing.T) {
	arcade := newSimulation(t)
	assert.Equal(t, []string{
		"enemy_spawn", "player_spawn", "input",
		"enemy_motion", "movement",
		"player_fire", "enemy_fire",
		"laser_enemy_collision", "laser_player_collision", "enemy_player_collision",
		"explosion_spawn", "explosion_animation",
	}, arcade.Stages())

	phys := newSimulation(t, func(c *config.Config) { c.Variant = config.VariantPhysics })
	assert.Equal(t, []string{
		"enemy_spawn", "player_spawn", "input",
		"thrust", "gravity", "force_composition", "body_integration",
		"player_fire", "enemy_fire",
		"laser_enemy_collision", "laser_player_collision", "enemy_player_collision",
		"explosion_spawn", "explosion_animation",
	}, phys.Stages())
}

func TestSimulationFirstTick(t *testing.T) {
	sim := newSimulation(t)
	sim.Step(systems.Input{})

	ctx := sim.Context()
	assert.Equal(t, uint64(1), ctx.Clock.Tick)
	assert.True(t, ctx.Player.On)
	assert.Equal(t, 1, ctx.EnemyCount)
	checkInvariants(t, ctx)
}

// randomInput mashes keys and sticks, with fire edges on fresh presses
func randomInput(rng *rand.Rand, prevFire bool) (systems.Input, bool) {
	held := rng.IntN(4) == 0
	in := systems.Input{
		Left:   rng.IntN(3) == 0,
		Right:  rng.IntN(3) == 0,
		Fire:   held && !prevFire,
		Thrust: rng.IntN(2) == 0,
	}
	if rng.IntN(5) == 0 {
		in.StickX = rng.Float64()*2 - 1
		in.StickY = rng.Float64()*2 - 1
	}
	return in, held
}

func TestSimulationInvariantsHold(t *testing.T) {
	for _, variant := range []string{config.VariantArcade, config.VariantPhysics} {
		t.Run(variant, func(t *testing.T) {
			sim := newSimulation(t, func(c *config.Config) {
				c.Variant = variant
				c.EnemyMax = 6
				c.EnemySpawnInterval = 0.25
				c.EnemyFireChance = 0.2
				c.EnemyFireBand = 40
			})
			rng := rand.New(rand.NewPCG(7, 11))
			held := false

			for range 60 * 60 {
				var in systems.Input
				in, held = randomInput(rng, held)
				sim.Step(in)
				checkInvariants(t, sim.Context())
				require.LessOrEqual(t, sim.Context().EnemyCount, 6)
			}
		})
	}
}

func TestSimulationPlayerDiesAndRespawns(t *testing.T) {
	// A fixed enemy straight above the spawn point fires every tick
	sim := newSimulation(t, func(c *config.Config) {
		c.EnemySpawnPolicy = config.SpawnFixed
		c.EnemyWobble = false
		c.EnemyMax = 1
		c.EnemyFireChance = 1
	})
	ctx := sim.Context()

	died := uint64(0)
	for ctx.Clock.Tick < 600 && died == 0 {
		sim.Step(systems.Input{})
		if !ctx.Player.On {
			died = ctx.Clock.Tick
		}
	}
	require.NotZero(t, died, "player should be shot")
	assert.Equal(t, ctx.Now(), ctx.Player.LastShot)
	assert.Equal(t, 1, ctx.World.CountTagged(components.Explosion))

	for ctx.Clock.Tick < died+120 {
		sim.Step(systems.Input{})
		require.False(t, ctx.Player.On, "respawned before the delay at tick %d", ctx.Clock.Tick)
	}
	for ctx.Clock.Tick < died+160 && !ctx.Player.On {
		sim.Step(systems.Input{})
	}
	assert.True(t, ctx.Player.On)

	found := false
	for _, m := range sim.Messages().RecentMessages(20) {
		if m.Text == "Final score: 0" {
			found = true
		}
	}
	assert.True(t, found, "respawn should report the final score")
}

func TestSimulationPlayerScores(t *testing.T) {
	sim := newSimulation(t, func(c *config.Config) {
		c.EnemySpawnPolicy = config.SpawnFixed
		c.EnemyWobble = false
		c.EnemyFireChance = 0
	})
	ctx := sim.Context()

	sim.Step(systems.Input{})
	sim.Step(systems.Input{Fire: true})
	for range 20 {
		sim.Step(systems.Input{})
	}

	assert.Equal(t, 1, sim.Score())
	assert.Equal(t, 0, ctx.EnemyCount)
	assert.Equal(t, 1, ctx.World.CountTagged(components.Laser|components.FromPlayer),
		"one laser of the volley takes the kill, the other two fly on")
}

func TestSimulationIsDeterministic(t *testing.T) {
	play := func() []float64 {
		sim := newSimulation(t, func(c *config.Config) { c.Seed = 42 })
		rng := rand.New(rand.NewPCG(1, 2))
		held := false
		for range 900 {
			var in systems.Input
			in, held = randomInput(rng, held)
			sim.Step(in)
		}
		ctx := sim.Context()
		out := []float64{float64(sim.Score()), float64(ctx.EnemyCount)}
		for _, id := range ctx.World.Query(0, components.Transform) {
			tf := transformOf(ctx, id)
			out = append(out, float64(id), tf.X, tf.Y)
		}
		return out
	}
	assert.Equal(t, play(), play())
}
