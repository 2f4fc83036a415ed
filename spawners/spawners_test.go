package spawners_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invaders/components"
	"invaders/config"
	"invaders/data"
	"invaders/ecs"
	"invaders/spawners"
)

func newSpawner(t *testing.T, variant string) (*ecs.World, *spawners.EntitySpawner, *[]string) {
	t.Helper()
	cfg := config.Default()
	cfg.Variant = variant
	world := ecs.NewWorld()
	var logged []string
	s := spawners.NewEntitySpawner(world, cfg, data.NewArchetypeManager(), func(m string) { logged = append(logged, m) })
	return world, s, &logged
}

func TestPlayerSpawnPositionIsAboveBottomEdge(t *testing.T) {
	_, s, _ := newSpawner(t, config.VariantArcade)
	x, y := s.PlayerSpawnPosition()
	assert.Equal(t, 0.0, x)
	// -676/2 + 75/2*0.5 + 5
	assert.InDelta(t, -314.25, y, 1e-9)
}

func TestCreatePlayerArcade(t *testing.T) {
	w, s, logged := newSpawner(t, config.VariantArcade)
	p := s.CreatePlayer(0, -300)

	assert.True(t, w.HasTag(p.ID, components.Player))
	mov, ok := ecs.Get[components.MovableComponent](w, p.ID, components.Movable)
	require.True(t, ok)
	assert.False(t, mov.AutoDespawn)
	assert.True(t, w.HasComponent(p.ID, components.Velocity))
	assert.True(t, w.HasComponent(p.ID, components.Orientation))
	assert.False(t, w.HasComponent(p.ID, components.Body))

	tf, _ := ecs.Get[components.TransformComponent](w, p.ID, components.Transform)
	assert.Equal(t, 0.5, tf.Scale)
	assert.Len(t, *logged, 1)
}

func TestCreatePlayerPhysicsHasBody(t *testing.T) {
	w, s, _ := newSpawner(t, config.VariantPhysics)
	p := s.CreatePlayer(0, 0)

	body, ok := ecs.Get[components.BodyComponent](w, p.ID, components.Body)
	require.True(t, ok)
	assert.True(t, body.Gravitates)
	assert.Greater(t, body.Mass, 0.0)
	assert.False(t, w.HasComponent(p.ID, components.Velocity))
}

func TestPlayerVolleyPattern(t *testing.T) {
	w, s, _ := newSpawner(t, config.VariantArcade)
	lasers := s.CreatePlayerVolley(100, 50, 0)
	require.Len(t, lasers, 3)

	lateral := 98.0 / 4 * 0.5
	want := [][2]float64{{100 + lateral, 50}, {100 - lateral, 50}, {100, 70}}
	for i, l := range lasers {
		assert.True(t, w.HasTag(l.ID, components.Laser|components.FromPlayer))
		tf, _ := ecs.Get[components.TransformComponent](w, l.ID, components.Transform)
		assert.InDelta(t, want[i][0], tf.X, 1e-9)
		assert.InDelta(t, want[i][1], tf.Y, 1e-9)

		vel, ok := ecs.Get[components.VelocityComponent](w, l.ID, components.Velocity)
		require.True(t, ok)
		assert.InDelta(t, 0, vel.X, 1e-9)
		assert.InDelta(t, 2, vel.Y, 1e-9)

		mov, _ := ecs.Get[components.MovableComponent](w, l.ID, components.Movable)
		assert.True(t, mov.AutoDespawn)
	}
}

func TestPlayerLaserFollowsHeading(t *testing.T) {
	w, s, _ := newSpawner(t, config.VariantArcade)
	l := s.CreatePlayerLaser(0, 0, math.Pi/2)

	vel, _ := ecs.Get[components.VelocityComponent](w, l.ID, components.Velocity)
	assert.InDelta(t, -2, vel.X, 1e-9, "heading π/2 points left")
	assert.InDelta(t, 0, vel.Y, 1e-9)
}

func TestPlayerLaserPhysicsGetsImpulse(t *testing.T) {
	w, s, _ := newSpawner(t, config.VariantPhysics)
	l := s.CreatePlayerLaser(0, 0, 0)

	body, ok := ecs.Get[components.BodyComponent](w, l.ID, components.Body)
	require.True(t, ok)
	assert.False(t, body.Gravitates)
	// Impulse gives speed 2 * 500 once divided by mass
	assert.InDelta(t, 1000, body.ImpulseY/body.Mass, 1e-9)
	assert.False(t, w.HasComponent(l.ID, components.Velocity))
}

func TestEnemyLaserDropsBelowEnemy(t *testing.T) {
	w, s, _ := newSpawner(t, config.VariantArcade)
	l := s.CreateEnemyLaser(10, 100)

	assert.True(t, w.HasTag(l.ID, components.Laser|components.FromEnemy))
	tf, _ := ecs.Get[components.TransformComponent](w, l.ID, components.Transform)
	assert.Equal(t, 85.0, tf.Y)
	assert.InDelta(t, math.Pi, tf.Rotation, 1e-12)
	vel, _ := ecs.Get[components.VelocityComponent](w, l.ID, components.Velocity)
	assert.Equal(t, -1.5, vel.Y)
}

func TestCreateExplosion(t *testing.T) {
	w, s, _ := newSpawner(t, config.VariantArcade)
	e := s.CreateExplosion(5, 6)

	assert.True(t, w.HasTag(e.ID, components.Explosion))
	anim, ok := ecs.Get[components.AnimationComponent](w, e.ID, components.Animation)
	require.True(t, ok)
	assert.Equal(t, 0, anim.Frame)
	assert.Equal(t, 16, anim.Length)
}
