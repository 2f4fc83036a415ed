package systems_test

import (
	"testing"

	"invaders/components"
	"invaders/config"
	"invaders/data"
	"invaders/ecs"
	"invaders/systems"
)

func newContext(t *testing.T, mutate ...func(*config.Config)) *systems.Context {
	t.Helper()
	cfg := config.Default()
	cfg.EnemyWobble = false
	for _, m := range mutate {
		m(cfg)
	}
	return systems.NewContext(cfg, data.NewArchetypeManager(), nil)
}

// run advances the clock once and runs each system, purging after each
func run(ctx *systems.Context, sys ...systems.System) {
	ctx.Clock.Advance()
	for _, s := range sys {
		s.Update(ctx)
		ctx.World.Purge()
	}
}

// place adds an entity with transform and sprite size at (x, y)
func place(ctx *systems.Context, tags ecs.TagSet, x, y, w, h, scale float64) ecs.EntityID {
	e := ctx.World.CreateEntity()
	ctx.World.TagEntity(e.ID, tags)
	ctx.World.AddComponent(e.ID, components.Transform, components.NewTransformComponent(x, y, 0, scale))
	ctx.World.AddComponent(e.ID, components.SpriteSize, &components.SpriteSizeComponent{W: w, H: h})
	if tags.Has(components.Enemy) {
		ctx.EnemyCount++
	}
	return e.ID
}

func transformOf(ctx *systems.Context, id ecs.EntityID) *components.TransformComponent {
	tf, _ := ecs.Get[components.TransformComponent](ctx.World, id, components.Transform)
	return tf
}

// checkInvariants asserts population invariants at a tick boundary
func checkInvariants(t *testing.T, ctx *systems.Context) {
	t.Helper()
	w := ctx.World
	if got := w.CountTagged(components.Enemy); got != ctx.EnemyCount {
		t.Fatalf("tick %d: enemy count %d, live enemies %d", ctx.Clock.Tick, ctx.EnemyCount, got)
	}
	players := w.CountTagged(components.Player)
	if players > 1 {
		t.Fatalf("tick %d: %d players", ctx.Clock.Tick, players)
	}
	if ctx.Player.On != (players == 1) {
		t.Fatalf("tick %d: player on=%v with %d player entities", ctx.Clock.Tick, ctx.Player.On, players)
	}
	if len(ctx.Explosions) != 0 {
		t.Fatalf("tick %d: %d explosion requests outlived the tick", ctx.Clock.Tick, len(ctx.Explosions))
	}
	if w.PendingCount() != 0 {
		t.Fatalf("tick %d: %d entities pending after the tick", ctx.Clock.Tick, w.PendingCount())
	}
}
