package systems

import (
	"invaders/components"
	"invaders/ecs"
)

// ExplosionSpawnSystem turns queued explosion requests into entities
type ExplosionSpawnSystem struct{}

// NewExplosionSpawnSystem creates the explosion spawner
func NewExplosionSpawnSystem() *ExplosionSpawnSystem {
	return &ExplosionSpawnSystem{}
}

// Update drains the request queue
func (s *ExplosionSpawnSystem) Update(ctx *Context) {
	for _, req := range ctx.Explosions {
		ctx.Spawner.CreateExplosion(req.X, req.Y)
	}
	ctx.Explosions = ctx.Explosions[:0]
}

// ExplosionAnimationSystem advances explosion frames and removes finished ones
type ExplosionAnimationSystem struct{}

// NewExplosionAnimationSystem creates the explosion animator
func NewExplosionAnimationSystem() *ExplosionAnimationSystem {
	return &ExplosionAnimationSystem{}
}

// Update advances each explosion by one frame per completed timer interval
func (s *ExplosionAnimationSystem) Update(ctx *Context) {
	for _, id := range ctx.World.Query(components.Explosion, components.Animation) {
		anim, _ := ecs.Get[components.AnimationComponent](ctx.World, id, components.Animation)
		anim.Frame = min(anim.Frame+anim.Tick(ctx.Clock.Delta), anim.Length)
		if anim.Finished() {
			ctx.Despawn(id)
		}
	}
}
