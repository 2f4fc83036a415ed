package systems

import (
	"math"

	"invaders/components"
	"invaders/ecs"
)

// box is an axis-aligned collision box centred on an entity
type box struct {
	x, y   float64
	hw, hh float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (a box) Overlaps(b box) bool {
	return math.Abs(a.x-b.x) < a.hw+b.hw && math.Abs(a.y-b.y) < a.hh+b.hh
}

// boxOf builds the collision box from transform and sprite size
func boxOf(w *ecs.World, id ecs.EntityID) (box, bool) {
	tf, ok := ecs.Get[components.TransformComponent](w, id, components.Transform)
	if !ok {
		return box{}, false
	}
	size, ok := ecs.Get[components.SpriteSizeComponent](w, id, components.SpriteSize)
	if !ok {
		return box{}, false
	}
	hw, hh := size.HalfExtents(tf.Scale)
	return box{x: tf.X, y: tf.Y, hw: hw, hh: hh}, true
}

// LaserEnemyCollisionSystem resolves player lasers hitting enemies
type LaserEnemyCollisionSystem struct{}

// NewLaserEnemyCollisionSystem creates the first collision pass
func NewLaserEnemyCollisionSystem() *LaserEnemyCollisionSystem {
	return &LaserEnemyCollisionSystem{}
}

// Update destroys each overlapping laser and enemy pair once, scoring one
// point and requesting one explosion per kill. An entity removed earlier
// in the pass is skipped for every later pair.
func (s *LaserEnemyCollisionSystem) Update(ctx *Context) {
	w := ctx.World
	lasers := w.Query(components.Laser|components.FromPlayer, components.Transform, components.SpriteSize)
	enemies := w.Query(components.Enemy, components.Transform, components.SpriteSize)

	for _, laserID := range lasers {
		laserBox, _ := boxOf(w, laserID)
		for _, enemyID := range enemies {
			if !w.IsAlive(laserID) {
				break
			}
			if !w.IsAlive(enemyID) {
				continue
			}
			enemyBox, _ := boxOf(w, enemyID)
			if !laserBox.Overlaps(enemyBox) {
				continue
			}

			ctx.Despawn(enemyID)
			ctx.Despawn(laserID)
			ctx.Player.Score++
			ctx.RequestExplosion(enemyBox.x, enemyBox.y)
			w.EmitEvent(EnemyKilledEvent{EnemyID: enemyID, LaserID: laserID, Score: ctx.Player.Score})
		}
	}
}

// LaserPlayerCollisionSystem resolves enemy lasers hitting the player
type LaserPlayerCollisionSystem struct{}

// NewLaserPlayerCollisionSystem creates the second collision pass
func NewLaserPlayerCollisionSystem() *LaserPlayerCollisionSystem {
	return &LaserPlayerCollisionSystem{}
}

// Update kills the player on the first overlapping enemy laser
func (s *LaserPlayerCollisionSystem) Update(ctx *Context) {
	w := ctx.World
	playerID, ok := ctx.SinglePlayer(components.Transform, components.SpriteSize)
	if !ok {
		return
	}
	playerBox, _ := boxOf(w, playerID)

	for _, laserID := range w.Query(components.Laser|components.FromEnemy, components.Transform, components.SpriteSize) {
		laserBox, _ := boxOf(w, laserID)
		if !playerBox.Overlaps(laserBox) {
			continue
		}

		ctx.Despawn(playerID)
		ctx.Player.Shot(ctx.Now())
		ctx.Despawn(laserID)
		ctx.RequestExplosion(playerBox.x, playerBox.y)
		w.EmitEvent(PlayerShotEvent{PlayerID: playerID, KillerID: laserID, Time: ctx.Now()})
		return
	}
}

// EnemyPlayerCollisionSystem resolves enemies ramming the player
type EnemyPlayerCollisionSystem struct{}

// NewEnemyPlayerCollisionSystem creates the third collision pass
func NewEnemyPlayerCollisionSystem() *EnemyPlayerCollisionSystem {
	return &EnemyPlayerCollisionSystem{}
}

// Update destroys the player and the first enemy touching it
func (s *EnemyPlayerCollisionSystem) Update(ctx *Context) {
	w := ctx.World
	playerID, ok := ctx.SinglePlayer(components.Transform, components.SpriteSize)
	if !ok {
		return
	}
	playerBox, _ := boxOf(w, playerID)

	for _, enemyID := range w.Query(components.Enemy, components.Transform, components.SpriteSize) {
		enemyBox, _ := boxOf(w, enemyID)
		if !playerBox.Overlaps(enemyBox) {
			continue
		}

		ctx.Despawn(playerID)
		ctx.Player.Shot(ctx.Now())
		ctx.Despawn(enemyID)
		ctx.RequestExplosion(playerBox.x, playerBox.y)
		ctx.RequestExplosion(enemyBox.x, enemyBox.y)
		w.EmitEvent(PlayerShotEvent{PlayerID: playerID, KillerID: enemyID, Time: ctx.Now(), Rammed: true})
		return
	}
}
