package systems

import (
	"invaders/components"
	"invaders/ecs"
)

// PlayerFireSystem fires a volley on the tick the fire input goes down
type PlayerFireSystem struct{}

// NewPlayerFireSystem creates the player weapon
func NewPlayerFireSystem() *PlayerFireSystem {
	return &PlayerFireSystem{}
}

// Update spawns the player's volley along its heading
func (s *PlayerFireSystem) Update(ctx *Context) {
	if !ctx.Input.Fire {
		return
	}
	id, ok := ctx.SinglePlayer(components.Transform)
	if !ok {
		return
	}
	tf := ctx.transform(id)
	theta := 0.0
	if orient, ok := ecs.Get[components.OrientationComponent](ctx.World, id, components.Orientation); ok {
		theta = orient.Theta
	}

	lasers := ctx.Spawner.CreatePlayerVolley(tf.X, tf.Y, theta)
	ids := make([]ecs.EntityID, len(lasers))
	for i, l := range lasers {
		ids[i] = l.ID
	}
	ctx.World.EmitEvent(PlayerFiredEvent{Lasers: ids})
}

// EnemyFireSystem makes enemies shoot at a player passing beneath them
type EnemyFireSystem struct{}

// NewEnemyFireSystem creates the enemy weapon
func NewEnemyFireSystem() *EnemyFireSystem {
	return &EnemyFireSystem{}
}

// Update rolls the fire chance once per tick; on success every enemy
// horizontally aligned with a player fires one laser downward.
func (s *EnemyFireSystem) Update(ctx *Context) {
	chance := ctx.Config.EnemyFireChance
	if chance <= 0 {
		return
	}
	if chance < 1 && ctx.RNG.Float64() >= chance {
		return
	}

	band := ctx.Config.EnemyFireBand
	players := ctx.World.Query(components.Player, components.Transform)
	for _, enemyID := range ctx.World.Query(components.Enemy, components.Transform) {
		etf := ctx.transform(enemyID)
		for _, playerID := range players {
			px := ctx.transform(playerID).X
			if px >= etf.X-band && px < etf.X+band {
				ctx.Spawner.CreateEnemyLaser(etf.X, etf.Y)
			}
		}
	}
}
