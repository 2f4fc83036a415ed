package systems

import (
	"invaders/config"
)

// Margin kept between a randomly placed enemy and the viewport edge
const enemySpawnMargin = 100

// EnemySpawnSystem adds one enemy per interval while below the cap
type EnemySpawnSystem struct {
	gate IntervalGate
}

// NewEnemySpawnSystem creates the enemy spawner
func NewEnemySpawnSystem(cfg *config.Config) *EnemySpawnSystem {
	return &EnemySpawnSystem{gate: NewIntervalGate(cfg.EnemySpawnInterval, cfg.TickRate)}
}

// Update spawns an enemy if the gate is open and the cap allows it
func (s *EnemySpawnSystem) Update(ctx *Context) {
	if !s.gate.Open(ctx.Clock.Tick) {
		return
	}
	if ctx.EnemyCount >= ctx.Config.EnemyMax {
		return
	}

	x, y := s.position(ctx)
	enemy := ctx.SpawnEnemy(x, y)
	ctx.World.EmitEvent(EnemySpawnedEvent{EntityID: enemy.ID, X: x, Y: y})
}

func (s *EnemySpawnSystem) position(ctx *Context) (float64, float64) {
	if ctx.Config.EnemySpawnPolicy == config.SpawnFixed {
		return 0, 0
	}
	wSpan := max(ctx.Config.Width/2-enemySpawnMargin, 0)
	hSpan := max(ctx.Config.Height/2-enemySpawnMargin, 0)
	x := (ctx.RNG.Float64()*2 - 1) * wSpan
	y := (ctx.RNG.Float64()*2 - 1) * hSpan
	return x, y
}

// PlayerSpawnSystem brings the player back after the respawn delay
type PlayerSpawnSystem struct {
	gate IntervalGate
}

// NewPlayerSpawnSystem creates the player spawner
func NewPlayerSpawnSystem(cfg *config.Config) *PlayerSpawnSystem {
	return &PlayerSpawnSystem{gate: NewIntervalGate(cfg.PlayerSpawnInterval, cfg.TickRate)}
}

// Update spawns the player if the gate is open and the player may respawn
func (s *PlayerSpawnSystem) Update(ctx *Context) {
	if !s.gate.Open(ctx.Clock.Tick) {
		return
	}
	if !CanRespawn(ctx.Player, ctx.Now(), ctx.Config.RespawnDelay) {
		return
	}

	respawn := ctx.Player.LastShot != NeverShot
	finalScore := ctx.Player.Score
	ctx.Player.Score = 0

	x, y := ctx.Spawner.PlayerSpawnPosition()
	player := ctx.Spawner.CreatePlayer(x, y)
	ctx.Player.Spawned()

	ctx.World.EmitEvent(PlayerSpawnedEvent{EntityID: player.ID, FinalScore: finalScore, Respawn: respawn})
}

// CanRespawn reports whether a player may be created at now
func CanRespawn(p PlayerState, now, delay float64) bool {
	if p.On {
		return false
	}
	return p.LastShot == NeverShot || now-p.LastShot > delay
}
