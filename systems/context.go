package systems

import (
	"log"
	"math"
	"math/rand/v2"
	"time"

	"invaders/components"
	"invaders/config"
	"invaders/data"
	"invaders/ecs"
	"invaders/physics"
	"invaders/spawners"
)

// NeverShot is PlayerState.LastShot before the player has ever died
const NeverShot = -1.0

// PlayerState tracks the single player across deaths
type PlayerState struct {
	On       bool    // A player entity is live
	LastShot float64 // Seconds since start of the last death, NeverShot if none
	Score    int
}

// NewPlayerState returns the state at startup: no player, never shot
func NewPlayerState() PlayerState {
	return PlayerState{On: false, LastShot: NeverShot}
}

// Shot records the player's death at now
func (p *PlayerState) Shot(now float64) {
	p.On = false
	p.LastShot = now
}

// Spawned records a fresh player
func (p *PlayerState) Spawned() {
	p.On = true
	p.LastShot = NeverShot
}

// Input is the decoded input state of one tick
type Input struct {
	Left, Right bool
	Fire        bool // Edge-triggered: true only on the tick the key or trigger went down

	// Analog stick, each axis in [-1, 1]
	StickX, StickY float64

	Thrust bool // Physics variant
}

// Clock is the simulated time of the current tick
type Clock struct {
	Tick    uint64
	Delta   time.Duration // Drives repeating timers, sums to Elapsed without drift
	Dt      float64       // Tick length in seconds, exact
	Elapsed float64       // Seconds since start, at the end of this tick

	rate int
}

// NewClock creates a clock at tick 0 for the configured tick rate
func NewClock(cfg *config.Config) Clock {
	return Clock{Delta: cfg.TickDuration(), Dt: cfg.TickSeconds(), rate: cfg.TickRate}
}

// Advance moves the clock to the next tick
func (c *Clock) Advance() {
	c.Tick++
	c.Elapsed = float64(c.Tick) * c.Dt
	if c.rate > 0 {
		c.Delta = c.at(c.Tick) - c.at(c.Tick-1)
	}
}

// at returns the start of tick n rounded to the nanosecond. Deltas taken
// between consecutive ticks differ by at most 1ns and never accumulate error.
func (c *Clock) at(n uint64) time.Duration {
	return time.Duration(math.Round(float64(n) * float64(time.Second) / float64(c.rate)))
}

// DeltaSeconds returns the tick length in seconds
func (c Clock) DeltaSeconds() float64 {
	return c.Dt
}

// ExplosionRequest asks for an explosion entity at a position
type ExplosionRequest struct {
	X, Y float64
}

// Context is the state every system reads and mutates during a tick
type Context struct {
	World      *ecs.World
	Config     *config.Config
	Archetypes *data.ArchetypeManager
	Spawner    *spawners.EntitySpawner

	Clock      Clock
	Player     PlayerState
	EnemyCount int
	Input      Input

	// Filled by collision, drained by explosion spawning within the same tick
	Explosions []ExplosionRequest

	Forces  *physics.ForceBuffer
	Gravity physics.Gravity
	RNG     *rand.Rand
}

// NewContext creates a context with an empty world
func NewContext(cfg *config.Config, archetypes *data.ArchetypeManager, logFunc func(string)) *Context {
	world := ecs.NewWorld()
	return &Context{
		World:      world,
		Config:     cfg,
		Archetypes: archetypes,
		Spawner:    spawners.NewEntitySpawner(world, cfg, archetypes, logFunc),
		Clock:      NewClock(cfg),
		Player:     NewPlayerState(),
		Forces:     physics.NewForceBuffer(),
		Gravity: physics.Gravity{
			G:          cfg.GravityConstant,
			Multiplier: cfg.GravityMultiplier,
			Softening:  cfg.Softening,
		},
		RNG: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// Now returns the simulated time in seconds
func (ctx *Context) Now() float64 {
	return ctx.Clock.Elapsed
}

// Despawn marks an entity for removal. An enemy decrements EnemyCount
// here and nowhere else, so repeated calls cannot count it twice.
func (ctx *Context) Despawn(id ecs.EntityID) bool {
	tags := ctx.World.Tags(id)
	if !ctx.World.Despawn(id) {
		return false
	}
	if tags.Has(components.Enemy) {
		if ctx.EnemyCount > 0 {
			ctx.EnemyCount--
		} else {
			log.Printf("enemy %d despawned with enemy count already zero", id)
		}
	}
	return true
}

// SpawnEnemy creates an enemy and counts it
func (ctx *Context) SpawnEnemy(x, y float64) *ecs.Entity {
	enemy := ctx.Spawner.CreateEnemy(x, y)
	ctx.EnemyCount++
	return enemy
}

// RequestExplosion queues an explosion at a position
func (ctx *Context) RequestExplosion(x, y float64) {
	ctx.Explosions = append(ctx.Explosions, ExplosionRequest{X: x, Y: y})
}

// SinglePlayer returns the live player. ok is false while the player is
// respawning. More than one player is logged and the lowest ID is used.
func (ctx *Context) SinglePlayer(comps ...ecs.ComponentID) (id ecs.EntityID, ok bool) {
	players := ctx.World.Query(components.Player, comps...)
	if len(players) == 0 {
		return 0, false
	}
	if len(players) > 1 {
		log.Printf("found %d player entities, using %d", len(players), players[0])
	}
	return players[0], true
}

// transform is a shorthand for fetching an entity's transform
func (ctx *Context) transform(id ecs.EntityID) *components.TransformComponent {
	tf, _ := ecs.Get[components.TransformComponent](ctx.World, id, components.Transform)
	return tf
}

// outOfBounds reports whether a position lies beyond the viewport plus the despawn margin
func (ctx *Context) outOfBounds(x, y float64) bool {
	halfW := ctx.Config.Width/2 + ctx.Config.DespawnMargin
	halfH := ctx.Config.Height/2 + ctx.Config.DespawnMargin
	return x > halfW || x < -halfW || y > halfH || y < -halfH
}
