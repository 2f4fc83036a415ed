package systems

import (
	"invaders/config"
	"invaders/data"
)

// System is one step of the per-tick pipeline
type System interface {
	Update(ctx *Context)
}

type stage struct {
	name   string
	system System
}

// Simulation runs the systems in a fixed order once per tick
type Simulation struct {
	ctx      *Context
	stages   []stage
	messages *MessageLog
	msgSys   *MessageSystem
}

// NewSimulation builds the pipeline for the configured variant
func NewSimulation(cfg *config.Config, archetypes *data.ArchetypeManager) *Simulation {
	messages := NewMessageLog()
	ctx := NewContext(cfg, archetypes, messages.Add)

	sim := &Simulation{
		ctx:      ctx,
		messages: messages,
		msgSys:   NewMessageSystem(messages),
	}
	sim.msgSys.Initialize(ctx.World)

	sim.add("enemy_spawn", NewEnemySpawnSystem(cfg))
	sim.add("player_spawn", NewPlayerSpawnSystem(cfg))
	sim.add("input", NewInputSystem())
	if cfg.Physics() {
		sim.add("thrust", NewThrustSystem())
		sim.add("gravity", NewGravitySystem())
		sim.add("force_composition", NewForceCompositionSystem())
		sim.add("body_integration", NewBodyIntegrationSystem())
	} else {
		sim.add("enemy_motion", NewEnemyMotionSystem())
		sim.add("movement", NewMovementSystem())
	}
	sim.add("player_fire", NewPlayerFireSystem())
	sim.add("enemy_fire", NewEnemyFireSystem())
	sim.add("laser_enemy_collision", NewLaserEnemyCollisionSystem())
	sim.add("laser_player_collision", NewLaserPlayerCollisionSystem())
	sim.add("enemy_player_collision", NewEnemyPlayerCollisionSystem())
	sim.add("explosion_spawn", NewExplosionSpawnSystem())
	sim.add("explosion_animation", NewExplosionAnimationSystem())

	return sim
}

func (s *Simulation) add(name string, system System) {
	s.stages = append(s.stages, stage{name: name, system: system})
}

// Step advances the simulation by one fixed tick. Entities removed by a
// system are purged before the next system runs.
func (s *Simulation) Step(input Input) {
	ctx := s.ctx
	ctx.Clock.Advance()
	ctx.Input = input

	for _, st := range s.stages {
		st.system.Update(ctx)
		ctx.World.Purge()
	}
}

// Context exposes the simulation state
func (s *Simulation) Context() *Context {
	return s.ctx
}

// Messages returns the message log
func (s *Simulation) Messages() *MessageLog {
	return s.messages
}

// Stages returns the system names in execution order
func (s *Simulation) Stages() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.name
	}
	return names
}

// Score returns the current score
func (s *Simulation) Score() int {
	return s.ctx.Player.Score
}

// Close releases event subscriptions
func (s *Simulation) Close() {
	s.msgSys.Close(s.ctx.World)
}
