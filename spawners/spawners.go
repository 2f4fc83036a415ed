package spawners

import (
	"fmt"
	"math"

	"invaders/components"
	"invaders/config"
	"invaders/data"
	"invaders/ecs"
	"invaders/physics"
)

// Render layers
const (
	LayerLaser     = 0
	LayerShip      = 10
	LayerExplosion = 20
)

// Vertical distance between the player and the bottom edge
const playerBottomGap = 5

// Forward offset of the centre laser of the player's volley
const volleyLead = 20

// Offset below an enemy at which its laser appears
const enemyLaserDrop = 15

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world           *ecs.World
	cfg             *config.Config
	templateManager *data.ArchetypeManager
	logMessage      func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, cfg *config.Config, templateManager *data.ArchetypeManager, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:           world,
		cfg:             cfg,
		templateManager: templateManager,
		logMessage:      logFunc,
	}
}

// PlayerSpawnPosition returns the fixed bottom-of-screen spawn point
func (s *EntitySpawner) PlayerSpawnPosition() (x, y float64) {
	t := s.templateManager.MustTemplate(data.PlayerID)
	bottom := -s.cfg.Height / 2
	return 0, bottom + t.Height/2*s.cfg.SpriteScale + playerBottomGap
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(x, y float64) *ecs.Entity {
	t := s.templateManager.MustTemplate(data.PlayerID)
	player := s.base(t, x, y, LayerShip, s.cfg.SpriteScale)

	s.world.AddComponent(player.ID, components.Orientation, &components.OrientationComponent{})
	s.world.AddComponent(player.ID, components.Movable, &components.MovableComponent{AutoDespawn: false})
	if s.cfg.Physics() {
		s.world.AddComponent(player.ID, components.Body, &components.BodyComponent{
			Mass:       t.Mass,
			Gravitates: true,
		})
	} else {
		s.world.AddComponent(player.ID, components.Velocity, &components.VelocityComponent{})
	}

	s.log(fmt.Sprintf("Player created at %.1f,%.1f", x, y))
	return player
}

// CreateEnemy creates an enemy entity at the given position
func (s *EntitySpawner) CreateEnemy(x, y float64) *ecs.Entity {
	t := s.templateManager.MustTemplate(data.EnemyID)
	enemy := s.base(t, x, y, LayerShip, s.cfg.SpriteScale)

	if s.cfg.Physics() {
		s.world.AddComponent(enemy.ID, components.Body, &components.BodyComponent{
			Mass:       t.Mass,
			Gravitates: true,
		})
	}
	return enemy
}

// CreatePlayerLaser creates one player laser heading along theta
func (s *EntitySpawner) CreatePlayerLaser(x, y, theta float64) *ecs.Entity {
	t := s.templateManager.MustTemplate(data.PlayerLaserID)
	laser := s.base(t, x, y, LayerLaser, s.cfg.SpriteScale)

	tf, _ := ecs.Get[components.TransformComponent](s.world, laser.ID, components.Transform)
	tf.Rotation = theta
	s.world.AddComponent(laser.ID, components.Orientation, &components.OrientationComponent{Theta: theta})
	s.world.AddComponent(laser.ID, components.Movable, &components.MovableComponent{AutoDespawn: true})

	dir := physics.Forward(theta).Scale(s.cfg.PlayerLaserSpeed)
	s.launch(laser.ID, t, dir)
	return laser
}

// CreatePlayerVolley creates the player's three-laser volley: two lasers
// beside the ship and one ahead of it
func (s *EntitySpawner) CreatePlayerVolley(x, y, theta float64) []*ecs.Entity {
	player := s.templateManager.MustTemplate(data.PlayerID)
	lateral := player.Width / 4 * s.cfg.SpriteScale

	fwd := physics.Forward(theta)
	side := physics.Vec{X: fwd.Y, Y: -fwd.X}

	offsets := []physics.Vec{
		side.Scale(lateral),
		side.Scale(-lateral),
		fwd.Scale(volleyLead),
	}
	lasers := make([]*ecs.Entity, 0, len(offsets))
	for _, o := range offsets {
		lasers = append(lasers, s.CreatePlayerLaser(x+o.X, y+o.Y, theta))
	}
	return lasers
}

// CreateEnemyLaser creates a downward laser just below an enemy
func (s *EntitySpawner) CreateEnemyLaser(x, y float64) *ecs.Entity {
	t := s.templateManager.MustTemplate(data.EnemyLaserID)
	laser := s.base(t, x, y-enemyLaserDrop, LayerLaser, s.cfg.SpriteScale)

	tf, _ := ecs.Get[components.TransformComponent](s.world, laser.ID, components.Transform)
	tf.Rotation = math.Pi
	s.world.AddComponent(laser.ID, components.Orientation, &components.OrientationComponent{Theta: math.Pi})
	s.world.AddComponent(laser.ID, components.Movable, &components.MovableComponent{AutoDespawn: true})

	s.launch(laser.ID, t, physics.Vec{X: 0, Y: -s.cfg.EnemyLaserSpeed})
	return laser
}

// CreateExplosion creates an animated explosion at the given position
func (s *EntitySpawner) CreateExplosion(x, y float64) *ecs.Entity {
	t := s.templateManager.MustTemplate(data.ExplosionID)
	explosion := s.base(t, x, y, LayerExplosion, 1)

	s.world.AddComponent(explosion.ID, components.Animation,
		components.NewAnimationComponent(t.Length, s.cfg.ExplosionPeriod))
	return explosion
}

// base creates the entity with transform, sprite, size and template tags
func (s *EntitySpawner) base(t *data.ArchetypeTemplate, x, y, z, scale float64) *ecs.Entity {
	entity := s.world.CreateEntity()

	tags, err := t.TagSet()
	if err != nil {
		// Templates are validated on load; built-ins are static
		panic(err)
	}
	s.world.TagEntity(entity.ID, tags)

	s.world.AddComponent(entity.ID, components.Transform, components.NewTransformComponent(x, y, z, scale))
	s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{Handle: t.Sprite})
	if t.Width > 0 || t.Height > 0 {
		s.world.AddComponent(entity.ID, components.SpriteSize, &components.SpriteSizeComponent{W: t.Width, H: t.Height})
	}
	return entity
}

// launch sets a projectile moving along dir (direction units). Arcade
// lasers get a Velocity; in the physics variant they get a Body and an
// impulse giving the same initial speed.
func (s *EntitySpawner) launch(id ecs.EntityID, t *data.ArchetypeTemplate, dir physics.Vec) {
	if !s.cfg.Physics() {
		s.world.AddComponent(id, components.Velocity, &components.VelocityComponent{X: dir.X, Y: dir.Y})
		return
	}
	body := &components.BodyComponent{Mass: t.Mass}
	j := dir.Scale(s.cfg.BaseSpeed * t.Mass)
	if t.Mass <= 0 {
		body.VX, body.VY = dir.X*s.cfg.BaseSpeed, dir.Y*s.cfg.BaseSpeed
	} else {
		body.ApplyImpulse(j.X, j.Y)
	}
	s.world.AddComponent(id, components.Body, body)
}

func (s *EntitySpawner) log(msg string) {
	if s.logMessage != nil {
		s.logMessage(msg)
	}
}
