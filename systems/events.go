package systems

import (
	"invaders/ecs"
)

// Event type constants
const (
	EventEnemySpawned  ecs.EventType = "enemy_spawned"
	EventEnemyKilled   ecs.EventType = "enemy_killed"
	EventPlayerSpawned ecs.EventType = "player_spawned"
	EventPlayerShot    ecs.EventType = "player_shot"
	EventPlayerFired   ecs.EventType = "player_fired"
)

// EnemySpawnedEvent is emitted when an enemy enters the field
type EnemySpawnedEvent struct {
	EntityID ecs.EntityID
	X, Y     float64
}

// Type returns the event type
func (e EnemySpawnedEvent) Type() ecs.EventType {
	return EventEnemySpawned
}

// EnemyKilledEvent is emitted when a player laser destroys an enemy
type EnemyKilledEvent struct {
	EnemyID ecs.EntityID
	LaserID ecs.EntityID
	Score   int // Score after the kill
}

// Type returns the event type
func (e EnemyKilledEvent) Type() ecs.EventType {
	return EventEnemyKilled
}

// PlayerSpawnedEvent is emitted when the player (re)spawns
type PlayerSpawnedEvent struct {
	EntityID   ecs.EntityID
	FinalScore int  // Score of the previous life
	Respawn    bool // False for the very first spawn
}

// Type returns the event type
func (e PlayerSpawnedEvent) Type() ecs.EventType {
	return EventPlayerSpawned
}

// PlayerShotEvent is emitted when the player dies
type PlayerShotEvent struct {
	PlayerID ecs.EntityID
	KillerID ecs.EntityID // Enemy laser or enemy
	Time     float64
	Rammed   bool // Killed by colliding with an enemy
}

// Type returns the event type
func (e PlayerShotEvent) Type() ecs.EventType {
	return EventPlayerShot
}

// PlayerFiredEvent is emitted for every player volley
type PlayerFiredEvent struct {
	Lasers []ecs.EntityID
}

// Type returns the event type
func (e PlayerFiredEvent) Type() ecs.EventType {
	return EventPlayerFired
}
