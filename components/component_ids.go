package components

import (
	"invaders/ecs"
)

// Define component IDs for our game
const (
	Transform ecs.ComponentID = iota
	Velocity
	Orientation
	Movable
	SpriteSize
	Sprite
	Animation
	Body // Physics variant only
)

// Category tags. An entity may carry several (a player laser is Laser|FromPlayer).
const (
	Player ecs.TagSet = 1 << iota
	Enemy
	Laser
	FromPlayer
	FromEnemy
	Explosion
)
