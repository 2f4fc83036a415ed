package systems

import (
	"fmt"
	"log"

	"invaders/ecs"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageInfo)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, kind MessageKind) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Kind: kind})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// AddAlert adds an alert message to the log
func (ml *MessageLog) AddAlert(message string) {
	ml.AddColored(message, MessageDeath)
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// MessageSystem turns simulation events into log messages
type MessageSystem struct {
	log  *MessageLog
	subs []ecs.Subscription
}

// NewMessageSystem creates a message system writing to messages
func NewMessageSystem(messages *MessageLog) *MessageSystem {
	return &MessageSystem{log: messages}
}

// Initialize sets up event listeners
func (s *MessageSystem) Initialize(world *ecs.World) {
	if len(s.subs) > 0 {
		return
	}
	em := world.GetEventManager()

	s.subs = append(s.subs,
		em.Subscribe(EventEnemyKilled, func(event ecs.Event) {
			e := event.(EnemyKilledEvent)
			s.log.AddColored(fmt.Sprintf("Enemy destroyed! Score: %d", e.Score), MessageKill)
		}),
		em.Subscribe(EventPlayerShot, func(event ecs.Event) {
			e := event.(PlayerShotEvent)
			if e.Rammed {
				s.log.AddAlert("You collided with an enemy!")
			} else {
				s.log.AddAlert("You were shot down!")
			}
		}),
		em.Subscribe(EventPlayerSpawned, func(event ecs.Event) {
			e := event.(PlayerSpawnedEvent)
			if e.Respawn {
				log.Printf("Final score: %d", e.FinalScore)
				s.log.AddColored(fmt.Sprintf("Final score: %d", e.FinalScore), MessageScore)
			}
			s.log.Add("Player ready")
		}),
	)
}

// Close removes the event listeners
func (s *MessageSystem) Close(world *ecs.World) {
	for _, sub := range s.subs {
		world.GetEventManager().Unsubscribe(sub)
	}
	s.subs = nil
}
