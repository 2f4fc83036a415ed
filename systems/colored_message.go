package systems

import (
	"image/color"
)

// MessageKind classifies a log line for display
type MessageKind int

const (
	MessageInfo  MessageKind = iota
	MessageKill              // An enemy was destroyed
	MessageDeath             // The player was shot or rammed
	MessageScore             // Final score of a finished life
)

var messageColors = map[MessageKind]color.RGBA{
	MessageInfo:  {200, 200, 200, 255},
	MessageKill:  {255, 100, 100, 255},
	MessageDeath: {255, 255, 0, 255},
	MessageScore: {186, 85, 211, 255},
}

// ColoredMessage is one line of the message log
type ColoredMessage struct {
	Text string
	Kind MessageKind
}

// Color returns the display color for the message kind
func (m ColoredMessage) Color() color.RGBA {
	if c, ok := messageColors[m.Kind]; ok {
		return c
	}
	return messageColors[MessageInfo]
}
