package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"invaders/components"
	"invaders/ecs"
	"invaders/systems"
)

// EntityState is the render-facing view of one entity
type EntityState struct {
	ID       uint64   `msgpack:"id"`
	Tags     []string `msgpack:"t"`
	Sprite   string   `msgpack:"s,omitempty"`
	X        float64  `msgpack:"x"`
	Y        float64  `msgpack:"y"`
	Z        float64  `msgpack:"z"`
	Scale    float64  `msgpack:"sc"`
	Rotation float64  `msgpack:"r"` // radians
	Frame    int      `msgpack:"f,omitempty"`
	W        float64  `msgpack:"w,omitempty"` // unscaled sprite size
	H        float64  `msgpack:"h,omitempty"`
}

// Frame is the exposed state after one tick
type Frame struct {
	Tick       uint64        `msgpack:"tick"`
	Time       float64       `msgpack:"time"`
	Score      int           `msgpack:"score"`
	EnemyCount int           `msgpack:"enemies"`
	PlayerOn   bool          `msgpack:"on"`
	Entities   []EntityState `msgpack:"e"`
}

// Capture builds a frame from the context. Entities are in ID order.
func Capture(ctx *systems.Context) Frame {
	w := ctx.World
	ids := w.Query(0, components.Transform)

	frame := Frame{
		Tick:       ctx.Clock.Tick,
		Time:       ctx.Now(),
		Score:      ctx.Player.Score,
		EnemyCount: ctx.EnemyCount,
		PlayerOn:   ctx.Player.On,
		Entities:   make([]EntityState, 0, len(ids)),
	}
	for _, id := range ids {
		frame.Entities = append(frame.Entities, captureEntity(w, id))
	}
	return frame
}

func captureEntity(w *ecs.World, id ecs.EntityID) EntityState {
	tf, _ := ecs.Get[components.TransformComponent](w, id, components.Transform)
	es := EntityState{
		ID:       uint64(id),
		Tags:     components.TagNames(w.Tags(id)),
		X:        tf.X,
		Y:        tf.Y,
		Z:        tf.Z,
		Scale:    tf.Scale,
		Rotation: tf.Rotation,
	}
	if sprite, ok := ecs.Get[components.SpriteComponent](w, id, components.Sprite); ok {
		es.Sprite = sprite.Handle
	}
	if anim, ok := ecs.Get[components.AnimationComponent](w, id, components.Animation); ok {
		es.Frame = anim.Frame
	}
	if size, ok := ecs.Get[components.SpriteSizeComponent](w, id, components.SpriteSize); ok {
		es.W, es.H = size.W, size.H
	}
	return es
}

// Has reports whether the entity carries the named tag
func (e EntityState) Has(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Encoder writes frames as a stream of MessagePack values
type Encoder struct {
	enc *msgpack.Encoder
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: msgpack.NewEncoder(w)}
}

// Encode writes one frame
func (e *Encoder) Encode(f Frame) error {
	if err := e.enc.Encode(&f); err != nil {
		return fmt.Errorf("encoding frame %d: %w", f.Tick, err)
	}
	return nil
}

// Decoder reads frames written by Encoder
type Decoder struct {
	dec *msgpack.Decoder
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: msgpack.NewDecoder(r)}
}

// Decode reads the next frame. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode() (Frame, error) {
	var f Frame
	if err := d.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("decoding frame: %w", err)
	}
	return f, nil
}

// Marshal encodes a single frame
func Marshal(f Frame) ([]byte, error) {
	return msgpack.Marshal(&f)
}

// Unmarshal decodes a single frame
func Unmarshal(b []byte, f *Frame) error {
	return msgpack.Unmarshal(b, f)
}
