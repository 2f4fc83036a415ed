package headless

import (
	"fmt"
	"io"
	"math"

	"invaders/components"
	"invaders/ecs"
	"invaders/snapshot"
	"invaders/systems"
)

// Pilot produces the input for the next tick
type Pilot interface {
	Input(ctx *systems.Context) systems.Input
}

// Autopilot steers the player under the nearest enemy and fires periodically
type Autopilot struct {
	FireEvery uint64 // Ticks between volleys, 0 never fires
}

// Input implements Pilot
func (a Autopilot) Input(ctx *systems.Context) systems.Input {
	var in systems.Input
	if a.FireEvery > 0 && ctx.Clock.Tick%a.FireEvery == 0 {
		in.Fire = true
	}

	playerID, ok := ctx.SinglePlayer(components.Transform)
	if !ok {
		return in
	}
	ptf, _ := ecs.Get[components.TransformComponent](ctx.World, playerID, components.Transform)

	best := math.Inf(1)
	target := ptf.X
	for _, id := range ctx.World.Query(components.Enemy, components.Transform) {
		etf, _ := ecs.Get[components.TransformComponent](ctx.World, id, components.Transform)
		if d := math.Abs(etf.X - ptf.X); d < best {
			best, target = d, etf.X
		}
	}

	switch dx := target - ptf.X; {
	case dx < -2:
		in.Left = true
	case dx > 2:
		in.Right = true
	}
	return in
}

// Options controls a headless run
type Options struct {
	Ticks int
	Pilot Pilot
	// Frames are written to Out every Stride ticks; nil Out writes nothing.
	// An Out with a Flush method is flushed before Run returns.
	Out    io.Writer
	Stride int
}

// Summary reports what happened during a run
type Summary struct {
	Ticks      int
	Frames     int
	FinalScore int
	Kills      int
	Deaths     int
	MaxEnemies int
}

// Run steps the simulation without a display
func Run(sim *systems.Simulation, opts Options) (Summary, error) {
	var sum Summary
	ctx := sim.Context()
	em := ctx.World.GetEventManager()

	killSub := em.Subscribe(systems.EventEnemyKilled, func(ecs.Event) { sum.Kills++ })
	deathSub := em.Subscribe(systems.EventPlayerShot, func(ecs.Event) { sum.Deaths++ })
	defer em.Unsubscribe(killSub)
	defer em.Unsubscribe(deathSub)

	var enc *snapshot.Encoder
	if opts.Out != nil {
		enc = snapshot.NewEncoder(opts.Out)
	}
	stride := max(opts.Stride, 1)

	for i := 0; i < opts.Ticks; i++ {
		var in systems.Input
		if opts.Pilot != nil {
			in = opts.Pilot.Input(ctx)
		}
		sim.Step(in)
		sum.Ticks++
		sum.MaxEnemies = max(sum.MaxEnemies, ctx.EnemyCount)

		if enc != nil && sum.Ticks%stride == 0 {
			if err := enc.Encode(snapshot.Capture(ctx)); err != nil {
				return sum, fmt.Errorf("tick %d: %w", ctx.Clock.Tick, err)
			}
			sum.Frames++
		}
	}

	sum.FinalScore = ctx.Player.Score
	if f, ok := opts.Out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return sum, fmt.Errorf("flushing frames: %w", err)
		}
	}
	return sum, nil
}

type flusher interface {
	Flush() error
}
