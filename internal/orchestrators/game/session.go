package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/roster"
)

// instance is one running game: an engine owned by its session plus the
// renderer and journal wired to it
type instance struct {
	id       string
	session  *engine.Session
	recorder *recorder
	journal  *journal
	stop     context.CancelFunc
	done     chan struct{}
}

func (o *orchestrator) spawn(id string) (*instance, error) {
	gen, err := roster.NewGenerator(&roster.GeneratorConfig{
		Roller:     o.roller,
		Archetypes: o.archetypes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create team generator")
	}

	bus := events.NewBus()
	rec := &recorder{}
	eng, err := engine.New(&engine.Config{
		Geometry:   o.geometry,
		Generator:  gen,
		Archetypes: o.archetypes,
		Renderer:   rec,
		Pacer:      engine.TickPacer{Interval: o.tickInterval},
		EventBus:   bus,
		TeamSize:   o.teamSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	ctx, cancel := context.WithCancel(o.root)
	inst := &instance{
		id:       id,
		session:  engine.NewSession(eng),
		recorder: rec,
		journal:  newJournal(id, bus),
		stop:     cancel,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(inst.done)
		if err := inst.session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Game session stopped", "game_id", id, "error", err)
		}
	}()

	return inst, nil
}

// do runs cmd on the game's session and collects what it rendered and
// logged. Guards only apply to resets.
func (inst *instance) do(ctx context.Context, reset bool, cmd engine.Command, guards ...engine.Guard) (Outcome, error) {
	var out Outcome
	wrapped := func(ctx context.Context, e *engine.Engine) error {
		if reset {
			// frames and messages of an aborted command are stale
			inst.recorder.drain()
			inst.journal.drain()
		}
		err := cmd(ctx, e)
		out.Frames = inst.recorder.drain()
		out.Messages = inst.journal.drain()
		if err != nil {
			return err
		}
		v, err := e.View()
		if err != nil {
			return err
		}
		out.View = v
		return nil
	}

	var err error
	if reset {
		err = inst.session.Reset(ctx, wrapped, guards...)
	} else {
		err = inst.session.Do(ctx, wrapped)
	}
	if err != nil {
		// out may still be written by a command the caller stopped waiting for
		return Outcome{}, err
	}
	return out, nil
}

func (inst *instance) close() {
	inst.stop()
	<-inst.done
}
