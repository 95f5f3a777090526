// Package game hosts many tactics games in one process. Every game is owned
// by its own engine session; the orchestrator routes requests to it and
// moves snapshots in and out of the repository.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/vadim010975/retro-tactics/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/pkg/clock"
	"github.com/vadim010975/retro-tactics/internal/pkg/idgen"
	"github.com/vadim010975/retro-tactics/internal/repositories/snapshots"
)

const tracerName = "github.com/vadim010975/retro-tactics/internal/orchestrators/game"

// Service defines the game operations exposed to transports
type Service interface {
	// NewGame starts a game, or restarts the one named in the input
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// Click selects, moves or attacks depending on the cell
	Click(ctx context.Context, input *ClickInput) (*ClickOutput, error)

	// Commit makes the selected character attack the enemy on the cell
	// every own turn until the attack is no longer possible
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)

	// Enter describes the hovered cell
	Enter(ctx context.Context, input *HoverInput) (*HoverOutput, error)

	// Leave clears the hover of a cell
	Leave(ctx context.Context, input *HoverInput) (*HoverOutput, error)

	// Save stores a snapshot of the game
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load replaces the game with its saved snapshot
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// GetState returns the board and recent messages
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Close stops every game
	Close()
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	Repository   snapshots.Repository
	Roller       dice.Roller
	Geometry     board.Geometry
	Archetypes   entities.ArchetypeTable
	TeamSize     int
	TickInterval time.Duration
	// Tracer defaults to the global otel tracer
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Geometry.Size() == 0 {
		vb.RequiredField("Geometry")
	}
	if c.Archetypes == nil {
		vb.RequiredField("Archetypes")
	}
	if c.TeamSize < 1 {
		vb.Field("TeamSize", "must be at least 1")
	}
	if c.TickInterval < 0 {
		vb.Field("TickInterval", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen        idgen.Generator
	clock        clock.Clock
	repo         snapshots.Repository
	roller       dice.Roller
	geometry     board.Geometry
	archetypes   entities.ArchetypeTable
	teamSize     int
	tickInterval time.Duration
	tracer       trace.Tracer

	root   context.Context
	cancel context.CancelFunc

	mu    sync.RWMutex
	games map[string]*instance
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	root, cancel := context.WithCancel(context.Background())
	return &orchestrator{
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		repo:         cfg.Repository,
		roller:       cfg.Roller,
		geometry:     cfg.Geometry,
		archetypes:   cfg.Archetypes,
		teamSize:     cfg.TeamSize,
		tickInterval: cfg.TickInterval,
		tracer:       tracer,
		root:         root,
		cancel:       cancel,
		games:        make(map[string]*instance),
	}, nil
}

// NewGame starts round one of a game
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (out *NewGameOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	gameID := strings.TrimSpace(input.GameID)
	if gameID == "" {
		gameID = o.idGen.Generate()
	}

	ctx, span := o.startSpan(ctx, "NewGame", gameID)
	defer func() { finishSpan(span, err) }()

	inst, created, err := o.acquire(gameID)
	if err != nil {
		return nil, err
	}

	outcome, err := inst.do(ctx, true, func(ctx context.Context, e *engine.Engine) error {
		return e.NewGame(ctx)
	})
	if err != nil {
		if created {
			o.discard(gameID)
		}
		return nil, errors.Wrapf(err, "failed to start game %s", gameID)
	}

	slog.Info("Game started",
		"game_id", gameID,
		"restarted", !created,
		"theme", outcome.View.Theme,
	)

	return &NewGameOutput{GameID: gameID, Outcome: outcome}, nil
}

// Click forwards a cell activation to the game
func (o *orchestrator) Click(ctx context.Context, input *ClickInput) (out *ClickOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "Click", input.GameID, attribute.Int("cell.index", input.Index))
	defer func() { finishSpan(span, err) }()

	inst, err := o.lookup(input.GameID)
	if err != nil {
		return nil, err
	}

	var action engine.Action
	outcome, err := inst.do(ctx, false, func(ctx context.Context, e *engine.Engine) error {
		var err error
		action, err = e.Click(ctx, input.Index)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ClickOutput{Action: action, Outcome: outcome}, nil
}

// Commit forwards an auto-attack commit to the game
func (o *orchestrator) Commit(ctx context.Context, input *CommitInput) (out *CommitOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "Commit", input.GameID, attribute.Int("cell.index", input.Index))
	defer func() { finishSpan(span, err) }()

	inst, err := o.lookup(input.GameID)
	if err != nil {
		return nil, err
	}

	outcome, err := inst.do(ctx, false, func(ctx context.Context, e *engine.Engine) error {
		return e.Commit(ctx, input.Index)
	})
	if err != nil {
		return nil, err
	}

	return &CommitOutput{Outcome: outcome}, nil
}

// Enter describes the hovered cell
func (o *orchestrator) Enter(ctx context.Context, input *HoverInput) (*HoverOutput, error) {
	return o.hover(ctx, input, (*engine.Engine).Enter)
}

// Leave clears the hover of a cell
func (o *orchestrator) Leave(ctx context.Context, input *HoverInput) (*HoverOutput, error) {
	return o.hover(ctx, input, (*engine.Engine).Leave)
}

func (o *orchestrator) hover(ctx context.Context, input *HoverInput, fn func(*engine.Engine, int) (engine.Hover, error)) (*HoverOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inst, err := o.lookup(input.GameID)
	if err != nil {
		return nil, err
	}

	var h engine.Hover
	err = inst.session.Do(ctx, func(_ context.Context, e *engine.Engine) error {
		var err error
		h, err = fn(e, input.Index)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &HoverOutput{Hover: h}, nil
}

// Save stores a snapshot of the game, stamped with the current time
func (o *orchestrator) Save(ctx context.Context, input *SaveInput) (out *SaveOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "Save", input.GameID)
	defer func() { finishSpan(span, err) }()

	inst, err := o.lookup(input.GameID)
	if err != nil {
		return nil, err
	}

	var snap *entities.Snapshot
	err = inst.session.Do(ctx, func(_ context.Context, e *engine.Engine) error {
		var err error
		snap, err = e.Snapshot()
		return err
	})
	if err != nil {
		return nil, err
	}
	snap.SavedAt = o.clock.Now()

	if _, err := o.repo.Save(ctx, &snapshots.SaveInput{GameID: input.GameID, Snapshot: snap}); err != nil {
		return nil, errors.Wrapf(err, "failed to save game %s", input.GameID)
	}

	slog.Info("Game saved",
		"game_id", input.GameID,
		"round", snap.Round,
		"score", snap.Score,
	)

	return &SaveOutput{SavedAt: snap.SavedAt}, nil
}

// Load replaces the game with its saved snapshot. The game is created in
// this process when it is not running yet.
func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (out *LoadOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.GameID) == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	ctx, span := o.startSpan(ctx, "Load", input.GameID)
	defer func() { finishSpan(span, err) }()

	saved, err := o.repo.Get(ctx, &snapshots.GetInput{GameID: input.GameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", input.GameID)
	}

	inst, created, err := o.acquire(input.GameID)
	if err != nil {
		return nil, err
	}

	outcome, err := inst.do(ctx, true, func(ctx context.Context, e *engine.Engine) error {
		return e.Restore(ctx, saved.Snapshot)
	}, func(e *engine.Engine) error {
		return e.ValidateSnapshot(saved.Snapshot)
	})
	if err != nil {
		if created {
			o.discard(input.GameID)
		}
		return nil, errors.Wrapf(err, "failed to restore game %s", input.GameID)
	}

	slog.Info("Game loaded",
		"game_id", input.GameID,
		"round", saved.Snapshot.Round,
		"saved_at", saved.Snapshot.SavedAt,
	)

	return &LoadOutput{SavedAt: saved.Snapshot.SavedAt, Outcome: outcome}, nil
}

// GetState returns the board and the recent messages of a game
func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inst, err := o.lookup(input.GameID)
	if err != nil {
		return nil, err
	}

	out := &GetStateOutput{}
	err = inst.session.Do(ctx, func(_ context.Context, e *engine.Engine) error {
		v, err := e.View()
		if err != nil {
			return err
		}
		out.View = v
		out.Messages = inst.journal.history()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Close stops every game session and waits for them to exit
func (o *orchestrator) Close() {
	o.cancel()

	o.mu.Lock()
	games := o.games
	o.games = make(map[string]*instance)
	o.mu.Unlock()

	for _, inst := range games {
		inst.close()
	}
}

func (o *orchestrator) lookup(gameID string) (*instance, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	o.mu.RLock()
	inst, ok := o.games[gameID]
	o.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("game not found").WithMeta("game_id", gameID)
	}
	return inst, nil
}

// acquire returns the running game or spawns it
func (o *orchestrator) acquire(gameID string) (*instance, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.root.Err() != nil {
		return nil, false, errors.Unavailable("orchestrator is closed")
	}
	if inst, ok := o.games[gameID]; ok {
		return inst, false, nil
	}

	inst, err := o.spawn(gameID)
	if err != nil {
		return nil, false, err
	}
	o.games[gameID] = inst
	return inst, true, nil
}

func (o *orchestrator) discard(gameID string) {
	o.mu.Lock()
	inst, ok := o.games[gameID]
	delete(o.games, gameID)
	o.mu.Unlock()

	if ok {
		inst.close()
	}
}

func (o *orchestrator) startSpan(ctx context.Context, op, gameID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("game.id", gameID))
	return o.tracer.Start(ctx, "game."+op, trace.WithAttributes(attrs...))
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	span.End()
}
