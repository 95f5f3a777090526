package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/ranges"
	"github.com/vadim010975/retro-tactics/internal/roster"
)

// DefaultTeamSize is the number of characters per side
const DefaultTeamSize = 4

// Config holds the dependencies for an Engine
type Config struct {
	Geometry   board.Geometry
	Generator  TeamGenerator
	Archetypes entities.ArchetypeTable
	Renderer   Renderer
	Pacer      Pacer
	EventBus   events.EventBus
	TeamSize   int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Geometry.Size() == 0 {
		vb.RequiredField("Geometry")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Archetypes == nil {
		vb.RequiredField("Archetypes")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Pacer == nil {
		vb.RequiredField("Pacer")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.TeamSize < 1 {
		vb.Field("TeamSize", "must be at least 1")
	} else if c.Geometry.Size() > 0 && c.TeamSize > 2*c.Geometry.Size() {
		vb.Fieldf("TeamSize", "a team of %d does not fit in two columns", c.TeamSize)
	}

	return vb.Build()
}

// Action tells the caller what a click did
type Action string

// Actions
const (
	ActionNone     Action = ""
	ActionSelected Action = "selected"
	ActionMoved    Action = "moved"
	ActionAttacked Action = "attacked"
)

// Engine owns the rosters and combat state of one game. It is not safe
// for concurrent use; a Session serializes access to it.
type Engine struct {
	geom       board.Geometry
	gen        TeamGenerator
	archetypes entities.ArchetypeTable
	renderer   Renderer
	pacer      Pacer
	bus        events.EventBus
	ai         *AI
	teamSize   int

	state    State
	own      *roster.Roster
	enemy    *roster.Roster
	selected int // character id, 0 when nothing is selected
	hover    *Hover
}

// New creates an engine without a game. Call NewGame or Restore first.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{
		geom:       cfg.Geometry,
		gen:        cfg.Generator,
		archetypes: cfg.Archetypes,
		renderer:   cfg.Renderer,
		pacer:      cfg.Pacer,
		bus:        cfg.EventBus,
		ai:         NewAI(cfg.Geometry),
		teamSize:   cfg.TeamSize,
	}, nil
}

// NewGame starts round one with freshly generated teams. The score resets,
// the best score is kept and the theme advances.
func (e *Engine) NewGame(ctx context.Context) error {
	own, err := e.recruit(entities.SideOwn, InitialMaxLevel)
	if err != nil {
		return errors.Wrap(err, "failed to generate own team")
	}
	enemy, err := e.recruit(entities.SideEnemy, InitialMaxLevel)
	if err != nil {
		return errors.Wrap(err, "failed to generate enemy team")
	}

	e.state = State{
		Round:        FirstRound,
		ActivePlayer: entities.SideOwn,
		MaxScore:     e.state.MaxScore,
		Theme:        e.state.Theme.Next(),
		Phase:        PhaseSelecting,
	}
	e.own, e.enemy = own, enemy
	e.selected = 0
	e.hover = nil

	e.redraw(ctx)
	slog.Info("Game started", "theme", e.state.Theme, "max_score", e.state.MaxScore)
	e.publish(ctx, EventGameStarted, e.marker(), nil)
	return nil
}

// Click handles a primary activation of a cell: selecting an own
// character, moving the selected one to a free cell in its move set, or
// attacking an enemy in its attack set. Anything else is an invalid
// selection and changes nothing.
func (e *Engine) Click(ctx context.Context, index int) (Action, error) {
	if err := e.ready(); err != nil {
		return ActionNone, err
	}
	if !e.geom.ValidIndex(index) {
		return ActionNone, invalidSelection(index)
	}

	if c, ok := e.own.At(index); ok {
		e.selected = c.ID
		return ActionSelected, nil
	}

	actor, ok := e.selection()
	if !ok {
		return ActionNone, invalidSelection(index)
	}
	reach := e.rangesOf(actor)

	switch {
	case !e.occupied(index) && reach.Move.Contains(index):
		if err := e.move(ctx, e.own, actor, index); err != nil {
			return ActionMoved, err
		}
		return ActionMoved, e.evaluate(ctx)
	case e.enemy.Occupied(index) && reach.Attack.Contains(index):
		if err := e.attack(ctx, actor, index); err != nil {
			return ActionAttacked, err
		}
		return ActionAttacked, e.evaluate(ctx)
	}
	return ActionNone, invalidSelection(index)
}

// Commit records an auto-attack of the selected character on the enemy at
// index. It runs at once and again on every own turn until it is no longer
// legal.
func (e *Engine) Commit(ctx context.Context, index int) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !e.geom.ValidIndex(index) {
		return invalidSelection(index)
	}
	actor, ok := e.selection()
	if !ok {
		return errors.InvalidArgument("select a character before committing an auto-attack").
			WithMeta("cell", index)
	}

	e.state.PendingAutoAttack = &AutoAttack{TargetIndex: index, AttackerIndex: actor.Position}
	e.state.LastEnemyTarget = nil
	if _, ok := e.autoAttacker(); !ok {
		e.state.clearAutoAttack()
		return invalidSelection(index)
	}

	target, _ := e.enemy.At(index)
	e.publish(ctx, EventAutoAttackCommitted, actor.Character, target)
	return e.evaluate(ctx)
}

// evaluate runs everything that happens without player input: round end,
// the enemy turn and pending auto-attacks. It returns when the own side has
// to act or the game is over.
func (e *Engine) evaluate(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch {
		case e.state.Phase == PhaseRoundEnd:
			return e.finishRound(ctx)
		case e.state.Phase.Terminal():
			return nil
		case e.state.ActivePlayer == entities.SideEnemy:
			if err := e.enemyTurn(ctx); err != nil {
				return err
			}
		case e.state.PendingAutoAttack != nil:
			attacker, ok := e.autoAttacker()
			if !ok {
				e.state.clearAutoAttack()
				e.publish(ctx, EventAutoAttackCleared, e.marker(), nil)
				return nil
			}
			if err := e.attack(ctx, attacker, e.state.PendingAutoAttack.TargetIndex); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (e *Engine) enemyTurn(ctx context.Context) error {
	d, err := e.ai.Decide(e.own, e.enemy, e.occupied)
	if errors.IsAborted(err) {
		slog.Warn("Enemy forfeits its turn",
			"round", e.state.Round,
			"error", err)
		e.publish(ctx, EventAIForfeit, e.marker(), nil)
		return e.endTurn()
	}
	if err != nil {
		return err
	}

	if d.Attack {
		return e.attack(ctx, d.Actor, d.Target.Position)
	}
	return e.move(ctx, e.enemy, d.Actor, d.Destination)
}

// move walks actor to dest one cell per tick. The walk is only interrupted
// when ctx is cancelled, which happens when a new game or a load replaces
// this one.
func (e *Engine) move(ctx context.Context, team *roster.Roster, actor entities.PositionedCharacter, dest int) error {
	if err := e.state.transition(PhaseMoving); err != nil {
		return err
	}

	for _, step := range e.geom.Path(actor.Position, dest) {
		if err := e.pacer.Wait(ctx); err != nil {
			return err
		}
		if err := team.SetPosition(actor.Character.ID, step); err != nil {
			return err
		}
		e.redraw(ctx)
	}

	slog.Debug("Character moved",
		"character_id", actor.Character.ID,
		"from", actor.Position,
		"to", dest)
	e.publish(ctx, EventCharacterMoved, actor.Character, nil)
	return e.endTurn()
}

// attack strikes the character on targetCell with actor's attack stat
func (e *Engine) attack(ctx context.Context, actor entities.PositionedCharacter, targetCell int) error {
	victims := e.rosterOf(actor.Character.Side.Opponent())
	target, ok := victims.At(targetCell)
	if !ok {
		return errors.NotFoundf("no %s character on cell %d", victims.Side(), targetCell).
			WithMeta("cell", targetCell)
	}
	if err := e.state.transition(PhaseAttacking); err != nil {
		return err
	}

	amount := entities.EffectiveDamage(actor.Character.Attack, target.Defence)
	if err := e.renderer.ShowDamage(ctx, targetCell, amount); err != nil {
		if ctx.Err() != nil {
			return err
		}
		slog.Warn("Damage effect failed", "cell", targetCell, "error", err)
	}

	out, err := victims.ApplyDamage(target.ID, actor.Character.Attack, func(o roster.Outcome) {
		if actor.Character.Side == entities.SideOwn {
			e.own.RecordDealt(o.Dealt)
			return
		}
		e.state.LastEnemyTarget = &EnemyStrike{Index: targetCell, Killed: o.Killed}
	})
	if err != nil {
		return err
	}
	e.redraw(ctx)

	slog.Debug("Attack resolved",
		"attacker_id", actor.Character.ID,
		"target_id", target.ID,
		"dealt", out.Dealt,
		"killed", out.Killed)
	e.publish(ctx, EventAttackResolved, actor.Character, target)
	if out.Killed {
		if target.ID == e.selected {
			e.selected = 0
		}
		e.publish(ctx, EventCharacterKilled, actor.Character, target)
	}
	return e.endTurn()
}

// endTurn resolves the turn and hands control to the other side, or ends
// the round when a roster is empty
func (e *Engine) endTurn() error {
	if err := e.state.transition(PhaseTurnResolved); err != nil {
		return err
	}
	e.state.flip()

	if e.own.Len() == 0 || e.enemy.Len() == 0 {
		return e.state.transition(PhaseRoundEnd)
	}
	return e.state.transition(PhaseSelecting)
}

func (e *Engine) finishRound(ctx context.Context) error {
	if e.enemy.Len() > 0 {
		if err := e.state.transition(PhaseGameLost); err != nil {
			return err
		}
		slog.Info("Game lost", "round", e.state.Round, "score", e.state.Score)
		e.publish(ctx, EventGameLost, e.marker(), nil)
		return nil
	}

	// the final round's tally is not banked, only the running score counts
	// towards the best score
	if e.state.Round >= FinalRound {
		if err := e.state.transition(PhaseGameWon); err != nil {
			return err
		}
		e.state.MaxScore = max(e.state.MaxScore, e.state.Score)
		slog.Info("Game won", "score", e.state.Score, "max_score", e.state.MaxScore)
		e.publish(ctx, EventGameWon, e.marker(), nil)
		return nil
	}
	e.state.Score += e.own.Score()
	return e.advanceRound(ctx)
}

// advanceRound levels up the own survivors, brings in a fresh enemy team
// and gives the first turn of the next round to the own side
func (e *Engine) advanceRound(ctx context.Context) error {
	if err := e.state.transition(PhaseRoundAdvance); err != nil {
		return err
	}
	next := e.state.Round + 1

	survivors, err := e.own.AdvanceRound(e.teamSize, e.gen)
	if err != nil {
		return errors.Wrap(err, "failed to advance own team")
	}
	recruits, err := roster.RegenerateRound(next, e.teamSize, e.gen)
	if err != nil {
		return errors.Wrap(err, "failed to regenerate enemy team")
	}
	own, err := e.deploy(entities.SideOwn, survivors)
	if err != nil {
		return err
	}
	enemy, err := e.deploy(entities.SideEnemy, recruits)
	if err != nil {
		return err
	}

	e.own, e.enemy = own, enemy
	e.state.Round = next
	e.state.Theme = e.state.Theme.Next()
	e.state.ActivePlayer = entities.SideOwn
	e.state.clearAutoAttack()
	e.selected = 0
	if err := e.state.transition(PhaseSelecting); err != nil {
		return err
	}

	e.redraw(ctx)
	slog.Info("Round advanced", "round", e.state.Round, "score", e.state.Score)
	e.publish(ctx, EventRoundAdvanced, e.marker(), nil)
	return nil
}

// autoAttacker returns the own character that carries out the pending
// auto-attack, if it is still legal: a live enemy on the target cell, an
// own character on the attacker cell with the target in reach, and no own
// character killed by the enemy's last strike.
func (e *Engine) autoAttacker() (entities.PositionedCharacter, bool) {
	p := e.state.PendingAutoAttack
	if p == nil || !e.enemy.Occupied(p.TargetIndex) {
		return entities.PositionedCharacter{}, false
	}
	if last := e.state.LastEnemyTarget; last != nil && last.Killed {
		return entities.PositionedCharacter{}, false
	}

	c, ok := e.own.At(p.AttackerIndex)
	if !ok {
		return entities.PositionedCharacter{}, false
	}
	attacker := entities.PositionedCharacter{Character: c, Position: p.AttackerIndex}
	if !e.rangesOf(attacker).Attack.Contains(p.TargetIndex) {
		return entities.PositionedCharacter{}, false
	}
	return attacker, true
}

func (e *Engine) recruit(side entities.Side, maxLevel int) (*roster.Roster, error) {
	team, err := e.gen.Recruit(side, maxLevel, e.teamSize)
	if err != nil {
		return nil, err
	}
	return e.deploy(side, team)
}

func (e *Engine) deploy(side entities.Side, team []*entities.Character) (*roster.Roster, error) {
	placed, err := e.gen.Place(team, roster.StartCells(e.geom, side))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to place %s team", side)
	}
	return roster.New(side, placed)
}

// ready fails unless the own side may act now
func (e *Engine) ready() error {
	if e.own == nil {
		return errNoGame()
	}
	return e.state.awaitingOwnInput()
}

// selection returns the selected character if it is still alive
func (e *Engine) selection() (entities.PositionedCharacter, bool) {
	if e.selected == 0 {
		return entities.PositionedCharacter{}, false
	}
	pc, err := e.own.Find(e.selected)
	if err != nil {
		e.selected = 0
		return entities.PositionedCharacter{}, false
	}
	return pc, true
}

func (e *Engine) rangesOf(pc entities.PositionedCharacter) ranges.Ranges {
	return ranges.Compute(e.geom, pc.Position, pc.Character.HikeRange, pc.Character.AttackRange)
}

func (e *Engine) occupied(cell int) bool {
	return e.own.Occupied(cell) || e.enemy.Occupied(cell)
}

func (e *Engine) rosterOf(side entities.Side) *roster.Roster {
	if side == entities.SideEnemy {
		return e.enemy
	}
	return e.own
}

func (e *Engine) positions() []entities.PositionedCharacter {
	return append(e.own.Positioned(), e.enemy.Positioned()...)
}

func (e *Engine) redraw(ctx context.Context) {
	e.renderer.RedrawPositions(ctx, e.positions())
}

func invalidSelection(index int) error {
	return errors.InvalidArgument("invalid selection").WithMeta("cell", index)
}
