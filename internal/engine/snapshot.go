package engine

import (
	"context"
	"log/slog"

	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/roster"
)

// View is a read-only picture of the game for clients
type View struct {
	State
	RoundScore float64                        `json:"round_score"`
	Own        []entities.PositionedCharacter `json:"own"`
	Enemy      []entities.PositionedCharacter `json:"enemy"`
	Selected   *int                           `json:"selected,omitempty"`
	Hover      *Hover                         `json:"hover,omitempty"`
}

// View returns the current board and state
func (e *Engine) View() (*View, error) {
	if e.own == nil {
		return nil, errNoGame()
	}

	v := &View{
		State:      e.state,
		RoundScore: e.own.Score(),
		Own:        e.own.Positioned(),
		Enemy:      e.enemy.Positioned(),
	}
	if p := e.state.PendingAutoAttack; p != nil {
		pending := *p
		v.PendingAutoAttack = &pending
	}
	if s := e.state.LastEnemyTarget; s != nil {
		last := *s
		v.LastEnemyTarget = &last
	}
	if pc, ok := e.selection(); ok {
		v.Selected = &pc.Position
	}
	if e.hover != nil {
		h := *e.hover
		v.Hover = &h
	}
	return v, nil
}

// Snapshot returns the saveable part of the game. SavedAt is left for the
// caller to stamp.
func (e *Engine) Snapshot() (*entities.Snapshot, error) {
	if e.own == nil {
		return nil, errNoGame()
	}
	if e.state.Phase != PhaseSelecting {
		return nil, errors.FailedPreconditionf("cannot save during %s", e.state.Phase)
	}

	return &entities.Snapshot{
		Round:       e.state.Round,
		Score:       e.state.Score,
		MaxScore:    e.state.MaxScore,
		Theme:       string(e.state.Theme),
		OwnRoster:   e.own.Positioned(),
		EnemyRoster: e.enemy.Positioned(),
	}, nil
}

// Restore replaces the game with snap. A snapshot that fails validation
// leaves the current game untouched. The own side moves first and any
// pending auto-attack is dropped.
func (e *Engine) Restore(ctx context.Context, snap *entities.Snapshot) error {
	if err := e.ValidateSnapshot(snap); err != nil {
		return err
	}

	own, err := roster.New(entities.SideOwn, snap.OwnRoster)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid own roster")
	}
	enemy, err := roster.New(entities.SideEnemy, snap.EnemyRoster)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid enemy roster")
	}

	e.state = State{
		Round:        snap.Round,
		ActivePlayer: entities.SideOwn,
		Score:        snap.Score,
		MaxScore:     snap.MaxScore,
		Theme:        Theme(snap.Theme),
		Phase:        PhaseSelecting,
	}
	e.own, e.enemy = own, enemy
	e.selected = 0
	e.hover = nil
	e.gen.Reserve(max(own.MaxID(), enemy.MaxID()))

	e.redraw(ctx)
	slog.Info("Game restored", "round", snap.Round, "score", snap.Score)
	e.publish(ctx, EventGameRestored, e.marker(), nil)
	return nil
}

// ValidateSnapshot reports whether Restore would accept snap. It reads
// only the board and the archetype table, which never change after New, so
// it is safe to call outside the session.
func (e *Engine) ValidateSnapshot(snap *entities.Snapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("round", snap.Round, FirstRound, FinalRound, vb)
	if snap.Score < 0 || snap.MaxScore < 0 {
		vb.Field("score", "must not be negative")
	}
	if !Theme(snap.Theme).Valid() {
		vb.Fieldf("theme", "unknown theme %q", snap.Theme)
	}
	if len(snap.OwnRoster) == 0 {
		vb.Field("own_roster", "must not be empty")
	}
	if len(snap.EnemyRoster) == 0 {
		vb.Field("enemy_roster", "must not be empty")
	}

	cells := make(map[int]bool)
	check := func(field string, side entities.Side, placements []entities.PositionedCharacter) {
		for _, p := range placements {
			c := p.Character
			if c == nil {
				vb.Field(field, "entry without a character")
				continue
			}
			if !e.geom.ValidIndex(p.Position) {
				vb.Fieldf(field, "character %d is off the board at %d", c.ID, p.Position)
			}
			if cells[p.Position] {
				vb.Fieldf(field, "cell %d is used twice", p.Position)
			}
			cells[p.Position] = true

			if c.ID < 1 {
				vb.Fieldf(field, "character id %d must be positive", c.ID)
			}
			if c.Side != side {
				vb.Fieldf(field, "character %d belongs to side %s", c.ID, c.Side)
			}
			profile, err := e.archetypes.Lookup(c.Archetype)
			switch {
			case err != nil:
				vb.Fieldf(field, "character %d has unknown archetype %q", c.ID, c.Archetype)
			case profile.Side != side:
				vb.Fieldf(field, "archetype %s cannot play for side %s", c.Archetype, side)
			case c.Level < entities.MinLevel || c.Level > entities.MaxLevel:
				vb.Fieldf(field, "character %d has level %d", c.ID, c.Level)
			default:
				if !statsMatch(c, profile) {
					vb.Fieldf(field, "character %d stats do not match a level %d %s", c.ID, c.Level, c.Archetype)
				}
			}
			if c.Health <= 0 || c.Health > c.MaxHealth {
				vb.Fieldf(field, "character %d has health %v of %v", c.ID, c.Health, c.MaxHealth)
			}
		}
	}
	check("own_roster", entities.SideOwn, snap.OwnRoster)
	check("enemy_roster", entities.SideEnemy, snap.EnemyRoster)

	return vb.Build()
}

// statsMatch compares everything but health with a fresh character of the
// same archetype and level
func statsMatch(c *entities.Character, profile entities.Profile) bool {
	want, err := entities.NewCharacter(c.ID, profile, c.Level)
	if err != nil {
		return false
	}
	return c.Attack == want.Attack &&
		c.Defence == want.Defence &&
		c.MaxHealth == want.MaxHealth &&
		c.HikeRange == want.HikeRange &&
		c.AttackRange == want.AttackRange
}

func errNoGame() error {
	return errors.FailedPrecondition("no game in progress")
}
