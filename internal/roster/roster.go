// Package roster holds one side's living characters and their cells, and
// implements the damage, targeting and round-advance rules.
package roster

import (
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

// Outcome describes a resolved hit. The attacking side's bookkeeping reads
// Dealt (own attacks feed the score) or Killed (enemy attacks invalidate a
// pending auto-attack).
type Outcome struct {
	Dealt  float64
	Killed bool
}

// Recruiter supplies new characters when a roster is refilled
type Recruiter interface {
	// Recruit creates count characters of side with levels in [1, maxLevel]
	Recruit(side entities.Side, maxLevel, count int) ([]*entities.Character, error)
}

// Roster is the ordered set of one side's characters with their cells.
// No two members share a cell.
type Roster struct {
	side    entities.Side
	members []entities.PositionedCharacter
	dealt   float64
}

// New creates a roster from placements, validating ownership, ids and cells
func New(side entities.Side, placements []entities.PositionedCharacter) (*Roster, error) {
	r := &Roster{side: side}
	ids := make(map[int]bool, len(placements))
	cells := make(map[int]bool, len(placements))

	for _, p := range placements {
		switch {
		case p.Character == nil:
			return nil, errors.InvalidArgument("placement without a character")
		case p.Character.Side != side:
			return nil, errors.InvalidArgumentf("character %d belongs to side %s", p.Character.ID, p.Character.Side)
		case !p.Character.Alive():
			return nil, errors.InvalidArgumentf("character %d has no health", p.Character.ID)
		case ids[p.Character.ID]:
			return nil, errors.AlreadyExistsf("character %d placed twice", p.Character.ID)
		case cells[p.Position]:
			return nil, errors.AlreadyExistsf("cell %d is occupied twice", p.Position)
		}
		ids[p.Character.ID] = true
		cells[p.Position] = true
		r.members = append(r.members, entities.PositionedCharacter{
			Character: p.Character.Clone(),
			Position:  p.Position,
		})
	}
	return r, nil
}

// Side returns the side the roster belongs to
func (r *Roster) Side() entities.Side {
	return r.side
}

// Len returns the number of living characters
func (r *Roster) Len() int {
	return len(r.members)
}

// Positioned returns copies of the characters and their cells, in order
func (r *Roster) Positioned() []entities.PositionedCharacter {
	out := make([]entities.PositionedCharacter, len(r.members))
	for i, m := range r.members {
		out[i] = entities.PositionedCharacter{Character: m.Character.Clone(), Position: m.Position}
	}
	return out
}

// Find returns a copy of the character with id and its cell
func (r *Roster) Find(id int) (entities.PositionedCharacter, error) {
	i, err := r.indexOf(id)
	if err != nil {
		return entities.PositionedCharacter{}, err
	}
	m := r.members[i]
	return entities.PositionedCharacter{Character: m.Character.Clone(), Position: m.Position}, nil
}

// At returns a copy of the character standing on cell
func (r *Roster) At(cell int) (*entities.Character, bool) {
	for _, m := range r.members {
		if m.Position == cell {
			return m.Character.Clone(), true
		}
	}
	return nil, false
}

// SetPosition moves character id to newIndex. Only the final cell of a
// move has to be free; the steps of a move sequence may pass over
// teammates, so occupancy is left to the caller.
func (r *Roster) SetPosition(id, newIndex int) error {
	i, err := r.indexOf(id)
	if err != nil {
		return err
	}
	r.members[i].Position = newIndex
	return nil
}

// Occupied reports whether any member stands on cell
func (r *Roster) Occupied(cell int) bool {
	for _, m := range r.members {
		if m.Position == cell {
			return true
		}
	}
	return false
}

// MaxID returns the highest character id in the roster, 0 when empty
func (r *Roster) MaxID() int {
	highest := 0
	for _, m := range r.members {
		highest = max(highest, m.Character.ID)
	}
	return highest
}

// ApplyDamage resolves a raw attack against character id. A character whose
// health reaches zero is removed at once, so a second hit on the same id
// fails with NotFound instead of removing it again. onResolved, when set,
// receives the outcome before ApplyDamage returns.
func (r *Roster) ApplyDamage(id int, rawAttack float64, onResolved func(Outcome)) (Outcome, error) {
	i, err := r.indexOf(id)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "cannot apply damage")
	}

	dealt, killed := r.members[i].Character.TakeDamage(rawAttack)
	if killed {
		r.members = append(r.members[:i], r.members[i+1:]...)
	}

	out := Outcome{Dealt: dealt, Killed: killed}
	if onResolved != nil {
		onResolved(out)
	}
	return out, nil
}

// RecordDealt adds damage this side dealt to its round tally
func (r *Roster) RecordDealt(amount float64) {
	r.dealt += amount
}

// Score returns the damage this side dealt during the current round
func (r *Roster) Score() float64 {
	return r.dealt
}

// SelectTarget picks the character the opponent's AI attacks: lowest
// current health, ties broken by lowest id.
func (r *Roster) SelectTarget() (entities.PositionedCharacter, error) {
	return r.pick(func(a, b *entities.Character) bool {
		if a.Health != b.Health {
			return a.Health < b.Health
		}
		return a.ID < b.ID
	})
}

// SelectActor picks which of this side's characters acts: highest attack,
// ties broken by lowest id.
func (r *Roster) SelectActor() (entities.PositionedCharacter, error) {
	return r.pick(func(a, b *entities.Character) bool {
		if a.Attack != b.Attack {
			return a.Attack > b.Attack
		}
		return a.ID < b.ID
	})
}

// AdvanceRound levels up and heals every survivor and recruits level-1
// characters until the lineup has required members. The round tally is
// reset. The returned lineup still needs placing on the board.
func (r *Roster) AdvanceRound(required int, recruiter Recruiter) ([]*entities.Character, error) {
	lineup := make([]*entities.Character, 0, max(required, len(r.members)))
	for _, m := range r.members {
		c := m.Character.Clone()
		c.LevelUp()
		lineup = append(lineup, c)
	}
	r.dealt = 0

	return refill(r.side, lineup, required, entities.MinLevel, recruiter)
}

// RegenerateRound builds the enemy lineup for round. The enemy roster is
// always wiped out when a round ends, so the lineup is all recruits. Unlike
// own refills, which join at level 1, enemy recruits draw their level from
// 1..round so the opposition grows with each round; the enemy team is
// rebuilt from the round number and the team size alone.
func RegenerateRound(round, required int, recruiter Recruiter) ([]*entities.Character, error) {
	maxLevel := min(max(round, entities.MinLevel), entities.MaxLevel)
	return refill(entities.SideEnemy, nil, required, maxLevel, recruiter)
}

func refill(side entities.Side, lineup []*entities.Character, required, maxLevel int, recruiter Recruiter) ([]*entities.Character, error) {
	missing := required - len(lineup)
	if missing <= 0 {
		return lineup, nil
	}
	if recruiter == nil {
		return nil, errors.InvalidArgument("recruiter is required to refill a roster")
	}

	recruits, err := recruiter.Recruit(side, maxLevel, missing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recruit characters")
	}
	if len(recruits) != missing {
		return nil, errors.Internalf("recruited %d characters, need %d", len(recruits), missing)
	}
	return append(lineup, recruits...), nil
}

func (r *Roster) indexOf(id int) (int, error) {
	for i, m := range r.members {
		if m.Character.ID == id {
			return i, nil
		}
	}
	return -1, errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
}

func (r *Roster) pick(better func(a, b *entities.Character) bool) (entities.PositionedCharacter, error) {
	if len(r.members) == 0 {
		return entities.PositionedCharacter{}, errors.NotFoundf("%s roster is empty", r.side)
	}

	best := r.members[0]
	for _, m := range r.members[1:] {
		if better(m.Character, best.Character) {
			best = m
		}
	}
	return entities.PositionedCharacter{Character: best.Character.Clone(), Position: best.Position}, nil
}
