package engine

import (
	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/ranges"
)

// AI decides the enemy's action for a turn
type AI struct {
	geom board.Geometry
}

// NewAI creates the enemy AI for a board
func NewAI(geom board.Geometry) *AI {
	return &AI{geom: geom}
}

// Decision is what the enemy does this turn. When Attack is false the
// actor moves to Destination.
type Decision struct {
	Actor       entities.PositionedCharacter
	Target      entities.PositionedCharacter
	Attack      bool
	Destination int
}

// Decide picks the acting enemy and its target, then attacks when the
// target is already in reach or chooses an approach cell otherwise.
// occupied reports whether any character stands on a cell.
func (a *AI) Decide(own, enemy Lineup, occupied func(int) bool) (*Decision, error) {
	target, err := own.SelectTarget()
	if err != nil {
		return nil, errors.Wrap(err, "no target for the enemy")
	}
	actor, err := enemy.SelectActor()
	if err != nil {
		return nil, errors.Wrap(err, "no enemy left to act")
	}

	d := &Decision{Actor: actor, Target: target}
	reach := ranges.AttackSet(a.geom, actor.Position, actor.Character.AttackRange)
	if reach.Contains(target.Position) {
		d.Attack = true
		return d, nil
	}

	d.Destination, err = a.ChooseApproach(actor, target.Position, occupied)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ChooseApproach finds a free cell that brings actor toward target.
//
// It walks along the direction of the target for at most the actor's hike
// range and stops at the first cell from which the target would be in
// reach. If that cell is taken it steps back toward the actor one cell at
// a time. Once only a single step is left it tries the alternative
// directions for the primary direction, in order. The search is local and
// bounded. It fails with Aborted when every alternative is blocked or off
// the board, even if a cell behind the actor is free; the caller forfeits
// the turn.
func (a *AI) ChooseApproach(actor entities.PositionedCharacter, target int, occupied func(int) bool) (int, error) {
	from := a.geom.ToCoordinate(actor.Position)
	to := a.geom.ToCoordinate(target)
	dir := board.DirectionTo(from, to)
	if dir.IsZero() {
		return 0, errors.InvalidArgumentf("actor already stands on cell %d", target)
	}

	step := 0
	for i := 1; i <= actor.Character.HikeRange; i++ {
		idx, ok := a.geom.ToIndex(from.Add(dir, i))
		if !ok {
			continue
		}
		step = i
		if ranges.AttackSet(a.geom, idx, actor.Character.AttackRange).Contains(target) {
			break
		}
	}
	step = max(step, 1)

	alternatives := alternativeDirections(dir)
	for {
		if idx, ok := a.geom.ToIndex(from.Add(dir, step)); ok && !occupied(idx) {
			return idx, nil
		}
		if step > 1 {
			step--
			continue
		}

		next, found := a.nextOnBoard(from, &alternatives)
		if !found {
			return 0, errors.Aborted("no free cell to approach the target").
				WithMeta("actor_cell", actor.Position).
				WithMeta("target_cell", target)
		}
		dir = next
	}
}

// nextOnBoard pops alternatives until one whose first step stays on the board
func (a *AI) nextOnBoard(from board.Coordinate, alternatives *[]board.Direction) (board.Direction, bool) {
	for len(*alternatives) > 0 {
		d := (*alternatives)[0]
		*alternatives = (*alternatives)[1:]
		if a.geom.Contains(from.Add(d, 1)) {
			return d, true
		}
	}
	return board.Direction{}, false
}

// alternativeDirections lists the fallbacks for a blocked primary direction.
// A diagonal degrades to its two axes and then the two mirrored diagonals;
// a straight direction tries both diagonals ahead and then both sides.
func alternativeDirections(d board.Direction) []board.Direction {
	v, h := d.Vertical, d.Horizontal
	dir := func(v, h int) board.Direction { return board.Direction{Vertical: v, Horizontal: h} }
	switch {
	case v != 0 && h != 0:
		return []board.Direction{dir(0, h), dir(v, 0), dir(-v, h), dir(v, -h)}
	case v != 0:
		return []board.Direction{dir(v, -1), dir(v, 1), dir(0, -1), dir(0, 1)}
	default:
		return []board.Direction{dir(-1, h), dir(1, h), dir(-1, 0), dir(1, 0)}
	}
}

// Lineup is the part of a roster the AI reads
type Lineup interface {
	SelectTarget() (entities.PositionedCharacter, error)
	SelectActor() (entities.PositionedCharacter, error)
}
