package roster

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

// GeneratorConfig holds the dependencies for a Generator
type GeneratorConfig struct {
	Roller     dice.Roller
	Archetypes entities.ArchetypeTable
}

// Validate ensures all required dependencies are provided
func (c *GeneratorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Archetypes == nil {
		vb.RequiredField("Archetypes")
	}

	return vb.Build()
}

// Generator creates random teams and places them on their starting cells.
// Character ids increase monotonically so "lowest id" means "oldest".
type Generator struct {
	roller     dice.Roller
	archetypes entities.ArchetypeTable
	lastID     int
}

var _ Recruiter = (*Generator)(nil)

// NewGenerator creates a team generator
func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.Archetypes.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid archetype table")
	}

	return &Generator{
		roller:     cfg.Roller,
		archetypes: cfg.Archetypes,
	}, nil
}

// Recruit creates count characters of side with a random archetype and a
// random level in [1, maxLevel]
func (g *Generator) Recruit(side entities.Side, maxLevel, count int) ([]*entities.Character, error) {
	kinds := g.archetypes.ForSide(side)
	if len(kinds) == 0 {
		return nil, errors.NotFoundf("no archetypes for side %s", side)
	}
	maxLevel = min(max(maxLevel, entities.MinLevel), entities.MaxLevel)

	team := make([]*entities.Character, 0, count)
	for range count {
		k, err := g.pick(len(kinds))
		if err != nil {
			return nil, err
		}
		level, err := g.pick(maxLevel)
		if err != nil {
			return nil, err
		}

		profile, _ := g.archetypes.Lookup(kinds[k])
		g.lastID++
		c, err := entities.NewCharacter(g.lastID, profile, level+1)
		if err != nil {
			return nil, err
		}
		team = append(team, c)
	}
	return team, nil
}

// Place puts each character on a distinct random cell taken from cells
func (g *Generator) Place(team []*entities.Character, cells []int) ([]entities.PositionedCharacter, error) {
	if len(team) > len(cells) {
		return nil, errors.FailedPreconditionf("%d characters do not fit in %d cells", len(team), len(cells))
	}

	free := append([]int(nil), cells...)
	placed := make([]entities.PositionedCharacter, 0, len(team))
	for _, c := range team {
		i, err := g.pick(len(free))
		if err != nil {
			return nil, err
		}
		placed = append(placed, entities.PositionedCharacter{Character: c, Position: free[i]})
		free = append(free[:i], free[i+1:]...)
	}
	return placed, nil
}

// Reserve makes sure future ids are greater than id, e.g. after a
// snapshot with existing characters is loaded
func (g *Generator) Reserve(id int) {
	g.lastID = max(g.lastID, id)
}

// pick returns a uniform index in [0, n)
func (g *Generator) pick(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	v, err := g.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "dice roll failed")
	}
	return v - 1, nil
}

// StartCells returns the cells a side deploys on: the two leftmost
// columns for the own side, the two rightmost for the enemy.
func StartCells(g board.Geometry, side entities.Side) []int {
	cols := []int{0, 1}
	if side == entities.SideEnemy {
		cols = []int{g.Size() - 2, g.Size() - 1}
	}

	var cells []int
	for row := 0; row < g.Size(); row++ {
		for _, col := range cols {
			if idx, ok := g.ToIndex(board.Coordinate{Row: row, Col: col}); ok {
				cells = append(cells, idx)
			}
		}
	}
	return cells
}
