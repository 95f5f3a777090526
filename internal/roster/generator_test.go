package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/roster"
)

// sequenceRoller replays fixed rolls, clamped to the die size
type sequenceRoller struct {
	rolls []int
	next  int
}

func (r *sequenceRoller) Roll(size int) (int, error) {
	v := r.rolls[r.next%len(r.rolls)]
	r.next++
	return min(v, size), nil
}

func (r *sequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

func TestNewGenerator_Validation(t *testing.T) {
	_, err := roster.NewGenerator(&roster.GeneratorConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Roller: is required")
}

func TestGenerator_Recruit(t *testing.T) {
	gen, err := roster.NewGenerator(&roster.GeneratorConfig{
		Roller:     &sequenceRoller{rolls: []int{1, 2, 3, 1}},
		Archetypes: entities.DefaultArchetypes(),
	})
	require.NoError(t, err)

	team, err := gen.Recruit(entities.SideEnemy, 2, 2)
	require.NoError(t, err)
	require.Len(t, team, 2)

	assert.Equal(t, entities.ArchetypeDaemon, team[0].Archetype)
	assert.Equal(t, 2, team[0].Level)
	assert.Equal(t, entities.ArchetypeVampire, team[1].Archetype)
	assert.Equal(t, 1, team[1].Level)
	assert.Equal(t, 1, team[0].ID)
	assert.Equal(t, 2, team[1].ID)
}

func TestGenerator_ReserveKeepsIDsIncreasing(t *testing.T) {
	gen, err := roster.NewGenerator(&roster.GeneratorConfig{
		Roller:     &sequenceRoller{rolls: []int{1}},
		Archetypes: entities.DefaultArchetypes(),
	})
	require.NoError(t, err)

	gen.Reserve(40)
	team, err := gen.Recruit(entities.SideOwn, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 41, team[0].ID)
}

func TestGenerator_PlaceDistinctCells(t *testing.T) {
	gen, err := roster.NewGenerator(&roster.GeneratorConfig{
		Roller:     &sequenceRoller{rolls: []int{1}},
		Archetypes: entities.DefaultArchetypes(),
	})
	require.NoError(t, err)
	geom, _ := board.New(8)

	team, err := gen.Recruit(entities.SideOwn, 1, 4)
	require.NoError(t, err)
	cells := roster.StartCells(geom, entities.SideOwn)

	placed, err := gen.Place(team, cells)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, p := range placed {
		assert.Contains(t, cells, p.Position)
		assert.False(t, seen[p.Position])
		seen[p.Position] = true
	}

	_, err = gen.Place(team, cells[:2])
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestStartCells(t *testing.T) {
	geom, _ := board.New(8)

	own := roster.StartCells(geom, entities.SideOwn)
	enemy := roster.StartCells(geom, entities.SideEnemy)

	assert.Equal(t, []int{0, 1, 8, 9, 16, 17, 24, 25, 32, 33, 40, 41, 48, 49, 56, 57}, own)
	assert.Equal(t, []int{6, 7, 14, 15, 22, 23, 30, 31, 38, 39, 46, 47, 54, 55, 62, 63}, enemy)
}
