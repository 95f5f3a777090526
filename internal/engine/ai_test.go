package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/ranges"
)

func placed(t *testing.T, id int, a entities.Archetype, cell int) entities.PositionedCharacter {
	t.Helper()
	profile, err := entities.DefaultArchetypes().Lookup(a)
	require.NoError(t, err)
	c, err := entities.NewCharacter(id, profile, 1)
	require.NoError(t, err)
	return entities.PositionedCharacter{Character: c, Position: cell}
}

func blocked(cells ...int) func(int) bool {
	set := make(map[int]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return func(cell int) bool { return set[cell] }
}

func TestChooseApproach(t *testing.T) {
	geom, err := board.New(8)
	require.NoError(t, err)
	ai := engine.NewAI(geom)

	testCases := []struct {
		name      string
		archetype entities.Archetype
		actor     int
		target    int
		occupied  []int
		want      int
	}{
		{
			name:      "walks full hike range when target stays out of reach",
			archetype: entities.ArchetypeUndead,
			actor:     63,
			target:    0,
			want:      27,
		},
		{
			name:      "stops at the first cell that brings target into reach",
			archetype: entities.ArchetypeVampire,
			actor:     63,
			target:    27,
			want:      45,
		},
		{
			name:      "steps back when the attacking cell is taken",
			archetype: entities.ArchetypeVampire,
			actor:     63,
			target:    27,
			occupied:  []int{45},
			want:      54,
		},
		{
			name:      "tries the horizontal axis of a blocked diagonal",
			archetype: entities.ArchetypeVampire,
			actor:     63,
			target:    27,
			occupied:  []int{45, 54},
			want:      62,
		},
		{
			name:      "tries the vertical axis next",
			archetype: entities.ArchetypeVampire,
			actor:     63,
			target:    27,
			occupied:  []int{45, 54, 62},
			want:      55,
		},
		{
			name:      "straight approach degrades to the forward diagonals",
			archetype: entities.ArchetypeUndead,
			actor:     39,
			target:    32,
			occupied:  []int{35, 36, 37, 38},
			want:      30,
		},
		{
			name:      "last mirrored diagonal is the only way left",
			archetype: entities.ArchetypeDaemon,
			actor:     36,
			target:    0,
			occupied:  []int{27, 28, 35, 43},
			want:      29,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actor := placed(t, 1, tc.archetype, tc.actor)

			got, err := ai.ChooseApproach(actor, tc.target, blocked(tc.occupied...))

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, geom.ValidIndex(got))
			assert.NotContains(t, tc.occupied, got)
			assert.Contains(t, ranges.MoveSet(geom, tc.actor, actor.Character.HikeRange), got)
		})
	}
}

func TestChooseApproach_BoxedIn(t *testing.T) {
	geom, err := board.New(8)
	require.NoError(t, err)
	ai := engine.NewAI(geom)
	actor := placed(t, 1, entities.ArchetypeUndead, 63)

	_, err = ai.ChooseApproach(actor, 0, blocked(27, 36, 45, 54, 55, 62))

	require.Error(t, err)
	assert.True(t, errors.IsAborted(err))
}

func TestChooseApproach_ForfeitsWhenOnlyRetreatIsFree(t *testing.T) {
	geom, err := board.New(8)
	require.NoError(t, err)
	ai := engine.NewAI(geom)
	actor := placed(t, 1, entities.ArchetypeDaemon, 36)

	// 37, 44 and 45 lead away from the target and are never tried
	_, err = ai.ChooseApproach(actor, 0, blocked(27, 28, 29, 35, 43))

	require.Error(t, err)
	assert.True(t, errors.IsAborted(err))
	assert.Equal(t, 36, errors.GetMeta(err)["actor_cell"])
	assert.Equal(t, 0, errors.GetMeta(err)["target_cell"])
}

func TestChooseApproach_FreeCandidateNeighbour(t *testing.T) {
	geom, err := board.New(8)
	require.NoError(t, err)
	ai := engine.NewAI(geom)
	actor := placed(t, 1, entities.ArchetypeSwordsman, 27)

	// 9 is the attacking cell two steps out; with it taken the search falls
	// back to one step along 18 and then the alternatives 26, 19, 34 and 20
	candidates := []int{18, 26, 19, 34, 20}
	for _, free := range candidates {
		taken := []int{9, 28, 35, 36}
		for _, n := range candidates {
			if n != free {
				taken = append(taken, n)
			}
		}

		got, err := ai.ChooseApproach(actor, 0, blocked(taken...))

		require.NoError(t, err, "free %d", free)
		assert.Equal(t, free, got)
	}
}

type fakeLineup struct {
	target entities.PositionedCharacter
	actor  entities.PositionedCharacter
}

func (f fakeLineup) SelectTarget() (entities.PositionedCharacter, error) { return f.target, nil }
func (f fakeLineup) SelectActor() (entities.PositionedCharacter, error)  { return f.actor, nil }

func TestDecide(t *testing.T) {
	geom, err := board.New(8)
	require.NoError(t, err)
	ai := engine.NewAI(geom)

	t.Run("attacks a target in reach", func(t *testing.T) {
		own := fakeLineup{target: placed(t, 1, entities.ArchetypeBowman, 10)}
		enemy := fakeLineup{actor: placed(t, 2, entities.ArchetypeVampire, 12)}

		d, err := ai.Decide(own, enemy, blocked(10, 12))
		require.NoError(t, err)
		assert.True(t, d.Attack)
		assert.Equal(t, 2, d.Actor.Character.ID)
		assert.Equal(t, 10, d.Target.Position)
	})

	t.Run("moves toward a target out of reach", func(t *testing.T) {
		own := fakeLineup{target: placed(t, 1, entities.ArchetypeBowman, 8)}
		enemy := fakeLineup{actor: placed(t, 2, entities.ArchetypeUndead, 14)}

		d, err := ai.Decide(own, enemy, blocked(8, 14))
		require.NoError(t, err)
		assert.False(t, d.Attack)
		assert.Equal(t, 10, d.Destination)
	})
}
