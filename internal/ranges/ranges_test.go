package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/ranges"
)

func index(t *testing.T, g board.Geometry, row, col int) int {
	t.Helper()
	idx, ok := g.ToIndex(board.Coordinate{Row: row, Col: col})
	require.True(t, ok)
	return idx
}

func TestMoveSet_CornerRays(t *testing.T) {
	g, _ := board.New(8)
	r := ranges.Compute(g, index(t, g, 0, 0), 3, 1)

	assert.True(t, r.Move.Contains(index(t, g, 0, 3)))
	assert.True(t, r.Move.Contains(index(t, g, 3, 0)))
	assert.True(t, r.Move.Contains(index(t, g, 3, 3)))
	assert.False(t, r.Move.Contains(index(t, g, 4, 4)))
	assert.False(t, r.Move.Contains(index(t, g, 1, 2)), "knight offsets are not on a ray")
	assert.False(t, r.Move.Contains(index(t, g, 0, 0)), "origin is not a move target")
	assert.Len(t, r.Move, 9)
}

func TestMoveSet_CentreHasEightRays(t *testing.T) {
	g, _ := board.New(8)
	r := ranges.MoveSet(g, index(t, g, 3, 3), 1)

	assert.Equal(t, ranges.Cells{18, 19, 20, 26, 28, 34, 35, 36}, r)
}

func TestMoveSet_ClippedAtEdges(t *testing.T) {
	g, _ := board.New(8)
	r := ranges.MoveSet(g, index(t, g, 7, 6), 4)

	for _, idx := range r {
		assert.True(t, g.ValidIndex(idx))
	}
	assert.True(t, r.Contains(index(t, g, 7, 7)))
	assert.True(t, r.Contains(index(t, g, 3, 2)))
	assert.True(t, r.Contains(index(t, g, 6, 7)))
}

func TestAttackSet_ClippedBox(t *testing.T) {
	g, _ := board.New(8)

	corner := ranges.AttackSet(g, index(t, g, 0, 0), 1)
	assert.Equal(t, ranges.Cells{0, 1, 8, 9}, corner)

	centre := ranges.AttackSet(g, index(t, g, 3, 3), 1)
	assert.Len(t, centre, 9)
	assert.True(t, centre.Contains(index(t, g, 2, 2)))
	assert.True(t, centre.Contains(index(t, g, 4, 4)))

	wide := ranges.AttackSet(g, index(t, g, 0, 7), 4)
	assert.Len(t, wide, 25)
}

func TestHighlight(t *testing.T) {
	g, _ := board.New(8)
	r := ranges.Compute(g, index(t, g, 3, 3), 1, 1)

	markers := ranges.Highlight(g, r)

	borders := make(map[int]string)
	moves := 0
	for _, m := range markers {
		switch m.Kind {
		case ranges.MarkerMove:
			moves++
		case ranges.MarkerAttackBorder:
			borders[m.Index] = m.Border.String()
		}
	}

	assert.Equal(t, 8, moves)
	assert.Len(t, borders, 8, "every box cell except the centre is on an edge")
	assert.Equal(t, "top-left", borders[index(t, g, 2, 2)])
	assert.Equal(t, "top", borders[index(t, g, 2, 3)])
	assert.Equal(t, "bottom-right", borders[index(t, g, 4, 4)])
	assert.NotContains(t, borders, index(t, g, 3, 3))
}

func TestHighlight_SingleCellArea(t *testing.T) {
	g, _ := board.New(8)
	r := ranges.Compute(g, 0, 0, 0)

	markers := ranges.Highlight(g, r)
	require.Len(t, markers, 1)
	assert.Equal(t, "top-bottom-left-right", markers[0].Border.String())
}
