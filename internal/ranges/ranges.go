// Package ranges computes the cells a unit can move to and strike from a
// given board position.
package ranges

import (
	"sort"

	"github.com/vadim010975/retro-tactics/internal/board"
)

// Cells is an ascending set of cell indexes
type Cells []int

// Contains reports whether index is part of the set
func (c Cells) Contains(index int) bool {
	i := sort.SearchInts(c, index)
	return i < len(c) && c[i] == index
}

// Ranges holds the move set and attack set computed for one origin
type Ranges struct {
	Move   Cells
	Attack Cells
}

// Compute returns the move and attack sets of a unit standing on origin.
//
// The move set is every cell reachable along the eight straight and
// diagonal rays within hikeRange steps. Occupancy along a ray is not
// checked; only the destination is validated when a move is made.
//
// The attack set is the square of side 2*attackRange+1 centred on origin,
// clipped to the board. It includes the origin itself.
func Compute(g board.Geometry, origin, hikeRange, attackRange int) Ranges {
	return Ranges{
		Move:   MoveSet(g, origin, hikeRange),
		Attack: AttackSet(g, origin, attackRange),
	}
}

// MoveSet returns the ray reach of a unit on origin
func MoveSet(g board.Geometry, origin, hikeRange int) Cells {
	start := g.ToCoordinate(origin)

	var cells Cells
	for _, ray := range board.Rays {
		for step := 1; step <= hikeRange; step++ {
			idx, ok := g.ToIndex(start.Add(ray, step))
			if !ok {
				break
			}
			cells = append(cells, idx)
		}
	}
	sort.Ints(cells)
	return cells
}

// AttackSet returns the clipped Chebyshev box around origin
func AttackSet(g board.Geometry, origin, attackRange int) Cells {
	c := g.ToCoordinate(origin)
	top := max(c.Row-attackRange, 0)
	left := max(c.Col-attackRange, 0)
	bottom := min(c.Row+attackRange, g.Size()-1)
	right := min(c.Col+attackRange, g.Size()-1)

	var cells Cells
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			idx, _ := g.ToIndex(board.Coordinate{Row: row, Col: col})
			cells = append(cells, idx)
		}
	}
	return cells
}
