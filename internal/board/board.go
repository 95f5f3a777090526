// Package board maps cell indexes of a square N×N board to row/column
// coordinates. Every other package goes through Geometry for grid
// arithmetic.
package board

import (
	"github.com/vadim010975/retro-tactics/internal/errors"
)

// DefaultSize is the side length of the standard board
const DefaultSize = 8

// Coordinate is a 0-indexed (row, col) position on the board
type Coordinate struct {
	Row int
	Col int
}

// Add offsets the coordinate by a direction scaled by steps
func (c Coordinate) Add(d Direction, steps int) Coordinate {
	return Coordinate{Row: c.Row + d.Vertical*steps, Col: c.Col + d.Horizontal*steps}
}

// Direction is a signed (vertical, horizontal) step; each component is -1, 0 or 1
type Direction struct {
	Vertical   int
	Horizontal int
}

// IsZero reports whether the direction does not move at all
func (d Direction) IsZero() bool {
	return d.Vertical == 0 && d.Horizontal == 0
}

// Rays are the eight straight and diagonal directions
var Rays = []Direction{
	{Vertical: -1, Horizontal: 0},
	{Vertical: 1, Horizontal: 0},
	{Vertical: 0, Horizontal: -1},
	{Vertical: 0, Horizontal: 1},
	{Vertical: -1, Horizontal: -1},
	{Vertical: -1, Horizontal: 1},
	{Vertical: 1, Horizontal: -1},
	{Vertical: 1, Horizontal: 1},
}

// Geometry is the stateless index/coordinate mapping for a fixed board size
type Geometry struct {
	size int
}

// New creates the geometry for a size×size board
func New(size int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, errors.InvalidArgumentf("board size must be positive, got %d", size)
	}
	return Geometry{size: size}, nil
}

// Size returns the side length of the board
func (g Geometry) Size() int {
	return g.size
}

// Cells returns the number of cells on the board
func (g Geometry) Cells() int {
	return g.size * g.size
}

// Contains reports whether the coordinate lies on the board
func (g Geometry) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// ValidIndex reports whether index names a cell on the board
func (g Geometry) ValidIndex(index int) bool {
	return index >= 0 && index < g.Cells()
}

// ToCoordinate converts a cell index to its coordinate
func (g Geometry) ToCoordinate(index int) Coordinate {
	return Coordinate{Row: index / g.size, Col: index % g.size}
}

// ToIndex converts a coordinate to its cell index. ok is false when the
// coordinate is off the board.
func (g Geometry) ToIndex(c Coordinate) (index int, ok bool) {
	if !g.Contains(c) {
		return 0, false
	}
	return c.Row*g.size + c.Col, true
}

// DirectionTo returns the unit direction from one coordinate toward another
func DirectionTo(from, to Coordinate) Direction {
	return Direction{Vertical: sign(to.Row - from.Row), Horizontal: sign(to.Col - from.Col)}
}

// Path returns the cells visited when walking from one cell to another in
// king steps, excluding the start and ending on the destination. Each axis
// advances toward the destination until it is aligned, so the path has
// Chebyshev-distance length.
func (g Geometry) Path(from, to int) []int {
	cur := g.ToCoordinate(from)
	dst := g.ToCoordinate(to)

	var path []int
	for cur != dst {
		cur = cur.Add(DirectionTo(cur, dst), 1)
		idx, _ := g.ToIndex(cur)
		path = append(path, idx)
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
