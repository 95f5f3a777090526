package ranges

import (
	"strings"

	"github.com/vadim010975/retro-tactics/internal/board"
)

// Side is a bit set of the edges of an attack area a cell lies on
type Side uint8

// Edges of an attack area
const (
	SideTop Side = 1 << iota
	SideRight
	SideBottom
	SideLeft
)

// String renders the side the way the board stylesheet names it, vertical
// edges first: "top", "bottom-left", "top-bottom-left-right".
func (s Side) String() string {
	var parts []string
	for _, e := range []struct {
		side Side
		name string
	}{{SideTop, "top"}, {SideBottom, "bottom"}, {SideLeft, "left"}, {SideRight, "right"}} {
		if s&e.side != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "-")
}

// MarshalText encodes the side by name
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarkerKind says how a highlighted cell should be drawn
type MarkerKind int

// Marker kinds
const (
	MarkerMove MarkerKind = iota
	MarkerAttackBorder
)

// String returns the marker name
func (k MarkerKind) String() string {
	if k == MarkerMove {
		return "move"
	}
	return "border"
}

// MarshalText encodes the kind by name
func (k MarkerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Marker is one cell that needs a visual marker
type Marker struct {
	Index  int        `json:"index"`
	Kind   MarkerKind `json:"kind"`
	Border Side       `json:"border,omitempty"`
}

// Highlight maps a unit's ranges to the markers the board draws while the
// unit is hovered: every move cell, and every attack cell on the edge of
// the attack area with the edges it lies on.
func Highlight(g board.Geometry, r Ranges) []Marker {
	markers := make([]Marker, 0, len(r.Move)+len(r.Attack))
	for _, idx := range r.Move {
		markers = append(markers, Marker{Index: idx, Kind: MarkerMove})
	}

	edges := []struct {
		side Side
		dir  board.Direction
	}{
		{SideTop, board.Direction{Vertical: -1}},
		{SideRight, board.Direction{Horizontal: 1}},
		{SideBottom, board.Direction{Vertical: 1}},
		{SideLeft, board.Direction{Horizontal: -1}},
	}

	for _, idx := range r.Attack {
		c := g.ToCoordinate(idx)
		var side Side
		for _, e := range edges {
			neighbour, ok := g.ToIndex(c.Add(e.dir, 1))
			if !ok || !r.Attack.Contains(neighbour) {
				side |= e.side
			}
		}
		if side != 0 {
			markers = append(markers, Marker{Index: idx, Kind: MarkerAttackBorder, Border: side})
		}
	}
	return markers
}
