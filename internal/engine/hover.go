package engine

import (
	"github.com/vadim010975/retro-tactics/internal/ranges"
)

// Cursor is the pointer shape shown over a cell
type Cursor string

// Cursors
const (
	CursorAuto       Cursor = "auto"
	CursorPointer    Cursor = "pointer"
	CursorCrosshair  Cursor = "crosshair"
	CursorNotAllowed Cursor = "not-allowed"
)

// CellColor is the highlight of the hovered cell
type CellColor string

// Cell colors
const (
	CellColorNone  CellColor = ""
	CellColorGreen CellColor = "green"
	CellColorRed   CellColor = "red"
)

// Hover is what the board shows while the pointer is over a cell
type Hover struct {
	Index   int             `json:"index"`
	Tooltip string          `json:"tooltip,omitempty"`
	Cursor  Cursor          `json:"cursor"`
	Color   CellColor       `json:"color,omitempty"`
	Markers []ranges.Marker `json:"markers,omitempty"`
}

// Enter describes the hovered cell. Characters get a tooltip; an own
// character also shows its move and attack borders. With a character
// selected, a legal move cell is green and a legal attack target red.
// Hovering is ignored while the enemy acts or after the game ended.
func (e *Engine) Enter(index int) (Hover, error) {
	if e.own == nil {
		return Hover{}, errNoGame()
	}
	if !e.geom.ValidIndex(index) {
		return Hover{}, invalidSelection(index)
	}

	h := Hover{Index: index, Cursor: CursorAuto}
	if e.state.awaitingOwnInput() != nil {
		return h, nil
	}
	actor, selected := e.selection()

	if c, ok := e.own.At(index); ok {
		h.Tooltip = c.Info()
		h.Markers = ranges.Highlight(e.geom, ranges.Compute(e.geom, index, c.HikeRange, c.AttackRange))
		if c.ID != e.selected {
			h.Cursor = CursorPointer
		}
	} else if c, ok := e.enemy.At(index); ok {
		h.Tooltip = c.Info()
		if selected {
			h.Cursor = CursorNotAllowed
			if e.rangesOf(actor).Attack.Contains(index) {
				h.Cursor, h.Color = CursorCrosshair, CellColorRed
			}
		}
	} else if selected {
		h.Cursor = CursorNotAllowed
		if e.rangesOf(actor).Move.Contains(index) {
			h.Cursor, h.Color = CursorPointer, CellColorGreen
		}
	}

	e.hover = &h
	return h, nil
}

// Leave clears whatever Enter showed for index
func (e *Engine) Leave(index int) (Hover, error) {
	if e.own == nil {
		return Hover{}, errNoGame()
	}
	if !e.geom.ValidIndex(index) {
		return Hover{}, invalidSelection(index)
	}
	if e.hover != nil && e.hover.Index == index {
		e.hover = nil
	}
	return Hover{Index: index, Cursor: CursorAuto}, nil
}
