package game

import (
	"time"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/entities"
)

// FrameKind tells a client how to animate a frame
type FrameKind string

// Frame kinds
const (
	FramePositions FrameKind = "positions"
	FrameDamage    FrameKind = "damage"
)

// Frame is one render call made by the engine while it handled a request.
// Clients replay frames in order to animate moves and hits.
type Frame struct {
	Kind      FrameKind                      `json:"kind"`
	Positions []entities.PositionedCharacter `json:"positions,omitempty"`
	Index     int                            `json:"index"`
	Amount    float64                        `json:"amount"`
}

// Outcome is what a state-changing request produced
type Outcome struct {
	View     *engine.View
	Frames   []Frame
	Messages []string
}

// NewGameInput defines the request for starting a game
type NewGameInput struct {
	// GameID restarts an existing game when set; a fresh ID is generated
	// otherwise
	GameID string
}

// NewGameOutput defines the response for starting a game
type NewGameOutput struct {
	GameID string
	Outcome
}

// ClickInput defines the request for a primary activation of a cell
type ClickInput struct {
	GameID string
	Index  int
}

// ClickOutput defines the response for a click
type ClickOutput struct {
	Action engine.Action
	Outcome
}

// CommitInput defines the request for committing an auto-attack on a cell
type CommitInput struct {
	GameID string
	Index  int
}

// CommitOutput defines the response for a commit
type CommitOutput struct {
	Outcome
}

// HoverInput defines the request for cell enter and leave
type HoverInput struct {
	GameID string
	Index  int
}

// HoverOutput defines the response for cell enter and leave
type HoverOutput struct {
	Hover engine.Hover
}

// SaveInput defines the request for saving a game
type SaveInput struct {
	GameID string
}

// SaveOutput defines the response for saving a game
type SaveOutput struct {
	SavedAt time.Time
}

// LoadInput defines the request for loading a saved game
type LoadInput struct {
	GameID string
}

// LoadOutput defines the response for loading a saved game
type LoadOutput struct {
	SavedAt time.Time
	Outcome
}

// GetStateInput defines the request for reading a game
type GetStateInput struct {
	GameID string
}

// GetStateOutput defines the response for reading a game
type GetStateOutput struct {
	View *engine.View
	// Messages holds the most recent log lines, oldest first
	Messages []string
}
