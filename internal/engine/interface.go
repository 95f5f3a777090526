// Package engine runs one game of tactical combat: the turn and round
// state machine, movement, attacks, the auto-attack commitment and the
// enemy AI.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/vadim010975/retro-tactics/internal/engine Renderer,Pacer,TeamGenerator

import (
	"context"

	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/roster"
)

// Renderer draws the board
type Renderer interface {
	// RedrawPositions replaces everything on the board with positions
	RedrawPositions(ctx context.Context, positions []entities.PositionedCharacter)
	// ShowDamage plays the damage effect on a cell and returns once it has finished
	ShowDamage(ctx context.Context, index int, amount float64) error
}

// Pacer spaces out the steps of a move sequence
type Pacer interface {
	// Wait blocks for one tick
	Wait(ctx context.Context) error
}

// TeamGenerator recruits characters and places them on start cells
type TeamGenerator interface {
	roster.Recruiter
	Place(team []*entities.Character, cells []int) ([]entities.PositionedCharacter, error)
	// Reserve keeps future ids above id
	Reserve(id int)
}
