package game

import (
	"context"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/entities"
)

// recorder is the engine Renderer of a server-side game. It buffers render
// calls until the running command drains them. Only the session goroutine
// touches it.
type recorder struct {
	frames []Frame
}

var _ engine.Renderer = (*recorder)(nil)

func (r *recorder) RedrawPositions(_ context.Context, positions []entities.PositionedCharacter) {
	r.frames = append(r.frames, Frame{Kind: FramePositions, Positions: positions})
}

func (r *recorder) ShowDamage(_ context.Context, index int, amount float64) error {
	r.frames = append(r.frames, Frame{Kind: FrameDamage, Index: index, Amount: amount})
	return nil
}

func (r *recorder) drain() []Frame {
	out := r.frames
	r.frames = nil
	return out
}
