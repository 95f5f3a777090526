package engine

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the game's bus. Character events carry the
// acting character as source and the affected one as target; round and game
// events carry a RoundMarker as source.
const (
	EventGameStarted         = "tactics.game.started"
	EventGameRestored        = "tactics.game.restored"
	EventCharacterMoved      = "tactics.character.moved"
	EventAttackResolved      = "tactics.attack.resolved"
	EventCharacterKilled     = "tactics.character.killed"
	EventAutoAttackCommitted = "tactics.auto_attack.committed"
	EventAutoAttackCleared   = "tactics.auto_attack.cleared"
	EventAIForfeit           = "tactics.ai.forfeit"
	EventRoundAdvanced       = "tactics.round.advanced"
	EventGameWon             = "tactics.game.won"
	EventGameLost            = "tactics.game.lost"
)

// RoundMarker identifies a round and the score at the time of the event
type RoundMarker struct {
	Round int
	Score float64
}

var _ core.Entity = RoundMarker{}

// GetID returns the round number
func (r RoundMarker) GetID() string {
	return strconv.Itoa(r.Round)
}

// GetType returns "round"
func (r RoundMarker) GetType() string {
	return "round"
}

func (e *Engine) marker() RoundMarker {
	return RoundMarker{Round: e.state.Round, Score: e.state.Score}
}

// publish never fails the action that triggered it
func (e *Engine) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := e.bus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish game event",
			"type", eventType,
			"error", err)
	}
}
