package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/entities"
)

const journalCapacity = 50

var journalEvents = []string{
	engine.EventGameStarted,
	engine.EventGameRestored,
	engine.EventCharacterMoved,
	engine.EventAttackResolved,
	engine.EventCharacterKilled,
	engine.EventAutoAttackCommitted,
	engine.EventAutoAttackCleared,
	engine.EventAIForfeit,
	engine.EventRoundAdvanced,
	engine.EventGameWon,
	engine.EventGameLost,
}

// journal turns engine events into log lines and a short per-game message
// history
type journal struct {
	gameID string

	mu      sync.Mutex
	recent  []string
	pending []string
}

func newJournal(gameID string, bus events.EventBus) *journal {
	j := &journal{gameID: gameID}
	for _, eventType := range journalEvents {
		bus.SubscribeFunc(eventType, 0, j.handle)
	}
	return j
}

func (j *journal) handle(_ context.Context, e events.Event) error {
	msg := describe(e)

	slog.Info("Game event",
		"game_id", j.gameID,
		"type", e.Type(),
		"message", msg,
	)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.pending = append(j.pending, msg)
	j.recent = append(j.recent, msg)
	if over := len(j.recent) - journalCapacity; over > 0 {
		j.recent = append([]string(nil), j.recent[over:]...)
	}
	return nil
}

// drain returns the messages logged since the previous drain
func (j *journal) drain() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := j.pending
	j.pending = nil
	return out
}

func (j *journal) history() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.recent...)
}

func describe(e events.Event) string {
	source, target := name(e.Source()), name(e.Target())
	round, _ := e.Source().(engine.RoundMarker)

	switch e.Type() {
	case engine.EventGameStarted:
		return "Round 1 begins"
	case engine.EventGameRestored:
		return fmt.Sprintf("Game loaded at round %d", round.Round)
	case engine.EventCharacterMoved:
		return fmt.Sprintf("%s moved", source)
	case engine.EventAttackResolved:
		if c, ok := e.Target().(*entities.Character); ok {
			return fmt.Sprintf("%s hit %s, %g health left", source, target, c.Health)
		}
		return fmt.Sprintf("%s hit %s", source, target)
	case engine.EventCharacterKilled:
		return fmt.Sprintf("%s was killed by %s", target, source)
	case engine.EventAutoAttackCommitted:
		return fmt.Sprintf("%s will attack %s every turn", source, target)
	case engine.EventAutoAttackCleared:
		return "Auto-attack cleared"
	case engine.EventAIForfeit:
		return "Enemy has no move and forfeits the turn"
	case engine.EventRoundAdvanced:
		return fmt.Sprintf("Round %d begins", round.Round)
	case engine.EventGameWon:
		return fmt.Sprintf("Victory with a score of %g", round.Score)
	case engine.EventGameLost:
		return fmt.Sprintf("Defeat in round %d", round.Round)
	default:
		return e.Type()
	}
}

func name(entity core.Entity) string {
	switch v := entity.(type) {
	case nil:
		return ""
	case *entities.Character:
		return fmt.Sprintf("%s#%d", v.Archetype, v.ID)
	default:
		return v.GetType() + "#" + v.GetID()
	}
}
