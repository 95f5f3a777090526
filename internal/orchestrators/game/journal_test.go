package game

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/engine"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/testutils"
)

func TestJournalMessages(t *testing.T) {
	bowman := testutils.CreateTestCharacter(1, entities.ArchetypeBowman, 1)
	vampire := testutils.CreateTestCharacter(6, entities.ArchetypeVampire, 1)
	vampire.Health = 12.5
	round := engine.RoundMarker{Round: 3, Score: 88.5}

	testCases := []struct {
		eventType string
		source    core.Entity
		target    core.Entity
		want      string
	}{
		{engine.EventCharacterMoved, bowman, nil, "bowman#1 moved"},
		{engine.EventAttackResolved, bowman, vampire, "bowman#1 hit vampire#6, 12.5 health left"},
		{engine.EventCharacterKilled, bowman, vampire, "vampire#6 was killed by bowman#1"},
		{engine.EventAutoAttackCommitted, bowman, vampire, "bowman#1 will attack vampire#6 every turn"},
		{engine.EventAutoAttackCleared, round, nil, "Auto-attack cleared"},
		{engine.EventAIForfeit, round, nil, "Enemy has no move and forfeits the turn"},
		{engine.EventRoundAdvanced, round, nil, "Round 3 begins"},
		{engine.EventGameRestored, round, nil, "Game loaded at round 3"},
		{engine.EventGameWon, round, nil, "Victory with a score of 88.5"},
		{engine.EventGameLost, round, nil, "Defeat in round 3"},
	}

	bus := events.NewBus()
	j := newJournal("game_1", bus)

	for _, tc := range testCases {
		t.Run(tc.eventType, func(t *testing.T) {
			require.NoError(t, bus.Publish(context.Background(), events.NewGameEvent(tc.eventType, tc.source, tc.target)))
			assert.Equal(t, []string{tc.want}, j.drain())
		})
	}

	assert.Len(t, j.history(), len(testCases))
	assert.Empty(t, j.drain())
}

func TestJournalKeepsRecentMessages(t *testing.T) {
	bus := events.NewBus()
	j := newJournal("game_1", bus)

	for i := 1; i <= journalCapacity+5; i++ {
		ev := events.NewGameEvent(engine.EventRoundAdvanced, engine.RoundMarker{Round: i}, nil)
		require.NoError(t, bus.Publish(context.Background(), ev))
	}

	history := j.history()
	require.Len(t, history, journalCapacity)
	assert.Equal(t, "Round 6 begins", history[0])
	assert.Equal(t, "Round 55 begins", history[len(history)-1])
	assert.Len(t, j.drain(), journalCapacity+5)
}

func TestRecorderDrain(t *testing.T) {
	r := &recorder{}
	positions := []entities.PositionedCharacter{{Character: testutils.CreateTestCharacter(1, entities.ArchetypeBowman, 1), Position: 3}}

	r.RedrawPositions(context.Background(), positions)
	require.NoError(t, r.ShowDamage(context.Background(), 3, 7.5))

	frames := r.drain()
	require.Len(t, frames, 2)
	assert.Equal(t, Frame{Kind: FramePositions, Positions: positions}, frames[0])
	assert.Equal(t, Frame{Kind: FrameDamage, Index: 3, Amount: 7.5}, frames[1])
	assert.Empty(t, r.drain())
}
