package testutils

import (
	"time"

	"github.com/vadim010975/retro-tactics/internal/entities"
)

// TestGameID is the game id used by fixtures
const TestGameID = "game_test_001"

// TestSavedAt is the save time stamped on fixture snapshots
var TestSavedAt = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCharacter creates a character of archetype a at level with
// the default stat table
func CreateTestCharacter(id int, a entities.Archetype, level int) *entities.Character {
	profile, err := entities.DefaultArchetypes().Lookup(a)
	if err != nil {
		panic(err)
	}
	c, err := entities.NewCharacter(id, profile, level)
	if err != nil {
		panic(err)
	}
	return c
}

// CreateTestSnapshot creates a round-two snapshot with two characters per
// side on their start columns
func CreateTestSnapshot() *entities.Snapshot {
	bowman := CreateTestCharacter(1, entities.ArchetypeBowman, 2)
	bowman.Health = 31.5

	return &entities.Snapshot{
		Round:    2,
		Score:    57.5,
		MaxScore: 120,
		Theme:    "desert",
		OwnRoster: []entities.PositionedCharacter{
			{Character: bowman, Position: 8},
			{Character: CreateTestCharacter(2, entities.ArchetypeMagician, 1), Position: 17},
		},
		EnemyRoster: []entities.PositionedCharacter{
			{Character: CreateTestCharacter(5, entities.ArchetypeUndead, 2), Position: 14},
			{Character: CreateTestCharacter(6, entities.ArchetypeVampire, 1), Position: 31},
		},
		SavedAt: TestSavedAt,
	}
}
