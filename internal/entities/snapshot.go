package entities

import "time"

// PositionedCharacter is a character together with its cell index
type PositionedCharacter struct {
	Character *Character `json:"character"`
	Position  int        `json:"position"`
}

// Snapshot is the saved form of a game. It is the contract between the
// engine and the persistence layer.
type Snapshot struct {
	Round       int                   `json:"round"`
	Score       float64               `json:"score"`
	MaxScore    float64               `json:"max_score"`
	Theme       string                `json:"theme"`
	OwnRoster   []PositionedCharacter `json:"own_roster"`
	EnemyRoster []PositionedCharacter `json:"enemy_roster"`
	SavedAt     time.Time             `json:"saved_at"`
}
