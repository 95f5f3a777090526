package engine

import (
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

// Round limits
const (
	FirstRound = 1
	FinalRound = 4
	// InitialMaxLevel caps the level of characters generated for a new game
	InitialMaxLevel = 2
)

// Phase is a state of the combat state machine
type Phase int

// Phases
const (
	PhaseSelecting Phase = iota
	PhaseMoving
	PhaseAttacking
	PhaseTurnResolved
	PhaseRoundEnd
	PhaseRoundAdvance
	PhaseGameWon
	PhaseGameLost
)

var phaseNames = map[Phase]string{
	PhaseSelecting:    "selecting",
	PhaseMoving:       "moving",
	PhaseAttacking:    "attacking",
	PhaseTurnResolved: "turn_resolved",
	PhaseRoundEnd:     "round_end",
	PhaseRoundAdvance: "round_advance",
	PhaseGameWon:      "game_won",
	PhaseGameLost:     "game_lost",
}

// String returns the phase name
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Terminal reports whether the game is over
func (p Phase) Terminal() bool {
	return p == PhaseGameWon || p == PhaseGameLost
}

// Selecting may go straight to TurnResolved when the AI forfeits its turn.
var transitions = map[Phase][]Phase{
	PhaseSelecting:    {PhaseMoving, PhaseAttacking, PhaseTurnResolved},
	PhaseMoving:       {PhaseTurnResolved},
	PhaseAttacking:    {PhaseTurnResolved},
	PhaseTurnResolved: {PhaseSelecting, PhaseRoundEnd},
	PhaseRoundEnd:     {PhaseRoundAdvance, PhaseGameWon, PhaseGameLost},
	PhaseRoundAdvance: {PhaseSelecting},
}

// AutoAttack is an attack committed by secondary activation, executed on
// every own turn while it stays legal
type AutoAttack struct {
	TargetIndex   int `json:"target_index"`
	AttackerIndex int `json:"attacker_index"`
}

// EnemyStrike records the enemy's most recent attack
type EnemyStrike struct {
	Index  int  `json:"index"`
	Killed bool `json:"killed"`
}

// State is the round, turn and score bookkeeping of one game
type State struct {
	Round             int           `json:"round"`
	ActivePlayer      entities.Side `json:"active_player"`
	Score             float64       `json:"score"`
	MaxScore          float64       `json:"max_score"`
	Theme             Theme         `json:"theme"`
	Phase             Phase         `json:"phase"`
	PendingAutoAttack *AutoAttack   `json:"pending_auto_attack,omitempty"`
	LastEnemyTarget   *EnemyStrike  `json:"last_enemy_target,omitempty"`
}

// transition moves the machine to the next phase or fails with
// FailedPrecondition when the edge does not exist
func (s *State) transition(to Phase) error {
	for _, next := range transitions[s.Phase] {
		if next == to {
			s.Phase = to
			return nil
		}
	}
	return errors.FailedPreconditionf("cannot go from %s to %s", s.Phase, to).
		WithMeta("phase", s.Phase.String())
}

// flip hands the turn to the other side
func (s *State) flip() {
	s.ActivePlayer = s.ActivePlayer.Opponent()
}

// clearAutoAttack drops the pending commitment and the strike it watches
func (s *State) clearAutoAttack() {
	s.PendingAutoAttack = nil
	s.LastEnemyTarget = nil
}

// awaitingOwnInput reports whether a player action is accepted now
func (s *State) awaitingOwnInput() error {
	switch {
	case s.Phase.Terminal():
		return errors.FailedPreconditionf("game is over: %s", s.Phase)
	case s.ActivePlayer != entities.SideOwn:
		return errors.FailedPrecondition("it is not your turn")
	case s.Phase != PhaseSelecting:
		return errors.FailedPreconditionf("an action is in progress: %s", s.Phase)
	}
	return nil
}
