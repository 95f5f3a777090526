package entities

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

// Level and damage rules shared by every archetype
const (
	MinLevel        = 1
	MaxLevel        = 4
	BaseHealth      = 50.0
	LevelMultiplier = 1.2
	// DamageFloor is the share of the raw attack that always gets through
	DamageFloor = 0.1
)

// Character is a unit on the board. Stats derive from the archetype
// profile and the level.
type Character struct {
	ID          int       `json:"id"`
	Archetype   Archetype `json:"archetype"`
	Side        Side      `json:"side"`
	Level       int       `json:"level"`
	Attack      float64   `json:"attack"`
	Defence     float64   `json:"defence"`
	Health      float64   `json:"health"`
	MaxHealth   float64   `json:"max_health"`
	HikeRange   int       `json:"hike_range"`
	AttackRange int       `json:"attack_range"`
}

var _ core.Entity = (*Character)(nil)

// NewCharacter creates a character of the given profile at level, fully healed
func NewCharacter(id int, profile Profile, level int) (*Character, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, errors.InvalidArgumentf("level must be between %d and %d, got %d", MinLevel, MaxLevel, level)
	}

	c := &Character{
		ID:          id,
		Archetype:   profile.Archetype,
		Side:        profile.Side,
		Level:       MinLevel,
		Attack:      profile.Attack,
		Defence:     profile.Defence,
		Health:      BaseHealth,
		MaxHealth:   BaseHealth,
		HikeRange:   profile.HikeRange,
		AttackRange: profile.AttackRange,
	}
	for c.Level < level {
		c.LevelUp()
	}
	return c, nil
}

// GetID returns the character id as a string for rpg-toolkit
func (c *Character) GetID() string {
	return strconv.Itoa(c.ID)
}

// GetType returns the archetype name
func (c *Character) GetType() string {
	return string(c.Archetype)
}

// LevelUp raises the level by one (capped at MaxLevel), scales attack,
// defence and max health, and restores health fully.
func (c *Character) LevelUp() {
	if c.Level < MaxLevel {
		c.Level++
		c.Attack = scale(c.Attack)
		c.Defence = scale(c.Defence)
		c.MaxHealth = scale(c.MaxHealth)
	}
	c.Health = c.MaxHealth
}

// Alive reports whether the character still has health left
func (c *Character) Alive() bool {
	return c.Health > 0
}

// TakeDamage applies a raw attack against the character's defence. It
// returns the health actually removed and whether the hit was lethal.
// Health never drops below zero.
func (c *Character) TakeDamage(rawAttack float64) (dealt float64, killed bool) {
	before := c.Health
	c.Health = math.Max(0, c.Health-EffectiveDamage(rawAttack, c.Defence))
	return before - c.Health, c.Health <= 0
}

// Info is the tooltip text shown when the character is hovered
func (c *Character) Info() string {
	return fmt.Sprintf("\U0001F396%d ⚔%s \U0001F6E1%s ❤%s",
		c.Level, formatStat(c.Attack), formatStat(c.Defence), formatStat(c.Health))
}

// Clone returns an independent copy
func (c *Character) Clone() *Character {
	clone := *c
	return &clone
}

// EffectiveDamage is attack minus defence, but never less than DamageFloor
// of the attack.
func EffectiveDamage(attack, defence float64) float64 {
	return math.Max(attack-defence, attack*DamageFloor)
}

func scale(v float64) float64 {
	return math.Round(v*LevelMultiplier*100) / 100
}

func formatStat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
