package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

func newCharacter(t *testing.T, a entities.Archetype, level int) *entities.Character {
	t.Helper()
	profile, err := entities.DefaultArchetypes().Lookup(a)
	require.NoError(t, err)
	c, err := entities.NewCharacter(1, profile, level)
	require.NoError(t, err)
	return c
}

func TestNewCharacter_LevelOne(t *testing.T) {
	c := newCharacter(t, entities.ArchetypeSwordsman, 1)

	assert.Equal(t, 60.0, c.Attack)
	assert.Equal(t, 10.0, c.Defence)
	assert.Equal(t, entities.BaseHealth, c.Health)
	assert.Equal(t, entities.BaseHealth, c.MaxHealth)
	assert.Equal(t, 4, c.HikeRange)
	assert.Equal(t, 1, c.AttackRange)
	assert.Equal(t, entities.SideOwn, c.Side)
	assert.Equal(t, "swordsman", c.GetType())
	assert.Equal(t, "1", c.GetID())
}

func TestNewCharacter_ScalesPerLevel(t *testing.T) {
	c := newCharacter(t, entities.ArchetypeBowman, 3)

	assert.Equal(t, 3, c.Level)
	assert.Equal(t, 36.0, c.Attack)
	assert.Equal(t, 36.0, c.Defence)
	assert.Equal(t, 72.0, c.MaxHealth)
	assert.Equal(t, c.MaxHealth, c.Health)
}

func TestNewCharacter_InvalidLevel(t *testing.T) {
	profile, _ := entities.DefaultArchetypes().Lookup(entities.ArchetypeDaemon)

	_, err := entities.NewCharacter(1, profile, 5)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = entities.NewCharacter(1, profile, 0)
	assert.Error(t, err)
}

func TestLevelUp_HealsAndCaps(t *testing.T) {
	c := newCharacter(t, entities.ArchetypeUndead, 4)
	attack := c.Attack
	c.Health = 3

	c.LevelUp()

	assert.Equal(t, entities.MaxLevel, c.Level)
	assert.Equal(t, attack, c.Attack, "stats stop growing at the max level")
	assert.Equal(t, c.MaxHealth, c.Health)
}

func TestTakeDamage(t *testing.T) {
	testCases := []struct {
		name       string
		attack     float64
		defence    float64
		health     float64
		wantDealt  float64
		wantHealth float64
		wantKilled bool
	}{
		{name: "attack above defence", attack: 60, defence: 10, health: 50, wantDealt: 50, wantHealth: 0, wantKilled: true},
		{name: "damage floor", attack: 10, defence: 1000, health: 50, wantDealt: 1, wantHealth: 49},
		{name: "floor wins when close", attack: 25, defence: 24, health: 50, wantDealt: 2.5, wantHealth: 47.5},
		{name: "clamped at zero", attack: 100, defence: 0, health: 30, wantDealt: 30, wantHealth: 0, wantKilled: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &entities.Character{Defence: tc.defence, Health: tc.health, MaxHealth: 50}

			dealt, killed := c.TakeDamage(tc.attack)

			assert.InDelta(t, tc.wantDealt, dealt, 1e-9)
			assert.InDelta(t, tc.wantHealth, c.Health, 1e-9)
			assert.Equal(t, tc.wantKilled, killed)
			assert.GreaterOrEqual(t, c.Health, 0.0)
		})
	}
}

func TestInfo(t *testing.T) {
	c := newCharacter(t, entities.ArchetypeMagician, 1)
	assert.Equal(t, "\U0001F3961 ⚔10 \U0001F6E140 ❤50", c.Info())
}

func TestClone_IsIndependent(t *testing.T) {
	c := newCharacter(t, entities.ArchetypeVampire, 1)
	clone := c.Clone()
	clone.Health = 1

	assert.Equal(t, entities.BaseHealth, c.Health)
}
