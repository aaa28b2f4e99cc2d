package combat_test

import (
	"testing"

	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// newDummy accepts both *testing.T and *rapid.T.
func newDummy(t require.TestingT) *combat.Combatant {
	d, err := combat.NewCombatant("Training Dummy", 100, 5, 5)
	require.NoError(t, err)
	return d
}

func TestNewCombatant(t *testing.T) {
	d := newDummy(t)
	assert.Equal(t, "Training Dummy", d.Name)
	assert.Equal(t, "Training Dummy", d.Describe())
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, 100, d.Health())
	assert.Equal(t, 100, d.MaxHealth())
	assert.Equal(t, 5, d.Strength())
	assert.Equal(t, 5, d.Magic())
	assert.True(t, d.IsAlive())
}

func TestNewCombatant_UniqueIDs(t *testing.T) {
	a := newDummy(t)
	b := newDummy(t)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewCombatant_RejectsInvalid(t *testing.T) {
	_, err := combat.NewCombatant("", 10, 1, 1)
	assert.Error(t, err)
	_, err = combat.NewCombatant("Ghost", 0, 1, 1)
	assert.Error(t, err)
	_, err = combat.NewCombatant("Ghost", -5, 1, 1)
	assert.Error(t, err)
}

func TestCombatant_ApplyDamage(t *testing.T) {
	d := newDummy(t)
	assert.Equal(t, 75, d.ApplyDamage(25))
	assert.Equal(t, 75, d.Health())
	assert.Equal(t, 0, d.ApplyDamage(200))
	assert.Equal(t, 0, d.Health()) // floors at 0
	assert.False(t, d.IsAlive())
}

// Partial damage must be committed even when health stays positive.
func TestCombatant_ApplyDamage_PartialDamageCommitted(t *testing.T) {
	d := newDummy(t)
	d.ApplyDamage(1)
	assert.Equal(t, 99, d.Health())
	d.ApplyDamage(98)
	assert.Equal(t, 1, d.Health())
	assert.True(t, d.IsAlive())
}

func TestCombatant_ApplyDamage_LethalFloorsAtZero(t *testing.T) {
	d := newDummy(t)
	d.ApplyDamage(200)
	assert.Equal(t, 0, d.Health())
	d.ApplyDamage(200)
	assert.Equal(t, 0, d.Health())
}

func TestCombatant_ApplyDamage_NegativeIsNoop(t *testing.T) {
	d := newDummy(t)
	d.ApplyDamage(30)
	assert.Equal(t, 70, d.ApplyDamage(-50))
	assert.Equal(t, 70, d.Health())
}

func TestCombatant_DisplayStats(t *testing.T) {
	d := newDummy(t)
	d.ApplyDamage(26)
	assert.Equal(t, "Training Dummy - Health: 74/100, Strength: 5, Magic: 5", d.DisplayStats())
}

func TestCombatant_Property_HealthWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 500).Draw(rt, "max_hp")
		c, err := combat.NewCombatant("X", maxHP, 1, 1)
		require.NoError(rt, err)
		hits := rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(rt, "hits")
		for _, h := range hits {
			c.ApplyDamage(h)
			assert.GreaterOrEqual(rt, c.Health(), 0)
			assert.LessOrEqual(rt, c.Health(), c.MaxHealth())
			assert.Equal(rt, maxHP, c.MaxHealth())
			assert.Equal(rt, c.Health() > 0, c.IsAlive())
		}
	})
}

func TestCombatant_Property_NegativeDamageMatchesZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 500).Draw(rt, "max_hp")
		pre := rapid.IntRange(0, 600).Draw(rt, "pre")
		neg := rapid.IntRange(-1000, -1).Draw(rt, "neg")

		a, err := combat.NewCombatant("A", maxHP, 1, 1)
		require.NoError(rt, err)
		b, err := combat.NewCombatant("B", maxHP, 1, 1)
		require.NoError(rt, err)
		a.ApplyDamage(pre)
		b.ApplyDamage(pre)

		assert.Equal(rt, b.ApplyDamage(0), a.ApplyDamage(neg))
	})
}

func TestCombatant_Property_DamageSubtracts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 500).Draw(rt, "max_hp")
		dmg := rapid.IntRange(0, 1000).Draw(rt, "dmg")
		c, err := combat.NewCombatant("X", maxHP, 1, 1)
		require.NoError(rt, err)
		assert.Equal(rt, max(0, maxHP-dmg), c.ApplyDamage(dmg))
	})
}
