package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

func TestDivineSmiteDice(t *testing.T) {
	assert.Equal(t, 2, features.DivineSmiteDice(1))
	assert.Equal(t, 4, features.DivineSmiteDice(3))
	assert.Equal(t, 5, features.DivineSmiteDice(4))
	assert.Equal(t, 5, features.DivineSmiteDice(9))

	m, ok := features.Compute(rulebook.MechanicDivineSmite, features.Context{Class: "paladin", Level: 5})
	require.True(t, ok)
	assert.Equal(t, "2d8", m.Damage)
	assert.Equal(t, "4d8", m.Scaling[3])
	assert.Equal(t, "spell:1", m.ResourceKey)
}

func TestSneakAttack(t *testing.T) {
	testCases := map[int]string{1: "1d6", 2: "1d6", 3: "2d6", 10: "5d6", 19: "10d6", 20: "10d6"}

	for level, expected := range testCases {
		m, ok := features.Compute(rulebook.MechanicSneakAttack, features.Context{Class: "rogue", Level: level})
		require.True(t, ok)
		assert.Equal(t, expected, m.Damage, "level %d", level)
		assert.Empty(t, m.ResourceKey)
	}
}

func TestMartialArtsDie(t *testing.T) {
	testCases := map[int]int{1: 4, 4: 4, 5: 6, 10: 6, 11: 8, 16: 8, 17: 10, 20: 10}
	for level, expected := range testCases {
		assert.Equal(t, expected, features.MartialArtsDie(level), "level %d", level)
	}

	m, _ := features.Compute(rulebook.MechanicMartialArts, features.Context{
		Class: "monk", Level: 5,
		Modifiers: map[shared.Attribute]int{shared.AttributeStrength: 1, shared.AttributeDexterity: 3},
	})
	assert.Equal(t, "1d6+3", m.Damage)
	assert.Equal(t, shared.TimingBonusAction, m.Timing)
}

func TestSaveDCTemplates(t *testing.T) {
	mods := map[shared.Attribute]int{
		shared.AttributeConstitution: 2,
		shared.AttributeWisdom:       3,
		shared.AttributeCharisma:     4,
	}

	breath, _ := features.Compute(rulebook.MechanicBreathWeapon, features.Context{Race: "dragonborn", Level: 6, Modifiers: mods})
	assert.Equal(t, "3d6", breath.Damage)
	assert.Equal(t, 8+3+2, breath.SaveDC)
	assert.Equal(t, shared.AttributeDexterity, breath.SaveAbility)

	turn, _ := features.Compute(rulebook.MechanicChannelDivinity, features.Context{Class: "cleric", Level: 2, Modifiers: mods})
	assert.Equal(t, 8+2+3, turn.SaveDC)
	assert.Equal(t, rulebook.PoolChannelDivinity, turn.ResourceKey)

	sacred, _ := features.Compute(rulebook.MechanicChannelDivinity, features.Context{Class: "paladin", Level: 3, Modifiers: mods})
	assert.Equal(t, 8+2+4, sacred.SaveDC)

	rebuke, _ := features.Compute(rulebook.MechanicHellishRebuke, features.Context{Race: "tiefling", Level: 3, Modifiers: mods})
	assert.Equal(t, "3d10", rebuke.Damage)
	assert.Equal(t, 14, rebuke.SaveDC)
}

func TestSaveDCOnlyWithSaveAbility(t *testing.T) {
	mods := map[shared.Attribute]int{shared.AttributeDexterity: 3, shared.AttributeWisdom: 2}

	flurry, ok := features.Compute(rulebook.MechanicFlurryOfBlows, features.Context{Class: "monk", Level: 5, Modifiers: mods})
	assert.True(t, ok)
	assert.Equal(t, "1d6+3", flurry.Damage)
	assert.Zero(t, flurry.SaveDC)
	assert.Equal(t, shared.AttributeNone, flurry.SaveAbility)

	for _, mechanic := range []rulebook.Mechanic{
		rulebook.MechanicMartialArts,
		rulebook.MechanicSecondWind,
		rulebook.MechanicLayOnHands,
	} {
		m, _ := features.Compute(mechanic, features.Context{Level: 5, Modifiers: mods})
		if m.SaveDC > 0 {
			assert.NotEqual(t, shared.AttributeNone, m.SaveAbility, mechanic)
		}
	}
}

func TestHealingTemplates(t *testing.T) {
	sw, _ := features.Compute(rulebook.MechanicSecondWind, features.Context{Class: "fighter", Level: 5})
	assert.Equal(t, "1d10+5", sw.Healing)

	loh, _ := features.Compute(rulebook.MechanicLayOnHands, features.Context{Class: "paladin", Level: 4})
	assert.Equal(t, "20", loh.Healing)

	preserve, _ := features.Compute(rulebook.MechanicChannelDivinity, features.Context{Class: "cleric", Subclass: "Life", Level: 2})
	assert.Equal(t, "10", preserve.Healing)
}

func TestRageSummary(t *testing.T) {
	m, ok := features.Compute(rulebook.MechanicRage, features.Context{Class: "barbarian", Level: 9})
	require.True(t, ok)
	assert.Contains(t, m.Summary, "+3 melee")
	assert.Contains(t, m.Summary, "bludgeoning, piercing and slashing")
	assert.Equal(t, rulebook.PoolRage, m.ResourceKey)
}

func TestUnknownMechanic(t *testing.T) {
	_, ok := features.Compute(rulebook.MechanicNone, features.Context{Level: 3})
	assert.False(t, ok)
}

func TestBardicInspirationDie(t *testing.T) {
	m, _ := features.Compute(rulebook.MechanicBardicInspiration, features.Context{Class: "bard", Level: 10})
	assert.Contains(t, m.Summary, "d10")
	assert.Equal(t, 12, features.BardicInspirationDie(15))
}
