package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

func TestSpell_Timing(t *testing.T) {
	testCases := []struct {
		castingTime string
		expected    shared.ActionTiming
	}{
		{"1 action", shared.TimingAction},
		{"1 bonus action", shared.TimingBonusAction},
		{"1 reaction, which you take when you are hit", shared.TimingReaction},
		{"1 minute", shared.TimingSpecial},
		{"10 minutes", shared.TimingSpecial},
		{"", shared.TimingSpecial},
	}

	for _, tc := range testCases {
		spell := &rulebook.Spell{CastingTime: tc.castingTime}
		assert.Equal(t, tc.expected, spell.Timing(), tc.castingTime)
	}
}

func TestSpell_RequiresConcentration(t *testing.T) {
	assert.True(t, (&rulebook.Spell{Duration: "Concentration, up to 1 minute"}).RequiresConcentration())
	assert.True(t, (&rulebook.Spell{Duration: " concentration, up to 1 hour"}).RequiresConcentration())
	assert.False(t, (&rulebook.Spell{Duration: "Instantaneous"}).RequiresConcentration())
	assert.False(t, (&rulebook.Spell{Duration: "1 minute"}).RequiresConcentration())
}

func TestSpell_DamageTables(t *testing.T) {
	spell := &rulebook.Spell{
		DamageAtCharacterLevel: map[int]string{1: "1d10", 5: "2d10", 11: "3d10", 17: "4d10"},
		DamageAtSlotLevel:      map[int]string{2: "1d8", 4: "2d8"},
	}

	assert.Equal(t, "1d10", spell.CantripDamage(4))
	assert.Equal(t, "2d10", spell.CantripDamage(5))
	assert.Equal(t, "4d10", spell.CantripDamage(20))

	assert.Equal(t, "", spell.DamageAt(1))
	assert.Equal(t, "1d8", spell.DamageAt(3))
	assert.Equal(t, "2d8", spell.DamageAt(9))
	assert.Equal(t, "", spell.HealingAt(3))
}

func TestKey(t *testing.T) {
	testCases := map[string]string{
		"Eldritch Knight":               "eldritch-knight",
		"Stone's Endurance":             "stones-endurance",
		"Channel Divinity (1/rest)":     "channel-divinity",
		"great_weapon_fighting":         "great-weapon-fighting",
		"  Ability Score Improvement ":  "ability-score-improvement",
		"Path of the Berserker: Frenzy": "path-of-the-berserker-frenzy",
	}

	for in, expected := range testCases {
		assert.Equal(t, expected, rulebook.Key(in), in)
	}
}

func TestFightingStyles(t *testing.T) {
	style, ok := rulebook.ParseFightingStyle("Great Weapon Fighting")
	assert.True(t, ok)
	assert.Equal(t, rulebook.FightingStyleGreatWeaponFighting, style)

	_, ok = rulebook.ParseFightingStyle("blind fighting")
	assert.False(t, ok)

	assert.Equal(t, []rulebook.FightingStyle{
		rulebook.FightingStyleDefense, rulebook.FightingStyleDueling,
		rulebook.FightingStyleGreatWeaponFighting, rulebook.FightingStyleProtection,
	}, rulebook.FightingStylesForClass("Paladin"))
}
