package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

func TestProficiencyBonus(t *testing.T) {
	testCases := []struct {
		level    int
		expected int
	}{
		{1, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {12, 4}, {13, 5}, {16, 5}, {17, 6}, {20, 6},
		// out of range levels clamp
		{0, 2}, {25, 6},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rulebook.ProficiencyBonus(tc.level), "level %d", tc.level)
	}
}

func TestProficiencyBonus_MonotonicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 20).Draw(t, "level")

		bonus := rulebook.ProficiencyBonus(level)
		if want := (level+3)/4 + 1; bonus != want {
			t.Fatalf("level %d: got %d want %d", level, bonus, want)
		}
		if level > 1 && bonus < rulebook.ProficiencyBonus(level-1) {
			t.Fatalf("bonus decreased at level %d", level)
		}
	})
}

func TestMaxSpellLevel(t *testing.T) {
	testCases := []struct {
		name     string
		class    string
		subclass string
		level    int
		expected int
	}{
		{name: "wizard 1", class: "wizard", level: 1, expected: 1},
		{name: "wizard 3", class: "wizard", level: 3, expected: 2},
		{name: "wizard 17", class: "wizard", level: 17, expected: 9},
		{name: "ranger 1", class: "ranger", level: 1, expected: 0},
		{name: "ranger 2", class: "ranger", level: 2, expected: 1},
		// half casters hold 1st-level slots from level 2; see DESIGN.md Open Question decisions
		{name: "ranger 3", class: "ranger", level: 3, expected: 1},
		{name: "paladin 5", class: "paladin", level: 5, expected: 2},
		{name: "paladin 20", class: "paladin", level: 20, expected: 5},
		{name: "eldritch knight 2", class: "fighter", subclass: "eldritch-knight", level: 2, expected: 0},
		{name: "eldritch knight 7", class: "fighter", subclass: "Eldritch Knight", level: 7, expected: 2},
		{name: "arcane trickster 19", class: "rogue", subclass: "arcane-trickster", level: 19, expected: 4},
		{name: "warlock 1", class: "warlock", level: 1, expected: 1},
		{name: "warlock 11", class: "warlock", level: 11, expected: 5},
		{name: "fighter 20", class: "fighter", level: 20, expected: 0},
		{name: "unknown class", class: "artificer", level: 10, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ct := rulebook.CasterTypeFor(tc.class, tc.subclass)
			assert.Equal(t, tc.expected, rulebook.MaxSpellLevel(ct, tc.level))
		})
	}
}

func TestSpellSlots_MatchMaxSpellLevel(t *testing.T) {
	for _, ct := range []rulebook.CasterType{rulebook.CasterFull, rulebook.CasterHalf, rulebook.CasterThird} {
		for level := 1; level <= 20; level++ {
			slots := rulebook.SpellSlots(ct, level)
			assert.Len(t, slots, rulebook.MaxSpellLevel(ct, level), "%s level %d", ct, level)
		}
	}
}

func TestMaxSpellLevel_HalfCasterFirstSlots(t *testing.T) {
	ranger := rulebook.CasterTypeFor("ranger", "")

	assert.Equal(t, rulebook.CasterHalf, ranger)
	assert.Nil(t, rulebook.SpellSlots(ranger, 1))
	assert.Equal(t, 0, rulebook.MaxSpellLevel(ranger, 1))
	assert.Equal(t, []int{3}, rulebook.SpellSlots(ranger, 3))
	assert.Equal(t, 1, rulebook.MaxSpellLevel(ranger, 3))
}

func TestSpellSlots_ReturnsCopy(t *testing.T) {
	slots := rulebook.SpellSlots(rulebook.CasterFull, 5)
	slots[0] = 99

	assert.Equal(t, []int{4, 3, 2}, rulebook.SpellSlots(rulebook.CasterFull, 5))
	assert.Nil(t, rulebook.SpellSlots(rulebook.CasterPact, 5))
	assert.Nil(t, rulebook.SpellSlots(rulebook.CasterNone, 5))
}

func TestPactSlots(t *testing.T) {
	testCases := []struct {
		level, count, slotLevel int
	}{
		{1, 1, 1}, {2, 2, 1}, {3, 2, 2}, {5, 2, 3}, {9, 2, 5}, {11, 3, 5}, {17, 4, 5},
	}

	for _, tc := range testCases {
		count, slotLevel := rulebook.PactSlots(tc.level)
		assert.Equal(t, tc.count, count, "level %d", tc.level)
		assert.Equal(t, tc.slotLevel, slotLevel, "level %d", tc.level)
	}
}

func TestClassProgression_UnknownClassFailsClosed(t *testing.T) {
	prog := rulebook.GetClassProgression("Blood Hunter")

	assert.False(t, prog.Known)
	assert.Equal(t, 8, prog.HitDie)
	assert.Equal(t, rulebook.CasterNone, prog.CasterType)
	assert.Equal(t, []int{4, 8, 12, 16, 19}, prog.ASILevels)
	assert.Equal(t, shared.AttributeNone, rulebook.SpellcastingAbility("Blood Hunter", ""))
}

func TestClassProgression_ExtraASILevels(t *testing.T) {
	assert.Equal(t, []int{4, 6, 8, 12, 14, 16, 19}, rulebook.ASILevels("Fighter"))
	assert.Equal(t, []int{4, 8, 10, 12, 16, 19}, rulebook.ASILevels("rogue"))
	assert.Equal(t, []int{4, 8, 12, 16, 19}, rulebook.ASILevels("wizard"))
}

func TestHitDie(t *testing.T) {
	assert.Equal(t, 12, rulebook.HitDie("Barbarian"))
	assert.Equal(t, 10, rulebook.HitDie("fighter"))
	assert.Equal(t, 6, rulebook.HitDie("wizard"))
	assert.Equal(t, 8, rulebook.HitDie("unknown"))
}

func TestSpellcastingAbility(t *testing.T) {
	assert.Equal(t, shared.AttributeIntelligence, rulebook.SpellcastingAbility("wizard", ""))
	assert.Equal(t, shared.AttributeWisdom, rulebook.SpellcastingAbility("cleric", "life"))
	assert.Equal(t, shared.AttributeIntelligence, rulebook.SpellcastingAbility("fighter", "eldritch-knight"))
	assert.Equal(t, shared.AttributeNone, rulebook.SpellcastingAbility("fighter", "champion"))
}

func TestSpellCounts(t *testing.T) {
	assert.Equal(t, 3, rulebook.CantripsKnown("wizard", "", 1))
	assert.Equal(t, 5, rulebook.CantripsKnown("wizard", "", 10))
	assert.Equal(t, 0, rulebook.CantripsKnown("fighter", "", 5))
	assert.Equal(t, 2, rulebook.CantripsKnown("fighter", "eldritch-knight", 3))

	known, ok := rulebook.SpellsKnown("sorcerer", "", 3)
	assert.True(t, ok)
	assert.Equal(t, 4, known)

	known, ok = rulebook.SpellsKnown("rogue", "arcane-trickster", 3)
	assert.True(t, ok)
	assert.Equal(t, 3, known)

	_, ok = rulebook.SpellsKnown("wizard", "", 3)
	assert.False(t, ok)

	prepared, ok := rulebook.PreparedSpells("cleric", 1, -3)
	assert.True(t, ok)
	assert.Equal(t, 1, prepared)

	prepared, ok = rulebook.PreparedSpells("paladin", 5, 3)
	assert.True(t, ok)
	assert.Equal(t, 5, prepared)
}

func TestAverageMaxHP(t *testing.T) {
	// 10+2 then 4 levels of 6+2
	assert.Equal(t, 44, rulebook.AverageMaxHP("fighter", 5, 2))
	// 6-1 then 2 levels of 4-1
	assert.Equal(t, 11, rulebook.AverageMaxHP("wizard", 3, -1))
	// each level still grants at least 1
	assert.Equal(t, 3, rulebook.AverageMaxHP("wizard", 3, -5))
}

func TestApplyASIs(t *testing.T) {
	base := map[shared.Attribute]int{
		shared.AttributeStrength:     16,
		shared.AttributeDexterity:    12,
		shared.AttributeConstitution: 15,
		shared.AttributeIntelligence: 8,
		shared.AttributeWisdom:       10,
		shared.AttributeCharisma:     10,
	}

	t.Run("below first ASI", func(t *testing.T) {
		assert.Equal(t, base, rulebook.ApplyASIs("fighter", 3, base))
	})

	t.Run("fighter 8 spends three improvements", func(t *testing.T) {
		out := rulebook.ApplyASIs("fighter", 8, base)

		// 16 -> 18 -> 20, then the remaining +2 goes to Con
		assert.Equal(t, 20, out[shared.AttributeStrength])
		assert.Equal(t, 17, out[shared.AttributeConstitution])
		assert.Equal(t, 16, base[shared.AttributeStrength], "input must not be mutated")
	})

	t.Run("splits at 19", func(t *testing.T) {
		scores := map[shared.Attribute]int{shared.AttributeIntelligence: 19, shared.AttributeConstitution: 14}
		out := rulebook.ApplyASIs("wizard", 4, scores)

		assert.Equal(t, 20, out[shared.AttributeIntelligence])
		assert.Equal(t, 15, out[shared.AttributeConstitution])
	})
}
