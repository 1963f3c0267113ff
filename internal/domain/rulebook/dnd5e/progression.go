package rulebook

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

const (
	MinLevel = 1
	MaxLevel = 20
)

// ClampLevel forces a level into 1-20
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ProficiencyBonus returns ceil(level/4)+1
func ProficiencyBonus(level int) int {
	level = ClampLevel(level)
	return (level+3)/4 + 1
}

// Spell slots per spell level (index 0 is 1st level), by character level.
var fullCasterSlots = [MaxLevel + 1][]int{
	1:  {2},
	2:  {3},
	3:  {4, 2},
	4:  {4, 3},
	5:  {4, 3, 2},
	6:  {4, 3, 3},
	7:  {4, 3, 3, 1},
	8:  {4, 3, 3, 2},
	9:  {4, 3, 3, 3, 1},
	10: {4, 3, 3, 3, 2},
	11: {4, 3, 3, 3, 2, 1},
	12: {4, 3, 3, 3, 2, 1},
	13: {4, 3, 3, 3, 2, 1, 1},
	14: {4, 3, 3, 3, 2, 1, 1},
	15: {4, 3, 3, 3, 2, 1, 1, 1},
	16: {4, 3, 3, 3, 2, 1, 1, 1},
	17: {4, 3, 3, 3, 2, 1, 1, 1, 1},
	18: {4, 3, 3, 3, 3, 1, 1, 1, 1},
	19: {4, 3, 3, 3, 3, 2, 1, 1, 1},
	20: {4, 3, 3, 3, 3, 2, 2, 1, 1},
}

var halfCasterSlots = [MaxLevel + 1][]int{
	1:  nil,
	2:  {2},
	3:  {3},
	4:  {3},
	5:  {4, 2},
	6:  {4, 2},
	7:  {4, 3},
	8:  {4, 3},
	9:  {4, 3, 2},
	10: {4, 3, 2},
	11: {4, 3, 3},
	12: {4, 3, 3},
	13: {4, 3, 3, 1},
	14: {4, 3, 3, 1},
	15: {4, 3, 3, 2},
	16: {4, 3, 3, 2},
	17: {4, 3, 3, 3, 1},
	18: {4, 3, 3, 3, 1},
	19: {4, 3, 3, 3, 2},
	20: {4, 3, 3, 3, 2},
}

var thirdCasterSlots = [MaxLevel + 1][]int{
	1:  nil,
	2:  nil,
	3:  {2},
	4:  {3},
	5:  {3},
	6:  {3},
	7:  {4, 2},
	8:  {4, 2},
	9:  {4, 2},
	10: {4, 3},
	11: {4, 3},
	12: {4, 3},
	13: {4, 3, 2},
	14: {4, 3, 2},
	15: {4, 3, 2},
	16: {4, 3, 3},
	17: {4, 3, 3},
	18: {4, 3, 3},
	19: {4, 3, 3, 1},
	20: {4, 3, 3, 1},
}

// SpellSlots returns the slot count for each spell level (index 0 is 1st level).
// Pact casters and non-casters get no standard slots.
func SpellSlots(casterType CasterType, level int) []int {
	level = ClampLevel(level)

	var row []int
	switch casterType {
	case CasterFull:
		row = fullCasterSlots[level]
	case CasterHalf:
		row = halfCasterSlots[level]
	case CasterThird:
		row = thirdCasterSlots[level]
	default:
		return nil
	}
	return append([]int(nil), row...)
}

// PactSlots returns the number of pact slots and their slot level for a warlock level
func PactSlots(level int) (count, slotLevel int) {
	level = ClampLevel(level)

	switch {
	case level >= 17:
		count = 4
	case level >= 11:
		count = 3
	case level >= 2:
		count = 2
	default:
		count = 1
	}

	slotLevel = (level + 1) / 2
	if slotLevel > 5 {
		slotLevel = 5
	}
	return count, slotLevel
}

// MaxSpellLevel returns the highest spell level castable at the given level.
// It always equals the number of slot levels SpellSlots grants, so half
// casters reach 1st level at class level 2.
func MaxSpellLevel(casterType CasterType, level int) int {
	level = ClampLevel(level)

	switch casterType {
	case CasterFull:
		return min((level+1)/2, 9)
	case CasterHalf:
		if level < 2 {
			return 0
		}
		return min((level+3)/4, 5)
	case CasterThird:
		if level < 3 {
			return 0
		}
		return min((level+5)/6, 4)
	case CasterPact:
		_, slotLevel := PactSlots(level)
		return slotLevel
	default:
		return 0
	}
}

// CantripsKnown returns the number of cantrips a class knows at a level
func CantripsKnown(className, subclassName string, level int) int {
	level = ClampLevel(level)
	step := func(base int) int {
		switch {
		case level >= 10:
			return base + 2
		case level >= 4:
			return base + 1
		default:
			return base
		}
	}

	switch Key(className) {
	case "bard", "druid", "warlock":
		return step(2)
	case "cleric", "wizard":
		return step(3)
	case "sorcerer":
		return step(4)
	}

	switch Key(subclassName) {
	case "eldritch-knight":
		if level < 3 {
			return 0
		}
		if level >= 10 {
			return 3
		}
		return 2
	case "arcane-trickster":
		if level < 3 {
			return 0
		}
		if level >= 10 {
			return 4
		}
		return 3
	}
	return 0
}

var spellsKnownTables = map[string][MaxLevel]int{
	"bard":     {4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 15, 15, 16, 18, 19, 19, 20, 22, 22, 22},
	"ranger":   {0, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11},
	"sorcerer": {2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 13, 13, 14, 14, 15, 15, 15, 15},
	"warlock":  {2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15},
	"third":    {0, 0, 3, 4, 4, 4, 5, 6, 6, 7, 8, 8, 9, 10, 10, 11, 11, 11, 12, 13},
}

// SpellsKnown returns the number of spells known for known-spell casters.
// The boolean is false for prepared casters and non-casters.
func SpellsKnown(className, subclassName string, level int) (int, bool) {
	level = ClampLevel(level)

	if CasterTypeFor(className, subclassName) == CasterThird {
		return spellsKnownTables["third"][level-1], true
	}
	table, ok := spellsKnownTables[Key(className)]
	if !ok {
		return 0, false
	}
	return table[level-1], true
}

// PreparedSpells returns how many spells a prepared caster may prepare.
// The boolean is false for classes that do not prepare spells.
func PreparedSpells(className string, level, abilityModifier int) (int, bool) {
	level = ClampLevel(level)

	var n int
	switch Key(className) {
	case "cleric", "druid", "wizard":
		n = level + abilityModifier
	case "paladin":
		if level < 2 {
			return 0, true
		}
		n = level/2 + abilityModifier
	default:
		return 0, false
	}
	return max(n, 1), true
}

// AverageMaxHP is the fixed-value hit point maximum: full hit die plus Con at
// 1st level, then the rounded-up average plus Con (at least 1) per level after.
func AverageMaxHP(className string, level, conModifier int) int {
	level = ClampLevel(level)
	hitDie := HitDie(className)

	hp := max(hitDie+conModifier, 1)
	perLevel := max(dice.Average(hitDie)+conModifier, 1)
	return hp + perLevel*(level-1)
}

// ApplyASIs spends every Ability Score Improvement reached by level on the
// class's ranked abilities: +2 to the first ranked ability below 20, split
// +1/+1 when that ability sits at 19. Scores never exceed 20.
func ApplyASIs(className string, level int, scores map[shared.Attribute]int) map[shared.Attribute]int {
	out := make(map[shared.Attribute]int, len(scores))
	for k, v := range scores {
		out[k] = v
	}

	prog := GetClassProgression(className)
	for _, asiLevel := range prog.ASILevels {
		if asiLevel > level {
			break
		}

		points := 2
		for _, attr := range prog.RankedAbilities {
			if points == 0 {
				break
			}
			room := 20 - out[attr]
			if room <= 0 {
				continue
			}
			spend := min(room, points)
			out[attr] += spend
			points -= spend
		}
	}
	return out
}
