package calculators

import (
	"strings"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// HeavyArmorPenalty is the speed lost in heavy armor without its Strength requirement
const HeavyArmorPenalty = 10

// UnarmoredMovement returns the monk speed bonus for a level
func UnarmoredMovement(level int) int {
	switch {
	case level >= 18:
		return 30
	case level >= 14:
		return 25
	case level >= 10:
		return 20
	case level >= 6:
		return 15
	case level >= 2:
		return 10
	default:
		return 0
	}
}

// Speed computes walking speed from the race's base speed
func Speed(s *character.Snapshot, base int, mods *modifiers.Manager) modifiers.Total {
	total := modifiers.NewTotal("Base speed", base)

	armor := equipment.EquippedArmor(s.Items)
	shield := equipment.EquippedShield(s.Items)
	heavy := armor != nil && armor.ArmorStats().Category == equipment.ArmorCategoryHeavy

	switch s.ClassKey() {
	case "monk":
		if armor == nil && shield == nil {
			total.AddNonZero("Unarmored Movement", UnarmoredMovement(s.Level))
		}
	case "barbarian":
		if s.Level >= 5 && !heavy {
			total.Add("Fast Movement", 10)
		}
	}

	if heavy && !strings.Contains(strings.ToLower(s.Race), "dwarf") {
		stats := armor.ArmorStats()
		if stats.StrMinimum > 0 && s.AbilityScores.Final.Get(shared.AttributeStrength) < stats.StrMinimum {
			total.Add(armor.DisplayName()+" (Strength requirement)", -HeavyArmorPenalty)
		}
	}

	mods.Apply(&total, modifiers.TargetSpeed, "")
	return total
}
