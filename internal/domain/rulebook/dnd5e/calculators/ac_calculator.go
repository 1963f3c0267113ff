package calculators

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// BaseAC is the armor class of an unarmored creature before Dexterity
const BaseAC = 10

// ArmorClass computes AC with its breakdown. Armor sets the base; without
// armor the class's unarmored defense (if any) applies. A shield and item
// modifiers add on top of either.
func ArmorClass(s *character.Snapshot, mods *modifiers.Manager) modifiers.Total {
	dexMod := s.Modifier(shared.AttributeDexterity)
	armor := equipment.EquippedArmor(s.Items)
	shield := equipment.EquippedShield(s.Items)

	var total modifiers.Total
	if armor != nil {
		stats := armor.ArmorStats()
		total = modifiers.NewTotal(armor.DisplayName(), stats.BaseAC)

		applied := dexMod
		if limit, capped := stats.DexCap(); capped {
			if limit == 0 {
				applied = 0
			} else if applied > limit {
				applied = limit
			}
		}
		total.AddNonZero(abilityLabel(shared.AttributeDexterity), applied)

		if armor.Active() {
			total.AddNonZero(armor.DisplayName()+" enchantment", stats.MagicBonus)
		}
		if s.HasFightingStyle(rulebook.FightingStyleDefense) {
			total.Add("Defense fighting style", rulebook.DefenseACBonus)
		}
	} else {
		total = unarmoredDefense(s, shield != nil)
	}

	if shield != nil {
		stats := shield.ShieldStats()
		total.Add(shield.DisplayName(), stats.BaseAC)
		if shield.Active() {
			total.AddNonZero(shield.DisplayName()+" enchantment", stats.MagicBonus)
		}
	}

	mods.Apply(&total, modifiers.TargetAC, "")
	return total
}

func unarmoredDefense(s *character.Snapshot, hasShield bool) modifiers.Total {
	dex := shared.AttributeDexterity

	switch {
	case s.ClassKey() == "barbarian":
		total := modifiers.NewTotal("Unarmored Defense", BaseAC)
		total.AddNonZero(abilityLabel(dex), s.Modifier(dex))
		total.AddNonZero(abilityLabel(shared.AttributeConstitution), s.Modifier(shared.AttributeConstitution))
		return total
	case s.ClassKey() == "monk" && !hasShield:
		total := modifiers.NewTotal("Unarmored Defense", BaseAC)
		total.AddNonZero(abilityLabel(dex), s.Modifier(dex))
		total.AddNonZero(abilityLabel(shared.AttributeWisdom), s.Modifier(shared.AttributeWisdom))
		return total
	case isDraconic(s):
		total := modifiers.NewTotal("Draconic Resilience", 13)
		total.AddNonZero(abilityLabel(dex), s.Modifier(dex))
		return total
	}

	total := modifiers.NewTotal("Base", BaseAC)
	total.AddNonZero(abilityLabel(dex), s.Modifier(dex))
	return total
}

func isDraconic(s *character.Snapshot) bool {
	if s.ClassKey() != "sorcerer" {
		return false
	}
	switch s.SubclassKey() {
	case "draconic", "draconic-bloodline":
		return true
	}
	return false
}
