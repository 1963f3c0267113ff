package testutils

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
)

// StandardScores is a point-buy spread that keeps every modifier distinct
var StandardScores = character.AbilityScores{
	Strength:     16,
	Dexterity:    14,
	Constitution: 14,
	Intelligence: 10,
	Wisdom:       12,
	Charisma:     8,
}

// CreateTestSnapshot creates a human snapshot with StandardScores
func CreateTestSnapshot(id, class string, level int) *character.Snapshot {
	return &character.Snapshot{
		ID:    id,
		Name:  "Test " + class,
		Class: class,
		Race:  "Human",
		Level: level,
		AbilityScores: character.Scores{
			Base:  StandardScores,
			Final: StandardScores,
		},
	}
}

// CreateTestFighter creates a fighter wearing chain mail and wielding a longsword
func CreateTestFighter(id string, level int) *character.Snapshot {
	snap := CreateTestSnapshot(id, "Fighter", level)
	snap.Items = []equipment.Item{
		CreateTestArmor("chain-mail"),
		CreateTestLongsword(),
	}
	return snap
}

// CreateTestArmor creates an equipped standard armor item
func CreateTestArmor(key string) equipment.Item {
	armor, _ := equipment.StandardArmor(key)
	return equipment.Item{
		Key:      key,
		Name:     key,
		Category: equipment.CategoryArmor,
		Equipped: true,
		Armor:    &armor,
	}
}

// CreateTestLongsword creates an equipped longsword
func CreateTestLongsword() equipment.Item {
	return equipment.Item{
		Key:      "longsword",
		Name:     "Longsword",
		Category: equipment.CategoryWeapon,
		Equipped: true,
		Weapon: &equipment.Weapon{
			Damage:          "1d8",
			VersatileDamage: "1d10",
			DamageType:      "slashing",
			Category:        equipment.WeaponCategoryMartial,
			Range:           equipment.WeaponRangeMelee,
			Properties:      []string{"versatile"},
		},
	}
}

// CreateTestState initializes resources for a snapshot
func CreateTestState(snap *character.Snapshot) *resources.State {
	state := resources.Initialize(resources.InitializeInput{
		ID:       "incarnation-" + snap.ID,
		Class:    snap.Class,
		Subclass: snap.Subclass,
		Race:     snap.Race,
		Level:    snap.Level,
		MaxHP:    snap.MaxHP,
		Scores:   snap.AbilityScores.Final,
	})
	state.CharacterID = snap.ID
	return state
}
