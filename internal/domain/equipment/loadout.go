package equipment

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// EquippedArmor returns the first equipped suit of armor, or nil
func EquippedArmor(items []Item) *Item {
	for i := range items {
		if items[i].Equipped && items[i].IsArmor() && items[i].ArmorStats() != nil {
			return &items[i]
		}
	}
	return nil
}

// EquippedShield returns the first equipped shield, or nil
func EquippedShield(items []Item) *Item {
	for i := range items {
		if items[i].Equipped && items[i].IsShield() {
			return &items[i]
		}
	}
	return nil
}

// EquippedWeapons returns every equipped weapon in snapshot order
func EquippedWeapons(items []Item) []*Item {
	var out []*Item
	for i := range items {
		if items[i].Equipped && items[i].IsWeapon() && items[i].Weapon != nil {
			out = append(out, &items[i])
		}
	}
	return out
}

// ActiveModifiers returns the modifiers of every item whose magic currently
// applies. Unequipped items, and attunement items that are not attuned,
// contribute nothing.
func ActiveModifiers(items []Item) []modifiers.Modifier {
	var out []modifiers.Modifier
	for i := range items {
		item := &items[i]
		if !item.Active() {
			continue
		}
		for _, mod := range item.Modifiers {
			if mod.Source.Name == "" {
				mod.Source.Name = item.DisplayName()
			}
			if mod.Source.Type == "" {
				mod.Source.Type = modifiers.SourceTypeItem
			}
			if mod.Source.ID == "" {
				mod.Source.ID = item.Key
			}
			out = append(out, mod)
		}
	}
	return out
}
