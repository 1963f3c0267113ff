package equipment

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// Category is the broad kind of an item
type Category string

const (
	CategoryArmor    Category = "armor"
	CategoryShield   Category = "shield"
	CategoryWeapon   Category = "weapon"
	CategoryWondrous Category = "wondrous"
	CategoryOther    Category = "other"
)

// Item is one carried item on a character snapshot
type Item struct {
	Key                string               `json:"key"`
	Name               string               `json:"name"`
	Category           Category             `json:"category"`
	Equipped           bool                 `json:"equipped"`
	Attuned            bool                 `json:"attuned"`
	RequiresAttunement bool                 `json:"requires_attunement"`
	Armor              *Armor               `json:"armor,omitempty"`
	Shield             *Shield              `json:"shield,omitempty"`
	Weapon             *Weapon              `json:"weapon,omitempty"`
	Modifiers          []modifiers.Modifier `json:"modifiers,omitempty"`
}

// DisplayName returns the name, falling back to the key
func (i *Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Key
}

// Active reports whether the item's magic applies: it must be equipped and,
// when it requires attunement, attuned as well
func (i *Item) Active() bool {
	if !i.Equipped {
		return false
	}
	return !i.RequiresAttunement || i.Attuned
}

// IsArmor reports whether the item is body armor
func (i *Item) IsArmor() bool {
	return i.Category == CategoryArmor || (i.Armor != nil && i.Category == "")
}

// IsShield reports whether the item is a shield
func (i *Item) IsShield() bool {
	return i.Category == CategoryShield || (i.Shield != nil && i.Category == "")
}

// IsWeapon reports whether the item is a weapon
func (i *Item) IsWeapon() bool {
	return i.Category == CategoryWeapon || (i.Weapon != nil && i.Category == "")
}

// ArmorStats returns the armor block, falling back to the standard armor
// table by key when the item does not carry one
func (i *Item) ArmorStats() *Armor {
	if i.Armor != nil {
		return i.Armor
	}
	if std, ok := StandardArmor(i.Key); ok {
		return &std
	}
	return nil
}

// ShieldStats returns the shield block, defaulting to a plain +2 shield
func (i *Item) ShieldStats() *Shield {
	if i.Shield != nil {
		return i.Shield
	}
	return &Shield{BaseAC: DefaultShieldAC}
}
