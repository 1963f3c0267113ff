package equipment

import "strings"

const (
	// WeaponKeyShortsword is the key for shortsword weapons
	WeaponKeyShortsword = "shortsword"

	WeaponCategorySimple  = "simple"
	WeaponCategoryMartial = "martial"

	WeaponRangeMelee  = "melee"
	WeaponRangeRanged = "ranged"
)

// Weapon is the attack-relevant data of a weapon
type Weapon struct {
	// Damage is the one-handed damage dice, e.g. "1d8"
	Damage          string   `json:"damage"`
	VersatileDamage string   `json:"versatile_damage,omitempty"`
	DamageType      string   `json:"damage_type"`
	Category        string   `json:"category"`
	Range           string   `json:"range"`
	Properties      []string `json:"properties,omitempty"`
	MagicBonus      int      `json:"magic_bonus,omitempty"`
}

func (w *Weapon) IsRanged() bool {
	return strings.EqualFold(w.Range, WeaponRangeRanged)
}

func (w *Weapon) IsMelee() bool {
	return !w.IsRanged()
}

func (w *Weapon) IsSimple() bool {
	return strings.EqualFold(w.Category, WeaponCategorySimple)
}

func (w *Weapon) IsMartial() bool {
	return strings.EqualFold(w.Category, WeaponCategoryMartial)
}

func (w *Weapon) IsTwoHanded() bool {
	return w.HasProperty("two-handed")
}

func (w *Weapon) IsHeavy() bool {
	return w.HasProperty("heavy")
}

func (w *Weapon) IsFinesse() bool {
	return w.HasProperty("finesse")
}

// IsMonkWeapon returns true if this weapon can be used with monk Martial Arts.
// Monk weapons are shortswords and any simple melee weapons that don't have
// the two-handed or heavy property.
func (w *Weapon) IsMonkWeapon(key string) bool {
	if normalize(key) == WeaponKeyShortsword {
		return true
	}
	return w.IsSimple() && w.IsMelee() && !w.IsTwoHanded() && !w.IsHeavy()
}

// HasProperty checks if the weapon has a specific property
func (w *Weapon) HasProperty(prop string) bool {
	for _, p := range w.Properties {
		if normalize(p) == prop {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}
