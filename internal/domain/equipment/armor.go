package equipment

import "strings"

type ArmorCategory string

const (
	ArmorCategoryLight  ArmorCategory = "light"
	ArmorCategoryMedium ArmorCategory = "medium"
	ArmorCategoryHeavy  ArmorCategory = "heavy"
)

// ParseArmorCategory accepts "Light", "medium armor" and similar forms
func ParseArmorCategory(s string) ArmorCategory {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "light"):
		return ArmorCategoryLight
	case strings.Contains(s, "medium"):
		return ArmorCategoryMedium
	case strings.Contains(s, "heavy"):
		return ArmorCategoryHeavy
	default:
		return ""
	}
}

// DefaultShieldAC is the AC a mundane shield adds
const DefaultShieldAC = 2

// Armor is the AC-relevant data of a suit of armor
type Armor struct {
	Category ArmorCategory `json:"category"`
	BaseAC   int           `json:"base_ac"`
	// MaxDexBonus overrides the category's Dexterity cap when set
	MaxDexBonus         *int `json:"max_dex_bonus,omitempty"`
	StrMinimum          int  `json:"str_minimum,omitempty"`
	StealthDisadvantage bool `json:"stealth_disadvantage,omitempty"`
	MagicBonus          int  `json:"magic_bonus,omitempty"`
}

// DexCap returns the Dexterity cap. capped is false when Dexterity applies in full.
func (a *Armor) DexCap() (limit int, capped bool) {
	if a.MaxDexBonus != nil {
		return *a.MaxDexBonus, true
	}
	switch a.Category {
	case ArmorCategoryHeavy:
		return 0, true
	case ArmorCategoryMedium:
		return 2, true
	default:
		return 0, false
	}
}

// Shield is the AC-relevant data of a shield
type Shield struct {
	BaseAC     int `json:"base_ac"`
	MagicBonus int `json:"magic_bonus,omitempty"`
}

var standardArmor = map[string]Armor{
	"padded":                {Category: ArmorCategoryLight, BaseAC: 11, StealthDisadvantage: true},
	"padded-armor":          {Category: ArmorCategoryLight, BaseAC: 11, StealthDisadvantage: true},
	"leather":               {Category: ArmorCategoryLight, BaseAC: 11},
	"leather-armor":         {Category: ArmorCategoryLight, BaseAC: 11},
	"studded-leather":       {Category: ArmorCategoryLight, BaseAC: 12},
	"studded-leather-armor": {Category: ArmorCategoryLight, BaseAC: 12},
	"hide":                  {Category: ArmorCategoryMedium, BaseAC: 12},
	"hide-armor":            {Category: ArmorCategoryMedium, BaseAC: 12},
	"chain-shirt":           {Category: ArmorCategoryMedium, BaseAC: 13},
	"scale-mail":            {Category: ArmorCategoryMedium, BaseAC: 14, StealthDisadvantage: true},
	"breastplate":           {Category: ArmorCategoryMedium, BaseAC: 14},
	"half-plate":            {Category: ArmorCategoryMedium, BaseAC: 15, StealthDisadvantage: true},
	"half-plate-armor":      {Category: ArmorCategoryMedium, BaseAC: 15, StealthDisadvantage: true},
	"ring-mail":             {Category: ArmorCategoryHeavy, BaseAC: 14, StealthDisadvantage: true},
	"chain-mail":            {Category: ArmorCategoryHeavy, BaseAC: 16, StrMinimum: 13, StealthDisadvantage: true},
	"splint":                {Category: ArmorCategoryHeavy, BaseAC: 17, StrMinimum: 15, StealthDisadvantage: true},
	"splint-armor":          {Category: ArmorCategoryHeavy, BaseAC: 17, StrMinimum: 15, StealthDisadvantage: true},
	"plate":                 {Category: ArmorCategoryHeavy, BaseAC: 18, StrMinimum: 15, StealthDisadvantage: true},
	"plate-armor":           {Category: ArmorCategoryHeavy, BaseAC: 18, StrMinimum: 15, StealthDisadvantage: true},
}

// StandardArmor looks up the PHB armor table by item key
func StandardArmor(key string) (Armor, bool) {
	a, ok := standardArmor[strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", "-"))]
	return a, ok
}
