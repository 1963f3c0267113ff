package rulebook

import (
	"strings"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Spell attack kinds
const (
	SpellAttackMelee  = "melee"
	SpellAttackRanged = "ranged"
)

// Spell is the reference data the engine needs about a spell
type Spell struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Level       int    `json:"level" yaml:"level"` // 0 for cantrips
	School      string `json:"school" yaml:"school"`
	CastingTime string `json:"casting_time" yaml:"casting_time"`
	Range       string `json:"range" yaml:"range"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
	Ritual      bool   `json:"ritual" yaml:"ritual"`
	// AttackType is melee or ranged for spells that make a spell attack
	AttackType  string           `json:"attack_type,omitempty" yaml:"attack_type"`
	SaveAbility shared.Attribute `json:"save_ability,omitempty" yaml:"save_ability"`
	DamageType  string           `json:"damage_type,omitempty" yaml:"damage_type"`
	// Damage or healing dice keyed by slot level, or by character level for cantrips
	DamageAtSlotLevel      map[int]string `json:"damage_at_slot_level,omitempty" yaml:"damage_at_slot_level"`
	DamageAtCharacterLevel map[int]string `json:"damage_at_character_level,omitempty" yaml:"damage_at_character_level"`
	HealAtSlotLevel        map[int]string `json:"heal_at_slot_level,omitempty" yaml:"heal_at_slot_level"`
}

// IsCantrip reports whether the spell is level 0
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// Timing derives the action timing from the casting time text
func (s *Spell) Timing() shared.ActionTiming {
	text := strings.ToLower(s.CastingTime)
	switch {
	case strings.Contains(text, "bonus action"):
		return shared.TimingBonusAction
	case strings.Contains(text, "reaction"):
		return shared.TimingReaction
	case strings.Contains(text, "action"):
		return shared.TimingAction
	default:
		// minutes and hours
		return shared.TimingSpecial
	}
}

// RequiresConcentration derives the concentration flag from the duration text
func (s *Spell) RequiresConcentration() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s.Duration)), "concentration")
}

// CantripDamage returns the damage dice for a cantrip at a character level
func (s *Spell) CantripDamage(characterLevel int) string {
	return stepLookup(s.DamageAtCharacterLevel, characterLevel)
}

// DamageAt returns the damage dice when cast with a slot of the given level
func (s *Spell) DamageAt(slotLevel int) string {
	return stepLookup(s.DamageAtSlotLevel, slotLevel)
}

// HealingAt returns the healing dice when cast with a slot of the given level
func (s *Spell) HealingAt(slotLevel int) string {
	return stepLookup(s.HealAtSlotLevel, slotLevel)
}

// stepLookup returns the entry with the greatest key not above level
func stepLookup(table map[int]string, level int) string {
	best, found := 0, ""
	for k, v := range table {
		if k <= level && k >= best {
			best, found = k, v
		}
	}
	return found
}
