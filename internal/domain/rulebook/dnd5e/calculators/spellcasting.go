package calculators

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// SpellcastingStats are the spell attack bonus and save DC of a caster
type SpellcastingStats struct {
	Ability       shared.Attribute    `json:"ability"`
	CasterType    rulebook.CasterType `json:"caster_type"`
	MaxSpellLevel int                 `json:"max_spell_level"`
	Attack        modifiers.Total     `json:"attack"`
	SaveDC        modifiers.Total     `json:"save_dc"`
}

// Spellcasting returns nil when the class and subclass do not cast spells
func Spellcasting(s *character.Snapshot, mods *modifiers.Manager) *SpellcastingStats {
	ability := rulebook.SpellcastingAbility(s.Class, s.Subclass)
	if ability == shared.AttributeNone {
		return nil
	}
	casterType := rulebook.CasterTypeFor(s.Class, s.Subclass)
	pb := s.ProficiencyBonus()
	mod := s.Modifier(ability)

	attack := modifiers.NewTotal(abilityLabel(ability), mod)
	attack.Add("Proficiency", pb)
	mods.Apply(&attack, modifiers.TargetSpellAttack, "")

	dc := modifiers.NewTotal("Base", 8)
	dc.Add("Proficiency", pb)
	dc.Add(abilityLabel(ability), mod)
	mods.Apply(&dc, modifiers.TargetSpellDC, "")

	return &SpellcastingStats{
		Ability:       ability,
		CasterType:    casterType,
		MaxSpellLevel: rulebook.MaxSpellLevel(casterType, s.Level),
		Attack:        attack,
		SaveDC:        dc,
	}
}
