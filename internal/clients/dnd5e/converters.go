package dnd5e

import (
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Remote classes carry no feature list; the mechanics table only knows
// features from the embedded catalog.
func apiClassToClass(input *entities.Class) *rulebook.ClassDefinition {
	return &rulebook.ClassDefinition{
		Key:    input.Key,
		Name:   input.Name,
		HitDie: input.HitDie,
	}
}

func apiRaceToRace(input *entities.Race) *rulebook.RaceDefinition {
	return &rulebook.RaceDefinition{
		Key:   input.Key,
		Name:  input.Name,
		Speed: input.Speed,
	}
}

func apiSpellToSpell(input *entities.Spell) *rulebook.Spell {
	spell := &rulebook.Spell{
		Key:         input.Key,
		Name:        input.Name,
		Level:       input.SpellLevel,
		CastingTime: input.CastingTime,
		Range:       input.Range,
		Duration:    input.Duration,
		Ritual:      input.Ritual,
	}

	// concentration is read from the duration text
	if input.Concentration && !spell.RequiresConcentration() {
		spell.Duration = strings.TrimSpace("Concentration, " + input.Duration)
	}

	if input.SpellSchool != nil {
		spell.School = input.SpellSchool.Name
	}

	if input.DC != nil && input.DC.DCType != nil {
		spell.SaveAbility = shared.ParseAttribute(input.DC.DCType.Name)
	}

	if input.SpellDamage != nil {
		if input.SpellDamage.SpellDamageType != nil {
			spell.DamageType = strings.ToLower(input.SpellDamage.SpellDamageType.Name)
		}
		spell.DamageAtSlotLevel = apiSlotDamage(input.SpellDamage.SpellDamageAtSlotLevel)
	}

	return spell
}

func apiSlotDamage(input *entities.SpellDamageAtSlotLevel) map[int]string {
	if input == nil {
		return nil
	}

	byLevel := []string{
		input.FirstLevel,
		input.SecondLevel,
		input.ThirdLevel,
		input.FourthLevel,
		input.FifthLevel,
		input.SixthLevel,
		input.SeventhLevel,
		input.EighthLevel,
		input.NinthLevel,
	}

	damage := make(map[int]string)
	for i, dice := range byLevel {
		if dice != "" {
			damage[i+1] = dice
		}
	}
	if len(damage) == 0 {
		return nil
	}
	return damage
}
