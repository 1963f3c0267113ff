package calculators

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// DerivedStats are the numbers computed from a snapshot. Every total keeps
// the breakdown of contributions that produced it.
type DerivedStats struct {
	Level             int                                  `json:"level"`
	ProficiencyBonus  int                                  `json:"proficiency_bonus"`
	AbilityModifiers  map[shared.Attribute]int             `json:"ability_modifiers"`
	ArmorClass        modifiers.Total                      `json:"armor_class"`
	Initiative        modifiers.Total                      `json:"initiative"`
	Speed             modifiers.Total                      `json:"speed"`
	MaxHP             modifiers.Total                      `json:"max_hp"`
	SavingThrows      map[shared.Attribute]modifiers.Total `json:"saving_throws"`
	Skills            map[shared.Skill]modifiers.Total     `json:"skills"`
	PassivePerception modifiers.Total                      `json:"passive_perception"`
	Melee             AttackStats                          `json:"melee"`
	Ranged            AttackStats                          `json:"ranged"`
	UnarmedStrike     WeaponAttack                         `json:"unarmed_strike"`
	Weapons           []WeaponAttack                       `json:"weapons,omitempty"`

	// Spellcasting is nil for non-casters
	Spellcasting *SpellcastingStats `json:"spellcasting,omitempty"`
}

// Calculator computes derived stats. The catalog is optional and only
// refines race speed; the tables are used without it.
type Calculator struct {
	catalog *rulebook.Catalog
}

// NewCalculator creates a calculator
func NewCalculator(catalog *rulebook.Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Compute validates the snapshot and computes every derived stat
func (c *Calculator) Compute(s *character.Snapshot) (*DerivedStats, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	mods := modifiers.NewManager(normalizeModifiers(equipment.ActiveModifiers(s.Items))...)

	stats := &DerivedStats{
		Level:            s.Level,
		ProficiencyBonus: s.ProficiencyBonus(),
		AbilityModifiers: s.AbilityScores.Final.Modifiers(),
		ArmorClass:       ArmorClass(s, mods),
		Initiative:       Initiative(s, mods),
		Speed:            Speed(s, c.raceSpeed(s.Race), mods),
		MaxHP:            MaxHP(s, mods),
		SavingThrows:     SavingThrows(s, mods),
		Skills:           Skills(s, mods),
		Melee:            MeleeAttack(s, mods),
		Ranged:           RangedAttack(s, mods),
		UnarmedStrike:    UnarmedStrike(s, mods),
		Weapons:          WeaponAttacks(s, mods),
		Spellcasting:     Spellcasting(s, mods),
	}
	stats.PassivePerception = PassivePerception(stats.Skills[shared.SkillPerception])
	return stats, nil
}

func (c *Calculator) raceSpeed(race string) int {
	if c.catalog == nil {
		return rulebook.BaseSpeed(race)
	}
	return c.catalog.Race(race).Speed
}
