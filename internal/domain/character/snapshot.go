package character

import (
	"fmt"

	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// Scores holds the pre-bonus and post-bonus ability scores. Both are stored;
// only Final feeds the calculators.
type Scores struct {
	Base  AbilityScores `json:"base"`
	Final AbilityScores `json:"final"`
}

// Snapshot is the character as the engine sees it for one computation.
// The engine never mutates a snapshot.
type Snapshot struct {
	ID            string           `json:"id,omitempty"`
	Name          string           `json:"name,omitempty"`
	Class         string           `json:"class"`
	Subclass      string           `json:"subclass,omitempty"`
	Race          string           `json:"race"`
	Level         int              `json:"level"`
	AbilityScores Scores           `json:"ability_scores"`
	Items         []equipment.Item `json:"items,omitempty"`

	SkillProficiencies []shared.Skill `json:"skill_proficiencies,omitempty"`
	Expertise          []shared.Skill `json:"expertise,omitempty"`
	// SavingThrowProficiencies adds to the class's own saving throws
	SavingThrowProficiencies []shared.Attribute `json:"saving_throw_proficiencies,omitempty"`
	// WeaponProficiencies adds categories or weapon keys to the class's own
	WeaponProficiencies []string                 `json:"weapon_proficiencies,omitempty"`
	FightingStyles      []rulebook.FightingStyle `json:"fighting_styles,omitempty"`

	MaxHP int `json:"max_hp,omitempty"`
}

// Validate reports the first structural problem with the snapshot.
// Unknown class, subclass and race names are not errors.
func (s *Snapshot) Validate() error {
	if s == nil {
		return engineerr.InvalidArgument("snapshot is required")
	}
	if s.Class == "" {
		return engineerr.FieldValidation("class", "is required")
	}
	if s.Level < rulebook.MinLevel || s.Level > rulebook.MaxLevel {
		return engineerr.FieldValidation("level", fmt.Sprintf("must be between %d and %d, got %d",
			rulebook.MinLevel, rulebook.MaxLevel, s.Level))
	}
	if err := validateScores("ability_scores.final", s.AbilityScores.Final); err != nil {
		return err
	}
	if !s.AbilityScores.Base.IsZero() {
		if err := validateScores("ability_scores.base", s.AbilityScores.Base); err != nil {
			return err
		}
	}
	for i, skill := range s.SkillProficiencies {
		if _, ok := shared.ParseSkill(string(skill)); !ok {
			return engineerr.FieldValidation(fmt.Sprintf("skill_proficiencies[%d]", i), fmt.Sprintf("unknown skill %q", skill))
		}
	}
	for i, skill := range s.Expertise {
		if _, ok := shared.ParseSkill(string(skill)); !ok {
			return engineerr.FieldValidation(fmt.Sprintf("expertise[%d]", i), fmt.Sprintf("unknown skill %q", skill))
		}
	}
	for i, attr := range s.SavingThrowProficiencies {
		if shared.ParseAttribute(string(attr)) == shared.AttributeNone {
			return engineerr.FieldValidation(fmt.Sprintf("saving_throw_proficiencies[%d]", i), fmt.Sprintf("unknown ability %q", attr))
		}
	}
	for i := range s.Items {
		item := &s.Items[i]
		if item.Key == "" && item.Name == "" {
			return engineerr.FieldValidation(fmt.Sprintf("items[%d]", i), "key or name is required")
		}
		if item.Weapon != nil && item.Weapon.Damage != "" {
			if _, err := dice.ParseFormula(item.Weapon.Damage); err != nil {
				return engineerr.FieldValidation(fmt.Sprintf("items[%d].weapon.damage", i), err.Error())
			}
		}
	}
	if s.MaxHP < 0 {
		return engineerr.FieldValidation("max_hp", "must not be negative")
	}
	return nil
}

func validateScores(prefix string, scores AbilityScores) error {
	for _, attr := range shared.Attributes {
		field := prefix + "." + attr.Name()
		switch score := scores.Get(attr); {
		case score == 0:
			return engineerr.FieldValidation(field, "missing")
		case score < 0 || score > MaxAbilityScore:
			return engineerr.FieldValidation(field, fmt.Sprintf("must be between 1 and %d, got %d", MaxAbilityScore, score))
		}
	}
	return nil
}

// ProficiencyBonus returns the bonus for the snapshot's level
func (s *Snapshot) ProficiencyBonus() int {
	return rulebook.ProficiencyBonus(s.Level)
}

// Modifier returns the final ability modifier for attr
func (s *Snapshot) Modifier(attr shared.Attribute) int {
	return s.AbilityScores.Final.Modifier(attr)
}

// HasSkillProficiency reports proficiency (or expertise) in a skill
func (s *Snapshot) HasSkillProficiency(skill shared.Skill) bool {
	return containsSkill(s.SkillProficiencies, skill) || s.HasExpertise(skill)
}

// HasExpertise reports expertise in a skill
func (s *Snapshot) HasExpertise(skill shared.Skill) bool {
	return containsSkill(s.Expertise, skill)
}

// HasSavingThrowProficiency checks the class's saves and any extra ones on the snapshot
func (s *Snapshot) HasSavingThrowProficiency(attr shared.Attribute) bool {
	if rulebook.HasSavingThrowProficiency(s.Class, attr) {
		return true
	}
	for _, a := range s.SavingThrowProficiencies {
		if shared.ParseAttribute(string(a)) == attr {
			return true
		}
	}
	return false
}

// HasFightingStyle reports whether the snapshot chose the style
func (s *Snapshot) HasFightingStyle(style rulebook.FightingStyle) bool {
	for _, fs := range s.FightingStyles {
		if parsed, ok := rulebook.ParseFightingStyle(string(fs)); ok && parsed == style {
			return true
		}
	}
	return false
}

// IsProficientWithWeapon checks class and snapshot weapon proficiencies
// against the weapon's category and key
func (s *Snapshot) IsProficientWithWeapon(item *equipment.Item) bool {
	if item.Weapon == nil {
		return false
	}
	key := rulebook.Key(item.Key)
	if key == "" {
		key = rulebook.Key(item.Name)
	}
	category := rulebook.Key(item.Weapon.Category)

	profs := append(rulebook.GetClassProgression(s.Class).WeaponProficiencies, s.WeaponProficiencies...)
	for _, p := range profs {
		p = rulebook.Key(p)
		if p == key || (category != "" && p == category) {
			return true
		}
	}
	return false
}

// ClassKey returns the normalized class key
func (s *Snapshot) ClassKey() string {
	return rulebook.Key(s.Class)
}

// SubclassKey returns the normalized subclass key
func (s *Snapshot) SubclassKey() string {
	return rulebook.Key(s.Subclass)
}

func containsSkill(list []shared.Skill, skill shared.Skill) bool {
	for _, s := range list {
		if parsed, ok := shared.ParseSkill(string(s)); ok && parsed == skill {
			return true
		}
	}
	return false
}
