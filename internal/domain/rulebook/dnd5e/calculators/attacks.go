package calculators

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// Sub-targets for attack and damage modifiers
const (
	RangeMelee  = "melee"
	RangeRanged = "ranged"
)

// AttackStats are the generic melee or ranged attack and damage bonuses
type AttackStats struct {
	Ability shared.Attribute `json:"ability"`
	Attack  modifiers.Total  `json:"attack"`
	Damage  modifiers.Total  `json:"damage"`
}

// WeaponAttack is the computed attack with one weapon (or an unarmed strike)
type WeaponAttack struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Ability     shared.Attribute `json:"ability"`
	Proficient  bool             `json:"proficient"`
	Range       string           `json:"range"`
	Attack      modifiers.Total  `json:"attack"`
	DamageBonus modifiers.Total  `json:"damage_bonus"`
	// Damage is the full formula, dice plus DamageBonus
	Damage          string   `json:"damage"`
	VersatileDamage string   `json:"versatile_damage,omitempty"`
	DamageType      string   `json:"damage_type,omitempty"`
	Properties      []string `json:"properties,omitempty"`
}

// MeleeAttack uses Strength, or the better of Strength and Dexterity for monks
func MeleeAttack(s *character.Snapshot, mods *modifiers.Manager) AttackStats {
	ability := shared.AttributeStrength
	if s.ClassKey() == "monk" {
		ability = betterOf(s, shared.AttributeStrength, shared.AttributeDexterity)
	}
	return genericAttack(s, mods, ability, RangeMelee)
}

// RangedAttack uses Dexterity
func RangedAttack(s *character.Snapshot, mods *modifiers.Manager) AttackStats {
	stats := genericAttack(s, mods, shared.AttributeDexterity, RangeRanged)
	if s.HasFightingStyle(rulebook.FightingStyleArchery) {
		stats.Attack.Add("Archery fighting style", rulebook.ArcheryAttackBonus)
	}
	return stats
}

func genericAttack(s *character.Snapshot, mods *modifiers.Manager, ability shared.Attribute, rangeKind string) AttackStats {
	attack := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
	attack.Add("Proficiency", s.ProficiencyBonus())
	mods.Apply(&attack, modifiers.TargetAttack, rangeKind)

	damage := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
	mods.Apply(&damage, modifiers.TargetDamage, rangeKind)

	return AttackStats{Ability: ability, Attack: attack, Damage: damage}
}

// UnarmedStrike deals 1 + Strength, or the martial arts die for monks.
// Every character is proficient with unarmed strikes.
func UnarmedStrike(s *character.Snapshot, mods *modifiers.Manager) WeaponAttack {
	ability := shared.AttributeStrength
	formula := dice.NewFormula(0, 0, 1)
	if s.ClassKey() == "monk" {
		ability = betterOf(s, shared.AttributeStrength, shared.AttributeDexterity)
		formula = dice.NewFormula(1, features.MartialArtsDie(s.Level), 0)
	}

	attack := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
	attack.Add("Proficiency", s.ProficiencyBonus())
	mods.Apply(&attack, modifiers.TargetAttack, RangeMelee)

	bonus := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
	mods.Apply(&bonus, modifiers.TargetDamage, RangeMelee)

	return WeaponAttack{
		Key:         "unarmed-strike",
		Name:        "Unarmed Strike",
		Ability:     ability,
		Proficient:  true,
		Range:       RangeMelee,
		Attack:      attack,
		DamageBonus: bonus,
		Damage:      formula.Plus(bonus.Value).String(),
		DamageType:  "bludgeoning",
	}
}

// WeaponAttacks computes an attack for every equipped weapon
func WeaponAttacks(s *character.Snapshot, mods *modifiers.Manager) []WeaponAttack {
	weapons := equipment.EquippedWeapons(s.Items)
	shield := equipment.EquippedShield(s.Items)

	meleeHeld := 0
	for _, w := range weapons {
		if w.Weapon.IsMelee() {
			meleeHeld++
		}
	}

	out := make([]WeaponAttack, 0, len(weapons))
	for _, item := range weapons {
		out = append(out, weaponAttack(s, mods, item, meleeHeld == 1, shield == nil && len(weapons) == 1))
	}
	return out
}

func weaponAttack(s *character.Snapshot, mods *modifiers.Manager, item *equipment.Item, onlyMelee, handsFree bool) WeaponAttack {
	w := item.Weapon
	rangeKind := RangeMelee
	if w.IsRanged() {
		rangeKind = RangeRanged
	}

	isMonk := s.ClassKey() == "monk"
	monkWeapon := isMonk && w.IsMonkWeapon(item.Key)

	ability := shared.AttributeStrength
	switch {
	case w.IsRanged():
		ability = shared.AttributeDexterity
	case w.IsFinesse(), monkWeapon:
		ability = betterOf(s, shared.AttributeStrength, shared.AttributeDexterity)
	}

	proficient := s.IsProficientWithWeapon(item)
	magic := 0
	if item.Active() {
		magic = w.MagicBonus
	}

	attack := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
	if proficient {
		attack.Add("Proficiency", s.ProficiencyBonus())
	}
	attack.AddNonZero(item.DisplayName()+" enchantment", magic)
	if w.IsRanged() && s.HasFightingStyle(rulebook.FightingStyleArchery) {
		attack.Add("Archery fighting style", rulebook.ArcheryAttackBonus)
	}
	mods.Apply(&attack, modifiers.TargetAttack, rangeKind)

	bonus := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
	bonus.AddNonZero(item.DisplayName()+" enchantment", magic)
	if w.IsMelee() && !w.IsTwoHanded() && onlyMelee && s.HasFightingStyle(rulebook.FightingStyleDueling) {
		bonus.Add("Dueling fighting style", rulebook.DuelingDamageBonus)
	}
	mods.Apply(&bonus, modifiers.TargetDamage, rangeKind)

	formula, err := dice.ParseFormula(w.Damage)
	if err != nil {
		// a weapon without dice still deals its flat bonus
		formula = dice.NewFormula(0, 0, 1)
	}
	if monkWeapon {
		if die := features.MartialArtsDie(s.Level); die > formula.Sides {
			formula = dice.NewFormula(1, die, formula.Bonus)
		}
	}

	attackOut := WeaponAttack{
		Key:         item.Key,
		Name:        item.DisplayName(),
		Ability:     ability,
		Proficient:  proficient,
		Range:       rangeKind,
		Attack:      attack,
		DamageBonus: bonus,
		Damage:      formula.Plus(bonus.Value).String(),
		DamageType:  w.DamageType,
		Properties:  w.Properties,
	}
	if w.VersatileDamage != "" && handsFree {
		if versatile, err := dice.ParseFormula(w.VersatileDamage); err == nil {
			attackOut.VersatileDamage = versatile.Plus(bonus.Value).String()
		}
	}
	return attackOut
}

func betterOf(s *character.Snapshot, a, b shared.Attribute) shared.Attribute {
	if s.Modifier(b) > s.Modifier(a) {
		return b
	}
	return a
}
