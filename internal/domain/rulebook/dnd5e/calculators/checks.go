package calculators

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// SavingThrows computes each saving throw: ability modifier, proficiency when
// proficient, then item bonuses for that ability and global save bonuses
func SavingThrows(s *character.Snapshot, mods *modifiers.Manager) map[shared.Attribute]modifiers.Total {
	pb := s.ProficiencyBonus()
	out := make(map[shared.Attribute]modifiers.Total, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		total := modifiers.NewTotal(abilityLabel(attr), s.Modifier(attr))
		if s.HasSavingThrowProficiency(attr) {
			total.Add("Proficiency", pb)
		}
		mods.Apply(&total, modifiers.TargetSavingThrow, string(attr))
		out[attr] = total
	}
	return out
}

// Skills computes every skill total. Expertise doubles proficiency; a bard's
// Jack of All Trades adds half proficiency to skills without it.
func Skills(s *character.Snapshot, mods *modifiers.Manager) map[shared.Skill]modifiers.Total {
	pb := s.ProficiencyBonus()
	jack := hasJackOfAllTrades(s)

	out := make(map[shared.Skill]modifiers.Total, len(shared.Skills))
	for _, skill := range shared.Skills {
		ability := skill.Ability()
		total := modifiers.NewTotal(abilityLabel(ability), s.Modifier(ability))
		switch {
		case s.HasExpertise(skill):
			total.Add("Expertise", 2*pb)
		case s.HasSkillProficiency(skill):
			total.Add("Proficiency", pb)
		case jack:
			total.AddNonZero("Jack of All Trades", pb/2)
		}
		mods.Apply(&total, modifiers.TargetSkill, string(skill))
		mods.Apply(&total, modifiers.TargetAbilityCheck, string(ability))
		out[skill] = total
	}
	return out
}

// Initiative is a Dexterity check
func Initiative(s *character.Snapshot, mods *modifiers.Manager) modifiers.Total {
	dex := shared.AttributeDexterity
	total := modifiers.NewTotal(abilityLabel(dex), s.Modifier(dex))
	if hasJackOfAllTrades(s) {
		total.AddNonZero("Jack of All Trades", s.ProficiencyBonus()/2)
	}
	mods.Apply(&total, modifiers.TargetInitiative, "")
	mods.Apply(&total, modifiers.TargetAbilityCheck, string(dex))
	return total
}

// PassivePerception is 10 plus the Perception total
func PassivePerception(perception modifiers.Total) modifiers.Total {
	total := modifiers.NewTotal("Base", 10)
	total.Merge(perception)
	return total
}

func hasJackOfAllTrades(s *character.Snapshot) bool {
	return s.ClassKey() == "bard" && s.Level >= 2
}
