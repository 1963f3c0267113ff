package calculators

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

// MaxHP starts from the snapshot's recorded maximum, or the fixed average
// when none is recorded, and adds per-level features and item bonuses.
// A recorded maximum is assumed to already include per-level features.
func MaxHP(s *character.Snapshot, mods *modifiers.Manager) modifiers.Total {
	var total modifiers.Total
	if s.MaxHP > 0 {
		total = modifiers.NewTotal("Recorded maximum", s.MaxHP)
	} else {
		conMod := s.Modifier(shared.AttributeConstitution)
		total = modifiers.NewTotal("Average hit points", rulebook.AverageMaxHP(s.Class, s.Level, conMod))
		if isDraconic(s) {
			total.Add("Draconic Resilience", s.Level)
		}
		if rulebook.Key(s.Race) == "hill-dwarf" {
			total.Add("Dwarven Toughness", s.Level)
		}
	}
	mods.Apply(&total, modifiers.TargetHPMax, "")
	return total
}
