package calculators

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-engine/internal/modifiers"
)

var titler = cases.Title(language.English)

// abilityLabel renders an attribute for a breakdown line, e.g. "Dexterity"
func abilityLabel(attr shared.Attribute) string {
	return titler.String(attr.Name())
}

// normalizeModifiers rewrites sub-targets into the forms the calculators
// query with: "Dex" for saves and ability checks, skill keys for skills
func normalizeModifiers(mods []modifiers.Modifier) []modifiers.Modifier {
	out := make([]modifiers.Modifier, len(mods))
	for i, mod := range mods {
		if mod.SubTarget != "" {
			switch mod.Target {
			case modifiers.TargetSavingThrow, modifiers.TargetAbilityCheck:
				if attr := shared.ParseAttribute(mod.SubTarget); attr != shared.AttributeNone {
					mod.SubTarget = string(attr)
				}
			case modifiers.TargetSkill:
				if skill, ok := shared.ParseSkill(mod.SubTarget); ok {
					mod.SubTarget = string(skill)
				}
			}
		}
		out[i] = mod
	}
	return out
}
