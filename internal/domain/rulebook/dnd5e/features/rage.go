package features

import (
	"fmt"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// RageResistances are the damage types a raging barbarian resists
var RageResistances = []string{"bludgeoning", "piercing", "slashing"}

func rage(ctx Context) Mechanics {
	bonus := rulebook.RageDamageBonus(ctx.Level)
	return Mechanics{
		Timing:      shared.TimingBonusAction,
		ResourceKey: rulebook.PoolRage,
		Summary: fmt.Sprintf("+%d melee weapon damage with Strength, advantage on Strength checks and saves, resistance to %s damage",
			bonus, joinTypes(RageResistances)),
	}
}

func joinTypes(types []string) string {
	switch len(types) {
	case 0:
		return ""
	case 1:
		return types[0]
	}
	out := ""
	for i, t := range types {
		switch {
		case i == 0:
			out = t
		case i == len(types)-1:
			out += " and " + t
		default:
			out += ", " + t
		}
	}
	return out
}
