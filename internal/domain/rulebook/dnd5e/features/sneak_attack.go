package features

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// SneakAttackDice returns the d6 count for a rogue level: ceil(level/2)
func SneakAttackDice(level int) int {
	if level < 1 {
		return 0
	}
	return (level + 1) / 2
}

func sneakAttack(ctx Context) Mechanics {
	return Mechanics{
		Timing:  shared.TimingSpecial,
		Damage:  dice.NewFormula(SneakAttackDice(ctx.Level), 6, 0).String(),
		Summary: "Once per turn with advantage or an adjacent ally, using a finesse or ranged weapon",
	}
}
