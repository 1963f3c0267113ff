package engine

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// HealingMode picks how unrolled short-rest hit dice are resolved
type HealingMode string

const (
	// HealingAverage leaves missing rolls to the state machine's average
	HealingAverage HealingMode = "average"
	// HealingRoll rolls every missing hit die
	HealingRoll HealingMode = "roll"
)

// resolveRolls fills in dice the caller left to the engine: missing hit die
// results in roll mode and an unrolled death save in any mode. Only dice the
// state can actually spend are rolled.
func resolveRolls(roller dice.Roller, mode HealingMode, state *resources.State, op resources.Operation) (resources.Operation, error) {
	switch o := op.(type) {
	case resources.ShortRest:
		if mode != HealingRoll || state.IsDead() {
			return op, nil
		}
		remaining := make(map[int]int, len(state.HitDice))
		for die, pool := range state.HitDice {
			remaining[die] = pool.Remaining()
		}

		spends := make([]resources.HitDiceSpend, len(o.HitDice))
		for i, spend := range o.HitDice {
			spends[i] = spend
			count := min(max(spend.Count, 0), remaining[spend.Die])
			remaining[spend.Die] -= count

			missing := count - len(spend.Rolls)
			if missing <= 0 {
				continue
			}
			result, err := roller.Roll(missing, spend.Die, 0)
			if err != nil {
				return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to roll hit dice")
			}
			spends[i].Rolls = append(append([]int(nil), spend.Rolls...), result.Rolls...)
		}
		return resources.ShortRest{HitDice: spends}, nil

	case resources.RollDeathSave:
		if o.Roll != 0 || !state.IsDying() {
			return op, nil
		}
		result, err := roller.Roll(1, 20, 0)
		if err != nil {
			return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to roll death save")
		}
		return resources.RollDeathSave{Roll: result.Total}, nil
	}

	return op, nil
}
