package dice

import (
	"fmt"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// randomRoller implements Roller on top of an rpg-toolkit roller
type randomRoller struct {
	source toolkitdice.Roller
}

// NewRandomRoller creates a roller backed by the rpg-toolkit default roller
func NewRandomRoller() Roller {
	return NewRollerFrom(toolkitdice.DefaultRoller)
}

// NewRollerFrom creates a roller backed by the given rpg-toolkit roller
func NewRollerFrom(source toolkitdice.Roller) Roller {
	return &randomRoller{source: source}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, fmt.Errorf("invalid dice size %d", sides)
	}

	rolls, err := r.source.RollN(count, sides)
	if err != nil {
		return nil, fmt.Errorf("failed to roll %dd%d: %w", count, sides, err)
	}
	if len(rolls) != count {
		return nil, fmt.Errorf("roller returned %d results for %dd%d", len(rolls), count, sides)
	}

	total := bonus
	for _, roll := range rolls {
		total += roll
	}

	return &RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}
