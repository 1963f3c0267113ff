package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// RollResult is the outcome of rolling count dice of one size plus a flat bonus
type RollResult struct {
	Total int   `json:"total"`
	Rolls []int `json:"rolls"`
	Bonus int   `json:"bonus"`
	Count int   `json:"count"`
	Sides int   `json:"sides"`
}

// Roller rolls dice. Implementations must return one entry in Rolls per die.
type Roller interface {
	// Roll rolls count dice with the given sides and adds bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// Average returns the fixed average of one die, rounded up (d6=4, d8=5, d10=6, d12=7).
func Average(sides int) int {
	if sides < 1 {
		return 0
	}
	return sides/2 + 1
}
