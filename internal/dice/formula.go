package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Formula is a dice expression such as 2d8+3
type Formula struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Bonus int `json:"bonus"`
}

// NewFormula creates a formula
func NewFormula(count, sides, bonus int) Formula {
	return Formula{Count: count, Sides: sides, Bonus: bonus}
}

// Plus returns the formula with bonus added
func (f Formula) Plus(bonus int) Formula {
	f.Bonus += bonus
	return f
}

// IsZero reports whether the formula has no dice and no bonus
func (f Formula) IsZero() bool {
	return f.Count == 0 && f.Bonus == 0
}

// String renders the formula in NdS+B form. A formula without dice renders its bonus only.
func (f Formula) String() string {
	if f.Count == 0 || f.Sides == 0 {
		return strconv.Itoa(f.Bonus)
	}

	out := fmt.Sprintf("%dd%d", f.Count, f.Sides)
	switch {
	case f.Bonus > 0:
		out += fmt.Sprintf("+%d", f.Bonus)
	case f.Bonus < 0:
		out += fmt.Sprintf("%d", f.Bonus)
	}
	return out
}

// ParseFormula parses expressions like "1d8", "2d6+3", "1d10-1" and "d4"
func ParseFormula(s string) (Formula, error) {
	expr := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	if expr == "" {
		return Formula{}, fmt.Errorf("empty dice formula")
	}

	bonus := 0
	if i := strings.LastIndexAny(expr, "+-"); i > 0 {
		b, err := strconv.Atoi(expr[i:])
		if err != nil {
			return Formula{}, fmt.Errorf("invalid dice formula %q", s)
		}
		bonus = b
		expr = expr[:i]
	}

	parts := strings.Split(expr, "d")
	if len(parts) != 2 {
		return Formula{}, fmt.Errorf("invalid dice formula %q", s)
	}

	count := 1
	if parts[0] != "" {
		c, err := strconv.Atoi(parts[0])
		if err != nil || c < 0 {
			return Formula{}, fmt.Errorf("invalid dice count in %q", s)
		}
		count = c
	}

	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides < 1 {
		return Formula{}, fmt.Errorf("invalid dice size in %q", s)
	}

	return Formula{Count: count, Sides: sides, Bonus: bonus}, nil
}
