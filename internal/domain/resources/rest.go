package resources

import (
	"bytes"
	"encoding/json"
	"slices"

	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// HitDiceSpend is one group of hit dice spent during a short rest
type HitDiceSpend struct {
	// Die is the die size, e.g. 10 for d10. The wire form accepts 10, "10" or "d10".
	Die   int `json:"die"`
	Count int `json:"count"`
	// Rolls optionally supplies the raw die results, one per die. Missing
	// results use the average roll.
	Rolls []int `json:"rolls,omitempty"`
}

func (h *HitDiceSpend) UnmarshalJSON(data []byte) error {
	var raw struct {
		Die   json.RawMessage `json:"die"`
		Count int             `json:"count"`
		Rolls []int           `json:"rolls"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	die := 0
	if len(raw.Die) > 0 && !bytes.Equal(raw.Die, []byte("null")) {
		var name string
		if err := json.Unmarshal(raw.Die, &name); err == nil {
			parsed, ok := ParseDie(name)
			if !ok {
				return engineerr.InvalidArgumentf("invalid hit die %q", name).WithMeta("field", "die")
			}
			die = parsed
		} else if err := json.Unmarshal(raw.Die, &die); err != nil {
			return err
		}
	}

	*h = HitDiceSpend{Die: die, Count: raw.Count, Rolls: raw.Rolls}
	return nil
}

// AverageHitDieRoll is the average of a die rounded up: 6 for a d10
func AverageHitDieRoll(die int) int {
	return die/2 + 1
}

// HitDieHealing returns the hit points one die restores: the roll, clamped to
// the die, plus Constitution, minimum 1
func HitDieHealing(die, roll, conModifier int) int {
	return max(1, clamp(roll, 1, die)+conModifier)
}

// shortRest spends the requested hit dice, then recovers short-rest features
// and pact slots. Spell slots, long-rest features and exhaustion are untouched.
func (s *State) shortRest(spends []HitDiceSpend) int {
	if s.IsDead() {
		return 0
	}

	healed := 0
	for _, spend := range spends {
		pool, ok := s.HitDice[spend.Die]
		if !ok {
			continue
		}

		count := clamp(spend.Count, 0, pool.Remaining())
		if count == 0 {
			continue
		}
		s.HitDice[spend.Die] = pool.use(count)

		total := 0
		for i := range count {
			roll := AverageHitDieRoll(spend.Die)
			if i < len(spend.Rolls) {
				roll = spend.Rolls[i]
			}
			total += HitDieHealing(spend.Die, roll, s.ConModifier)
		}
		healed += s.heal(total)
	}

	for key, feature := range s.Features {
		if feature.Recharge.RecoversOnShortRest() {
			feature.Used = 0
			s.Features[key] = feature
		}
	}
	if s.Pact != nil {
		s.Pact.Used = 0
	}
	return healed
}

// longRest restores hit points and every slot and feature, recovers half
// the total hit dice (at least one, largest dice first), lowers exhaustion by
// one and clears conditions, concentration and death saves
func (s *State) longRest() {
	if s.IsDead() {
		return
	}

	s.CurrentHP = s.MaxHP
	s.TemporaryHP = 0

	for level, pool := range s.SpellSlots {
		pool.Used = 0
		s.SpellSlots[level] = pool
	}
	if s.Pact != nil {
		s.Pact.Used = 0
	}
	for key, feature := range s.Features {
		feature.Used = 0
		s.Features[key] = feature
	}

	s.recoverHitDice()

	s.Exhaustion = max(0, s.Exhaustion-1)
	s.Conditions = nil
	s.Concentration = ""
	s.DeathSaves = DeathSaves{}
}

func (s *State) recoverHitDice() {
	total := 0
	dice := make([]int, 0, len(s.HitDice))
	for die, pool := range s.HitDice {
		total += pool.Max
		dice = append(dice, die)
	}
	slices.Sort(dice)
	slices.Reverse(dice)

	budget := max(1, (total+1)/2)
	for _, die := range dice {
		if budget == 0 {
			break
		}
		pool := s.HitDice[die]
		recovered := min(budget, pool.Used)
		s.HitDice[die] = pool.recover(recovered)
		budget -= recovered
	}
}
