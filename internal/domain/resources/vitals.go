package resources

import (
	"slices"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Natural death-save rolls with special outcomes
const (
	DeathSaveCriticalSuccess = 20
	DeathSaveCriticalFailure = 1
	DeathSaveDC              = 10
)

// damage applies damage, temporary hit points first. Dropping to 0 knocks the
// character unconscious and ends concentration; damage taken at 0 counts as a
// failed death save. Damage left over at 0 that reaches the hit point
// maximum kills outright.
func (s *State) damage(amount int) {
	if amount <= 0 || s.IsDead() {
		return
	}

	if s.TemporaryHP > 0 {
		absorbed := min(s.TemporaryHP, amount)
		s.TemporaryHP -= absorbed
		amount -= absorbed
		if amount == 0 {
			return
		}
	}

	if s.CurrentHP == 0 {
		if amount >= s.MaxHP {
			s.DeathSaves.Failures = MaxDeathSaves
			return
		}
		if s.DeathSaves.IsStable() {
			s.DeathSaves.Successes = 0
		}
		s.DeathSaves.Failures = min(s.DeathSaves.Failures+1, MaxDeathSaves)
		return
	}

	overflow := amount - s.CurrentHP
	s.CurrentHP = max(0, s.CurrentHP-amount)
	if s.CurrentHP > 0 {
		return
	}

	s.Concentration = ""
	s.addCondition(shared.ConditionUnconscious)
	if overflow >= s.MaxHP {
		s.DeathSaves.Failures = MaxDeathSaves
	}
}

// heal restores hit points up to the maximum. Any healing at 0 resets the
// death saves and wakes the character. The dead cannot be healed.
func (s *State) heal(amount int) int {
	if amount <= 0 || s.IsDead() || s.CurrentHP >= s.MaxHP {
		return 0
	}

	before := s.CurrentHP
	s.CurrentHP = min(s.MaxHP, s.CurrentHP+amount)
	if before == 0 {
		s.DeathSaves = DeathSaves{}
		s.removeCondition(shared.ConditionUnconscious)
	}
	return s.CurrentHP - before
}

// setTemporaryHP keeps the higher of the current and new value; temporary
// hit points never stack
func (s *State) setTemporaryHP(amount int) {
	s.TemporaryHP = max(s.TemporaryHP, amount, 0)
}

// updateDeathSaves sets both counters, clamped to [0, 3]. Once the character
// is stable or dead only an explicit reset to (0, 0) is accepted.
func (s *State) updateDeathSaves(successes, failures int) {
	successes = clamp(successes, 0, MaxDeathSaves)
	failures = clamp(failures, 0, MaxDeathSaves)

	reset := successes == 0 && failures == 0
	if !reset && (s.DeathSaves.IsDead() || s.DeathSaves.IsStable()) {
		return
	}
	s.DeathSaves = DeathSaves{Successes: successes, Failures: failures}
}

// rollDeathSave records one d20 death save. Rolls outside 1-20 are clamped.
func (s *State) rollDeathSave(roll int) {
	if !s.IsDying() {
		return
	}

	switch roll = clamp(roll, 1, 20); {
	case roll == DeathSaveCriticalSuccess:
		s.heal(1)
	case roll == DeathSaveCriticalFailure:
		s.DeathSaves.Failures = min(s.DeathSaves.Failures+2, MaxDeathSaves)
	case roll >= DeathSaveDC:
		s.DeathSaves.Successes = min(s.DeathSaves.Successes+1, MaxDeathSaves)
	default:
		s.DeathSaves.Failures = min(s.DeathSaves.Failures+1, MaxDeathSaves)
	}
}

// addCondition keeps the set sorted and free of duplicates
func (s *State) addCondition(condition shared.ConditionType) {
	if s.HasCondition(condition) {
		return
	}
	s.Conditions = append(s.Conditions, condition)
	slices.Sort(s.Conditions)
}

func (s *State) removeCondition(condition shared.ConditionType) {
	s.Conditions = slices.DeleteFunc(s.Conditions, func(c shared.ConditionType) bool {
		return c == condition
	})
	if len(s.Conditions) == 0 {
		s.Conditions = nil
	}
}
