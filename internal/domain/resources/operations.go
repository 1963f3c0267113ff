package resources

import (
	"strings"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// OperationType names a state transition on the wire
type OperationType string

const (
	OpUseResource      OperationType = "use_resource"
	OpRecoverResource  OperationType = "recover_resource"
	OpShortRest        OperationType = "short_rest"
	OpLongRest         OperationType = "long_rest"
	OpUpdateDeathSaves OperationType = "update_death_saves"
	OpRollDeathSave    OperationType = "roll_death_save"
	OpSetConcentration OperationType = "set_concentration"
	OpDamage           OperationType = "damage"
	OpHeal             OperationType = "heal"
	OpSetTemporaryHP   OperationType = "set_temporary_hp"
	OpAddCondition     OperationType = "add_condition"
	OpRemoveCondition  OperationType = "remove_condition"
	OpSetExhaustion    OperationType = "set_exhaustion"
)

// Operation is one named transition of a State
type Operation interface {
	Type() OperationType
	apply(s *State)
}

// Apply runs op against a copy of state and returns the new state. The input
// is never modified. A nil op returns an unchanged copy.
func Apply(state *State, op Operation) *State {
	next := state.Clone()
	if next == nil {
		next = &State{}
	}
	next.Normalize()
	if op != nil {
		op.apply(next)
	}
	return next
}

// UseResource marks uses of a pool as spent. An Amount of 0 spends one;
// negative amounts are ignored.
type UseResource struct {
	Pool   string `json:"pool"`
	Amount int    `json:"amount,omitempty"`
}

func (UseResource) Type() OperationType { return OpUseResource }

func (o UseResource) apply(s *State) {
	s.adjust(o.Pool, defaultAmount(o.Amount))
}

// RecoverResource returns uses to a pool. An Amount of 0 recovers one;
// negative amounts are ignored.
type RecoverResource struct {
	Pool   string `json:"pool"`
	Amount int    `json:"amount,omitempty"`
}

func (RecoverResource) Type() OperationType { return OpRecoverResource }

func (o RecoverResource) apply(s *State) {
	s.adjust(o.Pool, -defaultAmount(o.Amount))
}

func defaultAmount(amount int) int {
	if amount == 0 {
		return 1
	}
	return max(0, amount)
}

// ShortRest spends hit dice for healing and recovers short-rest resources
type ShortRest struct {
	HitDice []HitDiceSpend `json:"hit_dice,omitempty"`
}

func (ShortRest) Type() OperationType { return OpShortRest }

func (o ShortRest) apply(s *State) {
	s.shortRest(o.HitDice)
}

// LongRest restores the character fully
type LongRest struct{}

func (LongRest) Type() OperationType { return OpLongRest }

func (LongRest) apply(s *State) {
	s.longRest()
}

// UpdateDeathSaves sets the death-save counters
type UpdateDeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

func (UpdateDeathSaves) Type() OperationType { return OpUpdateDeathSaves }

func (o UpdateDeathSaves) apply(s *State) {
	s.updateDeathSaves(o.Successes, o.Failures)
}

// RollDeathSave records a d20 death-save result
type RollDeathSave struct {
	Roll int `json:"roll"`
}

func (RollDeathSave) Type() OperationType { return OpRollDeathSave }

func (o RollDeathSave) apply(s *State) {
	s.rollDeathSave(o.Roll)
}

// SetConcentration replaces the concentration target. An empty Spell breaks
// concentration.
type SetConcentration struct {
	Spell string `json:"spell,omitempty"`
}

func (SetConcentration) Type() OperationType { return OpSetConcentration }

func (o SetConcentration) apply(s *State) {
	s.Concentration = strings.TrimSpace(o.Spell)
}

// Damage reduces hit points
type Damage struct {
	Amount int `json:"amount"`
}

func (Damage) Type() OperationType { return OpDamage }

func (o Damage) apply(s *State) {
	s.damage(o.Amount)
}

// Heal restores hit points
type Heal struct {
	Amount int `json:"amount"`
}

func (Heal) Type() OperationType { return OpHeal }

func (o Heal) apply(s *State) {
	s.heal(o.Amount)
}

// SetTemporaryHP grants temporary hit points
type SetTemporaryHP struct {
	Amount int `json:"amount"`
}

func (SetTemporaryHP) Type() OperationType { return OpSetTemporaryHP }

func (o SetTemporaryHP) apply(s *State) {
	s.setTemporaryHP(o.Amount)
}

// AddCondition applies a condition; unknown names are ignored
type AddCondition struct {
	Condition string `json:"condition"`
}

func (AddCondition) Type() OperationType { return OpAddCondition }

func (o AddCondition) apply(s *State) {
	if condition, ok := shared.ParseCondition(o.Condition); ok {
		s.addCondition(condition)
	}
}

// RemoveCondition ends a condition
type RemoveCondition struct {
	Condition string `json:"condition"`
}

func (RemoveCondition) Type() OperationType { return OpRemoveCondition }

func (o RemoveCondition) apply(s *State) {
	if condition, ok := shared.ParseCondition(o.Condition); ok {
		s.removeCondition(condition)
	}
}

// SetExhaustion sets the exhaustion level, clamped to [0, 6]
type SetExhaustion struct {
	Level int `json:"level"`
}

func (SetExhaustion) Type() OperationType { return OpSetExhaustion }

func (o SetExhaustion) apply(s *State) {
	s.Exhaustion = clamp(o.Level, 0, shared.MaxExhaustion)
}
