// Package resources owns the mutable per-character resource pool: hit points,
// spell and pact slots, hit dice, limited-use features, conditions,
// exhaustion, death saves and concentration.
//
// Every transition clamps its input into range instead of failing, so a
// stale or racing caller can never push a pool out of bounds.
package resources

import (
	"slices"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// MaxDeathSaves is the number of successes or failures that ends the death-save cycle
const MaxDeathSaves = 3

// Pool is a counted resource. Used never exceeds Max.
type Pool struct {
	Used int `json:"used"`
	Max  int `json:"max"`
}

// Remaining returns the unused count
func (p Pool) Remaining() int {
	return p.Max - p.Used
}

// Available reports whether at least one use is left
func (p Pool) Available() bool {
	return p.Used < p.Max
}

func (p Pool) use(amount int) Pool {
	p.Used = clamp(p.Used+amount, 0, p.Max)
	return p
}

func (p Pool) recover(amount int) Pool {
	p.Used = clamp(p.Used-amount, 0, p.Max)
	return p
}

// PactMagic tracks warlock-style slots, all of one slot level
type PactMagic struct {
	Used      int `json:"used"`
	Max       int `json:"max"`
	SlotLevel int `json:"slot_level"`
}

// Pool returns the slot counts as a plain pool
func (p PactMagic) Pool() Pool {
	return Pool{Used: p.Used, Max: p.Max}
}

// Feature is a limited-use class or racial feature
type Feature struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Used      int             `json:"used"`
	Max       int             `json:"max"`
	Recharge  shared.RestType `json:"recharge"`
	Unlimited bool            `json:"unlimited,omitempty"`
}

// Pool returns the feature's counts as a plain pool
func (f Feature) Pool() Pool {
	return Pool{Used: f.Used, Max: f.Max}
}

// Available reports whether the feature can be used now
func (f Feature) Available() bool {
	return f.Unlimited || f.Used < f.Max
}

// DeathSaves counts death-save results while at 0 hit points
type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// IsStable reports three successes
func (d DeathSaves) IsStable() bool {
	return d.Successes >= MaxDeathSaves
}

// IsDead reports three failures
func (d DeathSaves) IsDead() bool {
	return d.Failures >= MaxDeathSaves
}

// IsZero reports whether no death save has been recorded
func (d DeathSaves) IsZero() bool {
	return d.Successes == 0 && d.Failures == 0
}

// State is the persisted resource pool of one character incarnation
type State struct {
	// ID identifies the incarnation; a new one is assigned on every Initialize
	ID          string `json:"id"`
	CharacterID string `json:"character_id,omitempty"`

	Class       string `json:"class"`
	Subclass    string `json:"subclass,omitempty"`
	Race        string `json:"race,omitempty"`
	Level       int    `json:"level"`
	ConModifier int    `json:"con_modifier"`

	CurrentHP   int `json:"current_hp"`
	MaxHP       int `json:"max_hp"`
	TemporaryHP int `json:"temporary_hp"`

	// SpellSlots is keyed by spell level
	SpellSlots map[int]Pool `json:"spell_slots,omitempty"`
	Pact       *PactMagic   `json:"pact,omitempty"`

	// HitDice is keyed by die size
	HitDice  map[int]Pool       `json:"hit_dice"`
	Features map[string]Feature `json:"features,omitempty"`

	DeathSaves    DeathSaves             `json:"death_saves"`
	Conditions    []shared.ConditionType `json:"conditions,omitempty"`
	Exhaustion    int                    `json:"exhaustion"`
	Concentration string                 `json:"concentration,omitempty"`
}

// IsDead reports three failed death saves. Exhaustion 6 is tracked as a
// level only; a long rest still lowers it.
func (s *State) IsDead() bool {
	return s.DeathSaves.IsDead()
}

// IsDying reports a living character at 0 hit points who is not yet stable
func (s *State) IsDying() bool {
	return s.CurrentHP == 0 && !s.IsDead() && !s.DeathSaves.IsStable()
}

// HasCondition reports whether the condition is active
func (s *State) HasCondition(condition shared.ConditionType) bool {
	return slices.Contains(s.Conditions, condition)
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	out := *s
	if s.SpellSlots != nil {
		out.SpellSlots = make(map[int]Pool, len(s.SpellSlots))
		for k, v := range s.SpellSlots {
			out.SpellSlots[k] = v
		}
	}
	if s.Pact != nil {
		pact := *s.Pact
		out.Pact = &pact
	}
	if s.HitDice != nil {
		out.HitDice = make(map[int]Pool, len(s.HitDice))
		for k, v := range s.HitDice {
			out.HitDice[k] = v
		}
	}
	if s.Features != nil {
		out.Features = make(map[string]Feature, len(s.Features))
		for k, v := range s.Features {
			out.Features[k] = v
		}
	}
	out.Conditions = slices.Clone(s.Conditions)
	return &out
}

// Normalize clamps every counter into its documented bounds. States read back
// from storage or supplied by a caller pass through here before use.
func (s *State) Normalize() {
	s.MaxHP = max(0, s.MaxHP)
	s.CurrentHP = clamp(s.CurrentHP, 0, s.MaxHP)
	s.TemporaryHP = max(0, s.TemporaryHP)

	for level, pool := range s.SpellSlots {
		s.SpellSlots[level] = normalizePool(pool)
	}
	for die, pool := range s.HitDice {
		s.HitDice[die] = normalizePool(pool)
	}
	if s.Pact != nil {
		s.Pact.Max = max(0, s.Pact.Max)
		s.Pact.Used = clamp(s.Pact.Used, 0, s.Pact.Max)
	}
	for key, feature := range s.Features {
		feature.Max = max(0, feature.Max)
		feature.Used = clamp(feature.Used, 0, feature.Max)
		s.Features[key] = feature
	}

	s.DeathSaves.Successes = clamp(s.DeathSaves.Successes, 0, MaxDeathSaves)
	s.DeathSaves.Failures = clamp(s.DeathSaves.Failures, 0, MaxDeathSaves)
	s.Exhaustion = clamp(s.Exhaustion, 0, shared.MaxExhaustion)
}

func normalizePool(p Pool) Pool {
	p.Max = max(0, p.Max)
	p.Used = clamp(p.Used, 0, p.Max)
	return p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
