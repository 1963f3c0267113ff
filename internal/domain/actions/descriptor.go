// Package actions lists what a character can do right now: the standard
// actions every creature has, weapon and spell attacks, and class, subclass
// and racial features with their computed numbers and availability.
package actions

import (
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Source is where an action comes from
type Source string

const (
	SourceStandard Source = "standard"
	SourceWeapon   Source = "weapon"
	SourceSpell    Source = "spell"
	SourceClass    Source = "class"
	SourceSubclass Source = "subclass"
	SourceRace     Source = "race"
	SourceItem     Source = "item"
)

// Descriptor is one action the character can take. It is recomputed on every
// request and never stored.
type Descriptor struct {
	Key         string              `json:"key"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Timing      shared.ActionTiming `json:"timing"`
	Source      Source              `json:"source"`
	// Origin names the weapon, class, subclass or race that grants the action
	Origin string `json:"origin,omitempty"`
	Level  int    `json:"level,omitempty"`

	AttackBonus *int             `json:"attack_bonus,omitempty"`
	Damage      string           `json:"damage,omitempty"`
	DamageType  string           `json:"damage_type,omitempty"`
	Healing     string           `json:"healing,omitempty"`
	SaveDC      *int             `json:"save_dc,omitempty"`
	SaveAbility shared.Attribute `json:"save_ability,omitempty"`
	// UpCast lists damage or healing at each higher slot level the character can use
	UpCast map[int]string `json:"up_cast,omitempty"`

	ResourceKey   string            `json:"resource_key,omitempty"`
	Limited       bool              `json:"limited"`
	Available     bool              `json:"available"`
	Concentration bool              `json:"concentration,omitempty"`
	Ritual        bool              `json:"ritual,omitempty"`
	Mechanic      rulebook.Mechanic `json:"mechanic,omitempty"`
	Summary       string            `json:"summary,omitempty"`
}

// HasMechanics reports whether the action carries computed numbers
func (d *Descriptor) HasMechanics() bool {
	return d.AttackBonus != nil || d.SaveDC != nil || d.Damage != "" || d.Healing != ""
}

func intPtr(v int) *int {
	return &v
}
