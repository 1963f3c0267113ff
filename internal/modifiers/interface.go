package modifiers

// Target is the statistic a modifier adjusts
type Target string

const (
	TargetAC           Target = "ac"
	TargetAttack       Target = "attack"
	TargetDamage       Target = "damage"
	TargetSavingThrow  Target = "saving_throw"
	TargetSkill        Target = "skill"
	TargetAbilityCheck Target = "ability_check"
	TargetInitiative   Target = "initiative"
	TargetSpeed        Target = "speed"
	TargetSpellAttack  Target = "spell_attack"
	TargetSpellDC      Target = "spell_dc"
	TargetHPMax        Target = "hp_max"
)

var knownTargets = map[Target]bool{
	TargetAC: true, TargetAttack: true, TargetDamage: true, TargetSavingThrow: true,
	TargetSkill: true, TargetAbilityCheck: true, TargetInitiative: true, TargetSpeed: true,
	TargetSpellAttack: true, TargetSpellDC: true, TargetHPMax: true,
}

// Valid reports whether the target is one the engine aggregates
func (t Target) Valid() bool {
	return knownTargets[t]
}

// Stacking controls how modifiers in the same group combine
type Stacking string

const (
	// StackingStack adds every modifier (the default)
	StackingStack Stacking = "stack"
	// StackingTakeHighest applies only the largest modifier of its group
	StackingTakeHighest Stacking = "take_highest"
	// StackingReplace applies only the last modifier of its group
	StackingReplace Stacking = "replace"
)

// SourceType defines where a modifier comes from
type SourceType string

const (
	SourceTypeBase          SourceType = "base"
	SourceTypeItem          SourceType = "item"
	SourceTypeClassFeature  SourceType = "class_feature"
	SourceTypeRacialTrait   SourceType = "racial_trait"
	SourceTypeFightingStyle SourceType = "fighting_style"
)

// Source describes where a modifier originates
type Source struct {
	Type SourceType `json:"type"`
	Name string     `json:"name"`
	ID   string     `json:"id,omitempty"`
}

// Modifier is a flat numeric bonus (or penalty) to one target.
// An empty SubTarget applies to every sub-target, e.g. all saving throws.
type Modifier struct {
	Target    Target   `json:"target"`
	SubTarget string   `json:"sub_target,omitempty"`
	Value     int      `json:"value"`
	Stacking  Stacking `json:"stacking,omitempty"`
	Group     string   `json:"group,omitempty"`
	Source    Source   `json:"source"`
}

// Applies reports whether the modifier affects target/subTarget.
// A global modifier applies to every sub-target; a specific one only to its own.
func (m Modifier) Applies(target Target, subTarget string) bool {
	if m.Target != target {
		return false
	}
	return m.SubTarget == "" || m.SubTarget == subTarget
}

func (m Modifier) stacking() Stacking {
	if m.Stacking == "" {
		return StackingStack
	}
	return m.Stacking
}

func (m Modifier) group() string {
	if m.Group != "" {
		return m.Group
	}
	return string(m.Target) + ":" + m.SubTarget
}
