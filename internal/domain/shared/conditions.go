package shared

import "strings"

// ConditionType represents standard D&D 5e conditions
type ConditionType string

const (
	ConditionBlinded       ConditionType = "blinded"
	ConditionCharmed       ConditionType = "charmed"
	ConditionDeafened      ConditionType = "deafened"
	ConditionFrightened    ConditionType = "frightened"
	ConditionGrappled      ConditionType = "grappled"
	ConditionIncapacitated ConditionType = "incapacitated"
	ConditionInvisible     ConditionType = "invisible"
	ConditionParalyzed     ConditionType = "paralyzed"
	ConditionPetrified     ConditionType = "petrified"
	ConditionPoisoned      ConditionType = "poisoned"
	ConditionProne         ConditionType = "prone"
	ConditionRestrained    ConditionType = "restrained"
	ConditionStunned       ConditionType = "stunned"
	ConditionUnconscious   ConditionType = "unconscious"
)

var knownConditions = map[ConditionType]bool{
	ConditionBlinded:       true,
	ConditionCharmed:       true,
	ConditionDeafened:      true,
	ConditionFrightened:    true,
	ConditionGrappled:      true,
	ConditionIncapacitated: true,
	ConditionInvisible:     true,
	ConditionParalyzed:     true,
	ConditionPetrified:     true,
	ConditionPoisoned:      true,
	ConditionProne:         true,
	ConditionRestrained:    true,
	ConditionStunned:       true,
	ConditionUnconscious:   true,
}

// ParseCondition normalizes a condition name. Exhaustion is tracked as a level,
// not a condition, so it is reported unknown here.
func ParseCondition(s string) (ConditionType, bool) {
	c := ConditionType(strings.ToLower(strings.TrimSpace(s)))
	return c, knownConditions[c]
}

// MaxExhaustion is the highest exhaustion level
const MaxExhaustion = 6
