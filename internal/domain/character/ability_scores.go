package character

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// MaxAbilityScore is the highest score the rules allow
const MaxAbilityScore = 30

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an attribute, 0 for AttributeNone
func (a AbilityScores) Get(attr shared.Attribute) int {
	switch attr {
	case shared.AttributeStrength:
		return a.Strength
	case shared.AttributeDexterity:
		return a.Dexterity
	case shared.AttributeConstitution:
		return a.Constitution
	case shared.AttributeIntelligence:
		return a.Intelligence
	case shared.AttributeWisdom:
		return a.Wisdom
	case shared.AttributeCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Modifier returns the ability modifier for an attribute
func (a AbilityScores) Modifier(attr shared.Attribute) int {
	if attr == shared.AttributeNone {
		return 0
	}
	return shared.AbilityModifier(a.Get(attr))
}

// Modifiers returns every ability modifier keyed by attribute
func (a AbilityScores) Modifiers() map[shared.Attribute]int {
	out := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		out[attr] = a.Modifier(attr)
	}
	return out
}

// ToMap returns the scores keyed by attribute
func (a AbilityScores) ToMap() map[shared.Attribute]int {
	out := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		out[attr] = a.Get(attr)
	}
	return out
}

// IsZero reports whether no score is set
func (a AbilityScores) IsZero() bool {
	return a == AbilityScores{}
}

// AbilityScoresFromMap builds scores from an attribute map
func AbilityScoresFromMap(m map[shared.Attribute]int) AbilityScores {
	return AbilityScores{
		Strength:     m[shared.AttributeStrength],
		Dexterity:    m[shared.AttributeDexterity],
		Constitution: m[shared.AttributeConstitution],
		Intelligence: m[shared.AttributeIntelligence],
		Wisdom:       m[shared.AttributeWisdom],
		Charisma:     m[shared.AttributeCharisma],
	}
}
