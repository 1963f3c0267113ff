package shared

import "strings"

// Attribute is one of the six ability scores
type Attribute string

// Attributes lists the abilities in sheet order
var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

// Name returns the long lower-case name used in snapshots, e.g. "dexterity"
func (a Attribute) Name() string {
	switch a {
	case AttributeStrength:
		return "strength"
	case AttributeDexterity:
		return "dexterity"
	case AttributeConstitution:
		return "constitution"
	case AttributeIntelligence:
		return "intelligence"
	case AttributeWisdom:
		return "wisdom"
	case AttributeCharisma:
		return "charisma"
	default:
		return ""
	}
}

// ParseAttribute accepts short or long ability names in any case.
// Unknown names return AttributeNone.
func ParseAttribute(s string) Attribute {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "strength":
		return AttributeStrength
	case "dex", "dexterity":
		return AttributeDexterity
	case "con", "constitution":
		return AttributeConstitution
	case "int", "intelligence":
		return AttributeIntelligence
	case "wis", "wisdom":
		return AttributeWisdom
	case "cha", "charisma":
		return AttributeCharisma
	default:
		return AttributeNone
	}
}

// AbilityModifier converts a score into its modifier, floor((score-10)/2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// integer division truncates toward zero
		return (diff - 1) / 2
	}
	return diff / 2
}
