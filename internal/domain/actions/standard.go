package actions

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

type standardAction struct {
	key         string
	name        string
	timing      shared.ActionTiming
	description string
}

// StandardActionCount is the number of generic actions every character has
const StandardActionCount = 10

var standardActions = [StandardActionCount]standardAction{
	{"attack", "Attack", shared.TimingAction, "Make one melee or ranged attack"},
	{"dash", "Dash", shared.TimingAction, "Gain extra movement equal to your speed"},
	{"disengage", "Disengage", shared.TimingAction, "Your movement doesn't provoke opportunity attacks"},
	{"dodge", "Dodge", shared.TimingAction, "Attacks against you have disadvantage; advantage on Dexterity saves"},
	{"help", "Help", shared.TimingAction, "Give an ally advantage on their next check or attack"},
	{"hide", "Hide", shared.TimingAction, "Make a Dexterity (Stealth) check to hide"},
	{"ready", "Ready", shared.TimingAction, "Prepare an action to trigger on a circumstance"},
	{"search", "Search", shared.TimingAction, "Devote your attention to finding something"},
	{"use-an-object", "Use an Object", shared.TimingAction, "Interact with a second object or use a special one"},
	{"opportunity-attack", "Opportunity Attack", shared.TimingReaction, "Make one melee attack against a creature leaving your reach"},
}

func standardDescriptors(meleeAttack int) []Descriptor {
	out := make([]Descriptor, 0, len(standardActions))
	for _, a := range standardActions {
		d := Descriptor{
			Key:         string(SourceStandard) + ":" + a.key,
			Name:        a.name,
			Description: a.description,
			Timing:      a.timing,
			Source:      SourceStandard,
			Available:   true,
		}
		if a.key == "opportunity-attack" {
			d.AttackBonus = intPtr(meleeAttack)
		}
		out = append(out, d)
	}
	return out
}
