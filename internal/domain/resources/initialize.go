package resources

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// InitializeInput is the character a fresh state is built for
type InitializeInput struct {
	ID       string
	Class    string
	Subclass string
	// Race is optional; it sizes racial traits such as Breath Weapon
	Race  string
	Level int
	// MaxHP of 0 or less falls back to the class's average hit points
	MaxHP  int
	Scores character.AbilityScores
}

// Initialize builds a fresh state: every pool full, hit points at maximum,
// all counters and conditions cleared. Unknown classes get a d8 hit die and no
// spell slots.
func Initialize(in InitializeInput) *State {
	level := rulebook.ClampLevel(in.Level)
	mods := in.Scores.Modifiers()
	conMod := mods[shared.AttributeConstitution]

	maxHP := in.MaxHP
	if maxHP <= 0 {
		maxHP = rulebook.AverageMaxHP(in.Class, level, conMod)
	}

	state := &State{
		ID:          in.ID,
		Class:       in.Class,
		Subclass:    in.Subclass,
		Race:        in.Race,
		Level:       level,
		ConModifier: conMod,
		CurrentHP:   maxHP,
		MaxHP:       maxHP,
		HitDice: map[int]Pool{
			rulebook.HitDie(in.Class): {Max: level},
		},
	}

	casterType := rulebook.CasterTypeFor(in.Class, in.Subclass)
	if casterType == rulebook.CasterPact {
		count, slotLevel := rulebook.PactSlots(level)
		state.Pact = &PactMagic{Max: count, SlotLevel: slotLevel}
	} else if slots := rulebook.SpellSlots(casterType, level); len(slots) > 0 {
		state.SpellSlots = make(map[int]Pool, len(slots))
		for i, count := range slots {
			if count > 0 {
				state.SpellSlots[i+1] = Pool{Max: count}
			}
		}
	}

	limited := rulebook.LimitedFeatures(rulebook.LimitedFeatureInput{
		Class:     in.Class,
		Subclass:  in.Subclass,
		Race:      in.Race,
		Level:     level,
		Modifiers: mods,
	})
	if len(limited) > 0 {
		state.Features = make(map[string]Feature, len(limited))
		for _, lf := range limited {
			state.Features[lf.Key] = Feature{
				Key:       lf.Key,
				Name:      lf.Name,
				Max:       lf.Max,
				Recharge:  lf.Recharge,
				Unlimited: lf.Unlimited,
			}
		}
	}

	return state
}
