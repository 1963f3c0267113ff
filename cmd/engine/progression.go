package main

import (
	"slices"

	"github.com/spf13/cobra"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
)

var (
	progressionClass    string
	progressionSubclass string
	progressionMod      int
)

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Print a class's progression table",
	Long: `Print hit die, ASI levels, caster type and saving throws for a class, followed
by one row per level with proficiency bonus, spell slots, pact slots, cantrips,
spells known and prepared spell count. Unknown classes print the defaults.`,
	RunE: runProgression,
}

func init() {
	progressionCmd.Flags().StringVar(&progressionClass, "class", "", "Class name (required)")
	progressionCmd.Flags().StringVar(&progressionSubclass, "subclass", "", "Subclass name, for third casters")
	progressionCmd.Flags().IntVar(&progressionMod, "ability-mod", 3, "Spellcasting ability modifier used for prepared spells")
	progressionCmd.MarkFlagRequired("class")
}

type progressionLevel struct {
	Level            int   `json:"level"`
	ProficiencyBonus int   `json:"proficiency_bonus"`
	ASI              bool  `json:"asi,omitempty"`
	SpellSlots       []int `json:"spell_slots,omitempty"`
	PactSlots        int   `json:"pact_slots,omitempty"`
	PactSlotLevel    int   `json:"pact_slot_level,omitempty"`
	Cantrips         int   `json:"cantrips,omitempty"`
	SpellsKnown      int   `json:"spells_known,omitempty"`
	PreparedSpells   int   `json:"prepared_spells,omitempty"`
	AverageMaxHP     int   `json:"average_max_hp"`
}

type progressionTable struct {
	rulebook.ClassProgression
	Levels []progressionLevel `json:"levels"`
}

func runProgression(cmd *cobra.Command, args []string) error {
	progression := rulebook.GetClassProgression(progressionClass)
	casterType := rulebook.CasterTypeFor(progressionClass, progressionSubclass)
	progression.CasterType = casterType

	table := progressionTable{ClassProgression: progression}
	for level := rulebook.MinLevel; level <= rulebook.MaxLevel; level++ {
		row := progressionLevel{
			Level:            level,
			ProficiencyBonus: rulebook.ProficiencyBonus(level),
			ASI:              slices.Contains(progression.ASILevels, level),
			Cantrips:         rulebook.CantripsKnown(progressionClass, progressionSubclass, level),
			AverageMaxHP:     rulebook.AverageMaxHP(progressionClass, level, 0),
		}
		if casterType == rulebook.CasterPact {
			row.PactSlots, row.PactSlotLevel = rulebook.PactSlots(level)
		} else {
			row.SpellSlots = trimZeros(rulebook.SpellSlots(casterType, level))
		}
		if known, ok := rulebook.SpellsKnown(progressionClass, progressionSubclass, level); ok {
			row.SpellsKnown = known
		}
		if prepared, ok := rulebook.PreparedSpells(progressionClass, level, progressionMod); ok {
			row.PreparedSpells = prepared
		}
		table.Levels = append(table.Levels, row)
	}

	return printOutput(cmd.OutOrStdout(), table)
}

// trimZeros drops empty trailing slot levels
func trimZeros(slots []int) []int {
	end := len(slots)
	for end > 0 && slots[end-1] == 0 {
		end--
	}
	return slots[:end]
}
