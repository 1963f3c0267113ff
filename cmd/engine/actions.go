package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-engine/internal/services/engine"
)

var (
	actionsSnapshotFile string
	actionsSpells       []string
	actionsStateFile    string
	actionsCharacterID  string
	actionsSheet        bool
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions a character can take",
	Long: `List standard actions, weapon attacks, spells and class, subclass and racial
features with their computed numbers. Availability follows the resource state
from --state or the stored state for --id; without either a fresh state is used.`,
	RunE: runActions,
}

func init() {
	actionsCmd.Flags().StringVarP(&actionsSnapshotFile, "file", "f", "", "Snapshot JSON file, or - for stdin (required)")
	actionsCmd.Flags().StringSliceVar(&actionsSpells, "spells", nil, "Spell names the character has prepared or knows")
	actionsCmd.Flags().StringVar(&actionsStateFile, "state", "", "State JSON file")
	actionsCmd.Flags().StringVar(&actionsCharacterID, "id", "", "Character ID of a stored state")
	actionsCmd.Flags().BoolVar(&actionsSheet, "sheet", false, "Print stats and state alongside the actions")
	actionsCmd.MarkFlagRequired("file")
	actionsCmd.MarkFlagsMutuallyExclusive("id", "state")
}

func runActions(cmd *cobra.Command, args []string) error {
	snap, err := readSnapshot(actionsSnapshotFile)
	if err != nil {
		return err
	}

	input := &engine.AggregateActionsInput{
		CharacterID: actionsCharacterID,
		Snapshot:    snap,
	}
	for _, name := range actionsSpells {
		if name = strings.TrimSpace(name); name != "" {
			input.Spells = append(input.Spells, name)
		}
	}
	if actionsStateFile != "" {
		input.State, err = readState(actionsStateFile)
		if err != nil {
			return err
		}
	}

	a, err := newApp(cmd.Context(), actionsCharacterID != "")
	if err != nil {
		return err
	}
	defer a.Close()

	if actionsSheet {
		sheet, err := a.service.Sheet(cmd.Context(), input)
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), sheet)
	}

	out, err := a.service.AggregateActions(cmd.Context(), input)
	if err != nil {
		return err
	}
	return printOutput(cmd.OutOrStdout(), out)
}
