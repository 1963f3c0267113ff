package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/services/engine"
)

var (
	applyCharacterID string
	applyOperation   string
	applyStateFile   string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply one operation to a resource state",
	Long: `Apply one operation and print the resulting state.

With --id the stored state is loaded, changed and saved back. With --state the
state is read from a file and the result is only printed.

Operations:
  {"type":"use_resource","pool":"spell:3"}
  {"type":"recover_resource","pool":"feature:rage","amount":1}
  {"type":"short_rest","hit_dice":[{"die":"d10","count":2,"rolls":[7]}]}
  {"type":"long_rest"}
  {"type":"update_death_saves","successes":1,"failures":2}
  {"type":"roll_death_save","roll":14}
  {"type":"set_concentration","spell":"Bless"}
  {"type":"damage","amount":12}
  {"type":"heal","amount":7}
  {"type":"set_temporary_hp","amount":5}
  {"type":"add_condition","condition":"poisoned"}
  {"type":"remove_condition","condition":"poisoned"}
  {"type":"set_exhaustion","level":2}

use_resource and recover_resource move one use when amount is omitted or 0.
Negative amounts change nothing.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyCharacterID, "id", "", "Character ID of a stored state")
	applyCmd.Flags().StringVar(&applyOperation, "op", "", "Operation JSON (required)")
	applyCmd.Flags().StringVar(&applyStateFile, "state", "", "State JSON file, or - for stdin")
	applyCmd.MarkFlagRequired("op")
	applyCmd.MarkFlagsMutuallyExclusive("id", "state")
	applyCmd.MarkFlagsOneRequired("id", "state")
}

func runApply(cmd *cobra.Command, args []string) error {
	op, err := resources.DecodeOperation([]byte(applyOperation))
	if err != nil {
		return fmt.Errorf("invalid --op: %w", err)
	}

	input := &engine.MutateResourcesInput{
		CharacterID: applyCharacterID,
		Operation:   op,
	}
	if applyStateFile != "" {
		input.State, err = readState(applyStateFile)
		if err != nil {
			return err
		}
	}

	a, err := newApp(cmd.Context(), input.State == nil)
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.service.MutateResources(cmd.Context(), input)
	if err != nil {
		return err
	}
	return printOutput(cmd.OutOrStdout(), out.State)
}
