package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-character-engine/internal/services/engine"
)

var (
	initSnapshotFile string
	initMaxHP        int
	initCharacterID  string
	initPersist      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Build a fresh resource state for a character",
	Long: `Build a resource state with every pool full and hit points at maximum.

Without --max-hp the maximum comes from the snapshot (its recorded max_hp or the
class average). With --persist the state is stored in Redis under --id, replacing
any state the character already had.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initSnapshotFile, "file", "f", "", "Snapshot JSON file, or - for stdin (required)")
	initCmd.Flags().IntVar(&initMaxHP, "max-hp", 0, "Hit point maximum (default derived from the snapshot)")
	initCmd.Flags().StringVar(&initCharacterID, "id", "", "Character ID to store the state under")
	initCmd.Flags().BoolVar(&initPersist, "persist", false, "Store the state in Redis")
	initCmd.MarkFlagRequired("file")
}

func runInit(cmd *cobra.Command, args []string) error {
	snap, err := readSnapshot(initSnapshotFile)
	if err != nil {
		return err
	}

	input := &engine.InitializeResourcesInput{
		Snapshot: snap,
		MaxHP:    initMaxHP,
	}
	if initPersist {
		input.CharacterID = initCharacterID
		if input.CharacterID == "" {
			input.CharacterID = snap.ID
		}
		if input.CharacterID == "" {
			return fmt.Errorf("--persist needs --id or a snapshot id")
		}
	}

	a, err := newApp(cmd.Context(), initPersist)
	if err != nil {
		return err
	}
	defer a.Close()

	state, err := a.service.InitializeResources(cmd.Context(), input)
	if err != nil {
		return err
	}
	if !initPersist {
		state.CharacterID = initCharacterID
	}
	return printOutput(cmd.OutOrStdout(), state)
}
