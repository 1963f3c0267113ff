package main

import (
	"github.com/spf13/cobra"
)

var statsSnapshotFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute derived stats for a character snapshot",
	Long: `Compute proficiency bonus, armor class, saving throws, skills, attacks,
spellcasting numbers, initiative, speed and hit point maximum for a snapshot.
Every total carries the breakdown of its contributions.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsSnapshotFile, "file", "f", "", "Snapshot JSON file, or - for stdin (required)")
	statsCmd.MarkFlagRequired("file")
}

func runStats(cmd *cobra.Command, args []string) error {
	snap, err := readSnapshot(statsSnapshotFile)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.service.ComputeDerivedStats(cmd.Context(), snap)
	if err != nil {
		return err
	}
	return printOutput(cmd.OutOrStdout(), stats)
}
