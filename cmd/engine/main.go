// Package main is the command line entry point for the character engine
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Output flags
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "D&D 5e character rules engine",
	Long: `engine computes derived stats and available actions for a character snapshot
and manages the character's persisted resource state (hit points, slots, hit dice,
limited features, conditions and death saves).`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "Output format (json or yaml)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(progressionCmd)
}
