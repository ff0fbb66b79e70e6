package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version of the advent command.
const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Solvers for the 2022 puzzle calendar",
	Long: `advent runs the daily puzzle solvers against locally stored inputs.

Inputs live in the data directory as day_<N>.txt files; every command
accepts --data-dir to point somewhere else.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding day_<N>.txt input files")
}

// inputPath resolves the input file for a day from the flags.
func inputPath(cmd *cobra.Command, day int) string {
	dir, _ := cmd.Flags().GetString("data-dir")

	return fmt.Sprintf("%s/day_%d.txt", dir, day)
}
