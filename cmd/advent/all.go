package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/adventcode/advent2022/input"
	"github.com/adventcode/advent2022/solve"
	"github.com/spf13/cobra"
)

// allCmd solves every day whose input file is present.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day with an input file in the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		timed, _ := cmd.Flags().GetBool("time")

		solved := 0
		for _, day := range solve.Days() {
			path := inputPath(cmd, day)
			text, err := input.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				cmd.Printf("day %d: skipped, no %s\n", day, path)
				continue
			}
			if err != nil {
				return err
			}

			started := time.Now()
			answers, err := solve.Run(day, text)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
			printAnswers(cmd, day, answers)
			if timed {
				cmd.Printf("day %d took %s\n", day, time.Since(started).Round(time.Millisecond))
			}
			solved++
		}
		if solved == 0 {
			return fmt.Errorf("no input files found, looked for day_<N>.txt files")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)

	allCmd.Flags().Bool("time", false, "print how long each day took")
}
