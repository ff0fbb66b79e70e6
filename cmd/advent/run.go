package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adventcode/advent2022/input"
	"github.com/adventcode/advent2022/solve"
	"github.com/spf13/cobra"
)

// runCmd solves one day and prints both answers.
var runCmd = &cobra.Command{
	Use:   "run <day>",
	Short: "Solve one day and print both answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("day must be a number, got %q", args[0])
		}

		path, _ := cmd.Flags().GetString("input")
		if path == "" {
			path = inputPath(cmd, day)
		}
		text, err := input.ReadFile(path)
		if err != nil {
			return err
		}

		answers, err := solve.Run(day, text)
		if err != nil {
			return err
		}
		printAnswers(cmd, day, answers)

		return nil
	},
}

// printAnswers writes both parts; multi-line answers (the CRT image) go on
// their own lines.
func printAnswers(cmd *cobra.Command, day int, a solve.Answers) {
	cmd.Printf("day %d part 1: %s\n", day, a.Part1)
	if strings.Contains(a.Part2, "\n") {
		cmd.Printf("day %d part 2:\n%s\n", day, a.Part2)
	} else {
		cmd.Printf("day %d part 2: %s\n", day, a.Part2)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("input", "", "input file (default <data-dir>/day_<N>.txt)")
}
