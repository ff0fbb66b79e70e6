package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/adventcode/advent2022/input"
	"github.com/adventcode/advent2022/solve"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// checkCmd re-solves the days listed in an answers file and compares.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify solver output against a recorded answers file",
	Long: `check re-runs every day listed in the answers file against its input
and compares both parts. The file is YAML, keyed by day number:

    16:
      part1: "1651"
      part2: "1707"

Blank expected values are skipped, so partially filled files work.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		expected, err := loadAnswers(path)
		if err != nil {
			return err
		}

		days := make([]int, 0, len(expected))
		for day := range expected {
			days = append(days, day)
		}
		sort.Ints(days)

		failures := 0
		for _, day := range days {
			text, err := input.ReadFile(inputPath(cmd, day))
			if err != nil {
				return err
			}
			got, err := solve.Run(day, text)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}

			want := expected[day]
			failures += compare(cmd, day, 1, want.Part1, got.Part1)
			failures += compare(cmd, day, 2, want.Part2, got.Part2)
		}
		if failures > 0 {
			return fmt.Errorf("%d answer(s) differ", failures)
		}
		cmd.Printf("all recorded answers match (%d days)\n", len(days))

		return nil
	},
}

// compare prints one part's verdict and returns 1 on mismatch.
func compare(cmd *cobra.Command, day, part int, want, got string) int {
	switch {
	case want == "":
		return 0
	case want == got:
		cmd.Printf("day %d part %d: ok\n", day, part)

		return 0
	default:
		cmd.Printf("day %d part %d: want %q, got %q\n", day, part, want, got)

		return 1
	}
}

// loadAnswers reads the YAML answers file.
func loadAnswers(path string) (map[int]solve.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	answers := map[int]solve.Answers{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}

	return answers, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("answers", "answers.yaml", "YAML file of expected answers")
}
