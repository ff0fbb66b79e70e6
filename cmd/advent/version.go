package main

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the advent version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("advent version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
