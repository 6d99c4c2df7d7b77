package cmd

import (
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [collection]",
	Short: "Start a solving session",
	Long: `Start a solving session against a puzzle collection.

With no argument the embedded starter collection is used. The argument may
be a collection JSON file or the name of a file in the collections
directory from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd, args)
	},
}

func init() {
	solveCmd.Flags().String("puzzle", "", "Start at a specific puzzle ID (resets its counters)")
}
