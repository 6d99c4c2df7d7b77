package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/puzzle"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a collection file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coll, err := puzzle.LoadFile(args[0])
		if err != nil {
			return err
		}

		// Schema validation passed; also make sure every puzzle can
		// actually be played.
		for i := range coll.Puzzles {
			if _, err := puzzle.NewController(&coll.Puzzles[i]); err != nil {
				return fmt.Errorf("puzzle %q: %w", coll.Puzzles[i].ID, err)
			}
		}

		fmt.Printf("%s: ok (%d puzzles)\n", args[0], len(coll.Puzzles))
		return nil
	},
}
