package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [collection]",
	Short: "List the puzzles in a collection (no database)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		coll, err := loadCollection(cfg, args)
		if err != nil {
			return err
		}

		title := coll.Title
		if title == "" {
			title = coll.ID
		}
		fmt.Printf("%s (%d puzzles)\n", title, len(coll.Puzzles))
		if coll.Description != "" {
			fmt.Println(coll.Description)
		}
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-20s  %-12s  %5s  %s\n", "ID", "Difficulty", "Moves", "Themes")
		fmt.Println(strings.Repeat("─", 64))

		for _, p := range coll.Puzzles {
			diff := string(p.Difficulty)
			if diff == "" {
				diff = "-"
			}
			fmt.Printf("%-20s  %-12s  %5d  %s\n",
				p.ID, diff, len(p.Solution), strings.Join(p.Tags, ", "))
		}
		return nil
	},
}
