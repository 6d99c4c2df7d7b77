package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/session"
	"github.com/abhisek/tactix/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved session progress per collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		keys, err := st.Keys(session.KeyPrefix)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			fmt.Println("No saved sessions yet. Run `tactix solve` to start one.")
			return nil
		}

		fmt.Printf("%-20s  %-20s  %6s  %8s  %5s  %s\n",
			"Collection", "Current puzzle", "Solved", "Attempts", "Hints", "Saved")
		fmt.Println(strings.Repeat("─", 84))

		for _, key := range keys {
			raw, ok := st.Get(key)
			if !ok {
				continue
			}
			snap, err := session.DecodeSnapshot(raw)
			if err != nil {
				fmt.Printf("%-20s  (unreadable snapshot)\n", strings.TrimPrefix(key, session.KeyPrefix))
				continue
			}

			saved := snap.PersistedAt
			if saved == "" {
				saved = "-"
			}
			fmt.Printf("%-20s  %-20s  %6d  %8d  %5d  %s\n",
				strings.TrimPrefix(key, session.KeyPrefix),
				snap.CurrentPuzzleID,
				len(snap.SolvedPuzzles),
				snap.Attempts,
				snap.HintUsage,
				saved)
		}
		return nil
	},
}
