package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/session"
	"github.com/abhisek/tactix/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset [collection]",
	Short: "Clear saved progress for a collection (or all with --all)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			return fmt.Errorf("name a collection or pass --all")
		}

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

		if all {
			keys, err := st.Keys(session.KeyPrefix)
			if err != nil {
				return err
			}
			for _, key := range keys {
				st.Remove(key)
			}
			fmt.Printf("Cleared %d saved sessions.\n", len(keys))
			return nil
		}

		st.Remove(session.StorageKey(args[0]))
		fmt.Printf("Cleared saved progress for %q.\n", args[0])
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Clear every saved session")
}
