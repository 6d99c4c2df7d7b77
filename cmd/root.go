package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/config"
	"github.com/abhisek/tactix/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "tactix",
	Short: "Chess tactics trainer for the terminal",
	Long:  "Tactix — solve chess tactics puzzles in your terminal, with saved progress and an optional AI coach.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TACTIX_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/tactix/config.toml)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then TACTIX_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, storage.EnsureDir(cfg.DBPath)
	}
	return storage.DefaultDBPath()
}
