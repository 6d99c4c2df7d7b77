package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/tactix/internal/app"
	"github.com/abhisek/tactix/internal/config"
	"github.com/abhisek/tactix/internal/llm"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/storage"
)

// runSolve opens the store, builds dependencies, and launches the TUI.
// args carries an optional collection name or file path.
func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	coll, err := loadCollection(cfg, args)
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

	startPuzzle, _ := cmd.Flags().GetString("puzzle")
	opts := app.Options{
		Collection:    *coll,
		Backend:       st,
		StartPuzzleID: startPuzzle,
		AutoAdvance:   cfg.AutoAdvance,
		AllowHints:    cfg.AllowHints,
	}

	// The coach is optional; the solver works without it.
	if cfg.Coach {
		provider, err := llm.NewFromEnv(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The coach will be unavailable.")
		} else {
			opts.Provider = provider
		}
	}

	return app.Run(opts)
}

// loadCollection resolves the collection argument: nothing means the
// embedded starter set, an existing file path is loaded directly, and
// anything else is looked up as <name>.json under the collections dir.
func loadCollection(cfg config.Config, args []string) (*puzzle.Collection, error) {
	if len(args) == 0 || args[0] == "" {
		return puzzle.Starter(), nil
	}
	name := args[0]

	if _, err := os.Stat(name); err == nil {
		return puzzle.LoadFile(name)
	}

	if cfg.CollectionsDir != "" {
		path := filepath.Join(cfg.CollectionsDir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return puzzle.LoadFile(path)
		}
	}

	return nil, fmt.Errorf("collection %q not found (not a file, not in %q)", name, cfg.CollectionsDir)
}
