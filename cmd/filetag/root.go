// ABOUTME: Root command wiring global flags and the shared tag store.
// ABOUTME: Resolves the backing file path before any subcommand runs.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/config"
	"github.com/harper/filetag/internal/store"
	"github.com/harper/filetag/internal/ui"
)

var (
	dbFlag     string
	jsonOutput bool

	tagStore *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "filetag",
	Short: "Tag files and find them again",
	Long: `filetag attaches string labels to files on your filesystem and lets
you query files by those labels. Tags are stored in a single JSON file
(.filetag.json by default) written with atomic rename, so the store is
never observed half-written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		tagStore = store.Open(config.ResolveDB(dbFlag))
	},
}

// Execute runs the CLI, printing any error on one line.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		return err
	}
	return nil
}

// printJSON writes machine-readable output for the --json flag.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "backing file path (default .filetag.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
