// ABOUTME: Clear command deleting a file's record entirely.
// ABOUTME: Clearing an untracked file is a silent no-op.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var clearCmd = &cobra.Command{
	Use:   "clear <file>",
	Short: "Remove all tags from a file",
	Long:  `Delete a file's tag record entirely, including its timestamps.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		if err := tagStore.ClearTags(file); err != nil {
			return fmt.Errorf("failed to clear tags: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]any{"file": file, "cleared": true})
		}

		fmt.Println(ui.Success(fmt.Sprintf("Cleared tags for %s", file)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
