// ABOUTME: List command for showing one file's tags.
// ABOUTME: Untracked files report an empty tag list, not an error.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List a file's tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := tagStore.GetTags(args[0])
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if jsonOutput {
			return printJSON(tags)
		}

		fmt.Print(ui.FormatTags(tags))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
