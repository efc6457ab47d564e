// ABOUTME: Remove command for detaching tags from a file.
// ABOUTME: Prints the tags that remain after removal.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:   "remove <file> <tag...>",
	Short: "Remove tags from a file",
	Long:  `Detach one or more tags from a file. Removing from an untracked file is not an error.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		tags, err := tagStore.RemoveTags(file, args[1:])
		if err != nil {
			return fmt.Errorf("failed to remove tags: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]any{"file": file, "tags": tags})
		}

		fmt.Println(ui.Success(fmt.Sprintf("Untagged %s", file)))
		fmt.Print("  " + ui.FormatTags(tags))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
