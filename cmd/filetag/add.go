// ABOUTME: Add command for attaching tags to a file.
// ABOUTME: Prints the file's resulting tag list.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <file> <tag...>",
	Short: "Add tags to a file",
	Long:  `Attach one or more tags to a file. Tags are trimmed and lowercased; the file must exist.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		tags, err := tagStore.AddTags(file, args[1:])
		if err != nil {
			return fmt.Errorf("failed to add tags: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]any{"file": file, "tags": tags})
		}

		fmt.Println(ui.Success(fmt.Sprintf("Tagged %s", file)))
		fmt.Print("  " + ui.FormatTags(tags))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
