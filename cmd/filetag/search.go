// ABOUTME: Search command for finding files by tag.
// ABOUTME: Matches any tag by default; --all requires every tag.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <tag...>",
	Short: "Find files by tag",
	Long:  `Find files carrying any of the given tags. With --all, a file must carry every given tag.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchAll, _ := cmd.Flags().GetBool("all")

		paths, err := tagStore.FindByTags(args, matchAll)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if jsonOutput {
			return printJSON(paths)
		}

		if len(paths) == 0 {
			fmt.Println("No files found.")
			return nil
		}
		fmt.Print(ui.FormatPathList(paths))
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("all", false, "require every tag to match")
	rootCmd.AddCommand(searchCmd)
}
