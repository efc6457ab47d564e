// ABOUTME: Prune command dropping records for files that no longer exist.
// ABOUTME: Supports a dry run that only reports what would be removed.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop records for deleted files",
	Long:  `Remove the tag records of tracked files that no longer exist on disk. Use --dry-run to see what would be removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		var paths []string
		var err error
		if dryRun {
			paths, err = tagStore.Missing()
		} else {
			paths, err = tagStore.Prune()
		}
		if err != nil {
			return fmt.Errorf("failed to prune: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]any{"removed": paths, "dry_run": dryRun})
		}

		if len(paths) == 0 {
			fmt.Println("Nothing to prune.")
			return nil
		}
		fmt.Print(ui.FormatPathList(paths))
		if dryRun {
			fmt.Println(ui.Success(fmt.Sprintf("%d records would be removed", len(paths))))
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("Removed %d records", len(paths))))
		}
		return nil
	},
}

func init() {
	pruneCmd.Flags().Bool("dry-run", false, "report without removing")
	rootCmd.AddCommand(pruneCmd)
}
