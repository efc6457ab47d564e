// ABOUTME: All command dumping every tracked file with its record.
// ABOUTME: JSON mode emits the full path-to-record mapping.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Dump the whole store",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := tagStore.ListAll()
		if err != nil {
			return fmt.Errorf("failed to dump store: %w", err)
		}

		if jsonOutput {
			return printJSON(records)
		}

		if len(records) == 0 {
			fmt.Println("No files tracked.")
			return nil
		}
		fmt.Print(ui.FormatRecordList(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
