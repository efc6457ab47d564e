// ABOUTME: Import command for restoring tag records from a backup.
// ABOUTME: Merges a JSON or YAML export into the current store.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/filetag/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import an exported store",
	Long:  `Merge records from a JSON or YAML export. Untracked files are restored with their original timestamps; already-tracked files get the imported tags unioned in.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		var export ExportData
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			err = yaml.Unmarshal(data, &export)
		} else {
			err = json.Unmarshal(data, &export)
		}
		if err != nil {
			return fmt.Errorf("failed to parse import file: %w", err)
		}

		count, err := tagStore.Merge(export.Records)
		if err != nil {
			return fmt.Errorf("failed to import records: %w", err)
		}

		if jsonOutput {
			return printJSON(map[string]any{"imported": count})
		}

		fmt.Println(ui.Success(fmt.Sprintf("Imported %d records", count)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
