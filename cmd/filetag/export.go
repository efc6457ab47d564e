// ABOUTME: Export command for backing up the tag store.
// ABOUTME: Supports JSON and YAML export formats.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/filetag/internal/models"
	"github.com/harper/filetag/internal/ui"
)

type ExportData struct {
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Version    string                   `json:"version" yaml:"version"`
	Records    map[string]models.Record `json:"records" yaml:"records"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the store",
	Long:  `Export every tag record to JSON or YAML, for backup or transfer to another machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		records, err := tagStore.ListAll()
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}

		export := ExportData{
			ExportedAt: time.Now(),
			Version:    "1.0",
			Records:    records,
		}

		var data []byte
		switch format {
		case "json":
			data, err = json.MarshalIndent(export, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(export)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if outputPath == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Exported %d records to %s", len(records), outputPath)))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "export format: json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
