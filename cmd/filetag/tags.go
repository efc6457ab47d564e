// ABOUTME: Tags command listing every tag in the store.
// ABOUTME: Human output includes per-tag file counts.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/filetag/internal/ui"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	Long:  `List every tag in the store, deduplicated and sorted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := tagStore.ListAllTags()
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if jsonOutput {
			return printJSON(tags)
		}

		if len(tags) == 0 {
			fmt.Println("No tags found.")
			return nil
		}

		records, err := tagStore.ListAll()
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}
		counts := make(map[string]int)
		for _, rec := range records {
			for _, tag := range rec.Tags {
				counts[tag]++
			}
		}

		var tagCounts []ui.TagCount
		for _, tag := range tags {
			tagCounts = append(tagCounts, ui.TagCount{Name: tag, Count: counts[tag]})
		}
		fmt.Print(ui.FormatTagList(tagCounts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
