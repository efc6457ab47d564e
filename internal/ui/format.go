// ABOUTME: Terminal UI formatting for filetag output.
// ABOUTME: Uses fatih/color for styling tag lists and record dumps.

package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/harper/filetag/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

type TagCount struct {
	Name  string
	Count int
}

// FormatTags renders one file's tag list on a single line.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return faint("(no tags)") + "\n"
	}
	return cyan(strings.Join(tags, ", ")) + "\n"
}

// FormatTagList renders the system-wide tag list with per-tag file counts.
func FormatTagList(tags []TagCount) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			cyan(t.Name),
			faint(fmt.Sprintf("(%d)", t.Count))))
	}

	return sb.String()
}

// FormatRecord renders one path with its tags and timestamps.
func FormatRecord(path string, rec models.Record) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(path)))
	if len(rec.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("Tags:"), cyan(strings.Join(rec.Tags, ", "))))
	}
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		faint("Created:"),
		faint(rec.Created.Format("2006-01-02 15:04"))))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		faint("Modified:"),
		faint(rec.Modified.Format("2006-01-02 15:04"))))

	return sb.String()
}

// FormatRecordList renders the whole store in ascending path order.
func FormatRecordList(records map[string]models.Record) string {
	paths := make([]string, 0, len(records))
	for path := range records {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(FormatRecord(path, records[path]))
	}
	return sb.String()
}

// FormatPathList renders search results, one path per line.
func FormatPathList(paths []string) string {
	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("  %s\n", path))
	}
	return sb.String()
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
