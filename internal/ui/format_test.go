// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates tag, record, and path list rendering.

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/filetag/internal/models"
)

func TestFormatTags(t *testing.T) {
	output := FormatTags([]string{"work", "draft"})

	if !strings.Contains(output, "work, draft") {
		t.Errorf("expected joined tags in output, got %q", output)
	}
}

func TestFormatTagsEmpty(t *testing.T) {
	output := FormatTags(nil)

	if !strings.Contains(output, "no tags") {
		t.Errorf("expected placeholder for empty tags, got %q", output)
	}
}

func TestFormatTagList(t *testing.T) {
	tags := []TagCount{
		{Name: "work", Count: 5},
		{Name: "personal", Count: 3},
	}

	output := FormatTagList(tags)

	if !strings.Contains(output, "work") {
		t.Error("expected output to contain 'work'")
	}
	if !strings.Contains(output, "5") {
		t.Error("expected output to contain count '5'")
	}
}

func TestFormatRecord(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := models.Record{
		Tags:     []string{"work"},
		Created:  now,
		Modified: now,
	}

	output := FormatRecord("/home/user/a.txt", rec)

	if !strings.Contains(output, "/home/user/a.txt") {
		t.Error("expected output to contain path")
	}
	if !strings.Contains(output, "work") {
		t.Error("expected output to contain tag")
	}
	if !strings.Contains(output, "2024-06-01") {
		t.Error("expected output to contain created date")
	}
}

func TestFormatRecordListSortsPaths(t *testing.T) {
	now := time.Now()
	records := map[string]models.Record{
		"/b.txt": {Tags: []string{"x"}, Created: now, Modified: now},
		"/a.txt": {Tags: []string{"y"}, Created: now, Modified: now},
	}

	output := FormatRecordList(records)

	if strings.Index(output, "/a.txt") > strings.Index(output, "/b.txt") {
		t.Error("expected paths in ascending order")
	}
}

func TestFormatPathList(t *testing.T) {
	output := FormatPathList([]string{"/a.txt", "/b.txt"})

	if !strings.Contains(output, "/a.txt") || !strings.Contains(output, "/b.txt") {
		t.Errorf("expected both paths in output, got %q", output)
	}
}
