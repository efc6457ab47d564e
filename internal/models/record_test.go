// ABOUTME: Tests for Record model and tag normalization.
// ABOUTME: Validates normalization rules, membership helpers, and cloning.

package models

import (
	"errors"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	if got := NormalizeTag("TestTag"); got != "testtag" {
		t.Errorf("expected lowercase 'testtag', got %q", got)
	}
}

func TestNormalizeTagWithSpaces(t *testing.T) {
	if got := NormalizeTag("  My Tag  "); got != "my tag" {
		t.Errorf("expected trimmed lowercase 'my tag', got %q", got)
	}
}

func TestNormalizeTagsRejectsEmpty(t *testing.T) {
	_, err := NormalizeTags([]string{"work", "   "})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("expected ErrInvalidTag, got %v", err)
	}
}

func TestNormalizeTagsPreservesOrder(t *testing.T) {
	tags, err := NormalizeTags([]string{" Work ", "DRAFT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[0] != "work" || tags[1] != "draft" {
		t.Errorf("expected [work draft], got %v", tags)
	}
}

func TestRecordAddTagIsIdempotent(t *testing.T) {
	rec := NewRecord()
	rec.AddTag("work")
	rec.AddTag("work")

	if len(rec.Tags) != 1 {
		t.Errorf("expected 1 tag after duplicate add, got %v", rec.Tags)
	}
}

func TestRecordAddTagKeepsInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.AddTag("zebra")
	rec.AddTag("alpha")

	if rec.Tags[0] != "zebra" || rec.Tags[1] != "alpha" {
		t.Errorf("expected insertion order [zebra alpha], got %v", rec.Tags)
	}
}

func TestRecordRemoveTag(t *testing.T) {
	rec := NewRecord()
	rec.AddTag("work")
	rec.AddTag("draft")
	rec.RemoveTag("work")

	if len(rec.Tags) != 1 || rec.Tags[0] != "draft" {
		t.Errorf("expected [draft], got %v", rec.Tags)
	}
}

func TestRecordRemoveMissingTagIsNoop(t *testing.T) {
	rec := NewRecord()
	rec.AddTag("work")
	rec.RemoveTag("nope")

	if len(rec.Tags) != 1 || rec.Tags[0] != "work" {
		t.Errorf("expected [work], got %v", rec.Tags)
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	rec := NewRecord()
	rec.AddTag("work")

	clone := rec.Clone()
	clone.Tags[0] = "mutated"

	if rec.Tags[0] != "work" {
		t.Error("mutating a clone must not affect the original record")
	}
	if !clone.Created.Equal(rec.Created) || !clone.Modified.Equal(rec.Modified) {
		t.Error("clone must preserve timestamps")
	}
}
