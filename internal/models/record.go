// ABOUTME: Record model representing the tag set attached to one file.
// ABOUTME: Provides constructor, tag membership helpers, and normalization.

package models

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidTag is returned when a tag is empty after normalization.
var ErrInvalidTag = errors.New("invalid tag: empty after normalization")

// Record holds the tags and timestamps for a single tracked file.
// The file's absolute path is the map key in the store, not a field here.
type Record struct {
	Tags     []string  `json:"tags" yaml:"tags"`
	Created  time.Time `json:"created" yaml:"created"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

func NewRecord() *Record {
	now := time.Now()
	return &Record{
		Tags:     []string{},
		Created:  now,
		Modified: now,
	}
}

func (r *Record) Touch() {
	r.Modified = time.Now()
}

// HasTag reports whether the record contains the already-normalized tag.
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends the already-normalized tag if not present.
// Insertion order is preserved so output stays deterministic.
func (r *Record) AddTag(tag string) {
	if !r.HasTag(tag) {
		r.Tags = append(r.Tags, tag)
	}
}

// RemoveTag drops the already-normalized tag if present.
func (r *Record) RemoveTag(tag string) {
	kept := r.Tags[:0]
	for _, t := range r.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	r.Tags = kept
}

// Clone returns a deep copy so callers can't mutate store state.
func (r *Record) Clone() Record {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)
	return Record{
		Tags:     tags,
		Created:  r.Created,
		Modified: r.Modified,
	}
}

// NormalizeTag lowercases a tag and trims surrounding whitespace.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeTags normalizes every tag and rejects any that come out empty.
// Whitespace-only tags are an input error, not something to drop silently.
func NormalizeTags(names []string) ([]string, error) {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		tag := NormalizeTag(name)
		if tag == "" {
			return nil, ErrInvalidTag
		}
		normalized = append(normalized, tag)
	}
	return normalized, nil
}
