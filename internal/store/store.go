// ABOUTME: Persistent tag store mapping absolute file paths to tag records.
// ABOUTME: Lazy-loads a single JSON document and saves with atomic rename.

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/harper/filetag/internal/models"
)

// DefaultFile is the backing file used when no override is given.
const DefaultFile = ".filetag.json"

// Store is a tag database backed by one JSON file. The whole document is
// held in memory; this is fine for a personal file-tag index but does not
// scale to huge record counts.
//
// A single Store instance is safe for concurrent use. Across processes
// the atomic save prevents corruption but not lost updates: two processes
// writing at once race, and the later save wins at the file level.
type Store struct {
	mu      sync.Mutex
	path    string
	loaded  bool
	records map[string]*models.Record
}

// Open returns a store bound to the given backing file. Nothing is read
// until the first operation; missing files are created on first load.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ensureLoaded reads the backing file into memory on first use.
// Caller must hold s.mu.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First use: leave a valid empty store on disk right away.
			s.records = make(map[string]*models.Record)
			s.loaded = true
			return s.save()
		}
		return fmt.Errorf("read store: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}

	s.records = records
	s.loaded = true
	return nil
}

// decodeRecords parses and validates the backing document. Unknown record
// fields, non-object top levels, relative keys, and records missing their
// tag list are all rejected rather than loaded partially.
func decodeRecords(data []byte) (map[string]*models.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	records := make(map[string]*models.Record)
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if records == nil {
		// JSON null decodes into a nil map without error.
		return nil, errors.New("top-level value is not an object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after store document")
	}

	for path, rec := range records {
		if rec == nil || rec.Tags == nil {
			return nil, fmt.Errorf("record %q has no tag list", path)
		}
		if !filepath.IsAbs(path) {
			return nil, fmt.Errorf("record key %q is not an absolute path", path)
		}
	}
	return records, nil
}

// save writes the full document durably: marshal, write to a temp file in
// the same directory, rename over the real path. Readers never observe a
// partially written store. Caller must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// AddTags attaches tags to a file and returns the file's resulting tag
// list. The file must exist on disk; the check happens before any
// mutation, so a missing file leaves the store untouched. Adding a tag the
// file already has is a no-op on content but still bumps Modified.
func (s *Store) AddTags(path string, tags []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, abs)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}

	normalized, err := models.NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	rec, ok := s.records[abs]
	if !ok {
		rec = models.NewRecord()
		s.records[abs] = rec
	}
	for _, tag := range normalized {
		rec.AddTag(tag)
	}
	rec.Touch()

	if err := s.save(); err != nil {
		return nil, err
	}
	return copyTags(rec.Tags), nil
}

// RemoveTags detaches tags from a file and returns the tags that remain.
// Removing from an untracked file is not an error; it returns an empty
// list without writing anything. A record whose last tag is removed is
// kept with an empty tag list so its Created timestamp survives; use
// ClearTags to drop the record entirely.
func (s *Store) RemoveTags(path string, tags []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	rec, ok := s.records[abs]
	if !ok {
		return []string{}, nil
	}

	normalized, err := models.NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	for _, tag := range normalized {
		rec.RemoveTag(tag)
	}
	rec.Touch()

	if err := s.save(); err != nil {
		return nil, err
	}
	return copyTags(rec.Tags), nil
}

// ClearTags deletes a file's record entirely. Clearing an untracked file
// is a silent no-op.
func (s *Store) ClearTags(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, ok := s.records[abs]; !ok {
		return nil
	}
	delete(s.records, abs)
	return s.save()
}

// GetTags returns the tags attached to a file, or an empty list if the
// file is untracked. The file itself is never stat'd: a tagged file that
// has since been deleted still reports its tags.
func (s *Store) GetTags(path string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	rec, ok := s.records[abs]
	if !ok {
		return []string{}, nil
	}
	return copyTags(rec.Tags), nil
}

// FindByTags returns the paths matching the query, in ascending path
// order. With matchAll a file must carry every query tag; without it one
// shared tag suffices. An empty query matches everything under matchAll
// (every set is a superset of the empty set) and nothing otherwise.
func (s *Store) FindByTags(tags []string, matchAll bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	query := make([]string, 0, len(tags))
	for _, tag := range tags {
		if norm := models.NormalizeTag(tag); norm != "" {
			query = append(query, norm)
		}
	}

	matches := []string{}
	for _, path := range s.sortedPaths() {
		rec := s.records[path]
		if matchAll {
			if containsAll(rec, query) {
				matches = append(matches, path)
			}
		} else if containsAny(rec, query) {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// ListAllTags returns every tag in the store, deduplicated and sorted.
func (s *Store) ListAllTags() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, rec := range s.records {
		for _, tag := range rec.Tags {
			seen[tag] = true
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// ListAll returns a deep copy of the full path-to-record mapping.
func (s *Store) ListAll() (map[string]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	out := make(map[string]models.Record, len(s.records))
	for path, rec := range s.records {
		out[path] = rec.Clone()
	}
	return out, nil
}

// Missing returns the tracked paths whose files no longer exist on disk,
// in ascending path order. Nothing is modified.
func (s *Store) Missing() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.missingLocked(), nil
}

// Prune deletes the records for files that no longer exist and returns
// the paths it removed. A store with nothing to prune is left unwritten.
func (s *Store) Prune() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	gone := s.missingLocked()
	if len(gone) == 0 {
		return gone, nil
	}
	for _, path := range gone {
		delete(s.records, path)
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return gone, nil
}

func (s *Store) missingLocked() []string {
	gone := []string{}
	for _, path := range s.sortedPaths() {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			gone = append(gone, path)
		}
	}
	return gone
}

// Merge folds exported records into the store: untracked paths are
// restored with their original timestamps, already-tracked paths get the
// imported tags unioned in. Returns the number of records applied.
func (s *Store) Merge(records map[string]models.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}

	paths := make([]string, 0, len(records))
	for path := range records {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	count := 0
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return 0, fmt.Errorf("resolve path: %w", err)
		}

		incoming := records[path]
		rec, ok := s.records[abs]
		if !ok {
			clone := incoming.Clone()
			rec = &clone
			rec.Tags = []string{}
			s.records[abs] = rec
		}
		for _, tag := range incoming.Tags {
			if norm := models.NormalizeTag(tag); norm != "" {
				rec.AddTag(norm)
			}
		}
		if ok {
			rec.Touch()
		}
		count++
	}

	if count == 0 {
		return 0, nil
	}
	if err := s.save(); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) sortedPaths() []string {
	paths := make([]string, 0, len(s.records))
	for path := range s.records {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func containsAll(rec *models.Record, tags []string) bool {
	for _, tag := range tags {
		if !rec.HasTag(tag) {
			return false
		}
	}
	return true
}

func containsAny(rec *models.Record, tags []string) bool {
	for _, tag := range tags {
		if rec.HasTag(tag) {
			return true
		}
	}
	return false
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
