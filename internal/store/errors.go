// ABOUTME: Sentinel errors for the tag store.
// ABOUTME: Callers match with errors.Is; call sites add context via %w.

package store

import (
	"errors"

	"github.com/harper/filetag/internal/models"
)

var (
	// ErrFileNotFound means the file being tagged does not exist on disk.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrCorruptStore means the backing file exists but is not a valid store.
	ErrCorruptStore = errors.New("store file is corrupt")

	// ErrInvalidTag mirrors the models sentinel so callers can match
	// against the store package alone.
	ErrInvalidTag = models.ErrInvalidTag
)
