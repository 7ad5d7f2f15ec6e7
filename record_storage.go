package flappy

import (
	"flappy/internal/config"
	"flappy/internal/record"
)

// NewRecordStorage returns the best-score store for the current platform.
func NewRecordStorage(cfg config.Record) (record.Store, error) {
	// Implemented per platform behind build tags.
	return newRecordStorage(cfg)
}
