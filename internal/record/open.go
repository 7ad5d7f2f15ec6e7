//go:build !js && !android

package record

import (
	"fmt"

	"flappy/internal/config"
)

// Open returns the store selected by cfg.
func Open(cfg config.Record) (Store, error) {
	path, err := ExpandHome(cfg.Path)
	if err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendSQLite:
		return NewSQLite(path)
	case config.BackendFile, "":
		return NewFile(path), nil
	default:
		return nil, fmt.Errorf("record: unknown backend %q", cfg.Backend)
	}
}
