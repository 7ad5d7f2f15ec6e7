//go:build !android && !js

package flappy

import (
	"flappy/internal/config"
	"flappy/internal/record"
)

func newRecordStorage(cfg config.Record) (record.Store, error) {
	return record.Open(cfg)
}
