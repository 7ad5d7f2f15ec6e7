//go:build js && wasm

package flappy

import (
	"fmt"
	"strconv"
	"strings"
	"syscall/js"

	"flappy/internal/config"
	"flappy/internal/record"
)

const wasmRecordKey = "flappy_best"

type wasmRecordStorage struct{}

func newRecordStorage(config.Record) (record.Store, error) {
	return &wasmRecordStorage{}, nil
}

func (s *wasmRecordStorage) Save(best int) error {
	js.Global().Get("localStorage").Call("setItem", wasmRecordKey, strconv.Itoa(best))
	return nil
}

func (s *wasmRecordStorage) Load() (int, error) {
	item := js.Global().Get("localStorage").Call("getItem", wasmRecordKey)
	if item.IsNull() || item.IsUndefined() {
		return 0, nil
	}
	best, err := strconv.Atoi(strings.TrimSpace(item.String()))
	if err != nil || best < 0 {
		return 0, fmt.Errorf("%w: %q", record.ErrMalformed, item.String())
	}
	return best, nil
}
