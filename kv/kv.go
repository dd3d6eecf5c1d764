// Package kv is the durable-storage layer behind the state store: small
// JSON records, synchronous read/write, one writer per key. Backends are a
// redis server, a directory of flat files, or process memory.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or has
// been deleted. Callers treat it as "empty collection", not a failure.
var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
