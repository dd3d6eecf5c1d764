package kv

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^\w.\-]`)

// Dir stores one file per key under a base directory.
type Dir struct {
	base string
}

func NewDir(base string) (*Dir, error) {
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, err
	}
	return &Dir{base: base}, nil
}

func (s *Dir) path(key string) string {
	return filepath.Join(s.base, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (s *Dir) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *Dir) Set(_ context.Context, key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0644)
}

func (s *Dir) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
