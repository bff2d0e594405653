package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileTier persists each key as its own file under a directory, one value per
// file. It is the default long-lived tier for CLI hosts (a dot-directory
// credential cache). Files are written 0600.
type FileTier struct {
	dir string
}

// NewFileTier creates dir (0700) if needed and returns a tier rooted there.
func NewFileTier(dir string) (*FileTier, error) {
	if dir == "" {
		return nil, fmt.Errorf("file tier: directory required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("file tier: %w: %w", ErrTierUnavailable, err)
	}
	return &FileTier{dir: dir}, nil
}

func (f *FileTier) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("file tier: invalid key %q", key)
	}
	return filepath.Join(f.dir, key), nil
}

func (f *FileTier) Get(_ context.Context, key string) (string, error) {
	path, err := f.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file tier get: %w: %w", ErrTierUnavailable, err)
	}
	return string(data), nil
}

func (f *FileTier) Set(_ context.Context, key, value string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return fmt.Errorf("file tier set: %w: %w", ErrTierUnavailable, err)
	}
	return nil
}

func (f *FileTier) Remove(_ context.Context, key string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file tier remove: %w: %w", ErrTierUnavailable, err)
	}
	return nil
}
