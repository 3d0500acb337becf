// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

package gqlmarkdown

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem persists generated artifacts.
type FileSystem interface {
	SaveFile(ctx context.Context, path string, data []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDir(ctx context.Context, path string) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// OSFileSystem writes to the local filesystem.
type OSFileSystem struct{}

// SaveFile writes data, creating parent directories.
func (fsys OSFileSystem) SaveFile(ctx context.Context, path string, data []byte) error {
	if err := fsys.EnsureDir(ctx, filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// FileExists reports whether path exists.
func (OSFileSystem) FileExists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// EnsureDir creates directory with parents.
func (OSFileSystem) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(path, 0o755)
}

// ReadFile reads whole file.
func (OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}
