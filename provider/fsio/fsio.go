/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package fsio provides a filesystem-backed StreamProvider.
package fsio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Provider reads and writes one file path. It satisfies provider.StreamProvider.
type Provider struct {
	path string
}

// New creates a Provider for the given file path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the file path this provider targets.
func (p *Provider) Path() string {
	return p.path
}

// Read opens the file for reading. A missing file is an error, which the
// orchestrator passes through to the caller unchanged.
func (p *Provider) Read() (io.ReadCloser, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for reading: %w", p.path, err)
	}
	return f, nil
}

// Write creates any missing parent directories, then opens the file with
// truncate-or-create semantics.
func (p *Provider) Write() (io.WriteCloser, error) {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	f, err := os.Create(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for writing: %w", p.path, err)
	}
	return f, nil
}

// Exists reports whether the file is present.
func (p *Provider) Exists() (bool, error) {
	_, err := os.Stat(p.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", p.path, err)
}

// Delete removes the file. Deleting a file that does not exist is a no-op.
func (p *Provider) Delete() error {
	err := os.Remove(p.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", p.path, err)
	}
	return nil
}
