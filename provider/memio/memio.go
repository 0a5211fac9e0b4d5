/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memio provides in-memory stream providers for testing, in both the
// synchronous and context-aware forms, with configurable fault injection.
package memio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/suparena/savefile/errors"
)

// Provider holds one artifact's bytes in memory. It satisfies
// provider.StreamProvider.
type Provider struct {
	mu      sync.RWMutex
	data    []byte
	present bool

	readErr   error
	writeErr  error
	existsErr error
	deleteErr error
}

// New creates an empty in-memory provider.
func New() *Provider {
	return &Provider{}
}

// WithReadError makes Read return err.
func (p *Provider) WithReadError(err error) *Provider {
	p.readErr = err
	return p
}

// WithWriteError makes Write return err.
func (p *Provider) WithWriteError(err error) *Provider {
	p.writeErr = err
	return p
}

// WithExistsError makes Exists return err.
func (p *Provider) WithExistsError(err error) *Provider {
	p.existsErr = err
	return p
}

// WithDeleteError makes Delete return err.
func (p *Provider) WithDeleteError(err error) *Provider {
	p.deleteErr = err
	return p
}

// SetBytes seeds the stored artifact directly.
func (p *Provider) SetBytes(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = append([]byte(nil), data...)
	p.present = true
}

// Bytes returns a copy of the stored artifact, or nil if absent.
func (p *Provider) Bytes() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.present {
		return nil
	}
	return append([]byte(nil), p.data...)
}

// Read returns a reader over the stored bytes, failing with ErrNotFound if
// nothing was ever written.
func (p *Provider) Read() (io.ReadCloser, error) {
	if p.readErr != nil {
		return nil, p.readErr
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.present {
		return nil, fmt.Errorf("in-memory artifact: %w", errors.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(append([]byte(nil), p.data...))), nil
}

// Write returns a writer whose Close commits the written bytes, replacing any
// prior artifact.
func (p *Provider) Write() (io.WriteCloser, error) {
	if p.writeErr != nil {
		return nil, p.writeErr
	}
	return &commitWriter{p: p}, nil
}

// Exists reports whether anything was written and not deleted.
func (p *Provider) Exists() (bool, error) {
	if p.existsErr != nil {
		return false, p.existsErr
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.present, nil
}

// Delete discards the artifact. Deleting an absent artifact is a no-op.
func (p *Provider) Delete() error {
	if p.deleteErr != nil {
		return p.deleteErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = nil
	p.present = false
	return nil
}

// commitWriter buffers writes and commits them on Close, mimicking the
// truncate-or-create semantics of a real destination.
type commitWriter struct {
	p      *Provider
	buf    bytes.Buffer
	closed bool
}

func (w *commitWriter) Write(b []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("write on closed artifact writer")
	}
	return w.buf.Write(b)
}

func (w *commitWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.p.SetBytes(w.buf.Bytes())
	return nil
}

// ContextProvider adapts a Provider to provider.StreamProviderContext,
// honoring context cancellation before each operation.
type ContextProvider struct {
	p *Provider
}

// NewContext creates a context-aware provider over a fresh in-memory store.
func NewContext() *ContextProvider {
	return &ContextProvider{p: New()}
}

// WrapContext exposes an existing Provider through the context-aware contract,
// sharing its storage and fault injection.
func WrapContext(p *Provider) *ContextProvider {
	return &ContextProvider{p: p}
}

// Underlying returns the wrapped Provider, for seeding and inspection.
func (c *ContextProvider) Underlying() *Provider {
	return c.p
}

func (c *ContextProvider) Read(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.p.Read()
}

func (c *ContextProvider) Write(ctx context.Context, payload io.Reader, size int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.p.writeErr != nil {
		return c.p.writeErr
	}
	data, err := io.ReadAll(payload)
	if err != nil {
		return fmt.Errorf("failed to buffer payload: %w", err)
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("payload length %d does not match declared size %d", len(data), size)
	}
	c.p.SetBytes(data)
	return nil
}

func (c *ContextProvider) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.p.Exists()
}

func (c *ContextProvider) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.p.Delete()
}
