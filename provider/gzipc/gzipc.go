/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package gzipc provides a gzip Compressor.
package gzipc

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/suparena/savefile/provider"
)

// Compressor wraps streams with gzip. It satisfies provider.Compressor.
type Compressor struct{}

// New creates a gzip Compressor.
func New() Compressor {
	return Compressor{}
}

func levelFor(level provider.Level) int {
	switch level {
	case provider.None:
		return gzip.NoCompression
	case provider.Fastest:
		return gzip.BestSpeed
	case provider.Smallest:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

// Compress wraps dst with a compressing writer at the given level.
func (Compressor) Compress(dst io.Writer, level provider.Level, leaveOpen bool) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(dst, levelFor(level))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}
	return &writeCloser{zw: zw, base: dst, leaveOpen: leaveOpen}, nil
}

// Decompress wraps src with a decompressing reader.
func (Compressor) Decompress(src io.Reader, leaveOpen bool) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	return &readCloser{zr: zr, base: src, leaveOpen: leaveOpen}, nil
}

// writeCloser closes the gzip writer first, then the base stream unless
// leaveOpen was requested. The wrapper must close first so the gzip footer is
// flushed into a still-open base.
type writeCloser struct {
	zw        *gzip.Writer
	base      io.Writer
	leaveOpen bool
}

func (w *writeCloser) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *writeCloser) Close() error {
	err := w.zw.Close()
	if !w.leaveOpen {
		if c, ok := w.base.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}
	return err
}

type readCloser struct {
	zr        *gzip.Reader
	base      io.Reader
	leaveOpen bool
}

func (r *readCloser) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *readCloser) Close() error {
	err := r.zr.Close()
	if !r.leaveOpen {
		if c, ok := r.base.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}
	return err
}
