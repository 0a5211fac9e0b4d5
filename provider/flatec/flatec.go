/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package flatec provides a raw DEFLATE Compressor.
package flatec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/suparena/savefile/provider"
)

// Compressor wraps streams with raw DEFLATE. It satisfies provider.Compressor.
type Compressor struct{}

// New creates a DEFLATE Compressor.
func New() Compressor {
	return Compressor{}
}

func levelFor(level provider.Level) int {
	switch level {
	case provider.None:
		return flate.NoCompression
	case provider.Fastest:
		return flate.BestSpeed
	case provider.Smallest:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}

// Compress wraps dst with a compressing writer at the given level.
func (Compressor) Compress(dst io.Writer, level provider.Level, leaveOpen bool) (io.WriteCloser, error) {
	fw, err := flate.NewWriter(dst, levelFor(level))
	if err != nil {
		return nil, fmt.Errorf("failed to create deflate writer: %w", err)
	}
	return &writeCloser{fw: fw, base: dst, leaveOpen: leaveOpen}, nil
}

// Decompress wraps src with a decompressing reader.
func (Compressor) Decompress(src io.Reader, leaveOpen bool) (io.ReadCloser, error) {
	return &readCloser{fr: flate.NewReader(src), base: src, leaveOpen: leaveOpen}, nil
}

type writeCloser struct {
	fw        *flate.Writer
	base      io.Writer
	leaveOpen bool
}

func (w *writeCloser) Write(p []byte) (int, error) {
	return w.fw.Write(p)
}

func (w *writeCloser) Close() error {
	err := w.fw.Close()
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
	fr        io.ReadCloser
	base      io.Reader
	leaveOpen bool
}

func (r *readCloser) Read(p []byte) (int, error) {
	return r.fr.Read(p)
}

func (r *readCloser) Close() error {
	err := r.fr.Close()
	if !r.leaveOpen {
		if c, ok := r.base.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}
	return err
}
