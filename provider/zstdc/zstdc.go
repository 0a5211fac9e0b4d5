/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package zstdc provides a zstandard Compressor.
package zstdc

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/suparena/savefile/provider"
)

// Compressor wraps streams with zstandard. It satisfies provider.Compressor.
type Compressor struct{}

// New creates a zstandard Compressor.
func New() Compressor {
	return Compressor{}
}

// zstd has no stored mode, so None maps to the fastest real level.
func levelFor(level provider.Level) zstd.EncoderLevel {
	switch level {
	case provider.None, provider.Fastest:
		return zstd.SpeedFastest
	case provider.Smallest:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

// Compress wraps dst with a compressing writer at the given level.
func (Compressor) Compress(dst io.Writer, level provider.Level, leaveOpen bool) (io.WriteCloser, error) {
	zw, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(levelFor(level)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}
	return &writeCloser{zw: zw, base: dst, leaveOpen: leaveOpen}, nil
}

// Decompress wraps src with a decompressing reader.
func (Compressor) Decompress(src io.Reader, leaveOpen bool) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	return &readCloser{zr: zr, base: src, leaveOpen: leaveOpen}, nil
}

type writeCloser struct {
	zw        *zstd.Encoder
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
	zr        *zstd.Decoder
	base      io.Reader
	leaveOpen bool
}

func (r *readCloser) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *readCloser) Close() error {
	r.zr.Close()
	if !r.leaveOpen {
		if c, ok := r.base.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}
