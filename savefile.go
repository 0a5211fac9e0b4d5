/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package savefile

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/suparena/savefile/chunk"
	"github.com/suparena/savefile/errors"
	"github.com/suparena/savefile/provider"
)

// SaveFile drives the save and load pipelines for one persisted artifact. It
// holds a root chunk plus up to two providers per concern: a synchronous and a
// context-aware stream provider, a synchronous and a context-aware serializer,
// and an optional compressor shared by both modes.
//
// Which providers are present decides which entry points work. The synchronous
// Save/Load/Exists/Delete require the synchronous providers and fail with an
// UnsupportedOperationError otherwise. The context entry points negotiate:
// they prefer the context-aware provider for each concern and fall back to the
// synchronous one, so a context save can run with a synchronous serializer or
// a synchronous stream provider.
//
// SaveFile keeps no state across calls beyond these references. Concurrent
// calls on one instance are safe only if the configured providers are; the
// orchestrator itself adds no locking.
type SaveFile[T any] struct {
	root *chunk.SaveChunk[T]

	stream    provider.StreamProvider
	streamCtx provider.StreamProviderContext

	compressor provider.Compressor
	level      provider.Level

	serializer    provider.Serializer
	serializerCtx provider.SerializerContext

	logger *zap.Logger
}

// New creates a SaveFile for the given root chunk. Providers are attached
// through options; a missing provider is not an error until an entry point
// that needs it is called.
func New[T any](root *chunk.SaveChunk[T], opts ...Option[T]) (*SaveFile[T], error) {
	if root == nil {
		return nil, errors.NewValidationError("root", "must not be nil")
	}
	s := &SaveFile[T]{
		root:   root,
		level:  provider.Optimal,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the root chunk this SaveFile saves and loads.
func (s *SaveFile[T]) Root() *chunk.SaveChunk[T] {
	return s.root
}

// Save runs the synchronous save pipeline: produce the root's data, open the
// write stream, wrap it with the compressor if one is configured, serialize
// into the innermost stream, and close wrapper-then-base.
func (s *SaveFile[T]) Save() (retErr error) {
	if s.stream == nil {
		return errors.NewUnsupportedOperationError("Save", "synchronous stream provider")
	}
	if s.serializer == nil {
		return errors.NewUnsupportedOperationError("Save", "synchronous serializer")
	}

	data, err := s.root.GetSaveData()
	if err != nil {
		return err
	}

	dst, err := s.stream.Write()
	if err != nil {
		return err
	}
	sink, err := s.wrapCompress(dst)
	if err != nil {
		dst.Close()
		return err
	}
	// Closing the compressor wrapper cascades to the base stream; with no
	// compressor configured, sink is the base stream itself.
	defer func() {
		if cerr := sink.Close(); retErr == nil {
			retErr = cerr
		}
	}()

	s.logger.Debug("saving",
		zap.Bool("compressed", s.compressor != nil),
		zap.String("mode", "sync"))
	return s.serializer.Serialize(sink, data)
}

// Load runs the synchronous load pipeline. A deserialization that finds no
// data is a valid outcome and leaves the chunk tree untouched.
func (s *SaveFile[T]) Load() (retErr error) {
	if s.stream == nil {
		return errors.NewUnsupportedOperationError("Load", "synchronous stream provider")
	}
	if s.serializer == nil {
		return errors.NewUnsupportedOperationError("Load", "synchronous serializer")
	}

	src, err := s.stream.Read()
	if err != nil {
		return err
	}
	src, empty, err := peekEmpty(src)
	if err != nil {
		return err
	}
	if empty {
		s.logger.Debug("load found an empty artifact, leaving chunk tree untouched")
		return nil
	}
	source, err := s.wrapDecompress(src)
	if err != nil {
		src.Close()
		return err
	}
	defer func() {
		if cerr := source.Close(); retErr == nil {
			retErr = cerr
		}
	}()

	var data T
	found, err := s.serializer.Deserialize(source, &data)
	if err != nil {
		return err
	}
	if !found {
		s.logger.Debug("load found no data, leaving chunk tree untouched")
		return nil
	}
	return s.root.LoadSaveData(data)
}

// SaveContext runs the context-aware save pipeline.
//
// With only a synchronous stream provider configured, the pipeline is the
// synchronous one with serialization going through the context serializer if
// present. With a context stream provider, the payload is first serialized
// (and compressed) into an in-memory buffer, then handed to the provider
// rewound and with its exact size, because transports like HTTP cannot stream
// compressed output of unknown length.
func (s *SaveFile[T]) SaveContext(ctx context.Context) error {
	if s.serializer == nil && s.serializerCtx == nil {
		return errors.NewUnsupportedOperationError("SaveContext", "serializer")
	}

	data, err := s.root.GetSaveData()
	if err != nil {
		return err
	}

	if s.streamCtx == nil {
		if s.stream == nil {
			return errors.NewUnsupportedOperationError("SaveContext", "stream provider")
		}
		return s.saveThroughSyncStream(ctx, data)
	}

	// The orchestrator owns the buffer, so the compressor must leave it
	// open; the buffer needs no closing of its own.
	var buf bytes.Buffer
	sink, err := s.wrapCompressLeaveOpen(&buf)
	if err != nil {
		return err
	}
	if err := s.serializeContext(ctx, sink, data); err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	s.logger.Debug("saving",
		zap.Bool("compressed", s.compressor != nil),
		zap.String("mode", "context"),
		zap.Int("payloadBytes", buf.Len()))
	payload := bytes.NewReader(buf.Bytes())
	return s.streamCtx.Write(ctx, payload, int64(buf.Len()))
}

func (s *SaveFile[T]) saveThroughSyncStream(ctx context.Context, data T) (retErr error) {
	dst, err := s.stream.Write()
	if err != nil {
		return err
	}
	sink, err := s.wrapCompress(dst)
	if err != nil {
		dst.Close()
		return err
	}
	defer func() {
		if cerr := sink.Close(); retErr == nil {
			retErr = cerr
		}
	}()

	s.logger.Debug("saving",
		zap.Bool("compressed", s.compressor != nil),
		zap.String("mode", "context-over-sync-stream"))
	return s.serializeContext(ctx, sink, data)
}

// LoadContext runs the context-aware load pipeline, preferring the context
// stream provider and serializer and falling back to the synchronous ones.
func (s *SaveFile[T]) LoadContext(ctx context.Context) (retErr error) {
	if s.serializer == nil && s.serializerCtx == nil {
		return errors.NewUnsupportedOperationError("LoadContext", "serializer")
	}

	var src io.ReadCloser
	var err error
	switch {
	case s.streamCtx != nil:
		src, err = s.streamCtx.Read(ctx)
	case s.stream != nil:
		src, err = s.stream.Read()
	default:
		return errors.NewUnsupportedOperationError("LoadContext", "stream provider")
	}
	if err != nil {
		return err
	}
	src, empty, err := peekEmpty(src)
	if err != nil {
		return err
	}
	if empty {
		s.logger.Debug("load found an empty artifact, leaving chunk tree untouched")
		return nil
	}

	source, err := s.wrapDecompress(src)
	if err != nil {
		src.Close()
		return err
	}
	defer func() {
		if cerr := source.Close(); retErr == nil {
			retErr = cerr
		}
	}()

	var data T
	found, err := s.deserializeContext(ctx, source, &data)
	if err != nil {
		return err
	}
	if !found {
		s.logger.Debug("load found no data, leaving chunk tree untouched")
		return nil
	}
	return s.root.LoadSaveData(data)
}

// Exists reports whether the persisted artifact is present, using the
// synchronous stream provider.
func (s *SaveFile[T]) Exists() (bool, error) {
	if s.stream == nil {
		return false, errors.NewUnsupportedOperationError("Exists", "synchronous stream provider")
	}
	return s.stream.Exists()
}

// ExistsContext reports whether the persisted artifact is present, preferring
// the context stream provider.
func (s *SaveFile[T]) ExistsContext(ctx context.Context) (bool, error) {
	switch {
	case s.streamCtx != nil:
		return s.streamCtx.Exists(ctx)
	case s.stream != nil:
		return s.stream.Exists()
	}
	return false, errors.NewUnsupportedOperationError("ExistsContext", "stream provider")
}

// Delete removes the persisted artifact using the synchronous stream
// provider. Deleting an absent artifact is a no-op.
func (s *SaveFile[T]) Delete() error {
	if s.stream == nil {
		return errors.NewUnsupportedOperationError("Delete", "synchronous stream provider")
	}
	return s.stream.Delete()
}

// DeleteContext removes the persisted artifact, preferring the context stream
// provider.
func (s *SaveFile[T]) DeleteContext(ctx context.Context) error {
	switch {
	case s.streamCtx != nil:
		return s.streamCtx.Delete(ctx)
	case s.stream != nil:
		return s.stream.Delete()
	}
	return errors.NewUnsupportedOperationError("DeleteContext", "stream provider")
}

// wrapCompress wraps dst with the configured compressor so that closing the
// wrapper also closes dst. Without a compressor, dst itself is returned.
func (s *SaveFile[T]) wrapCompress(dst io.WriteCloser) (io.WriteCloser, error) {
	if s.compressor == nil {
		return dst, nil
	}
	return s.compressor.Compress(dst, s.level, false)
}

// wrapCompressLeaveOpen wraps dst without transferring ownership: closing the
// wrapper flushes the codec footer but leaves dst open. nopWriteCloser keeps
// the close discipline uniform when no compressor is configured.
func (s *SaveFile[T]) wrapCompressLeaveOpen(dst io.Writer) (io.WriteCloser, error) {
	if s.compressor == nil {
		return nopWriteCloser{dst}, nil
	}
	return s.compressor.Compress(dst, s.level, true)
}

func (s *SaveFile[T]) wrapDecompress(src io.ReadCloser) (io.ReadCloser, error) {
	if s.compressor == nil {
		return src, nil
	}
	return s.compressor.Decompress(src, false)
}

func (s *SaveFile[T]) serializeContext(ctx context.Context, w io.Writer, v any) error {
	if s.serializerCtx != nil {
		return s.serializerCtx.Serialize(ctx, w, v)
	}
	return s.serializer.Serialize(w, v)
}

func (s *SaveFile[T]) deserializeContext(ctx context.Context, r io.Reader, v any) (bool, error) {
	if s.serializerCtx != nil {
		return s.serializerCtx.Deserialize(ctx, r, v)
	}
	return s.serializer.Deserialize(r, v)
}

// peekEmpty checks whether the source holds any bytes at all. Network
// providers map a missing artifact to an empty stream, and decompressor
// constructors fail on empty input, so an empty source must short-circuit to
// the "no data" outcome before any wrapping happens. When the source is
// empty, it is closed and true is returned; otherwise the returned reader
// carries the peeked bytes.
func peekEmpty(src io.ReadCloser) (io.ReadCloser, bool, error) {
	br := bufio.NewReader(src)
	if _, err := br.Peek(1); err == io.EOF {
		cerr := src.Close()
		return nil, true, cerr
	}
	return &bufferedReadCloser{Reader: br, closer: src}, false, nil
}

type bufferedReadCloser struct {
	*bufio.Reader
	closer io.Closer
}

func (b *bufferedReadCloser) Close() error {
	return b.closer.Close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
