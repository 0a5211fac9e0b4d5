/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package savefile

import (
	"go.uber.org/zap"

	"github.com/suparena/savefile/provider"
)

// Option configures a SaveFile.
type Option[T any] func(*SaveFile[T])

// WithStreamProvider attaches a synchronous stream provider, enabling the
// synchronous entry points and serving as the context entry points' fallback.
func WithStreamProvider[T any](p provider.StreamProvider) Option[T] {
	return func(s *SaveFile[T]) {
		s.stream = p
	}
}

// WithStreamProviderContext attaches a context-aware stream provider, which
// the context entry points prefer over the synchronous one.
func WithStreamProviderContext[T any](p provider.StreamProviderContext) Option[T] {
	return func(s *SaveFile[T]) {
		s.streamCtx = p
	}
}

// WithCompressor places a compressor between the serializer and the stream.
// Without one, serialized output goes to the stream uncompressed.
func WithCompressor[T any](c provider.Compressor) Option[T] {
	return func(s *SaveFile[T]) {
		s.compressor = c
	}
}

// WithCompressionLevel sets the level hint passed to the compressor.
// The default is provider.Optimal.
func WithCompressionLevel[T any](level provider.Level) Option[T] {
	return func(s *SaveFile[T]) {
		s.level = level
	}
}

// WithSerializer attaches a synchronous serializer.
func WithSerializer[T any](sz provider.Serializer) Option[T] {
	return func(s *SaveFile[T]) {
		s.serializer = sz
	}
}

// WithSerializerContext attaches a context-aware serializer, which the
// context entry points prefer over the synchronous one.
func WithSerializerContext[T any](sz provider.SerializerContext) Option[T] {
	return func(s *SaveFile[T]) {
		s.serializerCtx = sz
	}
}

// WithLogger sets the logger for pipeline debug output. The default is a
// no-op logger.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(s *SaveFile[T]) {
		if l != nil {
			s.logger = l
		}
	}
}
