/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package provider

import (
	"context"
	"io"
)

// StreamProvider is the synchronous byte-stream I/O contract.
type StreamProvider interface {
	// Read opens the persisted artifact for reading. It fails if the
	// artifact does not exist.
	Read() (io.ReadCloser, error)

	// Write opens the artifact for writing with truncate-or-create
	// semantics, creating any missing parent location first.
	Write() (io.WriteCloser, error)

	// Exists reports whether the artifact is present.
	Exists() (bool, error)

	// Delete removes the artifact. Deleting an absent artifact is a no-op.
	Delete() error
}

// StreamProviderContext is the context-aware (asynchronous) I/O contract.
//
// Write takes the fully buffered payload rather than handing out a stream,
// because transports like HTTP need the complete content and its size before
// transmission; the caller guarantees payload is positioned at the start.
type StreamProviderContext interface {
	Read(ctx context.Context) (io.ReadCloser, error)

	Write(ctx context.Context, payload io.Reader, size int64) error

	Exists(ctx context.Context) (bool, error)

	Delete(ctx context.Context) error
}

// Level is a codec-independent compression level hint.
type Level int

const (
	// None disables compression where the codec supports a stored mode.
	None Level = iota
	// Fastest favors throughput over output size.
	Fastest
	// Optimal is the codec's balanced default.
	Optimal
	// Smallest favors output size over throughput.
	Smallest
)

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case Fastest:
		return "fastest"
	case Optimal:
		return "optimal"
	case Smallest:
		return "smallest"
	}
	return "unknown"
}

// Compressor wraps streams with a compressing writer or decompressing reader.
//
// The leaveOpen flag controls whether closing the returned wrapper also closes
// the wrapped stream. The orchestrator nests several streams per operation and
// uses leaveOpen to close them in wrapper-then-base order without severing a
// stream an outer layer still needs. When leaveOpen is false and the wrapped
// stream implements io.Closer, closing the wrapper closes it too.
type Compressor interface {
	Compress(dst io.Writer, level Level, leaveOpen bool) (io.WriteCloser, error)

	Decompress(src io.Reader, leaveOpen bool) (io.ReadCloser, error)
}

// Serializer is the synchronous serialization contract.
//
// Deserialize reports (false, nil) when the stream holds no value at all,
// which is a valid outcome distinct from a malformed payload: a load that
// finds no data leaves the chunk tree untouched.
type Serializer interface {
	Serialize(w io.Writer, v any) error

	Deserialize(r io.Reader, v any) (bool, error)
}

// SerializerContext is the context-aware serialization contract, for
// serializers that may suspend on their own I/O or honor cancellation
// mid-document.
type SerializerContext interface {
	Serialize(ctx context.Context, w io.Writer, v any) error

	Deserialize(ctx context.Context, r io.Reader, v any) (bool, error)
}
