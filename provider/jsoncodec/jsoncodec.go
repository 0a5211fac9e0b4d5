/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package jsoncodec provides a JSON Serializer.
package jsoncodec

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Options carry serializer-specific configuration. The core treats them as
// opaque; they only shape the produced document.
type Options struct {
	// IndentionStep is the number of spaces per nesting level; zero keeps
	// the output compact.
	IndentionStep int

	// SortMapKeys makes map serialization deterministic.
	SortMapKeys bool

	// EscapeHTML escapes <, > and & inside strings.
	EscapeHTML bool
}

// Serializer encodes and decodes JSON documents. It satisfies
// provider.Serializer.
type Serializer struct {
	api jsoniter.API
}

// New creates a Serializer with compact output and standard library
// compatible behavior.
func New() Serializer {
	return NewWithOptions(Options{SortMapKeys: true, EscapeHTML: true})
}

// NewWithOptions creates a Serializer with the given configuration.
func NewWithOptions(opts Options) Serializer {
	cfg := jsoniter.Config{
		IndentionStep: opts.IndentionStep,
		SortMapKeys:   opts.SortMapKeys,
		EscapeHTML:    opts.EscapeHTML,
	}
	return Serializer{api: cfg.Froze()}
}

// Serialize writes v to w as one JSON document.
func (s Serializer) Serialize(w io.Writer, v any) error {
	if err := s.api.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Deserialize reads one JSON document from r into v. An empty stream or a
// bare null document reports (false, nil): a valid "no data" outcome, as
// opposed to a malformed document, which is an error.
func (s Serializer) Deserialize(r io.Reader, v any) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("failed to read JSON payload: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if err := s.api.Unmarshal(trimmed, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return true, nil
}
