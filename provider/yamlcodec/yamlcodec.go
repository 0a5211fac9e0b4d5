/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package yamlcodec provides a YAML Serializer.
package yamlcodec

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Serializer encodes and decodes YAML documents. It satisfies
// provider.Serializer.
type Serializer struct {
	indent int
}

// New creates a Serializer with the default two-space indent.
func New() Serializer {
	return Serializer{indent: 2}
}

// NewWithIndent creates a Serializer using the given indent width.
func NewWithIndent(indent int) Serializer {
	return Serializer{indent: indent}
}

// Serialize writes v to w as one YAML document.
func (s Serializer) Serialize(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if s.indent > 0 {
		enc.SetIndent(s.indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish YAML document: %w", err)
	}
	return nil
}

// Deserialize reads one YAML document from r into v. An empty stream or a
// bare null document reports (false, nil).
func (s Serializer) Deserialize(r io.Reader, v any) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("failed to read YAML payload: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("~")) {
		return false, nil
	}
	if err := yaml.Unmarshal(trimmed, v); err != nil {
		return false, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return true, nil
}
