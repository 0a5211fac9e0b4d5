/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jsoncodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestRoundTrip(t *testing.T) {
	s := New()
	var buf bytes.Buffer

	require.NoError(t, s.Serialize(&buf, sample{Name: "json", Value: 42}))

	var got sample
	found, err := s.Deserialize(&buf, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "json", Value: 42}, got)
}

func TestEmptyStreamIsAbsentNotError(t *testing.T) {
	s := New()

	var got sample
	found, err := s.Deserialize(strings.NewReader(""), &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, sample{}, got)
}

func TestNullDocumentIsAbsentNotError(t *testing.T) {
	s := New()

	var got sample
	found, err := s.Deserialize(strings.NewReader("null\n"), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMalformedDocumentIsError(t *testing.T) {
	s := New()

	var got sample
	found, err := s.Deserialize(strings.NewReader(`{"name": "broken`), &got)
	require.Error(t, err)
	assert.False(t, found)
}

func TestIndentOption(t *testing.T) {
	s := NewWithOptions(Options{IndentionStep: 2})
	var buf bytes.Buffer

	require.NoError(t, s.Serialize(&buf, sample{Name: "pretty", Value: 1}))
	assert.Contains(t, buf.String(), "\n  \"name\"")
}

func TestSortMapKeysIsDeterministic(t *testing.T) {
	s := NewWithOptions(Options{SortMapKeys: true})
	doc := map[string]int{"b": 2, "a": 1, "c": 3}

	var first bytes.Buffer
	require.NoError(t, s.Serialize(&first, doc))
	for i := 0; i < 10; i++ {
		var buf bytes.Buffer
		require.NoError(t, s.Serialize(&buf, doc))
		require.Equal(t, first.String(), buf.String())
	}
}
