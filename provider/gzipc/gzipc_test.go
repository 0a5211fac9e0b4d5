/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gzipc

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/savefile/provider"
)

// closeBuffer is a bytes.Buffer that records whether it was closed.
type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

func TestRoundTrip(t *testing.T) {
	c := New()
	var buf closeBuffer

	w, err := c.Compress(&buf, provider.Optimal, true)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello gzip"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := c.Decompress(bytes.NewReader(buf.Bytes()), true)
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "hello gzip", string(out))
}

func TestLeaveOpenTrueKeepsBaseUsable(t *testing.T) {
	c := New()
	var buf closeBuffer

	w, err := c.Compress(&buf, provider.Optimal, true)
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.False(t, buf.closed, "base stream must stay open")

	// The base must still accept writes after the wrapper closed.
	_, err = buf.Write([]byte("trailer"))
	require.NoError(t, err)
}

func TestLeaveOpenFalseClosesBase(t *testing.T) {
	c := New()
	var buf closeBuffer

	w, err := c.Compress(&buf, provider.Optimal, false)
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.True(t, buf.closed, "closing the wrapper must cascade to the base")
}

func TestDecompressLeaveOpenDiscipline(t *testing.T) {
	c := New()
	var compressed bytes.Buffer
	w, err := c.Compress(&compressed, provider.Optimal, true)
	require.NoError(t, err)
	_, err = w.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	base := &closeReadBuffer{Reader: bytes.NewReader(compressed.Bytes())}
	r, err := c.Decompress(base, false)
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.True(t, base.closed)

	base = &closeReadBuffer{Reader: bytes.NewReader(compressed.Bytes())}
	r, err = c.Decompress(base, true)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.False(t, base.closed)
}

type closeReadBuffer struct {
	*bytes.Reader
	closed bool
}

func (b *closeReadBuffer) Close() error {
	b.closed = true
	return nil
}

func TestSmallestLevelNoLargerThanFastest(t *testing.T) {
	c := New()
	input := []byte(strings.Repeat("the quick brown fox jumps over it.", 1000))

	compress := func(level provider.Level) int {
		var buf bytes.Buffer
		w, err := c.Compress(&buf, level, true)
		require.NoError(t, err)
		_, err = w.Write(input)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		return buf.Len()
	}

	smallest := compress(provider.Smallest)
	fastest := compress(provider.Fastest)
	assert.LessOrEqual(t, smallest, fastest)
	assert.Less(t, smallest, len(input))
}

func TestNoneLevelStoresUncompressed(t *testing.T) {
	c := New()
	input := []byte(strings.Repeat("abc", 500))

	var buf bytes.Buffer
	w, err := c.Compress(&buf, provider.None, true)
	require.NoError(t, err)
	_, err = w.Write(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Stored mode still frames the data, so output is input plus headers.
	assert.GreaterOrEqual(t, buf.Len(), len(input))

	r, err := c.Decompress(&buf, true)
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}
