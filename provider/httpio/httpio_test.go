/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpio

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveServer is a minimal artifact server: one PUT-able blob per test.
type saveServer struct {
	mu      sync.Mutex
	data    []byte
	present bool

	lastPutLength int64
}

func (s *saveServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			if !s.present {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write(s.data)
		case http.MethodHead:
			if !s.present {
				w.WriteHeader(http.StatusNotFound)
				return
			}
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			s.data = body
			s.present = true
			s.lastPutLength = r.ContentLength
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			if !s.present {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			s.present = false
			w.WriteHeader(http.StatusNoContent)
		}
	})
}

func newTestProvider(t *testing.T) (*Provider, *saveServer) {
	t.Helper()
	srv := &saveServer{}
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	return New(ts.URL+"/saves/slot1", WithClient(ts.Client())), srv
}

func TestReadOfMissingArtifactYieldsEmptyStream(t *testing.T) {
	p, _ := newTestProvider(t)

	r, err := p.Read(context.Background())
	require.NoError(t, err, "a 404 maps to an empty stream, not an error")
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Empty(t, data)
}

func TestWriteCarriesContentLength(t *testing.T) {
	p, srv := newTestProvider(t)

	payload := []byte(`{"name":"net"}`)
	err := p.Write(context.Background(), readerOf(payload), int64(len(payload)))
	require.NoError(t, err)

	assert.Equal(t, int64(len(payload)), srv.lastPutLength)
	assert.Equal(t, payload, srv.data)
}

func TestReadAfterWrite(t *testing.T) {
	p, _ := newTestProvider(t)

	payload := []byte("artifact bytes")
	require.NoError(t, p.Write(context.Background(), readerOf(payload), int64(len(payload))))

	r, err := p.Read(context.Background())
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, payload, got)
}

func TestExistsMapsStatusToBool(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	exists, err := p.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	payload := []byte("x")
	require.NoError(t, p.Write(ctx, readerOf(payload), 1))

	exists, err = p.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsTransportFailureIsFalse(t *testing.T) {
	p := New("http://127.0.0.1:1/unreachable")

	exists, err := p.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteIsIdempotent(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	// 404 counts as already deleted.
	require.NoError(t, p.Delete(ctx))

	payload := []byte("x")
	require.NoError(t, p.Write(ctx, readerOf(payload), 1))
	require.NoError(t, p.Delete(ctx))
	require.NoError(t, p.Delete(ctx))

	exists, err := p.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCancelledContextFailsRead(t *testing.T) {
	p, _ := newTestProvider(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Read(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func readerOf(b []byte) io.Reader {
	return bytes.NewReader(b)
}
