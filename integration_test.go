/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package savefile_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/savefile"
	"github.com/suparena/savefile/chunk"
	"github.com/suparena/savefile/provider"
	"github.com/suparena/savefile/provider/gzipc"
	"github.com/suparena/savefile/provider/httpio"
	"github.com/suparena/savefile/provider/jsoncodec"
)

type settingsData struct {
	Language string `json:"language"`
}

type sessionData struct {
	Player   string       `json:"player"`
	Score    int          `json:"score"`
	Settings settingsData `json:"settings"`
}

// blobHandler serves one PUT-able artifact, the shape a save service exposes.
func blobHandler() http.Handler {
	var mu sync.Mutex
	var data []byte
	present := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			if !present {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.Method == http.MethodGet {
				w.Write(data)
			}
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			data, present = body, true
		case http.MethodDelete:
			if !present {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			present = false
			w.WriteHeader(http.StatusNoContent)
		}
	})
}

func TestEndToEndHTTPCompressedSave(t *testing.T) {
	ts := httptest.NewServer(blobHandler())
	defer ts.Close()
	ctx := context.Background()

	newTree := func(loaded *sessionData, wasLoaded *bool) *chunk.SaveChunk[sessionData] {
		settings := chunk.New(
			func(c *chunk.SaveChunk[settingsData]) (settingsData, error) {
				return settingsData{Language: "en"}, nil
			},
			func(c *chunk.SaveChunk[settingsData], d settingsData) error {
				loaded.Settings = d
				return nil
			})
		root := chunk.New(
			func(c *chunk.SaveChunk[sessionData]) (sessionData, error) {
				s, err := chunk.GetChunkSaveData[settingsData](c)
				if err != nil {
					return sessionData{}, err
				}
				return sessionData{Player: "alice", Score: 1200, Settings: s}, nil
			},
			func(c *chunk.SaveChunk[sessionData], d sessionData) error {
				loaded.Player = d.Player
				loaded.Score = d.Score
				if wasLoaded != nil {
					*wasLoaded = true
				}
				return chunk.LoadChunkSaveData(c, d.Settings)
			})
		require.NoError(t, chunk.AddChunk(root, settings))
		return root
	}

	options := func(root *chunk.SaveChunk[sessionData]) (*savefile.SaveFile[sessionData], error) {
		return savefile.New(root,
			savefile.WithStreamProviderContext[sessionData](httpio.New(ts.URL+"/saves/alice", httpio.WithClient(ts.Client()))),
			savefile.WithSerializer[sessionData](jsoncodec.New()),
			savefile.WithCompressor[sessionData](gzipc.New()),
			savefile.WithCompressionLevel[sessionData](provider.Smallest),
		)
	}

	var discard sessionData
	saver, err := options(newTree(&discard, nil))
	require.NoError(t, err)

	// First load hits a 404, which must behave like a first run.
	wasLoaded := false
	var got sessionData
	loader, err := options(newTree(&got, &wasLoaded))
	require.NoError(t, err)
	require.NoError(t, loader.LoadContext(ctx))
	assert.False(t, wasLoaded, "loading before any save must leave the tree untouched")

	require.NoError(t, saver.SaveContext(ctx))

	exists, err := saver.ExistsContext(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, loader.LoadContext(ctx))
	assert.True(t, wasLoaded)
	assert.Equal(t, sessionData{Player: "alice", Score: 1200, Settings: settingsData{Language: "en"}}, got)

	require.NoError(t, saver.DeleteContext(ctx))
	exists, err = saver.ExistsContext(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}
