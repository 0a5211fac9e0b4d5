/*
Package savefile composes persistent application state from independently
defined chunks and saves or loads that composed state as one unit through a
pluggable pipeline of stream I/O, compression, and serialization.

The library follows a compose → configure → run workflow:
  - Compose: subsystems each create a chunk.SaveChunk for their slice of
    state and attach it to a parent chunk by data type
  - Configure: a SaveFile binds the root chunk to stream, compression, and
    serialization providers
  - Run: Save/Load (or SaveContext/LoadContext) drive the pipeline

Key Features:
  - Type-safe chunk composition using Go generics
  - Pluggable providers: filesystem, HTTP, DynamoDB, S3-compatible stores;
    gzip, DEFLATE, zstd; JSON, YAML
  - Synchronous and context-aware pipelines, freely mixed per concern
  - Deterministic nested stream lifetimes with explicit ownership transfer
  - Semantic error types for configuration and lookup failures

Basic Usage:

	root := chunk.New(produceGameData, consumeGameData)

	sf, err := savefile.New(root,
	    savefile.WithStreamProvider[GameData](fsio.New("saves/slot1.json.gz")),
	    savefile.WithSerializer[GameData](jsoncodec.New()),
	    savefile.WithCompressor[GameData](gzipc.New()),
	)
	if err != nil {
	    return err
	}

	if err := sf.Save(); err != nil {
	    return err
	}
	err = sf.Load() // no-op if nothing was ever saved

For more information, see the documentation at https://github.com/suparena/savefile
*/
package savefile
