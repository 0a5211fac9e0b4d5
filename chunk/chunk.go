/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package chunk

import (
	"github.com/suparena/savefile/registry"
)

// ProduceFunc builds the data a chunk contributes to a save. It receives the
// chunk itself so it can pull data from the chunk's children.
type ProduceFunc[T any] func(c *SaveChunk[T]) (T, error)

// ConsumeFunc applies freshly loaded data to the application. It receives the
// chunk itself so it can redistribute sub-data to the chunk's children.
type ConsumeFunc[T any] func(c *SaveChunk[T], data T) error

// SaveChunk is one modular slice of persisted state, identified by the data
// type T it produces and consumes. A chunk holds behavior, not data: between
// calls nothing is cached, and each GetSaveData/LoadSaveData materializes or
// applies data through the configured callbacks.
//
// Chunks compose into a tree by registering children under their data types.
// The tree enables lookup only; a parent's callbacks decide which children to
// touch, and nothing recurses automatically.
type SaveChunk[T any] struct {
	produce  ProduceFunc[T]
	consume  ConsumeFunc[T]
	children *registry.TypeRegistry
}

// New creates a SaveChunk with the given produce and consume callbacks.
// Either callback may be nil for chunks that only save or only load.
func New[T any](produce ProduceFunc[T], consume ConsumeFunc[T]) *SaveChunk[T] {
	return &SaveChunk[T]{
		produce:  produce,
		consume:  consume,
		children: registry.New(),
	}
}

// GetSaveData invokes the produce callback and returns its result unchanged.
// A nil produce callback yields the zero value of T.
func (c *SaveChunk[T]) GetSaveData() (T, error) {
	if c.produce == nil {
		var zero T
		return zero, nil
	}
	return c.produce(c)
}

// LoadSaveData invokes the consume callback with the given data.
// A nil consume callback makes this a no-op.
func (c *SaveChunk[T]) LoadSaveData(data T) error {
	if c.consume == nil {
		return nil
	}
	return c.consume(c, data)
}

// Children exposes the chunk's child registry. Child chunks are stored under
// the data type they declare, not under the chunk type.
func (c *SaveChunk[T]) Children() *registry.TypeRegistry {
	return c.children
}

// Node is the type-erased view of a SaveChunk used by the generic child
// accessors, which cannot name the parent's data type.
type Node interface {
	Children() *registry.TypeRegistry
}

// AddChunk registers child under its data type C. It fails with a
// DuplicateKeyError if the parent already has a child for C.
func AddChunk[C any](parent Node, child *SaveChunk[C]) error {
	return registry.SetTyped[C](parent.Children(), child)
}

// OverwriteChunk registers child under its data type C, replacing any chunk
// previously registered for C. It always succeeds.
func OverwriteChunk[C any](parent Node, child *SaveChunk[C]) {
	registry.OverwriteTyped[C](parent.Children(), child)
}

// GetChunk retrieves the child registered for data type C. It fails with a
// NotFoundError if no such child was added.
func GetChunk[C any](parent Node) (*SaveChunk[C], error) {
	return registry.GetTyped[C, *SaveChunk[C]](parent.Children())
}

// GetChunkSaveData asks the child registered for data type C to produce its
// save data.
func GetChunkSaveData[C any](parent Node) (C, error) {
	child, err := GetChunk[C](parent)
	if err != nil {
		var zero C
		return zero, err
	}
	return child.GetSaveData()
}

// LoadChunkSaveData hands data to the child registered for data type C.
func LoadChunkSaveData[C any](parent Node, data C) error {
	child, err := GetChunk[C](parent)
	if err != nil {
		return err
	}
	return child.LoadSaveData(data)
}
