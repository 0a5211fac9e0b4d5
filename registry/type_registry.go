/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/savefile/errors"
)

// TypeRegistry stores at most one value per reflect.Type. It is the backing
// store for a chunk's children, which are keyed by the data type each child
// produces and consumes rather than by name.
type TypeRegistry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

// New creates an empty TypeRegistry.
func New() *TypeRegistry {
	return &TypeRegistry{
		entries: make(map[reflect.Type]any),
	}
}

// Set stores value under key. It fails with a DuplicateKeyError if an entry
// for that type already exists; it never replaces silently.
func (r *TypeRegistry) Set(key reflect.Type, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return errors.NewDuplicateKeyError(key.String())
	}
	r.entries[key] = value
	return nil
}

// Overwrite stores value under key unconditionally, replacing any prior entry.
// It succeeds whether or not an entry existed before.
func (r *TypeRegistry) Overwrite(key reflect.Type, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = value
}

// Get retrieves the entry stored under key. It fails with a NotFoundError if
// no entry of that type was ever set.
func (r *TypeRegistry) Get(key reflect.Type) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.entries[key]
	if !exists {
		return nil, errors.NewNotFoundError(key.String())
	}
	return v, nil
}

// Len returns the number of registered entries.
func (r *TypeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// KeyOf returns the registry key for type T.
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetTyped stores value under type T's key, failing on duplicates.
func SetTyped[T any](r *TypeRegistry, value any) error {
	return r.Set(KeyOf[T](), value)
}

// OverwriteTyped stores value under type T's key unconditionally.
func OverwriteTyped[T any](r *TypeRegistry, value any) {
	r.Overwrite(KeyOf[T](), value)
}

// GetTyped retrieves the entry stored under type T's key and downcasts it to V.
func GetTyped[T any, V any](r *TypeRegistry) (V, error) {
	var zero V
	v, err := r.Get(KeyOf[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := v.(V)
	if !ok {
		return zero, errors.NewValidationError("", "registry entry has unexpected concrete type "+reflect.TypeOf(v).String())
	}
	return typed, nil
}
