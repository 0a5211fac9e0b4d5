/*
Package registry provides the type-keyed storage used by chunk trees.

A TypeRegistry maps a reflect.Type to exactly one value. Chunks use it to
store their children under each child's declared data type, which lets a
parent's callbacks ask for children by compile-time type instead of by an
externally agreed name:

	r := registry.New()
	err := registry.SetTyped[PreferencesData](r, prefsChunk)
	child, err := registry.GetTyped[PreferencesData, *chunk.SaveChunk[PreferencesData]](r)

Set rejects duplicates with a DuplicateKeyError; Overwrite replaces
unconditionally. Lookups are by type identity only, so the registry makes no
ordering guarantees.

The registry is thread-safe, though chunk trees are normally assembled once
during application setup and read afterwards.
*/
package registry
