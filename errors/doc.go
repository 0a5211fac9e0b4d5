/*
Package errors provides semantic error types for the SaveFile library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound             = errors.New("chunk not found")
	    ErrDuplicateKey         = errors.New("chunk already registered")
	    ErrUnsupportedOperation = errors.New("operation not supported by configured providers")
	    ErrInvalidInput         = errors.New("invalid input")
	)

Usage:

	// Check error type
	data, err := chunk.GetChunkSaveData[PreferencesData](root)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // No preferences chunk was attached
	        return PreferencesData{}, nil
	    }
	    return PreferencesData{}, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("PreferencesData")
	err := errors.NewDuplicateKeyError("PreferencesData")
	err := errors.NewUnsupportedOperationError("Save", "synchronous stream provider")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.

Errors raised by providers (missing files, malformed payloads, cancelled
contexts) are deliberately not translated into this taxonomy; the orchestrator
passes them through so callers can inspect the original failure.
*/
package errors
