package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Lookup errors
	ErrNotFound        = errors.New("not found")
	ErrSessionNotFound = errors.New("upload session not found")

	// Infrastructure errors
	ErrResourceUnavailable  = errors.New("resource unavailable")
	ErrPersistenceFailure   = errors.New("persistence failure")
	ErrExternalStoreFailure = errors.New("external store failure")
	ErrStorageModeMismatch  = errors.New("blob handle does not match storage backend")

	// Content errors
	ErrDigestMismatch = errors.New("digest mismatch")
)

// IsMissing reports whether err denotes an absent resource.
func IsMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrSessionNotFound)
}

// IsUnavailable reports whether err denotes a transient capacity problem.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrResourceUnavailable)
}
