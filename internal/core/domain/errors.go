package domain

import "errors"

var (
	// ErrNotFound signals an unknown entity (champion, playlist).
	ErrNotFound = errors.New("domain: not found")

	// ErrInvalidInput signals a missing required selection; no partial work
	// has been performed when it is returned.
	ErrInvalidInput = errors.New("domain: invalid selection")

	// ErrNoResults signals that every resolution attempt failed: the
	// assembler produced zero tracks, or an export resolved zero unique items.
	ErrNoResults = errors.New("domain: no results")

	// ErrAuthRequired signals that the platform token is absent or
	// unrefreshable and the user must go through the OAuth flow again.
	ErrAuthRequired = errors.New("domain: authentication required")
)
