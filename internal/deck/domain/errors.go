package domain

import "errors"

var (
	// ErrNoSlides is the one hard build failure: no slide survived
	// assembly, so there is nothing to view. A user-input problem, not
	// an infrastructure one.
	ErrNoSlides = errors.New("deck has no slides")

	// ErrDeckNotFound means a single lookup channel missed.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrDeckUnavailable means every transport channel (inline payload,
	// durable store, broadcast wait) was exhausted. Expected and
	// user-recoverable: the link may simply be stale.
	ErrDeckUnavailable = errors.New("no deck available")

	// ErrExportFailed marks a failed export; retryable, never leaves a
	// partial file behind.
	ErrExportFailed = errors.New("export failed")
)
