package core

import "errors"

var (
	// ErrPersistence wraps remote store failures. These surface to the
	// caller for a human to see; nothing retries them automatically.
	ErrPersistence = errors.New("persistence error")

	// ErrCodeSpaceExhausted means every 4-digit code in a service scope is
	// already taken, so generation cannot terminate.
	ErrCodeSpaceExhausted = errors.New("pickup code space exhausted for scope")
)
