package resolve

import (
	"errors"
	"fmt"
)

// Failure kinds for a single key's resolution, for use with errors.Is.
// Every failure is local to the key being resolved: the loader reports it
// and moves on to the next key.
var (
	ErrPathInvalid     = errors.New("reference path not allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrKeyNotFound     = errors.New("key not found")
	ErrSearchExhausted = errors.New("no ancestor .env defines key")
	ErrCommandFailed   = errors.New("command failed")
)

// ResolveError ties a failure to the key that was being resolved.
type ResolveError struct {
	Key string
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }
