// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingIdentity signals sync was requested without an external id.
	ErrMissingIdentity = errors.New("missing identity")
	// ErrSyncFailed signals a store or platform-session failure during sync.
	ErrSyncFailed = errors.New("sync failed")
)
