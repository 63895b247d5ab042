package domain

import "errors"

// Sentinel errors shared by repositories, services and delivery.
var (
	// ErrInvalidArgument marks missing or malformed input, including references to rows that do not exist.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists marks a violated uniqueness rule (duplicate option name, duplicate vote, duplicate guest name).
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is returned by lookups that match no row.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable wraps any persistence failure that is not one of the above, including timeouts.
	ErrStoreUnavailable = errors.New("store unavailable")
)
