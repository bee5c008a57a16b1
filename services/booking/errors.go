package booking

import "errors"

var (
	// ErrSessionNotFound covers unknown, malformed and expired session ids.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSessionConflict is returned when concurrent writers keep winning the
	// optimistic transaction on one session.
	ErrSessionConflict = errors.New("booking session is being updated concurrently")
)
