package auth

import "errors"

var (
	// ErrAuthenticationFailed indicates that the server rejected the credentials
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotAuthenticated indicates an operation that needs an active session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidSession indicates a session response without user id or token
	ErrInvalidSession = errors.New("invalid session data")
)
