package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no persisted session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrPersistence indicates that durable storage could not be read or written
	ErrPersistence = errors.New("session storage failure")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
