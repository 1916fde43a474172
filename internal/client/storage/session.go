package storage

import (
	"context"
)

// KeyPrefix namespaces every persisted key of the client.
const KeyPrefix = "@GoBarber"

// Persisted keys. Token and user are always written and removed together.
const (
	KeyToken = KeyPrefix + ":token"
	KeyUser  = KeyPrefix + ":user"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines the durable key/value store of the client session.
// Every method touching both keys is atomic: a reader never observes a token
// without its user record or the other way round.
type SessionStorage interface {
	// SaveSession writes token and serialized user in one transaction
	SaveSession(ctx context.Context, token string, user []byte) error

	// SaveUser replaces the serialized user record, token is left as is
	SaveUser(ctx context.Context, user []byte) error

	// LoadSession returns the raw token and user record.
	// Returns ErrSessionNotFound if either key is missing.
	LoadSession(ctx context.Context) (token string, user []byte, err error)

	// DeleteSession removes both keys. Missing keys are not an error.
	DeleteSession(ctx context.Context) error
}
