package boltdb

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/gobarber/gobarber-client/internal/client/storage"
)

var (
	keyToken = []byte(storage.KeyToken)
	keyUser  = []byte(storage.KeyUser)
)

// SaveSession stores token and user record in a single transaction
func (s *Storage) SaveSession(ctx context.Context, token string, user []byte) error {
	return s.update(func(bucket *bbolt.Bucket) error {
		// Порядок: сначала token, затем user; коммит один на оба ключа
		if err := bucket.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(keyUser, user); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
}

// SaveUser replaces the user record of an existing session
func (s *Storage) SaveUser(ctx context.Context, user []byte) error {
	return s.update(func(bucket *bbolt.Bucket) error {
		// Без токена запись пользователя дала бы половину сессии
		if bucket.Get(keyToken) == nil {
			return storage.ErrSessionNotFound
		}
		if err := bucket.Put(keyUser, user); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
}

// LoadSession retrieves the stored token and user record
func (s *Storage) LoadSession(ctx context.Context) (string, []byte, error) {
	if s.db == nil {
		return "", nil, fmt.Errorf("%w: %w", storage.ErrPersistence, storage.ErrStorageClosed)
	}

	var (
		token string
		user  []byte
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("%w: session bucket not found", storage.ErrPersistence)
		}

		rawToken := bucket.Get(keyToken)
		rawUser := bucket.Get(keyUser)
		if rawToken == nil || rawUser == nil {
			return storage.ErrSessionNotFound
		}

		// Значения из bbolt валидны только внутри транзакции
		token = string(rawToken)
		user = append([]byte(nil), rawUser...)
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// DeleteSession removes both session keys (sign-out)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.update(func(bucket *bbolt.Bucket) error {
		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// update runs fn in a write transaction on the session bucket.
// Errors other than ErrSessionNotFound are reported as ErrPersistence.
func (s *Storage) update(fn func(bucket *bbolt.Bucket) error) error {
	if s.db == nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistence, storage.ErrStorageClosed)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		return fn(bucket)
	})
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("%w: %w", storage.ErrPersistence, err)
	}
	return err
}
