package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/gobarber/gobarber-client/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с session bucket
func createTestSessionStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "session_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveLoadDeleteSession(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	user := []byte(`{"id":"user-id","name":"John Doe","email":"johndoe@example.com"}`)

	// До сохранения сессии нет
	_, _, err := store.LoadSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	require.NoError(t, store.SaveSession(ctx, "jwt-token", user))

	token, got, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, user, got)

	require.NoError(t, store.DeleteSession(ctx))

	_, _, err = store.LoadSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление: ключей нет, ошибки тоже нет
	assert.NoError(t, store.DeleteSession(ctx))
}

func TestStorage_KeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	require.NoError(t, store.SaveSession(ctx, "jwt-token", []byte(`{"id":"user-id"}`)))

	var keys []string
	err := store.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte("@GoBarber")).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"@GoBarber:token", "@GoBarber:user"}, keys)
}

func TestStorage_SaveUser(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	// Без токена пользователь не записывается
	err := store.SaveUser(ctx, []byte(`{"id":"user-id"}`))
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	_, _, err = store.LoadSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	require.NoError(t, store.SaveSession(ctx, "jwt-token", []byte(`{"id":"user-id","name":"John"}`)))
	require.NoError(t, store.SaveUser(ctx, []byte(`{"id":"user-id","name":"John Tre"}`)))

	token, user, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token, "token must not change on user update")
	assert.JSONEq(t, `{"id":"user-id","name":"John Tre"}`, string(user))
}

func TestStorage_LoadSession_HalfWritten(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	// Только токен, без пользователя: сессии нет
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyToken, []byte("jwt-token"))
	})
	require.NoError(t, err)

	_, _, err = store.LoadSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestSessionStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	err = store.SaveSession(ctx, "jwt-token", []byte(`{}`))
	assert.ErrorIs(t, err, storage.ErrPersistence)
	assert.Contains(t, err.Error(), "session bucket not found")

	err = store.DeleteSession(ctx)
	assert.ErrorIs(t, err, storage.ErrPersistence)

	_, _, err = store.LoadSession(ctx)
	assert.ErrorIs(t, err, storage.ErrPersistence)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	err = store.SaveSession(ctx, "jwt-token", []byte(`{}`))
	assert.ErrorIs(t, err, storage.ErrPersistence)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, _, err = store.LoadSession(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
