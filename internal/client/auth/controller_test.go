package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobarber/gobarber-client/internal/client/api"
	"github.com/gobarber/gobarber-client/internal/client/storage"
	"github.com/gobarber/gobarber-client/internal/models"
	pkgapi "github.com/gobarber/gobarber-client/pkg/api"
)

// memoryStore хранит ключи в map, как localStorage в браузере
type memoryStore struct {
	keys map[string][]byte
	mu   sync.Mutex
}

// newMemoryStore возвращает moq-мок хранилища поверх map
func newMemoryStore() (*storage.SessionStorageMock, *memoryStore) {
	mem := &memoryStore{keys: map[string][]byte{}}

	mock := &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, token string, user []byte) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			mem.keys[storage.KeyToken] = []byte(token)
			mem.keys[storage.KeyUser] = user
			return nil
		},
		SaveUserFunc: func(ctx context.Context, user []byte) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			if _, ok := mem.keys[storage.KeyToken]; !ok {
				return storage.ErrSessionNotFound
			}
			mem.keys[storage.KeyUser] = user
			return nil
		},
		LoadSessionFunc: func(ctx context.Context) (string, []byte, error) {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			token, okToken := mem.keys[storage.KeyToken]
			user, okUser := mem.keys[storage.KeyUser]
			if !okToken || !okUser {
				return "", nil, storage.ErrSessionNotFound
			}
			return string(token), user, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			delete(mem.keys, storage.KeyToken)
			delete(mem.keys, storage.KeyUser)
			return nil
		},
	}

	return mock, mem
}

func (m *memoryStore) put(t *testing.T, token string, user any) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	m.keys[storage.KeyToken] = []byte(token)
	m.keys[storage.KeyUser] = raw
}

func (m *memoryStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

var johnDoe = models.User{
	ID:    "user-id",
	Name:  "John Doe",
	Email: "johndoe@example.com",
}

func TestController_SignIn(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	apiClient := &api.ClientAPIMock{
		CreateSessionFunc: func(ctx context.Context, req pkgapi.SessionRequest) (*pkgapi.SessionResponse, error) {
			assert.Equal(t, "johndoe@example.com", req.Email)
			assert.Equal(t, "123456", req.Password)
			return &pkgapi.SessionResponse{User: johnDoe, Token: "jwt-token"}, nil
		},
	}

	ctrl := NewController(apiClient, store, nil)

	var notified []models.Session
	ctrl.Subscribe(func(s models.Session) {
		notified = append(notified, s)
	})

	require.NoError(t, ctrl.SignIn(ctx, "johndoe@example.com", "123456"))

	// Токен и JSON пользователя записаны одной операцией
	calls := store.SaveSessionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "jwt-token", calls[0].Token)
	expectedUser, err := json.Marshal(johnDoe)
	require.NoError(t, err)
	assert.JSONEq(t, string(expectedUser), string(calls[0].User))
	assert.Equal(t, 2, mem.len())

	user, ok := ctrl.User()
	require.True(t, ok)
	assert.Equal(t, "johndoe@example.com", user.Email)
	assert.Equal(t, "jwt-token", ctrl.Token())

	require.Len(t, notified, 1)
	assert.Equal(t, "jwt-token", notified[0].Token)
	assert.Equal(t, johnDoe, *notified[0].User)
}

func TestController_SignIn_Rejected(t *testing.T) {
	tests := []struct {
		apiErr       error
		wantSentinel error
		name         string
	}{
		{
			name:         "wrong password",
			apiErr:       &api.StatusError{Code: http.StatusUnauthorized, Message: "Incorrect email/password combination."},
			wantSentinel: ErrAuthenticationFailed,
		},
		{
			name:         "validation rejected by server",
			apiErr:       &api.StatusError{Code: http.StatusBadRequest},
			wantSentinel: ErrAuthenticationFailed,
		},
		{
			name:   "network error",
			apiErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mem := newMemoryStore()
			apiClient := &api.ClientAPIMock{
				CreateSessionFunc: func(ctx context.Context, req pkgapi.SessionRequest) (*pkgapi.SessionResponse, error) {
					return nil, tt.apiErr
				},
			}
			ctrl := NewController(apiClient, store, nil)

			notified := 0
			ctrl.Subscribe(func(models.Session) { notified++ })

			err := ctrl.SignIn(context.Background(), "johndoe@example.com", "wrong")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.apiErr)
			if tt.wantSentinel != nil {
				assert.ErrorIs(t, err, tt.wantSentinel)
			} else {
				assert.NotErrorIs(t, err, ErrAuthenticationFailed)
			}

			// Ничего не записано, сессия пустая
			assert.Empty(t, store.SaveSessionCalls())
			assert.Zero(t, mem.len())
			_, ok := ctrl.Session()
			assert.False(t, ok)
			assert.Zero(t, notified)
		})
	}
}

func TestController_SignIn_InvalidInput(t *testing.T) {
	store, _ := newMemoryStore()
	apiClient := &api.ClientAPIMock{}
	ctrl := NewController(apiClient, store, nil)

	err := ctrl.SignIn(context.Background(), "not-an-email", "123456")
	assert.ErrorContains(t, err, "invalid e-mail")

	err = ctrl.SignIn(context.Background(), "johndoe@example.com", "")
	assert.ErrorContains(t, err, "invalid password")

	assert.Empty(t, apiClient.CreateSessionCalls())
}

func TestController_SignIn_MalformedResponse(t *testing.T) {
	store, _ := newMemoryStore()
	apiClient := &api.ClientAPIMock{
		CreateSessionFunc: func(ctx context.Context, req pkgapi.SessionRequest) (*pkgapi.SessionResponse, error) {
			return &pkgapi.SessionResponse{User: johnDoe}, nil
		},
	}
	ctrl := NewController(apiClient, store, nil)

	err := ctrl.SignIn(context.Background(), "johndoe@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Empty(t, store.SaveSessionCalls())
}

func TestController_SignIn_PersistenceFailure(t *testing.T) {
	store, _ := newMemoryStore()
	store.SaveSessionFunc = func(ctx context.Context, token string, user []byte) error {
		return storage.ErrPersistence
	}
	apiClient := &api.ClientAPIMock{
		CreateSessionFunc: func(ctx context.Context, req pkgapi.SessionRequest) (*pkgapi.SessionResponse, error) {
			return &pkgapi.SessionResponse{User: johnDoe, Token: "jwt-token"}, nil
		},
	}
	ctrl := NewController(apiClient, store, nil)

	err := ctrl.SignIn(context.Background(), "johndoe@example.com", "123456")
	assert.ErrorIs(t, err, storage.ErrPersistence)

	_, ok := ctrl.Session()
	assert.False(t, ok, "no in-memory session when the write failed")
	assert.Empty(t, ctrl.Token())
}

func TestController_Restore(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)

	apiClient := &api.ClientAPIMock{}
	ctrl := NewController(apiClient, store, nil)

	require.NoError(t, ctrl.Restore(ctx))

	user, ok := ctrl.User()
	require.True(t, ok)
	assert.Equal(t, "johndoe@example.com", user.Email)
	assert.Equal(t, "jwt-token", ctrl.Token())

	// Восстановление без обращения к серверу
	assert.Empty(t, apiClient.CreateSessionCalls())
}

func TestController_Restore_Empty(t *testing.T) {
	store, _ := newMemoryStore()
	ctrl := NewController(&api.ClientAPIMock{}, store, nil)

	require.NoError(t, ctrl.Restore(context.Background()))

	user, ok := ctrl.User()
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestController_Restore_Malformed(t *testing.T) {
	tests := []struct {
		user  any
		name  string
		token string
	}{
		{name: "user without id", token: "jwt-token", user: map[string]string{"name": "John"}},
		{name: "user not an object", token: "jwt-token", user: "John"},
		{name: "empty token", token: "", user: johnDoe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mem := newMemoryStore()
			mem.put(t, tt.token, tt.user)
			ctrl := NewController(&api.ClientAPIMock{}, store, nil)

			require.NoError(t, ctrl.Restore(context.Background()))

			_, ok := ctrl.Session()
			assert.False(t, ok)
			// Поврежденная запись удалена
			assert.Len(t, store.DeleteSessionCalls(), 1)
			assert.Zero(t, mem.len())
		})
	}
}

func TestController_Restore_StorageError(t *testing.T) {
	store, _ := newMemoryStore()
	store.LoadSessionFunc = func(ctx context.Context) (string, []byte, error) {
		return "", nil, storage.ErrPersistence
	}
	ctrl := NewController(&api.ClientAPIMock{}, store, nil)

	err := ctrl.Restore(context.Background())
	assert.ErrorIs(t, err, storage.ErrPersistence)

	_, ok := ctrl.Session()
	assert.False(t, ok)
}

func TestController_SignOut(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)
	require.NoError(t, ctrl.Restore(ctx))

	// Несколько подписчиков не влияют на число удалений
	var mu sync.Mutex
	var seen []bool
	for n := 0; n < 3; n++ {
		ctrl.Subscribe(func(s models.Session) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, s.Authenticated())
		})
	}

	require.NoError(t, ctrl.SignOut(ctx))

	assert.Len(t, store.DeleteSessionCalls(), 1)
	assert.Zero(t, mem.len(), "both keys removed")

	user, ok := ctrl.User()
	assert.False(t, ok)
	assert.Nil(t, user)
	assert.Empty(t, ctrl.Token())
	assert.Equal(t, []bool{false, false, false}, seen)

	// Повторный выход ничего не делает
	require.NoError(t, ctrl.SignOut(ctx))
	assert.Len(t, store.DeleteSessionCalls(), 1)
	assert.Len(t, seen, 3)
}

func TestController_SignOut_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)
	store.DeleteSessionFunc = func(ctx context.Context) error {
		return storage.ErrPersistence
	}

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)
	require.NoError(t, ctrl.Restore(ctx))

	err := ctrl.SignOut(ctx)
	assert.ErrorIs(t, err, storage.ErrPersistence)

	_, ok := ctrl.Session()
	assert.False(t, ok, "in-memory session cleared even if storage failed")
}

func TestController_UpdateUser(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)
	require.NoError(t, ctrl.Restore(ctx))

	updated := models.User{
		ID:        "user-id",
		Name:      "John Doe",
		Email:     "johndoe@example.com",
		AvatarURL: "avatar-url",
	}

	require.NoError(t, ctrl.UpdateUser(ctx, updated))

	calls := store.SaveUserCalls()
	require.Len(t, calls, 1)
	expected, err := json.Marshal(updated)
	require.NoError(t, err)
	assert.Equal(t, expected, calls[0].User)

	user, ok := ctrl.User()
	require.True(t, ok)
	assert.Equal(t, updated, *user)
	assert.Equal(t, "jwt-token", ctrl.Token(), "token untouched")
	assert.Empty(t, store.SaveSessionCalls())
}

func TestController_UpdateUser_PersistenceFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)
	store.SaveUserFunc = func(ctx context.Context, user []byte) error {
		return storage.ErrPersistence
	}

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)
	require.NoError(t, ctrl.Restore(ctx))

	notified := 0
	ctrl.Subscribe(func(models.Session) { notified++ })

	err := ctrl.UpdateUser(ctx, models.User{ID: "user-id", Name: "Changed"})
	assert.ErrorIs(t, err, storage.ErrPersistence)

	user, ok := ctrl.User()
	require.True(t, ok)
	assert.Equal(t, johnDoe, *user)
	assert.Zero(t, notified)
}

func TestController_UpdateUser_NotAuthenticated(t *testing.T) {
	store, _ := newMemoryStore()
	ctrl := NewController(&api.ClientAPIMock{}, store, nil)

	err := ctrl.UpdateUser(context.Background(), johnDoe)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, store.SaveUserCalls())

	err = ctrl.UpdateUser(context.Background(), models.User{Name: "no id"})
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestController_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)
	require.NoError(t, ctrl.Restore(ctx))

	user, _ := ctrl.User()
	user.Name = "mutated"

	again, _ := ctrl.User()
	assert.Equal(t, "John Doe", again.Name)
}

func TestController_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)

	var first, second int
	unsubscribe := ctrl.Subscribe(func(models.Session) { first++ })
	ctrl.Subscribe(func(models.Session) { second++ })

	require.NoError(t, ctrl.Restore(ctx))
	unsubscribe()
	unsubscribe()
	require.NoError(t, ctrl.SignOut(ctx))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestController_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	store, mem := newMemoryStore()
	mem.put(t, "jwt-token", johnDoe)

	ctrl := NewController(&api.ClientAPIMock{}, store, nil)
	require.NoError(t, ctrl.Restore(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = ctrl.UpdateUser(ctx, models.User{ID: "user-id", Name: "John"})
				return
			}
			s, ok := ctrl.Session()
			if ok {
				assert.NotEmpty(t, s.Token)
				assert.NotNil(t, s.User)
			}
		}(i)
	}
	wg.Wait()
}
