package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gobarber/gobarber-client/internal/client/api"
	"github.com/gobarber/gobarber-client/internal/client/storage"
	"github.com/gobarber/gobarber-client/internal/models"
	"github.com/gobarber/gobarber-client/internal/validation"
	pkgapi "github.com/gobarber/gobarber-client/pkg/api"
)

// Listener получает снимок сессии после каждого изменения.
// Listener не должен синхронно вызывать SignIn/SignOut/UpdateUser.
type Listener func(session models.Session)

type subscriber struct {
	fn Listener
	id uint64
}

// Controller владеет сессией клиента: держит ее в памяти, синхронизирует с
// хранилищем и оповещает подписчиков. Один экземпляр на процесс, создается
// в main и живет до завершения.
type Controller struct {
	apiClient   api.ClientAPI
	store       storage.SessionStorage
	logger      *slog.Logger
	session     models.Session
	subscribers []subscriber
	nextID      uint64

	// mu защищает session и subscribers
	mu sync.Mutex
	// opMu сериализует изменения, чтобы память и хранилище менялись парой
	opMu sync.Mutex
}

// Compile-time check that Controller can feed tokens to the API client
var _ api.TokenSource = (*Controller)(nil)

// NewController создает контроллер с пустой сессией.
// Сессию из хранилища поднимает Restore.
func NewController(apiClient api.ClientAPI, store storage.SessionStorage, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
	}
}

// Restore поднимает сессию из хранилища без обращения к серверу.
// Отсутствующая или поврежденная запись дает пустую сессию; ошибка
// возвращается только при сбое самого хранилища.
func (c *Controller) Restore(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	token, rawUser, err := c.store.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.logger.Debug("no saved session")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	user, err := decodeUser(rawUser)
	if err != nil || token == "" {
		c.logger.Warn("discarding malformed saved session", "error", err, "token_present", token != "")
		// Чистим запись, чтобы следующий запуск не натыкался на нее снова
		if delErr := c.store.DeleteSession(ctx); delErr != nil {
			c.logger.Warn("failed to delete malformed session", "error", delErr)
		}
		return nil
	}

	c.publish(models.Session{User: user, Token: token})
	c.logger.Debug("session restored", "user_id", user.ID)

	return nil
}

// SignIn аутентифицирует пользователя и сохраняет сессию.
// При любой ошибке сессия в памяти и в хранилище не меняется.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid e-mail: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	resp, err := c.apiClient.CreateSession(ctx, pkgapi.SessionRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		if api.IsStatus(err, http.StatusBadRequest, http.StatusUnauthorized) {
			return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return fmt.Errorf("sign in failed: %w", err)
	}

	if resp.Token == "" || !resp.User.Valid() {
		return fmt.Errorf("sign in failed: %w", ErrInvalidSession)
	}

	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := c.store.SaveSession(ctx, resp.Token, rawUser); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	user := resp.User
	c.publish(models.Session{User: &user, Token: resp.Token})
	c.logger.Info("signed in", "user_id", user.ID)

	return nil
}

// SignOut удаляет сессию из хранилища и из памяти.
// Без активной сессии ничего не делает. Сессия в памяти очищается даже
// если хранилище вернуло ошибку; ошибка при этом возвращается.
func (c *Controller) SignOut(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if !c.snapshot().Authenticated() {
		return nil
	}

	storeErr := c.store.DeleteSession(ctx)
	if storeErr != nil {
		c.logger.Error("failed to delete saved session", "error", storeErr)
	}

	c.publish(models.Session{})
	c.logger.Info("signed out")

	if storeErr != nil {
		return fmt.Errorf("failed to delete session: %w", storeErr)
	}
	return nil
}

// UpdateUser заменяет запись пользователя, токен остается прежним.
// Сначала пишется хранилище: при ошибке записи память не меняется.
func (c *Controller) UpdateUser(ctx context.Context, user models.User) error {
	if !user.Valid() {
		return fmt.Errorf("update user: %w", ErrInvalidSession)
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	current := c.snapshot()
	if !current.Authenticated() {
		return ErrNotAuthenticated
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := c.store.SaveUser(ctx, rawUser); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	c.publish(models.Session{User: &user, Token: current.Token})
	c.logger.Debug("user updated", "user_id", user.ID)

	return nil
}

// Session возвращает снимок текущей сессии
func (c *Controller) Session() (models.Session, bool) {
	s := c.snapshot()
	return s, s.Authenticated()
}

// User возвращает копию текущего пользователя
func (c *Controller) User() (*models.User, bool) {
	s := c.snapshot()
	if !s.Authenticated() {
		return nil, false
	}
	return s.User, true
}

// Token implements api.TokenSource
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Token
}

// Subscribe регистрирует слушателя изменений сессии.
// Возвращает функцию отписки; повторный вызов отписки безопасен.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subscribers {
				if s.id == id {
					c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// publish заменяет сессию и оповещает подписчиков вне c.mu.
// Вызывается под opMu, поэтому оповещения идут в порядке изменений.
func (c *Controller) publish(session models.Session) {
	c.mu.Lock()
	c.session = session
	listeners := make([]Listener, 0, len(c.subscribers))
	for _, s := range c.subscribers {
		listeners = append(listeners, s.fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(copySession(session))
	}
}

func (c *Controller) snapshot() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySession(c.session)
}

func copySession(s models.Session) models.Session {
	if s.User == nil {
		return s
	}
	user := *s.User
	return models.Session{User: &user, Token: s.Token}
}

func decodeUser(raw []byte) (*models.User, error) {
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	if !user.Valid() {
		return nil, fmt.Errorf("user record without id")
	}
	return &user, nil
}
