package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/gobarber/gobarber-client/internal/models"
	"github.com/gobarber/gobarber-client/pkg/api"
)

const (
	defaultTimeout = 30 * time.Second
	maxRedirects   = 10
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает вызовы REST API GoBarber, нужные клиенту
type ClientAPI interface {
	// CreateSession аутентифицирует пользователя (POST /sessions)
	CreateSession(ctx context.Context, req api.SessionRequest) (*api.SessionResponse, error)

	// MonthAvailability возвращает доступность дней месяца у провайдера
	MonthAvailability(ctx context.Context, q api.MonthAvailabilityQuery) ([]models.MonthAvailabilityItem, error)

	// DayAppointments возвращает записи текущего провайдера на день
	DayAppointments(ctx context.Context, q api.DayQuery) ([]models.Appointment, error)

	// UpdateProfile сохраняет профиль и возвращает обновленного пользователя
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*models.User, error)

	// UpdateAvatar загружает аватар и возвращает обновленного пользователя
	UpdateAvatar(ctx context.Context, filename string, content io.Reader) (*models.User, error)
}

// TokenSource returns the bearer token attached to every request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// IsStatus reports whether err is a StatusError with one of the given codes.
func IsStatus(err error, codes ...int) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	for _, code := range codes {
		if se.Code == code {
			return true
		}
	}
	return false
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	logger     *slog.Logger
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает общий таймаут HTTP запроса
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRateLimit ограничивает частоту исходящих запросов.
// rps <= 0 отключает ограничение.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger задает логгер для клиента и его транспорта
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTokenSource задает источник bearer токена
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Transport = newLoggingTransport(http.DefaultTransport, c.logger)

	return c
}

// SetTokenSource подключает источник токена после создания клиента.
// Нужен, потому что контроллер сессии сам зависит от клиента.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// CreateSession выполняет аутентификацию пользователя
func (c *Client) CreateSession(ctx context.Context, req api.SessionRequest) (*api.SessionResponse, error) {
	var resp api.SessionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sessions", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create session request failed: %w", err)
	}
	return &resp, nil
}

// MonthAvailability получает доступность дней месяца
func (c *Client) MonthAvailability(ctx context.Context, q api.MonthAvailabilityQuery) ([]models.MonthAvailabilityItem, error) {
	path := fmt.Sprintf("/providers/%s/month-availability", url.PathEscape(q.ProviderID))
	params := url.Values{
		"year":  {strconv.Itoa(q.Year)},
		"month": {strconv.Itoa(q.Month)},
	}

	var items []models.MonthAvailabilityItem
	if err := c.doRequest(ctx, http.MethodGet, path, params, nil, &items); err != nil {
		return nil, fmt.Errorf("month availability request failed: %w", err)
	}
	return items, nil
}

// DayAppointments получает записи провайдера на указанный день
func (c *Client) DayAppointments(ctx context.Context, q api.DayQuery) ([]models.Appointment, error) {
	params := url.Values{
		"year":  {strconv.Itoa(q.Year)},
		"month": {strconv.Itoa(q.Month)},
		"day":   {strconv.Itoa(q.Day)},
	}

	var appointments []models.Appointment
	if err := c.doRequest(ctx, http.MethodGet, "/appointments/me", params, nil, &appointments); err != nil {
		return nil, fmt.Errorf("appointments request failed: %w", err)
	}
	return appointments, nil
}

// UpdateProfile отправляет форму профиля
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodPut, "/profile", nil, req, &user); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &user, nil
}

// UpdateAvatar загружает файл аватара multipart-формой (поле "avatar")
func (c *Client) UpdateAvatar(ctx context.Context, filename string, content io.Reader) (*models.User, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read avatar: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, "/users/avatar", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, fmt.Errorf("update avatar request failed: %w", err)
	}
	return &user, nil
}

// doRequest выполняет HTTP запрос с JSON телом
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, query, bodyReader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// newRequest собирает запрос и подставляет bearer токен
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// do отправляет запрос и декодирует ответ
func (c *Client) do(req *http.Request, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Message
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
