package api

import "github.com/gobarber/gobarber-client/internal/models"

// SessionRequest представляет запрос на создание сессии (POST /sessions)
type SessionRequest struct {
	Email    string `json:"email"`    // e-mail пользователя
	Password string `json:"password"` // пароль в открытом виде, передается только по TLS
}

// SessionResponse представляет ответ на успешную аутентификацию
type SessionResponse struct {
	User  models.User `json:"user"`  // профиль пользователя
	Token string      `json:"token"` // JWT bearer token
}

// UpdateProfileRequest представляет запрос на изменение профиля (PUT /profile)
type UpdateProfileRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Status  string `json:"status"`            // "error"
	Message string `json:"message,omitempty"` // описание ошибки для пользователя
}
