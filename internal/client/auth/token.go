package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry читает claim "exp" из bearer токена без проверки подписи.
// Подпись проверяет сервер; клиенту срок нужен только для вывода статуса.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
