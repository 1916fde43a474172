package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/gobarber/gobarber-client/internal/validation"
	pkgapi "github.com/gobarber/gobarber-client/pkg/api"
)

// UpdateProfile отправляет форму профиля и обновляет пользователя в сессии
func (c *Controller) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) error {
	if _, ok := c.Session(); !ok {
		return ErrNotAuthenticated
	}

	if err := validation.ValidateProfile(req); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	user, err := c.apiClient.UpdateProfile(ctx, req)
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}

	return c.UpdateUser(ctx, *user)
}

// UpdateAvatar загружает новый аватар и обновляет пользователя в сессии
func (c *Controller) UpdateAvatar(ctx context.Context, filename string, content io.Reader) error {
	if _, ok := c.Session(); !ok {
		return ErrNotAuthenticated
	}

	user, err := c.apiClient.UpdateAvatar(ctx, filename, content)
	if err != nil {
		return fmt.Errorf("avatar update failed: %w", err)
	}

	return c.UpdateUser(ctx, *user)
}
