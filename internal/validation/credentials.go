package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/gobarber/gobarber-client/pkg/api"
)

const (
	// MinPasswordLen минимальная длина нового пароля
	MinPasswordLen = 6
	// MaxEmailLen максимальная длина e-mail
	MaxEmailLen = 254
)

// ValidateEmail проверяет, что e-mail непустой и корректного формата
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("e-mail cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("e-mail must not exceed %d characters", MaxEmailLen)
	}

	// mail.ParseAddress принимает и "Name <addr>", нам нужен только сам адрес
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, ".") {
		return fmt.Errorf("e-mail %q is not a valid address", email)
	}

	return nil
}

// ValidatePassword проверяет пароль при входе: только обязательность
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateNewPassword проверяет новый пароль при смене
func ValidateNewPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateProfile проверяет форму редактирования профиля.
// Пароль меняется только если задано поле Password: тогда обязательны
// старый пароль и совпадающее подтверждение.
func ValidateProfile(req api.UpdateProfileRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if err := ValidateEmail(req.Email); err != nil {
		return err
	}

	if req.Password == "" {
		if req.PasswordConfirmation != "" {
			return fmt.Errorf("password confirmation given without new password")
		}
		return nil
	}

	if req.OldPassword == "" {
		return fmt.Errorf("old password is required to set a new password")
	}

	if err := ValidateNewPassword(req.Password); err != nil {
		return err
	}

	if req.Password != req.PasswordConfirmation {
		return fmt.Errorf("password confirmation does not match")
	}

	return nil
}
