package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkgapi "github.com/gobarber/gobarber-client/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	user, _ := c.controller.User()

	c.io.Println("=== Meu perfil ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	name, err := c.io.ReadInput(fmt.Sprintf("Name [%s]: ", user.Name))
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		name = user.Name
	}

	email, err := c.io.ReadInput(fmt.Sprintf("E-mail [%s]: ", user.Email))
	if err != nil {
		return fmt.Errorf("failed to read e-mail: %w", err)
	}
	if email == "" {
		email = user.Email
	}

	req := pkgapi.UpdateProfileRequest{
		Name:  name,
		Email: email,
	}

	answer, err := c.io.ReadInput("Change password? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		if req.OldPassword, err = c.io.ReadPassword("Current password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		if req.Password, err = c.io.ReadPassword("New password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		if req.PasswordConfirmation, err = c.io.ReadPassword("Confirm new password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	if err := c.controller.UpdateProfile(ctx, req); err != nil {
		return err
	}

	updated, _ := c.controller.User()
	c.io.Println()
	c.io.Println("✓ Perfil atualizado!")
	c.io.Printf("Name: %s\n", updated.Name)
	c.io.Printf("E-mail: %s\n", updated.Email)

	return nil
}

func (c *Cli) runAvatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gobarber avatar <file>")
	}
	if err := c.requireSession(); err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open avatar: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.logger.Warn("failed to close avatar file", "error", err)
		}
	}()

	if err := c.controller.UpdateAvatar(ctx, filepath.Base(args[0]), f); err != nil {
		return err
	}

	user, _ := c.controller.User()
	c.io.Println("✓ Avatar atualizado!")
	if user.AvatarURL != "" {
		c.io.Printf("Avatar: %s\n", user.AvatarURL)
	}

	return nil
}
