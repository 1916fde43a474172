package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gobarber/gobarber-client/internal/client/auth"
)

var errNotLoggedIn = fmt.Errorf("%w. Please run 'gobarber login' first", auth.ErrNotAuthenticated)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("E-mail: ")
	if err != nil {
		return fmt.Errorf("failed to read e-mail: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.controller.SignIn(ctx, email, password); err != nil {
		if errors.Is(err, auth.ErrAuthenticationFailed) {
			return errors.New("authentication failed, check your e-mail and password")
		}
		return err
	}

	user, _ := c.controller.User()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Bem-vindo, %s\n", user.Name)
	c.io.Println("Your session has been saved.")

	return nil
}
