package cli

import (
	"context"
	"time"

	"github.com/gobarber/gobarber-client/internal/client/auth"
)

func (c *Cli) runStatus(_ context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, ok := c.controller.Session()
	if !ok {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gobarber login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name: %s\n", session.User.Name)
	c.io.Printf("E-mail: %s\n", session.User.Email)
	c.io.Printf("User ID: %s\n", session.User.ID)
	if session.User.AvatarURL != "" {
		c.io.Printf("Avatar: %s\n", session.User.AvatarURL)
	}

	expiresAt, ok := auth.TokenExpiry(session.Token)
	if !ok {
		c.io.Println("Token expires: unknown")
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.In(c.loc).Format(time.RFC3339))
	if remaining := expiresAt.Sub(c.now()); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
