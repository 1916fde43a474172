package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду; args содержит аргументы после имени команды
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "schedule":
		return c.runSchedule(ctx, args)
	case "profile":
		return c.runProfile(ctx)
	case "avatar":
		return c.runAvatar(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireSession не дает запускать команды без входа
func (c *Cli) requireSession() error {
	if _, ok := c.controller.Session(); !ok {
		return errNotLoggedIn
	}
	return nil
}
