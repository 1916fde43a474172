package cli

import (
	"log/slog"
	"time"

	"github.com/gobarber/gobarber-client/internal/client/api"
	"github.com/gobarber/gobarber-client/internal/client/auth"
	"github.com/gobarber/gobarber-client/internal/client/iocli"
)

// Cli связывает команды терминала с контроллером сессии и API клиентом
type Cli struct {
	io         iocli.IO
	apiClient  api.ClientAPI
	controller *auth.Controller
	logger     *slog.Logger
	loc        *time.Location
	now        func() time.Time
}

func New(io iocli.IO, apiClient api.ClientAPI, controller *auth.Controller, loc *time.Location, logger *slog.Logger) *Cli {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:         io,
		apiClient:  apiClient,
		controller: controller,
		logger:     logger,
		loc:        loc,
		now:        time.Now,
	}
}

func PrintUsage(out iocli.IO) {
	out.Println("GoBarber Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  gobarber [OPTIONS] COMMAND [ARGS]")
	out.Println()
	out.Println("Options:")
	out.Println("  --version            Show version information")
	out.Println("  --config PATH        Path to YAML config (default: gobarber.yaml)")
	out.Println("  --server URL         API URL (default: http://localhost:3333)")
	out.Println("  --db PATH            Path to local session database (default: gobarber-client.db)")
	out.Println("  --log-level LEVEL    debug, info, warn or error (default: info)")
	out.Println()
	out.Println("Environment:")
	out.Println("  GOBARBER_SERVER_URL, GOBARBER_SERVER_TIMEOUT, GOBARBER_RATE_LIMIT,")
	out.Println("  GOBARBER_DB, GOBARBER_LOG_LEVEL, GOBARBER_TIMEZONE (also read from .env)")
	out.Println()
	out.Println("Commands:")
	out.Println("  login                          Sign in with e-mail and password")
	out.Println("  logout                         Sign out and forget the saved session")
	out.Println("  status                         Show the current session")
	out.Println("  schedule [--date D] [--month M] Show appointments of a day (D: YYYY-MM-DD, M: YYYY-MM)")
	out.Println("  profile                        Edit name, e-mail and password")
	out.Println("  avatar <file>                  Upload a new avatar image")
	out.Println()
	out.Println("Examples:")
	out.Println("  gobarber login")
	out.Println("  gobarber schedule")
	out.Println("  gobarber schedule --date 2026-10-20")
	out.Println("  gobarber --server https://api.gobarber.example.com status")
}
