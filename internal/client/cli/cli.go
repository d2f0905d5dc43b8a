package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/codehours/internal/client/iocli"
	"github.com/iudanet/codehours/internal/client/storage"
	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/pkg/api"
)

//go:generate moq -out cli_mock.go . APIClient

// APIClient методы сервера, которые использует CLI
type APIClient interface {
	BaseURL() string
	Health(ctx context.Context) (*api.HealthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (*api.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (*api.MessageResponse, error)
	Me(ctx context.Context, token string) (*api.MeResponse, error)
	ListLogs(ctx context.Context, token string, start, end *models.Date) ([]*models.LogEntry, error)
	CreateLog(ctx context.Context, token string, req api.CreateLogRequest) (*models.LogEntry, error)
	UpdateLog(ctx context.Context, token, id string, req api.UpdateLogRequest) (*models.LogEntry, error)
	DeleteLog(ctx context.Context, token, id string) error
	Forecast(ctx context.Context, token string, history []models.HistoryPoint, horizon int) (*models.Forecast, error)
}

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// errNotLoggedIn нет сохраненной сессии
var errNotLoggedIn = errors.New("not logged in. Please run 'codehours login' first")

// Cli команды клиента codehours
type Cli struct {
	api   APIClient
	store storage.SessionStorage
	io    iocli.IO
	now   func() time.Time
}

// New создает CLI
func New(apiClient APIClient, store storage.SessionStorage, io iocli.IO) *Cli {
	return &Cli{
		api:   apiClient,
		store: store,
		io:    io,
		now:   time.Now,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx, args)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "me":
		return c.runMe(ctx)
	case "health":
		return c.runHealth(ctx)
	case "forgot-password":
		return c.runForgotPassword(ctx, args)
	case "reset-password":
		return c.runResetPassword(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "forecast":
		return c.runForecast(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// session возвращает сохраненную непросроченную сессию
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	session, err := c.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, errNotLoggedIn
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.IsExpired(c.now()) {
		return nil, fmt.Errorf("session expired. Please run 'codehours login' again")
	}

	return session, nil
}

// PrintUsage печатает справку
func (c *Cli) PrintUsage() {
	c.io.Println(usageText)
}

const usageText = `codehours client

Usage:
  codehours [OPTIONS] COMMAND [ARGS]

Options:
  --version           Show version information
  --server URL        Server URL (default: http://localhost:4000)
  --db PATH           Path to local session database (default: codehours-client.db)

Commands:
  register            Register new user
  login               Login to server
  logout              Forget the local session
  status              Show local session status
  me                  Show current user from server
  health              Check server and database health
  forgot-password     Request a password reset token
  reset-password      Set new password with a reset token
  add                 Log hours for a day
  list                List logged hours with total and average
  update <id>         Update a log entry
  delete <id>         Delete a log entry
  forecast            Forecast hours for the next days

Examples:
  codehours register --email dev@example.com
  codehours add --hours 3.5 --project Backend --notes "API work"
  codehours list --start 2024-01-01 --end 2024-01-31
  codehours update 3f1c... --hours 4
  codehours forecast --horizon 14
  codehours --server https://hours.example.com login`
