// Package config загружает настройки сервера.
//
// Порядок применения, от низшего приоритета к высшему:
// значения по умолчанию, файл .env, переменные окружения, флаги командной строки.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultJWTSecret секрет по умолчанию, только для локальной разработки
	DefaultJWTSecret = "dev_secret_change_me"

	defaultEnvFile = ".env"
)

// Config настройки сервера
type Config struct {
	AllowedOrigins   []string
	Addr             string
	StorageDriver    string
	DatabaseURL      string
	JWTSecret        string
	LogLevel         string
	LogFormat        string
	SessionTTL       time.Duration
	ResetTokenTTL    time.Duration
	ShutdownTimeout  time.Duration
	ExposeResetToken bool
	MigrateOnly      bool
	ShowVersion      bool
}

// Default возвращает конфигурацию для локальной разработки
func Default() *Config {
	return &Config{
		Addr:            ":4000",
		StorageDriver:   DriverSQLite,
		DatabaseURL:     "codehours.db",
		JWTSecret:       DefaultJWTSecret,
		SessionTTL:      7 * 24 * time.Hour,
		ResetTokenTTL:   time.Hour,
		AllowedOrigins:  []string{"*"},
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load собирает конфигурацию из .env, окружения и аргументов командной строки (без имени программы)
func Load(args []string) (*Config, error) {
	return load(defaultEnvFile, args)
}

func load(envFile string, args []string) (*Config, error) {
	// .env не перекрывает уже заданные переменные окружения
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	if port, ok := lookup("PORT"); ok && port != "" {
		c.Addr = ":" + port
	}
	str("STORAGE_DRIVER", &c.StorageDriver)
	str("DATABASE_URL", &c.DatabaseURL)
	str("JWT_SECRET", &c.JWTSecret)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	if origins, ok := lookup("FRONTEND_URL"); ok && origins != "" {
		c.AllowedOrigins = splitList(origins)
	}

	if v, ok := lookup("EXPOSE_RESET_TOKEN"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid EXPOSE_RESET_TOKEN: %w", err)
		}
		c.ExposeResetToken = b
	}

	if err := dur("SESSION_TTL", &c.SessionTTL); err != nil {
		return err
	}
	if err := dur("RESET_TOKEN_TTL", &c.ResetTokenTTL); err != nil {
		return err
	}
	return dur("SHUTDOWN_TIMEOUT", &c.ShutdownTimeout)
}

func (c *Config) parseFlags(args []string) error {
	fs := pflag.NewFlagSet("codehours-server", pflag.ContinueOnError)

	fs.StringVarP(&c.Addr, "addr", "a", c.Addr, "HTTP listen address")
	fs.StringVar(&c.StorageDriver, "storage", c.StorageDriver, "storage driver: sqlite or postgres")
	fs.StringVarP(&c.DatabaseURL, "database", "d", c.DatabaseURL, "SQLite file path or PostgreSQL DSN")
	fs.StringSliceVar(&c.AllowedOrigins, "cors-origins", c.AllowedOrigins, "allowed CORS origins")
	fs.DurationVar(&c.SessionTTL, "session-ttl", c.SessionTTL, "session token lifetime")
	fs.DurationVar(&c.ResetTokenTTL, "reset-token-ttl", c.ResetTokenTTL, "password reset token lifetime")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "graceful shutdown timeout")
	fs.BoolVar(&c.ExposeResetToken, "expose-reset-token", c.ExposeResetToken, "return reset tokens in API responses (development only)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
	fs.BoolVar(&c.MigrateOnly, "migrate-only", false, "apply database migrations and exit")
	fs.BoolVarP(&c.ShowVersion, "version", "v", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT secret must not be empty"))
	}
	switch c.StorageDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.StorageDriver))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("database URL must not be empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session TTL must be positive"))
	}
	if c.ResetTokenTTL <= 0 {
		errs = append(errs, errors.New("reset token TTL must be positive"))
	}

	return errors.Join(errs...)
}

// UsesDefaultSecret сообщает, что секрет не был переопределен
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
