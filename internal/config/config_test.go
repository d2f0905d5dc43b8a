package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv сбрасывает переменные, которые читает конфигурация
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORAGE_DRIVER", "DATABASE_URL", "JWT_SECRET", "SESSION_TTL",
		"RESET_TOKEN_TTL", "FRONTEND_URL", "EXPOSE_RESET_TOKEN", "LOG_LEVEL",
		"LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, ":4000", c.Addr)
	assert.Equal(t, DriverSQLite, c.StorageDriver)
	assert.Equal(t, 7*24*time.Hour, c.SessionTTL)
	assert.Equal(t, time.Hour, c.ResetTokenTTL)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.False(t, c.ExposeResetToken)
	assert.True(t, c.UsesDefaultSecret())
	assert.NoError(t, c.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := load(filepath.Join(t.TempDir(), "missing.env"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/codehours")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("FRONTEND_URL", "http://localhost:3000, https://hours.example.com")
	t.Setenv("EXPOSE_RESET_TOKEN", "true")

	c, err := load(filepath.Join(t.TempDir(), "missing.env"), nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, DriverPostgres, c.StorageDriver)
	assert.Equal(t, "postgres://localhost/codehours", c.DatabaseURL)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://hours.example.com"}, c.AllowedOrigins)
	assert.True(t, c.ExposeResetToken)
	assert.False(t, c.UsesDefaultSecret())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// Переменные из .env попадают в окружение процесса
	t.Cleanup(func() {
		_ = os.Unsetenv("LOG_LEVEL")
		_ = os.Unsetenv("JWT_SECRET")
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\nJWT_SECRET=from-file\n"), 0o600))

	// Пустая переменная окружения не задана, поэтому .env ее заполняет
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	c, err := load(envFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "from-file", c.JWTSecret)
}

func TestLoad_EnvOverridesEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "json")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_FORMAT=text\n"), 0o600))

	c, err := load(envFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", c.LogFormat)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "from-env.db")

	c, err := load(filepath.Join(t.TempDir(), "missing.env"), []string{
		"--addr", "127.0.0.1:9000",
		"-d", "from-flag.db",
		"--cors-origins", "http://a.example.com,http://b.example.com",
		"--reset-token-ttl", "30m",
		"--migrate-only",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", c.Addr)
	assert.Equal(t, "from-flag.db", c.DatabaseURL)
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, c.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, c.ResetTokenTTL)
	assert.True(t, c.MigrateOnly)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad duration", env: map[string]string{"SESSION_TTL": "week"}},
		{name: "bad bool", env: map[string]string{"EXPOSE_RESET_TOKEN": "maybe"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "mongodb"}},
		{name: "unknown flag", args: []string{"--no-such-flag"}},
		{name: "non-positive ttl", args: []string{"--session-ttl", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(filepath.Join(t.TempDir(), "missing.env"), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	c := Default()
	c.JWTSecret = ""
	c.StorageDriver = "redis"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
	assert.Contains(t, err.Error(), "redis")
}
