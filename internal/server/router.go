// Package server собирает HTTP API: сервисы, handler'ы и middleware.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/codehours/internal/server/handlers"
	"github.com/iudanet/codehours/internal/server/middleware"
	"github.com/iudanet/codehours/internal/server/service"
	"github.com/iudanet/codehours/internal/server/storage"
	"github.com/iudanet/codehours/internal/server/token"
)

// HealthPath путь health check, не попадает в лог запросов
const HealthPath = "/health"

// Options параметры сборки роутера
type Options struct {
	Now              func() time.Time
	Version          string
	AllowedOrigins   []string
	Tokens           token.Config
	ExposeResetToken bool
}

// NewRouter создает роутер со всеми маршрутами API
func NewRouter(logger *slog.Logger, store storage.Storage, opts Options) http.Handler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	tokens := token.NewManager(opts.Tokens, token.WithClock(now))
	authService := service.NewAuthService(logger, store, tokens, service.WithAuthClock(now))
	logService := service.NewLogService(logger, store, now)
	forecastService := service.NewForecastService(logger, store, now)

	authHandler := handlers.NewAuthHandler(logger, authService, opts.ExposeResetToken)
	logHandler := handlers.NewLogHandler(logger, authService, logService)
	forecastHandler := handlers.NewForecastHandler(logger, authService, forecastService)
	healthHandler := handlers.NewHealthHandler(logger, store, opts.Version)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger, HealthPath))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.Get(HealthPath, healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// Проверка сессии выполняется в каждом handler'е через AuthService.Authenticate
		r.Get("/me", authHandler.Me)

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", logHandler.List)
			r.Post("/", logHandler.Create)
			r.Put("/{id}", logHandler.Update)
			r.Delete("/{id}", logHandler.Delete)
		})

		r.Post("/forecast", forecastHandler.Forecast)
	})

	return r
}
