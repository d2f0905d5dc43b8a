package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/pkg/api"
)

// ErrUnauthorized возвращается (через errors.Is), когда сервер ответил 401
var ErrUnauthorized = errors.New("unauthorized")

// Error ответ сервера с неуспешным статусом
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет проверять 401 через errors.Is(err, ErrUnauthorized)
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL адрес сервера, с которым работает клиент
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health проверяет доступность сервера и базы данных
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ForgotPassword запрашивает токен сброса пароля
func (c *Client) ForgotPassword(ctx context.Context, email string) (*api.ForgotPasswordResponse, error) {
	var resp api.ForgotPasswordResponse
	req := api.ForgotPasswordRequest{Email: email}
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/forgot-password", "", req, &resp); err != nil {
		return nil, fmt.Errorf("forgot password request failed: %w", err)
	}
	return &resp, nil
}

// ResetPassword устанавливает новый пароль по токену сброса
func (c *Client) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/reset-password", "", req, &resp); err != nil {
		return nil, fmt.Errorf("reset password request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает профиль владельца токена
func (c *Client) Me(ctx context.Context, token string) (*api.MeResponse, error) {
	var resp api.MeResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/me", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// ListLogs возвращает записи пользователя, start и end можно не указывать
func (c *Client) ListLogs(ctx context.Context, token string, start, end *models.Date) ([]*models.LogEntry, error) {
	query := url.Values{}
	if start != nil {
		query.Set("start", start.String())
	}
	if end != nil {
		query.Set("end", end.String())
	}

	path := "/api/logs"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var entries []*models.LogEntry
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &entries); err != nil {
		return nil, fmt.Errorf("list logs request failed: %w", err)
	}
	return entries, nil
}

// CreateLog создает новую запись
func (c *Client) CreateLog(ctx context.Context, token string, req api.CreateLogRequest) (*models.LogEntry, error) {
	var entry models.LogEntry
	if err := c.doRequest(ctx, http.MethodPost, "/api/logs", token, req, &entry); err != nil {
		return nil, fmt.Errorf("create log request failed: %w", err)
	}
	return &entry, nil
}

// UpdateLog частично обновляет запись
func (c *Client) UpdateLog(ctx context.Context, token, id string, req api.UpdateLogRequest) (*models.LogEntry, error) {
	var entry models.LogEntry
	path := "/api/logs/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &entry); err != nil {
		return nil, fmt.Errorf("update log request failed: %w", err)
	}
	return &entry, nil
}

// DeleteLog удаляет запись
func (c *Client) DeleteLog(ctx context.Context, token, id string) error {
	path := "/api/logs/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete log request failed: %w", err)
	}
	return nil
}

// Forecast запрашивает прогноз. При history == nil сервер берет историю из журнала.
func (c *Client) Forecast(ctx context.Context, token string, history []models.HistoryPoint, horizon int) (*models.Forecast, error) {
	req := api.ForecastRequest{}

	raw, err := json.Marshal(horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal horizon: %w", err)
	}
	req.Horizon = raw

	if history != nil {
		raw, err := json.Marshal(history)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal history: %w", err)
		}
		req.History = raw
	}

	var resp models.Forecast
	if err := c.doRequest(ctx, http.MethodPost, "/api/forecast", token, req, &resp); err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
