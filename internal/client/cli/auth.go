package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/codehours/internal/client/api"
	"github.com/iudanet/codehours/internal/client/storage"
	"github.com/iudanet/codehours/internal/validation"
	pkgapi "github.com/iudanet/codehours/pkg/api"
)

// readCredentials собирает email и пароль из флагов или с терминала
func (c *Cli) readCredentials(name string, args []string) (pkgapi.CredentialsRequest, error) {
	var req pkgapi.CredentialsRequest

	fs := c.newFlagSet(name)
	email := fs.StringP("email", "e", "", "account email")
	password := fs.String("password", "", "password (not recommended, prompted when empty)")
	if err := parseFlags(fs, args); err != nil {
		return req, err
	}

	var err error
	if req.Email, err = c.promptIfEmpty(*email, "Email: "); err != nil {
		return req, err
	}
	if req.Password, err = c.passwordIfEmpty(*password, "Password: "); err != nil {
		return req, err
	}

	if err := validation.ValidateCredentials(req.Email, req.Password); err != nil {
		return req, err
	}
	return req, nil
}

func (c *Cli) runRegister(ctx context.Context, args []string) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	req, err := c.readCredentials("register", args)
	if err != nil {
		return err
	}

	resp, err := c.api.Register(ctx, req)
	if err != nil {
		return err
	}

	if err := c.saveSession(ctx, resp); err != nil {
		return err
	}

	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", resp.User.ID)
	c.io.Printf("Email:   %s\n", resp.User.Email)
	return nil
}

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	req, err := c.readCredentials("login", args)
	if err != nil {
		return err
	}

	resp, err := c.api.Login(ctx, req)
	if err != nil {
		return err
	}

	if err := c.saveSession(ctx, resp); err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", resp.User.Email)
	return nil
}

// saveSession сохраняет токен локально вместе со сроком действия из claims
func (c *Cli) saveSession(ctx context.Context, resp *pkgapi.AuthResponse) error {
	session := &storage.Session{
		ExpiresAt: tokenExpiry(resp.Token),
		UserID:    resp.User.ID,
		Email:     resp.User.Email,
		Token:     resp.Token,
		ServerURL: c.api.BaseURL(),
	}
	if err := c.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// tokenExpiry читает exp без проверки подписи: секрет есть только у сервера.
// Нулевое время, если exp нет или токен не разбирается.
func tokenExpiry(tokenString string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.store.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logged out")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, err := c.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'codehours login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	view := statusView{
		Email:     session.Email,
		UserID:    session.UserID,
		ServerURL: session.ServerURL,
		Expired:   session.IsExpired(c.now()),
	}
	if !session.ExpiresAt.IsZero() {
		view.ExpiresAt = session.ExpiresAt.Format(time.RFC3339)
		view.Remaining = session.ExpiresAt.Sub(c.now()).Round(time.Second).String()
	}

	return c.render(statusTemplate, view)
}

func (c *Cli) runMe(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	me, err := c.api.Me(ctx, session.Token)
	if err != nil {
		return c.wrapAuthError(err)
	}

	return c.render(meTemplate, me)
}

func (c *Cli) runHealth(ctx context.Context) error {
	resp, err := c.api.Health(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Server: %s\n", c.api.BaseURL())
	c.io.Printf("Status: %s\n", resp.Status)
	if resp.Version != "" {
		c.io.Printf("Version: %s\n", resp.Version)
	}
	return nil
}

func (c *Cli) runForgotPassword(ctx context.Context, args []string) error {
	fs := c.newFlagSet("forgot-password")
	emailFlag := fs.StringP("email", "e", "", "account email")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	email, err := c.promptIfEmpty(*emailFlag, "Email: ")
	if err != nil {
		return err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	resp, err := c.api.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}

	c.io.Println(resp.Message)
	if resp.ResetToken != "" {
		c.io.Println()
		c.io.Printf("Reset token: %s\n", resp.ResetToken)
		c.io.Println("Run 'codehours reset-password --token <token>' to set a new password.")
	}
	return nil
}

func (c *Cli) runResetPassword(ctx context.Context, args []string) error {
	fs := c.newFlagSet("reset-password")
	tokenFlag := fs.StringP("token", "t", "", "reset token")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	resetToken, err := c.promptIfEmpty(*tokenFlag, "Reset token: ")
	if err != nil {
		return err
	}

	password, err := c.passwordIfEmpty("", "New password: ")
	if err != nil {
		return err
	}
	if err := validation.ValidateNewPassword(password); err != nil {
		return err
	}

	confirm, err := c.passwordIfEmpty("", "Confirm password: ")
	if err != nil {
		return err
	}
	if confirm != password {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.api.ResetPassword(ctx, pkgapi.ResetPasswordRequest{Token: resetToken, NewPassword: password})
	if err != nil {
		return err
	}

	c.io.Println("✓ " + resp.Message)
	return nil
}

// wrapAuthError подсказывает перелогиниться при 401
func (c *Cli) wrapAuthError(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return fmt.Errorf("%w. Please run 'codehours login' again", err)
	}
	return err
}
