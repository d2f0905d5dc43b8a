package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/storage"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.auth.Register(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.User.ID)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, env.clock.Now().Add(7*24*time.Hour), res.ExpiresAt)

	// Токен сразу пригоден как сессия
	session, err := env.auth.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, session.UserID)
	assert.Equal(t, "alice@example.com", session.Email)

	// Пароль хранится только как bcrypt хеш
	stored, err := env.storage.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestAuthService_Register_Invalid(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "password123"},
		{name: "empty password", email: "a@example.com", password: ""},
		{name: "both empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
			assert.Equal(t, "Email and password required", MessageOf(err))
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.registerUser(t, "dup@example.com")

	_, err := env.auth.Register(ctx, "dup@example.com", "another-password")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, MsgUserExists, MessageOf(err))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestAuthService_Register_Unavailable(t *testing.T) {
	clock := newFakeClock()
	users := &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			return fmt.Errorf("create user: %w", storage.ErrUnavailable)
		},
	}
	svc := NewAuthService(testLogger(), users, testTokenManager(clock), WithBcryptCost(bcrypt.MinCost))

	_, err := svc.Register(context.Background(), "a@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))
	assert.Equal(t, MsgUnavailable, MessageOf(err))
	assert.Len(t, users.CreateUserCalls(), 1)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.registerUser(t, "bob@example.com")

	res, err := env.auth.Login(ctx, "bob@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, userID, res.User.ID)

	session, err := env.auth.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerUser(t, "bob@example.com")

	_, wrongPassword := env.auth.Login(ctx, "bob@example.com", "wrong-password")
	_, unknownEmail := env.auth.Login(ctx, "nobody@example.com", "password123")
	_, wrongCase := env.auth.Login(ctx, "BOB@example.com", "password123")

	for _, err := range []error{wrongPassword, unknownEmail, wrongCase} {
		require.Error(t, err)
		assert.Equal(t, KindUnauthorized, KindOf(err))
		assert.Equal(t, MsgInvalidCredentials, MessageOf(err))
	}

	_, err := env.auth.Login(ctx, "bob@example.com", "")
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestAuthService_Login_Unavailable(t *testing.T) {
	users := &storage.UserStorageMock{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, fmt.Errorf("get user: %w", storage.ErrUnavailable)
		},
	}
	svc := NewAuthService(testLogger(), users, testTokenManager(newFakeClock()))

	_, err := svc.Login(context.Background(), "a@example.com", "password123")
	assert.Equal(t, KindUnavailable, KindOf(err))
	assert.Equal(t, MsgUnavailable, MessageOf(err))
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.registerUser(t, "carol@example.com")

	known, err := env.auth.RequestPasswordReset(ctx, "carol@example.com")
	require.NoError(t, err)
	unknown, err := env.auth.RequestPasswordReset(ctx, "ghost@example.com")
	require.NoError(t, err)

	// Одинаковый ответ для существующего и несуществующего email
	assert.Equal(t, MsgResetRequested, known.Message)
	assert.Equal(t, known.Message, unknown.Message)
	assert.NotEmpty(t, known.Token)
	assert.Empty(t, unknown.Token)

	user, err := env.storage.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.True(t, user.HasPendingReset())
	assert.Equal(t, known.Token, *user.ResetToken)
	assert.Equal(t, env.clock.Now().Add(time.Hour).Unix(), user.ResetTokenExpiry.Unix())

	_, err = env.auth.RequestPasswordReset(ctx, "")
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestAuthService_CompletePasswordReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerUser(t, "dave@example.com")

	req, err := env.auth.RequestPasswordReset(ctx, "dave@example.com")
	require.NoError(t, err)

	msg, err := env.auth.CompletePasswordReset(ctx, req.Token, "new-password")
	require.NoError(t, err)
	assert.Equal(t, MsgPasswordReset, msg)

	// Новый пароль работает, старый нет
	_, err = env.auth.Login(ctx, "dave@example.com", "new-password")
	require.NoError(t, err)
	_, err = env.auth.Login(ctx, "dave@example.com", "password123")
	assert.Equal(t, KindUnauthorized, KindOf(err))

	// Повторное использование токена
	_, err = env.auth.CompletePasswordReset(ctx, req.Token, "third-password")
	assert.Equal(t, KindInvalidToken, KindOf(err))
	assert.Equal(t, MsgInvalidResetToken, MessageOf(err))
}

func TestAuthService_CompletePasswordReset_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		prepare func(t *testing.T, env *testEnv) string
		newPass string
		wantMsg string
	}{
		{
			name:    "empty token",
			prepare: func(t *testing.T, env *testEnv) string { return "" },
			newPass: "new-password",
			wantMsg: MsgResetInputRequired,
		},
		{
			name: "short password",
			prepare: func(t *testing.T, env *testEnv) string {
				req, err := env.auth.RequestPasswordReset(ctx, "erin@example.com")
				require.NoError(t, err)
				return req.Token
			},
			newPass: "short",
			wantMsg: MsgResetInputRequired,
		},
		{
			name:    "garbage token",
			prepare: func(t *testing.T, env *testEnv) string { return "not-a-token" },
			newPass: "new-password",
			wantMsg: MsgInvalidResetToken,
		},
		{
			name: "expired token",
			prepare: func(t *testing.T, env *testEnv) string {
				req, err := env.auth.RequestPasswordReset(ctx, "erin@example.com")
				require.NoError(t, err)
				env.clock.Advance(time.Hour + time.Minute)
				return req.Token
			},
			newPass: "new-password",
			wantMsg: MsgInvalidResetToken,
		},
		{
			name: "superseded token",
			prepare: func(t *testing.T, env *testEnv) string {
				first, err := env.auth.RequestPasswordReset(ctx, "erin@example.com")
				require.NoError(t, err)
				_, err = env.auth.RequestPasswordReset(ctx, "erin@example.com")
				require.NoError(t, err)
				return first.Token
			},
			newPass: "new-password",
			wantMsg: MsgInvalidResetToken,
		},
		{
			name: "session token",
			prepare: func(t *testing.T, env *testEnv) string {
				res, err := env.auth.Login(ctx, "erin@example.com", "password123")
				require.NoError(t, err)
				return res.Token
			},
			newPass: "new-password",
			wantMsg: MsgInvalidResetToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.registerUser(t, "erin@example.com")

			_, err := env.auth.CompletePasswordReset(ctx, tt.prepare(t, env), tt.newPass)
			require.Error(t, err)
			assert.Equal(t, KindInvalidToken, KindOf(err))
			assert.Equal(t, tt.wantMsg, MessageOf(err))

			// Пароль не изменился
			_, err = env.auth.Login(ctx, "erin@example.com", "password123")
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_CompletePasswordReset_LostRace(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	tokens := testTokenManager(clock)
	resetToken, expiry, err := tokens.IssueReset("user-1", "f@example.com")
	require.NoError(t, err)

	users := &storage.UserStorageMock{
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			return &models.User{ID: userID, ResetToken: &resetToken, ResetTokenExpiry: &expiry}, nil
		},
		// Параллельный запрос уже использовал токен
		CompletePasswordResetFunc: func(ctx context.Context, userID, token, passwordHash string, now time.Time) error {
			return storage.ErrResetTokenMismatch
		},
	}
	svc := NewAuthService(testLogger(), users, tokens, WithAuthClock(clock.Now), WithBcryptCost(bcrypt.MinCost))

	_, err = svc.CompletePasswordReset(ctx, resetToken, "new-password")
	assert.Equal(t, KindInvalidToken, KindOf(err))
	require.Len(t, users.CompletePasswordResetCalls(), 1)
	assert.Equal(t, "user-1", users.CompletePasswordResetCalls()[0].UserID)
	assert.Equal(t, clock.Now(), users.CompletePasswordResetCalls()[0].Now)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerUser(t, "gina@example.com")

	res, err := env.auth.Login(ctx, "gina@example.com", "password123")
	require.NoError(t, err)
	reset, err := env.auth.RequestPasswordReset(ctx, "gina@example.com")
	require.NoError(t, err)

	// Токен сброса не является сессией
	_, err = env.auth.Authenticate(reset.Token)
	assert.Equal(t, KindInvalidToken, KindOf(err))

	_, err = env.auth.Authenticate("")
	assert.Equal(t, KindInvalidToken, KindOf(err))

	env.clock.Advance(7*24*time.Hour + time.Second)
	_, err = env.auth.Authenticate(res.Token)
	assert.Equal(t, KindInvalidToken, KindOf(err))
	assert.Equal(t, MsgInvalidToken, MessageOf(err))
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.registerUser(t, "hank@example.com")

	user, err := env.auth.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "hank@example.com", user.Email)
	assert.True(t, env.clock.Now().Equal(user.CreatedAt))

	_, err = env.auth.Me(ctx, "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, KindNotFound, KindOf(err))
}
