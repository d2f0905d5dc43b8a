package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codehours/internal/client/iocli"
	"github.com/iudanet/codehours/internal/client/storage"
	"github.com/iudanet/codehours/internal/client/storage/boltdb"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

const testServerURL = "http://localhost:4000"

// newTestIO мок терминала: вывод копится в буфере, ввод берется из inputs по очереди
func newTestIO(inputs ...string) (*iocli.IOMock, *bytes.Buffer) {
	out := &bytes.Buffer{}
	next := func(prompt string) (string, error) {
		out.WriteString(prompt)
		if len(inputs) == 0 {
			return "", io.EOF
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}

	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}, out
}

// newTestStore bbolt во временном каталоге
func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func newTestCli(apiClient APIClient, store storage.SessionStorage, io iocli.IO) *Cli {
	c := New(apiClient, store, io)
	c.now = func() time.Time { return testNow }
	return c
}

// newAPIMock мок API с адресом сервера
func newAPIMock() *APIClientMock {
	return &APIClientMock{
		BaseURLFunc: func() string { return testServerURL },
	}
}

// signedToken JWT с заданным exp, подпись клиентом не проверяется
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// loggedIn сохраняет действующую сессию
func loggedIn(t *testing.T, store storage.SessionStorage) *storage.Session {
	t.Helper()
	session := &storage.Session{
		ExpiresAt: testNow.Add(24 * time.Hour),
		UserID:    "user-1",
		Email:     "dev@example.com",
		Token:     "session-token",
		ServerURL: testServerURL,
	}
	require.NoError(t, store.SaveSession(context.Background(), session))
	return session
}
