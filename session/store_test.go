package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-dev/client/session"
)

func signToken(t *testing.T, sub, email string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewStore(path)
	require.NoError(t, err)

	_, err = store.Token(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)

	token := signToken(t, "uid-1", "ana@exemplo.com", time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))

	got, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)

	claims, ok := store.Claims()
	require.True(t, ok)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "ana@exemplo.com", claims.Email)

	// A fresh store reads the same session back from disk.
	reloaded, err := session.NewStore(path)
	require.NoError(t, err)
	got, err = reloaded.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestStoreExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewStore(path)
	require.NoError(t, err)

	token := signToken(t, "uid-1", "a@b.com", time.Now().Add(-time.Minute))
	require.NoError(t, store.SetToken(token))

	_, err = store.Token(context.Background())
	assert.ErrorIs(t, err, session.ErrSessionExpired)

	// Claims stay readable so the UI can explain who expired.
	claims, ok := store.Claims()
	assert.True(t, ok)
	assert.True(t, claims.Expired(time.Now()))
}

func TestStoreRejectsGarbageToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewStore(path)
	require.NoError(t, err)
	assert.Error(t, store.SetToken("not-a-jwt"))
}

func TestStoreIgnoresUnparsableStoredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":"garbage"}`), 0o600))

	store, err := session.NewStore(path)
	require.NoError(t, err)
	_, err = store.Token(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestStoreSignOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := session.NewStore(path)
	require.NoError(t, err)

	changes := 0
	store.OnChange(func() { changes++ })

	token := signToken(t, "uid-1", "a@b.com", time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))
	assert.Equal(t, 1, changes)

	require.NoError(t, store.SignOut())
	assert.Equal(t, 2, changes)

	_, err = store.Token(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, ok := store.Claims()
	assert.False(t, ok)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Signing out twice is fine even with no file on disk.
	require.NoError(t, store.SignOut())
}
