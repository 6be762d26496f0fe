package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/agentage/agentage/pkg/agentage/api"
)

func newTestStore(t *testing.T, opts ...StoreOption) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "config.json"), opts...)
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	store := newTestStore(t)
	cfg := store.Load()
	require.NotNil(t, cfg)
	require.Nil(t, cfg.Auth)
	require.Nil(t, cfg.Registry)
}

func TestLoadCorruptFileReturnsEmptyConfig(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o700))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))
	cfg := store.Load()
	require.NotNil(t, cfg)
	require.Nil(t, cfg.Auth)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := &Config{
		Auth: &AuthConfig{
			Token:     "tok-123",
			ExpiresAt: &expires,
			User:      &api.User{ID: "u1", Email: "dev@example.com", Name: "Dev"},
		},
		Registry: &RegistryConfig{URL: "https://registry.example.com"},
	}
	require.NoError(t, store.Save(cfg))

	loaded := store.Load()
	require.Equal(t, "tok-123", loaded.Auth.Token)
	require.True(t, expires.Equal(*loaded.Auth.ExpiresAt))
	require.Equal(t, "dev@example.com", loaded.Auth.User.Email)
	require.Equal(t, "https://registry.example.com", loaded.Registry.URL)
}

func TestSaveAuthPreservesUnrelatedFields(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Config{
		DeviceID: "abc123",
		Registry: &RegistryConfig{URL: "https://registry.example.com"},
	}))

	require.NoError(t, store.SaveAuth(&AuthConfig{Token: "tok"}))

	loaded := store.Load()
	require.Equal(t, "abc123", loaded.DeviceID)
	require.Equal(t, "https://registry.example.com", loaded.Registry.URL)
	require.Equal(t, "tok", loaded.Auth.Token)
}

func TestRegistryURLPrecedence(t *testing.T) {
	store := newTestStore(t)
	t.Setenv(EnvRegistryURL, "")
	require.Equal(t, DefaultRegistryURL, store.RegistryURL())

	require.NoError(t, store.Save(&Config{Registry: &RegistryConfig{URL: "https://stored.example.com"}}))
	require.Equal(t, "https://stored.example.com", store.RegistryURL())

	t.Setenv(EnvRegistryURL, "https://env.example.com")
	require.Equal(t, "https://env.example.com", store.RegistryURL())
}

func TestTokenExpiredBoundary(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(func() time.Time { return now }))

	require.False(t, store.TokenExpired(nil))

	past := now.Add(-time.Second)
	require.True(t, store.TokenExpired(&past))

	exact := now
	require.True(t, store.TokenExpired(&exact))

	future := now.Add(time.Second)
	require.False(t, store.TokenExpired(&future))
}

func TestStatusThreeStates(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	t.Setenv(EnvToken, "")

	t.Run("not authenticated", func(t *testing.T) {
		store := newTestStore(t, WithClock(func() time.Time { return now }))
		require.Equal(t, StateNotAuthenticated, store.Status().State)
	})

	t.Run("expired", func(t *testing.T) {
		store := newTestStore(t, WithClock(func() time.Time { return now }))
		past := now.Add(-time.Hour)
		require.NoError(t, store.SaveAuth(&AuthConfig{Token: "tok", ExpiresAt: &past, User: &api.User{ID: "u1", Email: "dev@example.com"}}))

		status := store.Status()
		require.Equal(t, StateExpired, status.State)
		require.Empty(t, status.Token)
		require.NotNil(t, status.User)
	})

	t.Run("authenticated", func(t *testing.T) {
		store := newTestStore(t, WithClock(func() time.Time { return now }))
		future := now.Add(time.Hour)
		require.NoError(t, store.SaveAuth(&AuthConfig{Token: "tok", ExpiresAt: &future}))

		status := store.Status()
		require.Equal(t, StateAuthenticated, status.State)
		require.Equal(t, "tok", status.Token)
	})

	t.Run("non-expiring token", func(t *testing.T) {
		store := newTestStore(t, WithClock(func() time.Time { return now }))
		require.NoError(t, store.SaveAuth(&AuthConfig{Token: "tok"}))
		require.Equal(t, StateAuthenticated, store.Status().State)
	})
}

func TestEnvTokenOverridesStoredAndExpiry(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(func() time.Time { return now }))
	past := now.Add(-time.Hour)
	require.NoError(t, store.SaveAuth(&AuthConfig{Token: "stored", ExpiresAt: &past}))

	t.Setenv(EnvToken, "env-token")

	status := store.Status()
	require.Equal(t, StateAuthenticated, status.State)
	require.Equal(t, "env-token", status.Token)

	token, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, "env-token", token)
}

func TestTokenReturnsNothingWhenExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	t.Setenv(EnvToken, "")
	store := newTestStore(t, WithClock(func() time.Time { return now }))
	past := now.Add(-time.Hour)
	require.NoError(t, store.SaveAuth(&AuthConfig{Token: "stored", ExpiresAt: &past}))

	_, ok := store.Token()
	require.False(t, ok)
}

func TestClearRemovesConfig(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveAuth(&AuthConfig{Token: "tok"}))
	require.NoError(t, store.Clear())
	require.Equal(t, StateNotAuthenticated, store.Status().State)

	// Clearing twice is not an error.
	require.NoError(t, store.Clear())
}

func TestKeyringStorageKeepsTokenOutOfFile(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvToken, "")
	store := newTestStore(t, WithTokenStorage(StorageKeyring))

	require.NoError(t, store.SaveAuth(&AuthConfig{Token: "secret-token", User: &api.User{ID: "u1", Email: "dev@example.com"}}))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.NotContains(t, string(content), "secret-token")

	status := store.Status()
	require.Equal(t, StateAuthenticated, status.State)
	require.Equal(t, "secret-token", status.Token)

	require.NoError(t, store.Clear())
	require.Equal(t, StateNotAuthenticated, store.Status().State)
}
