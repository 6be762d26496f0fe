package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/agentage/agentage/pkg/agentage/api"
)

const DefaultRegistryURL = "https://dev.agentage.io"

const (
	// EnvRegistryURL overrides the registry base URL.
	EnvRegistryURL = "AGENTAGE_REGISTRY"
	// EnvToken overrides the auth token directly, bypassing both the stored
	// config and expiry checking.
	EnvToken = "AGENTAGE_TOKEN"
)

// Token storage backends. With StorageKeyring the access token lives in the
// OS keychain; everything else stays in the config file.
const (
	StorageFile    = "file"
	StorageKeyring = "keyring"

	keyringService = "agentage"
	keyringUser    = "access-token"
)

type Config struct {
	Auth     *AuthConfig     `json:"auth,omitempty"`
	Registry *RegistryConfig `json:"registry,omitempty"`
	DeviceID string          `json:"deviceId,omitempty"`
}

type AuthConfig struct {
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	User      *api.User  `json:"user,omitempty"`
}

type RegistryConfig struct {
	URL string `json:"url"`
}

type AuthState string

const (
	StateAuthenticated    AuthState = "authenticated"
	StateExpired          AuthState = "expired"
	StateNotAuthenticated AuthState = "not_authenticated"
)

// AuthStatus is derived from the stored config and the current time on
// every query; it is never persisted.
type AuthStatus struct {
	State     AuthState
	Token     string
	User      *api.User
	ExpiresAt *time.Time
}

// Store is the single source of truth for where configuration lives and how
// effective values resolve. It is passed into commands rather than accessed
// through a package singleton so tests can point it at a temp directory.
type Store struct {
	path    string
	storage string
	now     func() time.Time
}

type StoreOption func(*Store)

func WithTokenStorage(backend string) StoreOption {
	return func(s *Store) {
		if backend != "" {
			s.storage = backend
		}
	}
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path, storage: StorageFile, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. Any failure — missing file, unreadable file,
// invalid JSON — yields an empty config so every caller is total over all
// disk states.
func (s *Store) Load() *Config {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return &Config{}
	}
	var cfg Config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return &Config{}
	}
	return &cfg
}

func (s *Store) Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(s.path, content, 0o600)
}

// SaveAuth merges the credentials into the existing config, preserving
// unrelated fields such as deviceId written during the login flow. With
// keyring storage the token goes to the OS keychain and is blanked in the
// file copy.
func (s *Store) SaveAuth(auth *AuthConfig) error {
	cfg := s.Load()
	cfg.Auth = auth
	if s.storage == StorageKeyring && auth != nil && auth.Token != "" {
		if err := keyring.Set(keyringService, keyringUser, auth.Token); err != nil {
			return fmt.Errorf("failed to store token in keyring: %w", err)
		}
		stored := *auth
		stored.Token = ""
		cfg.Auth = &stored
	}
	return s.Save(cfg)
}

// Clear deletes the config file; a missing file is not an error. The
// keyring entry is removed best-effort.
func (s *Store) Clear() error {
	if s.storage == StorageKeyring {
		_ = keyring.Delete(keyringService, keyringUser)
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) RegistryURL() string {
	if env := os.Getenv(EnvRegistryURL); env != "" {
		return env
	}
	cfg := s.Load()
	if cfg.Registry != nil && cfg.Registry.URL != "" {
		return cfg.Registry.URL
	}
	return DefaultRegistryURL
}

// TokenExpired reports whether expiresAt has passed. A nil expiry means the
// token does not expire. The boundary is inclusive: exactly-now counts as
// expired.
func (s *Store) TokenExpired(expiresAt *time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return !expiresAt.After(s.now())
}

// Token resolves the effective auth token. The environment override always
// wins, even over an expired stored token; a stored token is returned only
// while unexpired.
func (s *Store) Token() (string, bool) {
	if env := os.Getenv(EnvToken); env != "" {
		return env, true
	}
	st := s.Status()
	if st.State != StateAuthenticated {
		return "", false
	}
	return st.Token, true
}

// Status reports exactly one of three states: authenticated, expired (a
// token exists locally but its expiry has passed), or not_authenticated (no
// token at all). Callers use the distinction to prompt for re-login versus
// first login.
func (s *Store) Status() AuthStatus {
	if env := os.Getenv(EnvToken); env != "" {
		return AuthStatus{State: StateAuthenticated, Token: env}
	}
	cfg := s.Load()
	if cfg.Auth == nil {
		return AuthStatus{State: StateNotAuthenticated}
	}
	token := cfg.Auth.Token
	if token == "" && s.storage == StorageKeyring {
		if v, err := keyring.Get(keyringService, keyringUser); err == nil {
			token = v
		}
	}
	if token == "" {
		return AuthStatus{State: StateNotAuthenticated}
	}
	if s.TokenExpired(cfg.Auth.ExpiresAt) {
		return AuthStatus{State: StateExpired, User: cfg.Auth.User, ExpiresAt: cfg.Auth.ExpiresAt}
	}
	return AuthStatus{
		State:     StateAuthenticated,
		Token:     token,
		User:      cfg.Auth.User,
		ExpiresAt: cfg.Auth.ExpiresAt,
	}
}
