package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store is a file-backed Session. The file plays the role the identity
// provider's session storage plays in a browser: it survives process
// restarts and holds nothing but the current token.
type Store struct {
	path string

	mu        sync.Mutex
	token     string
	claims    Claims
	callbacks []func()
}

type sessionFile struct {
	AccessToken string `json:"access_token"`
}

// DefaultPath is where the CLI keeps its session file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "praxis", "session.json"), nil
}

// NewStore loads the session file at path. A missing file yields a
// signed-out store.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if f.AccessToken != "" {
		claims, err := parseClaims(f.AccessToken)
		if err == nil {
			s.token = f.AccessToken
			s.claims = claims
		}
		// A token that no longer parses is treated as signed out.
	}
	return s, nil
}

// SetToken stores a freshly issued token and notifies listeners.
func (s *Store) SetToken(token string) error {
	claims, err := parseClaims(token)
	if err != nil {
		return fmt.Errorf("invalid access token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.claims = claims
	err = s.persist()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	if s.claims.Expired(time.Now()) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

func (s *Store) Claims() (Claims, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return Claims{}, false
	}
	return s.claims, true
}

func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, fn)
}

func (s *Store) SignOut() error {
	s.mu.Lock()
	s.token = ""
	s.claims = Claims{}
	err := os.Remove(s.path)
	s.mu.Unlock()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	s.notify()
	return nil
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.Marshal(sessionFile{AccessToken: s.token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *Store) notify() {
	s.mu.Lock()
	callbacks := make([]func(), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}
