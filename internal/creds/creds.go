// Package creds persists the PawHaven session credentials.
// The bearer token and the serialized user profile are stored in
// ~/.config/pawdeck/credentials.toml and cleared on logout or when the
// backend rejects the session with a 401.
package creds

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// User is the profile persisted alongside the token.
type User struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Email string `toml:"email"`
	Role  string `toml:"role"`
}

// Session holds the persisted credential pair.
type Session struct {
	Token string `toml:"token"`
	User  User   `toml:"user"`
}

// LoggedIn reports whether the session carries a usable token.
func (s Session) LoggedIn() bool {
	return strings.TrimSpace(s.Token) != ""
}

const defaultCredsPath = "~/.config/pawdeck/credentials.toml"

// DefaultPath returns the default credentials file path.
func DefaultPath() string {
	return defaultCredsPath
}

// Store keeps the session in memory and mirrors every change to disk.
// The gateway reads the token on every request, so reads must be cheap
// and safe against the concurrent clear triggered by a 401.
type Store struct {
	mu      sync.RWMutex
	path    string
	session Session
}

// Open loads the credential store at path (empty uses the default).
// Unreadable or malformed files degrade to a logged-out session.
func Open(path string) *Store {
	resolved, err := resolvePath(path)
	if err != nil {
		return &Store{path: path}
	}

	s := &Store{path: resolved}

	file, err := os.Open(resolved)
	if err != nil {
		return s
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return s
	}

	var session Session
	if err := toml.Unmarshal(bytes, &session); err != nil {
		return s
	}
	s.session = session
	return s
}

// Session returns a copy of the current session.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Set replaces the session and persists it.
func (s *Store) Set(session Session) error {
	s.mu.Lock()
	s.session = session
	path := s.path
	s.mu.Unlock()
	return write(path, session)
}

// Clear forgets the session in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.session = Session{}
	path := s.path
	s.mu.Unlock()

	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func write(path string, session Session) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("credentials path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	bytes, err := toml.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	// Token material: keep the file private to the user.
	if err := os.WriteFile(path, bytes, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultCredsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
