package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/studentteacher/internal/filex"
)

const sessionFileName = "token"

// SessionStore persists the access token in a file under a directory
// relative to the working directory.
type SessionStore struct {
	path string
}

func NewSessionStore(dir string) (*SessionStore, error) {
	full, err := filex.EnsureSubdDir(dir)
	if err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}
	return &SessionStore{path: filepath.Join(full, sessionFileName)}, nil
}

// Load returns the saved token, or "" when there is none.
func (s *SessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *SessionStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
