// Package session persists the login token between CLI invocations.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskvault/taskvault/internal/common"
)

const tokenFileName = "token"

// Store keeps the session token in a file readable only by the owner.
// The directory defaults to ~/.taskauth and can be overridden with the
// TASKAUTH_HOME environment variable.
type Store struct {
	dir string
}

func NewStore() (*Store, error) {
	if dir, ok := os.LookupEnv("TASKAUTH_HOME"); ok && dir != "" {
		return &Store{dir: dir}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Store{dir: filepath.Join(home, ".taskauth")}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

// Load returns the stored token, or common.ErrNotFound when no session
// exists.
func (s *Store) Load() (string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", common.ErrNotFound
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
