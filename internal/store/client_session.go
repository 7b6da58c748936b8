package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-marketplace/models"
)

// fileSessionStore persists the session as a JSON document readable only
// by the current user.
type fileSessionStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSessionStore returns a [SessionStore] backed by the file at path.
// The file and its directory are created on the first Save.
func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Load(_ context.Context) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session file: %w", err)
	}

	if session.Token == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *fileSessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *fileSessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
