package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/staynestapp/staynest-client/internal/domain"
)

const sessionKey = "session:current"

// SaveSession persists the current session user. Only sanitized users
// (password stripped) belong here; callers sanitize before saving.
func (s *Store) SaveSession(user domain.User) error {
	if err := s.set([]byte(sessionKey), user); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns the persisted session user, or (nil, nil) when no
// session is persisted.
func (s *Store) LoadSession() (*domain.User, error) {
	var user domain.User
	if err := s.get([]byte(sessionKey), &user); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &user, nil
}

// ClearSession removes the persisted session user. Clearing an already
// absent session is a no-op.
func (s *Store) ClearSession() error {
	if err := s.delete([]byte(sessionKey)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
