package storage

import (
	"errors"
	"time"

	"github.com/ericogr/saber-duel/internal/game"
)

// ErrNotFound is returned when no session matches the requested id.
var ErrNotFound = errors.New("session not found")

type Repository interface {
	CreateSession(s *game.Session) error
	GetSessionByID(id string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	DeleteSession(id string) error
	// DeleteIdleSessions removes sessions not updated since before and
	// returns how many were removed.
	DeleteIdleSessions(before time.Time) (int64, error)
}
