package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/game"
	"github.com/ericogr/saber-duel/internal/logging"
	"github.com/ericogr/saber-duel/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepo is the storage the controller needs.
type SessionRepo interface {
	CreateSession(s *game.Session) error
	GetSessionByID(id string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	DeleteSession(id string) error
	DeleteIdleSessions(before time.Time) (int64, error)
}

// Controller owns every session stored in repo. Operations on the same
// session run one at a time, each to completion.
type Controller struct {
	repo   SessionRepo
	roster []game.Character
	locks  *sessionLocks
	newID  func() string
}

// NewController returns a controller whose sessions start from roster.
func NewController(repo SessionRepo, roster []game.Character) *Controller {
	r := make([]game.Character, len(roster))
	copy(r, roster)
	return &Controller{repo: repo, roster: r, locks: newSessionLocks(), newID: uuid.NewString}
}

// Roster returns a copy of the character definitions sessions start from.
func (c *Controller) Roster() []game.Character {
	out := make([]game.Character, len(c.roster))
	copy(out, c.roster)
	return out
}

// CreateSession starts a new game with the configured roster.
func (c *Controller) CreateSession() (*game.Session, error) {
	s := game.NewSession(c.newID(), c.roster)
	if err := c.repo.CreateSession(s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	logging.Info("session created", logging.Fields{constants.LogFieldSessionID: s.ID})
	return s, nil
}

// GetSession loads a session without changing it.
func (c *Controller) GetSession(id string) (*game.Session, error) {
	unlock := c.locks.lock(id)
	defer unlock()
	return c.load(id)
}

// Reset restarts the session from the fixed roster definitions.
func (c *Controller) Reset(id string) (*game.Session, error) {
	s, err := c.mutate(id, func(s *game.Session) (bool, error) {
		s.Reset()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	logging.Info("session reset", logging.Fields{constants.LogFieldSessionID: id})
	return s, nil
}

// EndSession deletes the session. Later calls with its id report
// ErrSessionNotFound.
func (c *Controller) EndSession(id string) error {
	unlock := c.locks.lock(id)
	defer unlock()
	if err := c.repo.DeleteSession(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	logging.Info("session ended", logging.Fields{constants.LogFieldSessionID: id})
	return nil
}

func (c *Controller) load(id string) (*game.Session, error) {
	s, err := c.repo.GetSessionByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// mutate loads the session under its lock, applies fn and stores the result
// when fn reports a change. fn errors are returned without saving.
func (c *Controller) mutate(id string, fn func(s *game.Session) (bool, error)) (*game.Session, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	s, err := c.load(id)
	if err != nil {
		return nil, err
	}
	changed, err := fn(s)
	if err != nil {
		return s, err
	}
	if !changed {
		return s, nil
	}
	if err := c.repo.UpdateSession(s); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session %s: %w", id, err)
	}
	return s, nil
}
