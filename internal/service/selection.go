package service

import (
	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/game"
	"github.com/ericogr/saber-duel/internal/logging"
)

// SelectPlayer picks the player character for a session. The boolean is
// false when a player was already chosen and the request was ignored.
func (c *Controller) SelectPlayer(id, name string) (*game.Session, bool, error) {
	var changed bool
	s, err := c.mutate(id, func(s *game.Session) (bool, error) {
		var err error
		changed, err = s.SelectPlayer(name)
		return changed, err
	})
	if err != nil {
		return s, false, err
	}
	logging.Info("player selection", logging.Fields{constants.LogFieldSessionID: id, constants.LogFieldCharacter: name, constants.LogFieldChanged: changed})
	return s, changed, nil
}

// SelectEnemy picks the next opponent. The boolean is false when an enemy
// is already in combat and the request was ignored.
func (c *Controller) SelectEnemy(id, name string) (*game.Session, bool, error) {
	var changed bool
	s, err := c.mutate(id, func(s *game.Session) (bool, error) {
		var err error
		changed, err = s.SelectEnemy(name)
		return changed, err
	})
	if err != nil {
		return s, false, err
	}
	logging.Info("enemy selection", logging.Fields{constants.LogFieldSessionID: id, constants.LogFieldCharacter: name, constants.LogFieldChanged: changed})
	return s, changed, nil
}
