package service

import (
	"errors"

	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/engine"
	"github.com/ericogr/saber-duel/internal/game"
	"github.com/ericogr/saber-duel/internal/logging"
)

// Attack resolves one round for the session. Without an opponent it
// returns game.ErrNoTarget and the session is left as it was. On total
// victory or defeat the returned session has already been reset; the
// result carries the terminal signal.
func (c *Controller) Attack(id string) (*game.Session, *game.RoundResult, error) {
	var res *game.RoundResult
	s, err := c.mutate(id, func(s *game.Session) (bool, error) {
		var err error
		res, err = engine.ResolveRound(s)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		if errors.Is(err, game.ErrNoTarget) {
			logging.Debug("attack without target", logging.Fields{constants.LogFieldSessionID: id})
		}
		return s, nil, err
	}
	logging.Info("round resolved", logging.Fields{
		constants.LogFieldSessionID: id,
		constants.LogFieldRound:     res.Round,
		constants.LogFieldOutcome:   string(res.Outcome),
	})
	return s, res, nil
}
