package service

import (
	"time"

	"github.com/ericogr/saber-duel/internal/constants"
	"github.com/ericogr/saber-duel/internal/logging"
)

// SweepIdle removes sessions that have not been touched for idleTTL.
func (c *Controller) SweepIdle(now time.Time, idleTTL time.Duration) (int64, error) {
	n, err := c.repo.DeleteIdleSessions(now.Add(-idleTTL))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logging.Info("idle sessions removed", logging.Fields{constants.LogFieldCount: n})
	}
	return n, nil
}
