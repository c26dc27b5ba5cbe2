package engine

import "github.com/ericogr/saber-duel/internal/game"

// inCombat reports whether the session has both sides ready to fight.
func inCombat(s *game.Session) bool {
	return s.InCombat && s.Player != nil && s.Enemy != nil
}
