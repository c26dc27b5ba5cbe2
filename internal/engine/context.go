package engine

import (
	"fmt"

	"github.com/ericogr/saber-duel/internal/game"
)

// --- Round context and helpers ----------------------------------------
type roundContext struct {
	s      *game.Session
	result *game.RoundResult
}

func newRoundContext(s *game.Session) *roundContext {
	return &roundContext{s: s, result: &game.RoundResult{Log: make([]string, 0, 4)}}
}

func (rc *roundContext) add(format string, args ...interface{}) {
	rc.result.Log = append(rc.result.Log, fmt.Sprintf(format, args...))
}
