package main

import (
	"time"

	"github.com/ericogr/saber-duel/internal/logging"
)

// startIdleSweeper periodically deletes sessions nobody has touched for
// idleTTL.
func startIdleSweeper(ctrl interface {
	SweepIdle(time.Time, time.Duration) (int64, error)
}, idleTTL time.Duration) {
	interval := idleTTL / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for now := range ticker.C {
			if _, err := ctrl.SweepIdle(now, idleTTL); err != nil {
				logging.Error("idle sweeper failed", err, nil)
			}
		}
	}()
}
