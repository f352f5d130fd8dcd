package cleanup

import (
	"context"
	"log"
	"time"
)

// SessionSweeper is satisfied by game.SessionManager
type SessionSweeper interface {
	CleanupIdleSessions(maxIdle time.Duration) int
}

type Worker struct {
	Sessions SessionSweeper
	Interval time.Duration
	MaxIdle  time.Duration
}

func NewWorker(s SessionSweeper, interval, maxIdle time.Duration) *Worker {
	return &Worker{Sessions: s, Interval: interval, MaxIdle: maxIdle}
}

// Start runs one sweep immediately and then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) runCleanup() {
	removed := w.Sessions.CleanupIdleSessions(w.MaxIdle)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d idle sessions", removed)
	}
}
