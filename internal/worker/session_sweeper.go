package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Purger removes expired sessions and reports how many were dropped.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically purges expired sessions from the store.
type SessionSweeper struct {
	purger   Purger
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionSweeper constructs the sweeper. Non-positive intervals fall back to one minute.
func NewSessionSweeper(purger Purger, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{purger: purger, interval: interval, logger: logger}
}

// Start launches background sweeping. Calling Start twice is a no-op.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *SessionSweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("purge expired sessions failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Debug("expired sessions purged", slog.Int64("count", removed))
	}
}
